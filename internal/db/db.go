package db

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

const (
	documentExt  = ".json"
	lockFileName = ".slides.lock"
)

// Store keeps one JSON document per slug under a root directory.
type Store struct {
	root   string
	logger *slog.Logger

	// mu serializes writers inside this process; lock does the same across
	// processes sharing the directory (server and CLI).
	mu   sync.Mutex
	lock *flock.Flock
}

// Open prepares a store rooted at dir, creating the directory when missing.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	root := strings.TrimSpace(dir)
	if root == "" {
		root = "slideshows"
	}

	if err := ensureDir(root); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		root:   root,
		logger: logger.With(slog.String("component", "store")),
		lock:   flock.New(filepath.Join(root, lockFileName)),
	}, nil
}

// Root returns the directory holding the documents.
func (s *Store) Root() string {
	return s.root
}

// Path returns the document path for slug after sanitization.
func (s *Store) Path(slug string) (string, error) {
	clean := Sanitize(slug)
	if clean == "" {
		return "", ErrInvalidSlug
	}
	return filepath.Join(s.root, clean+documentExt), nil
}

// List loads every document in the store keyed by slug. Documents that fail
// to decode are skipped.
func (s *Store) List() (map[string]Slideshow, error) {
	shows := make(map[string]Slideshow)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return shows, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, documentExt) {
			continue
		}
		slug := strings.TrimSuffix(name, documentExt)
		if !ValidSlug(slug) {
			continue
		}

		show, err := s.Load(slug)
		if err != nil {
			s.logger.Warn("skipping unreadable slideshow",
				slog.String("slug", slug),
				slog.Any("error", err))
			continue
		}
		shows[slug] = show
	}

	return shows, nil
}

// Load reads the document stored under slug.
func (s *Store) Load(slug string) (Slideshow, error) {
	path, err := s.Path(slug)
	if err != nil {
		return Slideshow{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Slideshow{}, ErrNotFound
		}
		return Slideshow{}, err
	}

	show, err := DecodeSlideshow(data)
	if err != nil {
		return Slideshow{}, &CorruptDocumentError{Slug: Sanitize(slug), Err: err}
	}
	return show, nil
}

// Save replaces the document stored under slug with {title, slides}. The
// new content is written to a temp file and renamed into place, so readers
// see either the old document or the new one.
func (s *Store) Save(slug, title string, slides []Slide) error {
	path, err := s.Path(slug)
	if err != nil {
		return err
	}

	data, err := EncodeSlideshow(Slideshow{Title: title, Slides: slides})
	if err != nil {
		return fmt.Errorf("encode slideshow: %w", err)
	}

	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	tempPath := filepath.Join(s.root, "."+Sanitize(slug)+"."+uuid.NewString()+".tmp")
	if err := writeSynced(tempPath, data); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace document: %w", err)
	}

	s.logger.Debug("saved slideshow", slog.String("slug", Sanitize(slug)), slog.Int("slides", len(slides)))
	return nil
}

// Delete removes the document stored under slug.
func (s *Store) Delete(slug string) error {
	path, err := s.Path(slug)
	if err != nil {
		return err
	}

	unlock, err := s.acquire()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Store) acquire() (func(), error) {
	s.mu.Lock()
	if err := s.lock.Lock(); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release store lock", slog.Any("error", err))
		}
		s.mu.Unlock()
	}, nil
}

func writeSynced(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("slideshows path is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

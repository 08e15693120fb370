package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/slides/internal/db"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrSlugRequired = errors.New("slug is required")

// SlideshowStore is the persistence the service needs; *db.Store implements it.
type SlideshowStore interface {
	List() (map[string]db.Slideshow, error)
	Load(slug string) (db.Slideshow, error)
	Save(slug, title string, slides []db.Slide) error
	Delete(slug string) error
}

// SlideshowService exposes slideshow operations to handlers and the CLI.
type SlideshowService struct {
	store SlideshowStore
}

// Entry is one listed slideshow.
type Entry struct {
	Slug      string
	Slideshow db.Slideshow
}

// SaveInput is a whole-document save request. A nil Title or Slides falls
// back to db.DefaultTitle or an empty slide list.
type SaveInput struct {
	Slug   string     `json:"slug"`
	Title  *string    `json:"title"`
	Slides []db.Slide `json:"slides"`
}

// NewSlideshowService returns a service backed by store.
func NewSlideshowService(store SlideshowStore) *SlideshowService {
	return &SlideshowService{store: store}
}

// List returns every readable slideshow ordered by slug.
func (s *SlideshowService) List() ([]Entry, error) {
	shows, err := s.store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(shows))
	for slug, show := range shows {
		entries = append(entries, Entry{Slug: slug, Slideshow: show})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Slug < entries[j].Slug
	})
	return entries, nil
}

// Get loads a single slideshow.
func (s *SlideshowService) Get(slug string) (db.Slideshow, error) {
	return s.store.Load(slug)
}

// Draft returns the stored slideshow, or a fresh in-memory draft titled
// after the slug when none exists. The bool reports whether it is new.
func (s *SlideshowService) Draft(slug string) (db.Slideshow, bool, error) {
	show, err := s.store.Load(slug)
	if err == nil {
		return show, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return db.Slideshow{}, false, err
	}
	return db.Slideshow{Title: TitleFromSlug(db.Sanitize(slug)), Slides: []db.Slide{}}, true, nil
}

// Save replaces the document for input.Slug.
func (s *SlideshowService) Save(_ context.Context, input SaveInput) error {
	slug := db.Sanitize(strings.TrimSpace(input.Slug))
	if slug == "" {
		return ErrSlugRequired
	}

	title := db.DefaultTitle
	if input.Title != nil {
		title = *input.Title
	}
	slides := input.Slides
	if slides == nil {
		slides = []db.Slide{}
	}

	return s.store.Save(slug, title, slides)
}

// Delete removes a slideshow.
func (s *SlideshowService) Delete(slug string) error {
	return s.store.Delete(slug)
}

// TitleFromSlug turns "team-offsite" into "Team Offsite": dashes become
// spaces and each word gets an upper-case first letter.
func TitleFromSlug(slug string) string {
	// Casers keep state, so one is built per call.
	caser := cases.Title(language.Und, cases.NoLower)
	return caser.String(strings.ReplaceAll(slug, "-", " "))
}

// Package editor holds the authoring working copy of one slideshow.
//
// A Session mirrors the editing screen: a slide list, the index of the slide
// being edited, and the on-screen image/text fields. Field edits live only
// in Fields until a transition flushes them into the slide list.
package editor

import (
	"context"
	"errors"

	"github.com/slides/internal/db"
	"github.com/slides/internal/service"
)

var ErrLastSlide = errors.New("cannot delete the last slide")

// Saver persists a whole slideshow document.
type Saver interface {
	Save(ctx context.Context, input service.SaveInput) error
}

// Fields are the on-screen inputs for the current slide.
type Fields struct {
	Image string
	Text  string
}

// Session is the editor state for one slug.
type Session struct {
	slug    string
	title   string
	slides  []db.Slide
	current int
	fields  Fields
}

// New starts an editing session on a copy of doc, with the first slide
// selected.
func New(slug string, doc db.Slideshow) *Session {
	s := &Session{
		slug:   slug,
		title:  doc.Title,
		slides: append([]db.Slide{}, doc.Slides...),
	}
	s.populate()
	return s
}

func (s *Session) Slug() string { return s.slug }

func (s *Session) Title() string { return s.title }

// Current is the index of the slide being edited.
func (s *Session) Current() int { return s.current }

func (s *Session) Len() int { return len(s.slides) }

func (s *Session) Fields() Fields { return s.fields }

func (s *Session) SetTitle(t string) { s.title = t }

// SetFields records what the user typed for the current slide.
func (s *Session) SetFields(f Fields) {
	s.fields = f
}

// Slides returns a copy of the working slide list as last flushed.
func (s *Session) Slides() []db.Slide {
	return append([]db.Slide{}, s.slides...)
}

// Select flushes the fields into the current slide, then moves to slide i.
// An index with no slide shows blank fields.
func (s *Session) Select(i int) {
	s.flush()
	s.current = i
	s.populate()
}

// AddSlide appends a blank slide and selects it.
func (s *Session) AddSlide() {
	s.flush()
	s.slides = append(s.slides, db.Slide{})
	s.current = len(s.slides) - 1
	s.populate()
}

// DeleteSlide removes the current slide. The editor always keeps at least
// one slide once it has any; this is a usability rule, the store accepts
// empty slideshows.
func (s *Session) DeleteSlide() error {
	if len(s.slides) <= 1 {
		return ErrLastSlide
	}

	if s.inRange(s.current) {
		s.slides = append(s.slides[:s.current], s.slides[s.current+1:]...)
	}
	if s.current > len(s.slides)-1 {
		s.current = len(s.slides) - 1
	}
	if s.current < 0 {
		s.current = 0
	}
	s.populate()
	return nil
}

// Document flushes the fields and returns the full save payload.
func (s *Session) Document() service.SaveInput {
	s.flush()
	title := s.title
	return service.SaveInput{
		Slug:   s.slug,
		Title:  &title,
		Slides: s.Slides(),
	}
}

// Save sends the whole document. On success the saved snapshot becomes the
// working copy.
func (s *Session) Save(ctx context.Context, saver Saver) error {
	doc := s.Document()
	if err := saver.Save(ctx, doc); err != nil {
		return err
	}
	s.slides = doc.Slides
	return nil
}

// PlayNow saves, then calls navigate with the slug once the save finished.
func (s *Session) PlayNow(ctx context.Context, saver Saver, navigate func(slug string)) error {
	if err := s.Save(ctx, saver); err != nil {
		return err
	}
	navigate(s.slug)
	return nil
}

func (s *Session) inRange(i int) bool {
	return i >= 0 && i < len(s.slides)
}

func (s *Session) flush() {
	if !s.inRange(s.current) {
		return
	}
	s.slides[s.current] = db.Slide{Image: s.fields.Image, Text: s.fields.Text}
}

func (s *Session) populate() {
	if !s.inRange(s.current) {
		s.fields = Fields{}
		return
	}
	slide := s.slides[s.current]
	s.fields = Fields{Image: slide.Image, Text: slide.Text}
}

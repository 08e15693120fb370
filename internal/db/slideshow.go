package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DefaultTitle is used when a document carries no title.
const DefaultTitle = "Untitled"

var (
	ErrNotFound        = errors.New("slideshow not found")
	ErrInvalidSlug     = errors.New("slug is empty after sanitization")
	ErrCorruptDocument = errors.New("slideshow document is corrupt")
)

// Slide is one image+text page. Its only identity is its position.
type Slide struct {
	Image string `json:"image"`
	Text  string `json:"text"`
}

// Slideshow is the persisted document for one slug.
type Slideshow struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// CorruptDocumentError reports a stored file that could not be decoded.
type CorruptDocumentError struct {
	Slug string
	Err  error
}

func (e *CorruptDocumentError) Error() string {
	return fmt.Sprintf("slideshow %q: %v", e.Slug, e.Err)
}

func (e *CorruptDocumentError) Unwrap() error {
	return e.Err
}

func (e *CorruptDocumentError) Is(target error) bool {
	return target == ErrCorruptDocument
}

// rawSlideshow mirrors the document with pointer fields so missing keys
// can be told apart from empty values.
type rawSlideshow struct {
	Title  *string    `json:"title"`
	Slides []rawSlide `json:"slides"`
}

type rawSlide struct {
	Image *string `json:"image"`
	Text  *string `json:"text"`
}

// DecodeSlideshow parses a stored document. Missing fields fall back to
// DefaultTitle, no slides, and empty slide fields; anything that is not a
// JSON object of that shape is rejected.
func DecodeSlideshow(data []byte) (Slideshow, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Slideshow{}, errors.New("document is not a JSON object")
	}

	var raw rawSlideshow
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Slideshow{}, err
	}

	show := Slideshow{
		Title:  DefaultTitle,
		Slides: make([]Slide, 0, len(raw.Slides)),
	}
	if raw.Title != nil {
		show.Title = *raw.Title
	}
	for _, s := range raw.Slides {
		var slide Slide
		if s.Image != nil {
			slide.Image = *s.Image
		}
		if s.Text != nil {
			slide.Text = *s.Text
		}
		show.Slides = append(show.Slides, slide)
	}
	return show, nil
}

// EncodeSlideshow renders the canonical on-disk form: two-space indented,
// slashes and HTML characters left unescaped, trailing newline.
func EncodeSlideshow(show Slideshow) ([]byte, error) {
	if show.Slides == nil {
		show.Slides = []Slide{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(show); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

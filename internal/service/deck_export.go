package service

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajstarks/deck"
	"github.com/slides/internal/db"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	deckCanvasWidth  = 1600
	deckCanvasHeight = 900
)

// ExportDeck converts a stored slideshow to the deck markup model.
func (s *SlideshowService) ExportDeck(slug, imageRoot string) (*deck.Deck, error) {
	show, err := s.store.Load(slug)
	if err != nil {
		return nil, err
	}
	return BuildDeck(show, imageRoot), nil
}

// BuildDeck lays each slide out like the player: image centred on the left
// half, text block on the right half. Relative image paths are resolved
// against imageRoot when probing dimensions.
func BuildDeck(show db.Slideshow, imageRoot string) *deck.Deck {
	d := &deck.Deck{}
	d.Title = show.Title
	d.Canvas.Width = deckCanvasWidth
	d.Canvas.Height = deckCanvasHeight

	for _, slide := range show.Slides {
		var ds deck.Slide
		ds.Bg = "white"
		ds.Fg = "black"

		if img := strings.TrimSpace(slide.Image); img != "" {
			var im deck.Image
			im.Xp = 25
			im.Yp = 50
			im.Name = img
			if w, h, ok := probeImage(img, imageRoot); ok {
				im.Width, im.Height = fitHalfCanvas(w, h)
			} else {
				im.Width = deckCanvasWidth / 2
				im.Height = deckCanvasHeight
				im.Autoscale = "on"
			}
			ds.Image = append(ds.Image, im)
		}

		if text := strings.TrimSpace(slide.Text); text != "" {
			var t deck.Text
			t.Xp = 55
			t.Yp = 60
			t.Sp = 2.4
			t.Wp = 40
			t.Type = "block"
			t.Font = "sans"
			t.Tdata = slide.Text
			ds.Text = append(ds.Text, t)
		}

		d.Slide = append(d.Slide, ds)
	}
	return d
}

// probeImage reads the pixel size of a local image. Remote URLs are not
// fetched.
func probeImage(ref, root string) (int, int, bool) {
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Scheme != "file" {
		return 0, 0, false
	}

	path := strings.TrimPrefix(ref, "file://")
	if !filepath.IsAbs(path) && root != "" {
		path = filepath.Join(root, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}

func fitHalfCanvas(w, h int) (int, int) {
	maxW, maxH := deckCanvasWidth/2-40, deckCanvasHeight-40
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := float64(maxW) / float64(w)
	if hs := float64(maxH) / float64(h); hs < scale {
		scale = hs
	}
	return int(float64(w) * scale), int(float64(h) * scale)
}

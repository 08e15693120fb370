package main

import (
	"testing"

	"github.com/slides/internal/db"
)

func TestCreateDemoSlideshowsSeedsOnce(t *testing.T) {
	store, err := db.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	if err := store.Save("welcome", "Kept", []db.Slide{{Text: "mine"}}); err != nil {
		t.Fatalf("failed to seed existing slideshow: %v", err)
	}

	created, err := createDemoSlideshows(store)
	if err != nil {
		t.Fatalf("createDemoSlideshows returned error: %v", err)
	}
	if created != len(demoSlideshows)-1 {
		t.Fatalf("expected %d created, got %d", len(demoSlideshows)-1, created)
	}

	kept, err := store.Load("welcome")
	if err != nil {
		t.Fatalf("failed to load welcome: %v", err)
	}
	if kept.Title != "Kept" {
		t.Fatalf("expected existing slideshow to be left alone, got %q", kept.Title)
	}

	shows, err := store.List()
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	for _, demo := range demoSlideshows {
		if !db.ValidSlug(demo.slug) {
			t.Fatalf("demo slug %q is not a valid slug", demo.slug)
		}
		if _, ok := shows[demo.slug]; !ok {
			t.Fatalf("expected %s to be listed", demo.slug)
		}
	}

	again, err := createDemoSlideshows(store)
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected second run to create nothing, got %d", again)
	}
}

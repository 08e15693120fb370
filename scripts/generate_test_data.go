package main

import (
	"fmt"
	"log"

	"github.com/slides/internal/config"
	"github.com/slides/internal/db"
)

type demoSlideshow struct {
	slug   string
	title  string
	slides []db.Slide
}

var demoSlideshows = []demoSlideshow{
	{
		slug:  "welcome",
		title: "Welcome",
		slides: []db.Slide{
			{Image: "https://images.unsplash.com/photo-1472214103451-9374bd1c798e", Text: "# Welcome\nUse the arrow keys to move between slides."},
			{Image: "", Text: "Slides have an image on the left\nand text on the right."},
			{Image: "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee", Text: "**Markdown** works too:\n\n- lists\n- _emphasis_\n- [links](https://example.com)"},
		},
	},
	{
		slug:  "team-offsite",
		title: "Team Offsite 2025",
		slides: []db.Slide{
			{Image: "https://images.unsplash.com/photo-1469474968028-56623f02e42e", Text: "Agenda\n\n1. Retro\n2. Roadmap\n3. Dinner"},
			{Image: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e", Text: "Retro\nWhat went well, what didn't."},
		},
	},
	{
		slug:   "empty-draft",
		title:  "Empty Draft",
		slides: []db.Slide{},
	},
}

// 测试数据生成器
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := db.Open(cfg.SlideshowsDir, nil)
	if err != nil {
		log.Fatalf("failed to open slideshow store: %v", err)
	}

	fmt.Printf("Seeding demo slideshows into %s...\n", store.Root())
	created, err := createDemoSlideshows(store)
	if err != nil {
		log.Fatalf("failed to seed slideshows: %v", err)
	}
	fmt.Printf("Done: %d created, %d already present\n", created, len(demoSlideshows)-created)
}

// createDemoSlideshows writes the demo set, leaving existing slugs alone.
func createDemoSlideshows(store *db.Store) (int, error) {
	existing, err := store.List()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, demo := range demoSlideshows {
		if _, ok := existing[demo.slug]; ok {
			fmt.Printf("  %s exists, skipping\n", demo.slug)
			continue
		}
		if err := store.Save(demo.slug, demo.title, demo.slides); err != nil {
			return created, fmt.Errorf("save %s: %w", demo.slug, err)
		}
		fmt.Printf("  created %s (%d slides)\n", demo.slug, len(demo.slides))
		created++
	}
	return created, nil
}

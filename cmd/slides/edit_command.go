package main

import (
	"github.com/spf13/cobra"

	"github.com/slides/internal/db"
	"github.com/slides/internal/tui"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <slug>",
		Short: "Edit a slideshow in the terminal, creating it on first save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := db.Sanitize(args[0])
			if slug == "" {
				return db.ErrInvalidSlug
			}

			svc, _, err := ctx.slideshowService()
			if err != nil {
				return err
			}
			show, _, err := svc.Draft(slug)
			if err != nil {
				return describeLoadError(slug, err)
			}

			play, err := tui.Edit(cmd.Context(), slug, show, svc)
			if err != nil || !play {
				return err
			}

			saved, err := svc.Get(slug)
			if err != nil {
				return describeLoadError(slug, err)
			}
			return tui.Play(saved)
		},
	}
}

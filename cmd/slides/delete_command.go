package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slides/internal/db"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slug>",
		Short: "Delete a slideshow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := ctx.slideshowService()
			if err != nil {
				return err
			}
			if err := svc.Delete(args[0]); err != nil {
				if errors.Is(err, db.ErrNotFound) {
					return fmt.Errorf("slideshow %q not found", args[0])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", db.Sanitize(args[0]))
			return nil
		},
	}
}

func describeLoadError(slug string, err error) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return fmt.Errorf("slideshow %q not found", slug)
	case errors.Is(err, db.ErrCorruptDocument):
		return fmt.Errorf("slideshow %q is unreadable: %w", slug, err)
	}
	return err
}

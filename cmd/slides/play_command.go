package main

import (
	"github.com/spf13/cobra"

	"github.com/slides/internal/tui"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <slug>",
		Short: "Present a slideshow in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := ctx.slideshowService()
			if err != nil {
				return err
			}
			show, err := svc.Get(args[0])
			if err != nil {
				return describeLoadError(args[0], err)
			}
			return tui.Play(show)
		},
	}
}

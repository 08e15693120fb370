package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored slideshows",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := ctx.slideshowService()
			if err != nil {
				return err
			}
			entries, err := svc.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain || !isTerminal(out) {
				for _, entry := range entries {
					fmt.Fprintf(out, "%s\t%s\t%d\n", entry.Slug, entry.Slideshow.Title, len(entry.Slideshow.Slides))
				}
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No slideshows")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Slug,
					entry.Slideshow.Title,
					strconv.Itoa(len(entry.Slideshow.Slides)),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Slug", "Title", "Slides"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Tab-separated output even on a terminal")
	return cmd
}

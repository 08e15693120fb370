package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var imageRoot string

	cmd := &cobra.Command{
		Use:   "export <slug>",
		Short: "Export a slideshow as deck XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := ctx.slideshowService()
			if err != nil {
				return err
			}
			d, err := svc.ExportDeck(args[0], imageRoot)
			if err != nil {
				return describeLoadError(args[0], err)
			}

			data, err := xml.MarshalIndent(d, "", "  ")
			if err != nil {
				return fmt.Errorf("encode deck: %w", err)
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if _, err := io.WriteString(out, xml.Header); err != nil {
				return err
			}
			if _, err := out.Write(data); err != nil {
				return err
			}
			_, err = io.WriteString(out, "\n")
			return err
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().StringVar(&imageRoot, "images", ".", "Directory relative image paths are resolved against")
	return cmd
}

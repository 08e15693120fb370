package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dirFlag string

	ctx := newCommandContext(&configFlag, &dirFlag)

	rootCmd := &cobra.Command{
		Use:           "slides",
		Short:         "Author, present and serve slideshows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Slideshow directory (overrides SLIDESHOWS_DIR)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newPlayCommand(ctx))
	rootCmd.AddCommand(newEditCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newDeleteCommand(ctx))
	rootCmd.AddCommand(newHashPasswordCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "hash-password", "help", "completion":
		return true
	}
	return false
}

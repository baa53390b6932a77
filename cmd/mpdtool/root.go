package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mpdtool",
		Short:         "Validate, inspect and generate MPEG-DASH manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newParseCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newQueryCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}

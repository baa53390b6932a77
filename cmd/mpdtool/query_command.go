package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
)

func newQueryCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "query FILE XPATH",
		Short:   "Evaluate an XPath expression against a manifest",
		Example: `  mpdtool query live.mpd "//Representation/@bandwidth"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := manifest.Query(data, args[1])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			if result.Nodes == nil {
				fmt.Fprintln(out, result.Value)
				return nil
			}
			for _, n := range result.Nodes {
				if n.XML != "" {
					fmt.Fprintln(out, n.XML)
					continue
				}
				fmt.Fprintln(out, n.Value)
			}
			if result.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "output truncated at %d nodes\n", manifest.MaxQueryNodes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

func newParseCommand() *cobra.Command {
	var outputPath string
	var summaryOutput bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Decode a manifest and print its canonical encoding",
		Long: "Decode a manifest and re-encode it. The output drops unknown attributes, " +
			"normalises durations and lists, and is stable across runs.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			m, err := mpd.Unmarshal(data)
			if err != nil {
				return err
			}

			if summaryOutput {
				return writeJSON(cmd, manifest.Summarize("", m))
			}

			out, err := mpd.Marshal(m)
			if err != nil {
				return err
			}
			return writeOutput(cmd, outputPath, out)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the encoded manifest to a file")
	cmd.Flags().BoolVar(&summaryOutput, "summary", false, "Print a JSON summary instead of XML")
	return cmd
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// errInvalid is returned after the offending documents have been reported
var errInvalid = errors.New("one or more manifests are invalid")

type validationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Kind   string   `json:"kind,omitempty"`
	Entity string   `json:"entity,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Error  string   `json:"error,omitempty"`
}

func newValidateCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that manifests decode and satisfy every constraint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validationResult, 0, len(args))
			failed := false
			for _, path := range args {
				res, err := validateFile(cmd, path)
				if err != nil {
					return err
				}
				failed = failed || !res.Valid
				results = append(results, res)
			}

			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					if res.Valid {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", res.File)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", res.File, res.Kind, res.Error)
				}
			}

			if failed {
				return errInvalid
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	return cmd
}

// validateFile reports rejected documents in the result; only I/O failures
// are returned as errors
func validateFile(cmd *cobra.Command, path string) (validationResult, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return validationResult{}, err
	}

	res := validationResult{File: path, Valid: true}
	if _, err := mpd.Unmarshal(data); err != nil {
		kind, ok := manifest.Classify(err)
		if !ok {
			return validationResult{}, err
		}
		res.Valid = false
		res.Kind = kind
		res.Error = err.Error()

		var verr *mpd.ValidationError
		if errors.As(err, &verr) {
			res.Entity = verr.Entity
			res.Fields = verr.Fields
		}
	}
	return res, nil
}

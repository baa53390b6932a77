package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

func newInspectCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the presentation, periods and representations of a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			m, err := mpd.Unmarshal(data)
			if err != nil {
				return err
			}

			summary := manifest.Summarize("", m)
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderTable([]string{"Field", "Value"}, presentationRows(summary), nil))
			if summary.RepresentationCount() == 0 {
				fmt.Fprintln(out, "No representations")
				return nil
			}
			fmt.Fprint(out, renderTable(
				[]string{"Period", "Set", "Type", "Lang", "Representation", "Bandwidth", "Resolution", "Frame rate", "Codecs"},
				representationRows(summary),
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	return cmd
}

func presentationRows(s *models.ManifestSummary) [][]string {
	rows := [][]string{{"Type", s.Type}}
	if s.ID != "" {
		rows = append(rows, []string{"ID", s.ID})
	}
	if len(s.Profiles) > 0 {
		rows = append(rows, []string{"Profiles", strings.Join(s.Profiles, "\n")})
	}
	if s.MediaPresentationDuration != "" {
		rows = append(rows, []string{"Duration", s.MediaPresentationDuration})
	}
	if s.MinBufferTime != "" {
		rows = append(rows, []string{"Min buffer", s.MinBufferTime})
	}
	if s.AvailabilityStartTime != nil {
		rows = append(rows, []string{"Available from", s.AvailabilityStartTime.UTC().Format("2006-01-02T15:04:05Z07:00")})
	}
	if s.PublishTime != nil {
		rows = append(rows, []string{"Published", s.PublishTime.UTC().Format("2006-01-02T15:04:05Z07:00")})
	}
	rows = append(rows, []string{"Periods", strconv.Itoa(len(s.Periods))})
	return rows
}

func representationRows(s *models.ManifestSummary) [][]string {
	var rows [][]string
	for i, p := range s.Periods {
		period := p.ID
		if period == "" {
			period = "#" + strconv.Itoa(i)
		}
		if p.Remote != "" {
			period += " (remote)"
		}

		for _, as := range p.AdaptationSets {
			set := ""
			if as.ID != nil {
				set = strconv.FormatUint(uint64(*as.ID), 10)
			}
			kind := as.ContentType
			if kind == "" {
				kind = as.MimeType
			}
			if as.Protected {
				kind += " (protected)"
			}

			for _, r := range as.Representations {
				resolution := ""
				if r.Width > 0 && r.Height > 0 {
					resolution = fmt.Sprintf("%dx%d", r.Width, r.Height)
				}
				rows = append(rows, []string{
					period,
					set,
					kind,
					as.Lang,
					r.ID,
					formatBandwidth(r.Bandwidth),
					resolution,
					r.FrameRate,
					strings.Join(r.Codecs, ","),
				})
			}
		}
	}
	return rows
}

func formatBandwidth(bps uint32) string {
	switch {
	case bps >= 1_000_000:
		return fmt.Sprintf("%.2f Mbps", float64(bps)/1_000_000)
	case bps >= 1_000:
		return fmt.Sprintf("%.0f kbps", float64(bps)/1_000)
	default:
		return fmt.Sprintf("%d bps", bps)
	}
}

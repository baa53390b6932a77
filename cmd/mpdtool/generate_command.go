package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/manifest"
	"github.com/therealutkarshpriyadarshi/dashmpd/internal/packager"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

func newGenerateCommand() *cobra.Command {
	var req manifest.GenerateRequest
	var outputPath, source string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a manifest for a rendition ladder",
		Example: `  mpdtool generate --ladder 1080p,720p,360p --duration 10m -o vod.mpd
  mpdtool generate --live --ladder 720p --utc-timing https://time.example.com/
  mpdtool generate --source 1280x720 --duration 5m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source != "" {
				if _, err := fmt.Sscanf(source, "%dx%d", &req.SourceWidth, &req.SourceHeight); err != nil {
					return fmt.Errorf("invalid --source %q, want WIDTHxHEIGHT", source)
				}
				if !cmd.Flags().Changed("ladder") {
					req.Ladder = nil
				}
			}

			opts, err := req.Options([]mpd.Profile{mpd.ProfileISOLive})
			if err != nil {
				return err
			}

			result, err := packager.GenerateDASH(opts)
			if err != nil {
				return err
			}

			data, err := mpd.Marshal(result.Manifest)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd, outputPath, data); err != nil {
				return err
			}

			if outputPath != "" && outputPath != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s with %d representations\n", outputPath, len(result.Representations))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Title, "title", "", "Program title")
	flags.BoolVar(&req.Live, "live", false, "Generate a dynamic (live) presentation")
	flags.StringSliceVar(&req.Ladder, "ladder", []string{"1080p", "720p", "480p", "360p"}, "Renditions to include")
	flags.StringVar(&source, "source", "", "Pick renditions that fit a WIDTHxHEIGHT source instead of --ladder")
	flags.StringVar(&req.SegmentDuration, "segment-duration", "", "Segment duration, e.g. 4s")
	flags.StringVar(&req.Duration, "duration", "", "Presentation duration for static manifests, e.g. 1h30m")
	flags.StringVar(&req.TimeShiftBufferDepth, "time-shift-buffer", "", "Time shift buffer depth for live manifests")
	flags.StringVar(&req.AudioLang, "audio-lang", "", "Audio language tag")
	flags.StringVar(&req.BaseURL, "base-url", "", "BaseURL for media segments")
	flags.StringVar(&req.UTCTimingURL, "utc-timing", "", "UTCTiming source for live manifests")
	flags.StringSliceVar(&req.Profiles, "profile", nil, "DASH profile URN (repeatable)")
	flags.StringVarP(&outputPath, "output", "o", "", "Write the manifest to a file")

	return cmd
}

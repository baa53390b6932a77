package manifest

import (
	"fmt"
	"strings"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/packager"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// GenerateRequest describes a rendition ladder to package as a DASH manifest.
// Durations use Go syntax ("4s", "1h30m"). When Ladder is empty the renditions
// are picked from the source dimensions.
type GenerateRequest struct {
	Title                string   `json:"title"`
	Live                 bool     `json:"live"`
	Ladder               []string `json:"ladder"`
	SourceWidth          int      `json:"source_width,omitempty"`
	SourceHeight         int      `json:"source_height,omitempty"`
	SegmentDuration      string   `json:"segment_duration,omitempty"`
	Duration             string   `json:"duration,omitempty"`
	TimeShiftBufferDepth string   `json:"time_shift_buffer_depth,omitempty"`
	AudioLang            string   `json:"audio_lang,omitempty"`
	BaseURL              string   `json:"base_url,omitempty"`
	UTCTimingURL         string   `json:"utc_timing_url,omitempty"`
	Profiles             []string `json:"profiles,omitempty"`
}

// Options converts the request into packager options. defaults apply when
// the request names no profiles.
func (r GenerateRequest) Options(defaults []mpd.Profile) (packager.DASHOptions, error) {
	var resolutions []models.ResolutionProfile
	switch {
	case len(r.Ladder) > 0:
		var unknown []string
		resolutions, unknown = models.ParseLadder(r.Ladder)
		if len(unknown) > 0 {
			return packager.DASHOptions{}, fmt.Errorf("%w: %s", ErrUnknownRendition, strings.Join(unknown, ", "))
		}
	case r.SourceWidth > 0 && r.SourceHeight > 0:
		resolutions = models.SelectResolutionsForVideo(r.SourceWidth, r.SourceHeight)
	case r.SourceWidth < 0 || r.SourceHeight < 0:
		return packager.DASHOptions{}, fmt.Errorf("invalid source size %dx%d", r.SourceWidth, r.SourceHeight)
	}

	opts := packager.DASHOptions{
		Title:        r.Title,
		Live:         r.Live,
		Resolutions:  resolutions,
		AudioLang:    r.AudioLang,
		BaseURL:      r.BaseURL,
		UTCTimingURL: r.UTCTimingURL,
		Profiles:     defaults,
	}

	var err error
	if opts.SegmentDuration, err = parseOptionalDuration("segment_duration", r.SegmentDuration); err != nil {
		return packager.DASHOptions{}, err
	}
	if opts.Duration, err = parseOptionalDuration("duration", r.Duration); err != nil {
		return packager.DASHOptions{}, err
	}
	if opts.TimeShiftBufferDepth, err = parseOptionalDuration("time_shift_buffer_depth", r.TimeShiftBufferDepth); err != nil {
		return packager.DASHOptions{}, err
	}

	if len(r.Profiles) > 0 {
		opts.Profiles = make([]mpd.Profile, 0, len(r.Profiles))
		for _, p := range r.Profiles {
			profile, err := mpd.ParseProfile(p)
			if err != nil {
				return packager.DASHOptions{}, err
			}
			opts.Profiles = append(opts.Profiles, profile)
		}
	}

	return opts, nil
}

func parseOptionalDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", field, s)
	}
	return d, nil
}

package packager

import (
	"errors"
	"fmt"
	"time"

	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// Segment naming shared with the packager that writes the media.
const (
	InitSegmentTemplate  = "init-stream$RepresentationID$.m4s"
	MediaSegmentTemplate = "chunk-stream$RepresentationID$-$Number%05d$.m4s"

	AudioChannelScheme = "urn:mpeg:dash:23003:3:audio_channel_configuration:2011"
	UTCTimingScheme    = "urn:mpeg:dash:utc:http-xsdate:2014"
)

var (
	ErrNoResolutions = errors.New("no resolutions specified for DASH")
	ErrNoDuration    = errors.New("static presentation needs a duration")
)

// DASHOptions holds options for manifest generation
type DASHOptions struct {
	Title           string
	Live            bool
	Resolutions     []models.ResolutionProfile
	SegmentDuration time.Duration // default: 4s
	Timescale       uint32        // default: 90000
	FrameRate       mpd.FrameRate // default: 30/1
	AudioLang       string        // default: "en"
	Profiles        []mpd.Profile // default: isoff-live
	BaseURL         string

	// Static presentations
	Duration time.Duration

	// Dynamic presentations
	AvailabilityStartTime time.Time     // default: Now()
	TimeShiftBufferDepth  time.Duration // default: 1m
	UTCTimingURL          string

	Now func() time.Time
}

// DASHResult holds the generated manifest and the renditions it advertises
type DASHResult struct {
	Manifest        mpd.MPD
	Representations []DASHRepresentation
}

// DASHRepresentation represents a single DASH representation
type DASHRepresentation struct {
	Resolution    models.ResolutionProfile
	ID            string
	Bandwidth     uint32
	InitSegment   string
	MediaTemplate string
}

func (o *DASHOptions) setDefaults() {
	if o.SegmentDuration <= 0 {
		o.SegmentDuration = 4 * time.Second
	}
	if o.Timescale == 0 {
		o.Timescale = 90000
	}
	if o.FrameRate.Frames() == 0 {
		o.FrameRate, _ = mpd.NewFrameRate(30, 1)
	}
	if o.AudioLang == "" {
		o.AudioLang = "en"
	}
	if len(o.Profiles) == 0 {
		o.Profiles = []mpd.Profile{mpd.ProfileISOLive}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Live {
		if o.AvailabilityStartTime.IsZero() {
			o.AvailabilityStartTime = o.Now().UTC().Truncate(time.Second)
		}
		if o.TimeShiftBufferDepth <= 0 {
			o.TimeShiftBufferDepth = time.Minute
		}
	}
}

// GenerateDASH builds an MPD for a resolution ladder: one video AdaptationSet
// with a representation per rendition and one audio AdaptationSet.
func GenerateDASH(opts DASHOptions) (*DASHResult, error) {
	if len(opts.Resolutions) == 0 {
		return nil, ErrNoResolutions
	}
	if !opts.Live && opts.Duration <= 0 {
		return nil, ErrNoDuration
	}
	opts.setDefaults()

	timeline, err := buildTimeline(opts)
	if err != nil {
		return nil, err
	}
	tmpl, err := (&mpd.SegmentTemplateBuilder{}).
		Timescale(opts.Timescale).
		StartNumber(1).
		InitializationTemplate(InitSegmentTemplate).
		Media(MediaSegmentTemplate).
		SegmentTimeline(timeline).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build segment template: %w", err)
	}

	result := &DASHResult{
		Representations: make([]DASHRepresentation, 0, len(opts.Resolutions)),
	}

	video, err := videoAdaptationSet(opts, tmpl, result)
	if err != nil {
		return nil, err
	}
	audio, err := audioAdaptationSet(opts, tmpl, result)
	if err != nil {
		return nil, err
	}

	period := (&mpd.PeriodBuilder{}).
		ID("0").
		Start(0).
		AdaptationSet(append([]mpd.AdaptationSet{video}, audio...)...)
	if !opts.Live {
		period.Duration(opts.Duration)
	}
	p, err := period.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build period: %w", err)
	}

	b := (&mpd.MPDBuilder{}).
		Profiles(opts.Profiles...).
		MinBufferTime(2 * opts.SegmentDuration).
		MaxSegmentDuration(opts.SegmentDuration).
		Period(p)

	if opts.Title != "" {
		info, err := (&mpd.ProgramInformationBuilder{}).Title(opts.Title).Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build program information: %w", err)
		}
		b.ProgramInformation(info)
	}
	if opts.BaseURL != "" {
		base, err := (&mpd.BaseURLBuilder{}).URL(opts.BaseURL).Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build base URL: %w", err)
		}
		b.BaseURL(base)
	}

	if opts.Live {
		b.Type(mpd.PresentationDynamic).
			AvailabilityStartTime(opts.AvailabilityStartTime).
			PublishTime(opts.Now().UTC().Truncate(time.Second)).
			MinimumUpdatePeriod(opts.SegmentDuration).
			TimeShiftBufferDepth(opts.TimeShiftBufferDepth).
			SuggestedPresentationDelay(3 * opts.SegmentDuration)
		if opts.UTCTimingURL != "" {
			timing, err := (&mpd.DescriptorBuilder{}).SchemeIDURI(UTCTimingScheme).Value(opts.UTCTimingURL).Build()
			if err != nil {
				return nil, fmt.Errorf("failed to build UTCTiming: %w", err)
			}
			b.UTCTiming(timing)
		}
	} else {
		b.Type(mpd.PresentationStatic).MediaPresentationDuration(opts.Duration)
	}

	manifest, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build MPD: %w", err)
	}
	result.Manifest = manifest

	return result, nil
}

// buildTimeline covers the whole presentation for static manifests. Dynamic
// manifests get one open-ended entry that repeats until the next update.
func buildTimeline(opts DASHOptions) (mpd.SegmentTimeline, error) {
	seg := toTimescale(opts.SegmentDuration, opts.Timescale)
	if seg == 0 {
		return mpd.SegmentTimeline{}, fmt.Errorf("segment duration %v is below one tick at timescale %d", opts.SegmentDuration, opts.Timescale)
	}

	var entries []mpd.Segment
	if opts.Live {
		s, err := (&mpd.SegmentBuilder{}).T(0).D(seg).R(-1).Build()
		if err != nil {
			return mpd.SegmentTimeline{}, err
		}
		entries = append(entries, s)
	} else {
		total := toTimescale(opts.Duration, opts.Timescale)
		full, rem := total/seg, total%seg
		if full > 0 {
			s, err := (&mpd.SegmentBuilder{}).T(0).D(seg).R(int64(full) - 1).Build()
			if err != nil {
				return mpd.SegmentTimeline{}, err
			}
			entries = append(entries, s)
		}
		if rem > 0 {
			b := (&mpd.SegmentBuilder{}).D(rem)
			if full == 0 {
				b.T(0)
			}
			s, err := b.Build()
			if err != nil {
				return mpd.SegmentTimeline{}, err
			}
			entries = append(entries, s)
		}
	}

	return (&mpd.SegmentTimelineBuilder{}).S(entries...).Build()
}

func videoAdaptationSet(opts DASHOptions, tmpl mpd.SegmentTemplate, result *DASHResult) (mpd.AdaptationSet, error) {
	role, err := (&mpd.DescriptorBuilder{}).SchemeIDURI(mpd.RoleScheme).Value("main").Build()
	if err != nil {
		return mpd.AdaptationSet{}, err
	}

	var maxWidth, maxHeight uint32
	reps := make([]mpd.Representation, 0, len(opts.Resolutions))
	for _, res := range opts.Resolutions {
		codecs, err := mpd.NewCodecs(res.VideoCodec())
		if err != nil {
			return mpd.AdaptationSet{}, fmt.Errorf("codec for %s: %w", res.Name, err)
		}

		id := fmt.Sprintf("video_%s", res.Name)
		rep, err := (&mpd.RepresentationBuilder{}).
			ID(mpd.NoWhitespace(id)).
			Bandwidth(res.Bandwidth()).
			Common((&mpd.CommonAttributesBuilder{}).
				Width(uint32(res.Width)).
				Height(uint32(res.Height)).
				Sar(mpd.NewRatio(1, 1)).
				Codecs(codecs).
				Build()).
			Build()
		if err != nil {
			return mpd.AdaptationSet{}, fmt.Errorf("representation %s: %w", id, err)
		}
		reps = append(reps, rep)

		maxWidth = max(maxWidth, uint32(res.Width))
		maxHeight = max(maxHeight, uint32(res.Height))

		result.Representations = append(result.Representations, DASHRepresentation{
			Resolution:    res,
			ID:            id,
			Bandwidth:     res.Bandwidth(),
			InitSegment:   InitSegmentTemplate,
			MediaTemplate: MediaSegmentTemplate,
		})
	}

	as, err := (&mpd.AdaptationSetBuilder{}).
		ID(0).
		ContentType(mpd.ContentVideo).
		SegmentAlignment(true).
		MaxWidth(maxWidth).
		MaxHeight(maxHeight).
		Par(mpd.NewRatio(uint64(maxWidth), uint64(maxHeight))).
		Common((&mpd.CommonAttributesBuilder{}).
			MimeType("video/mp4").
			FrameRate(opts.FrameRate).
			StartWithSAP(mpd.SAPType1).
			Build()).
		Role(role).
		SegmentTemplate(tmpl).
		Representation(reps...).
		Build()
	if err != nil {
		return mpd.AdaptationSet{}, fmt.Errorf("video adaptation set: %w", err)
	}
	return as, nil
}

// audioAdaptationSet advertises one AAC representation per distinct audio
// bitrate in the ladder. It returns nothing when the ladder carries no audio.
func audioAdaptationSet(opts DASHOptions, tmpl mpd.SegmentTemplate, result *DASHResult) ([]mpd.AdaptationSet, error) {
	lang, err := mpd.ParseLanguageTag(opts.AudioLang)
	if err != nil {
		return nil, err
	}
	role, err := (&mpd.DescriptorBuilder{}).SchemeIDURI(mpd.RoleScheme).Value("main").Build()
	if err != nil {
		return nil, err
	}
	channels, err := (&mpd.DescriptorBuilder{}).SchemeIDURI(AudioChannelScheme).Value("2").Build()
	if err != nil {
		return nil, err
	}
	codecs, err := mpd.NewCodecs(models.CodecAACLC)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var reps []mpd.Representation
	for _, res := range opts.Resolutions {
		if res.AudioBitrate <= 0 || seen[res.AudioBitrate] {
			continue
		}
		seen[res.AudioBitrate] = true

		id := fmt.Sprintf("audio_%dk", res.AudioBitrate/1000)
		rep, err := (&mpd.RepresentationBuilder{}).
			ID(mpd.NoWhitespace(id)).
			Bandwidth(uint32(res.AudioBitrate)).
			Build()
		if err != nil {
			return nil, fmt.Errorf("representation %s: %w", id, err)
		}
		reps = append(reps, rep)
		result.Representations = append(result.Representations, DASHRepresentation{
			Resolution:    res,
			ID:            id,
			Bandwidth:     uint32(res.AudioBitrate),
			InitSegment:   InitSegmentTemplate,
			MediaTemplate: MediaSegmentTemplate,
		})
	}
	if len(reps) == 0 {
		return nil, nil
	}

	as, err := (&mpd.AdaptationSetBuilder{}).
		ID(1).
		ContentType(mpd.ContentAudio).
		Lang(lang).
		SegmentAlignment(true).
		Common((&mpd.CommonAttributesBuilder{}).
			MimeType("audio/mp4").
			Codecs(codecs).
			AudioSamplingRate(48000).
			StartWithSAP(mpd.SAPType1).
			AudioChannelConfiguration(channels).
			Build()).
		Role(role).
		SegmentTemplate(tmpl).
		Representation(reps...).
		Build()
	if err != nil {
		return nil, fmt.Errorf("audio adaptation set: %w", err)
	}
	return []mpd.AdaptationSet{as}, nil
}

func toTimescale(d time.Duration, timescale uint32) uint64 {
	return uint64(d / time.Millisecond * time.Duration(timescale) / 1000)
}

package manifest

import (
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/models"
	"github.com/therealutkarshpriyadarshi/dashmpd/pkg/mpd"
)

// Summarize flattens m into the listing view used by the API and the CLI
func Summarize(name string, m mpd.MPD) *models.ManifestSummary {
	f := m.Fields()

	s := &models.ManifestSummary{
		Name:     name,
		ID:       f.ID.Value(),
		Type:     string(f.Type.Or(mpd.PresentationStatic)),
		Profiles: []string{},
		Periods:  make([]models.PeriodSummary, 0, len(f.Period)),
	}

	if profiles, ok := f.Profiles.Get(); ok {
		for _, p := range profiles.Items() {
			s.Profiles = append(s.Profiles, p.String())
		}
	}
	if d, ok := f.MediaPresentationDuration.Get(); ok {
		s.MediaPresentationDuration = d.String()
	}
	if d, ok := f.MinBufferTime.Get(); ok {
		s.MinBufferTime = d.String()
	}
	if t, ok := f.AvailabilityStartTime.Get(); ok {
		ast := t.Time()
		s.AvailabilityStartTime = &ast
	}
	if t, ok := f.PublishTime.Get(); ok {
		pt := t.Time()
		s.PublishTime = &pt
	}

	for _, p := range f.Period {
		s.Periods = append(s.Periods, summarizePeriod(p))
	}

	return s
}

func summarizePeriod(p mpd.Period) models.PeriodSummary {
	f := p.Fields()

	ps := models.PeriodSummary{
		ID:             f.ID.Value(),
		Remote:         f.XLinkHref.Value(),
		AdaptationSets: make([]models.AdaptationSummary, 0, len(f.AdaptationSet)),
	}
	if d, ok := f.Start.Get(); ok {
		ps.Start = d.String()
	}
	if d, ok := f.Duration.Get(); ok {
		ps.Duration = d.String()
	}

	for _, as := range f.AdaptationSet {
		ps.AdaptationSets = append(ps.AdaptationSets, summarizeAdaptationSet(as))
	}
	return ps
}

func summarizeAdaptationSet(as mpd.AdaptationSet) models.AdaptationSummary {
	f := as.Fields()

	s := models.AdaptationSummary{
		ContentType:     f.ContentType.Value().String(),
		MimeType:        f.MimeType.Value(),
		Protected:       len(f.ContentProtection) > 0,
		Representations: make([]models.RepresentationSummary, 0, len(f.Representation)),
	}
	if id, ok := f.ID.Get(); ok {
		s.ID = &id
	}
	if lang, ok := f.Lang.Get(); ok {
		// Tags that x/text cannot canonicalise are reported as written
		if canonical, err := lang.Canonical(); err == nil {
			s.Lang = canonical
		} else {
			s.Lang = lang.String()
		}
	}

	for _, r := range f.Representation {
		rf := r.Fields()
		rs := models.RepresentationSummary{
			ID:        rf.ID.Value().String(),
			Bandwidth: rf.Bandwidth.Value(),
			Width:     rf.Width.Value(),
			Height:    rf.Height.Value(),
		}
		if fr, ok := rf.FrameRate.Get(); ok {
			rs.FrameRate = fr.String()
		} else if fr, ok := f.FrameRate.Get(); ok {
			rs.FrameRate = fr.String()
		}
		codecs, ok := rf.Codecs.Get()
		if !ok {
			codecs, ok = f.Codecs.Get()
		}
		if ok {
			rs.Codecs = codecs.IDs()
		}
		if len(rf.ContentProtection) > 0 {
			s.Protected = true
		}
		s.Representations = append(s.Representations, rs)
	}

	return s
}

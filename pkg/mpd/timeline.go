package mpd

import "fmt"

// maxTimelineEntries bounds how many segments Resolve will expand.
const maxTimelineEntries = 1 << 20

// TimelineEntry is one segment of a resolved SegmentTimeline, in timescale units.
type TimelineEntry struct {
	Start    uint64
	Duration uint64
}

// Resolve expands the timeline into one entry per segment. An S without @t starts
// where the previous segment ended; a negative @r repeats until the next S's @t,
// or until periodEnd for the last S.
func (x SegmentTimeline) Resolve(periodEnd uint64) ([]TimelineEntry, error) {
	var (
		entries []TimelineEntry
		t       uint64
	)
	for i, s := range x.f.S {
		sf := s.f
		if start, ok := sf.T.Get(); ok {
			t = start
		}
		d := sf.D.Value()

		repeat := int64(0)
		if r, ok := sf.R.Get(); ok {
			v, fits := r.Int64()
			if !fits {
				return nil, outOfRange("SegmentTimeline", fmt.Sprintf("@r %s does not fit in 64 bits", r), "r")
			}
			repeat = v
		}

		if repeat < 0 {
			end := periodEnd
			if i+1 < len(x.f.S) {
				next, ok := x.f.S[i+1].f.T.Get()
				if !ok {
					return nil, missing("SegmentTimeline", "an S with a negative @r must be followed by an S with @t", "t")
				}
				end = next
			}
			if end <= t {
				return nil, outOfRange("SegmentTimeline",
					fmt.Sprintf("open-ended repeat starting at %d has no end after it", t), "r")
			}
			for t < end {
				if len(entries) >= maxTimelineEntries {
					return nil, outOfRange("SegmentTimeline", "timeline expands to too many segments", "r")
				}
				entries = append(entries, TimelineEntry{Start: t, Duration: d})
				t += d
			}
			continue
		}

		if repeat >= maxTimelineEntries-int64(len(entries)) {
			return nil, outOfRange("SegmentTimeline", "timeline expands to too many segments", "r")
		}
		for k := int64(0); k <= repeat; k++ {
			entries = append(entries, TimelineEntry{Start: t, Duration: d})
			t += d
		}
	}
	return entries, nil
}

// Identifiers lists the template identifiers used by @media, then @initialization.
func (x SegmentTemplate) Identifiers() []TemplateIdentifier {
	var ids []TemplateIdentifier
	for _, tmpl := range []Optional[string]{x.f.Media, x.f.InitializationTemplate} {
		if v, ok := tmpl.Get(); ok {
			ids = append(ids, TemplateIdentifiers(v)...)
		}
	}
	return ids
}

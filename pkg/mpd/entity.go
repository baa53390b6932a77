package mpd

import "encoding/xml"

// decodeEntity decodes the element into a field set and passes it through the
// entity constructor, so a parsed element holds the same invariants as a built one.
func decodeEntity[F, X any](d *xml.Decoder, start xml.StartElement, build func(F) (X, error), dst *X) error {
	var f F
	if err := d.DecodeElement(&f, &start); err != nil {
		return err
	}
	x, err := build(f)
	if err != nil {
		return err
	}
	*dst = x
	return nil
}

func segmentSchemes(entity string, base, list, template bool) error {
	n := 0
	for _, set := range []bool{base, list, template} {
		if set {
			n++
		}
	}
	if n > 1 {
		return conflict(entity, "at most one of SegmentBase, SegmentList and SegmentTemplate may be present",
			"SegmentBase", "SegmentList", "SegmentTemplate")
	}
	return nil
}

package mpd

import (
	"strconv"
	"strings"
)

// ByteRange is a single RFC 7233 byte range "first-last". Either bound may be
// absent: "500-" is open ended and "-500" names the last 500 bytes.
type ByteRange struct {
	first, last       uint64
	hasFirst, hasLast bool
}

// NewByteRange returns the closed range first-last.
func NewByteRange(first, last uint64) (ByteRange, error) {
	r := ByteRange{first: first, last: last, hasFirst: true, hasLast: true}
	if last < first {
		return ByteRange{}, malformed("ByteRange", r.String(), "last byte position is before the first")
	}
	return r, nil
}

// OpenByteRange returns the range starting at first with no end.
func OpenByteRange(first uint64) ByteRange {
	return ByteRange{first: first, hasFirst: true}
}

// ParseByteRange parses first[-last].
func ParseByteRange(s string) (ByteRange, error) {
	if strings.Count(s, "-") > 1 {
		return ByteRange{}, malformed("ByteRange", s, "more than one '-'")
	}
	m := byteRangePattern().FindStringSubmatch(s)
	if m == nil {
		return ByteRange{}, malformed("ByteRange", s, "expected first-last with decimal positions")
	}

	var r ByteRange
	var err error
	if m[1] != "" {
		if r.first, err = strconv.ParseUint(m[1], 10, 64); err != nil {
			return ByteRange{}, upstream("ByteRange", s, err)
		}
		r.hasFirst = true
	}
	if m[2] != "" {
		if r.last, err = strconv.ParseUint(m[2], 10, 64); err != nil {
			return ByteRange{}, upstream("ByteRange", s, err)
		}
		r.hasLast = true
	}
	if r.hasFirst && r.hasLast && r.last < r.first {
		return ByteRange{}, malformed("ByteRange", s, "last byte position is before the first")
	}
	return r, nil
}

// First returns the first byte position, if present.
func (r ByteRange) First() (uint64, bool) { return r.first, r.hasFirst }

// Last returns the last byte position, if present.
func (r ByteRange) Last() (uint64, bool) { return r.last, r.hasLast }

func (r ByteRange) String() string {
	if !r.hasFirst && !r.hasLast {
		return ""
	}
	var b strings.Builder
	if r.hasFirst {
		b.WriteString(strconv.FormatUint(r.first, 10))
	}
	b.WriteByte('-')
	if r.hasLast {
		b.WriteString(strconv.FormatUint(r.last, 10))
	}
	return b.String()
}

func (r ByteRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ByteRange) UnmarshalText(text []byte) error {
	v, err := ParseByteRange(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

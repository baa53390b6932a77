package mpd

import (
	"strings"
	"time"
)

// naiveLayout is xs:dateTime without a timezone designator.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// DateTime is an xs:dateTime instant, normalised to UTC.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t.UTC()}
}

// ParseDateTime parses an xs:dateTime. Values without an offset are read in the
// local timezone.
func ParseDateTime(s string) (DateTime, error) {
	if strings.TrimSpace(s) != s || s == "" {
		return DateTime{}, malformed("DateTime", s, "empty or padded value")
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return NewDateTime(t), nil
	}
	if !hasZone(s) {
		local, lerr := time.ParseInLocation(naiveLayout, s, time.Local)
		if lerr == nil {
			return NewDateTime(local), nil
		}
		err = lerr
	}
	return DateTime{}, upstream("DateTime", s, err)
}

// hasZone reports whether the time part of s ends in Z or a numeric offset.
func hasZone(s string) bool {
	_, clock, ok := strings.Cut(s, "T")
	if !ok {
		return false
	}
	return strings.HasSuffix(clock, "Z") || strings.ContainsAny(clock, "+-")
}

// Time returns the instant in UTC.
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero instant.
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether d and o are the same instant.
func (d DateTime) Equal(o DateTime) bool {
	return d.t.Equal(o.t)
}

// String renders RFC 3339 in UTC with trailing fractional zeros removed.
func (d DateTime) String() string {
	return d.t.UTC().Format(time.RFC3339Nano)
}

func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DateTime) UnmarshalText(text []byte) error {
	v, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

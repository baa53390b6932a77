package mpd

import (
	"strconv"
	"strings"
)

// Ratio is an aspect ratio h:v kept in lowest terms.
type Ratio struct {
	h, v uint64
}

// NewRatio reduces h:v by their greatest common divisor.
func NewRatio(h, v uint64) Ratio {
	if g := gcd(h, v); g > 1 {
		h, v = h/g, v/g
	}
	return Ratio{h: h, v: v}
}

// ParseRatio parses "h:v".
func ParseRatio(s string) (Ratio, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Ratio{}, malformed("Ratio", s, "expected the form h:v")
	}
	var n [2]uint64
	for i, p := range parts {
		if !unsignedPattern().MatchString(p) {
			return Ratio{}, malformed("Ratio", s, "both terms must be non-negative integers")
		}
		x, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Ratio{}, upstream("Ratio", s, err)
		}
		n[i] = x
	}
	return NewRatio(n[0], n[1]), nil
}

// Horizontal returns the reduced first term.
func (r Ratio) Horizontal() uint64 { return r.h }

// Vertical returns the reduced second term.
func (r Ratio) Vertical() uint64 { return r.v }

func (r Ratio) String() string {
	return strconv.FormatUint(r.h, 10) + ":" + strconv.FormatUint(r.v, 10)
}

func (r Ratio) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Ratio) UnmarshalText(text []byte) error {
	v, err := ParseRatio(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

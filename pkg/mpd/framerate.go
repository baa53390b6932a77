package mpd

import "strconv"

// FrameRate is a frame rate "n" or "n/d". The denominator defaults to 1.
type FrameRate struct {
	frames, per uint64
}

// NewFrameRate returns frames/per. A zero denominator is rejected.
func NewFrameRate(frames, per uint64) (FrameRate, error) {
	if per == 0 {
		return FrameRate{}, malformed("FrameRate", strconv.FormatUint(frames, 10)+"/0", "denominator must not be zero")
	}
	return FrameRate{frames: frames, per: per}, nil
}

// ParseFrameRate parses "n" or "n/d".
func ParseFrameRate(s string) (FrameRate, error) {
	m := frameRatePattern().FindStringSubmatch(s)
	if m == nil {
		return FrameRate{}, malformed("FrameRate", s, "expected n or n/d")
	}
	frames, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return FrameRate{}, upstream("FrameRate", s, err)
	}
	per := uint64(1)
	if m[2] != "" {
		if per, err = strconv.ParseUint(m[2], 10, 64); err != nil {
			return FrameRate{}, upstream("FrameRate", s, err)
		}
	}
	return FrameRate{frames: frames, per: per}, nil
}

// Frames returns the numerator.
func (f FrameRate) Frames() uint64 { return f.frames }

// Denominator returns the denominator, 1 when it was omitted.
func (f FrameRate) Denominator() uint64 {
	if f.per == 0 {
		return 1
	}
	return f.per
}

// Float64 returns frames per second.
func (f FrameRate) Float64() float64 {
	return float64(f.frames) / float64(f.Denominator())
}

func (f FrameRate) String() string {
	return strconv.FormatUint(f.frames, 10) + "/" + strconv.FormatUint(f.Denominator(), 10)
}

func (f FrameRate) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FrameRate) UnmarshalText(text []byte) error {
	v, err := ParseFrameRate(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

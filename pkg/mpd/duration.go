package mpd

import (
	"math/big"
	"strconv"
	"strings"
	"time"
)

// Duration is an xs:duration held as a signed nanosecond count.
//
// Parsing accepts the full PnYnMnDTnHnMnS grammar. Calendar units are flattened
// with a year of 365 days and a month of 30 days, and String always renders the
// time form (PT...H...M...S), so "P1D" formats as "PT24H".
type Duration time.Duration

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// ParseDuration parses an xs:duration.
func ParseDuration(s string) (Duration, error) {
	const typ = "Duration"

	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "P") {
		return 0, malformed(typ, s, "missing 'P' designator")
	}
	rest = rest[1:]

	total := new(big.Int)
	inTime := false
	components := 0
	last := -1
	for rest != "" {
		if rest[0] == 'T' {
			if inTime {
				return 0, malformed(typ, s, "repeated 'T' designator")
			}
			inTime = true
			last = -1
			rest = rest[1:]
			if rest == "" {
				return 0, malformed(typ, s, "'T' must be followed by a time component")
			}
			continue
		}

		i := 0
		for i < len(rest) && (isDigit(rest[i]) || rest[i] == '.') {
			i++
		}
		if i == len(rest) {
			return 0, malformed(typ, s, "number without unit designator")
		}
		num, unit := rest[:i], rest[i]
		rest = rest[i+1:]
		if num == "" {
			return 0, malformed(typ, s, "expected digits before '"+string(unit)+"'")
		}

		units := "YMD"
		if inTime {
			units = "HMS"
		}
		idx := strings.IndexByte(units, unit)
		if idx < 0 {
			if inTime {
				return 0, malformed(typ, s, "'"+string(unit)+"' is not a time designator")
			}
			return 0, malformed(typ, s, "'"+string(unit)+"' is not a date designator")
		}
		if idx <= last {
			return 0, malformed(typ, s, "'"+string(unit)+"' repeated or out of order")
		}
		last = idx

		ns, err := componentNanos(s, num, unitLength(unit, inTime), unit == 'S')
		if err != nil {
			return 0, err
		}
		total.Add(total, ns)
		components++
	}
	if components == 0 {
		return 0, malformed(typ, s, "at least one component is required")
	}

	if neg {
		total.Neg(total)
	}
	if !total.IsInt64() {
		return 0, malformed(typ, s, "exceeds the representable range")
	}
	return Duration(total.Int64()), nil
}

func unitLength(unit byte, inTime bool) time.Duration {
	if inTime {
		switch unit {
		case 'H':
			return time.Hour
		case 'M':
			return time.Minute
		default:
			return time.Second
		}
	}
	switch unit {
	case 'Y':
		return year
	case 'M':
		return month
	default:
		return day
	}
}

// componentNanos converts one "n" or "n.f" component into nanoseconds.
func componentNanos(text, num string, unit time.Duration, fractional bool) (*big.Int, error) {
	whole, frac, hasFrac := strings.Cut(num, ".")
	if hasFrac && !fractional {
		return nil, malformed("Duration", text, "only seconds may carry a fraction")
	}
	if whole == "" || (hasFrac && (frac == "" || strings.Contains(frac, "."))) {
		return nil, malformed("Duration", text, "invalid number "+strconv.Quote(num))
	}

	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, malformed("Duration", text, "invalid number "+strconv.Quote(num))
	}
	n.Mul(n, big.NewInt(int64(unit)))

	if hasFrac {
		// sub-nanosecond digits are truncated
		if len(frac) > 9 {
			frac = frac[:9]
		}
		frac += strings.Repeat("0", 9-len(frac))
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return nil, upstream("Duration", text, err)
		}
		n.Add(n, big.NewInt(f))
	}
	return n, nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String renders the canonical [-]PT[nH][nM][n[.f]S] form.
func (d Duration) String() string {
	u := uint64(d)
	neg := d < 0
	if neg {
		u = -u
	}
	if u == 0 {
		return "PT0S"
	}

	// Largest value is 2562047H47M16.854775808S
	var buf [40]byte
	w := len(buf)

	if u%uint64(time.Minute) != 0 {
		w--
		buf[w] = 'S'
		var secs uint64
		w, secs = fmtFrac(buf[:w], u, 9)
		w = fmtInt(buf[:w], secs%60)
	}

	minutes := u / uint64(time.Minute)
	if minutes%60 != 0 {
		w--
		buf[w] = 'M'
		w = fmtInt(buf[:w], minutes%60)
	}
	if hours := minutes / 60; hours > 0 {
		w--
		buf[w] = 'H'
		w = fmtInt(buf[:w], hours)
	}

	if neg {
		return "-PT" + string(buf[w:])
	}
	return "PT" + string(buf[w:])
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// fmtFrac formats the fraction of v/10**prec (e.g., ".12345") into the
// tail of buf, omitting trailing zeros. It omits the decimal
// point too when the fraction is 0. It returns the index where the
// output bytes begin and the value v/10**prec.
func fmtFrac(buf []byte, v uint64, prec int) (nw int, nv uint64) {
	w := len(buf)
	print := false
	for i := 0; i < prec; i++ {
		digit := v % 10
		print = print || digit != 0
		if print {
			w--
			buf[w] = byte(digit) + '0'
		}
		v /= 10
	}
	if print {
		w--
		buf[w] = '.'
	}
	return w, v
}

// fmtInt formats v into the tail of buf.
// It returns the index where the output begins.
func fmtInt(buf []byte, v uint64) int {
	w := len(buf)
	if v == 0 {
		w--
		buf[w] = '0'
	} else {
		for v > 0 {
			w--
			buf[w] = byte(v%10) + '0'
			v /= 10
		}
	}
	return w
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

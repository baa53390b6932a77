package mpd

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
)

// Optional holds a value that may be absent. Absent attributes and elements are
// left out of the XML output.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the value, or the zero value when absent.
func (o Optional[T]) Value() T {
	return o.value
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.present
}

// Or returns the value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	if !o.present {
		return xml.Attr{}, nil
	}
	s, err := encodeText(o.value)
	if err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: name, Value: s}, nil
}

func (o *Optional[T]) UnmarshalXMLAttr(attr xml.Attr) error {
	var v T
	if err := decodeText(attr.Name.Local, &v, attr.Value); err != nil {
		return err
	}
	o.value, o.present = v, true
	return nil
}

func (o Optional[T]) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if !o.present {
		return nil
	}
	return e.EncodeElement(o.value, start)
}

func (o *Optional[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v T
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}
	o.value, o.present = v, true
	return nil
}

// encodeText renders an attribute value in its canonical form.
func encodeText(v any) (string, error) {
	switch x := v.(type) {
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		return string(b), err
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case uint32:
		return strconvUint(uint64(x)), nil
	case uint64:
		return strconvUint(x), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float32:
		return formatDouble(float64(x), 32), nil
	case float64:
		return formatDouble(x, 64), nil
	default:
		return "", fmt.Errorf("mpd: cannot encode %T as text", v)
	}
}

// decodeText parses s into the value dst points to. name identifies the
// attribute in errors.
func decodeText(name string, dst any, s string) error {
	switch p := dst.(type) {
	case encoding.TextUnmarshaler:
		return p.UnmarshalText([]byte(s))
	case *string:
		*p = s
	case *bool:
		switch s {
		case "true", "1":
			*p = true
		case "false", "0":
			*p = false
		default:
			return malformed("boolean @"+name, s, "expected true, false, 1 or 0")
		}
	case *uint32:
		v, err := parseUint32("@"+name, s)
		if err != nil {
			return err
		}
		*p = v
	case *uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return upstream("unsignedLong @"+name, s, err)
		}
		*p = v
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return upstream("int @"+name, s, err)
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return upstream("long @"+name, s, err)
		}
		*p = v
	case *float32:
		v, err := parseDouble(s, 32)
		if err != nil {
			return upstream("float @"+name, s, err)
		}
		*p = float32(v)
	case *float64:
		v, err := parseDouble(s, 64)
		if err != nil {
			return upstream("double @"+name, s, err)
		}
		*p = v
	default:
		return fmt.Errorf("mpd: cannot decode text into %T", dst)
	}
	return nil
}

func formatDouble(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}

func parseDouble(s string, bits int) (float64, error) {
	switch s {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, bits)
}

func strconvUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseUint32(typ, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, upstream(typ, s, err)
	}
	return uint32(v), nil
}

package mpd

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// ErrNotMPD is returned when a document's root element is not MPD.
var ErrNotMPD = errors.New("root element is not MPD")

// ErrMalformedDocument is returned when the input is not well-formed XML, declares
// an encoding that cannot be read, or does not fit the MPD element structure.
var ErrMalformedDocument = errors.New("malformed document")

// namespace prefixes declared on the MPD element, in output order
var namespaceAttrs = []struct {
	local string
	field func(*MPDFields) *Optional[string]
}{
	{"xmlns", func(f *MPDFields) *Optional[string] { return &f.Xmlns }},
	{"xsi", func(f *MPDFields) *Optional[string] { return &f.XmlnsXSI }},
	{"ext", func(f *MPDFields) *Optional[string] { return &f.XmlnsExt }},
	{"xlink", func(f *MPDFields) *Optional[string] { return &f.XmlnsXLink }},
	{"cenc", func(f *MPDFields) *Optional[string] { return &f.XmlnsCenc }},
	{"dvb", func(f *MPDFields) *Optional[string] { return &f.XmlnsDVB }},
	{"scte35", func(f *MPDFields) *Optional[string] { return &f.XmlnsSCTE35 }},
	{"scte214", func(f *MPDFields) *Optional[string] { return &f.XmlnsSCTE214 }},
}

func (x MPD) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	f := x.f
	attrs := make([]xml.Attr, 0, len(namespaceAttrs)+1)
	for _, ns := range namespaceAttrs {
		v, ok := ns.field(&f).Get()
		if !ok {
			continue
		}
		name := "xmlns"
		if ns.local != "xmlns" {
			name += ":" + ns.local
		}
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: v})
	}
	if loc, ok := f.SchemaLocation.Get(); ok {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: loc.String()})
	}

	start.Name = xml.Name{Local: "MPD"}
	start.Attr = append(attrs, start.Attr...)
	return e.EncodeElement(f, start)
}

func (x *MPD) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var f MPDFields
	if err := d.DecodeElement(&f, &start); err != nil {
		return err
	}

	for _, a := range start.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			f.Xmlns = Some(a.Value)
		case a.Name.Space == "xmlns":
			for _, ns := range namespaceAttrs {
				if ns.local == a.Name.Local && ns.local != "xmlns" {
					*ns.field(&f) = Some(a.Value)
				}
			}
		case a.Name.Local == "schemaLocation" && (a.Name.Space == SchemaInstance || a.Name.Space == "xsi"):
			loc, err := ParseWhitespaceSeparatedList[NoWhitespace, *NoWhitespace](a.Value)
			if err != nil {
				return err
			}
			f.SchemaLocation = Some(loc)
		}
	}

	m, err := NewMPD(f)
	if err != nil {
		return err
	}
	*x = m
	return nil
}

// Decode reads one MPD document from r. Every element is validated as it is
// decoded, so the result satisfies the same invariants as a built MPD.
func Decode(r io.Reader) (MPD, error) {
	var charsetErr error
	d := xml.NewDecoder(r)
	d.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		cr, err := charset.NewReaderLabel(label, input)
		if err != nil {
			charsetErr = err
		}
		return cr, err
	}

	for {
		tok, err := d.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return MPD{}, fmt.Errorf("%w: empty document", ErrNotMPD)
			}
			return MPD{}, documentError(err, charsetErr)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "MPD" {
			return MPD{}, fmt.Errorf("%w: found %q", ErrNotMPD, start.Name.Local)
		}
		var m MPD
		if err := d.DecodeElement(&m, &start); err != nil {
			return MPD{}, documentError(err, charsetErr)
		}
		return m, nil
	}
}

// documentError tags XML-level failures with ErrMalformedDocument. Validation
// and scalar errors raised while decoding, and reader failures, pass through.
func documentError(err, charsetErr error) error {
	if charsetErr != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDocument, charsetErr)
	}
	var (
		syntaxErr    *xml.SyntaxError
		tagPathErr   *xml.TagPathError
		unmarshalErr xml.UnmarshalError
	)
	if errors.As(err, &syntaxErr) || errors.As(err, &tagPathErr) || errors.As(err, &unmarshalErr) {
		return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return err
}

// Unmarshal parses an MPD document.
func Unmarshal(data []byte) (MPD, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes m to w as an indented document preceded by the XML declaration.
func Encode(w io.Writer, m MPD) error {
	if _, err := io.WriteString(w, XMLDeclaration+"\n"); err != nil {
		return err
	}
	e := xml.NewEncoder(w)
	e.Indent("", "  ")
	if err := e.Encode(m); err != nil {
		return err
	}
	if err := e.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal renders m as an indented document preceded by the XML declaration.
func Marshal(m MPD) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package mpd

import (
	"slices"
	"strings"
)

// Codecs is an RFC 6381 codecs parameter.
//
// The fancy form "[charset'language']id.profile,..." is used whenever the text
// contains a quote or a dot; otherwise the simple form "id,id" applies.
// Whitespace is allowed only after a comma and is dropped, so String always
// joins ids with a bare comma.
type Codecs struct {
	charset  string
	language string
	ids      []string
	fancy    bool
}

// NewCodecs builds a Codecs from ids, choosing the form from their content.
func NewCodecs(ids ...string) (Codecs, error) {
	return ParseCodecs(strings.Join(ids, ","))
}

// ParseCodecs parses either codecs grammar.
func ParseCodecs(s string) (Codecs, error) {
	if strings.ContainsAny(s, "'.") {
		m := fancyCodecsPattern().FindStringSubmatch(s)
		if m == nil {
			return Codecs{}, malformed("Codecs", s, "does not match [charset'language']id(,id)*")
		}
		p := fancyCodecsPattern()
		return Codecs{
			charset:  m[p.SubexpIndex("charset")],
			language: m[p.SubexpIndex("language")],
			ids:      splitCodecIDs(m[p.SubexpIndex("codecs")]),
			fancy:    true,
		}, nil
	}
	if !simpleCodecsPattern().MatchString(s) {
		return Codecs{}, malformed("Codecs", s, "does not match id(,id)*")
	}
	return Codecs{ids: splitCodecIDs(s)}, nil
}

func splitCodecIDs(s string) []string {
	ids := strings.Split(s, ",")
	for i := range ids {
		ids[i] = strings.TrimSpace(ids[i])
	}
	return ids
}

// IDs returns the codec identifiers in order.
func (c Codecs) IDs() []string {
	return slices.Clone(c.ids)
}

// Charset returns the charset prefix of the fancy form.
func (c Codecs) Charset() string { return c.charset }

// Language returns the language prefix of the fancy form.
func (c Codecs) Language() string { return c.language }

// Fancy reports whether the value uses the fancy grammar.
func (c Codecs) Fancy() bool { return c.fancy }

// Equal reports whether both values render identically.
func (c Codecs) Equal(o Codecs) bool {
	return c.fancy == o.fancy && c.charset == o.charset && c.language == o.language && slices.Equal(c.ids, o.ids)
}

func (c Codecs) String() string {
	list := strings.Join(c.ids, ",")
	if c.fancy && c.charset != "" {
		return c.charset + "'" + c.language + "'" + list
	}
	return list
}

func (c Codecs) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Codecs) UnmarshalText(text []byte) error {
	v, err := ParseCodecs(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

package mpd

import "golang.org/x/text/language"

// NoWhitespace is a string without spaces, tabs or line breaks.
type NoWhitespace string

// ParseNoWhitespace validates s.
func ParseNoWhitespace(s string) (NoWhitespace, error) {
	if !noWhitespacePattern().MatchString(s) {
		return "", malformed("NoWhitespace", s, "contains whitespace")
	}
	return NoWhitespace(s), nil
}

func (n NoWhitespace) String() string { return string(n) }

func (n NoWhitespace) MarshalText() ([]byte, error) { return []byte(n), nil }

func (n *NoWhitespace) UnmarshalText(text []byte) error {
	v, err := ParseNoWhitespace(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Identifier is an xs:ID (NCName).
type Identifier string

// ParseIdentifier validates s as an NCName.
func ParseIdentifier(s string) (Identifier, error) {
	if !ncNamePattern().MatchString(s) {
		return "", malformed("Identifier", s, "not an NCName")
	}
	return Identifier(s), nil
}

func (i Identifier) String() string { return string(i) }

func (i Identifier) MarshalText() ([]byte, error) { return []byte(i), nil }

func (i *Identifier) UnmarshalText(text []byte) error {
	v, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// LanguageTag is an xs:language value such as "en" or "pt-BR".
type LanguageTag string

// ParseLanguageTag validates s against the xs:language grammar.
func ParseLanguageTag(s string) (LanguageTag, error) {
	if !languagePattern().MatchString(s) {
		return "", malformed("LanguageTag", s, "not an xs:language tag")
	}
	return LanguageTag(s), nil
}

// Canonical returns the BCP 47 canonical form, e.g. "en-us" becomes "en-US".
func (l LanguageTag) Canonical() (string, error) {
	tag, err := language.Parse(string(l))
	if err != nil {
		return "", upstream("LanguageTag", string(l), err)
	}
	return tag.String(), nil
}

func (l LanguageTag) String() string { return string(l) }

func (l LanguageTag) MarshalText() ([]byte, error) { return []byte(l), nil }

func (l *LanguageTag) UnmarshalText(text []byte) error {
	v, err := ParseLanguageTag(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// UnsignedInt is an xs:unsignedInt list element.
type UnsignedInt uint32

func (u UnsignedInt) String() string { return strconvUint(uint64(u)) }

func (u UnsignedInt) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *UnsignedInt) UnmarshalText(text []byte) error {
	v, err := parseUint32("UnsignedInt", string(text))
	if err != nil {
		return err
	}
	*u = UnsignedInt(v)
	return nil
}

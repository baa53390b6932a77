package mpd

import (
	"encoding"
	"fmt"
	"slices"
	"strings"
)

// listElement is satisfied by *T for every scalar T that parses from text.
type listElement[T any] interface {
	*T
	encoding.TextUnmarshaler
}

func parseItems[T fmt.Stringer, P listElement[T]](tokens []string) ([]T, error) {
	items := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		var v T
		if err := P(&v).UnmarshalText([]byte(tok)); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func joinItems[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.String()
	}
	return strings.Join(parts, sep)
}

// WhitespaceSeparatedList is an xs:list of T. Runs of whitespace separate items.
type WhitespaceSeparatedList[T fmt.Stringer, P listElement[T]] struct {
	items []T
}

// NewWhitespaceSeparatedList copies items into a list.
func NewWhitespaceSeparatedList[T fmt.Stringer, P listElement[T]](items ...T) WhitespaceSeparatedList[T, P] {
	return WhitespaceSeparatedList[T, P]{items: slices.Clone(items)}
}

// ParseWhitespaceSeparatedList parses s, failing on the first bad element.
func ParseWhitespaceSeparatedList[T fmt.Stringer, P listElement[T]](s string) (WhitespaceSeparatedList[T, P], error) {
	items, err := parseItems[T, P](strings.Fields(s))
	if err != nil {
		return WhitespaceSeparatedList[T, P]{}, err
	}
	return WhitespaceSeparatedList[T, P]{items: items}, nil
}

// Items returns a copy of the elements.
func (l WhitespaceSeparatedList[T, P]) Items() []T { return slices.Clone(l.items) }

// Len returns the number of elements.
func (l WhitespaceSeparatedList[T, P]) Len() int { return len(l.items) }

func (l WhitespaceSeparatedList[T, P]) String() string { return joinItems(l.items, " ") }

func (l WhitespaceSeparatedList[T, P]) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *WhitespaceSeparatedList[T, P]) UnmarshalText(text []byte) error {
	v, err := ParseWhitespaceSeparatedList[T, P](string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// CommaSeparatedList is a comma separated list of T. Consecutive commas do not
// collapse, so "a,,b" fails on the empty item.
type CommaSeparatedList[T fmt.Stringer, P listElement[T]] struct {
	items []T
}

// NewCommaSeparatedList copies items into a list.
func NewCommaSeparatedList[T fmt.Stringer, P listElement[T]](items ...T) CommaSeparatedList[T, P] {
	return CommaSeparatedList[T, P]{items: slices.Clone(items)}
}

// ParseCommaSeparatedList parses s, failing on the first bad element. Spaces
// around an item are ignored.
func ParseCommaSeparatedList[T fmt.Stringer, P listElement[T]](s string) (CommaSeparatedList[T, P], error) {
	if s == "" {
		return CommaSeparatedList[T, P]{}, nil
	}
	tokens := strings.Split(s, ",")
	for i := range tokens {
		tokens[i] = strings.Trim(tokens[i], " \t\r\n")
	}
	items, err := parseItems[T, P](tokens)
	if err != nil {
		return CommaSeparatedList[T, P]{}, err
	}
	return CommaSeparatedList[T, P]{items: items}, nil
}

// Items returns a copy of the elements.
func (l CommaSeparatedList[T, P]) Items() []T { return slices.Clone(l.items) }

// Len returns the number of elements.
func (l CommaSeparatedList[T, P]) Len() int { return len(l.items) }

func (l CommaSeparatedList[T, P]) String() string { return joinItems(l.items, ",") }

func (l CommaSeparatedList[T, P]) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *CommaSeparatedList[T, P]) UnmarshalText(text []byte) error {
	v, err := ParseCommaSeparatedList[T, P](string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// List types used by the document model.
type (
	UIntVector        = WhitespaceSeparatedList[UnsignedInt, *UnsignedInt]
	StringVector      = WhitespaceSeparatedList[NoWhitespace, *NoWhitespace]
	ListOfFourCC      = WhitespaceSeparatedList[FourCC, *FourCC]
	AudioSamplingRate = WhitespaceSeparatedList[UnsignedInt, *UnsignedInt]
	ListOfProfiles    = CommaSeparatedList[Profile, *Profile]
)

// NewUIntVector returns a UIntVector of values.
func NewUIntVector(values ...uint32) UIntVector {
	items := make([]UnsignedInt, len(values))
	for i, v := range values {
		items[i] = UnsignedInt(v)
	}
	return UIntVector{items: items}
}

// NewStringVector validates each token and returns a StringVector.
func NewStringVector(tokens ...string) (StringVector, error) {
	items := make([]NoWhitespace, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			return StringVector{}, malformed("StringVector", t, "empty token")
		}
		v, err := ParseNoWhitespace(t)
		if err != nil {
			return StringVector{}, err
		}
		items = append(items, v)
	}
	return StringVector{items: items}, nil
}

// NewListOfProfiles returns a ListOfProfiles of profiles.
func NewListOfProfiles(profiles ...Profile) ListOfProfiles {
	return ListOfProfiles{items: slices.Clone(profiles)}
}

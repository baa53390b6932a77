package mpd

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is against the typed errors below.
var (
	ErrMalformedValue          = errors.New("malformed value")
	ErrUpstreamCodec           = errors.New("upstream codec failure")
	ErrMissingRequiredField    = errors.New("missing required field")
	ErrInvalidFieldCombination = errors.New("invalid field combination")
	ErrOutOfRange              = errors.New("value out of range")
	ErrEmptyRequiredCollection = errors.New("empty required collection")
)

// MalformedValueError reports text that does not match the grammar of a scalar type.
type MalformedValueError struct {
	Type   string
	Text   string
	Reason string
}

func (e *MalformedValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("malformed %s %q", e.Type, e.Text)
	}
	return fmt.Sprintf("malformed %s %q: %s", e.Type, e.Text, e.Reason)
}

// Is reports whether target is ErrMalformedValue.
func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}

// UpstreamCodecError wraps a failure from strconv, time or math/big.
type UpstreamCodecError struct {
	Type string
	Text string
	Err  error
}

func (e *UpstreamCodecError) Error() string {
	return fmt.Sprintf("cannot decode %s %q: %v", e.Type, e.Text, e.Err)
}

// Is reports whether target is ErrUpstreamCodec.
func (e *UpstreamCodecError) Is(target error) bool {
	return target == ErrUpstreamCodec
}

func (e *UpstreamCodecError) Unwrap() error {
	return e.Err
}

// ValidationKind classifies a failed entity invariant.
type ValidationKind int

const (
	MissingRequiredField ValidationKind = iota + 1
	InvalidFieldCombination
	OutOfRange
	EmptyRequiredCollection
)

func (k ValidationKind) String() string {
	switch k {
	case MissingRequiredField:
		return "missing required field"
	case InvalidFieldCombination:
		return "invalid field combination"
	case OutOfRange:
		return "out of range"
	case EmptyRequiredCollection:
		return "empty required collection"
	default:
		return "unknown"
	}
}

func (k ValidationKind) sentinel() error {
	switch k {
	case MissingRequiredField:
		return ErrMissingRequiredField
	case InvalidFieldCombination:
		return ErrInvalidFieldCombination
	case OutOfRange:
		return ErrOutOfRange
	case EmptyRequiredCollection:
		return ErrEmptyRequiredCollection
	default:
		return nil
	}
}

// ValidationError is returned by Build when an entity invariant does not hold.
// Fields names the XML attributes or elements involved.
type ValidationError struct {
	Entity string
	Fields []string
	Kind   ValidationKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %s", e.Entity, e.Kind, strings.Join(e.Fields, ", "), e.Reason)
}

// Is matches the sentinel of the error's kind.
func (e *ValidationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func missing(entity, reason string, fields ...string) error {
	return &ValidationError{Entity: entity, Fields: fields, Kind: MissingRequiredField, Reason: reason}
}

func conflict(entity, reason string, fields ...string) error {
	return &ValidationError{Entity: entity, Fields: fields, Kind: InvalidFieldCombination, Reason: reason}
}

func outOfRange(entity, reason string, fields ...string) error {
	return &ValidationError{Entity: entity, Fields: fields, Kind: OutOfRange, Reason: reason}
}

func emptyCollection(entity, reason string, fields ...string) error {
	return &ValidationError{Entity: entity, Fields: fields, Kind: EmptyRequiredCollection, Reason: reason}
}

func malformed(typ, text, reason string) error {
	return &MalformedValueError{Type: typ, Text: text, Reason: reason}
}

func upstream(typ, text string, err error) error {
	return &UpstreamCodecError{Type: typ, Text: text, Err: err}
}

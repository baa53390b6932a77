package mpd

import "math/big"

// Integer is an arbitrary precision xs:integer.
type Integer struct {
	v *big.Int
}

// NewInteger returns the Integer with value n.
func NewInteger(n int64) Integer {
	return Integer{v: big.NewInt(n)}
}

// IntegerFromBig copies n.
func IntegerFromBig(n *big.Int) Integer {
	return Integer{v: new(big.Int).Set(n)}
}

// ParseInteger parses [+-]?[0-9]+.
func ParseInteger(s string) (Integer, error) {
	if !integerPattern().MatchString(s) {
		return Integer{}, malformed("Integer", s, "expected [+-]?[0-9]+")
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Integer{}, malformed("Integer", s, "")
	}
	return Integer{v: v}, nil
}

// Big returns a copy of the value.
func (i Integer) Big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

// Int64 returns the value and whether it fits in an int64.
func (i Integer) Int64() (int64, bool) {
	b := i.Big()
	return b.Int64(), b.IsInt64()
}

// Cmp compares i and o as big.Int.Cmp does.
func (i Integer) Cmp(o Integer) int {
	return i.Big().Cmp(o.Big())
}

// Equal reports whether i and o hold the same value.
func (i Integer) Equal(o Integer) bool {
	return i.Cmp(o) == 0
}

func (i Integer) String() string {
	return i.Big().String()
}

func (i Integer) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Integer) UnmarshalText(text []byte) error {
	v, err := ParseInteger(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

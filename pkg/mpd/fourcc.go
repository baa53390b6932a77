package mpd

import "encoding/binary"

// FourCC is a four character code such as "avc1" or "cmfc".
type FourCC [4]byte

// ParseFourCC requires exactly four bytes.
func ParseFourCC(s string) (FourCC, error) {
	if len(s) != 4 {
		return FourCC{}, malformed("FourCC", s, "must be exactly 4 bytes")
	}
	var f FourCC
	copy(f[:], s)
	return f, nil
}

// FourCCFromUint32 decodes a big-endian code.
func FourCCFromUint32(v uint32) FourCC {
	var f FourCC
	binary.BigEndian.PutUint32(f[:], v)
	return f
}

// Uint32 encodes f big-endian.
func (f FourCC) Uint32() uint32 {
	return binary.BigEndian.Uint32(f[:])
}

func (f FourCC) String() string {
	return string(f[:])
}

func (f FourCC) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FourCC) UnmarshalText(text []byte) error {
	v, err := ParseFourCC(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

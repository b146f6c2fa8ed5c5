// Package num provides integers which remember the base in which they
// were written.
//
// A num.Int is a sign, a magnitude, and a [Base].  The base records how
// the value appeared at its source, for example 0xF rather than 15, so
// that renderers can reproduce the original notation when the output
// dialect allows it and fall back to decimal when it does not.
package num

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Base is a numeric base in which an integer can be written.
type Base int

const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

var ErrBadBase = errors.New("bad base")

// Prefix returns the literal prefix which introduces the base, such as
// "0x" for Hex.  Dec has no prefix.
func (b Base) Prefix() string {
	switch b {
	case Bin:
		return "0b"
	case Oct:
		return "0o"
	case Dec:
		return ""
	case Hex:
		return "0x"
	default:
		return ""
	}
}

func (b Base) String() string {
	d, err := b.MarshalText()
	if err != nil {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return string(d)
}

func (b Base) MarshalText() ([]byte, error) {
	switch b {
	case Bin:
		return []byte("bin"), nil
	case Oct:
		return []byte("oct"), nil
	case Dec:
		return []byte("dec"), nil
	case Hex:
		return []byte("hex"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadBase, int(b))
	}
}

func (b *Base) UnmarshalText(d []byte) error {
	bb, err := ParseBase(string(d))
	if err != nil {
		return err
	}
	*b = bb
	return nil
}

var baseNames = map[string]Base{
	"bin": Bin,
	"b":   Bin,
	"oct": Oct,
	"o":   Oct,
	"dec": Dec,
	"d":   Dec,
	"hex": Hex,
	"x":   Hex,
}

func ParseBase(v string) (Base, error) {
	b, ok := baseNames[v]
	if !ok {
		return Dec, fmt.Errorf("%w: %q", ErrBadBase, v)
	}
	return b, nil
}

// Bases returns the set containing exactly the given bases.
func Bases(bs ...Base) BaseSet {
	var s BaseSet
	return s.With(bs...)
}

// BaseSet is a set of bases.  The zero value is the empty set.
type BaseSet uint8

func baseBit(b Base) BaseSet {
	switch b {
	case Bin:
		return 1
	case Oct:
		return 2
	case Dec:
		return 4
	case Hex:
		return 8
	default:
		return 0
	}
}

func (s BaseSet) Has(b Base) bool {
	return s&baseBit(b) != 0
}

// With returns s extended with the given bases.
func (s BaseSet) With(bs ...Base) BaseSet {
	for _, b := range bs {
		s |= baseBit(b)
	}
	return s
}

func (s BaseSet) IsEmpty() bool {
	return s == 0
}

func (s BaseSet) String() string {
	parts := []string{}
	for _, b := range []Base{Bin, Oct, Dec, Hex} {
		if s.Has(b) {
			parts = append(parts, b.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// maxSafe is the largest magnitude which round-trips through an IEEE-754
// double, the number type of strict JSON readers.
const maxSafe = uint64(1) << 53

// Int is an integer together with the base in which it was written.
type Int struct {
	neg  bool
	mag  uint64
	base Base
}

// New returns the Int for v written in base b.
func New(v int64, b Base) Int {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return Int{neg: v < 0, mag: mag, base: b}
}

// NewUint returns the Int for v written in base b.  NewUint covers the
// upper half of the uint64 range, which New cannot express.
func NewUint(v uint64, b Base) Int {
	return Int{mag: v, base: b}
}

// Base is the base in which the integer was written.
func (v Int) Base() Base {
	return v.base
}

func (v Int) Negative() bool {
	return v.neg && v.mag != 0
}

func (v Int) Magnitude() uint64 {
	return v.mag
}

// SafeJSON reports whether the value survives a strict JSON reader,
// which holds numbers as IEEE-754 doubles.
func (v Int) SafeJSON() bool {
	return v.mag <= maxSafe
}

// Text renders the integer in base b, sign first, then the base prefix,
// then the digits.  Hex digits are upper case.
func (v Int) Text(b Base) string {
	digits := strconv.FormatUint(v.mag, int(b))
	if b == Hex {
		digits = strings.ToUpper(digits)
	}
	sign := ""
	if v.Negative() {
		sign = "-"
	}
	return sign + b.Prefix() + digits
}

// String renders the integer in its own base.
func (v Int) String() string {
	return v.Text(v.base)
}

func (v Int) MarshalText() ([]byte, error) {
	return []byte(v.Text(v.base)), nil
}

func (v *Int) UnmarshalText(d []byte) error {
	s := string(d)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	base := Dec
	for _, b := range []Base{Bin, Oct, Hex} {
		if strings.HasPrefix(s, b.Prefix()) {
			base = b
			s = s[len(b.Prefix()):]
			break
		}
	}
	mag, err := strconv.ParseUint(s, int(base), 64)
	if err != nil {
		return err
	}
	*v = Int{neg: neg, mag: mag, base: base}
	return nil
}

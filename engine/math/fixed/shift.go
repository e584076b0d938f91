// Package fixed implements fixed point numbers whose count of fractional
// bits is part of the type.
//
// The precision is picked with a Shift marker type, so Fixed32[U16] and
// Fixed32[U8] are different types and mixing them is a compile error:
//
//	a := fixed.NewFixed32[fixed.U16](3)
//	b := fixed.NewFixed32FromFloat[fixed.U16](0.25)
//	c := a.Mul(b) // 0.75
//
// Any zero-size type with a Bits method can be used as a Shift, the U*
// markers below cover the common cases.
package fixed

// Shift reports how many of the low bits of a fixed point value hold the
// fractional part. Implementations must return a constant.
type Shift interface {
	Bits() uint
}

// Shift markers usable with both Fixed32 and Fixed64.
type (
	U0  struct{}
	U1  struct{}
	U2  struct{}
	U3  struct{}
	U4  struct{}
	U5  struct{}
	U6  struct{}
	U7  struct{}
	U8  struct{}
	U9  struct{}
	U10 struct{}
	U11 struct{}
	U12 struct{}
	U13 struct{}
	U14 struct{}
	U15 struct{}
	U16 struct{}
	U17 struct{}
	U18 struct{}
	U19 struct{}
	U20 struct{}
	U21 struct{}
	U22 struct{}
	U23 struct{}
	U24 struct{}
	U25 struct{}
	U26 struct{}
	U27 struct{}
	U28 struct{}
	U29 struct{}
	U30 struct{}
)

// Shift markers for Fixed64 only. They are wider than the 30 fractional bits
// a Fixed32 can hold, so any Fixed32 using them panics with
// core.ErrInvalidShift.
type (
	U31 struct{}
	U32 struct{}
	U40 struct{}
	U48 struct{}
	U56 struct{}
	U62 struct{}
)

func (U0) Bits() uint  { return 0 }
func (U1) Bits() uint  { return 1 }
func (U2) Bits() uint  { return 2 }
func (U3) Bits() uint  { return 3 }
func (U4) Bits() uint  { return 4 }
func (U5) Bits() uint  { return 5 }
func (U6) Bits() uint  { return 6 }
func (U7) Bits() uint  { return 7 }
func (U8) Bits() uint  { return 8 }
func (U9) Bits() uint  { return 9 }
func (U10) Bits() uint { return 10 }
func (U11) Bits() uint { return 11 }
func (U12) Bits() uint { return 12 }
func (U13) Bits() uint { return 13 }
func (U14) Bits() uint { return 14 }
func (U15) Bits() uint { return 15 }
func (U16) Bits() uint { return 16 }
func (U17) Bits() uint { return 17 }
func (U18) Bits() uint { return 18 }
func (U19) Bits() uint { return 19 }
func (U20) Bits() uint { return 20 }
func (U21) Bits() uint { return 21 }
func (U22) Bits() uint { return 22 }
func (U23) Bits() uint { return 23 }
func (U24) Bits() uint { return 24 }
func (U25) Bits() uint { return 25 }
func (U26) Bits() uint { return 26 }
func (U27) Bits() uint { return 27 }
func (U28) Bits() uint { return 28 }
func (U29) Bits() uint { return 29 }
func (U30) Bits() uint { return 30 }
func (U31) Bits() uint { return 31 }
func (U32) Bits() uint { return 32 }
func (U40) Bits() uint { return 40 }
func (U48) Bits() uint { return 48 }
func (U56) Bits() uint { return 56 }
func (U62) Bits() uint { return 62 }

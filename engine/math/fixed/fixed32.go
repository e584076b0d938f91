package fixed

import (
	"fmt"
	m "math"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/geom3/engine/core"
	"github.com/spaghettifunk/geom3/engine/math"
)

const maxShift32 = 30

// Fixed32 is a 32 bit fixed point number storing round(value * 2^S.Bits()).
//
// Addition, subtraction and negation wrap around like int32 does.
// Multiplication and division go through a 64 bit intermediate and panic
// with an *ArithmeticError when the result does not fit in 32 bits or the
// divisor is zero; the Checked variants return the error instead.
type Fixed32[S Shift] struct {
	raw int32
}

func shift32[S Shift]() uint {
	var s S
	bits := s.Bits()
	if bits > maxShift32 {
		must(0, newError("Fixed32", "shift", core.ErrInvalidShift))
	}
	return bits
}

func narrow32[S Shift](op string, v int64) (Fixed32[S], error) {
	if v > m.MaxInt32 || v < m.MinInt32 {
		return Fixed32[S]{}, newError("Fixed32", op, core.ErrOverflow)
	}
	return Fixed32[S]{int32(v)}, nil
}

// NewFixed32 converts an integer exactly. It panics when n * 2^S does not
// fit in 32 bits.
func NewFixed32[S Shift](n int32) Fixed32[S] {
	return must(NewFixed32Checked[S](n))
}

func NewFixed32Checked[S Shift](n int32) (Fixed32[S], error) {
	return narrow32[S]("conversion", int64(n)<<shift32[S]())
}

// NewFixed32FromFloat rounds f * 2^S to the nearest integer, halves away
// from zero. Values outside the representable range saturate to the
// largest or smallest Fixed32 and NaN converts to zero.
func NewFixed32FromFloat[S Shift](f float32) Fixed32[S] {
	scaled := m.Round(float64(f) * float64(int64(1)<<shift32[S]()))
	if m.IsNaN(scaled) {
		return Fixed32[S]{}
	}
	return Fixed32[S]{int32(math.Clamp(scaled, m.MinInt32, m.MaxInt32))}
}

// NewFixed32FromRaw wraps an already scaled value.
func NewFixed32FromRaw[S Shift](raw int32) Fixed32[S] {
	return Fixed32[S]{raw}
}

// Raw returns the scaled integer backing f.
func (f Fixed32[S]) Raw() int32 { return f.raw }

// ToInt32 drops the fractional part, truncating toward zero.
func (f Fixed32[S]) ToInt32() int32 { return f.raw / (int32(1) << shift32[S]()) }

func (f Fixed32[S]) ToFloat32() float32 {
	return float32(f.raw) / float32(int64(1)<<shift32[S]())
}

func (f Fixed32[S]) ToFloat64() float64 {
	return float64(f.raw) / float64(int64(1)<<shift32[S]())
}

func (f Fixed32[S]) Add(o Fixed32[S]) Fixed32[S] { return Fixed32[S]{f.raw + o.raw} }
func (f Fixed32[S]) Sub(o Fixed32[S]) Fixed32[S] { return Fixed32[S]{f.raw - o.raw} }
func (f Fixed32[S]) Neg() Fixed32[S]             { return Fixed32[S]{-f.raw} }

func (f Fixed32[S]) Mul(o Fixed32[S]) Fixed32[S] {
	return must(f.MulChecked(o))
}

func (f Fixed32[S]) MulChecked(o Fixed32[S]) (Fixed32[S], error) {
	return narrow32[S]("multiplication", int64(f.raw)*int64(o.raw)/(int64(1)<<shift32[S]()))
}

func (f Fixed32[S]) Div(o Fixed32[S]) Fixed32[S] {
	return must(f.DivChecked(o))
}

func (f Fixed32[S]) DivChecked(o Fixed32[S]) (Fixed32[S], error) {
	if o.raw == 0 {
		return Fixed32[S]{}, newError("Fixed32", "division", core.ErrDivisionByZero)
	}
	return narrow32[S]("division", (int64(f.raw)<<shift32[S]())/int64(o.raw))
}

// MulInt multiplies by a plain integer count. No rescaling takes place.
func (f Fixed32[S]) MulInt(n int) Fixed32[S] {
	return must(f.MulIntChecked(n))
}

func (f Fixed32[S]) MulIntChecked(n int) (Fixed32[S], error) {
	if n > m.MaxInt32 || n < m.MinInt32 {
		if f.raw == 0 {
			return f, nil
		}
		return Fixed32[S]{}, newError("Fixed32", "integer multiplication", core.ErrOverflow)
	}
	return narrow32[S]("integer multiplication", int64(f.raw)*int64(n))
}

// DivInt divides by a plain integer count, truncating toward zero.
func (f Fixed32[S]) DivInt(n int) Fixed32[S] {
	return must(f.DivIntChecked(n))
}

func (f Fixed32[S]) DivIntChecked(n int) (Fixed32[S], error) {
	if n == 0 {
		return Fixed32[S]{}, newError("Fixed32", "integer division", core.ErrDivisionByZero)
	}
	return narrow32[S]("integer division", int64(f.raw)/int64(n))
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than o.
func (f Fixed32[S]) Cmp(o Fixed32[S]) int {
	switch {
	case f.raw < o.raw:
		return -1
	case f.raw > o.raw:
		return 1
	}
	return 0
}

// PartialCmp is Cmp for the math.Ordered capability. Fixed point values are
// always ordered.
func (f Fixed32[S]) PartialCmp(o Fixed32[S]) (int, bool) { return f.Cmp(o), true }

func (f Fixed32[S]) Less(o Fixed32[S]) bool { return f.raw < o.raw }

func (Fixed32[S]) FromInt(n int) Fixed32[S] {
	if n > m.MaxInt32 || n < m.MinInt32 {
		must(0, newError("Fixed32", "conversion", core.ErrOverflow))
	}
	return NewFixed32[S](int32(n))
}

func (Fixed32[S]) FromUint(n uint) Fixed32[S] {
	if n > m.MaxInt32 {
		must(0, newError("Fixed32", "conversion", core.ErrOverflow))
	}
	return NewFixed32[S](int32(n))
}

func (Fixed32[S]) FromFloat32(v float32) Fixed32[S] { return NewFixed32FromFloat[S](v) }
func (f Fixed32[S]) Float32() float32               { return f.ToFloat32() }

// Square root and trigonometry are computed in float32 and converted back,
// so results carry float32 precision at best. The square root of a negative
// value is NaN in float32 and therefore zero.
func (f Fixed32[S]) Sqrt() Fixed32[S] { return f.apply(math32.Sqrt) }
func (f Fixed32[S]) Sin() Fixed32[S]  { return f.apply(math32.Sin) }
func (f Fixed32[S]) Cos() Fixed32[S]  { return f.apply(math32.Cos) }
func (f Fixed32[S]) Tan() Fixed32[S]  { return f.apply(math32.Tan) }
func (f Fixed32[S]) Asin() Fixed32[S] { return f.apply(math32.Asin) }
func (f Fixed32[S]) Acos() Fixed32[S] { return f.apply(math32.Acos) }
func (f Fixed32[S]) Atan() Fixed32[S] { return f.apply(math32.Atan) }

func (f Fixed32[S]) apply(fn func(float32) float32) Fixed32[S] {
	return NewFixed32FromFloat[S](fn(f.ToFloat32()))
}

func (f Fixed32[S]) String() string {
	return fmt.Sprintf("Fixed32(%v)", f.ToFloat32())
}

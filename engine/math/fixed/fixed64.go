package fixed

import (
	"fmt"
	m "math"
	"math/bits"

	"github.com/spaghettifunk/geom3/engine/core"
)

const maxShift64 = 62

// Fixed64 is a 64 bit fixed point number storing round(value * 2^S.Bits()).
//
// It follows the same rules as Fixed32, with multiplication and division
// carried out on a 128 bit intermediate.
type Fixed64[S Shift] struct {
	raw int64
}

func shift64[S Shift]() uint {
	var s S
	n := s.Bits()
	if n > maxShift64 {
		must(0, newError("Fixed64", "shift", core.ErrInvalidShift))
	}
	return n
}

func abs64(v int64) uint64 {
	if v < 0 {
		// -MinInt64 wraps back to MinInt64, whose bits read as 1<<63
		return uint64(-v)
	}
	return uint64(v)
}

// narrow64 turns the 128 bit magnitude hi:lo with the given sign into an
// int64, reporting false when it does not fit.
func narrow64(hi, lo uint64, neg bool) (int64, bool) {
	if hi != 0 {
		return 0, false
	}
	if neg {
		if lo > 1<<63 {
			return 0, false
		}
		return int64(-lo), true
	}
	if lo > m.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// NewFixed64 converts an integer exactly. It panics when n * 2^S does not
// fit in 64 bits.
func NewFixed64[S Shift](n int64) Fixed64[S] {
	return must(NewFixed64Checked[S](n))
}

func NewFixed64Checked[S Shift](n int64) (Fixed64[S], error) {
	shift := shift64[S]()
	if n > m.MaxInt64>>shift || n < m.MinInt64>>shift {
		return Fixed64[S]{}, newError("Fixed64", "conversion", core.ErrOverflow)
	}
	return Fixed64[S]{n << shift}, nil
}

// NewFixed64FromFloat rounds f * 2^S to the nearest integer, halves away
// from zero. Values outside the representable range saturate to the
// largest or smallest Fixed64 and NaN converts to zero.
func NewFixed64FromFloat[S Shift](f float64) Fixed64[S] {
	scaled := m.Round(f * float64(int64(1)<<shift64[S]()))
	switch {
	case m.IsNaN(scaled):
		return Fixed64[S]{}
	case scaled >= 0x1p63:
		return Fixed64[S]{m.MaxInt64}
	case scaled <= -0x1p63:
		return Fixed64[S]{m.MinInt64}
	}
	return Fixed64[S]{int64(scaled)}
}

// NewFixed64FromRaw wraps an already scaled value.
func NewFixed64FromRaw[S Shift](raw int64) Fixed64[S] {
	return Fixed64[S]{raw}
}

// Raw returns the scaled integer backing f.
func (f Fixed64[S]) Raw() int64 { return f.raw }

// ToInt64 drops the fractional part, truncating toward zero.
func (f Fixed64[S]) ToInt64() int64 { return f.raw / (int64(1) << shift64[S]()) }

func (f Fixed64[S]) ToFloat64() float64 {
	return float64(f.raw) / float64(int64(1)<<shift64[S]())
}

func (f Fixed64[S]) Add(o Fixed64[S]) Fixed64[S] { return Fixed64[S]{f.raw + o.raw} }
func (f Fixed64[S]) Sub(o Fixed64[S]) Fixed64[S] { return Fixed64[S]{f.raw - o.raw} }
func (f Fixed64[S]) Neg() Fixed64[S]             { return Fixed64[S]{-f.raw} }

func (f Fixed64[S]) Mul(o Fixed64[S]) Fixed64[S] {
	return must(f.MulChecked(o))
}

func (f Fixed64[S]) MulChecked(o Fixed64[S]) (Fixed64[S], error) {
	shift := shift64[S]()
	hi, lo := bits.Mul64(abs64(f.raw), abs64(o.raw))
	// shifting the magnitude truncates toward zero, like an integer division
	lo = lo>>shift | hi<<(64-shift)
	hi >>= shift
	v, ok := narrow64(hi, lo, (f.raw < 0) != (o.raw < 0))
	if !ok {
		return Fixed64[S]{}, newError("Fixed64", "multiplication", core.ErrOverflow)
	}
	return Fixed64[S]{v}, nil
}

func (f Fixed64[S]) Div(o Fixed64[S]) Fixed64[S] {
	return must(f.DivChecked(o))
}

func (f Fixed64[S]) DivChecked(o Fixed64[S]) (Fixed64[S], error) {
	if o.raw == 0 {
		return Fixed64[S]{}, newError("Fixed64", "division", core.ErrDivisionByZero)
	}
	shift := shift64[S]()
	num := abs64(f.raw)
	den := abs64(o.raw)
	hi, lo := num>>(64-shift), num<<shift
	if hi >= den {
		// the quotient needs more than 64 bits
		return Fixed64[S]{}, newError("Fixed64", "division", core.ErrOverflow)
	}
	q, _ := bits.Div64(hi, lo, den)
	v, ok := narrow64(0, q, (f.raw < 0) != (o.raw < 0))
	if !ok {
		return Fixed64[S]{}, newError("Fixed64", "division", core.ErrOverflow)
	}
	return Fixed64[S]{v}, nil
}

// MulInt multiplies by a plain integer count. No rescaling takes place.
func (f Fixed64[S]) MulInt(n int) Fixed64[S] {
	return must(f.MulIntChecked(n))
}

func (f Fixed64[S]) MulIntChecked(n int) (Fixed64[S], error) {
	hi, lo := bits.Mul64(abs64(f.raw), abs64(int64(n)))
	v, ok := narrow64(hi, lo, (f.raw < 0) != (n < 0))
	if !ok {
		return Fixed64[S]{}, newError("Fixed64", "integer multiplication", core.ErrOverflow)
	}
	return Fixed64[S]{v}, nil
}

// DivInt divides by a plain integer count, truncating toward zero.
func (f Fixed64[S]) DivInt(n int) Fixed64[S] {
	return must(f.DivIntChecked(n))
}

func (f Fixed64[S]) DivIntChecked(n int) (Fixed64[S], error) {
	switch {
	case n == 0:
		return Fixed64[S]{}, newError("Fixed64", "integer division", core.ErrDivisionByZero)
	case n == -1 && f.raw == m.MinInt64:
		return Fixed64[S]{}, newError("Fixed64", "integer division", core.ErrOverflow)
	}
	return Fixed64[S]{f.raw / int64(n)}, nil
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to or
// greater than o.
func (f Fixed64[S]) Cmp(o Fixed64[S]) int {
	switch {
	case f.raw < o.raw:
		return -1
	case f.raw > o.raw:
		return 1
	}
	return 0
}

func (f Fixed64[S]) PartialCmp(o Fixed64[S]) (int, bool) { return f.Cmp(o), true }

func (f Fixed64[S]) Less(o Fixed64[S]) bool { return f.raw < o.raw }

func (Fixed64[S]) FromInt(n int) Fixed64[S] { return NewFixed64[S](int64(n)) }

func (Fixed64[S]) FromUint(n uint) Fixed64[S] {
	if uint64(n) > m.MaxInt64 {
		must(0, newError("Fixed64", "conversion", core.ErrOverflow))
	}
	return NewFixed64[S](int64(n))
}

func (Fixed64[S]) FromFloat32(v float32) Fixed64[S] { return NewFixed64FromFloat[S](float64(v)) }
func (f Fixed64[S]) Float32() float32               { return float32(f.ToFloat64()) }

// Square root and trigonometry are computed in float64 and converted back.
// The square root of a negative value is NaN in float64 and therefore zero.
func (f Fixed64[S]) Sqrt() Fixed64[S] { return f.apply(m.Sqrt) }
func (f Fixed64[S]) Sin() Fixed64[S]  { return f.apply(m.Sin) }
func (f Fixed64[S]) Cos() Fixed64[S]  { return f.apply(m.Cos) }
func (f Fixed64[S]) Tan() Fixed64[S]  { return f.apply(m.Tan) }
func (f Fixed64[S]) Asin() Fixed64[S] { return f.apply(m.Asin) }
func (f Fixed64[S]) Acos() Fixed64[S] { return f.apply(m.Acos) }
func (f Fixed64[S]) Atan() Fixed64[S] { return f.apply(m.Atan) }

func (f Fixed64[S]) apply(fn func(float64) float64) Fixed64[S] {
	return NewFixed64FromFloat[S](fn(f.ToFloat64()))
}

func (f Fixed64[S]) String() string {
	return fmt.Sprintf("Fixed64(%v)", f.ToFloat64())
}

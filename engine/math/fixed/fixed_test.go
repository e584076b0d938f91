package fixed

import (
	"io"
	m "math"
	"os"
	"testing"

	"github.com/spaghettifunk/geom3/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(t *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(t.Run())
}

// requirePanicsWith runs fn and checks it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
		var arith *ArithmeticError
		require.ErrorAs(t, err, &arith)
	}()
	fn()
}

type u63 struct{}

func (u63) Bits() uint { return 63 }

func TestFixed32Conversion(t *testing.T) {
	assert.Equal(t, int32(10), NewFixed32[U16](10).ToInt32(), "conversion int32 failed")
	assert.Equal(t, int32(-7), NewFixed32[U16](-7).ToInt32())
	assert.Equal(t, int32(10<<16), NewFixed32[U16](10).Raw())

	for _, f := range []float32{10.8, -10.8, 0.5, 3.14159, -0.0001, 1000.125} {
		got := NewFixed32FromFloat[U16](f).ToFloat32()
		assert.Less(t, m.Abs(float64(got-f)), 1.0/(1<<16), "conversion of %v gave %v", f, got)
	}

	// integer conversion truncates toward zero
	assert.Equal(t, int32(-2), NewFixed32FromFloat[U16](-2.5).ToInt32())
	assert.Equal(t, int32(2), NewFixed32FromFloat[U16](2.99).ToInt32())

	// rounding is half away from zero
	assert.Equal(t, int32(1), NewFixed32FromFloat[U0](0.5).Raw())
	assert.Equal(t, int32(-1), NewFixed32FromFloat[U0](-0.5).Raw())
}

func TestFixed32FloatSaturates(t *testing.T) {
	assert.Equal(t, int32(m.MaxInt32), NewFixed32FromFloat[U16](1e9).Raw())
	assert.Equal(t, int32(m.MinInt32), NewFixed32FromFloat[U16](-1e9).Raw())
	assert.Equal(t, int32(m.MaxInt32), NewFixed32FromFloat[U16](float32(m.Inf(1))).Raw())
	assert.Equal(t, int32(0), NewFixed32FromFloat[U16](float32(m.NaN())).Raw())
}

func TestFixed32IntOverflow(t *testing.T) {
	_, err := NewFixed32Checked[U16](40000)
	require.ErrorIs(t, err, core.ErrOverflow)

	v, err := NewFixed32Checked[U16](32767)
	require.NoError(t, err)
	assert.Equal(t, int32(32767), v.ToInt32())

	requirePanicsWith(t, core.ErrOverflow, func() { NewFixed32[U16](-40000) })
}

func TestFixed32Arithmetic(t *testing.T) {
	one, two, three := NewFixed32[U16](1), NewFixed32[U16](2), NewFixed32[U16](3)

	assert.Equal(t, three, one.Add(two), "addition failed")
	assert.Equal(t, NewFixed32[U16](-1), one.Sub(two), "subtraction failed")
	assert.Equal(t, NewFixed32[U16](6), two.Mul(three), "multiplication failed")
	assert.Equal(t, NewFixed32[U16](6), two.MulInt(3), "multiplication int failed")
	assert.Equal(t, float32(0.5), one.Div(two).ToFloat32(), "division failed")
	assert.Equal(t, float32(0.5), one.DivInt(2).ToFloat32(), "division int failed")
	assert.Equal(t, NewFixed32[U16](-3), three.Neg())

	a := NewFixed32FromFloat[U16](-1.5)
	b := NewFixed32FromFloat[U16](2.25)
	assert.Equal(t, float32(-3.375), a.Mul(b).ToFloat32())
	assert.InDelta(t, -0.6666, a.Div(b).ToFloat32(), 1e-4)
}

func TestFixed32MulDivOverflow(t *testing.T) {
	max := NewFixed32FromRaw[U16](m.MaxInt32)
	min := NewFixed32FromRaw[U16](m.MinInt32)

	_, err := max.MulChecked(max)
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = min.MulChecked(max)
	require.ErrorIs(t, err, core.ErrOverflow)
	requirePanicsWith(t, core.ErrOverflow, func() { max.Mul(max) })

	tiny := NewFixed32FromRaw[U16](1)
	_, err = max.DivChecked(tiny)
	require.ErrorIs(t, err, core.ErrOverflow)
	requirePanicsWith(t, core.ErrOverflow, func() { max.Div(tiny) })

	_, err = max.MulIntChecked(2)
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = tiny.MulIntChecked(m.MaxInt32 + 1)
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = min.DivIntChecked(-1)
	require.ErrorIs(t, err, core.ErrOverflow)
}

func TestFixed32DivisionByZero(t *testing.T) {
	one := NewFixed32[U16](1)
	var zero Fixed32[U16]

	_, err := one.DivChecked(zero)
	require.ErrorIs(t, err, core.ErrDivisionByZero)
	requirePanicsWith(t, core.ErrDivisionByZero, func() { one.Div(zero) })

	_, err = one.DivIntChecked(0)
	require.ErrorIs(t, err, core.ErrDivisionByZero)
	requirePanicsWith(t, core.ErrDivisionByZero, func() { one.DivInt(0) })
}

func TestFixed32AddWraps(t *testing.T) {
	max := NewFixed32FromRaw[U16](m.MaxInt32)
	assert.Equal(t, int32(m.MinInt32), max.Add(NewFixed32FromRaw[U16](1)).Raw())
}

func TestFixed32Compare(t *testing.T) {
	a, b := NewFixed32[U8](1), NewFixed32[U8](2)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(NewFixed32[U8](1)))
	assert.True(t, a.Less(b))

	cmp, ok := b.PartialCmp(a)
	assert.True(t, ok)
	assert.Equal(t, 1, cmp)
}

func TestFixed32Shifts(t *testing.T) {
	// with no fractional bits the type behaves like an integer
	assert.Equal(t, NewFixed32[U0](3), NewFixed32[U0](7).Div(NewFixed32[U0](2)))
	assert.Equal(t, int32(1<<30), NewFixed32[U30](1).Raw())

	requirePanicsWith(t, core.ErrInvalidShift, func() { NewFixed32[U31](1) })
	requirePanicsWith(t, core.ErrInvalidShift, func() { NewFixed32FromRaw[U32](1).ToFloat32() })

	// the Fixed64-only markers are fine there
	assert.Equal(t, int64(3), NewFixed64[U31](3).ToInt64())
	assert.Equal(t, int64(1)<<32, NewFixed64[U32](1).Raw())
}

func TestFixed32Capabilities(t *testing.T) {
	var zero Fixed32[U16]
	assert.Equal(t, NewFixed32[U16](5), zero.FromInt(5))
	assert.Equal(t, NewFixed32[U16](2), zero.FromUint(2))
	assert.Equal(t, NewFixed32FromFloat[U16](0.25), zero.FromFloat32(0.25))
	assert.Equal(t, float32(0.25), zero.FromFloat32(0.25).Float32())

	assert.Equal(t, NewFixed32[U16](3), NewFixed32[U16](9).Sqrt())
	assert.Equal(t, zero, NewFixed32[U16](-4).Sqrt(), "NaN square roots convert to zero")
	assert.InDelta(t, 1.0, NewFixed32FromFloat[U16](m.Pi/2).Sin().ToFloat32(), 1e-4)
	assert.InDelta(t, 0.0, NewFixed32FromFloat[U16](m.Pi/2).Cos().ToFloat32(), 1e-4)
	assert.InDelta(t, 1.0, NewFixed32FromFloat[U16](m.Pi/4).Tan().ToFloat32(), 1e-4)
	assert.InDelta(t, m.Pi/2, NewFixed32[U16](1).Asin().ToFloat32(), 1e-4)
	assert.InDelta(t, m.Pi/2, zero.Acos().ToFloat32(), 1e-4)
	assert.InDelta(t, m.Pi/4, NewFixed32[U16](1).Atan().ToFloat32(), 1e-4)

	requirePanicsWith(t, core.ErrOverflow, func() { zero.FromInt(1 << 40) })

	assert.Equal(t, "Fixed32(10.5)", NewFixed32FromFloat[U16](10.5).String())
}

func TestFixed64Conversion(t *testing.T) {
	assert.Equal(t, int64(10), NewFixed64[U16](10).ToInt64(), "conversion int64 failed")
	assert.Equal(t, int64(-1234567), NewFixed64[U32](-1234567).ToInt64())

	for _, f := range []float64{10.8, -10.8, 0.5, 3.14159265, -0.0001, 123456.789} {
		got := NewFixed64FromFloat[U32](f).ToFloat64()
		assert.Less(t, m.Abs(got-f), 1.0/(1<<32), "conversion of %v gave %v", f, got)
	}

	assert.Equal(t, int64(-2), NewFixed64FromFloat[U16](-2.5).ToInt64())

	assert.Equal(t, int64(m.MaxInt64), NewFixed64FromFloat[U32](1e30).Raw())
	assert.Equal(t, int64(m.MinInt64), NewFixed64FromFloat[U32](-1e30).Raw())
	assert.Equal(t, int64(0), NewFixed64FromFloat[U32](m.NaN()).Raw())

	_, err := NewFixed64Checked[U32](1 << 31)
	require.ErrorIs(t, err, core.ErrOverflow)
	v, err := NewFixed64Checked[U32](1<<31 - 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<31-1), v.ToInt64())
	v, err = NewFixed64Checked[U32](-1 << 31)
	require.NoError(t, err)
	assert.Equal(t, int64(m.MinInt64), v.Raw())
}

func TestFixed64Arithmetic(t *testing.T) {
	one, two, three := NewFixed64[U32](1), NewFixed64[U32](2), NewFixed64[U32](3)

	assert.Equal(t, three, one.Add(two), "addition failed")
	assert.Equal(t, NewFixed64[U32](-1), one.Sub(two), "subtraction failed")
	assert.Equal(t, NewFixed64[U32](6), two.Mul(three), "multiplication failed")
	assert.Equal(t, NewFixed64[U32](-6), two.Neg().Mul(three))
	assert.Equal(t, NewFixed64[U32](6), two.Neg().Mul(three.Neg()))
	assert.Equal(t, NewFixed64[U32](6), two.MulInt(3), "multiplication int failed")
	assert.Equal(t, NewFixed64[U32](-6), two.MulInt(-3))
	assert.Equal(t, 0.5, one.Div(two).ToFloat64(), "division failed")
	assert.Equal(t, -0.5, one.Neg().Div(two).ToFloat64())
	assert.Equal(t, 0.5, one.DivInt(2).ToFloat64(), "division int failed")
	assert.InDelta(t, 1.0/3.0, one.Div(three).ToFloat64(), 1e-9)

	a := NewFixed64FromFloat[U32](-1.5)
	b := NewFixed64FromFloat[U32](2.25)
	assert.Equal(t, -3.375, a.Mul(b).ToFloat64())

	// products that only fit thanks to the 128 bit intermediate
	big := NewFixed64[U32](1 << 20)
	assert.Equal(t, int64(1<<10), big.Div(NewFixed64[U32](1<<10)).ToInt64())
	assert.Equal(t, int64(1<<30), big.Mul(NewFixed64[U32](1<<10)).ToInt64())

	// integer shift
	assert.Equal(t, NewFixed64[U0](3), NewFixed64[U0](7).Div(NewFixed64[U0](2)))
	assert.Equal(t, NewFixed64[U0](49), NewFixed64[U0](7).Mul(NewFixed64[U0](7)))
}

func TestFixed64Overflow(t *testing.T) {
	max := NewFixed64FromRaw[U32](m.MaxInt64)
	min := NewFixed64FromRaw[U32](m.MinInt64)

	_, err := max.MulChecked(max)
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = min.MulChecked(min)
	require.ErrorIs(t, err, core.ErrOverflow)
	requirePanicsWith(t, core.ErrOverflow, func() { max.Mul(max) })

	// MinInt64 * 1 is representable, -MinInt64 is not
	one := NewFixed64[U32](1)
	assert.Equal(t, min, min.Mul(one))
	_, err = min.MulChecked(one.Neg())
	require.ErrorIs(t, err, core.ErrOverflow)

	_, err = max.DivChecked(NewFixed64FromRaw[U32](1))
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = max.DivChecked(NewFixed64FromRaw[U32](m.MaxInt64))
	require.NoError(t, err)

	_, err = max.MulIntChecked(2)
	require.ErrorIs(t, err, core.ErrOverflow)
	_, err = min.DivIntChecked(-1)
	require.ErrorIs(t, err, core.ErrOverflow)

	var zero Fixed64[U32]
	_, err = one.DivChecked(zero)
	require.ErrorIs(t, err, core.ErrDivisionByZero)
	requirePanicsWith(t, core.ErrDivisionByZero, func() { one.Div(zero) })
	requirePanicsWith(t, core.ErrDivisionByZero, func() { one.DivInt(0) })

	requirePanicsWith(t, core.ErrInvalidShift, func() { NewFixed64FromRaw[u63](1).ToInt64() })
	assert.Equal(t, int64(1), NewFixed64[U62](1).ToInt64())
}

func TestFixed64Capabilities(t *testing.T) {
	var zero Fixed64[U32]
	assert.Equal(t, NewFixed64[U32](5), zero.FromInt(5))
	assert.Equal(t, NewFixed64[U32](2), zero.FromUint(2))
	assert.Equal(t, float32(0.25), zero.FromFloat32(0.25).Float32())

	assert.Equal(t, NewFixed64[U32](3), NewFixed64[U32](9).Sqrt())
	assert.InDelta(t, m.Pi/2, zero.Acos().ToFloat64(), 1e-9)
	assert.InDelta(t, 1.0, NewFixed64FromFloat[U32](m.Pi/2).Sin().ToFloat64(), 1e-9)

	cmp, ok := zero.PartialCmp(NewFixed64[U32](1))
	assert.True(t, ok)
	assert.Equal(t, -1, cmp)
	assert.True(t, zero.Less(NewFixed64[U32](1)))

	assert.Equal(t, "Fixed64(-0.25)", NewFixed64FromFloat[U32](-0.25).String())
}

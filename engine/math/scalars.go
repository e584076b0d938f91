package math

import (
	m "math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Scalar wrappers for the built-in numeric types. Integer wrappers wrap on
// overflow and panic on division by zero exactly like the underlying Go
// type. Float wrappers follow IEEE 754: dividing by zero yields ±Inf or NaN.
type (
	Int     int
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
)

func partialCmp[T constraints.Integer | constraints.Float](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

func (x Int) Add(y Int) Int                { return x + y }
func (x Int) Sub(y Int) Int                { return x - y }
func (x Int) Mul(y Int) Int                { return x * y }
func (x Int) Div(y Int) Int                { return x / y }
func (x Int) Neg() Int                     { return -x }
func (Int) FromInt(n int) Int              { return Int(n) }
func (x Int) MulInt(n int) Int             { return x * Int(n) }
func (x Int) DivInt(n int) Int             { return x / Int(n) }
func (x Int) PartialCmp(y Int) (int, bool) { return partialCmp(x, y) }

func (x Int8) Add(y Int8) Int8               { return x + y }
func (x Int8) Sub(y Int8) Int8               { return x - y }
func (x Int8) Mul(y Int8) Int8               { return x * y }
func (x Int8) Div(y Int8) Int8               { return x / y }
func (x Int8) Neg() Int8                     { return -x }
func (Int8) FromInt(n int) Int8              { return Int8(n) }
func (x Int8) MulInt(n int) Int8             { return x * Int8(n) }
func (x Int8) DivInt(n int) Int8             { return x / Int8(n) }
func (x Int8) PartialCmp(y Int8) (int, bool) { return partialCmp(x, y) }

func (x Int16) Add(y Int16) Int16              { return x + y }
func (x Int16) Sub(y Int16) Int16              { return x - y }
func (x Int16) Mul(y Int16) Int16              { return x * y }
func (x Int16) Div(y Int16) Int16              { return x / y }
func (x Int16) Neg() Int16                     { return -x }
func (Int16) FromInt(n int) Int16              { return Int16(n) }
func (x Int16) MulInt(n int) Int16             { return x * Int16(n) }
func (x Int16) DivInt(n int) Int16             { return x / Int16(n) }
func (x Int16) PartialCmp(y Int16) (int, bool) { return partialCmp(x, y) }

func (x Int32) Add(y Int32) Int32              { return x + y }
func (x Int32) Sub(y Int32) Int32              { return x - y }
func (x Int32) Mul(y Int32) Int32              { return x * y }
func (x Int32) Div(y Int32) Int32              { return x / y }
func (x Int32) Neg() Int32                     { return -x }
func (Int32) FromInt(n int) Int32              { return Int32(n) }
func (x Int32) MulInt(n int) Int32             { return x * Int32(n) }
func (x Int32) DivInt(n int) Int32             { return x / Int32(n) }
func (x Int32) PartialCmp(y Int32) (int, bool) { return partialCmp(x, y) }

func (x Int64) Add(y Int64) Int64              { return x + y }
func (x Int64) Sub(y Int64) Int64              { return x - y }
func (x Int64) Mul(y Int64) Int64              { return x * y }
func (x Int64) Div(y Int64) Int64              { return x / y }
func (x Int64) Neg() Int64                     { return -x }
func (Int64) FromInt(n int) Int64              { return Int64(n) }
func (x Int64) MulInt(n int) Int64             { return x * Int64(n) }
func (x Int64) DivInt(n int) Int64             { return x / Int64(n) }
func (x Int64) PartialCmp(y Int64) (int, bool) { return partialCmp(x, y) }

// ------------------------------------------
// Float 32
// ------------------------------------------

func (x Float32) Add(y Float32) Float32            { return x + y }
func (x Float32) Sub(y Float32) Float32            { return x - y }
func (x Float32) Mul(y Float32) Float32            { return x * y }
func (x Float32) Div(y Float32) Float32            { return x / y }
func (x Float32) Neg() Float32                     { return -x }
func (Float32) FromInt(n int) Float32              { return Float32(n) }
func (Float32) FromUint(n uint) Float32            { return Float32(n) }
func (Float32) FromFloat32(f float32) Float32      { return Float32(f) }
func (x Float32) Float32() float32                 { return float32(x) }
func (x Float32) MulInt(n int) Float32             { return x * Float32(n) }
func (x Float32) DivInt(n int) Float32             { return x / Float32(n) }
func (x Float32) PartialCmp(y Float32) (int, bool) { return partialCmp(x, y) }

func (x Float32) Sqrt() Float32 { return Float32(math32.Sqrt(float32(x))) }
func (x Float32) Sin() Float32  { return Float32(math32.Sin(float32(x))) }
func (x Float32) Cos() Float32  { return Float32(math32.Cos(float32(x))) }
func (x Float32) Tan() Float32  { return Float32(math32.Tan(float32(x))) }
func (x Float32) Asin() Float32 { return Float32(math32.Asin(float32(x))) }
func (x Float32) Acos() Float32 { return Float32(math32.Acos(float32(x))) }
func (x Float32) Atan() Float32 { return Float32(math32.Atan(float32(x))) }

// ------------------------------------------
// Float 64
// ------------------------------------------

func (x Float64) Add(y Float64) Float64            { return x + y }
func (x Float64) Sub(y Float64) Float64            { return x - y }
func (x Float64) Mul(y Float64) Float64            { return x * y }
func (x Float64) Div(y Float64) Float64            { return x / y }
func (x Float64) Neg() Float64                     { return -x }
func (Float64) FromInt(n int) Float64              { return Float64(n) }
func (Float64) FromUint(n uint) Float64            { return Float64(n) }
func (Float64) FromFloat32(f float32) Float64      { return Float64(f) }
func (x Float64) Float32() float32                 { return float32(x) }
func (x Float64) MulInt(n int) Float64             { return x * Float64(n) }
func (x Float64) DivInt(n int) Float64             { return x / Float64(n) }
func (x Float64) PartialCmp(y Float64) (int, bool) { return partialCmp(x, y) }

func (x Float64) Sqrt() Float64 { return Float64(m.Sqrt(float64(x))) }
func (x Float64) Sin() Float64  { return Float64(m.Sin(float64(x))) }
func (x Float64) Cos() Float64  { return Float64(m.Cos(float64(x))) }
func (x Float64) Tan() Float64  { return Float64(m.Tan(float64(x))) }
func (x Float64) Asin() Float64 { return Float64(m.Asin(float64(x))) }
func (x Float64) Acos() Float64 { return Float64(m.Acos(float64(x))) }
func (x Float64) Atan() Float64 { return Float64(m.Atan(float64(x))) }

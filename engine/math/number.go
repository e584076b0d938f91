package math

// Number is the minimum a scalar must support to be a Vector component.
// Methods return a new value and never modify the receiver. FromInt ignores
// its receiver, so generic code calls it on the zero value:
//
//	var zero N
//	three := zero.FromInt(3)
type Number[T any] interface {
	comparable
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	FromInt(int) T
}

// Sqrt is a Number with a square root, needed for magnitudes and
// normalization.
type Sqrt[T any] interface {
	Number[T]
	Sqrt() T
}

// Trigonometry is a Number with the circular functions and their inverses,
// all in radians.
type Trigonometry[T any] interface {
	Number[T]
	Sin() T
	Cos() T
	Tan() T
	Asin() T
	Acos() T
	Atan() T
	FromUint(uint) T
}

// Real is a Number that converts to and from float32, the type rotation
// angles and axes are stored in.
type Real[T any] interface {
	Number[T]
	FromFloat32(float32) T
	Float32() float32
}

// Rotatable gathers everything Rotate and Between need.
type Rotatable[T any] interface {
	Sqrt[T]
	Trigonometry[T]
	Real[T]
}

// Ordered is implemented by scalars that can be compared. ok is false when
// the two values are unordered, such as a float NaN.
type Ordered[T any] interface {
	PartialCmp(T) (cmp int, ok bool)
}

// IntScalable scalars can be multiplied or divided by a plain integer count
// without any rescaling.
type IntScalable[T any] interface {
	Number[T]
	MulInt(int) T
	DivInt(int) T
}

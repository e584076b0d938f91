package math

import "fmt"

// Unit is a Vector that had a magnitude of 1 when it was built. The
// invariant is checked once by Normalize and is not maintained afterwards.
type Unit[N Number[N]] struct {
	v Vector[N]
}

/**
 * @brief Returns a normalized copy of the supplied vector. Normalizing the
 * zero vector divides by zero: float scalars produce NaN components while
 * fixed-point scalars panic.
 */
func Normalize[N Sqrt[N]](v Vector[N]) Unit[N] {
	return Unit[N]{v.DivScalar(Magnitude(v))}
}

// Vector returns the components of u.
func (u Unit[N]) Vector() Vector[N] {
	return u.v
}

func (u Unit[N]) Equal(other Unit[N]) bool {
	return u.v.Equal(other.v)
}

// EqualVector compares the components of u against a plain Vector.
func (u Unit[N]) EqualVector(v Vector[N]) bool {
	return u.v.Equal(v)
}

func (u Unit[N]) Neg() Unit[N] {
	return Unit[N]{u.v.Neg()}
}

func (u Unit[N]) String() string {
	return fmt.Sprintf("Unit(%v, %v, %v)", u.v.X, u.v.Y, u.v.Z)
}

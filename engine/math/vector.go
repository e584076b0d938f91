package math

import "fmt"

// Vector is a point or a free direction in 3D space, generic over its
// scalar type. Vectors are values: every operation returns a new Vector.
type Vector[N Number[N]] struct {
	X, Y, Z N
}

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVector[N Number[N]](x, y, z N) Vector[N] {
	return Vector[N]{x, y, z}
}

/**
 * @brief Creates and returns a new vector from the three elements of a.
 */
func NewVectorFromArray[N Number[N]](a [3]N) Vector[N] {
	return Vector[N]{a[0], a[1], a[2]}
}

/**
 * @brief Creates and returns a vector with all components set to zero.
 */
func Origin[N Number[N]]() Vector[N] {
	var zero N
	zero = zero.FromInt(0)
	return Vector[N]{zero, zero, zero}
}

/**
 * @brief Returns the components of v as an array.
 */
func (v Vector[N]) Array() [3]N {
	return [3]N{v.X, v.Y, v.Z}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vector[N]) Add(other Vector[N]) Vector[N] {
	return Vector[N]{
		v.X.Add(other.X),
		v.Y.Add(other.Y),
		v.Z.Add(other.Z)}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vector[N]) Sub(other Vector[N]) Vector[N] {
	return Vector[N]{
		v.X.Sub(other.X),
		v.Y.Sub(other.Y),
		v.Z.Sub(other.Z)}
}

/**
 * @brief Returns a copy of v with every component negated.
 */
func (v Vector[N]) Neg() Vector[N] {
	return Vector[N]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vector[N]) Scale(scalar N) Vector[N] {
	return Vector[N]{
		v.X.Mul(scalar),
		v.Y.Mul(scalar),
		v.Z.Mul(scalar)}
}

/**
 * @brief Divides all elements of v by scalar and returns a copy of the result.
 */
func (v Vector[N]) DivScalar(scalar N) Vector[N] {
	return Vector[N]{
		v.X.Div(scalar),
		v.Y.Div(scalar),
		v.Z.Div(scalar)}
}

/**
 * @brief Returns the dot product between v and other. Typically used
 * to calculate the difference in direction.
 */
func (v Vector[N]) Dot(other Vector[N]) N {
	return v.X.Mul(other.X).
		Add(v.Y.Mul(other.Y)).
		Add(v.Z.Mul(other.Z))
}

/**
 * @brief Calculates and returns the right-handed cross product of v and other.
 * The result is orthogonal to both inputs and is zero when they are parallel.
 */
func (v Vector[N]) Cross(other Vector[N]) Vector[N] {
	return Vector[N]{
		v.Y.Mul(other.Z).Sub(v.Z.Mul(other.Y)),
		v.Z.Mul(other.X).Sub(v.X.Mul(other.Z)),
		v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))}
}

/**
 * @brief Returns the squared length of the vector.
 */
func (v Vector[N]) LengthSquared() N {
	return v.Dot(v)
}

/**
 * @brief Reports whether every component of v equals the matching
 * component of other. Float NaN components never compare equal.
 */
func (v Vector[N]) Equal(other Vector[N]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

/**
 * @brief Returns a human readable form of v.
 */
func (v Vector[N]) String() string {
	return fmt.Sprintf("Vector(%v, %v, %v)", v.X, v.Y, v.Z)
}

/**
 * @brief Returns the dot product of a and b, the function form of Vector.Dot.
 */
func Dot[N Number[N]](a, b Vector[N]) N {
	return a.Dot(b)
}

/**
 * @brief Returns the cross product of a and b, the function form of
 * Vector.Cross. Cross(a, b) == Cross(b, a).Neg().
 */
func Cross[N Number[N]](a, b Vector[N]) Vector[N] {
	return a.Cross(b)
}

/**
 * @brief Multiplies every component by a dimensionless integer count. For
 * fixed-point scalars this skips the rescaling a full multiply does.
 */
func ScaleInt[N IntScalable[N]](v Vector[N], n int) Vector[N] {
	return Vector[N]{v.X.MulInt(n), v.Y.MulInt(n), v.Z.MulInt(n)}
}

/**
 * @brief Divides every component by a dimensionless integer count.
 */
func DivInt[N IntScalable[N]](v Vector[N], n int) Vector[N] {
	return Vector[N]{v.X.DivInt(n), v.Y.DivInt(n), v.Z.DivInt(n)}
}

/**
 * @brief Returns the length of the vector.
 */
func Magnitude[N Sqrt[N]](v Vector[N]) N {
	return v.LengthSquared().Sqrt()
}

/**
 * @brief Returns the distance between a and b.
 */
func Distance[N Sqrt[N]](a, b Vector[N]) N {
	return Magnitude(a.Sub(b))
}

/**
 * @brief Orders two vectors only when all three component comparisons
 * agree. ok is false otherwise, including when a component is unordered.
 */
func PartialCmp[N interface {
	Number[N]
	Ordered[N]
}](a, b Vector[N]) (cmp int, ok bool) {
	cx, ok := a.X.PartialCmp(b.X)
	if !ok {
		return 0, false
	}
	cy, ok := a.Y.PartialCmp(b.Y)
	if !ok || cy != cx {
		return 0, false
	}
	cz, ok := a.Z.PartialCmp(b.Z)
	if !ok || cz != cx {
		return 0, false
	}
	return cx, true
}

/**
 * @brief Compares all elements of a and b and ensures the difference
 * is not greater than tolerance.
 */
func Compare[N Real[N]](a, b Vector[N], tolerance float32) bool {
	if kabs(a.X.Float32()-b.X.Float32()) > tolerance {
		return false
	}

	if kabs(a.Y.Float32()-b.Y.Float32()) > tolerance {
		return false
	}

	if kabs(a.Z.Float32()-b.Z.Float32()) > tolerance {
		return false
	}

	return true
}

/**
 * @brief Applies r to v as the unit quaternion conjugation q·v·q⁻¹, with
 * q = (cos(angle/2), axis·sin(angle/2)) and v taken as the pure quaternion
 * (0, v). The product is expanded into scalars using ij = k, jk = i, ki = j
 * and ijk = -1:
 *
 *	t = q·v    = (w; a·v + b×v),   w = -(b·v)
 *	r = t·q⁻¹  = w·(-b) + a·t + t×(-b)
 *
 * where a is the real part of q and b its imaginary part. The real part of
 * r is zero and dropped.
 */
func Rotate[N Rotatable[N]](v Vector[N], r Rotation) Vector[N] {
	var zero N
	half := zero.FromFloat32(r.Angle).Div(zero.FromUint(2))
	a := half.Cos()
	s := half.Sin()

	axis := r.Axis.Vector()
	b := Vector[N]{
		zero.FromFloat32(float32(axis.X)).Mul(s),
		zero.FromFloat32(float32(axis.Y)).Mul(s),
		zero.FromFloat32(float32(axis.Z)).Mul(s),
	}

	tx := a.Mul(v.X).Add(b.Y.Mul(v.Z)).Sub(b.Z.Mul(v.Y))
	ty := a.Mul(v.Y).Add(b.Z.Mul(v.X)).Sub(b.X.Mul(v.Z))
	tz := a.Mul(v.Z).Add(b.X.Mul(v.Y)).Sub(b.Y.Mul(v.X))
	w := b.X.Mul(v.X).Add(b.Y.Mul(v.Y)).Add(b.Z.Mul(v.Z)).Neg()

	// conjugate
	n := b.Neg()

	return Vector[N]{
		w.Mul(n.X).Add(a.Mul(tx)).Add(ty.Mul(n.Z)).Sub(tz.Mul(n.Y)),
		w.Mul(n.Y).Add(a.Mul(ty)).Add(tz.Mul(n.X)).Sub(tx.Mul(n.Z)),
		w.Mul(n.Z).Add(a.Mul(tz)).Add(tx.Mul(n.Y)).Sub(ty.Mul(n.X)),
	}
}

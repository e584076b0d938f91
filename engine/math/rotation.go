package math

import (
	"fmt"

	"github.com/spaghettifunk/geom3/engine/core"
)

// Rotation is a right-handed rotation of Angle radians about Axis. Angles
// and axes are always float32, whatever scalar the rotated vectors use.
type Rotation struct {
	Axis  Unit[Float32]
	Angle float32
}

func NewRotation(axis Unit[Float32], angle float32) Rotation {
	return Rotation{Axis: axis, Angle: angle}
}

// NewRotationFromAxisAngle normalizes axis before building the rotation.
func NewRotationFromAxisAngle(axis Vector[Float32], angle float32) Rotation {
	return Rotation{Axis: Normalize(axis), Angle: angle}
}

// Between finds the rotation that turns the direction of from into the
// direction of to. The lengths of the vectors do not matter.
//
// The angle is acos(dot² / (|from|²·|to|²)), which avoids two square roots.
// For vectors θ apart this is acos(cos²θ): exact for perpendicular and
// aligned vectors, always within [0, π/2], and blind to the sign of the dot
// product.
//
// The result is undefined when either vector is zero or when they are
// parallel, as the cross product used for the axis is then zero.
func Between[N Rotatable[N]](from, to Vector[N]) Rotation {
	dot := from.Dot(to)
	dot2 := dot.Mul(dot)
	angle := dot2.Div(from.LengthSquared().Mul(to.LengthSquared())).Acos()

	cross := from.Cross(to)
	if cross.Equal(Origin[N]()) {
		core.LogWarn("%v: rotation between %v and %v has no axis", core.ErrDegenerateInput, from, to)
	}
	axis := Normalize(cross).Vector()

	return Rotation{
		Axis: Unit[Float32]{Vector[Float32]{
			Float32(axis.X.Float32()),
			Float32(axis.Y.Float32()),
			Float32(axis.Z.Float32()),
		}},
		Angle: angle.Float32(),
	}
}

// Inverse undoes r.
func (r Rotation) Inverse() Rotation {
	return Rotation{Axis: r.Axis, Angle: -r.Angle}
}

func (r Rotation) String() string {
	return fmt.Sprintf("Rotation(%v, %v)", r.Axis, r.Angle)
}

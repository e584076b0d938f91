package testbed

import (
	"errors"
	"fmt"
	"time"

	"github.com/spaghettifunk/geom3/engine/core"
	"github.com/spaghettifunk/geom3/engine/math"
	"github.com/spaghettifunk/geom3/engine/math/fixed"
)

type RotationResult struct {
	Name     string
	Rotation math.Rotation
	// Apply vectors after the rotation, in scene order.
	Rotated [][3]float32
	// Reached is true when rotating From lands on the direction of To
	// within the configured tolerance.
	Reached bool
}

type TriangleResult struct {
	Name     string
	Centroid [3]float32
	Normal   [3]float32
}

// Report collects everything computed for one run of a scene.
type Report struct {
	Scalar    string
	Rotations []RotationResult
	Triangles []TriangleResult
	Elapsed   time.Duration
}

// Execute loads the scene at path, applies its config and runs it.
func Execute(path string) (*Report, error) {
	scene, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	if err := scene.Config.Apply(); err != nil {
		return nil, err
	}
	return Run(scene)
}

// Run evaluates every entry of the scene with the scalar kind it asks for.
// Fixed point failures are returned as errors instead of panics.
func Run(scene *Scene) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			var arithErr *fixed.ArithmeticError
			if e, ok := r.(error); ok && errors.As(e, &arithErr) {
				report, err = nil, fmt.Errorf("scene failed with %s scalars: %w", scene.Scalar, arithErr)
				return
			}
			panic(r)
		}
	}()

	core.LogDebug("running scene with %d rotations and %d triangles as %s", len(scene.Rotations), len(scene.Triangles), scene.Scalar)

	clock := core.NewClock()
	clock.Start()

	switch scene.Scalar {
	case ScalarFloat32:
		report, err = run[math.Float32](scene)
	case ScalarFloat64:
		report, err = run[math.Float64](scene)
	case ScalarFixed32:
		report, err = run[fixed.Fixed32[fixed.U16]](scene)
	case ScalarFixed64:
		report, err = run[fixed.Fixed64[fixed.U32]](scene)
	default:
		return nil, fmt.Errorf("scalar %q: %w", scene.Scalar, core.ErrUnknownScalar)
	}
	if err != nil {
		return nil, err
	}

	clock.Stop()
	report.Elapsed = clock.Elapsed()
	core.LogDebug("scene evaluated in %s", report.Elapsed)
	return report, nil
}

func run[N math.Rotatable[N]](scene *Scene) (*Report, error) {
	report := &Report{Scalar: scene.Scalar}

	for _, entry := range scene.Rotations {
		res, err := runRotation[N](entry, scene.Config.Tolerance)
		if err != nil {
			return nil, err
		}
		core.LogInfo("rotation %s: %s reached=%t", res.Name, res.Rotation, res.Reached)
		report.Rotations = append(report.Rotations, res)
	}

	for _, entry := range scene.Triangles {
		res, err := runTriangle[N](entry)
		if err != nil {
			return nil, err
		}
		core.LogInfo("triangle %s: centroid=%v normal=%v", res.Name, res.Centroid, res.Normal)
		report.Triangles = append(report.Triangles, res)
	}

	return report, nil
}

func runRotation[N math.Rotatable[N]](entry RotationEntry, tolerance float32) (RotationResult, error) {
	from := toVector[N](entry.From)
	to := toVector[N](entry.To)
	if from.Cross(to).Equal(math.Origin[N]()) {
		return RotationResult{}, fmt.Errorf("rotation %s from %v to %v: %w", entry.Name, entry.From, entry.To, core.ErrDegenerateInput)
	}

	r := math.Between(from, to)
	res := RotationResult{
		Name:     entry.Name,
		Rotation: r,
		Rotated:  make([][3]float32, 0, len(entry.Apply)),
	}
	for _, v := range entry.Apply {
		res.Rotated = append(res.Rotated, toArray(math.Rotate(toVector[N](v), r)))
	}

	reached := toFloat32(math.Rotate(from, r))
	res.Reached = math.Compare(
		math.Normalize(reached).Vector(),
		math.Normalize(toFloat32(to)).Vector(),
		tolerance,
	)
	return res, nil
}

func runTriangle[N math.Rotatable[N]](entry TriangleEntry) (TriangleResult, error) {
	t := math.NewTriangle(toVector[N](entry.Points[0]), toVector[N](entry.Points[1]), toVector[N](entry.Points[2]))
	if t.Direction().Equal(math.Origin[N]()) {
		return TriangleResult{}, fmt.Errorf("triangle %s has no area: %w", entry.Name, core.ErrDegenerateInput)
	}

	if entry.Translate != nil {
		math.Translate[N](&t, toVector[N](*entry.Translate))
	}
	if entry.Direction != nil {
		d := toVector[N](*entry.Direction)
		n := t.Direction()

		var r math.Rotation
		switch {
		case d.Equal(math.Origin[N]()):
			return TriangleResult{}, fmt.Errorf("triangle %s cannot face the zero vector: %w", entry.Name, core.ErrDegenerateInput)
		case !n.Cross(d).Equal(math.Origin[N]()):
			r = math.Between(n, d)
		case n.Dot(d).Float32() > 0:
			core.LogDebug("triangle %s already faces %v", entry.Name, *entry.Direction)
		default:
			// facing the opposite way, so Between has no axis: half a turn
			// about any axis in the plane of the triangle
			r = math.NewRotationFromAxisAngle(perpendicular(toFloat32(n)), math.K_PI)
		}

		if r.Angle != 0 {
			// rotate about the centroid so the triangle stays in place
			centroid := t.Position()
			t.SetPosition(math.Origin[N]())
			math.RotateOrientation[N](math.OrientTriangle(&t), r)
			t.SetPosition(centroid)
		}
	}

	return TriangleResult{
		Name:     entry.Name,
		Centroid: toArray(t.Position()),
		Normal:   toArray(math.FaceNormal(t).Vector()),
	}, nil
}

// perpendicular returns a vector orthogonal to the non-zero v.
func perpendicular(v math.Vector[math.Float32]) math.Vector[math.Float32] {
	axis := v.Cross(math.NewVector[math.Float32](1, 0, 0))
	if axis.Equal(math.Origin[math.Float32]()) {
		axis = v.Cross(math.NewVector[math.Float32](0, 1, 0))
	}
	return axis
}

func toVector[N math.Real[N]](a [3]float64) math.Vector[N] {
	var zero N
	return math.NewVector(
		zero.FromFloat32(float32(a[0])),
		zero.FromFloat32(float32(a[1])),
		zero.FromFloat32(float32(a[2])),
	)
}

func toArray[N math.Real[N]](v math.Vector[N]) [3]float32 {
	return [3]float32{v.X.Float32(), v.Y.Float32(), v.Z.Float32()}
}

func toFloat32[N math.Real[N]](v math.Vector[N]) math.Vector[math.Float32] {
	a := toArray(v)
	return math.NewVector(math.Float32(a[0]), math.Float32(a[1]), math.Float32(a[2]))
}

package math

// Position is implemented by values that have a location. P is the type of
// that location, usually a Vector.
type Position[P any] interface {
	Position() P
	SetPosition(P)
}

// Translator lets a type replace the default Translate behaviour, for
// example to move several points at once.
type Translator[P any] interface {
	Translate(P)
}

// Orientation is implemented by values that face a direction.
type Orientation[N Number[N]] interface {
	Direction() Vector[N]
	SetDirection(Vector[N])
}

// Rotator lets a type replace the default RotateOrientation behaviour.
type Rotator interface {
	Rotate(Rotation)
}

// Translate moves p by delta. Types implementing Translator handle it
// themselves; everything else gets SetPosition(Position() + delta).
func Translate[N Number[N]](p Position[Vector[N]], delta Vector[N]) {
	if t, ok := p.(Translator[Vector[N]]); ok {
		t.Translate(delta)
		return
	}
	p.SetPosition(p.Position().Add(delta))
}

// RotateOrientation turns o by r. Types implementing Rotator handle it
// themselves; everything else gets SetDirection(Rotate(Direction(), r)).
func RotateOrientation[N Rotatable[N]](o Orientation[N], r Rotation) {
	if rt, ok := o.(Rotator); ok {
		rt.Rotate(r)
		return
	}
	o.SetDirection(Rotate(o.Direction(), r))
}

// OrientationOf returns the direction o faces as a Unit.
func OrientationOf[N Rotatable[N]](o Orientation[N]) Unit[N] {
	return Normalize(o.Direction())
}

// A Vector is its own position.
func (v Vector[N]) Position() Vector[N] {
	return v
}

func (v *Vector[N]) SetPosition(p Vector[N]) {
	*v = p
}

// A Vector is its own direction.
func (v Vector[N]) Direction() Vector[N] {
	return v
}

func (v *Vector[N]) SetDirection(d Vector[N]) {
	*v = d
}

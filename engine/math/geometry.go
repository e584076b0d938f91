package math

// Line is a ray in space: an origin point plus the direction it extends in.
type Line[N Number[N]] struct {
	Location Vector[N]
	Dir      Vector[N]
}

func NewLine[N Number[N]](location, direction Vector[N]) Line[N] {
	return Line[N]{Location: location, Dir: direction}
}

func (l Line[N]) Position() Vector[N] {
	return l.Location
}

func (l *Line[N]) SetPosition(p Vector[N]) {
	l.Location = p
}

func (l Line[N]) Direction() Vector[N] {
	return l.Dir
}

func (l *Line[N]) SetDirection(d Vector[N]) {
	l.Dir = d
}

// At returns the point reached after travelling t times the direction
// vector from the origin of the line.
func (l Line[N]) At(t N) Vector[N] {
	return l.Location.Add(l.Dir.Scale(t))
}

// Triangle is three points in space.
type Triangle[N Number[N]] struct {
	P1, P2, P3 Vector[N]
}

func NewTriangle[N Number[N]](p1, p2, p3 Vector[N]) Triangle[N] {
	return Triangle[N]{P1: p1, P2: p2, P3: p3}
}

// Position returns the centroid of the triangle.
func (t Triangle[N]) Position() Vector[N] {
	var zero N
	return t.P1.Add(t.P2).Add(t.P3).DivScalar(zero.FromInt(3))
}

// SetPosition moves the whole triangle so its centroid lands on p.
func (t *Triangle[N]) SetPosition(p Vector[N]) {
	t.Translate(p.Sub(t.Position()))
}

func (t *Triangle[N]) Translate(delta Vector[N]) {
	t.P1 = t.P1.Add(delta)
	t.P2 = t.P2.Add(delta)
	t.P3 = t.P3.Add(delta)
}

// Direction returns the face normal (P2-P1)×(P3-P1). Its length is twice
// the area of the triangle.
func (t Triangle[N]) Direction() Vector[N] {
	edge1 := t.P2.Sub(t.P1)
	edge2 := t.P3.Sub(t.P1)
	return edge1.Cross(edge2)
}

/**
 * @brief Returns the unit face normal of t. NOTE: This just generates a face
 * normal, a degenerate triangle has none.
 */
func FaceNormal[N Sqrt[N]](t Triangle[N]) Unit[N] {
	return Normalize(t.Direction())
}

// RotateTriangle rotates every point of t about the origin.
func RotateTriangle[N Rotatable[N]](t *Triangle[N], r Rotation) {
	t.P1 = Rotate(t.P1, r)
	t.P2 = Rotate(t.P2, r)
	t.P3 = Rotate(t.P3, r)
}

// SetTriangleDirection rotates t so that its face normal points along d.
func SetTriangleDirection[N Rotatable[N]](t *Triangle[N], d Vector[N]) {
	RotateTriangle(t, Between(t.Direction(), d))
}

// TriangleOrientation adapts a Triangle with a rotatable scalar to
// Orientation and Rotator.
type TriangleOrientation[N Rotatable[N]] struct {
	*Triangle[N]
}

func OrientTriangle[N Rotatable[N]](t *Triangle[N]) TriangleOrientation[N] {
	return TriangleOrientation[N]{t}
}

func (o TriangleOrientation[N]) SetDirection(d Vector[N]) {
	SetTriangleDirection(o.Triangle, d)
}

func (o TriangleOrientation[N]) Rotate(r Rotation) {
	RotateTriangle(o.Triangle, r)
}

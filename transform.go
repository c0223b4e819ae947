package rowan

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transformable is the transform capability surface an Element exposes to
// collaborators: live component slices plus the composed matrices.
type Transformable interface {
	Position() []float64
	Scale() []float64
	Origin() []float64
	GetRotation() float64
	LocalTransform() [6]float64
	WorldTransform() [6]float64
	UpdateTransform()
}

// Transform holds the decomposed transform state of an element and its
// composed affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The position, scale, and origin slices are allocated once and mutated in
// place for the life of the element, so observers (and in-flight animators)
// holding the slice always see current values.
type Transform struct {
	position []float64
	scale    []float64
	origin   []float64
	Rotation float64

	local [6]float64
	world [6]float64

	transformDirty bool
}

// initTransform sets the identity defaults on a zero Transform.
func initTransform(t *Transform) {
	t.position = []float64{0, 0}
	t.scale = []float64{1, 1}
	t.origin = []float64{0, 0}
	t.local = identityTransform
	t.world = identityTransform
	t.transformDirty = true
}

// Position returns the live position slice. Callers MUST NOT replace it;
// mutate components in place or use SetPosition.
func (t *Transform) Position() []float64 { return t.position }

// Scale returns the live scale slice.
func (t *Transform) Scale() []float64 { return t.scale }

// Origin returns the live origin slice.
func (t *Transform) Origin() []float64 { return t.origin }

// GetRotation returns the rotation in radians.
func (t *Transform) GetRotation() float64 { return t.Rotation }

// SetPosition copies x and y into the live position slice and marks the
// transform for recomposition.
func (t *Transform) SetPosition(x, y float64) {
	t.position[0] = x
	t.position[1] = y
	t.transformDirty = true
}

// SetScale copies sx and sy into the live scale slice.
func (t *Transform) SetScale(sx, sy float64) {
	t.scale[0] = sx
	t.scale[1] = sy
	t.transformDirty = true
}

// SetOrigin copies ox and oy into the live origin slice.
func (t *Transform) SetOrigin(ox, oy float64) {
	t.origin[0] = ox
	t.origin[1] = oy
	t.transformDirty = true
}

// SetRotation sets the rotation (in radians).
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
	t.transformDirty = true
}

// LocalTransform returns the composed local matrix. Call UpdateTransform
// first if components changed this frame.
func (t *Transform) LocalTransform() [6]float64 { return t.local }

// WorldTransform returns the matrix composed with the ancestor chain, as of
// the last Update traversal.
func (t *Transform) WorldTransform() [6]float64 { return t.world }

// UpdateTransform recomposes the local matrix from position, rotation, scale,
// and origin. Rotation and scale are applied about the origin point.
//
// Composition order: Translate(-origin) -> Scale -> Rotate -> Translate(origin + position)
func (t *Transform) UpdateTransform() {
	sx := t.scale[0]
	sy := t.scale[1]
	sin, cos := math.Sincos(t.Rotation)

	a := cos * sx
	b := sin * sx
	c := -sin * sy
	d := cos * sy

	ox := t.origin[0]
	oy := t.origin[1]
	t.local = [6]float64{
		a, b, c, d,
		t.position[0] + ox - (a*ox + c*oy),
		t.position[1] + oy - (b*ox + d*oy),
	}
	t.transformDirty = false
}

// DecomposeTransform extracts position, rotation, and scale back out of the
// local matrix, writing them into the live component slices. Used after the
// matrix translation has been mutated directly (Drift).
func (t *Transform) DecomposeTransform() {
	m := t.local
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	if m[0] < 0 {
		sx = -sx
	}
	if m[3] < 0 {
		sy = -sy
	}
	t.position[0] = m[4]
	t.position[1] = m[5]
	t.scale[0] = sx
	t.scale[1] = sy
	if sx != 0 {
		t.Rotation = math.Atan2(m[1]/sx, m[0]/sx)
	} else {
		t.Rotation = 0
	}
	// Origin is folded into the translation once a matrix is decomposed.
	t.origin[0] = 0
	t.origin[1] = 0
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect applies an affine matrix to a rectangle and returns the
// axis-aligned bounding box of the transformed corners.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X+r.Width, r.Y+r.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

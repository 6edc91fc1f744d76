package kinema

import "github.com/chewxy/math32"

// Matrix represents a 2D transformation with an optional projective row.
// It is a full 3x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  I |
//
// For affine transforms G and H are zero and I is one, and the mapping is:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// X- and Y-axis rotations (pseudo-3D layer transforms) set the projective
// terms, in which case Map performs the perspective divide.
type Matrix struct {
	A, B, C float32
	D, E, F float32
	G, H, I float32
}

// Axis selects the rotation axis for RotateAxis.
type Axis int

const (
	// AxisX rotates around the horizontal axis (projective).
	AxisX Axis = iota
	// AxisY rotates around the vertical axis (projective).
	AxisY
	// AxisZ is the ordinary in-plane rotation.
	AxisZ
)

// invDistToPlane is the reciprocal of the assumed eye distance used for
// X/Y axis rotations. The constant matches the convention of the source
// animation format's renderer.
const invDistToPlane = 1.0 / 1024.0

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
		G: 0, H: 0, I: 1,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float32) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
		G: 0, H: 0, I: 1,
	}
}

// Rotate creates an in-plane rotation matrix. The angle is in degrees and
// increases clockwise in the engine's y-down coordinate system.
func Rotate(deg float32) Matrix {
	return RotateAxis(deg, AxisZ)
}

// RotateAxis creates a rotation matrix around the given axis; the angle is
// in degrees. Z-axis rotation is the ordinary 2D rotation. X and Y axis
// rotations keep the cosine on the in-plane term and move the sine onto the
// projective row, foreshortening the layer around the axis.
func RotateAxis(deg float32, axis Axis) Matrix {
	rad := deg * math32.Pi / 180
	sin := math32.Sin(rad)
	cos := math32.Cos(rad)

	m := Identity()
	switch axis {
	case AxisZ:
		m.A, m.B = cos, -sin
		m.D, m.E = sin, cos
	case AxisY:
		m.A = cos
		m.G = -sin * invDistToPlane
	case AxisX:
		m.E = cos
		m.H = -sin * invDistToPlane
	}
	return m
}

// Multiply multiplies two matrices (m * other). Applying the result maps a
// point through other first, then through m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D + m.C*o.G,
		B: m.A*o.B + m.B*o.E + m.C*o.H,
		C: m.A*o.C + m.B*o.F + m.C*o.I,
		D: m.D*o.A + m.E*o.D + m.F*o.G,
		E: m.D*o.B + m.E*o.E + m.F*o.H,
		F: m.D*o.C + m.E*o.F + m.F*o.I,
		G: m.G*o.A + m.H*o.D + m.I*o.G,
		H: m.G*o.B + m.H*o.E + m.I*o.H,
		I: m.G*o.C + m.H*o.F + m.I*o.I,
	}
}

// Map applies the transformation to a point, performing the perspective
// divide when the matrix has projective terms.
func (m Matrix) Map(p Point) Point {
	x := m.A*p.X + m.B*p.Y + m.C
	y := m.D*p.X + m.E*p.Y + m.F
	if m.IsAffine() {
		return Point{X: x, Y: y}
	}
	w := m.G*p.X + m.H*p.Y + m.I
	if w == 0 {
		return Point{X: x, Y: y}
	}
	inv := 1 / w
	return Point{X: x * inv, Y: y * inv}
}

// MapRect returns the axis-aligned bounding box of the transformed corners
// of r.
func (m Matrix) MapRect(r Rect) Rect {
	tl := m.Map(r.Min)
	tr := m.Map(Point{X: r.Max.X, Y: r.Min.Y})
	bl := m.Map(Point{X: r.Min.X, Y: r.Max.Y})
	br := m.Map(r.Max)
	out := NewRect(tl, br)
	return out.Union(NewRect(tr, bl))
}

// IsAffine returns true if the matrix has no projective component.
func (m Matrix) IsAffine() bool {
	return m.G == 0 && m.H == 0 && m.I == 1
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0 &&
		m.G == 0 && m.H == 0 && m.I == 1
}

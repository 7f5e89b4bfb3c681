package layout

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as not invertible.
const singularEpsilon = 1e-10

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The combined transform applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// TransformRect returns the axis-aligned bounding box of the four
// transformed corners of r.
func (m Matrix) TransformRect(r Rect) Rect {
	p1 := m.TransformPoint(Point{X: r.X, Y: r.Y})
	p2 := m.TransformPoint(Point{X: r.Right(), Y: r.Y})
	p3 := m.TransformPoint(Point{X: r.Right(), Y: r.Bottom()})
	p4 := m.TransformPoint(Point{X: r.X, Y: r.Bottom()})
	minX := math.Min(math.Min(p1.X, p2.X), math.Min(p3.X, p4.X))
	minY := math.Min(math.Min(p1.Y, p2.Y), math.Min(p3.Y, p4.Y))
	maxX := math.Max(math.Max(p1.X, p2.X), math.Max(p3.X, p4.X))
	maxY := math.Max(math.Max(p1.Y, p2.Y), math.Max(p3.Y, p4.Y))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Determinant returns the determinant of the linear part of the matrix.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// A matrix whose determinant magnitude is below singularEpsilon has no
// inverse; Invert returns a *NotInvertibleError rather than a stand-in.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Matrix{}, &NotInvertibleError{Matrix: m, Determinant: det}
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// Decomposition holds the translation, scale, and rotation extracted from
// an affine matrix. Shear is folded into the scale components.
type Decomposition struct {
	Translation Point
	Scale       Point
	Rotation    float64 // radians
}

// Decompose extracts translation, scale, and rotation from the matrix.
// The decomposition assumes the matrix was built from translate, scale,
// and rotate operations; a matrix with a zero first column yields a zero
// scale and rotation.
func (m Matrix) Decompose() Decomposition {
	d := Decomposition{
		Translation: Point{X: m.C, Y: m.F},
	}

	sx := math.Hypot(m.A, m.D)
	if sx == 0 {
		return d
	}
	d.Rotation = math.Atan2(m.D, m.A)
	d.Scale = Point{X: sx, Y: m.Determinant() / sx}
	return d
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

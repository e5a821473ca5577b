package geom

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
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix from raw shear factors.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// SkewX creates a horizontal skew matrix (angle in radians).
func SkewX(angle float64) Matrix {
	return Shear(math.Tan(angle), 0)
}

// SkewY creates a vertical skew matrix (angle in radians).
func SkewY(angle float64) Matrix {
	return Shear(0, math.Tan(angle))
}

// Multiply multiplies two matrices (m * other).
// Applying the result equals applying other first, then m.
// Multiplication is associative but not commutative.
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

// TransformVector applies only the linear 2x2 part of the
// transformation, ignoring the offset. Use it for free vectors and
// directions, which have no position.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear 2x2 part.
// A zero determinant means the matrix is singular and not invertible.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix. The linear part is inverted via
// the determinant; the inverse offset is the original offset pushed
// through the inverted linear part and negated.
//
// A singular matrix (zero determinant) produces non-finite entries
// rather than an error; check with IsFinite.
func (m Matrix) Invert() Matrix {
	invDet := 1.0 / m.Determinant()
	lin := Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
	}
	offset := lin.TransformVector(Point{X: m.C, Y: m.F})
	lin.C = -offset.X
	lin.F = -offset.Y
	return lin
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

// IsFinite returns true if every entry is finite (neither NaN nor
// infinite).
func (m Matrix) IsFinite() bool {
	return !math.IsNaN(m.A) && !math.IsInf(m.A, 0) &&
		!math.IsNaN(m.B) && !math.IsInf(m.B, 0) &&
		!math.IsNaN(m.C) && !math.IsInf(m.C, 0) &&
		!math.IsNaN(m.D) && !math.IsInf(m.D, 0) &&
		!math.IsNaN(m.E) && !math.IsInf(m.E, 0) &&
		!math.IsNaN(m.F) && !math.IsInf(m.F, 0)
}

// IsNaN returns true if any entry is NaN.
func (m Matrix) IsNaN() bool {
	return math.IsNaN(m.A) || math.IsNaN(m.B) || math.IsNaN(m.C) ||
		math.IsNaN(m.D) || math.IsNaN(m.E) || math.IsNaN(m.F)
}

// Approx returns true if two matrices are approximately equal within
// epsilon, entry by entry.
func (m Matrix) Approx(other Matrix, epsilon float64) bool {
	return math.Abs(m.A-other.A) < epsilon &&
		math.Abs(m.B-other.B) < epsilon &&
		math.Abs(m.C-other.C) < epsilon &&
		math.Abs(m.D-other.D) < epsilon &&
		math.Abs(m.E-other.E) < epsilon &&
		math.Abs(m.F-other.F) < epsilon
}

package geom

import "math"

// Transform holds the semantic parameters of a 2D affine transform:
// rotation, scale, skew, flip and translation. It is the
// human-editable dual of Matrix; Matrix() and Decompose convert
// between the two.
//
// The zero value is NOT the identity transform (scale would be zero);
// use NewTransform for identity defaults.
type Transform struct {
	// Angle is the rotation in radians.
	Angle float64

	// ScaleX and ScaleY are the scale factors. Decompose reports
	// magnitudes here with the signs in FlipX and FlipY.
	ScaleX, ScaleY float64

	// SkewX and SkewY are shear angles in radians. Decompose always
	// reports SkewY as 0; it is accepted as input only.
	SkewX, SkewY float64

	// TranslateX and TranslateY are the matrix offset.
	TranslateX, TranslateY float64

	// FlipX and FlipY mirror the respective axis before skewing.
	FlipX, FlipY bool
}

// NewTransform returns the identity transform: zero rotation, skew
// and translation, unit scale, no flips.
func NewTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Matrix composes the transform parameters into an affine matrix.
// Translation is applied first (baked in as the offset), then
// rotation, then scale/skew/flip.
//
// The rotation and dimension steps are skipped when they are the
// identity; the skips are pure optimizations and produce the exact
// same matrix as the unconditional path.
func (tr Transform) Matrix() Matrix {
	m := Translate(tr.TranslateX, tr.TranslateY)
	if tr.Angle != 0 {
		m = m.Multiply(tr.RotationMatrix())
	}
	if tr.ScaleX != 1 || tr.ScaleY != 1 ||
		tr.SkewX != 0 || tr.SkewY != 0 || tr.FlipX || tr.FlipY {
		m = m.Multiply(tr.DimensionsMatrix())
	}
	return m
}

// RotationMatrix returns the rotation step of the composition.
func (tr Transform) RotationMatrix() Matrix {
	return Rotate(tr.Angle)
}

// DimensionsMatrix returns the scale/skew/flip step of the
// composition: scale with flip signs applied, then the horizontal
// skew shear, then the vertical skew shear, each multiplied in only
// when nonzero.
func (tr Transform) DimensionsMatrix() Matrix {
	sx, sy := tr.ScaleX, tr.ScaleY
	if tr.FlipX {
		sx = -sx
	}
	if tr.FlipY {
		sy = -sy
	}
	m := Scale(sx, sy)
	if tr.SkewX != 0 {
		m = m.Multiply(SkewX(tr.SkewX))
	}
	if tr.SkewY != 0 {
		m = m.Multiply(SkewY(tr.SkewY))
	}
	return m
}

// SizeOf returns the width and height of the axis-aligned box
// containing a width x height rectangle centered on the origin after
// the scale/skew/flip step. Rotation and translation do not apply;
// use BoundsOfPoints with a full matrix for those.
func (tr Transform) SizeOf(width, height float64) (w, h float64) {
	dim := tr.DimensionsMatrix()
	corners := []Point{
		{X: -width / 2, Y: -height / 2},
		{X: width / 2, Y: -height / 2},
		{X: -width / 2, Y: height / 2},
		{X: width / 2, Y: height / 2},
	}
	b := BoundsOfPoints(corners, dim)
	return b.Width, b.Height
}

// Decompose recovers transform parameters from an affine matrix.
// It is the inverse of Transform.Matrix for matrices composed with
// SkewY == 0, nonzero ScaleX and an angle that is not a multiple of
// pi.
//
// The angle is atan2(d, a). At angles that are multiples of pi the
// sine term is zero and ScaleX (and everything derived from it) comes
// back NaN; callers should treat non-finite fields as "not
// decomposable under this model". Scale magnitudes are reported as
// absolute values with the signs captured in FlipX and FlipY.
func Decompose(m Matrix) Transform {
	angle := math.Atan2(m.D, m.A)
	scaleX := m.D / math.Sin(angle)
	scaleY := m.Determinant() / scaleX
	return Transform{
		Angle:      angle,
		ScaleX:     math.Abs(scaleX),
		ScaleY:     math.Abs(scaleY),
		SkewX:      math.Atan2(m.A*m.B+m.D*m.E, m.A*m.A+m.D*m.D),
		SkewY:      0,
		TranslateX: m.C,
		TranslateY: m.F,
		FlipX:      scaleX < 0,
		FlipY:      scaleY < 0,
	}
}

package geom

import "golang.org/x/image/math/f64"

// FromAff3 converts a golang.org/x/image/math/f64 affine matrix to a
// Matrix. Both use the same row-major 2x3 layout, so the conversion
// is direct field extraction. Use this at system boundaries where a
// platform-native matrix type arrives.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}

// Aff3 converts the matrix to a golang.org/x/image/math/f64 affine
// matrix.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.B, m.C,
		m.D, m.E, m.F,
	}
}

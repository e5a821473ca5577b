// Package geom provides a 2D affine-transform algebra for Go.
//
// # Overview
//
// geom implements the small set of geometric primitives a 2D scene
// layer needs: points and vectors, 2x3 affine matrices, composition
// and decomposition between matrices and human-editable transform
// parameters (rotation, scale, skew, flip, translation), and
// axis-aligned bounds of transformed point sets. The companion
// spatial package resolves overlap between circular nodes during a
// quadtree traversal.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	// Build a matrix from semantic parameters.
//	tr := geom.NewTransform()
//	tr.Angle = math.Pi / 4
//	tr.ScaleX = 2
//	m := tr.Matrix()
//
//	// Apply it to a point.
//	p := geom.Pt(1, 1).Transform(m)
//
//	// Recover the parameters from a raw matrix.
//	back := geom.Decompose(m)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Numeric Degeneracies
//
// geom never panics or returns errors for well-formed finite inputs.
// Degenerate inputs (singular matrices, decomposition at angles that
// are multiples of pi) produce IEEE non-finite values, which callers
// can detect with Matrix.IsFinite and Matrix.IsNaN.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

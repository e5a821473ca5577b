// Package spatial resolves overlap between circular nodes.
//
// Circles are compared by pointer identity and their centers are
// mutated in place by separation. A Separator holds shared-mutable
// access to every circle it touches for the duration of one Visit
// call; callers must serialize traversal passes over overlapping
// circle sets (a single goroutine per pass). There is no internal
// locking.
package spatial

import "github.com/gogpu/geom"

// Circle is a circular node with a mutable center. The package never
// allocates or destroys circles; it only adjusts the X and Y fields
// of circles passed in.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Center returns the current center as a point.
func (c *Circle) Center() geom.Point {
	return geom.Pt(c.X, c.Y)
}

// Overlaps reports whether two circles overlap, including touching
// a shared interior but excluding mere tangency.
func (c *Circle) Overlaps(o *Circle) bool {
	return c.Center().Distance(o.Center()) < c.Radius+o.Radius
}

// Bounds returns the axis-aligned box around the circle, grown by
// pad on every side.
func (c *Circle) Bounds(pad float64) geom.Rect {
	r := c.Radius + pad
	return geom.Rect{Left: c.X - r, Top: c.Y - r, Width: 2 * r, Height: 2 * r}
}

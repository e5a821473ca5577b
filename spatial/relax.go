package spatial

import "github.com/gogpu/geom"

// Relax runs the given number of separation passes over the circles.
// Each pass builds a fresh quadtree over the current centers and runs
// one Separator traversal per circle, so every overlapping pair is
// nudged apart a little per pass. Repeated passes converge toward
// zero overlap without explosive feedback because each correction
// moves a pair by exactly its current overlap.
//
// Relax mutates circle centers in place and must not run concurrently
// with anything else touching the same circles.
func Relax(circles []*Circle, passes int, opts ...Option) {
	if len(circles) < 2 {
		return
	}
	log := geom.Logger()
	for pass := 0; pass < passes; pass++ {
		tree := NewQuadtree(boundsOf(circles))
		for _, c := range circles {
			tree.Insert(c)
		}
		for _, c := range circles {
			sep := NewSeparator(c, opts...)
			tree.Visit(sep.Visit)
		}
		log.Debug("separation pass", "pass", pass, "circles", len(circles))
	}
}

// boundsOf returns the extents of the circle centers. The quadtree
// partitions centers, not areas, so radii are not included.
func boundsOf(circles []*Circle) geom.Rect {
	pts := make([]geom.Point, len(circles))
	for i, c := range circles {
		pts[i] = c.Center()
	}
	return geom.BoundsOfPoints(pts, geom.Identity())
}

package geom

// Rect is an axis-aligned bounding box.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.Left + r.Width
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 {
	return r.Top + r.Height
}

// Contains reports whether the point lies inside or on the edge of
// the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.MaxX() &&
		p.Y >= r.Top && p.Y <= r.MaxY()
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(s Rect) bool {
	return r.Left <= s.MaxX() && s.Left <= r.MaxX() &&
		r.Top <= s.MaxY() && s.Top <= r.MaxY()
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	left := min(r.Left, s.Left)
	top := min(r.Top, s.Top)
	right := max(r.MaxX(), s.MaxX())
	bottom := max(r.MaxY(), s.MaxY())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// TransformPoints returns a new slice with every point pushed through
// the matrix. The input slice is not modified.
func TransformPoints(points []Point, m Matrix) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// BoundsOfPoints returns the axis-aligned extents of the points after
// applying the matrix. The input points are left untouched.
//
// A single point yields a zero-size Rect at that point. An empty
// slice yields the zero Rect.
func BoundsOfPoints(points []Point, m Matrix) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	first := m.TransformPoint(points[0])
	minX, minY := first.X, first.Y
	maxX, maxY := first.X, first.Y
	for _, p := range points[1:] {
		q := m.TransformPoint(p)
		minX = min(minX, q.X)
		minY = min(minY, q.Y)
		maxX = max(maxX, q.X)
		maxY = max(maxY, q.Y)
	}
	return Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

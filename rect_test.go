package geom

import (
	"math"
	"testing"
)

func TestBoundsOfPointsConcrete(t *testing.T) {
	points := []Point{Pt(-1, -1), Pt(1, -1), Pt(-1, 1), Pt(1, 1)}
	got := BoundsOfPoints(points, Identity())
	want := Rect{Left: -1, Top: -1, Width: 2, Height: 2}
	if got != want {
		t.Errorf("BoundsOfPoints = %+v, want %+v", got, want)
	}
}

func TestBoundsOfPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		m      Matrix
		want   Rect
	}{
		{
			"empty",
			nil,
			Identity(),
			Rect{},
		},
		{
			"single point is zero-size",
			[]Point{Pt(3, 4)},
			Identity(),
			Rect{Left: 3, Top: 4},
		},
		{
			"translated square",
			[]Point{Pt(-1, -1), Pt(1, -1), Pt(-1, 1), Pt(1, 1)},
			Translate(10, 20),
			Rect{Left: 9, Top: 19, Width: 2, Height: 2},
		},
		{
			"scaled square",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1)},
			Scale(4, 2),
			Rect{Left: 0, Top: 0, Width: 4, Height: 2},
		},
		{
			"unordered input",
			[]Point{Pt(5, 5), Pt(-5, 0), Pt(0, -5)},
			Identity(),
			Rect{Left: -5, Top: -5, Width: 10, Height: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundsOfPoints(tt.points, tt.m)
			if got != tt.want {
				t.Errorf("BoundsOfPoints = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundsOfPointsRotated(t *testing.T) {
	// A unit square rotated 45 degrees spans sqrt(2) on each axis.
	points := []Point{Pt(-0.5, -0.5), Pt(0.5, -0.5), Pt(-0.5, 0.5), Pt(0.5, 0.5)}
	got := BoundsOfPoints(points, Rotate(math.Pi/4))
	want := math.Sqrt2
	if math.Abs(got.Width-want) > 1e-9 || math.Abs(got.Height-want) > 1e-9 {
		t.Errorf("rotated square bounds = %+v, want width/height %v", got, want)
	}
}

func TestBoundsOfPointsDoesNotMutate(t *testing.T) {
	points := []Point{Pt(1, 2), Pt(3, 4)}
	BoundsOfPoints(points, Scale(10, 10))
	if points[0] != Pt(1, 2) || points[1] != Pt(3, 4) {
		t.Errorf("input points mutated: %v", points)
	}
}

func TestTransformPoints(t *testing.T) {
	points := []Point{Pt(1, 1), Pt(2, 0)}
	got := TransformPoints(points, Matrix{A: 2, B: 0, C: 5, D: 0, E: 1, F: 0})
	if got[0] != Pt(7, 1) || got[1] != Pt(9, 0) {
		t.Errorf("TransformPoints = %v, want [(7,1) (9,0)]", got)
	}
	if points[0] != Pt(1, 1) || points[1] != Pt(2, 0) {
		t.Errorf("input points mutated: %v", points)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 5}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(5, 2), true},
		{"corner", Pt(0, 0), true},
		{"far corner", Pt(10, 5), true},
		{"outside right", Pt(10.1, 2), false},
		{"outside above", Pt(5, -0.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		s    Rect
		want bool
	}{
		{"overlapping", Rect{Left: 5, Top: 5, Width: 10, Height: 10}, true},
		{"touching edge", Rect{Left: 10, Top: 0, Width: 5, Height: 5}, true},
		{"disjoint x", Rect{Left: 11, Top: 0, Width: 5, Height: 5}, false},
		{"disjoint y", Rect{Left: 0, Top: -6, Width: 5, Height: 5}, false},
		{"contained", Rect{Left: 2, Top: 2, Width: 1, Height: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.s); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.s, got, tt.want)
			}
			if got := tt.s.Intersects(r); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.s)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{Left: 0, Top: 0, Width: 2, Height: 2}
	b := Rect{Left: 5, Top: -1, Width: 1, Height: 1}
	got := a.Union(b)
	want := Rect{Left: 0, Top: -1, Width: 6, Height: 3}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

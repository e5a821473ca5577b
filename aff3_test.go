package geom

import (
	"testing"

	"golang.org/x/image/math/f64"
)

func TestFromAff3Layout(t *testing.T) {
	a := f64.Aff3{2, 0, 5, 0, 1, 0}
	m := FromAff3(a)
	want := Matrix{A: 2, B: 0, C: 5, D: 0, E: 1, F: 0}
	if m != want {
		t.Errorf("FromAff3 = %+v, want %+v", m, want)
	}
	// Same point mapping through both representations.
	got := m.TransformPoint(Pt(1, 1))
	if got != Pt(7, 1) {
		t.Errorf("TransformPoint = %v, want (7,1)", got)
	}
}

func TestAff3RoundTrip(t *testing.T) {
	matrices := []Matrix{
		Identity(),
		Translate(3, -4),
		Scale(2, 0.5),
		Rotate(1.2),
		Translate(1, 2).Multiply(Rotate(0.7)).Multiply(Scale(3, -1)),
	}
	for _, m := range matrices {
		if got := FromAff3(m.Aff3()); got != m {
			t.Errorf("FromAff3(Aff3()) = %+v, want %+v", got, m)
		}
	}
}

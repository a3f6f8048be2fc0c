package hull

import (
	"testing"

	"github.com/quasilyte/gmath"
)

func TestConvexHullVec(t *testing.T) {
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
		{X: 1, Y: 1},
	}
	want := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}

	got := ConvexHullVec(points)
	if len(got) != len(want) {
		t.Fatalf("ConvexHullVec = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestConvexHullVec_ShortInput(t *testing.T) {
	points := []gmath.Vec{{X: 5, Y: 5}, {X: 1, Y: 1}}
	got := ConvexHullVec(points)
	if len(got) != 2 || got[0] != points[0] || got[1] != points[1] {
		t.Errorf("ConvexHullVec = %v, want %v verbatim", got, points)
	}
}

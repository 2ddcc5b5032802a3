package so3

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDistanceKnownAngles(t *testing.T) {
	axis := r3.Vector{X: 1, Y: -1, Z: 2}
	for _, deg := range []float64{0.5, 10, 45, 90, 135, 179} {
		m := FromAxisAngle(AxisAngle{Axis: axis, Theta: deg * math.Pi / 180})
		if got := Distance(Identity(), m); !scalar.EqualWithinAbs(got, deg, 1e-7) {
			t.Fatalf("distance to %g° rotation: have %.9g", deg, got)
		}
	}
}

func TestDistanceSelf(t *testing.T) {
	src := rand.NewSource(13)
	for i := 0; i < 20; i++ {
		m := Random(src)
		if got := Distance(m, m); !scalar.EqualWithinAbs(got, 0, 1e-5) {
			t.Fatalf("sample %d: Distance(R, R) = %.12g, want 0", i, got)
		}
	}
}

func TestDistanceSymmetryAndBounds(t *testing.T) {
	src := rand.NewSource(17)
	for i := 0; i < 50; i++ {
		a, b := Random(src), Random(src)
		ab, ba := Distance(a, b), Distance(b, a)
		if !scalar.EqualWithinAbs(ab, ba, 1e-9) {
			t.Fatalf("sample %d: Distance not symmetric: %.12g vs %.12g", i, ab, ba)
		}
		if ab < 0 || ab > 180 {
			t.Fatalf("sample %d: distance %.12g outside [0, 180]", i, ab)
		}
	}
}

func TestDistanceHalfTurn(t *testing.T) {
	m := FromAxisAngle(AxisAngle{Axis: r3.Vector{Z: 1}, Theta: math.Pi})
	if got := Distance(Identity(), m); !scalar.EqualWithinAbs(got, 180, 1e-9) {
		t.Fatalf("distance to half turn: have %.9g, want 180", got)
	}
}

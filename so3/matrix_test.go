package so3

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func matEq(a, b Matrix, eps float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

func vecEq(a, b r3.Vector, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

// isRotation checks Rᵗ·R ~ I and det(R) ~ +1.
func isRotation(t *testing.T, m Matrix, eps float64) {
	t.Helper()
	p := m.Transpose().Mul(m)
	if !matEq(p, Identity(), eps) {
		t.Fatalf("R^T R != I\nhave %v", p)
	}
	if d := m.Det(); math.Abs(d-1) > eps {
		t.Fatalf("det(R) = %.12g, want 1", d)
	}
}

func TestMatrixMul(t *testing.T) {
	a := Matrix{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	if got := a.Mul(Identity()); got != a {
		t.Fatalf("A × I = %v, want %v", got, a)
	}
	if got := Identity().Mul(a); got != a {
		t.Fatalf("I × A = %v, want %v", got, a)
	}
	// A is a quarter turn about z, so A⁴ = I.
	if got := a.Mul(a).Mul(a).Mul(a); !matEq(got, Identity(), 1e-15) {
		t.Fatalf("A^4 = %v, want I", got)
	}
}

func TestMatrixMulVec(t *testing.T) {
	a := Matrix{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	got := a.MulVec(r3.Vector{X: 1})
	if !vecEq(got, r3.Vector{Y: 1}, 1e-15) {
		t.Fatalf("quarter turn of x̂ = %v, want ŷ", got)
	}
}

func TestMatrixTransposeDetTrace(t *testing.T) {
	a := Matrix{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	at := a.Transpose()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if at[r*3+c] != a[c*3+r] {
				t.Fatalf("transpose mismatch at (%d,%d)", r, c)
			}
		}
	}
	if d := a.Det(); math.Abs(d+3) > 1e-12 {
		t.Fatalf("det = %.12g, want -3", d)
	}
	if tr := a.Trace(); tr != 16 {
		t.Fatalf("trace = %v, want 16", tr)
	}
}

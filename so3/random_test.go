package so3

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestRandomIsRotation(t *testing.T) {
	src := rand.NewSource(1)
	for i := 0; i < 100; i++ {
		isRotation(t, Random(src), 1e-12)
	}
}

func TestRandomSeeded(t *testing.T) {
	a := Random(rand.NewSource(42))
	b := Random(rand.NewSource(42))
	if a != b {
		t.Fatalf("same seed produced different rotations:\n%v\n%v", a, b)
	}

	src := rand.NewSource(42)
	c, d := Random(src), Random(src)
	if matEq(c, d, 1e-6) {
		t.Fatal("consecutive draws from one source were identical")
	}
}

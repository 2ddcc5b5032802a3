package so3

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random draws a rotation uniformly from SO(3) under the Haar measure:
// four independent N(0,1) samples normalized onto the unit 3-sphere give a
// uniformly distributed unit quaternion, which double-covers the rotation
// group uniformly.
//
// The randomness source is explicit so callers can seed it; a nil src uses
// the global generator.
func Random(src rand.Source) Matrix {
	n := distuv.Normal{Sigma: 1, Src: src}
	q := quat.Number{
		Real: n.Rand(),
		Imag: n.Rand(),
		Jmag: n.Rand(),
		Kmag: n.Rand(),
	}
	// Abs(q) = 0 has probability zero for continuous draws.
	return FromQuaternion(quat.Scale(1/quat.Abs(q), q))
}

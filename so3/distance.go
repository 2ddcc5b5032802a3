package so3

import "math"

// Distance returns the geodesic angular distance between two proper
// rotations in degrees: the rotation angle of aᵗ·b, always in [0, 180].
// It is symmetric in its arguments and zero iff a equals b.
func Distance(a, b Matrix) float64 {
	rel := a.Transpose().Mul(b)
	return clampedAcos((rel.Trace()-1)/2) * 180 / math.Pi
}

package so3

import "math"

// acosTol absorbs floating-point overshoot of an acos argument past ±1.
// Traces of products of orthogonal matrices accumulate a few ulps of error,
// which would otherwise turn the angle into NaN at 0 and π.
const acosTol = 1e-10

// clampedAcos returns acos(x), snapping arguments slightly outside [-1, 1]
// to the nearest endpoint angle. Arguments beyond the tolerance are passed
// through and yield NaN like math.Acos: that input is garbage, not round-off.
func clampedAcos(x float64) float64 {
	if x > 1 {
		if x-1 <= acosTol {
			return 0
		}
	} else if x < -1 {
		if -1-x <= acosTol {
			return math.Pi
		}
	}
	return math.Acos(x)
}

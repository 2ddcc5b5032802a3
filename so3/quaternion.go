package so3

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion returns m as a unit quaternion with Real the scalar part,
// derived through the axis-angle form: [cos(θ/2), axis·sin(θ/2)].
//
// An exact zero angle returns the identity quaternion (the axis is
// arbitrary there and its weight sin(θ/2) vanishes). A rotation by π keeps
// the degenerate axis of AxisAngle: sin(π/2) = 1 amplifies it instead of
// damping it, so the vector part is undefined exactly at π.
func (m Matrix) Quaternion() quat.Number {
	aa := m.AxisAngle()
	if aa.Theta == 0 {
		return quat.Number{Real: 1}
	}
	s, c := math.Sincos(aa.Theta / 2)
	return quat.Number{
		Real: c,
		Imag: aa.Axis.X * s,
		Jmag: aa.Axis.Y * s,
		Kmag: aa.Axis.Z * s,
	}
}

// FromQuaternion converts a quaternion to a 3×3 rotation matrix. The input
// is not normalized: a non-unit quaternion yields a matrix that is neither
// orthogonal nor determinant +1, which is the caller's responsibility.
func FromQuaternion(q quat.Number) Matrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

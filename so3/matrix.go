// Package so3 provides closed-form conversions between the three common
// parameterizations of a 3D rotation (rotation matrix, axis-angle pair,
// unit quaternion), plus uniform random rotation sampling, projection of an
// arbitrary 3×3 matrix onto the rotation group, geodesic angular distance,
// and quaternion multiplication expressed as 4×4 linear operators.
//
// Inputs are not validated: a Matrix is assumed orthogonal with determinant
// +1 and a quaternion is assumed unit norm wherever a rotation is expected.
// Violating that yields well-defined but meaningless numbers, not errors.
package so3

import (
	"github.com/golang/geo/r3"
)

// Matrix is a 3×3 rotation matrix stored row-major: m[3*r + c] is the
// element in the r'th row and c'th column. Value type for zero heap
// allocation.
type Matrix [9]float64

func Identity() Matrix {
	return Matrix{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mul returns m × n.
func (m Matrix) Mul(n Matrix) Matrix {
	var p Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p[r*3+c] = m[r*3+0]*n[0*3+c] + m[r*3+1]*n[1*3+c] + m[r*3+2]*n[2*3+c]
		}
	}
	return p
}

// MulVec returns m × v.
func (m Matrix) MulVec(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Matrix) Trace() float64 {
	return m[0] + m[4] + m[8]
}

func (m Matrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

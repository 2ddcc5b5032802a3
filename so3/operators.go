package so3

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Mat4 is a 4×4 matrix stored row-major, acting on quaternion coefficient
// vectors ordered [w, x, y, z].
type Mat4 [16]float64

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MulQuat applies the operator to the coefficient vector of q.
func (m Mat4) MulQuat(q quat.Number) quat.Number {
	return quat.Number{
		Real: m[0]*q.Real + m[1]*q.Imag + m[2]*q.Jmag + m[3]*q.Kmag,
		Imag: m[4]*q.Real + m[5]*q.Imag + m[6]*q.Jmag + m[7]*q.Kmag,
		Jmag: m[8]*q.Real + m[9]*q.Imag + m[10]*q.Jmag + m[11]*q.Kmag,
		Kmag: m[12]*q.Real + m[13]*q.Imag + m[14]*q.Jmag + m[15]*q.Kmag,
	}
}

// LeftOperator returns the matrix L(a) such that L(a)·b is the Hamilton
// product a⊗b for any quaternion b: left multiplication by a as a linear
// operator. For unit a, L(a⁻¹) = L(a)ᵗ, since the inverse of a unit
// quaternion is its conjugate.
func LeftOperator(a quat.Number) Mat4 {
	w, x, y, z := a.Real, a.Imag, a.Jmag, a.Kmag
	return Mat4{
		w, -x, -y, -z,
		x, w, -z, y,
		y, z, w, -x,
		z, -y, x, w,
	}
}

// RightOperator returns the matrix R(b) such that R(b)·a is the Hamilton
// product a⊗b for any quaternion a: right multiplication by b as a linear
// operator. The same transpose relation as LeftOperator holds for unit b.
func RightOperator(b quat.Number) Mat4 {
	w, x, y, z := b.Real, b.Imag, b.Jmag, b.Kmag
	return Mat4{
		w, -x, -y, -z,
		x, w, z, -y,
		y, -z, w, x,
		z, y, -x, w,
	}
}

// LeftOperatorVec is LeftOperator for the pure quaternion [0, v].
func LeftOperatorVec(v r3.Vector) Mat4 {
	return LeftOperator(quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z})
}

// RightOperatorVec is RightOperator for the pure quaternion [0, v].
func RightOperatorVec(v r3.Vector) Mat4 {
	return RightOperator(quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z})
}

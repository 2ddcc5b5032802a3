package so3

import (
	"gonum.org/v1/gonum/mat"
)

// Project returns the proper rotation nearest to m in the Frobenius norm,
// the determinant-constrained orthogonal Procrustes solution: with
// M = U·Σ·Vᵗ the candidate is U·Vᵗ, and a negative determinant (the nearest
// orthogonal matrix is a reflection) is repaired as U·diag(1,1,-1)·Vᵗ.
func Project(m Matrix) Matrix {
	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(3, 3, m[:]), mat.SVDFull); !ok {
		// Does not happen for finite 3×3 input.
		return m
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var r mat.Dense
	r.Mul(&u, v.T())
	if mat.Det(&r) < 0 {
		var uf mat.Dense
		uf.Mul(&u, mat.NewDiagDense(3, []float64{1, 1, -1}))
		r.Mul(&uf, v.T())
	}

	var out Matrix
	copy(out[:], r.RawMatrix().Data)
	return out
}

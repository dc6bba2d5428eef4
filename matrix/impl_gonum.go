// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const opCondition = "ConditionNumber"

// ToGonum copies m into a gonum *mat.Dense.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := toDense(m)
	if err != nil {
		return nil, err
	}
	if d.r == 0 || d.c == 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)
	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies a gonum matrix into a *Dense.
func FromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}
	return out
}

// ConditionNumber returns the 2-norm condition number of a square matrix via SVD.
// A singular matrix reports +Inf; NaN entries yield ErrNaNInf.
func ConditionNumber(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	for _, v := range g.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, matrixErrorf(opCondition, ErrNaNInf)
		}
	}
	return mat.Cond(g, 2), nil
}

// IsPositiveDefinite reports whether the symmetric matrix m admits a Cholesky factorization.
func IsPositiveDefinite(m Matrix) (bool, error) {
	if err := ValidateSymmetric(m, DefaultEpsilon*1e3); err != nil {
		return false, err
	}
	g, err := ToGonum(m)
	if err != nil {
		return false, err
	}
	n, _ := g.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := g.At(i, j)
			if math.IsNaN(v) {
				return false, nil
			}
			sym.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	return chol.Factorize(sym), nil
}

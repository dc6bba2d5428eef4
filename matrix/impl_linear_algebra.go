// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense kernels used by covariance computation: Transpose, Mul, Scale, MatVec, Inverse.
//   - Deterministic loop orders; *Dense fast paths operate on the flat buffer.

package matrix

import (
	"fmt"
	"math"
)

const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opInverse   = "Inverse"
)

// matrixErrorf tags err with an operation name, preserving the sentinel for errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns mᵀ as a new *Dense.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < src.r; i++ {
		base := i * src.c
		for j := 0; j < src.c; j++ {
			out.data[j*out.c+i] = src.data[base+j]
		}
	}
	return out, nil
}

// Mul returns a·b.
// Implementation:
//   - Stage 1: validate non-nil and a.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation so the inner loop streams rows of b.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < ad.r; i++ {
		rowOut := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < ad.c; k++ {
			aik := ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			rowB := bd.data[k*bd.c : (k+1)*bd.c]
			for j := range rowOut {
				rowOut[j] += aik * rowB[j]
			}
		}
	}
	return out, nil
}

// Scale returns alpha·m.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := src.Copy()
	for k := range out.data {
		out.data[k] *= alpha
	}
	return out, nil
}

// MatVec returns m·x.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		var sum float64
		row := d.data[i*d.c : (i+1)*d.c]
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Inverse returns m⁻¹ by Gauss-Jordan elimination with partial pivoting.
// Implementation:
//   - Stage 1: validate non-nil and square; copy into an n×2n augmented buffer [m | I].
//   - Stage 2: for each column pick the largest |pivot| at or below the diagonal; a pivot whose
//     magnitude is <= eps·max|m| (or NaN) yields ErrSingular.
//   - Stage 3: normalize the pivot row and eliminate the column from every other row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := NewOptions(opts...)
	n := src.r
	w := 2 * n
	aug := make([]float64, n*w)
	var scale float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := src.data[i*n+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opInverse, ErrNaNInf)
			}
			aug[i*w+j] = v
			scale = math.Max(scale, math.Abs(v))
		}
		aug[i*w+n+i] = 1
	}
	tol := o.eps * scale
	if scale == 0 && n > 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	for col := 0; col < n; col++ {
		p := col
		best := math.Abs(aug[col*w+col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r*w+col]); v > best {
				best, p = v, r
			}
		}
		if best <= tol {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		if p != col {
			for k := 0; k < w; k++ {
				aug[col*w+k], aug[p*w+k] = aug[p*w+k], aug[col*w+k]
			}
		}
		inv := 1 / aug[col*w+col]
		for k := 0; k < w; k++ {
			aug[col*w+k] *= inv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := aug[r*w+col]
			if f == 0 {
				continue
			}
			for k := 0; k < w; k++ {
				aug[r*w+k] -= f * aug[col*w+k]
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		copy(out.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}
	return out, nil
}

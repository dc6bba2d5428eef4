// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over a cases×variables matrix: CenterColumns, Covariance, Correlation.
//   - Compositions over the canonical kernels (Transpose/Mul/Scale) with fixed traversal orders.

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: validate X.
//   - Stage 2: compute column means in one row-major pass.
//   - Stage 3: write a centered copy.
//
// Returns:
//   - *Dense: centered copy.
//   - []float64: column means.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := make([]float64, src.c)
	if src.r == 0 {
		return src.Copy(), means, nil
	}
	for i := 0; i < src.r; i++ {
		base := i * src.c
		for j := 0; j < src.c; j++ {
			means[j] += src.data[base+j]
		}
	}
	for j := range means {
		means[j] /= float64(src.r)
	}
	out := src.Copy()
	for i := 0; i < out.r; i++ {
		base := i * out.c
		for j := 0; j < out.c; j++ {
			out.data[base+j] -= means[j]
		}
	}
	return out, means, nil
}

// Covariance returns the column covariance (Xcᵀ·Xc)/divisor, where divisor is r-1
// when unbiased is true and r otherwise.
// Implementation:
//   - Stage 1: validate X; require r>=2 for the unbiased form and r>=1 otherwise.
//   - Stage 2: center columns.
//   - Stage 3: Gram matrix via Transpose+Mul, then Scale; mirror the upper triangle
//     so the result is exactly symmetric.
//
// Complexity:
//   - Time O(r*c + r*c^2), Space O(r*c + c^2).
func Covariance(X Matrix, unbiased bool) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, _ := NewDense(0, 0)
		return z, []float64{}, nil
	}
	divisor := float64(r)
	if unbiased {
		divisor = float64(r - 1)
	}
	if divisor <= 0 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(G, 1/divisor)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	for i := 0; i < c; i++ {
		for j := i + 1; j < c; j++ {
			cov.data[j*c+i] = cov.data[i*c+j]
		}
	}
	return cov, means, nil
}

// Correlation converts a covariance matrix to a correlation matrix:
// ρ_ij = σ_ij / sqrt(σ_ii·σ_jj). Degenerate variances (<=0) yield NaN off-diagonal entries
// and a NaN diagonal.
// Complexity: Time O(n²), Space O(n²).
func Correlation(cov Matrix) (*Dense, error) {
	if err := ValidateNotNil(cov); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	if err := ValidateSquare(cov); err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	src, err := toDense(cov)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	n := src.r
	sd := make([]float64, n)
	for i := 0; i < n; i++ {
		v := src.data[i*n+i]
		if v > 0 {
			sd[i] = math.Sqrt(v)
		} else {
			sd[i] = math.NaN()
		}
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCorrelation, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				if math.IsNaN(sd[i]) {
					out.data[i*n+j] = math.NaN()
				} else {
					out.data[i*n+j] = 1
				}
				continue
			}
			out.data[i*n+j] = src.data[i*n+j] / (sd[i] * sd[j])
		}
	}
	return out, nil
}

// SPDX-License-Identifier: MIT

package covariance

import "errors"

var (
	// ErrNotContinuous indicates a dataset with a discrete column.
	ErrNotContinuous = errors.New("covariance: dataset is not continuous")

	// ErrDimensionMismatch indicates a matrix whose size differs from the variable count.
	ErrDimensionMismatch = errors.New("covariance: matrix dimension does not match variables")

	// ErrSampleSize indicates a non-positive sample size or too few complete rows.
	ErrSampleSize = errors.New("covariance: invalid sample size")

	// ErrIndexOutOfRange indicates a variable or row index outside the matrix.
	ErrIndexOutOfRange = errors.New("covariance: index out of range")

	// ErrUnknownVariable indicates a name not among the matrix variables.
	ErrUnknownVariable = errors.New("covariance: unknown variable")
)

// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrNegativeIndex indicates a negative row or column.
	ErrNegativeIndex = errors.New("dataset: negative index")

	// ErrColumnOutOfRange indicates a column index at or past NumCols.
	ErrColumnOutOfRange = errors.New("dataset: column out of range")

	// ErrRowOutOfRange indicates a row index at or past NumRows where growth does not apply.
	ErrRowOutOfRange = errors.New("dataset: row out of range")

	// ErrTypeMismatch indicates a continuous access to a discrete column or vice versa.
	ErrTypeMismatch = errors.New("dataset: type mismatch")

	// ErrUnknownCategory indicates a category outside a non-accommodating variable.
	ErrUnknownCategory = errors.New("dataset: unknown category")

	// ErrDuplicateVariable indicates a variable name already present.
	ErrDuplicateVariable = errors.New("dataset: duplicate variable")

	// ErrUnknownVariable indicates a variable name not present.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrSchemaMismatch indicates datasets with incompatible variable lists.
	ErrSchemaMismatch = errors.New("dataset: schema mismatch")

	// ErrNotContinuous indicates an operation that requires all-continuous columns.
	ErrNotContinuous = errors.New("dataset: not all columns are continuous")

	// ErrNilRandom indicates a resampling call without a random source.
	ErrNilRandom = errors.New("dataset: nil random source")
)

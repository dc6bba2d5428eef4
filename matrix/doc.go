// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric collaborator used by datasets and
// covariance matrices.
//
// Purpose:
//   - A small Matrix interface (Rows/Cols/At/Set/Clone) with a row-major Dense implementation.
//   - Deterministic kernels: Transpose, Mul, Scale, Inverse (Gauss-Jordan with partial pivoting).
//   - Column statistics: CenterColumns, Covariance (configurable divisor), Correlation.
//   - A gonum bridge for numerically robust checks (ConditionNumber, IsPositiveDefinite).
//
// Error policy:
//   - Public accessors return sentinel errors (ErrOutOfRange, ErrDimensionMismatch, ...)
//     wrapped with an operation tag; callers match with errors.Is.
//   - NaN is a legal value (missing data); NaN/Inf rejection is opt-in via WithValidateNaNInf.
//
// Complexity quicksheet:
//   - At/Set O(1); Clone O(r*c); Mul O(r*k*c); Inverse O(n^3); Covariance O(r*c^2).
package matrix

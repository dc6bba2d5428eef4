// SPDX-License-Identifier: MIT

// Package covariance computes covariance matrices over continuous datasets.
//
// Two estimators are provided and they differ under missing data:
//
//   - CovarianceMatrix (global-complete): rows holding any missing value are
//     dropped, then every entry is computed over the same n rows with one divisor
//     (n-1 when bias-corrected, n otherwise). SampleSize reports that n.
//   - OnTheFly (pairwise-complete): columns are centred on their NaN-skipping means
//     and each entry (i, j) is the sum of products over rows where both columns are
//     present, divided by that pair's count minus one. Variances are computed once
//     at construction in parallel chunks; off-diagonal entries are computed on demand.
//
// On complete data the two agree to floating-point tolerance.
//
// Both satisfy Covariances. Submatrix extraction always yields an eager
// CovarianceMatrix carrying the source's sample size.
package covariance

// SPDX-License-Identifier: MIT

// Package dataset composes a Variable list with a databox.Box into a typed tabular
// dataset of continuous, discrete or mixed columns.
//
// Invariants:
//   - len(Variables()) == box.NumCols() and NumRows() == box.NumRows() at all times.
//   - Every cell access dispatches on the column's variable kind; mismatches return
//     ErrTypeMismatch and are never coerced.
//   - Negative indices fail with ErrNegativeIndex. Setting a row at or past NumRows
//     grows the dataset; reading such a row yields a missing value.
//   - Knowledge is deep-copied on the way in and on the way out.
//
// Discrete category growth is opt-in per variable (variable.WithAccommodation): an
// unseen category or index extends the variable through a functional update; otherwise
// ErrUnknownCategory is returned.
//
// Cell values at the boundary are the tagged Value union (Double, Category, Text, Missing).
package dataset

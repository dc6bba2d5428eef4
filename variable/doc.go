// SPDX-License-Identifier: MIT

// Package variable describes the semantic type of one dataset column.
//
// A Variable is a small immutable value: Continuous, or Discrete with an ordered,
// duplicate-free category list. Growth of a discrete category list is a functional
// update (WithCategory, WithCategoriesUpTo) that returns a new Variable and never
// mutates a shared one.
//
// Missing values are out of band: NaN for continuous cells and MissingDiscrete (-99)
// for discrete cells.
package variable

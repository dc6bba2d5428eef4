// SPDX-License-Identifier: MIT

// Package databox holds the raw rectangular numeric storage behind a dataset.
//
// A Box knows nothing about variable types beyond an optional per-column kind hint used
// by MixedBox. Values cross the interface as float64: continuous cells are stored as-is
// and discrete category indices as whole numbers. Missing cells read as NaN in float
// storage and as variable.MissingDiscrete in integer storage.
//
// Storage strategies (see Storage):
//   - DoubleBox: dense row-major float64. Best for row-wise access.
//   - VerticalDoubleBox: one float64 vector per column. Best for column statistics.
//   - IntBox: dense row-major int32. Compact storage for all-discrete data.
//   - MixedBox: float64 vectors for continuous columns, int32 vectors for discrete ones.
//
// Resize, Select, Copy and Like never alias the receiver's buffers.
package databox

// SPDX-License-Identifier: MIT

package databox

import (
	"github.com/katalvlaran/lvdata/variable"
)

// Box is rectangular numeric storage. Rows are cases, columns are variables.
//
// Get and Set expect in-range indices; range checks and growth policy belong to the
// owning dataset.
type Box interface {
	// NumRows returns the number of rows.
	NumRows() int
	// NumCols returns the number of columns.
	NumCols() int
	// Get returns the cell at (row, col).
	Get(row, col int) float64
	// Set assigns the cell at (row, col).
	Set(row, col int, v float64)
	// IsMissing reports whether (row, col) holds the storage's missing marker.
	IsMissing(row, col int) bool
	// Resize returns a box of the new shape holding the overlapping cells; new cells are missing.
	Resize(rows, cols int, kinds []variable.Kind) Box
	// Select returns a copy restricted to rows and cols, in the given order.
	Select(rows, cols []int) Box
	// Copy returns a deep copy.
	Copy() Box
	// Like returns an empty (all-missing) box of the same strategy and the given shape.
	Like(rows, cols int, kinds []variable.Kind) Box
	// Storage reports the strategy.
	Storage() Storage
}

// Storage selects a Box implementation.
type Storage int

const (
	// Double is dense row-major float64 storage.
	Double Storage = iota
	// VerticalDouble is column-vector float64 storage.
	VerticalDouble
	// Int is dense row-major int32 storage.
	Int
	// Mixed chooses float64 or int32 vectors per column.
	Mixed
)

var storageNames = [...]string{"double", "vertical", "int", "mixed"}

// String implements fmt.Stringer.
func (s Storage) String() string {
	if s < 0 || int(s) >= len(storageNames) {
		return "unknown"
	}
	return storageNames[s]
}

// ParseStorage maps a configuration name to a Storage.
func ParseStorage(name string) (Storage, bool) {
	for i, n := range storageNames {
		if n == name {
			return Storage(i), true
		}
	}
	return Double, false
}

// New allocates an all-missing box. kinds is consulted by Mixed storage only and may
// be shorter than cols (the remainder is continuous).
func New(s Storage, rows, cols int, kinds []variable.Kind) Box {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	switch s {
	case VerticalDouble:
		return NewVerticalDoubleBox(rows, cols)
	case Int:
		return NewIntBox(rows, cols)
	case Mixed:
		return NewMixedBox(rows, kinds, cols)
	default:
		return NewDoubleBox(rows, cols)
	}
}

// Fill copies every overlapping cell of src into dst.
func Fill(dst, src Box) {
	rows := min(dst.NumRows(), src.NumRows())
	cols := min(dst.NumCols(), src.NumCols())
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(i, j, src.Get(i, j))
		}
	}
}

func kindAt(kinds []variable.Kind, j int) variable.Kind {
	if j < len(kinds) {
		return kinds[j]
	}
	return variable.Continuous
}

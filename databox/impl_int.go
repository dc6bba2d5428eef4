// SPDX-License-Identifier: MIT

package databox

import (
	"math"

	"github.com/katalvlaran/lvdata/variable"
)

// IntBox is dense row-major int32 storage for category indices.
// Set truncates toward zero; NaN stores variable.MissingDiscrete.
type IntBox struct {
	rows, cols int
	data       []int32
}

var _ Box = (*IntBox)(nil)

// NewIntBox returns an all-missing box.
func NewIntBox(rows, cols int) *IntBox {
	b := &IntBox{rows: rows, cols: cols, data: make([]int32, rows*cols)}
	for k := range b.data {
		b.data[k] = variable.MissingDiscrete
	}
	return b
}

func toInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return variable.MissingDiscrete
	}
	return int32(v)
}

func (b *IntBox) NumRows() int { return b.rows }
func (b *IntBox) NumCols() int { return b.cols }
func (b *IntBox) Get(row, col int) float64 {
	return float64(b.data[row*b.cols+col])
}
func (b *IntBox) Set(row, col int, v float64) { b.data[row*b.cols+col] = toInt32(v) }
func (b *IntBox) IsMissing(row, col int) bool {
	return b.data[row*b.cols+col] == variable.MissingDiscrete
}
func (b *IntBox) Storage() Storage { return Int }

// GetInt returns the raw index at (row, col).
func (b *IntBox) GetInt(row, col int) int { return int(b.data[row*b.cols+col]) }

func (b *IntBox) Resize(rows, cols int, _ []variable.Kind) Box {
	out := NewIntBox(rows, cols)
	for i := 0; i < min(rows, b.rows); i++ {
		for j := 0; j < min(cols, b.cols); j++ {
			out.data[i*cols+j] = b.data[i*b.cols+j]
		}
	}
	return out
}

func (b *IntBox) Select(rows, cols []int) Box {
	out := &IntBox{rows: len(rows), cols: len(cols), data: make([]int32, len(rows)*len(cols))}
	for a, i := range rows {
		for c, j := range cols {
			out.data[a*out.cols+c] = b.data[i*b.cols+j]
		}
	}
	return out
}

func (b *IntBox) Copy() Box {
	out := &IntBox{rows: b.rows, cols: b.cols, data: make([]int32, len(b.data))}
	copy(out.data, b.data)
	return out
}

func (b *IntBox) Like(rows, cols int, _ []variable.Kind) Box { return NewIntBox(rows, cols) }

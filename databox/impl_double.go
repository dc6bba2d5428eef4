// SPDX-License-Identifier: MIT

package databox

import (
	"math"

	"github.com/katalvlaran/lvdata/variable"
)

// DoubleBox is dense row-major float64 storage.
type DoubleBox struct {
	rows, cols int
	data       []float64
}

var _ Box = (*DoubleBox)(nil)

// NewDoubleBox returns an all-NaN rows×cols box.
func NewDoubleBox(rows, cols int) *DoubleBox {
	b := &DoubleBox{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for k := range b.data {
		b.data[k] = math.NaN()
	}
	return b
}

// NewDoubleBoxFrom wraps a copy of row-major data.
func NewDoubleBoxFrom(rows, cols int, data []float64) *DoubleBox {
	b := &DoubleBox{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	copy(b.data, data)
	return b
}

func (b *DoubleBox) NumRows() int                { return b.rows }
func (b *DoubleBox) NumCols() int                { return b.cols }
func (b *DoubleBox) Get(row, col int) float64    { return b.data[row*b.cols+col] }
func (b *DoubleBox) Set(row, col int, v float64) { b.data[row*b.cols+col] = v }
func (b *DoubleBox) IsMissing(row, col int) bool { return math.IsNaN(b.Get(row, col)) }
func (b *DoubleBox) Storage() Storage            { return Double }

// RawData exposes the row-major buffer; writes go through.
func (b *DoubleBox) RawData() []float64 { return b.data }

func (b *DoubleBox) Resize(rows, cols int, _ []variable.Kind) Box {
	out := NewDoubleBox(rows, cols)
	Fill(out, b)
	return out
}

func (b *DoubleBox) Select(rows, cols []int) Box {
	out := &DoubleBox{rows: len(rows), cols: len(cols), data: make([]float64, len(rows)*len(cols))}
	for a, i := range rows {
		for c, j := range cols {
			out.data[a*out.cols+c] = b.data[i*b.cols+j]
		}
	}
	return out
}

func (b *DoubleBox) Copy() Box { return NewDoubleBoxFrom(b.rows, b.cols, b.data) }

func (b *DoubleBox) Like(rows, cols int, _ []variable.Kind) Box { return NewDoubleBox(rows, cols) }

// SPDX-License-Identifier: MIT

package databox

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvdata/variable"
)

// VerticalDoubleBox stores one float64 vector per column.
type VerticalDoubleBox struct {
	rows int
	cols [][]float64
}

var _ Box = (*VerticalDoubleBox)(nil)

// NewVerticalDoubleBox returns an all-NaN box.
func NewVerticalDoubleBox(rows, cols int) *VerticalDoubleBox {
	b := &VerticalDoubleBox{rows: rows, cols: make([][]float64, cols)}
	for j := range b.cols {
		b.cols[j] = nanVector(rows)
	}
	return b
}

// NewVerticalDoubleBoxFrom copies column vectors of equal length.
func NewVerticalDoubleBoxFrom(columns [][]float64) *VerticalDoubleBox {
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	b := &VerticalDoubleBox{rows: rows, cols: make([][]float64, len(columns))}
	for j, c := range columns {
		v := nanVector(rows)
		copy(v, c)
		b.cols[j] = v
	}
	return b
}

func nanVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}
	return v
}

func (b *VerticalDoubleBox) NumRows() int                { return b.rows }
func (b *VerticalDoubleBox) NumCols() int                { return len(b.cols) }
func (b *VerticalDoubleBox) Get(row, col int) float64    { return b.cols[col][row] }
func (b *VerticalDoubleBox) Set(row, col int, v float64) { b.cols[col][row] = v }
func (b *VerticalDoubleBox) IsMissing(row, col int) bool { return math.IsNaN(b.cols[col][row]) }
func (b *VerticalDoubleBox) Storage() Storage            { return VerticalDouble }

// Columns returns copies of the column vectors.
func (b *VerticalDoubleBox) Columns() [][]float64 {
	out := make([][]float64, len(b.cols))
	for j, c := range b.cols {
		out[j] = slices.Clone(c)
	}
	return out
}

func (b *VerticalDoubleBox) Resize(rows, cols int, _ []variable.Kind) Box {
	out := NewVerticalDoubleBox(rows, cols)
	for j := 0; j < min(cols, len(b.cols)); j++ {
		copy(out.cols[j], b.cols[j][:min(rows, b.rows)])
	}
	return out
}

func (b *VerticalDoubleBox) Select(rows, cols []int) Box {
	out := &VerticalDoubleBox{rows: len(rows), cols: make([][]float64, len(cols))}
	for c, j := range cols {
		v := make([]float64, len(rows))
		for a, i := range rows {
			v[a] = b.cols[j][i]
		}
		out.cols[c] = v
	}
	return out
}

func (b *VerticalDoubleBox) Copy() Box { return NewVerticalDoubleBoxFrom(b.cols) }

func (b *VerticalDoubleBox) Like(rows, cols int, _ []variable.Kind) Box {
	return NewVerticalDoubleBox(rows, cols)
}

// SPDX-License-Identifier: MIT

package databox

import (
	"math"

	"github.com/katalvlaran/lvdata/variable"
)

// MixedBox keeps float64 vectors for continuous columns and int32 vectors for
// discrete columns. Exactly one of floats[j] and ints[j] is non-nil.
type MixedBox struct {
	rows   int
	floats [][]float64
	ints   [][]int32
}

var _ Box = (*MixedBox)(nil)

// NewMixedBox returns an all-missing box with cols columns typed by kinds.
func NewMixedBox(rows int, kinds []variable.Kind, cols int) *MixedBox {
	b := &MixedBox{rows: rows, floats: make([][]float64, cols), ints: make([][]int32, cols)}
	for j := 0; j < cols; j++ {
		b.allocColumn(j, kindAt(kinds, j))
	}
	return b
}

func (b *MixedBox) allocColumn(j int, k variable.Kind) {
	if k == variable.Discrete {
		v := make([]int32, b.rows)
		for i := range v {
			v[i] = variable.MissingDiscrete
		}
		b.ints[j], b.floats[j] = v, nil
		return
	}
	b.floats[j], b.ints[j] = nanVector(b.rows), nil
}

func (b *MixedBox) kinds() []variable.Kind {
	out := make([]variable.Kind, len(b.floats))
	for j := range out {
		if b.ints[j] != nil {
			out[j] = variable.Discrete
		}
	}
	return out
}

func (b *MixedBox) NumRows() int { return b.rows }
func (b *MixedBox) NumCols() int { return len(b.floats) }

func (b *MixedBox) Get(row, col int) float64 {
	if iv := b.ints[col]; iv != nil {
		return float64(iv[row])
	}
	return b.floats[col][row]
}

func (b *MixedBox) Set(row, col int, v float64) {
	if iv := b.ints[col]; iv != nil {
		iv[row] = toInt32(v)
		return
	}
	b.floats[col][row] = v
}

func (b *MixedBox) IsMissing(row, col int) bool {
	if iv := b.ints[col]; iv != nil {
		return iv[row] == variable.MissingDiscrete
	}
	return math.IsNaN(b.floats[col][row])
}

func (b *MixedBox) Storage() Storage { return Mixed }

// Resize keeps existing column types; kinds types appended columns.
func (b *MixedBox) Resize(rows, cols int, kinds []variable.Kind) Box {
	merged := b.kinds()
	if len(merged) > cols {
		merged = merged[:cols]
	}
	for j := len(merged); j < cols; j++ {
		merged = append(merged, kindAt(kinds, j))
	}
	out := NewMixedBox(rows, merged, cols)
	Fill(out, b)
	return out
}

func (b *MixedBox) Select(rows, cols []int) Box {
	src := b.kinds()
	kinds := make([]variable.Kind, len(cols))
	for c, j := range cols {
		kinds[c] = src[j]
	}
	out := NewMixedBox(len(rows), kinds, len(cols))
	for c, j := range cols {
		for a, i := range rows {
			out.Set(a, c, b.Get(i, j))
		}
	}
	return out
}

func (b *MixedBox) Copy() Box {
	out := NewMixedBox(b.rows, b.kinds(), len(b.floats))
	Fill(out, b)
	return out
}

func (b *MixedBox) Like(rows, cols int, kinds []variable.Kind) Box {
	if kinds == nil {
		kinds = b.kinds()
	}
	return NewMixedBox(rows, kinds, cols)
}

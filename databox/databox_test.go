// SPDX-License-Identifier: MIT

package databox_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/databox"
	"github.com/katalvlaran/lvdata/variable"
)

var allStorages = []databox.Storage{databox.Double, databox.VerticalDouble, databox.Int, databox.Mixed}

func TestNew_StartsMissing(t *testing.T) {
	t.Parallel()

	kinds := []variable.Kind{variable.Discrete, variable.Continuous}
	for _, s := range allStorages {
		b := databox.New(s, 2, 2, kinds)
		assert.Equal(t, s, b.Storage(), s.String())
		assert.Equal(t, 2, b.NumRows())
		assert.Equal(t, 2, b.NumCols())
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.True(t, b.IsMissing(i, j), "%s (%d,%d)", s, i, j)
			}
		}
	}
}

func TestBoxes_SetGetResizeSelectCopy(t *testing.T) {
	t.Parallel()

	kinds := []variable.Kind{variable.Discrete, variable.Discrete}
	for _, s := range allStorages {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()

			b := databox.New(s, 2, 2, kinds)
			b.Set(0, 0, 1)
			b.Set(0, 1, 2)
			b.Set(1, 0, 3)
			b.Set(1, 1, 4)
			assert.Equal(t, 4.0, b.Get(1, 1))

			grown := b.Resize(3, 3, append(kinds, variable.Discrete))
			assert.Equal(t, 3, grown.NumRows())
			assert.Equal(t, 3, grown.NumCols())
			assert.Equal(t, 3.0, grown.Get(1, 0))
			assert.True(t, grown.IsMissing(2, 2))

			shrunk := b.Resize(1, 1, kinds)
			assert.Equal(t, 1.0, shrunk.Get(0, 0))

			sel := b.Select([]int{1}, []int{1, 0})
			assert.Equal(t, 1, sel.NumRows())
			assert.Equal(t, 4.0, sel.Get(0, 0))
			assert.Equal(t, 3.0, sel.Get(0, 1))

			cp := b.Copy()
			cp.Set(0, 0, 9)
			assert.Equal(t, 1.0, b.Get(0, 0), "copy must not alias")

			like := b.Like(5, 2, kinds)
			assert.Equal(t, 5, like.NumRows())
			assert.True(t, like.IsMissing(4, 1))
		})
	}
}

func TestIntBox_NaNBecomesMissing(t *testing.T) {
	t.Parallel()

	b := databox.NewIntBox(1, 1)
	b.Set(0, 0, 2)
	assert.Equal(t, 2, b.GetInt(0, 0))
	b.Set(0, 0, math.NaN())
	assert.Equal(t, variable.MissingDiscrete, b.GetInt(0, 0))
	assert.True(t, b.IsMissing(0, 0))
}

func TestMixedBox_KeepsColumnTypes(t *testing.T) {
	t.Parallel()

	b := databox.NewMixedBox(1, []variable.Kind{variable.Continuous, variable.Discrete}, 2)
	b.Set(0, 0, 1.5)
	b.Set(0, 1, 1.5)
	assert.Equal(t, 1.5, b.Get(0, 0))
	assert.Equal(t, 1.0, b.Get(0, 1), "discrete column truncates")

	r := b.Resize(1, 3, nil)
	r.Set(0, 2, 2.5)
	assert.Equal(t, 2.5, r.Get(0, 2), "appended columns default to continuous")
}

func TestVerticalDoubleBox_Columns(t *testing.T) {
	t.Parallel()

	b := databox.NewVerticalDoubleBoxFrom([][]float64{{1, 2}, {3, 4}})
	cols := b.Columns()
	cols[0][0] = 100
	assert.Equal(t, 1.0, b.Get(0, 0))
	assert.Equal(t, 3.0, b.Get(0, 1))
}

func TestParseStorage(t *testing.T) {
	t.Parallel()

	s, ok := databox.ParseStorage("vertical")
	require.True(t, ok)
	assert.Equal(t, databox.VerticalDouble, s)
	_, ok = databox.ParseStorage("nope")
	assert.False(t, ok)
}

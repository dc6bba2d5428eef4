// SPDX-License-Identifier: MIT

package variable_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdata/variable"
)

func TestNewDiscrete_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := variable.NewDiscrete("X", "a", "b", "a")
	require.ErrorIs(t, err, variable.ErrDuplicateCategory)

	v, err := variable.NewDiscrete("X", "a", "b")
	require.NoError(t, err)
	assert.True(t, v.IsDiscrete())
	assert.Equal(t, 2, v.NumCategories())
	assert.Equal(t, 1, v.IndexOf("b"))
	assert.Equal(t, -1, v.IndexOf("c"))
	assert.Equal(t, "*", v.Category(variable.MissingDiscrete))
	assert.Equal(t, "X{a,b}", v.String())
}

func TestWithCategory_FunctionalGrowth(t *testing.T) {
	t.Parallel()

	v, err := variable.NewDiscrete("X", "a")
	require.NoError(t, err)

	grown, idx, err := v.WithCategory("b")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"a", "b"}, grown.Categories())
	assert.Equal(t, []string{"a"}, v.Categories(), "original must not change")

	same, idx, err := grown.WithCategory("a")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.True(t, same.Equal(grown))

	locked := v.WithAccommodation(false)
	_, _, err = locked.WithCategory("z")
	require.ErrorIs(t, err, variable.ErrNoAccommodation)

	_, _, err = variable.NewContinuous("C").WithCategory("a")
	require.ErrorIs(t, err, variable.ErrNotDiscrete)
}

func TestWithCategoriesUpTo_SkipsTakenLabels(t *testing.T) {
	t.Parallel()

	v, err := variable.NewDiscrete("X", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, v.WithCategoriesUpTo(3).Categories())
	assert.Equal(t, []string{"0", "1", "2"}, variable.NewDiscreteN("Y", 3).Categories())
}

func TestValidateNames(t *testing.T) {
	t.Parallel()

	require.NoError(t, variable.ValidateNames(variable.ContinuousList("A", "B")))
	require.ErrorIs(t, variable.ValidateNames(variable.ContinuousList("A", "")), variable.ErrEmptyName)
	require.ErrorIs(t, variable.ValidateNames(variable.ContinuousList("A", "A")), variable.ErrDuplicateName)
	assert.Equal(t, []string{"X1", "X2"}, variable.DefaultNames(2))
}

func TestMissingSentinels(t *testing.T) {
	t.Parallel()

	assert.True(t, variable.IsMissingContinuous(variable.MissingContinuous))
	assert.True(t, math.IsNaN(variable.MissingContinuous))
	assert.Equal(t, -99, variable.MissingDiscrete)
}

func TestListHelpers(t *testing.T) {
	t.Parallel()

	d, err := variable.NewDiscrete("D", "x")
	require.NoError(t, err)
	vars := []variable.Variable{variable.NewContinuous("C"), d}
	assert.Equal(t, []string{"C", "D"}, variable.Names(vars))
	assert.Equal(t, 1, variable.IndexByName(vars, "D"))
	_, ok := variable.ByName(vars, "Q")
	assert.False(t, ok)
	assert.False(t, variable.AllContinuous(vars))
	assert.False(t, variable.AllDiscrete(vars))
	assert.True(t, variable.AllContinuous(vars[:1]))
}

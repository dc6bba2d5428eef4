// SPDX-License-Identifier: MIT

package covariance

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/knowledge"
	"github.com/katalvlaran/lvdata/variable"
)

// Covariances is the read side shared by the eager and the on-the-fly estimators.
type Covariances interface {
	// Variables returns the variables in row/column order.
	Variables() []variable.Variable
	// VariableNames returns the variable names in order.
	VariableNames() []string
	// Dimension returns the number of variables.
	Dimension() int
	// SampleSize returns the number of cases the estimate is based on.
	SampleSize() int
	// Value returns entry (i, j); NaN when either index is out of range.
	Value(i, j int) float64
	// Submatrix returns an eager matrix over the given variable indices.
	Submatrix(indices ...int) (*CovarianceMatrix, error)
	// SubmatrixByName returns an eager matrix over the named variables.
	SubmatrixByName(names ...string) (*CovarianceMatrix, error)
	// Knowledge returns a copy of the attached knowledge.
	Knowledge() *knowledge.Knowledge
	// SetKnowledge attaches a copy of k.
	SetKnowledge(k *knowledge.Knowledge)
	// Name returns the matrix name.
	Name() string
}

var (
	_ Covariances = (*CovarianceMatrix)(nil)
	_ Covariances = (*OnTheFly)(nil)
)

// header holds the bookkeeping common to both estimators.
type header struct {
	name       string
	vars       []variable.Variable
	sampleSize int
	knowledge  *knowledge.Knowledge
	selected   map[string]struct{}
}

func newHeader(name string, vars []variable.Variable, n int, k *knowledge.Knowledge) header {
	h := header{
		name:       name,
		vars:       slices.Clone(vars),
		sampleSize: n,
		knowledge:  knowledge.New(),
		selected:   make(map[string]struct{}),
	}
	if k != nil {
		h.knowledge = k.Copy()
	}
	return h
}

// Name returns the matrix name.
func (h *header) Name() string { return h.name }

// SetName renames the matrix.
func (h *header) SetName(name string) { h.name = name }

// Variables returns a copy of the variables.
func (h *header) Variables() []variable.Variable { return slices.Clone(h.vars) }

// VariableNames returns the variable names in order.
func (h *header) VariableNames() []string { return variable.Names(h.vars) }

// Dimension returns the number of variables.
func (h *header) Dimension() int { return len(h.vars) }

// SampleSize returns the number of cases.
func (h *header) SampleSize() int { return h.sampleSize }

// SetSampleSize overrides the number of cases; n must be positive.
func (h *header) SetSampleSize(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrSampleSize, "%d", n)
	}
	h.sampleSize = n
	return nil
}

// Knowledge returns a copy of the attached knowledge.
func (h *header) Knowledge() *knowledge.Knowledge { return h.knowledge.Copy() }

// SetKnowledge attaches a copy of k; nil clears it.
func (h *header) SetKnowledge(k *knowledge.Knowledge) {
	if k == nil {
		h.knowledge = knowledge.New()
		return
	}
	h.knowledge = k.Copy()
}

// Select marks the named variable as selected; unknown names are ignored.
func (h *header) Select(name string) {
	if variable.IndexByName(h.vars, name) >= 0 {
		h.selected[name] = struct{}{}
	}
}

// ClearSelection deselects every variable.
func (h *header) ClearSelection() { clear(h.selected) }

// IsSelected reports the selection mark of the named variable.
func (h *header) IsSelected(name string) bool {
	_, ok := h.selected[name]
	return ok
}

// SelectedVariableNames returns selected names in matrix order.
func (h *header) SelectedVariableNames() []string {
	var out []string
	for _, v := range h.vars {
		if _, ok := h.selected[v.Name()]; ok {
			out = append(out, v.Name())
		}
	}
	return out
}

func (h *header) inRange(i int) bool { return i >= 0 && i < len(h.vars) }

func (h *header) indicesOf(names []string) ([]int, error) {
	out := make([]int, len(names))
	for k, n := range names {
		j := variable.IndexByName(h.vars, n)
		if j < 0 {
			return nil, errors.Wrapf(ErrUnknownVariable, "%q", n)
		}
		out[k] = j
	}
	return out, nil
}

func (h *header) checkIndices(indices []int) error {
	for _, i := range indices {
		if !h.inRange(i) {
			return errors.Wrapf(ErrIndexOutOfRange, "variable %d of %d", i, len(h.vars))
		}
	}
	return nil
}

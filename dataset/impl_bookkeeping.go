// SPDX-License-Identifier: MIT

package dataset

import (
	"maps"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/knowledge"
)

// ErrNegativeMultiplier indicates a case multiplier below zero.
var ErrNegativeMultiplier = errors.New("dataset: negative case multiplier")

// Knowledge returns a copy of the attached knowledge.
func (ds *DataSet) Knowledge() *knowledge.Knowledge { return ds.knowledge.Copy() }

// SetKnowledge attaches a copy of k. A nil k clears the knowledge.
func (ds *DataSet) SetKnowledge(k *knowledge.Knowledge) {
	if k == nil {
		ds.knowledge = knowledge.New()
		return
	}
	ds.knowledge = k.Copy()
}

// Select marks the named variable as selected.
func (ds *DataSet) Select(name string) error {
	if ds.ColumnIndex(name) < 0 {
		return errors.Wrapf(ErrUnknownVariable, "%q", name)
	}
	ds.selected[name] = struct{}{}
	return nil
}

// Deselect clears the selection mark of the named variable.
func (ds *DataSet) Deselect(name string) { delete(ds.selected, name) }

// ClearSelection deselects every variable.
func (ds *DataSet) ClearSelection() { clear(ds.selected) }

// IsSelected reports the selection mark of the named variable.
func (ds *DataSet) IsSelected(name string) bool {
	_, ok := ds.selected[name]
	return ok
}

// SelectedIndices returns the selected columns in ascending order.
func (ds *DataSet) SelectedIndices() []int {
	var out []int
	for j, v := range ds.vars {
		if _, ok := ds.selected[v.Name()]; ok {
			out = append(out, j)
		}
	}
	return out
}

// CaseID returns the identifier of row, if one was set.
func (ds *DataSet) CaseID(row int) (string, bool) {
	id, ok := ds.caseIDs[row]
	return id, ok
}

// SetCaseID labels row with id. An empty id removes the label.
func (ds *DataSet) SetCaseID(row int, id string) error {
	if row < 0 {
		return errors.Wrapf(ErrNegativeIndex, "row %d", row)
	}
	if id == "" {
		delete(ds.caseIDs, row)
		return nil
	}
	ds.caseIDs[row] = id
	return nil
}

// CaseIDs returns a copy of every row label.
func (ds *DataSet) CaseIDs() map[int]string { return maps.Clone(ds.caseIDs) }

// Multiplier returns the case multiplier of row; unset rows count once.
func (ds *DataSet) Multiplier(row int) int {
	if m, ok := ds.multipliers[row]; ok {
		return m
	}
	return 1
}

// SetMultiplier sets the number of times row is counted.
func (ds *DataSet) SetMultiplier(row, m int) error {
	if row < 0 {
		return errors.Wrapf(ErrNegativeIndex, "row %d", row)
	}
	if m < 0 {
		return errors.Wrapf(ErrNegativeMultiplier, "row %d: %d", row, m)
	}
	if m == 1 {
		delete(ds.multipliers, row)
		return nil
	}
	ds.multipliers[row] = m
	return nil
}

// HasMultipliers reports whether any row counts other than once.
func (ds *DataSet) HasMultipliers() bool { return len(ds.multipliers) > 0 }

// ExpandMultipliers returns a copy in which every row is repeated by its multiplier
// and all multipliers are one.
func (ds *DataSet) ExpandMultipliers() (*DataSet, error) {
	rows := make([]int, 0, ds.NumRows())
	for i := 0; i < ds.NumRows(); i++ {
		for k := 0; k < ds.Multiplier(i); k++ {
			rows = append(rows, i)
		}
	}
	out, err := ds.SubsetRows(rows...)
	if err != nil {
		return nil, err
	}
	clear(out.multipliers)
	return out, nil
}

// Multipliers returns the case multiplier of every row.
func (ds *DataSet) Multipliers() []int {
	out := make([]int, ds.NumRows())
	for i := range out {
		out[i] = ds.Multiplier(i)
	}
	return out
}

// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/variable"
)

// GetDouble returns the continuous cell at (row, col). A row past NumRows grows the
// dataset first, so it reads as NaN.
func (ds *DataSet) GetDouble(row, col int) (float64, error) {
	if err := ds.checkCell(row, col); err != nil {
		return math.NaN(), err
	}
	if !ds.vars[col].IsContinuous() {
		return math.NaN(), errors.Wrapf(ErrTypeMismatch, "GetDouble on discrete column %q", ds.vars[col].Name())
	}
	ds.ensureRows(row + 1)
	return ds.box.Get(row, col), nil
}

// SetDouble stores v in the continuous column col, growing rows as needed.
// NaN marks the cell missing.
func (ds *DataSet) SetDouble(row, col int, v float64) error {
	if err := ds.checkCell(row, col); err != nil {
		return err
	}
	if !ds.vars[col].IsContinuous() {
		return errors.Wrapf(ErrTypeMismatch, "SetDouble on discrete column %q", ds.vars[col].Name())
	}
	ds.ensureRows(row + 1)
	ds.box.Set(row, col, v)
	return nil
}

// GetInt returns the category index at (row, col), or variable.MissingDiscrete.
// A row past NumRows grows the dataset first.
func (ds *DataSet) GetInt(row, col int) (int, error) {
	if err := ds.checkCell(row, col); err != nil {
		return variable.MissingDiscrete, err
	}
	if !ds.vars[col].IsDiscrete() {
		return variable.MissingDiscrete, errors.Wrapf(ErrTypeMismatch, "GetInt on continuous column %q", ds.vars[col].Name())
	}
	ds.ensureRows(row + 1)
	return ds.rawInt(row, col), nil
}

func (ds *DataSet) rawInt(row, col int) int {
	f := ds.box.Get(row, col)
	if math.IsNaN(f) {
		return variable.MissingDiscrete
	}
	return int(f)
}

// SetInt stores category index v in the discrete column col, growing rows as needed.
// variable.MissingDiscrete marks the cell missing. An index past the category list
// extends an accommodating variable and fails with ErrUnknownCategory otherwise.
// Indices must fit in an int32.
func (ds *DataSet) SetInt(row, col, v int) error {
	if err := ds.checkCell(row, col); err != nil {
		return err
	}
	vr := ds.vars[col]
	if !vr.IsDiscrete() {
		return errors.Wrapf(ErrTypeMismatch, "SetInt on continuous column %q", vr.Name())
	}
	if v != variable.MissingDiscrete {
		if v < 0 || v > math.MaxInt32 {
			return errors.Wrapf(ErrUnknownCategory, "column %q: index %d", vr.Name(), v)
		}
		if v >= vr.NumCategories() {
			if !vr.AccommodatesNewCategories() {
				return errors.Wrapf(ErrUnknownCategory, "column %q: index %d of %d", vr.Name(), v, vr.NumCategories())
			}
			ds.vars[col] = vr.WithCategoriesUpTo(v + 1)
		}
	}
	ds.ensureRows(row + 1)
	ds.box.Set(row, col, float64(v))
	return nil
}

// GetObject returns the cell as a Value: Double for continuous, Category for discrete,
// Missing for either kind's missing marker.
func (ds *DataSet) GetObject(row, col int) (Value, error) {
	if err := ds.checkCell(row, col); err != nil {
		return Missing(), err
	}
	if ds.vars[col].IsContinuous() {
		f, err := ds.GetDouble(row, col)
		if err != nil {
			return Missing(), err
		}
		return Double(f), nil
	}
	i, err := ds.GetInt(row, col)
	if err != nil || i == variable.MissingDiscrete {
		return Missing(), err
	}
	return Category(i), nil
}

// SetObject stores a Value. Continuous columns accept Double and numeric Text.
// Discrete columns accept Category, whole-valued Double and category labels as Text;
// a new label extends an accommodating variable.
func (ds *DataSet) SetObject(row, col int, v Value) error {
	if err := ds.checkCell(row, col); err != nil {
		return err
	}
	vr := ds.vars[col]
	if v.IsMissing() {
		if vr.IsContinuous() {
			return ds.SetDouble(row, col, variable.MissingContinuous)
		}
		return ds.SetInt(row, col, variable.MissingDiscrete)
	}
	if vr.IsContinuous() {
		switch v.Kind() {
		case DoubleValue:
			return ds.SetDouble(row, col, v.f)
		case TextValue:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			if err != nil {
				return errors.Wrapf(ErrTypeMismatch, "column %q: %q is not a number", vr.Name(), v.s)
			}
			return ds.SetDouble(row, col, f)
		default:
			return errors.Wrapf(ErrTypeMismatch, "column %q: category value for continuous column", vr.Name())
		}
	}
	switch v.Kind() {
	case CategoryValue:
		return ds.SetInt(row, col, v.i)
	case DoubleValue:
		if v.f != math.Trunc(v.f) || math.IsInf(v.f, 0) {
			return errors.Wrapf(ErrTypeMismatch, "column %q: %v is not a category index", vr.Name(), v.f)
		}
		if v.f < math.MinInt32 || v.f > math.MaxInt32 {
			return errors.Wrapf(ErrUnknownCategory, "column %q: index %v", vr.Name(), v.f)
		}
		return ds.SetInt(row, col, int(v.f))
	default:
		idx, err := ds.categoryIndex(col, v.s)
		if err != nil {
			return err
		}
		return ds.SetInt(row, col, idx)
	}
}

// categoryIndex resolves label in column col, extending an accommodating variable.
func (ds *DataSet) categoryIndex(col int, label string) (int, error) {
	vr := ds.vars[col]
	nv, idx, err := vr.WithCategory(label)
	if err != nil {
		return variable.MissingDiscrete, errors.Mark(err, ErrUnknownCategory)
	}
	ds.vars[col] = nv
	return idx, nil
}

// IsMissing reports whether (row, col) holds its kind's missing marker.
// Rows past NumRows are missing.
func (ds *DataSet) IsMissing(row, col int) bool {
	if ds.checkCell(row, col) != nil {
		return false
	}
	if row >= ds.box.NumRows() {
		return true
	}
	if ds.vars[col].IsDiscrete() {
		return ds.rawInt(row, col) == variable.MissingDiscrete
	}
	return ds.box.IsMissing(row, col)
}

// ContainsMissing reports whether any cell is missing.
func (ds *DataSet) ContainsMissing() bool {
	for j := range ds.vars {
		for i := 0; i < ds.box.NumRows(); i++ {
			if ds.IsMissing(i, j) {
				return true
			}
		}
	}
	return false
}

// Text renders the cell as text: the category label for discrete columns,
// "*" for missing cells.
func (ds *DataSet) Text(row, col int) (string, error) {
	v, err := ds.GetObject(row, col)
	if err != nil {
		return "", err
	}
	if i, ok := v.AsCategory(); ok {
		return ds.vars[col].Category(i), nil
	}
	return v.String(), nil
}

func (ds *DataSet) ensureRows(n int) {
	if n <= ds.box.NumRows() {
		return
	}
	ds.box = ds.box.Resize(n, len(ds.vars), kindsOf(ds.vars))
}

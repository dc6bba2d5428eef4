// SPDX-License-Identifier: MIT

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdata/matrix"
	"github.com/katalvlaran/lvdata/variable"
)

// Equal reports equal variables and equal cells. Continuous cells are compared after
// rounding to the receiver's precision; missing cells equal each other.
func (ds *DataSet) Equal(o *DataSet) bool {
	if ds == nil || o == nil {
		return ds == o
	}
	if len(ds.vars) != len(o.vars) || ds.NumRows() != o.NumRows() {
		return false
	}
	for j, v := range ds.vars {
		if !v.Equal(o.vars[j]) {
			return false
		}
	}
	for j, v := range ds.vars {
		for i := 0; i < ds.NumRows(); i++ {
			if v.IsDiscrete() {
				if ds.rawInt(i, j) != o.rawInt(i, j) {
					return false
				}
				continue
			}
			if ds.formatCell(ds.box.Get(i, j)) != ds.formatCell(o.box.Get(i, j)) {
				return false
			}
		}
	}
	return true
}

func (ds *DataSet) formatCell(f float64) string {
	if math.IsNaN(f) {
		return "*"
	}
	return strconv.FormatFloat(f, 'f', ds.precision, 64)
}

// DoubleData returns every cell as a dense matrix. Discrete cells hold their index
// and missing cells of either kind hold NaN.
func (ds *DataSet) DoubleData() *matrix.Dense {
	rows, cols := ds.NumRows(), len(ds.vars)
	data := make([]float64, rows*cols)
	for j, v := range ds.vars {
		for i := 0; i < rows; i++ {
			f := ds.box.Get(i, j)
			if v.IsDiscrete() && ds.rawInt(i, j) == variable.MissingDiscrete {
				f = math.NaN()
			}
			data[i*cols+j] = f
		}
	}
	m, _ := matrix.NewDenseFrom(rows, cols, data)
	return m
}

// Column returns a copy of the continuous column col.
func (ds *DataSet) Column(col int) ([]float64, error) {
	out := make([]float64, ds.NumRows())
	for i := range out {
		f, err := ds.GetDouble(i, col)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// String renders a header of names followed by one tab-separated line per row.
func (ds *DataSet) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(ds.VariableNames(), "\t"))
	sb.WriteByte('\n')
	for i := 0; i < ds.NumRows(); i++ {
		for j := range ds.vars {
			if j > 0 {
				sb.WriteByte('\t')
			}
			s, _ := ds.Text(i, j)
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

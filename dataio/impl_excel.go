// SPDX-License-Identifier: MIT

package dataio

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/tokenizer"
)

var cellSpace = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

// ReadExcel reads one sheet of an .xlsx workbook with the Reader's header, ID,
// missing-marker and inference settings. An empty sheet name selects the first sheet.
// Empty rows are skipped.
func (r *Reader) ReadExcel(ctx context.Context, path, sheet string) (*dataset.DataSet, error) {
	start := time.Now()
	ds, err := r.readExcel(ctx, path, sheet)
	rows := 0
	if ds != nil {
		rows = ds.NumRows()
	}
	r.metrics.observe(FormatExcel, start, rows, err)
	return ds, err
}

func (r *Reader) readExcel(ctx context.Context, path, sheet string) (*dataset.DataSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: open %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.Wrapf(ErrNoSheet, "%s: %q", path, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "dataio: sheet %q", sheet)
	}

	var buf bytes.Buffer
	for _, row := range rows {
		for j, cell := range row {
			if j > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(cellSpace.Replace(cell))
		}
		buf.WriteByte('\n')
	}

	tr := r.with(
		WithDelimiter(tokenizer.TabDelimiter),
		WithQuote(0),
		WithCommentMarker(""),
		WithSinglePass(),
	)
	ds, err := tr.readTabular(ctx, BytesOpener(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	ds.SetName(filepath.Base(path) + ":" + sheet)
	return ds, nil
}

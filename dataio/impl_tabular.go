// SPDX-License-Identifier: MIT

package dataio

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/dataset"
)

// ReadTabular reads a tabular file in two passes and names the dataset after it.
func (r *Reader) ReadTabular(ctx context.Context, path string) (*dataset.DataSet, error) {
	ds, err := r.ReadTabularFrom(ctx, FileOpener(path))
	if err != nil {
		return nil, err
	}
	ds.SetName(filepath.Base(path))
	return ds, nil
}

// ReadTabularFrom reads tabular text served by open. open is called once per pass,
// or once in total with WithSinglePass.
func (r *Reader) ReadTabularFrom(ctx context.Context, open Opener) (*dataset.DataSet, error) {
	start := time.Now()
	ds, err := r.readTabular(ctx, open)
	rows := 0
	if ds != nil {
		rows = ds.NumRows()
	}
	r.metrics.observe(FormatTabular, start, rows, err)
	return ds, err
}

func (r *Reader) readTabular(ctx context.Context, open Opener) (*dataset.DataSet, error) {
	if r.singlePass {
		var data []byte
		err := withSource(open, func(src io.Reader) error {
			var err error
			data, err = io.ReadAll(src)
			return errors.Wrap(err, "dataio: read")
		})
		if err != nil {
			return nil, err
		}
		open = BytesOpener(data)
	}

	var d *Description
	if err := withSource(open, func(src io.Reader) error {
		var err error
		d, err = r.Scan(ctx, src)
		return err
	}); err != nil {
		return nil, err
	}

	var ds *dataset.DataSet
	if err := withSource(open, func(src io.Reader) error {
		var err error
		ds, err = r.Load(ctx, src, d)
		return err
	}); err != nil {
		return nil, err
	}
	return ds, nil
}

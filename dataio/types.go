// SPDX-License-Identifier: MIT

package dataio

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/variable"
)

// Section markers recognised in tabular files.
const (
	SectionVariables  = "/variables"
	SectionData       = "/data"
	SectionKnowledge  = "/knowledge"
	SectionCovariance = "/covariance"
	MultColumn        = "MULT"
)

// Description is the outcome of the first tabular pass.
type Description struct {
	// Names lists every column of the file in order. An unlabeled ID column is "".
	Names []string
	// Variables lists the data columns, excluding the ID and MULT columns.
	Variables []variable.Variable
	// NumRows counts the data rows.
	NumRows int
	// IDIndex is the position of the case-ID column in Names, or -1.
	IDIndex int
	// MultColumn reports a leading MULT column of case multipliers.
	MultColumn bool
	// VariablesSection reports a /variables ... /data preamble.
	VariablesSection bool
	// KnowledgeSection reports a trailing /knowledge section.
	KnowledgeSection bool
}

// columnMap maps every file column to its variable index, or -1 for the ID and MULT columns.
func (d *Description) columnMap() ([]int, error) {
	out := make([]int, len(d.Names))
	j := 0
	for c := range d.Names {
		if c == d.IDIndex || (d.MultColumn && c == 0) {
			out[c] = -1
			continue
		}
		out[c] = j
		j++
	}
	if j != len(d.Variables) {
		return nil, errors.Wrapf(ErrHeader, "%d data columns for %d variables", j, len(d.Variables))
	}
	return out, nil
}

// Opener returns a fresh stream over the same content on every call.
type Opener func() (io.ReadCloser, error)

// FileOpener opens path.
func FileOpener(path string) Opener {
	return func() (io.ReadCloser, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "dataio: open %s", path)
		}
		return f, nil
	}
}

// BytesOpener serves b from memory.
func BytesOpener(b []byte) Opener {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
}

// withSource opens one stream, hands it to fn and closes it on every path.
func withSource(open Opener, fn func(io.Reader) error) (err error) {
	rc, err := open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "dataio: close")
		}
	}()
	return fn(rc)
}

// isSection reports whether line opens the given section.
func isSection(line, marker string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), marker)
}

func nonEmpty(tokens []string) []string {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

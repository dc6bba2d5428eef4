// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/tokenizer"
)

// WriteOption configures WriteTabular.
type WriteOption func(*writeConfig)

type writeConfig struct {
	variablesSection bool
}

// WithVariablesSection writes a /variables ... /data preamble so that types and
// category order survive a re-read.
func WithVariablesSection() WriteOption {
	return func(c *writeConfig) { c.variablesSection = true }
}

// WriteTabular writes ds as delimited text: a header, one line per row, "*" for
// missing cells and the knowledge section when ds has knowledge. A MULT column leads
// when any row has a multiplier other than one. The whitespace delimiter writes tabs.
func WriteTabular(w io.Writer, ds *dataset.DataSet, d tokenizer.Delimiter, opts ...WriteOption) error {
	var cfg writeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	b, ok := d.Byte()
	if !ok {
		return errors.Wrapf(ErrUnsupportedDelimiter, "%s", d)
	}
	sep, special := string(b), string(b)
	if d.Kind() == tokenizer.Whitespace {
		sep, special = "\t", " \t"
	}

	bw := bufio.NewWriter(w)
	if cfg.variablesSection {
		bw.WriteString(SectionVariables + "\n")
		for _, v := range ds.Variables() {
			bw.WriteString(v.Name())
			bw.WriteString(": ")
			if v.IsContinuous() {
				bw.WriteString("Continuous\n")
				continue
			}
			cats := v.Categories()
			for i, c := range cats {
				cats[i] = quoteCell(c, ","+special)
			}
			bw.WriteString(strings.Join(cats, ","))
			bw.WriteString("\n")
		}
		bw.WriteString(SectionData + "\n")
	}

	mult := ds.HasMultipliers()
	var header []string
	if mult {
		header = append(header, MultColumn)
	}
	for _, name := range ds.VariableNames() {
		header = append(header, quoteCell(name, special))
	}
	bw.WriteString(strings.Join(header, sep))
	bw.WriteString("\n")

	cells := make([]string, 0, len(header))
	for i := 0; i < ds.NumRows(); i++ {
		cells = cells[:0]
		if mult {
			cells = append(cells, strconv.Itoa(ds.Multiplier(i)))
		}
		for j := 0; j < ds.NumCols(); j++ {
			s, err := ds.Text(i, j)
			if err != nil {
				return errors.Wrap(err, "dataio: write")
			}
			cells = append(cells, quoteCell(s, special))
		}
		bw.WriteString(strings.Join(cells, sep))
		bw.WriteString("\n")
	}

	if k := ds.Knowledge(); !k.IsEmpty() {
		bw.WriteString("\n")
		bw.WriteString(k.String())
	}
	return errors.Wrap(bw.Flush(), "dataio: write")
}

// quoteCell wraps s in quotes when it holds any byte of special.
func quoteCell(s, special string) string {
	if strings.ContainsAny(s, special) {
		return `"` + s + `"`
	}
	return s
}

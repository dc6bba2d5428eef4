// SPDX-License-Identifier: MIT

package dataio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates a source with no logical lines.
	ErrEmptyInput = errors.New("dataio: data source is empty")

	// ErrHeader indicates an invalid variable-name line or ID column label.
	ErrHeader = errors.New("dataio: invalid header")

	// ErrVariablesSection indicates a malformed /variables section.
	ErrVariablesSection = errors.New("dataio: invalid /variables section")

	// ErrCovarianceFormat indicates a malformed covariance file.
	ErrCovarianceFormat = errors.New("dataio: invalid covariance format")

	// ErrParse indicates a cell that the strict path could not decode.
	ErrParse = errors.New("dataio: parse error")

	// ErrUnsupportedDelimiter indicates a delimiter the operation cannot use.
	ErrUnsupportedDelimiter = errors.New("dataio: unsupported delimiter")

	// ErrNoSheet indicates a workbook without the requested sheet.
	ErrNoSheet = errors.New("dataio: no such sheet")
)

// ParseError locates a bad cell. Line and Column are 1-based; line 1 is the header.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataio: line %d column %d: %s: %q", e.Line, e.Column, e.Reason, e.Token)
}

// Unwrap makes errors.Is(err, ErrParse) hold.
func (e *ParseError) Unwrap() error { return ErrParse }

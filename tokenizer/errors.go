// SPDX-License-Identifier: MIT

package tokenizer

import "errors"

var (
	// ErrEndOfInput is returned by MustNextLine when the source has no more logical lines.
	ErrEndOfInput = errors.New("tokenizer: end of input")

	// ErrEmptyDelimiter indicates a custom delimiter with an empty or nil pattern.
	ErrEmptyDelimiter = errors.New("tokenizer: empty delimiter pattern")

	// ErrNoMoreTokens is returned by MustNextToken when the line is exhausted.
	ErrNoMoreTokens = errors.New("tokenizer: no more tokens")
)

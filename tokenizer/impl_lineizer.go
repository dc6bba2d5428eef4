// SPDX-License-Identifier: MIT

package tokenizer

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultCommentMarker prefixes comment lines unless configured otherwise.
const DefaultCommentMarker = "//"

// Lineizer yields logical lines from a character stream.
//
// A logical line is a physical line with its terminator removed that is neither blank
// nor (after leading whitespace) prefixed by the comment marker. "\r\n" and lone "\r"
// terminators are normalized.
type Lineizer struct {
	r             *bufio.Reader
	commentMarker string

	physical int    // physical lines consumed so far
	lineNo   int    // physical line number of the last returned line
	peeked   bool   // next holds a buffered logical line
	next     string // buffered logical line
	nextNo   int    // physical line number of next
	eof      bool
	err      error
}

// NewLineizer wraps r. An empty commentMarker disables comment stripping.
func NewLineizer(r io.Reader, commentMarker string) *Lineizer {
	return &Lineizer{r: bufio.NewReaderSize(r, 64*1024), commentMarker: commentMarker}
}

// HasMoreLines reports whether NextLine would return a line.
func (l *Lineizer) HasMoreLines() bool {
	if l.peeked {
		return true
	}
	line, no, ok := l.advance()
	if !ok {
		return false
	}
	l.next, l.nextNo, l.peeked = line, no, true
	return true
}

// NextLine returns the next logical line, or ("", false) at end of input.
func (l *Lineizer) NextLine() (string, bool) {
	if l.peeked {
		l.peeked = false
		l.lineNo = l.nextNo
		return l.next, true
	}
	line, no, ok := l.advance()
	if !ok {
		return "", false
	}
	l.lineNo = no
	return line, true
}

// MustNextLine is NextLine with ErrEndOfInput in place of the boolean.
func (l *Lineizer) MustNextLine() (string, error) {
	line, ok := l.NextLine()
	if !ok {
		if l.err != nil {
			return "", l.err
		}
		return "", errors.Wrapf(ErrEndOfInput, "after line %d", l.lineNo)
	}
	return line, nil
}

// LineNumber is the 1-based physical line number of the most recently returned line.
func (l *Lineizer) LineNumber() int { return l.lineNo }

// Err returns the first non-EOF read error, if any.
func (l *Lineizer) Err() error { return l.err }

func (l *Lineizer) advance() (string, int, bool) {
	for !l.eof {
		raw, err := l.readPhysical()
		if err != nil {
			l.eof = true
			if !errors.Is(err, io.EOF) {
				l.err = errors.Wrapf(err, "tokenizer: read line %d", l.physical+1)
				return "", 0, false
			}
			if raw == "" {
				return "", 0, false
			}
		}
		l.physical++
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if l.commentMarker != "" && strings.HasPrefix(trimmed, l.commentMarker) {
			continue
		}
		return raw, l.physical, true
	}
	return "", 0, false
}

// readPhysical reads up to the next '\n' or '\r', swallowing a '\n' that follows '\r'.
func (l *Lineizer) readPhysical() (string, error) {
	var sb strings.Builder
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			if nb, perr := l.r.Peek(1); perr == nil && nb[0] == '\n' {
				_, _ = l.r.ReadByte()
			}
			return sb.String(), nil
		default:
			sb.WriteByte(b)
		}
	}
}

// SPDX-License-Identifier: MIT

package tokenizer

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// DelimiterKind enumerates the built-in delimiter families.
type DelimiterKind int

const (
	// Whitespace splits on runs of spaces and tabs.
	Whitespace DelimiterKind = iota
	// Tab splits on a single tab byte.
	Tab
	// Comma splits on a single comma.
	Comma
	// Colon splits on a single colon.
	Colon
	// Semicolon splits on a single semicolon.
	Semicolon
	// Pipe splits on a single vertical bar.
	Pipe
	// Custom splits on an arbitrary regular expression.
	Custom
)

var kindNames = [...]string{"whitespace", "tab", "comma", "colon", "semicolon", "pipe", "custom"}

// String returns the lower-case delimiter family name.
func (k DelimiterKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Delimiter is an immutable description of how a line is split into tokens.
type Delimiter struct {
	kind    DelimiterKind
	b       byte
	pattern *regexp.Regexp
}

// Built-in delimiters.
var (
	WhitespaceDelimiter = Delimiter{kind: Whitespace, b: ' ', pattern: regexp.MustCompile(`[ \t]+`)}
	TabDelimiter        = Delimiter{kind: Tab, b: '\t', pattern: regexp.MustCompile(`\t`)}
	CommaDelimiter      = Delimiter{kind: Comma, b: ',', pattern: regexp.MustCompile(`,`)}
	ColonDelimiter      = Delimiter{kind: Colon, b: ':', pattern: regexp.MustCompile(`:`)}
	SemicolonDelimiter  = Delimiter{kind: Semicolon, b: ';', pattern: regexp.MustCompile(`;`)}
	PipeDelimiter       = Delimiter{kind: Pipe, b: '|', pattern: regexp.MustCompile(`\|`)}
)

// CustomDelimiter compiles expr into a Custom delimiter.
func CustomDelimiter(expr string) (Delimiter, error) {
	if expr == "" {
		return Delimiter{}, ErrEmptyDelimiter
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Delimiter{}, errors.Wrapf(err, "tokenizer: compile delimiter %q", expr)
	}
	return Delimiter{kind: Custom, pattern: re}, nil
}

// ParseDelimiter maps a configuration name ("comma", "tab", ...) to a Delimiter.
// Any other non-empty value is compiled as a custom regular expression.
func ParseDelimiter(name string) (Delimiter, error) {
	switch name {
	case "", "whitespace", "space":
		return WhitespaceDelimiter, nil
	case "tab", `\t`:
		return TabDelimiter, nil
	case "comma", ",":
		return CommaDelimiter, nil
	case "colon", ":":
		return ColonDelimiter, nil
	case "semicolon", ";":
		return SemicolonDelimiter, nil
	case "pipe", "|":
		return PipeDelimiter, nil
	}
	return CustomDelimiter(name)
}

// Kind reports the delimiter family.
func (d Delimiter) Kind() DelimiterKind { return d.kind }

// Pattern returns the regular expression equivalent of d.
func (d Delimiter) Pattern() *regexp.Regexp {
	if d.pattern == nil {
		return WhitespaceDelimiter.pattern
	}
	return d.pattern
}

// Byte returns the single delimiter byte, if d has one.
// Custom delimiters report false; Whitespace reports ' '.
func (d Delimiter) Byte() (byte, bool) {
	switch d.kind {
	case Custom:
		return 0, false
	case Whitespace:
		return ' ', true
	default:
		return d.b, true
	}
}

// String implements fmt.Stringer.
func (d Delimiter) String() string {
	if d.kind == Custom {
		return "custom(" + d.pattern.String() + ")"
	}
	return d.kind.String()
}

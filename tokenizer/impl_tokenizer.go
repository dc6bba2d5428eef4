// SPDX-License-Identifier: MIT

package tokenizer

import "strings"

// DefaultQuote is the quote byte used by readers unless configured otherwise.
const DefaultQuote byte = '"'

// Tokenizer iterates over the tokens of a single line.
type Tokenizer struct {
	tokens []string
	pos    int
}

// NewTokenizer splits line with d. A zero quote disables quote handling.
func NewTokenizer(line string, d Delimiter, quote byte) *Tokenizer {
	return &Tokenizer{tokens: Split(line, d, quote)}
}

// HasMoreTokens reports whether NextToken has a token to return.
func (t *Tokenizer) HasMoreTokens() bool { return t.pos < len(t.tokens) }

// NextToken returns the next token, or "" when exhausted.
func (t *Tokenizer) NextToken() string {
	if t.pos >= len(t.tokens) {
		return ""
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok
}

// MustNextToken is NextToken with ErrNoMoreTokens in place of the silent "".
func (t *Tokenizer) MustNextToken() (string, error) {
	if t.pos >= len(t.tokens) {
		return "", ErrNoMoreTokens
	}
	return t.NextToken(), nil
}

// Remaining reports how many tokens are left.
func (t *Tokenizer) Remaining() int { return len(t.tokens) - t.pos }

// Tokens returns a copy of all tokens of the line, consumed or not.
func (t *Tokenizer) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Split splits line into trimmed tokens.
//
// Implementation:
//   - Stage 1: for whitespace delimiters, trim the line so edges never yield empty tokens.
//   - Stage 2: for custom delimiters, precompute match spans once (start -> length).
//   - Stage 3: walk bytes; a quote byte toggles quoting and is dropped; outside quotes a
//     delimiter match closes the current token.
//   - Stage 4: the final token is always emitted, so "a," yields "a" and "".
//
// Complexity:
//   - Time O(L), Space O(L).
func Split(line string, d Delimiter, quote byte) []string {
	if d.kind == Whitespace {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
	}

	var spans map[int]int
	if d.kind == Custom {
		all := d.Pattern().FindAllStringIndex(line, -1)
		spans = make(map[int]int, len(all))
		for _, loc := range all {
			if loc[1] > loc[0] {
				spans[loc[0]] = loc[1] - loc[0]
			}
		}
	}

	var (
		tokens  []string
		sb      strings.Builder
		inQuote bool
	)
	for i := 0; i < len(line); {
		ch := line[i]
		if quote != 0 && ch == quote {
			inQuote = !inQuote
			i++
			continue
		}
		if !inQuote {
			if n := d.matchAt(line, i, spans); n > 0 {
				tokens = append(tokens, strings.TrimSpace(sb.String()))
				sb.Reset()
				i += n
				continue
			}
		}
		sb.WriteByte(ch)
		i++
	}
	return append(tokens, strings.TrimSpace(sb.String()))
}

// matchAt returns the length of a delimiter match starting at i, or 0.
func (d Delimiter) matchAt(line string, i int, spans map[int]int) int {
	switch d.kind {
	case Whitespace:
		n := 0
		for i+n < len(line) && (line[i+n] == ' ' || line[i+n] == '\t') {
			n++
		}
		return n
	case Custom:
		return spans[i]
	default:
		if line[i] == d.b {
			return 1
		}
		return 0
	}
}

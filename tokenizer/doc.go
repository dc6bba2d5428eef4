// SPDX-License-Identifier: MIT

// Package tokenizer splits raw delimited text into logical lines and quote-aware tokens.
//
// Purpose:
//   - Lineizer yields comment-stripped, non-blank lines and tracks a 1-based line number.
//   - Tokenizer splits one line on a Delimiter, honoring a quote byte that suppresses splitting.
//   - Delimiter describes both a regular-expression view (general path) and a single-byte view
//     (fast byte-scanning path in package dataio).
//
// Contract:
//   - Tokens are trimmed of surrounding whitespace.
//   - A doubled non-whitespace delimiter yields an empty token ("1,,3" -> "1", "", "3").
//   - A trailing non-whitespace delimiter yields a trailing empty token.
//   - Whitespace delimiters collapse runs and ignore leading/trailing blanks.
//   - An unterminated quote is tolerated: the rest of the line belongs to the quoted token.
//
// Complexity:
//   - NextLine: O(L) per physical line. Tokenize: O(L) for byte and whitespace delimiters,
//     O(L) plus one regexp pass for custom delimiters.
package tokenizer

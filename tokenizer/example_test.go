// SPDX-License-Identifier: MIT

package tokenizer_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdata/tokenizer"
)

func ExampleLineizer() {
	src := "// comment\nX,Y\n1,,3\n"
	l := tokenizer.NewLineizer(strings.NewReader(src), tokenizer.DefaultCommentMarker)
	for l.HasMoreLines() {
		line, _ := l.NextLine()
		fmt.Printf("%d %q\n", l.LineNumber(), tokenizer.Split(line, tokenizer.CommaDelimiter, tokenizer.DefaultQuote))
	}
	// Output:
	// 2 ["X" "Y"]
	// 3 ["1" "" "3"]
}

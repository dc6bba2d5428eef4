// SPDX-License-Identifier: MIT

package covariance

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Write renders c in the covariance text format: the sample size, a tab-separated
// name line, then the lower triangle one row per line with "*" for NaN. Non-empty
// knowledge follows as a /knowledge section.
func Write(w io.Writer, c Covariances) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(c.SampleSize()))
	bw.WriteByte('\n')
	bw.WriteString(strings.Join(c.VariableNames(), "\t"))
	bw.WriteByte('\n')
	for i := 0; i < c.Dimension(); i++ {
		for j := 0; j <= i; j++ {
			if j > 0 {
				bw.WriteByte('\t')
			}
			bw.WriteString(formatValue(c.Value(i, j)))
		}
		bw.WriteByte('\n')
	}
	if k := c.Knowledge(); !k.IsEmpty() {
		bw.WriteByte('\n')
		bw.WriteString(k.String())
	}
	return errors.Wrap(bw.Flush(), "covariance: write")
}

func formatValue(f float64) string {
	if math.IsNaN(f) {
		return "*"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String renders c in the covariance text format.
func (c *CovarianceMatrix) String() string {
	var sb strings.Builder
	_ = Write(&sb, c)
	return sb.String()
}

// String renders every entry of c in the covariance text format.
func (c *OnTheFly) String() string {
	var sb strings.Builder
	_ = Write(&sb, c)
	return sb.String()
}

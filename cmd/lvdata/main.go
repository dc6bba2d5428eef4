// SPDX-License-Identifier: MIT

// Command lvdata inspects and converts tabular data, covariance and knowledge files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: MIT

// Package lvdata is the data layer of a causal-discovery toolkit: typed variables,
// tabular datasets, background knowledge and covariance estimators, plus the readers
// that build them from text.
//
// Packages:
//
//	tokenizer/  line and token splitting with quotes, comments and delimiters
//	variable/   continuous and discrete variable descriptors
//	databox/    rectangular float64 / int32 storage strategies
//	dataset/    DataSet: variables over a box, with knowledge, case IDs and multipliers
//	knowledge/  tiers, forbidden and required edges, the knowledge text format
//	core/       a small directed graph that knowledge can be checked against
//	matrix/     dense matrices, covariance and correlation kernels
//	covariance/ eager (global-complete) and lazy pairwise (pairwise-complete) estimators
//	dataio/     two-pass tabular reader, mmap fast reader, covariance and Excel input, writer
//	config/     YAML + environment configuration for the command-line tool
//	cmd/lvdata  describe, covariance, knowledge and convert commands
//
// Quick example:
//
//	r := dataio.NewReader(dataio.WithDelimiter(tokenizer.CommaDelimiter))
//	ds, err := r.ReadTabular(ctx, "cases.csv")
//	if err != nil {
//		return err
//	}
//	cov, err := covariance.FromDataSet(ds)
//
// Missing values are NaN in continuous columns and variable.MissingDiscrete (-99) in
// discrete ones; "*" is the missing marker in every text format.
package lvdata

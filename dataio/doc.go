// SPDX-License-Identifier: MIT

// Package dataio reads and writes the text formats of the data layer.
//
// Tabular files are read in two passes. Scan walks the source once and infers a
// Description: variable names from the header (or X1..Xn), per-column types from the
// distinct tokens seen, the row count, and whether a MULT column, a /variables section
// or a trailing /knowledge section is present. Load walks the source again and fills a
// dataset.DataSet sized from that Description. The token-level path is lenient: a
// continuous cell that does not parse becomes NaN and an unknown discrete token becomes
// variable.MissingDiscrete.
//
// FastReader is the strict byte-level path for large, purely continuous or purely
// discrete files. It memory-maps the file and fails with a *ParseError carrying the
// 1-based line and column of the first bad cell.
//
// Covariance files hold a sample size line, a name line and a lower triangle, with
// an optional trailing /knowledge section.
package dataio

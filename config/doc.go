// SPDX-License-Identifier: MIT

// Package config loads reader, covariance and logging settings for the lvdata tools.
//
// Values are layered: DefaultConfig, then an optional YAML file, then LVDATA_*
// environment variables (for example LVDATA_READER_DELIMITER=comma). The result is
// validated before use and translated into dataio and covariance options.
package config

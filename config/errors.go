// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

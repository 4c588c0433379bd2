// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig is wrapped by every Validate and Load failure that is
// caused by a bad value rather than by I/O.
var ErrInvalidConfig = errors.New("config: invalid configuration")

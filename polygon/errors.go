// SPDX-License-Identifier: MIT

package polygon

import "errors"

// ErrEmptyPolygon indicates a loop with no vertices.
var ErrEmptyPolygon = errors.New("polygon: vertex loop must not be empty")

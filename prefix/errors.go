// SPDX-License-Identifier: MIT

package prefix

import "errors"

var (
	// ErrNegativeDimension indicates New was asked for a negative size.
	ErrNegativeDimension = errors.New("prefix: dimensions must be non-negative")
	// ErrNilSource indicates New was given a nil cell value function.
	ErrNilSource = errors.New("prefix: cell value function must not be nil")
	// ErrOutOfRange indicates a query bound outside [0, cols] × [0, rows].
	ErrOutOfRange = errors.New("prefix: range bound out of table")
	// ErrInvertedRange indicates a query with x1 > x2 or y1 > y2.
	ErrInvertedRange = errors.New("prefix: range lower bound exceeds upper bound")
)

// SPDX-License-Identifier: MIT

package compress

import "errors"

var (
	// ErrNilPolygon indicates NewGrid was called with a nil polygon.
	ErrNilPolygon = errors.New("compress: polygon must not be nil")
	// ErrCellIndex indicates a requested cell lies outside the grid.
	ErrCellIndex = errors.New("compress: cell index out of range")
)

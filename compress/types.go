// SPDX-License-Identifier: MIT

package compress

import (
	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/polygon"
)

// Cell describes one compressed grid cell.
type Cell struct {
	Col, Row int             // cell indices
	X0, X1   int64           // bounding x-lines, X0 < X1
	Y0, Y1   int64           // bounding y-lines, Y0 < Y1
	Inside   bool            // centroid classified inside the polygon
	Area     uint128.Uint128 // (X1-X0)*(Y1-Y0) when Inside, else zero
}

// Grid is the classified compressed grid of a polygon. It is immutable once built.
// Cells are stored row-major: index = row*cols + col.
type Grid struct {
	xs, ys     []int64
	cols, rows int
	inside     []bool
	area       []uint128.Uint128
	// lattice is the polygon loop in doubled index space.
	lattice []polygon.Point[int64]
}

// SPDX-License-Identifier: MIT

package rectsearch

import (
	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/vertex"
)

// Result is the outcome of a search.
type Result struct {
	// Area is the tile area of the winning pair; zero when nothing qualified.
	Area uint128.Uint128
	// A and B are the winning corners, loop indices I < J.
	A, B vertex.Vertex
	I, J int

	// Candidates counts pairs considered (non-degenerate pairs for Largest,
	// every pair for LargestAny).
	Candidates int
	// Pruned counts candidates skipped by the tile-area bound.
	Pruned int
	// Checked counts containment queries run.
	Checked int
}

// Found reports whether a qualifying pair exists.
func (r Result) Found() bool { return !r.Area.IsZero() }

// Bounds returns the rectangle spanned by the winning corners.
func (r Result) Bounds() (lo, hi vertex.Vertex) {
	lo = vertex.Vertex{X: min(r.A.X, r.B.X), Y: min(r.A.Y, r.B.Y)}
	hi = vertex.Vertex{X: max(r.A.X, r.B.X), Y: max(r.A.Y, r.B.Y)}

	return lo, hi
}

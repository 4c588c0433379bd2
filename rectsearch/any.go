// SPDX-License-Identifier: MIT

package rectsearch

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/vertex"
)

// LargestAny returns the pair of vertices with the greatest tile area,
// ignoring the polygon interior. Pairs sharing a coordinate count as
// one-tile-wide strips.
//
// Errors: ErrNoRectangle (wrapped) for fewer than two vertices.
// Complexity: O(V²) time, O(1) memory.
func LargestAny(vs []vertex.Vertex) (Result, error) {
	var acc Result
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			acc.Candidates++
			if area := TileArea(vs[i], vs[j]); area.Cmp(acc.Area) > 0 {
				acc.Area, acc.A, acc.B, acc.I, acc.J = area, vs[i], vs[j], i, j
			}
		}
	}
	if !acc.Found() {
		return acc, fmt.Errorf("LargestAny: %d vertices: %w", len(vs), ErrNoRectangle)
	}

	return acc, nil
}

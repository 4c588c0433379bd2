// SPDX-License-Identifier: MIT

package compress

// neighborOffsets lists the 4-connected neighbours: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Regions finds all 4-connected components of interior cells.
// Returns one slice of row-major cell indices per component, in BFS order;
// components are ordered by their first cell in row-major order.
//
// A simple polygon has exactly one region; more indicate a loop that
// touches itself. Use Coordinate to convert an index back to (col,row).
//
// Time:   O(C).
// Memory: O(C) for visited flags and output.
func (g *Grid) Regions() [][]int {
	seen := make([]bool, len(g.inside))
	var comps [][]int

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i0 := g.index(col, row)
			if !g.inside[i0] || seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				uc, ur := g.Coordinate(queue[qi])
				for _, d := range neighborOffsets {
					vc, vr := uc+d[0], ur+d[1]
					if !g.Inside(vc, vr) {
						continue
					}
					vi := g.index(vc, vr)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

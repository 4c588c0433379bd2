// SPDX-License-Identifier: MIT

// Package compress builds the coordinate-compressed cell grid of an
// orthogonal polygon and classifies every cell as interior or exterior.
//
// What:
//
//   - Xs / Ys are the sorted, duplicate-free vertex coordinates (the grid lines).
//   - Cell (i, j) spans [Xs[i], Xs[i+1]] × [Ys[j], Ys[j+1]]; there are
//     (W-1)×(H-1) cells for W x-lines and H y-lines.
//   - Each cell is inside or outside as a whole, decided by its centroid, and
//     carries its continuous area (zero when outside) as a 128-bit integer.
//   - Regions groups interior cells into 4-connected components.
//
// Why it is exact:
//
//	Only vertex coordinates bound the polygon's edges, so no cell straddles a
//	boundary. Classification runs in doubled index space: vertex (x, y) maps to
//	(2·ix, 2·iy), the centroid of cell (i, j) maps to (2i+1, 2j+1). The mapping
//	is strictly increasing on each axis, so insideness is preserved and every
//	product in the crossing test stays small.
//
// Complexity:
//
//   - NewGrid:  O(V log V + C·V) time, O(C) memory, C = number of cells.
//   - Contains: O(log V + V).
//   - Regions:  O(C), Memory O(C).
//
// Errors:
//
//   - ErrNilPolygon: NewGrid was given a nil polygon.
//   - ErrCellIndex: Cell was asked for an index outside the grid.
package compress

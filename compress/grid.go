// SPDX-License-Identifier: MIT

package compress

import (
	"fmt"
	"slices"

	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/vertex"
)

// NewGrid compresses p onto its distinct vertex coordinates and classifies
// every cell by its centroid.
// Returns ErrNilPolygon if p is nil.
// Complexity: O(V log V + C·V) time, O(C) memory.
func NewGrid(p *polygon.Polygon) (*Grid, error) {
	if p == nil {
		return nil, ErrNilPolygon
	}
	n := p.Len()
	xs := make([]int64, 0, n)
	ys := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		v := p.Vertex(i)
		xs = append(xs, v.X)
		ys = append(ys, v.Y)
	}
	xs = uniqueSorted(xs)
	ys = uniqueSorted(ys)

	// Map the loop into doubled index space; every lookup hits by construction
	lattice := make([]polygon.Point[int64], n)
	for i := 0; i < n; i++ {
		v := p.Vertex(i)
		ix, _ := slices.BinarySearch(xs, v.X)
		iy, _ := slices.BinarySearch(ys, v.Y)
		lattice[i] = polygon.Point[int64]{X: 2 * int64(ix), Y: 2 * int64(iy)}
	}

	cols, rows := len(xs)-1, len(ys)-1
	g := &Grid{
		xs:      xs,
		ys:      ys,
		cols:    cols,
		rows:    rows,
		inside:  make([]bool, cols*rows),
		area:    make([]uint128.Uint128, cols*rows),
		lattice: lattice,
	}
	for row := 0; row < rows; row++ {
		h := span(ys[row], ys[row+1])
		for col := 0; col < cols; col++ {
			centroid := polygon.Point[int64]{X: 2*int64(col) + 1, Y: 2*int64(row) + 1}
			if !polygon.EvenOdd(lattice, centroid) {
				continue
			}
			idx := g.index(col, row)
			g.inside[idx] = true
			g.area[idx] = uint128.From64(span(xs[col], xs[col+1])).Mul64(h)
		}
	}

	return g, nil
}

// uniqueSorted sorts vs ascending and drops duplicates in place.
func uniqueSorted(vs []int64) []int64 {
	slices.Sort(vs)

	return slices.Compact(vs)
}

// span returns hi-lo for lo ≤ hi. Any int64 span fits in uint64.
func span(lo, hi int64) uint64 {
	return uint64(hi) - uint64(lo)
}

// Cols returns the number of cell columns (W-1, or 0 for a single x-line).
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of cell rows (H-1, or 0 for a single y-line).
func (g *Grid) Rows() int { return g.rows }

// Xs returns a copy of the sorted x grid lines.
func (g *Grid) Xs() []int64 { return slices.Clone(g.xs) }

// Ys returns a copy of the sorted y grid lines.
func (g *Grid) Ys() []int64 { return slices.Clone(g.ys) }

// ColumnOf returns the index of the x-line equal to x.
// Complexity: O(log W).
func (g *Grid) ColumnOf(x int64) (int, bool) {
	return slices.BinarySearch(g.xs, x)
}

// RowOf returns the index of the y-line equal to y.
// Complexity: O(log H).
func (g *Grid) RowOf(y int64) (int, bool) {
	return slices.BinarySearch(g.ys, y)
}

// InBounds reports whether (col,row) addresses a cell.
// Complexity: O(1).
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// index maps (col,row) to a row-major index: row*cols + col.
func (g *Grid) index(col, row int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major cell index back to (col,row).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (col, row int) {
	return idx % g.cols, idx / g.cols
}

// Inside reports whether cell (col,row) is interior. Out-of-range cells are not.
func (g *Grid) Inside(col, row int) bool {
	return g.InBounds(col, row) && g.inside[g.index(col, row)]
}

// Area returns the interior area of cell (col,row), zero for exterior or
// out-of-range cells.
func (g *Grid) Area(col, row int) uint128.Uint128 {
	if !g.InBounds(col, row) {
		return uint128.Zero
	}

	return g.area[g.index(col, row)]
}

// Cell returns the full description of cell (col,row).
// Returns ErrCellIndex if the cell does not exist.
func (g *Grid) Cell(col, row int) (Cell, error) {
	if !g.InBounds(col, row) {
		return Cell{}, fmt.Errorf("Cell(%d,%d) on %d×%d grid: %w", col, row, g.cols, g.rows, ErrCellIndex)
	}
	idx := g.index(col, row)

	return Cell{
		Col:    col,
		Row:    row,
		X0:     g.xs[col],
		X1:     g.xs[col+1],
		Y0:     g.ys[row],
		Y1:     g.ys[row+1],
		Inside: g.inside[idx],
		Area:   g.area[idx],
	}, nil
}

// InteriorCells returns how many cells are inside the polygon.
func (g *Grid) InteriorCells() int {
	n := 0
	for _, in := range g.inside {
		if in {
			n++
		}
	}

	return n
}

// InteriorArea returns the total continuous area of all interior cells.
// Complexity: O(C).
func (g *Grid) InteriorArea() uint128.Uint128 {
	total := uint128.Zero
	for _, a := range g.area {
		total = total.AddWrap(a)
	}

	return total
}

// Contains reports whether the lattice point v lies inside the polygon or on
// its boundary. The test is exact for every int64 input: v is mapped into
// doubled index space, where coordinates between two grid lines become odd.
// Complexity: O(log V + V).
func (g *Grid) Contains(v vertex.Vertex) bool {
	q := polygon.Point[int64]{X: doubledIndex(g.xs, v.X), Y: doubledIndex(g.ys, v.Y)}

	return polygon.EvenOdd(g.lattice, q)
}

// doubledIndex maps c onto the doubled index axis of lines:
// lines[k] → 2k, and a value strictly between lines[k-1] and lines[k] → 2k-1
// (-1 below the first line, 2·len-1 above the last).
func doubledIndex(lines []int64, c int64) int64 {
	k, found := slices.BinarySearch(lines, c)
	if found {
		return 2 * int64(k)
	}

	return 2*int64(k) - 1
}

// SPDX-License-Identifier: MIT

package rectsearch

import (
	"fmt"

	"github.com/katalvlaran/rectilinear/compress"
	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/prefix"
	"github.com/katalvlaran/rectilinear/vertex"
)

// Index is the immutable containment structure of one polygon: its
// compressed grid, the prefix table over interior cell areas, and the grid
// line indices of every vertex. It is safe for concurrent use.
type Index struct {
	poly  *polygon.Polygon
	grid  *compress.Grid
	table *prefix.Table
	// col[i], row[i] are the grid line indices of vertex i.
	col, row []int
}

// NewIndex builds the grid and prefix table of p.
// Errors: ErrNilPolygon, or wrapped errors from the grid/table builders.
// Complexity: O(V log V + C·V) time, O(C) memory.
func NewIndex(p *polygon.Polygon) (*Index, error) {
	if p == nil {
		return nil, ErrNilPolygon
	}
	grid, err := compress.NewGrid(p)
	if err != nil {
		return nil, fmt.Errorf("NewIndex: %w", err)
	}
	table, err := prefix.New(grid.Cols(), grid.Rows(), grid.Area)
	if err != nil {
		return nil, fmt.Errorf("NewIndex: %w", err)
	}
	x := &Index{
		poly:  p,
		grid:  grid,
		table: table,
		col:   make([]int, p.Len()),
		row:   make([]int, p.Len()),
	}
	for i := 0; i < p.Len(); i++ {
		if x.col[i], x.row[i], err = x.locate(p.Vertex(i)); err != nil {
			return nil, fmt.Errorf("NewIndex: vertex %d: %w", i, err)
		}
	}

	return x, nil
}

// Polygon returns the indexed polygon.
func (x *Index) Polygon() *polygon.Polygon { return x.poly }

// Grid returns the compressed grid.
func (x *Index) Grid() *compress.Grid { return x.grid }

// Table returns the interior-area prefix table.
func (x *Index) Table() *prefix.Table { return x.table }

// locate finds the grid line indices of v.
func (x *Index) locate(v vertex.Vertex) (col, row int, err error) {
	col, ok := x.grid.ColumnOf(v.X)
	if !ok {
		return 0, 0, fmt.Errorf("x=%d: %w", v.X, ErrCoordinateMissing)
	}
	row, ok = x.grid.RowOf(v.Y)
	if !ok {
		return 0, 0, fmt.Errorf("y=%d: %w", v.Y, ErrCoordinateMissing)
	}

	return col, row, nil
}

// Contains reports whether the rectangle with opposite corners a and b lies
// entirely inside the polygon. Pairs sharing an x or y coordinate are
// degenerate and never contained.
//
// Errors: ErrCoordinateMissing if a corner coordinate is not a grid line.
// Complexity: O(log V).
func (x *Index) Contains(a, b vertex.Vertex) (bool, error) {
	if degenerate(a, b) {
		return false, nil
	}
	ca, ra, err := x.locate(a)
	if err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}
	cb, rb, err := x.locate(b)
	if err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}

	return x.spanInside(a, b, ca, ra, cb, rb)
}

// spanInside compares the interior area of the cell span between the two
// corners with the continuous area of the rectangle they bound.
func (x *Index) spanInside(a, b vertex.Vertex, ca, ra, cb, rb int) (bool, error) {
	inner, err := x.table.Sum(min(ca, cb), min(ra, rb), max(ca, cb), max(ra, rb))
	if err != nil {
		return false, fmt.Errorf("Contains(%v,%v): %w", a, b, err)
	}

	return inner.Equals(ContinuousArea(a, b)), nil
}

// pairInside is Contains for two vertices of the indexed polygon.
func (x *Index) pairInside(i, j int) (bool, error) {
	return x.spanInside(x.poly.Vertex(i), x.poly.Vertex(j), x.col[i], x.row[i], x.col[j], x.row[j])
}

// SPDX-License-Identifier: MIT

package prefix

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Table is an immutable (rows+1)×(cols+1) prefix-sum table.
// sums is stored row-major with stride cols+1.
type Table struct {
	cols, rows int
	sums       []uint128.Uint128
}

// New builds a table over a cols×rows grid whose cell (col,row) holds
// value(col,row). value is called exactly once per cell, row by row.
//
// Errors: ErrNegativeDimension, ErrNilSource.
// Complexity: O(cols·rows) time and memory.
func New(cols, rows int, value func(col, row int) uint128.Uint128) (*Table, error) {
	if cols < 0 || rows < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", cols, rows, ErrNegativeDimension)
	}
	if value == nil {
		return nil, ErrNilSource
	}
	t := &Table{
		cols: cols,
		rows: rows,
		sums: make([]uint128.Uint128, (cols+1)*(rows+1)),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := value(x, y).
				AddWrap(t.at(x+1, y)).
				AddWrap(t.at(x, y+1)).
				SubWrap(t.at(x, y))
			t.sums[t.offset(x+1, y+1)] = s
		}
	}

	return t, nil
}

// offset maps table coordinates (x,y), 0 ≤ x ≤ cols, 0 ≤ y ≤ rows, to sums.
func (t *Table) offset(x, y int) int {
	return y*(t.cols+1) + x
}

func (t *Table) at(x, y int) uint128.Uint128 {
	return t.sums[t.offset(x, y)]
}

// Cols returns the number of cell columns.
func (t *Table) Cols() int { return t.cols }

// Rows returns the number of cell rows.
func (t *Table) Rows() int { return t.rows }

// Total returns the sum over every cell.
func (t *Table) Total() uint128.Uint128 {
	return t.at(t.cols, t.rows)
}

// Sum returns the total over the half-open cell range [x1,x2) × [y1,y2).
// An empty range (x1 == x2 or y1 == y2) sums to zero.
//
// Errors: ErrOutOfRange, ErrInvertedRange.
// Complexity: O(1).
func (t *Table) Sum(x1, y1, x2, y2 int) (uint128.Uint128, error) {
	if x1 < 0 || y1 < 0 || x2 > t.cols || y2 > t.rows {
		return uint128.Zero, fmt.Errorf("Sum([%d,%d)×[%d,%d)) on %d×%d: %w",
			x1, x2, y1, y2, t.cols, t.rows, ErrOutOfRange)
	}
	if x1 > x2 || y1 > y2 {
		return uint128.Zero, fmt.Errorf("Sum([%d,%d)×[%d,%d)): %w", x1, x2, y1, y2, ErrInvertedRange)
	}

	return t.at(x2, y2).
		SubWrap(t.at(x2, y1)).
		SubWrap(t.at(x1, y2)).
		AddWrap(t.at(x1, y1)), nil
}

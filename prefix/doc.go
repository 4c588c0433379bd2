// SPDX-License-Identifier: MIT

// Package prefix provides a 2D inclusive prefix-sum table over unsigned
// 128-bit cell values, answering "total value inside this block of cells"
// in O(1).
//
// Layout:
//
//	t[0][*] = t[*][0] = 0
//	t[y+1][x+1] = a[y][x] + t[y][x+1] + t[y+1][x] - t[y][x]
//
// Query for the half-open cell range [x1,x2) × [y1,y2):
//
//	t[y2][x2] - t[y1][x2] - t[y2][x1] + t[y1][x1]
//
// Arithmetic is wrapping (mod 2^128). Every true prefix value and every true
// range sum is a sum of non-negative cell values bounded by the table total,
// so as long as the total fits in 128 bits the modular result is exact.
//
// Complexity: New O(cols·rows) time and memory; Sum O(1).
package prefix

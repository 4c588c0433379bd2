// SPDX-License-Identifier: MIT

package rectsearch

import (
	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/vertex"
)

// TileArea returns (|a.X-b.X|+1)·(|a.Y-b.Y|+1).
// The only unrepresentable value, both factors equal to 2^64, saturates to
// uint128.Max.
func TileArea(a, b vertex.Vertex) uint128.Uint128 {
	w := uint128.From64(absSpan(a.X, b.X)).Add64(1)
	h := uint128.From64(absSpan(a.Y, b.Y)).Add64(1)
	if w.Hi != 0 && h.Hi != 0 {
		return uint128.Max
	}

	return w.Mul(h)
}

// ContinuousArea returns |a.X-b.X|·|a.Y-b.Y|, which always fits in 128 bits.
func ContinuousArea(a, b vertex.Vertex) uint128.Uint128 {
	return uint128.From64(absSpan(a.X, b.X)).Mul64(absSpan(a.Y, b.Y))
}

// absSpan returns |p-q| without int64 overflow.
func absSpan(p, q int64) uint64 {
	if p > q {
		p, q = q, p
	}

	return uint64(q) - uint64(p)
}

// degenerate reports whether a and b share a coordinate.
func degenerate(a, b vertex.Vertex) bool {
	return a.X == b.X || a.Y == b.Y
}

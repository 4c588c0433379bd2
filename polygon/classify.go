// SPDX-License-Identifier: MIT

package polygon

// Number is the coordinate domain accepted by EvenOdd.
type Number interface {
	~int64 | ~float64
}

// Point is a query point or loop corner in a given coordinate domain.
type Point[T Number] struct {
	X, Y T
}

// EvenOdd reports whether p lies inside loop or on its boundary.
//
// For every edge (a, b) of the closed loop:
//   - a horizontal edge containing p, or a vertical edge containing p,
//     answers true immediately;
//   - otherwise, if the edge straddles p.Y ((a.Y > p.Y) != (b.Y > p.Y)) and
//     its x-intercept at p.Y is strictly right of p.X, the parity flips.
//
// The boundary checks run before the parity toggle, so corners and
// axis-aligned overlaps are never double counted.
//
// An empty loop contains nothing. Complexity: O(len(loop)).
func EvenOdd[T Number](loop []Point[T], p Point[T]) bool {
	n := len(loop)
	inside := false
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		if onAxisEdge(a, b, p) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) && interceptRightOf(a, b, p) {
			inside = !inside
		}
	}

	return inside
}

// onAxisEdge reports whether p lies on a horizontal or vertical edge a–b.
func onAxisEdge[T Number](a, b, p Point[T]) bool {
	switch {
	case a.Y == b.Y:
		return p.Y == a.Y && between(p.X, a.X, b.X)
	case a.X == b.X:
		return p.X == a.X && between(p.Y, a.Y, b.Y)
	}

	return false
}

// interceptRightOf reports whether the x-intercept of a–b at height p.Y is
// strictly greater than p.X. The edge must straddle p.Y, so a.Y != b.Y.
//
//	a.X + (p.Y-a.Y)(b.X-a.X)/(b.Y-a.Y) > p.X
//	⇔ ((a.X-p.X)(b.Y-a.Y) + (p.Y-a.Y)(b.X-a.X)) has the sign of (b.Y-a.Y)
func interceptRightOf[T Number](a, b, p Point[T]) bool {
	dy := b.Y - a.Y
	num := (a.X-p.X)*dy + (p.Y-a.Y)*(b.X-a.X)
	if dy > 0 {
		return num > 0
	}

	return num < 0
}

func between[T Number](v, lo, hi T) bool {
	if lo > hi {
		lo, hi = hi, lo
	}

	return v >= lo && v <= hi
}

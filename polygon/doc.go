// SPDX-License-Identifier: MIT

// Package polygon holds an immutable orthogonal vertex loop and the even-odd
// interior classifier used by the compressed grid.
//
// What:
//
//   - Polygon is a closed loop of vertex.Vertex; the last vertex connects to
//     the first. Edges are assumed axis-aligned; this is not verified.
//   - EvenOdd is a boundary-inclusive ray-casting test toward +x, generic over
//     int64 and float64 coordinates.
//
// Exactness:
//
//	The crossing test never divides: the x-intercept comparison is done by
//	cross-multiplication, so the int64 instantiation is exact whenever the
//	products fit (the compress package only calls it on small index-space
//	coordinates). ContainsPoint is the float64 convenience form.
//
// Complexity: EvenOdd is O(V) per query, Memory O(1).
package polygon

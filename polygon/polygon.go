// SPDX-License-Identifier: MIT

package polygon

import (
	"github.com/katalvlaran/rectilinear/vertex"
)

// Polygon is an immutable closed vertex loop.
type Polygon struct {
	loop   []vertex.Vertex
	floats []Point[float64]
}

// New copies vs into a Polygon. The loop is assumed orthogonal and simple.
// Returns ErrEmptyPolygon if vs is empty.
// Complexity: O(V) time and memory.
func New(vs []vertex.Vertex) (*Polygon, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyPolygon
	}
	loop := make([]vertex.Vertex, len(vs))
	copy(loop, vs)
	floats := make([]Point[float64], len(vs))
	for i, v := range loop {
		floats[i] = Point[float64]{X: float64(v.X), Y: float64(v.Y)}
	}

	return &Polygon{loop: loop, floats: floats}, nil
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.loop) }

// Vertex returns the i-th vertex of the loop.
func (p *Polygon) Vertex(i int) vertex.Vertex { return p.loop[i] }

// Vertices returns a copy of the loop.
func (p *Polygon) Vertices() []vertex.Vertex {
	out := make([]vertex.Vertex, len(p.loop))
	copy(out, p.loop)

	return out
}

// Bounds returns the component-wise minimum and maximum vertex.
func (p *Polygon) Bounds() (lo, hi vertex.Vertex) {
	lo, hi = p.loop[0], p.loop[0]
	for _, v := range p.loop[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
	}

	return lo, hi
}

// ContainsPoint reports whether (x, y) lies inside the polygon or on its
// boundary, using float64 arithmetic. For exact lattice queries use
// compress.Grid.Contains.
// Complexity: O(V).
func (p *Polygon) ContainsPoint(x, y float64) bool {
	return EvenOdd(p.floats, Point[float64]{X: x, Y: y})
}

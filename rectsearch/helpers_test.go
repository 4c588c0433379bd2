package rectsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/rectilinear/polygon"
	"github.com/katalvlaran/rectilinear/rectsearch"
	"github.com/katalvlaran/rectilinear/vertex"
)

// sample is the eight-corner loop whose best interior rectangle spans
// (9,5)–(2,3) with tile area 24.
func sample() []vertex.Vertex {
	return []vertex.Vertex{
		{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7},
		{X: 9, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 3}, {X: 7, Y: 3},
	}
}

func mustPolygon(t testing.TB, vs []vertex.Vertex) *polygon.Polygon {
	t.Helper()
	p, err := polygon.New(vs)
	require.NoError(t, err)

	return p
}

// bruteLargest tests every unit lattice square of every candidate rectangle
// with the float classifier. Only usable on small coordinates.
func bruteLargest(t *testing.T, vs []vertex.Vertex) uint128.Uint128 {
	t.Helper()
	p := mustPolygon(t, vs)
	best := uint128.Zero
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			a, b := vs[i], vs[j]
			if a.X == b.X || a.Y == b.Y {
				continue
			}
			if !bruteInside(p, a, b) {
				continue
			}
			if area := rectsearch.TileArea(a, b); area.Cmp(best) > 0 {
				best = area
			}
		}
	}

	return best
}

func bruteInside(p *polygon.Polygon, a, b vertex.Vertex) bool {
	for x := min(a.X, b.X); x < max(a.X, b.X); x++ {
		for y := min(a.Y, b.Y); y < max(a.Y, b.Y); y++ {
			if !p.ContainsPoint(float64(x)+0.5, float64(y)+0.5) {
				return false
			}
		}
	}

	return true
}

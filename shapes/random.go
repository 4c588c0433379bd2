// SPDX-License-Identifier: MIT
// Package: rectilinear/shapes
//
// random.go: seeded histogram polygons for property tests.

package shapes

import (
	"math/rand"

	"github.com/katalvlaran/rectilinear/vertex"
)

// maxColumnWidth bounds the random width of a histogram column.
const maxColumnWidth = 5

// Random returns a histogram polygon: columns adjacent columns standing on
// y=0, each 1..maxColumnWidth wide and 1..maxHeight tall, with neighbouring
// heights always different so no vertex is collinear with its neighbours.
//
// Requires columns ≥ 1, maxHeight ≥ 1, and maxHeight ≥ 2 when columns > 1.
// Determinism: identical (seed, columns, maxHeight) ⇒ identical loop.
func Random(seed int64, columns, maxHeight int) ([]vertex.Vertex, error) {
	if columns < 1 || maxHeight < 1 {
		return nil, shapeErrorf(methodRandom, "columns=%d maxHeight=%d (each must be ≥ 1)", columns, maxHeight)
	}
	if columns > 1 && maxHeight < 2 {
		return nil, shapeErrorf(methodRandom, "maxHeight=%d (must be ≥ 2 for %d columns)", maxHeight, columns)
	}
	rng := rand.New(rand.NewSource(seed))

	edges := make([]int64, columns+1)
	heights := make([]int64, columns)
	for c := 0; c < columns; c++ {
		edges[c+1] = edges[c] + 1 + int64(rng.Intn(maxColumnWidth))
		if c == 0 {
			heights[c] = 1 + int64(rng.Intn(maxHeight))
			continue
		}
		h := 1 + int64(rng.Intn(maxHeight-1))
		if h >= heights[c-1] {
			h++
		}
		heights[c] = h
	}

	loop := make([]vertex.Vertex, 0, 2*columns+2)
	loop = append(loop, vertex.Vertex{X: 0, Y: 0}, vertex.Vertex{X: edges[columns], Y: 0})
	for c := columns - 1; c >= 0; c-- {
		loop = append(loop,
			vertex.Vertex{X: edges[c+1], Y: heights[c]},
			vertex.Vertex{X: edges[c], Y: heights[c]},
		)
	}

	return loop, nil
}

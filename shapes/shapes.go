// SPDX-License-Identifier: MIT
// Package: rectilinear/shapes
//
// shapes.go: fixed-topology constructors Rectangle, Staircase, Comb, Cross.

package shapes

import (
	"github.com/katalvlaran/rectilinear/vertex"
)

// Method tags used in error context.
const (
	methodRectangle = "Rectangle"
	methodStaircase = "Staircase"
	methodComb      = "Comb"
	methodCross     = "Cross"
	methodRandom    = "Random"
)

// Rectangle returns the axis-aligned rectangle [x0,x1]×[y0,y1].
// Requires x0 < x1 and y0 < y1.
func Rectangle(x0, y0, x1, y1 int64) ([]vertex.Vertex, error) {
	if x0 >= x1 || y0 >= y1 {
		return nil, shapeErrorf(methodRectangle, "(%d,%d)-(%d,%d) (need x0<x1, y0<y1)", x0, y0, x1, y1)
	}

	return []vertex.Vertex{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}, nil
}

// Staircase returns a staircase of steps columns, each run wide, whose
// heights fall by rise from left (steps·rise) to right (rise).
//
//	#
//	##
//	###
//
// Staircase(1, run, rise) is a run×rise rectangle.
// Requires steps, run, rise ≥ 1.
func Staircase(steps int, run, rise int64) ([]vertex.Vertex, error) {
	if steps < 1 || run < 1 || rise < 1 {
		return nil, shapeErrorf(methodStaircase, "steps=%d run=%d rise=%d (each must be ≥ 1)", steps, run, rise)
	}
	loop := make([]vertex.Vertex, 0, 2*steps+2)
	loop = append(loop, vertex.Vertex{X: 0, Y: 0})
	for s := 0; s < steps; s++ {
		x := int64(steps-s) * run
		loop = append(loop,
			vertex.Vertex{X: x, Y: int64(s) * rise},
			vertex.Vertex{X: x, Y: int64(s+1) * rise},
		)
	}
	loop = append(loop, vertex.Vertex{X: 0, Y: int64(steps) * rise})

	return loop, nil
}

// Comb returns a bar of height base with teeth teeth of the given width
// rising depth above it, separated by gap.
//
//	#.#.#
//	#####
//
// Requires teeth, width, depth, base ≥ 1, and gap ≥ 1 when teeth > 1.
func Comb(teeth int, width, gap, depth, base int64) ([]vertex.Vertex, error) {
	switch {
	case teeth < 1:
		return nil, shapeErrorf(methodComb, "teeth=%d (must be ≥ 1)", teeth)
	case width < 1 || depth < 1 || base < 1:
		return nil, shapeErrorf(methodComb, "width=%d depth=%d base=%d (each must be ≥ 1)", width, depth, base)
	case teeth > 1 && gap < 1:
		return nil, shapeErrorf(methodComb, "gap=%d (must be ≥ 1 for %d teeth)", gap, teeth)
	}
	pitch := width + gap
	total := int64(teeth)*width + int64(teeth-1)*gap
	top := base + depth

	loop := make([]vertex.Vertex, 0, 4*teeth)
	loop = append(loop, vertex.Vertex{X: 0, Y: 0}, vertex.Vertex{X: total, Y: 0})
	for t := teeth - 1; t >= 0; t-- {
		x0 := int64(t) * pitch
		x1 := x0 + width
		if t != teeth-1 {
			loop = append(loop, vertex.Vertex{X: x1, Y: base})
		}
		loop = append(loop, vertex.Vertex{X: x1, Y: top}, vertex.Vertex{X: x0, Y: top})
		if t != 0 {
			loop = append(loop, vertex.Vertex{X: x0, Y: base})
		}
	}

	return loop, nil
}

// Cross returns a plus sign centred on the origin: a square of half-width
// thickness with four arms reaching arm beyond it.
// Requires arm, thickness ≥ 1.
func Cross(arm, thickness int64) ([]vertex.Vertex, error) {
	if arm < 1 || thickness < 1 {
		return nil, shapeErrorf(methodCross, "arm=%d thickness=%d (each must be ≥ 1)", arm, thickness)
	}
	t, r := thickness, thickness+arm

	return []vertex.Vertex{
		{X: -t, Y: -r}, {X: t, Y: -r}, {X: t, Y: -t}, {X: r, Y: -t},
		{X: r, Y: t}, {X: t, Y: t}, {X: t, Y: r}, {X: -t, Y: r},
		{X: -t, Y: t}, {X: -r, Y: t}, {X: -r, Y: -t}, {X: -t, Y: -t},
	}, nil
}

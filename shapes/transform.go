// SPDX-License-Identifier: MIT
// Package: rectilinear/shapes
//
// transform.go: loop transforms that preserve the largest inscribed rectangle.

package shapes

import (
	"github.com/katalvlaran/rectilinear/vertex"
)

// Translate returns loop shifted by (dx, dy).
func Translate(loop []vertex.Vertex, dx, dy int64) []vertex.Vertex {
	out := make([]vertex.Vertex, len(loop))
	for i, v := range loop {
		out[i] = vertex.Vertex{X: v.X + dx, Y: v.Y + dy}
	}

	return out
}

// Transpose returns loop mirrored across the line y = x.
func Transpose(loop []vertex.Vertex) []vertex.Vertex {
	out := make([]vertex.Vertex, len(loop))
	for i, v := range loop {
		out[i] = vertex.Vertex{X: v.Y, Y: v.X}
	}

	return out
}

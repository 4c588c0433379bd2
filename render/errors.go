// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilPolygon indicates Draw was called with a nil polygon.
	ErrNilPolygon = errors.New("render: polygon must not be nil")
	// ErrCanvasTooSmall indicates a canvas with no drawable area left after padding.
	ErrCanvasTooSmall = errors.New("render: canvas too small for padding")
)

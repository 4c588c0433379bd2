// SPDX-License-Identifier: MIT

package rectsearch

import "errors"

var (
	// ErrNilPolygon indicates a nil polygon was passed to NewIndex or Largest.
	ErrNilPolygon = errors.New("rectsearch: polygon must not be nil")
	// ErrNoRectangle indicates that no vertex pair forms a qualifying rectangle.
	ErrNoRectangle = errors.New("rectsearch: no qualifying rectangle")
	// ErrCoordinateMissing indicates a corner coordinate that is not one of the
	// compressed grid lines. Corners taken from the indexed polygon never miss.
	ErrCoordinateMissing = errors.New("rectsearch: coordinate not on the compressed grid")
)

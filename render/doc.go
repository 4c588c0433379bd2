// SPDX-License-Identifier: MIT

// Package render rasterises a polygon and, optionally, the rectangle found by
// rectsearch into an RGBA image using draw2d.
//
// The polygon's bounding box is scaled uniformly to fit the canvas minus the
// padding on every side. FlipY puts larger y values at the top, as in a
// mathematical plot; the default keeps the input orientation (y grows down),
// which matches how puzzle grids are usually drawn.
//
// Errors:
//
//   - ErrNilPolygon: Draw was given a nil polygon.
//   - ErrCanvasTooSmall: the padding leaves no drawable area.
package render

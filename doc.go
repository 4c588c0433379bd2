// SPDX-License-Identifier: MIT

// Package rectilinear finds the largest axis-aligned rectangle whose two
// opposite corners are vertices of an orthogonal polygon and which lies
// entirely inside that polygon.
//
// The work is split across small packages, each usable on its own:
//
//	vertex/     "x,y" records, strict and lenient loop parsing
//	polygon/    vertex loop + boundary-inclusive even-odd classifier
//	compress/   coordinate-compressed grid, interior cells, regions
//	prefix/     128-bit 2D prefix sums over cell areas
//	rectsearch/ containment query and the pair search (workers, pruning)
//	shapes/     deterministic and seeded test polygons
//	render/     PNG rendering of a polygon and its best rectangle
//	config/     YAML + environment settings
//	logging/    zerolog console/file logger
//	cli/        cobra command tree behind cmd/rectilinear
//
// Quick ASCII example, tiles x=0..11 by y=7..1:
//
//	. . . . . . . . . # # #
//	. . . . . . . . . # # #
//	. . # # # # # # # # # #
//	. . # # # # # # # # # #
//	. . # # # # # # # # # #
//	. . . . . . . # # # # #
//	. . . . . . . # # # # #
//
// The best rectangle for this loop spans (2,3)-(9,5): 8×3 = 24 tiles.
//
//	go install github.com/katalvlaran/rectilinear/cmd/rectilinear@latest
//	rectilinear solve loop.txt
package rectilinear

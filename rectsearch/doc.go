// SPDX-License-Identifier: MIT

// Package rectsearch finds the largest axis-aligned rectangle whose two
// opposite corners are polygon vertices and whose whole interior lies inside
// an orthogonal polygon.
//
// Pipeline:
//
//	polygon.Polygon → compress.Grid → prefix.Table → pairwise search
//
// Scoring and containment use different units on purpose:
//
//   - the score of a pair is its tile area (|Δx|+1)·(|Δy|+1), the number of
//     lattice tiles covered including both corners;
//   - containment is continuous: the rectangle [minX,maxX]×[minY,maxY] is
//     inside iff the interior area the prefix table reports for its cell span
//     equals Δx·Δy.
//
// Pruning compares tile areas with tile areas only, so it never changes the
// result: a pair whose score cannot beat the current best is not checked.
//
// Determinism:
//
//	Ties keep the first pair in (i, j) loop order. The result is identical with
//	or without pruning and for every worker count; only the Pruned/Checked
//	counters vary.
//
// Complexity:
//
//   - NewIndex: O(V log V + C·V) time, O(C) memory (C = compressed cells).
//   - Largest:  O(V²) pairs, O(1) per containment query.
//   - LargestAny: O(V²).
//
// Errors:
//
//   - ErrNilPolygon: nil polygon.
//   - ErrNoRectangle: no pair qualifies (fewer than two vertices, every pair
//     shares a coordinate, or no rectangle is interior).
//   - ErrCoordinateMissing: a corner coordinate is not a grid line.
package rectsearch

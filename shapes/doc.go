// SPDX-License-Identifier: MIT
// Package: rectilinear/shapes
//
// Package shapes generates deterministic orthogonal vertex loops for tests,
// benchmarks and the CLI `generate` command.
//
// Contract:
//   - Every constructor returns a closed, simple, orthogonal loop in
//     counter-clockwise order (y up); no two consecutive vertices coincide.
//   - Invalid parameters return ErrInvalidParameter wrapped with the method
//     name, e.g. "Comb: teeth=0 (must be ≥ 1): shapes: invalid parameter".
//   - Same inputs ⇒ identical loops; Random is reproducible for a fixed seed.
//
// Transforms:
//   - Translate and Transpose return new loops; the largest inscribed
//     rectangle is invariant under both, which the search tests rely on.
package shapes

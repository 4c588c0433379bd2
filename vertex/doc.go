// SPDX-License-Identifier: MIT

// Package vertex defines the integer vertex type shared by every other
// package of rectilinear and turns raw text records into ordered vertex loops.
//
// What:
//
//   - Vertex is an (X, Y) pair of int64 coordinates.
//   - Parse reads a single "<int>,<int>" record.
//   - ParseLines / Read parse a whole loop under an explicit Policy.
//
// Policy:
//
//   - Strict:  the first malformed record aborts with a *LineError.
//   - Lenient: malformed records are collected in ParseResult.Skipped and the
//     caller decides what to do with them.
//
// Blank lines are ignored under both policies; they are not records.
//
// Errors:
//
//   - ErrMalformedRecord: a record does not have exactly two fields.
//   - ErrInvalidCoordinate: a field is not a base-10 int64.
//
// Complexity: O(total input length) time, O(V) memory.
package vertex

// SPDX-License-Identifier: MIT

package vertex

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord indicates a record that is not of the form "<int>,<int>".
	ErrMalformedRecord = errors.New("vertex: record must have exactly two comma-separated fields")
	// ErrInvalidCoordinate indicates a field that does not parse as a base-10 int64.
	ErrInvalidCoordinate = errors.New("vertex: coordinate is not a valid integer")
)

// LineError reports a record that could not be parsed.
// Line is 1-based and counts blank lines, so it matches what an editor shows.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("vertex: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *LineError) Unwrap() error { return e.Err }

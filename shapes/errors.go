// SPDX-License-Identifier: MIT
// Package: rectilinear/shapes
//
// errors.go: sentinel errors for the shapes package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context via shapeErrorf; the sentinel stays last.

package shapes

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a size, count or range parameter outside the
// constructor's domain.
var ErrInvalidParameter = errors.New("shapes: invalid parameter")

// shapeErrorf returns "<method>: <message>: shapes: invalid parameter".
func shapeErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

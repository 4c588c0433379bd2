// SPDX-License-Identifier: MIT

package vertex

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldSep separates the two coordinates of a record.
const fieldSep = ","

// Vertex is a polygon corner on the integer lattice.
type Vertex struct {
	X, Y int64
}

// String renders v in the input record format "x,y".
func (v Vertex) String() string {
	return strconv.FormatInt(v.X, 10) + fieldSep + strconv.FormatInt(v.Y, 10)
}

// Parse reads a single "<int>,<int>" record. Whitespace around the record and
// around each field is ignored.
//
// Errors wrap ErrMalformedRecord or ErrInvalidCoordinate.
// Complexity: O(len(s)).
func Parse(s string) (Vertex, error) {
	fields := strings.Split(strings.TrimSpace(s), fieldSep)
	if len(fields) != 2 {
		return Vertex{}, fmt.Errorf("Parse: %d fields: %w", len(fields), ErrMalformedRecord)
	}
	x, err := parseCoord(fields[0])
	if err != nil {
		return Vertex{}, fmt.Errorf("Parse: x: %w", err)
	}
	y, err := parseCoord(fields[1])
	if err != nil {
		return Vertex{}, fmt.Errorf("Parse: y: %w", err)
	}

	return Vertex{X: x, Y: y}, nil
}

func parseCoord(field string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(field), ErrInvalidCoordinate)
	}

	return n, nil
}

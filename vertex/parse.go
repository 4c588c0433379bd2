// SPDX-License-Identifier: MIT

package vertex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Policy selects how malformed records are handled.
type Policy int

const (
	// Strict aborts on the first malformed record.
	Strict Policy = iota
	// Lenient collects malformed records in ParseResult.Skipped and goes on.
	Lenient
)

// String returns the lowercase policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a configuration name ("strict", "lenient") to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return Strict, fmt.Errorf("ParsePolicy: unknown policy %q", name)
	}
}

// ParseResult is the outcome of parsing a vertex loop.
type ParseResult struct {
	// Vertices holds the valid records in input order.
	Vertices []Vertex
	// Skipped holds one entry per malformed record (Lenient only).
	Skipped []*LineError
}

// ParseLines parses one record per element of lines.
//
// Under Strict the first malformed record is returned as a *LineError
// together with the vertices parsed so far. Under Lenient the error is nil
// and malformed records are listed in ParseResult.Skipped.
//
// Complexity: O(total length) time, O(len(lines)) memory.
func ParseLines(lines []string, policy Policy) (ParseResult, error) {
	res := ParseResult{Vertices: make([]Vertex, 0, len(lines))}
	for i, line := range lines {
		if err := res.add(i+1, line, policy); err != nil {
			return res, err
		}
	}

	return res, nil
}

// Read parses records from r, one per line. See ParseLines for the policy
// semantics. I/O errors from r are returned wrapped.
func Read(r io.Reader, policy Policy) (ParseResult, error) {
	var res ParseResult
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if err := res.add(n, sc.Text(), policy); err != nil {
			return res, err
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("Read: line %d: %w", n+1, err)
	}

	return res, nil
}

// add parses one raw line into res.
func (res *ParseResult) add(line int, text string, policy Policy) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	v, err := Parse(text)
	if err == nil {
		res.Vertices = append(res.Vertices, v)
		return nil
	}
	le := &LineError{Line: line, Text: text, Err: err}
	if policy == Lenient {
		res.Skipped = append(res.Skipped, le)
		return nil
	}

	return le
}

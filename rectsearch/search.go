// SPDX-License-Identifier: MIT

package rectsearch

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/rectilinear/polygon"
)

// Largest indexes p and returns its largest interior vertex-cornered
// rectangle. See (*Index).Largest.
func Largest(p *polygon.Polygon, opts ...Option) (Result, error) {
	x, err := NewIndex(p)
	if err != nil {
		return Result{}, fmt.Errorf("Largest: %w", err)
	}

	return x.Largest(opts...)
}

// Largest returns the vertex pair with the greatest tile area whose
// rectangle lies entirely inside the polygon.
//
// Steps, for every pair i < j:
//  1. skip pairs sharing an x or y coordinate;
//  2. compute the tile area; with pruning, skip it when ≤ the best so far;
//  3. otherwise query the prefix table and keep the pair if it is interior
//     and strictly better.
//
// With WithWorkers(n) each worker folds its own best over a strided share of
// i and the partial bests are merged by area, then by (i, j).
//
// Errors: ErrNoRectangle (wrapped) when nothing qualifies; the returned
// Result then has a zero Area but valid counters.
// Complexity: O(V²) time, O(workers) extra memory.
func (x *Index) Largest(opts ...Option) (Result, error) {
	cfg := gatherOptions(opts...)
	n := x.poly.Len()
	workers := max(1, min(cfg.workers, n))

	var res Result
	var err error
	if workers == 1 {
		res, err = x.fold(0, 1, cfg.prune)
	} else {
		res, err = x.parallel(workers, cfg.prune)
	}
	if err != nil {
		return Result{}, fmt.Errorf("Largest: %w", err)
	}
	if !res.Found() {
		return res, fmt.Errorf("Largest: %d vertices, %d candidate pairs: %w", n, res.Candidates, ErrNoRectangle)
	}

	return res, nil
}

// fold scans rows i = start, start+stride, … in increasing (i, j) order and
// returns the best pair of that share together with its counters.
func (x *Index) fold(start, stride int, prune bool) (Result, error) {
	var acc Result
	n := x.poly.Len()
	for i := start; i < n; i += stride {
		a := x.poly.Vertex(i)
		for j := i + 1; j < n; j++ {
			b := x.poly.Vertex(j)
			if degenerate(a, b) {
				continue
			}
			acc.Candidates++
			area := TileArea(a, b)
			if prune && area.Cmp(acc.Area) <= 0 {
				acc.Pruned++
				continue
			}
			acc.Checked++
			ok, err := x.pairInside(i, j)
			if err != nil {
				return Result{}, err
			}
			if ok && area.Cmp(acc.Area) > 0 {
				acc.Area, acc.A, acc.B, acc.I, acc.J = area, a, b, i, j
			}
		}
	}

	return acc, nil
}

// parallel runs fold on workers goroutines and reduces their partial bests.
func (x *Index) parallel(workers int, prune bool) (Result, error) {
	parts := make([]Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			parts[w], errs[w] = x.fold(w, workers, prune)
		}(w)
	}
	wg.Wait()

	var best Result
	for w := range parts {
		if errs[w] != nil {
			return Result{}, errs[w]
		}
		best = merge(best, parts[w])
	}

	return best, nil
}

// merge keeps the better of two partial results and sums their counters.
func merge(acc, part Result) Result {
	out := acc
	if preferred(part, acc) {
		out = part
	}
	out.Candidates = acc.Candidates + part.Candidates
	out.Pruned = acc.Pruned + part.Pruned
	out.Checked = acc.Checked + part.Checked

	return out
}

// preferred reports whether r beats s: larger area, then earlier (i, j).
func preferred(r, s Result) bool {
	if !r.Found() {
		return false
	}
	if !s.Found() {
		return true
	}
	if c := r.Area.Cmp(s.Area); c != 0 {
		return c > 0
	}
	if r.I != s.I {
		return r.I < s.I
	}

	return r.J < s.J
}

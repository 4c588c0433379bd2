// SPDX-License-Identifier: MIT

package rectsearch

const (
	// DefaultPruning skips the containment query for pairs whose tile area
	// cannot beat the current best.
	DefaultPruning = true

	// DefaultWorkers runs the search on the calling goroutine.
	DefaultWorkers = 1
)

const panicWorkersInvalid = "rectsearch: WithWorkers: n must be ≥ 1"

// Option configures a search. Options panic only on nonsensical values.
type Option func(*options)

type options struct {
	prune   bool
	workers int
}

func gatherOptions(opts ...Option) options {
	o := options{prune: DefaultPruning, workers: DefaultWorkers}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithPruning enables or disables the tile-area bound.
// Disabling it only costs time; the result is unchanged.
func WithPruning(on bool) Option {
	return func(o *options) { o.prune = on }
}

// WithWorkers splits the pair enumeration across n goroutines.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

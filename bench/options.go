// SPDX-License-Identifier: MIT

// Package bench: functional configuration for the benchmark driver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic when seeded: WithSeed pins every generated input.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package bench

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/matbench/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreads is the worker count handed to matrix.MulParallel.
	DefaultThreads = 5

	// DefaultValueBound is the exclusive upper bound of generated elements: [0, 10).
	DefaultValueBound = 10

	// DefaultRepeats is how many times each strategy is timed per size (best-of-N).
	DefaultRepeats = 1

	// DefaultVerify compares the sequential and parallel products after timing.
	DefaultVerify = true
)

// defaultSizes lists the square sizes benchmarked when WithSizes is not given.
var defaultSizes = []int{4, 50, 100, 200, 400, 800}

// DefaultSizes returns a copy of the default size list.
func DefaultSizes() []int { return append([]int(nil), defaultSizes...) }

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSizesEmpty   = "bench: WithSizes: at least one size is required"
	panicSizeInvalid  = "bench: WithSizes: sizes must be positive"
	panicThreadsBad   = "bench: WithThreads: threads must be >= 1"
	panicBoundInvalid = "bench: WithValueBound: bound must be >= 1"
	panicRepeatsBad   = "bench: WithRepeats: repeats must be >= 1"
	panicOutputNil    = "bench: WithOutput: writer must not be nil"
)

// ---------- Public option type (functional) ----------

// parallelFunc is the parallel strategy timed against matrix.Mul.
type parallelFunc func(a, b *matrix.Dense[int], threads int) (*matrix.Dense[int], error)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved driver configuration.
type Options struct {
	sizes   []int
	threads int
	bound   int64
	repeats int
	verify  bool

	seed   uint64
	seeded bool // false ⇒ Run draws a seed from the clock and logs it

	logger *zap.Logger
	out    io.Writer // nil ⇒ no streaming report

	mulParallel parallelFunc // matrix.MulParallel unless replaced in tests
}

// WithSizes replaces the list of square sizes to benchmark.
// Panics if sizes is empty or contains a non-positive value.
func WithSizes(sizes ...int) Option {
	if len(sizes) == 0 {
		panic(panicSizesEmpty)
	}
	for _, n := range sizes {
		if n <= 0 {
			panic(panicSizeInvalid)
		}
	}
	cp := append([]int(nil), sizes...)

	return func(o *Options) { o.sizes = cp }
}

// WithThreads sets the worker count for the parallel strategy.
func WithThreads(n int) Option {
	if n < 1 {
		panic(panicThreadsBad)
	}

	return func(o *Options) { o.threads = n }
}

// WithValueBound sets the exclusive upper bound of generated elements.
func WithValueBound(bound int64) Option {
	if bound < 1 {
		panic(panicBoundInvalid)
	}

	return func(o *Options) { o.bound = bound }
}

// WithRepeats times each strategy n times per size and keeps the fastest run.
func WithRepeats(n int) Option {
	if n < 1 {
		panic(panicRepeatsBad)
	}

	return func(o *Options) { o.repeats = n }
}

// WithSeed pins the pseudo-random source so inputs are reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithVerify toggles the sequential == parallel check after timing.
func WithVerify(on bool) Option {
	return func(o *Options) { o.verify = on }
}

// WithLogger sets the structured logger. A nil logger selects zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithOutput streams one report block per size to w as soon as it is measured.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}

	return func(o *Options) { o.out = w }
}

// Sizes returns a copy of the configured sizes.
func (o Options) Sizes() []int { return append([]int(nil), o.sizes...) }

// Threads returns the configured worker count.
func (o Options) Threads() int { return o.threads }

// Repeats returns the per-strategy timing count.
func (o Options) Repeats() int { return o.repeats }

// Seed returns the pinned seed and whether one was set.
func (o Options) Seed() (uint64, bool) { return o.seed, o.seeded }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the defaults.
// Implementation:
//   - Stage 1: start from Default* values.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		sizes:   DefaultSizes(),
		threads: DefaultThreads,
		bound:   DefaultValueBound,
		repeats: DefaultRepeats,
		verify:  DefaultVerify,
		logger:  zap.NewNop(),

		mulParallel: matrix.MulParallel[int],
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

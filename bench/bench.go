// SPDX-License-Identifier: MIT

// Package bench drives the sequential vs parallel multiplication benchmark.
//
// For every configured size Run allocates two random square matrices, times
// matrix.Mul and matrix.MulParallel (best of Repeats runs each), optionally
// checks that both products agree, and reports durations plus speedup.
// Structured progress goes to the zap logger; the human-readable report goes
// to the WithOutput writer (see report.go).
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/matbench/matrix"
)

// Result is the measurement for one size.
type Result struct {
	Size       int           // square dimension n of A, B and C
	Threads    int           // workers used by the parallel strategy
	Sequential time.Duration // best sequential wall-clock time
	Parallel   time.Duration // best parallel wall-clock time
}

// Speedup returns Sequential / Parallel, or 0 when Parallel is zero.
func (r Result) Speedup() float64 {
	if r.Parallel <= 0 {
		return 0
	}
	return float64(r.Sequential) / float64(r.Parallel)
}

// Run benchmarks every configured size in order.
// MAIN DESCRIPTION:
//   - Resolves opts, seeds the generator (clock seed when WithSeed is absent),
//     then measures each size and streams its report block when WithOutput is set.
//
// Behavior highlights:
//   - ctx is checked between sizes only; a multiplication in flight is never interrupted.
//   - On error the results gathered so far are returned together with the error.
//
// Errors:
//   - ctx.Err(), matrix errors, ErrResultMismatch, write errors from the output.
func Run(ctx context.Context, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	if !o.seeded {
		o.seed = clockSeed()
	}
	rng := NewRand(o.seed)
	log := o.logger

	fields := append(DescribeHost().Fields(),
		zap.Ints("sizes", o.sizes),
		zap.Int("threads", o.threads),
		zap.Int("repeats", o.repeats),
		zap.Uint64("seed", o.seed),
	)
	log.Info("benchmark started", fields...)

	results := make([]Result, 0, len(o.sizes))
	for _, n := range o.sizes {
		if err := ctx.Err(); err != nil {
			log.Warn("benchmark interrupted", zap.Int("next_size", n), zap.Error(err))
			return results, err
		}
		res, err := runSize(&o, rng, n)
		if err != nil {
			log.Error("size failed", zap.Int("size", n), zap.Error(err))
			return results, err
		}
		log.Info("size measured",
			zap.Int("size", res.Size),
			zap.Duration("sequential", res.Sequential),
			zap.Duration("parallel", res.Parallel),
			zap.Float64("speedup", res.Speedup()),
		)
		results = append(results, res)
		if o.out != nil {
			if err = writeBlock(o.out, res); err != nil {
				return results, fmt.Errorf("bench: write report: %w", err)
			}
		}
	}
	log.Info("benchmark finished", zap.Int("sizes", len(results)))

	return results, nil
}

// runSize measures one n×n product with both strategies.
func runSize(o *Options, rng *rand.Rand, n int) (Result, error) {
	a, err := RandomDense[int](rng, n, n, o.bound)
	if err != nil {
		return Result{}, fmt.Errorf("bench: size %d: %w", n, err)
	}
	b, err := RandomDense[int](rng, n, n, o.bound)
	if err != nil {
		return Result{}, fmt.Errorf("bench: size %d: %w", n, err)
	}

	seqTime, seq, err := measure(o.repeats, func() (*matrix.Dense[int], error) {
		return matrix.Mul(a, b)
	})
	if err != nil {
		return Result{}, fmt.Errorf("bench: size %d: %w", n, err)
	}
	parTime, par, err := measure(o.repeats, func() (*matrix.Dense[int], error) {
		return o.mulParallel(a, b, o.threads)
	})
	if err != nil {
		return Result{}, fmt.Errorf("bench: size %d: %w", n, err)
	}
	if o.verify && !seq.Equal(par) {
		return Result{}, fmt.Errorf("bench: size %d: %w", n, ErrResultMismatch)
	}

	return Result{Size: n, Threads: o.threads, Sequential: seqTime, Parallel: parTime}, nil
}

// measure runs f repeats times and returns the fastest wall-clock duration
// together with the product of the last run.
func measure(repeats int, f func() (*matrix.Dense[int], error)) (time.Duration, *matrix.Dense[int], error) {
	var (
		best time.Duration = -1
		out  *matrix.Dense[int]
	)
	for r := 0; r < repeats; r++ {
		t0 := time.Now()
		c, err := f()
		d := time.Since(t0)
		if err != nil {
			return 0, nil, err
		}
		if best < 0 || d < best {
			best = d
		}
		out = c
	}

	return best, out, nil
}

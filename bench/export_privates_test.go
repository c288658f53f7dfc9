// SPDX-License-Identifier: MIT

package bench

import "github.com/katalvlaran/matbench/matrix"

// Test-Bridge (White-Box) for the timed parallel strategy.
//
// Purpose:
//   - Let bench_test swap matrix.MulParallel for a stand-in so the
//     verification path can be driven without widening the public API.

// WithParallelStrategy_TestOnly replaces the parallel multiply used by Run.
func WithParallelStrategy_TestOnly(
	f func(a, b *matrix.Dense[int], threads int) (*matrix.Dense[int], error),
) Option {
	return func(o *Options) { o.mulParallel = f }
}

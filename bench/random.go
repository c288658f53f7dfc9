// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// NewRand returns a PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// clockSeed derives a seed from the wall clock for unseeded runs.
func clockSeed() uint64 { return uint64(time.Now().UnixNano()) }

// RandomDense allocates a rows×cols matrix whose elements are drawn uniformly
// from [0, bound). Fill order is row-major, so a fixed generator state yields
// a fixed matrix.
//
// Errors:
//   - ErrInvalidBound if bound < 1.
//   - ErrBoundOverflow if bound-1 is not representable in T.
//   - matrix.ErrInvalidDimensions / matrix.ErrBadShape from the allocation.
func RandomDense[T matrix.Element](rng *rand.Rand, rows, cols int, bound int64) (*matrix.Dense[T], error) {
	if err := validateBound[T](bound); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(func(_, _ int) T { return T(rng.Int64N(bound)) })

	return m, nil
}

// validateBound checks that every value in [0, bound) converts to T unchanged.
// Checking bound-1 suffices: the range starts at 0 and T's range is contiguous.
func validateBound[T matrix.Element](bound int64) error {
	if bound < 1 {
		return fmt.Errorf("bench: bound %d: %w", bound, ErrInvalidBound)
	}
	if hi := bound - 1; int64(T(hi)) != hi {
		return fmt.Errorf("bench: bound %d for %T: %w", bound, T(0), ErrBoundOverflow)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package matrix: row-partitioned parallel multiplication.
//
// Purpose:
//   - Split the output row range into a fixed number of contiguous chunks and
//     compute each chunk on its own goroutine with the same kernel as Mul.
//
// Concurrency model:
//   - Goroutines are created per call and joined before return (no pool).
//   - The output is the only shared mutable object; chunks are disjoint row
//     ranges, so no locks or atomics are needed. Inputs are read-only.
//   - A panicking worker is recovered into an ErrWorkerPanic error. The first
//     worker error is returned only after every worker has finished.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RowPartition divides [0, n) into exactly t contiguous chunks.
// MAIN DESCRIPTION:
//   - step = n / t; chunk i < t-1 covers [i*step, (i+1)*step); the last chunk
//     covers [(t-1)*step, n) and absorbs the remainder.
//
// Behavior highlights:
//   - When t > n, step is 0 and every chunk but the last is empty.
//   - The union of all chunks is [0, n); chunks never overlap.
//
// Errors:
//   - ErrInvalidDimensions when n < 0; ErrInvalidThreads when t < 1.
//
// Complexity:
//   - Time O(t), Space O(t).
func RowPartition(n, t int) ([]Chunk, error) {
	if n < 0 {
		return nil, matrixErrorf(opPartition, ErrInvalidDimensions)
	}
	if err := validateThreads(t); err != nil {
		return nil, matrixErrorf(opPartition, err)
	}
	step := n / t
	chunks := make([]Chunk, t)
	for i := 0; i < t; i++ {
		chunks[i] = Chunk{Start: i * step, End: (i + 1) * step}
	}
	chunks[t-1].End = n

	return chunks, nil
}

// MulParallel returns a × b computed by numThreads goroutines.
// MAIN DESCRIPTION:
//   - Same precondition and output as Mul; rows are split by RowPartition.
//
// Implementation:
//   - Stage 1: validate operands and numThreads.
//   - Stage 2: allocate C and partition [0, a.Rows()).
//   - Stage 3: one goroutine per chunk (empty chunks included) runs mulRows.
//   - Stage 4: join all; return the first worker error, if any.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrInvalidThreads, ErrWorkerPanic.
//
// Determinism:
//   - The result does not depend on goroutine interleaving.
//
// Complexity:
//   - Time O(n*k*m / numThreads) wall-clock ideal, Space O(n*m + numThreads).
func MulParallel[T Element](a, b *Dense[T], numThreads int) (*Dense[T], error) {
	return mulParallel(a, b, numThreads, mulRows[T])
}

// mulParallel is MulParallel with an injectable row kernel.
func mulParallel[T Element](a, b *Dense[T], numThreads int, kernel rowKernel[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	chunks, err := RowPartition(a.r, numThreads)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}
	c, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	var g errgroup.Group
	for _, ch := range chunks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("rows [%d,%d): %v: %w", ch.Start, ch.End, r, ErrWorkerPanic)
				}
			}()
			kernel(a, b, c, ch)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return c, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sequential multiplication kernel.
//
// Purpose:
//   - Provide the naive O(n·k·m) product C = A × B over Dense operands.
//   - Share the row-range kernel (mulRows) with MulParallel so both strategies
//     execute exactly the same dot-product accumulation.
//
// Notes:
//   - Loop order is fixed: output row i → output column j → inner index t.
//   - No blocking, no transposition, no zero-skipping: the kernel is the
//     baseline the parallel speedup is measured against.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opPartition   = "RowPartition"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowKernel computes the rows [ch.Start, ch.End) of c = a × b.
// Implementations MUST write only inside that row range of c.
type rowKernel[T Element] func(a, b, c *Dense[T], ch Chunk)

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - C[i][j] = Σ_t A[i][t]·B[t][j] for A (n×k), B (k×m), C (n×m).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil operands, inner dimensions).
//   - Stage 2: allocate C (n×m), zero-filled.
//   - Stage 3: run mulRows over the full row range [0, n).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; the result is nil on any error, so a
//     mis-shaped product is never handed back.
//
// Determinism:
//   - Fixed loop order; integer arithmetic wraps on overflow.
//
// Complexity:
//   - Time O(n*k*m), Space O(n*m).
func Mul[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	mulRows(a, b, c, Chunk{Start: 0, End: a.r})

	return c, nil
}

// mulRows is the shared dot-product kernel over a row range.
// Operands are assumed validated; ch is assumed within [0, a.r].
func mulRows[T Element](a, b, c *Dense[T], ch Chunk) {
	var (
		i, j, t          int
		rowA, rowC, cols int
		acc              T
	)
	inner := a.c
	cols = b.c
	for i = ch.Start; i < ch.End; i++ {
		rowA = i * inner
		rowC = i * cols
		for j = 0; j < cols; j++ {
			acc = 0
			for t = 0; t < inner; t++ {
				acc += a.data[rowA+t] * b.data[t*cols+j]
			}
			c.data[rowC+j] = acc
		}
	}
}

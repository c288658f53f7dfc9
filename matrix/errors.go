// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with
// fmt.Errorf("Op: %w", ErrX) — callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension mismatch -> thread count -> worker failure.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero rows or columns are legal (empty matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when rows*cols does not fit the platform int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (Row/At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows signals that a row-literal input had rows of different length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrInvalidThreads indicates a worker count below one.
	ErrInvalidThreads = errors.New("matrix: thread count must be >= 1")

	// ErrWorkerPanic marks a panic recovered inside a MulParallel worker.
	ErrWorkerPanic = errors.New("matrix: worker panicked")
)

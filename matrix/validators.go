// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/shape/thread checks here.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).
//  - Validators return sentinels wrapped with their own tag; kernels wrap again
//    with the operation tag so the final message reads "Mul: ValidateX: matrix: ...".

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMulCompatible checks that a × b is defined: both operands non-nil
// and a.Cols() == b.Rows(). The mismatch message carries both shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateThreads rejects worker counts below one.
func validateThreads(n int) error {
	if n < 1 {
		return validatorErrorf(fmt.Sprintf("validateThreads: %d", n), ErrInvalidThreads)
	}

	return nil
}

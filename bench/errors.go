// SPDX-License-Identifier: MIT

package bench

import "errors"

var (
	// ErrResultMismatch is returned when verification finds that the sequential
	// and parallel products differ.
	ErrResultMismatch = errors.New("bench: sequential and parallel results differ")

	// ErrBoundOverflow indicates a value bound whose range [0, bound) does not
	// fit the element type being generated.
	ErrBoundOverflow = errors.New("bench: value bound overflows element type")

	// ErrInvalidBound indicates a value bound below 1.
	ErrInvalidBound = errors.New("bench: value bound must be >= 1")
)

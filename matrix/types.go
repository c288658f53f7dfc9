// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the container and the kernels.
// Errors live in errors.go; kernels live in mul.go / parallel.go.
package matrix

// Element is the set of element types a Dense may hold.
// Integer arithmetic only: fixed-width types wrap on overflow, exactly as
// the Go arithmetic operators do. No overflow detection is attempted.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Chunk is a half-open row range [Start, End) assigned to one worker.
// Chunks produced by RowPartition never overlap and may be empty.
type Chunk struct {
	Start int // first row (inclusive)
	End   int // last row (exclusive)
}

// Len returns the number of rows covered by the chunk.
func (c Chunk) Len() int { return c.End - c.Start }

// Empty reports whether the chunk covers no rows.
func (c Chunk) Empty() bool { return c.End <= c.Start }

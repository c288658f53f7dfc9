// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the explicit index formula i*cols + j.
//   - Value semantics: Clone and CopyFrom always allocate, so two Dense values never alias.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - The zero value is a usable empty 0×0 matrix with a nil buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; Row/At/Set: O(1); Clone/CopyFrom: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
	ctxIdentity = "Identity"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = "\t"
	_fmtRowEnd  = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of integer elements.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c); nil for 0×0 zero value
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an rows×cols zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; empty shapes (0×N, N×0, 0×0) are legal.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrInvalidDimensions).
//   - Stage 2: reject rows*cols overflowing int (ErrBadShape).
//   - Stage 3: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return nil, ErrBadShape
	}
	// make() zero-fills deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense by copying a row literal.
// All rows must have the same length; an empty outer slice yields 0×0.
// The input is never retained.
func NewDenseFromRows[T Element](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		return &Dense[T]{}, nil
	}
	c := len(rows[0])
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(row), c, ErrRaggedRows)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Element](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Nil-safe.
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the column count. Nil-safe.
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Row returns a mutable view of row i.
// MAIN DESCRIPTION:
//   - The returned slice aliases the matrix storage: writes through it are
//     visible in m. Its capacity is clipped to the row, so append never
//     spills into row i+1.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Rows().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): rows=%d: %w", ctxRow, i, m.r, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Fill assigns f(i, j) to every cell in row-major order.
func (m *Dense[T]) Fill(f func(i, j int) T) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j)
		}
	}
}

// Clone returns a deep copy with a freshly allocated buffer.
// Mutating the clone never affects m. Clone of a nil receiver is nil;
// clone of the empty zero value is another empty 0×0 matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	out := &Dense[T]{r: m.r, c: m.c}
	if m.data != nil {
		out.data = make([]T, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// CopyFrom replaces the shape and contents of m with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment with value semantics: the previous buffer is dropped and a
//     new one is allocated, so row views obtained from m before the call keep
//     pointing at the old storage.
//
// Behavior highlights:
//   - Self-assignment (src == m) is a no-op and preserves existing state.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	m.r, m.c = src.r, src.c
	m.data = nil
	if src.data != nil {
		m.data = make([]T, len(src.data))
		copy(m.data, src.data)
	}

	return nil
}

// Equal reports whether m and o have the same shape and elements.
// Two nil matrices are equal; a nil and an empty 0×0 matrix are not.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders the matrix for diagnostics: every element is followed by a
// tab, rows end with a newline, and one blank line closes the block.
// Not a stable serialization format.
func (m *Dense[T]) String() string {
	var b strings.Builder
	if m != nil {
		var i, j, base int
		for i = 0; i < m.r; i++ { // iterate rows deterministically
			base = i * m.c
			for j = 0; j < m.c; j++ {
				fmt.Fprintf(&b, "%d", m.data[base+j])
				b.WriteString(_fmtCellSep)
			}
			b.WriteString(_fmtRowEnd)
		}
	}
	b.WriteString(_fmtRowEnd) // trailing blank line

	return b.String()
}

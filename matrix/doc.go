// Package matrix provides a value-semantics integer matrix and two
// interchangeable multiplication strategies.
//
// The matrix package provides:
//
//   - Dense[T], a contiguous row-major buffer with bounds-checked Row/At/Set,
//     deep Clone/CopyFrom and a tab-separated String rendering.
//   - Mul, the sequential i→j→t triple loop.
//   - MulParallel, the same kernel run over RowPartition chunks, one goroutine
//     per chunk, joined before return.
//
// All functions return sentinel errors (see errors.go) matched with errors.Is;
// a shape mismatch is an error, never a zero or mis-shaped result.
//
//	a, _ := matrix.NewDenseFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]int{{5, 6}, {7, 8}})
//	c, err := matrix.MulParallel(a, b, 4) // [[19 22] [43 50]]
package matrix

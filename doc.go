// Package matbench benchmarks dense integer matrix multiplication: a
// single-goroutine triple loop against the same loop split across a fixed
// number of goroutines by contiguous row ranges.
//
// Under the hood, everything is organized under two subpackages and a command:
//
//	matrix/        — Dense[T] container, Mul, MulParallel, RowPartition
//	bench/         — seeded random inputs, timing, verification, text report
//	cmd/matbench/  — runs the default size list and prints the report
//
// Quick example of the row split used by MulParallel (n = 10 rows, 4 workers):
//
//	[0,2) [2,4) [4,6) [6,10)
//
// every worker writes only its own rows of the output, so no locking is needed.
//
//	go run github.com/katalvlaran/matbench/cmd/matbench
package matbench

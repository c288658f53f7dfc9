// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep random data seeded so every failure is reproducible.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

// fixtureBound keeps random elements small so int64 products never overflow
// and float64 conversions in the oracle stay exact.
const fixtureBound = 10

// mustDense ALLOCATES an r×c *Dense[int64] or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense[int64] {
	tb.Helper()
	m, err := matrix.NewDense[int64](r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// mustRows BUILDS a *Dense[int64] from a row literal or fails the test.
func mustRows(tb testing.TB, rows [][]int64) *matrix.Dense[int64] {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustIdentity RETURNS I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Dense[int64] {
	tb.Helper()
	m, err := matrix.Identity[int64](n)
	require.NoError(tb, err)

	return m
}

// randomDense FILLS a fresh r×c matrix with values in [0, fixtureBound)
// drawn from a PCG source seeded with seed.
// Determinism:
//   - Deterministic for a fixed (r, c, seed).
func randomDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense[int64] {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m := mustDense(tb, r, c)
	m.Fill(func(_, _ int) int64 { return rng.Int64N(fixtureBound) })

	return m
}

// toRows EXPORTS m as a row literal for readable require.Equal diffs.
func toRows(tb testing.TB, m *matrix.Dense[int64]) [][]int64 {
	tb.Helper()
	out := make([][]int64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(tb, err)
		out[i] = append([]int64(nil), row...)
	}

	return out
}

// shapes is the table of (n, k, m) products exercised by property tests:
// square, rectangular, degenerate and single-row/column cases.
var shapes = []struct {
	name    string
	n, k, m int
}{
	{"1x1x1", 1, 1, 1},
	{"2x2x2", 2, 2, 2},
	{"3x5x4", 3, 5, 4},
	{"7x3x9", 7, 3, 9},
	{"1x8x1", 1, 8, 1},
	{"8x1x8", 8, 1, 8},
	{"17x13x11", 17, 13, 11},
	{"0x3x4", 0, 3, 4},
	{"4x0x3", 4, 0, 3},
	{"4x3x0", 4, 3, 0},
	{"32x32x32", 32, 32, 32},
}

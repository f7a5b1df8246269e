// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Square tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// MustSquare BUILDS a Square from literal rows or fails the test.
// Helpers take testing.TB so benchmarks can share them.
func MustSquare[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Square[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustNew ALLOCATES an n×n zero Square or fails the test.
func MustNew[T matrix.Number](tb testing.TB, n int) *matrix.Square[T] {
	tb.Helper()
	m, err := matrix.New[T](n)
	require.NoError(tb, err)

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T matrix.Number](tb testing.TB, m *matrix.Square[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// Seq3 is the 3×3 fixture 1..9 used by diagonal and swap tests.
func Seq3(tb testing.TB) *matrix.Square[int] {
	tb.Helper()
	return MustSquare(tb, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
}

// RandomFloat FILLS an n×n float64 Square with values in [-1,1) from a fixed seed.
func RandomFloat(tb testing.TB, n int, seed int64) *matrix.Square[float64] {
	tb.Helper()
	m := MustNew[float64](tb, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// RandomInt FILLS an n×n int Square with values in [-50,50) from a fixed seed.
func RandomInt(tb testing.TB, n int, seed int64) *matrix.Square[int] {
	tb.Helper()
	m := MustNew[int](tb, n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, rng.Intn(100)-50))
		}
	}

	return m
}

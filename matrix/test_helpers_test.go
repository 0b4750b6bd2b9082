// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/swalign/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return d
}

// mustRows builds a *Dense from a literal or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return d
}

// fillDenseRand fills d with uniform values in [-1, 1) from a seeded source.
func fillDenseRand(tb testing.TB, d *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			require.NoError(tb, d.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// requireAllClose compares two matrices element-wise within tol.
func requireAllClose(tb testing.TB, want, got matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(tb, err)
			g, err := got.At(i, j)
			require.NoError(tb, err)
			require.InDelta(tb, w, g, tol, "(%d,%d)", i, j)
		}
	}
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep literals readable: integers via MustInts, fractions via MustStrings.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the interface (non-*Dense) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustInts builds a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// MustStrings builds a *Dense from rational literals or fails the test.
func MustStrings(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromStrings(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) as a RatString or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) string {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v.RatString()
}

// RequireEqual asserts exact equality of two matrices.
func RequireEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	eq, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, eq, "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// rat parses a rational literal for compact assertions.
func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, err := matrix.ParseRat(s)
	require.NoError(t, err)

	return r
}

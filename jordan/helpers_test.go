// SPDX-License-Identifier: MIT

package jordan_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

// Matrices used across the package tests.
var (
	walkthrough3 = [][]int64{{0, 1, 0}, {-4, 4, 0}, {-2, 1, 2}}
	walkthrough4 = [][]int64{{1, -3, 0, 3}, {-2, -6, 0, 13}, {0, -3, 1, 3}, {-1, -4, 0, 8}}
	degenerate   = [][]int64{{0, 2, 0}, {0, 0, 0}, {0, 0, 0}}
	unitShift    = [][]int64{{0, 1, 0}, {0, 0, 0}, {0, 0, 0}}
	twoValues    = [][]int64{{3, 1, 0}, {-1, 1, 0}, {0, 0, 5}}
	rotation     = [][]int64{{0, -1}, {1, 0}}
)

func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

// applyPow returns (A − λI)^k · v.
func applyPow(t *testing.T, a matrix.Matrix, lambda *big.Rat, k int, v matrix.Vector) matrix.Vector {
	t.Helper()
	b, err := matrix.Shift(a, lambda)
	require.NoError(t, err)
	bk, err := matrix.Pow(b, k)
	require.NoError(t, err)
	out, err := matrix.MatVec(bk, v)
	require.NoError(t, err)

	return out
}

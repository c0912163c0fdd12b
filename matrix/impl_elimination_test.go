package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

func TestRREF_PivotsAndForm(t *testing.T) {
	a := MustInts(t, [][]int64{{-2, 1, 0}, {-4, 2, 0}, {-2, 1, 0}})
	R, pivots, err := matrix.RREF(a)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, pivots)
	RequireEqual(t, MustStrings(t, [][]string{{"1", "-1/2", "0"}, {"0", "0", "0"}, {"0", "0", "0"}}), R)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want int
	}{
		{"zero", [][]int64{{0, 0}, {0, 0}}, 0},
		{"identity", [][]int64{{1, 0}, {0, 1}}, 2},
		{"rank one", [][]int64{{1, 2, 3}, {2, 4, 6}}, 1},
		{"wide", [][]int64{{1, 0, 2, 0}, {0, 1, 0, 3}, {1, 1, 2, 3}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := matrix.Rank(MustInts(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}
}

func TestNullSpace_CanonicalBasis(t *testing.T) {
	// B = A − 2I for the 3×3 walkthrough matrix: rank 1, kernel of dimension 2.
	b := MustInts(t, [][]int64{{-2, 1, 0}, {-4, 2, 0}, {-2, 1, 0}})
	basis, err := matrix.NullSpace(b)
	require.NoError(t, err)
	require.Len(t, basis, 2)
	assert.Equal(t, "[1/2, 1, 0]ᵀ", basis[0].String())
	assert.Equal(t, "[0, 0, 1]ᵀ", basis[1].String())

	for _, v := range basis {
		y, err := matrix.MatVec(b, v)
		require.NoError(t, err)
		require.True(t, y.IsZero())
	}
}

func TestNullSpace_EdgeCases(t *testing.T) {
	full, err := matrix.NullSpace(MustInts(t, [][]int64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.NotNil(t, full)
	require.Empty(t, full)

	zero, err := matrix.NullSpace(MustDense(t, 2, 2))
	require.NoError(t, err)
	require.Len(t, zero, 2)
	assert.True(t, zero[0].Equal(matrix.VectorFromInts(1, 0)))
	assert.True(t, zero[1].Equal(matrix.VectorFromInts(0, 1)))

	_, err = matrix.NullSpace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestHStackAndRankOfColumns(t *testing.T) {
	P, err := matrix.HStack(matrix.VectorFromInts(1, 0), matrix.VectorFromInts(2, 0))
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 2}, {0, 0}}), P)

	r, err := matrix.RankOfColumns([]matrix.Vector{matrix.VectorFromInts(1, 0), matrix.VectorFromInts(2, 0)})
	require.NoError(t, err)
	require.Equal(t, 1, r)

	r, err = matrix.RankOfColumns(nil)
	require.NoError(t, err)
	require.Zero(t, r)

	_, err = matrix.HStack(matrix.VectorFromInts(1, 0), matrix.VectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.HStack()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

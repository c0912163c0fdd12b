// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.True(t, m.IsZero())
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Equal(t, "0", MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, big.NewRat(1, 1)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, nil), matrix.ErrNilEntry)
}

func TestDense_AtReturnsCopy(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	v, err := m.At(0, 1)
	require.NoError(t, err)
	v.SetInt64(99) // must not leak into m
	require.Equal(t, "2", MustAt(t, m, 0, 1))

	in := big.NewRat(5, 7)
	require.NoError(t, m.Set(1, 1, in))
	in.SetInt64(0) // Set copied the value
	require.Equal(t, "5/7", MustAt(t, m, 1, 1))
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, m.SetInt(0, 0, 42))
	require.Equal(t, "1", MustAt(t, c, 0, 0))
}

func TestFromInts_Ragged(t *testing.T) {
	_, err := matrix.FromInts([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.FromInts(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_NilEntry(t *testing.T) {
	_, err := matrix.FromRows([][]*big.Rat{{big.NewRat(1, 1), nil}})
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

func TestDense_ColumnsAndRows(t *testing.T) {
	m := MustStrings(t, [][]string{{"1", "1/2"}, {"-3", "0.25"}})

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, "[1/2, 1/4]ᵀ", col.String())

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "-3", row[0].RatString())

	_, err = m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cols := m.Columns()
	require.Len(t, cols, 2)
	assert.True(t, cols[0].Equal(matrix.VectorFromInts(1, -3)))
}

func TestDense_String(t *testing.T) {
	m := MustStrings(t, [][]string{{"1", "-1/2"}, {"0", "3"}})
	assert.Equal(t, "[1, -1/2]\n[0, 3]\n", m.String())
}

func TestVector_Basics(t *testing.T) {
	v := matrix.VectorFromInts(0, 2, -1)
	w := v.Clone()
	require.True(t, v.Equal(w))
	w[0].SetInt64(1)
	require.False(t, v.Equal(w))
	require.False(t, v.Equal(matrix.VectorFromInts(0, 2)))

	require.True(t, matrix.VectorFromInts(0, 0).IsZero())
	require.False(t, v.IsZero())

	half := v.Scaled(big.NewRat(1, 2))
	assert.Equal(t, "[0, 1, -1/2]ᵀ", half.String())

	z, err := matrix.NewVector(3)
	require.NoError(t, err)
	require.True(t, z.IsZero())
	_, err = matrix.NewVector(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

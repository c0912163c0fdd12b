// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

// ---------- Add / Sub ----------

func TestAddSub_Succeeds(t *testing.T) {
	a := MustStrings(t, [][]string{{"1", "1/2"}, {"3", "4"}})
	b := MustStrings(t, [][]string{{"1/2", "1/2"}, {"-3", "1"}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustStrings(t, [][]string{{"3/2", "1"}, {"0", "5"}}), sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustStrings(t, [][]string{{"1/2", "0"}, {"6", "3"}}), diff)
}

func TestAdd_InterfaceFallbackMatchesDense(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	viaDense, err := matrix.Add(a, a)
	require.NoError(t, err)
	viaIface, err := matrix.Add(hide{a}, a)
	require.NoError(t, err)
	RequireEqual(t, viaDense, viaIface)
}

func TestAddSub_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Add(typedNil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Mul / MatVec ----------

func TestMul_Succeeds(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	b := MustInts(t, [][]int64{{7, 8}, {9, 10}, {11, 12}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{58, 64}, {139, 154}}), p)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 1, 0}, {-4, 4, 0}, {-2, 1, 2}})
	y, err := matrix.MatVec(a, matrix.VectorFromInts(1, 2, 1))
	require.NoError(t, err)
	assert.True(t, y.Equal(matrix.VectorFromInts(2, 4, 2)))

	_, err = matrix.MatVec(a, matrix.VectorFromInts(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, matrix.Vector{big.NewRat(1, 1), nil, big.NewRat(1, 1)})
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

// ---------- Transpose / Scale ----------

func TestTransposeScale(t *testing.T) {
	a := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}), at)

	s, err := matrix.Scale(a, big.NewRat(-1, 2))
	require.NoError(t, err)
	RequireEqual(t, MustStrings(t, [][]string{{"-1/2", "-1", "-3/2"}, {"-2", "-5/2", "-3"}}), s)

	_, err = matrix.Scale(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}

// ---------- Pow / Shift ----------

func TestPow(t *testing.T) {
	n := MustInts(t, [][]int64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}})

	p0, err := matrix.Pow(n, 0)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	RequireEqual(t, I, p0)

	p2, err := matrix.Pow(n, 2)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{0, 0, 1}, {0, 0, 0}, {0, 0, 0}}), p2)

	p5, err := matrix.Pow(n, 5)
	require.NoError(t, err)
	require.True(t, p5.IsZero())

	a := MustInts(t, [][]int64{{1, 1}, {0, 1}})
	a7, err := matrix.Pow(a, 7)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 7}, {0, 1}}), a7)

	_, err = matrix.Pow(n, -1)
	require.ErrorIs(t, err, matrix.ErrNegativePower)
	_, err = matrix.Pow(MustDense(t, 2, 3), 2)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestShift(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 1, 0}, {-4, 4, 0}, {-2, 1, 2}})
	b, err := matrix.Shift(a, big.NewRat(2, 1))
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{-2, 1, 0}, {-4, 2, 0}, {-2, 1, 0}}), b)
	// operand untouched
	require.Equal(t, "0", MustAt(t, a, 0, 0))
}

// ---------- Inverse / Conjugate ----------

func TestInverse_Succeeds(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 1}, {2, 3}}) // zero leading pivot needs a row swap
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireEqual(t, MustStrings(t, [][]string{{"-3/2", "1/2"}, {"1", "0"}}), inv)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	I, _ := matrix.NewIdentity(2)
	RequireEqual(t, I, prod)
}

func TestInverse_Singular(t *testing.T) {
	_, err := matrix.Inverse(MustInts(t, [][]int64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	ok, err := matrix.IsInvertible(MustInts(t, [][]int64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestConjugate(t *testing.T) {
	a := MustInts(t, [][]int64{{2, 1}, {0, 3}})
	p := MustInts(t, [][]int64{{1, 1}, {0, 1}})
	j, err := matrix.Conjugate(a, p)
	require.NoError(t, err)
	// P⁻¹AP computed by hand: [[2,0],[0,3]]
	RequireEqual(t, MustInts(t, [][]int64{{2, 0}, {0, 3}}), j)

	_, err = matrix.Conjugate(a, MustInts(t, [][]int64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestEqual(t *testing.T) {
	a := MustStrings(t, [][]string{{"2/4"}})
	b := MustStrings(t, [][]string{{"1/2"}})
	eq, err := matrix.Equal(a, b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = matrix.Equal(a, MustDense(t, 1, 2))
	require.NoError(t, err)
	require.False(t, eq)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

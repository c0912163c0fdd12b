package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/poly"
)

func TestPolynomial_Basics(t *testing.T) {
	p := poly.FromInts(-8, 12, -6, 1, 0, 0) // trailing zeros are trimmed
	require.Equal(t, 3, p.Degree())
	assert.Equal(t, "λ^3 - 6λ^2 + 12λ - 8", p.String())
	assert.Equal(t, "x^3 - 6x^2 + 12x - 8", p.Format("x"))
	assert.Equal(t, "0", p.Eval(big.NewRat(2, 1)).RatString())
	assert.True(t, p.IsRoot(big.NewRat(2, 1)))
	assert.Equal(t, "-6", p.Coeff(2).RatString())
	assert.Equal(t, "0", p.Coeff(7).RatString())

	zero := poly.FromInts(0, 0)
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, zero.Degree())
	assert.Equal(t, "0", zero.String())
}

func TestPolynomial_FormatFractions(t *testing.T) {
	p, err := poly.New(big.NewRat(1, 3), big.NewRat(-1, 1), big.NewRat(-1, 2))
	require.NoError(t, err)
	assert.Equal(t, "-(1/2)λ^2 - λ + 1/3", p.String())

	_, err = poly.New(big.NewRat(1, 1), nil)
	require.ErrorIs(t, err, poly.ErrNilCoefficient)
}

func TestPolynomial_DivLinear(t *testing.T) {
	p := poly.FromInts(-8, 12, -6, 1)
	q, rem := p.DivLinear(big.NewRat(2, 1))
	assert.Equal(t, "0", rem.RatString())
	assert.Equal(t, "λ^2 - 4λ + 4", q.String())

	q, rem = poly.FromInts(1, 0, 1).DivLinear(big.NewRat(1, 1))
	assert.Equal(t, "2", rem.RatString())
	assert.Equal(t, "λ + 1", q.String())
}

func TestCharPoly(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want string
	}{
		{"3x3 walkthrough", [][]int64{{0, 1, 0}, {-4, 4, 0}, {-2, 1, 2}}, "λ^3 - 6λ^2 + 12λ - 8"},
		{"4x4 walkthrough", [][]int64{{1, -3, 0, 3}, {-2, -6, 0, 13}, {0, -3, 1, 3}, {-1, -4, 0, 8}}, "λ^4 - 4λ^3 + 6λ^2 - 4λ + 1"},
		{"rotation", [][]int64{{0, -1}, {1, 0}}, "λ^2 + 1"},
		{"1x1", [][]int64{{5}}, "λ - 5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := matrix.FromInts(tc.rows)
			require.NoError(t, err)
			p, err := poly.CharPoly(a)
			require.NoError(t, err)
			require.Equal(t, tc.want, p.String())
		})
	}

	nonSquare, _ := matrix.NewDense(2, 3)
	_, err := poly.CharPoly(nonSquare)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRationalRoots(t *testing.T) {
	// (x − 2)^3
	roots, err := poly.RationalRoots(poly.FromInts(-8, 12, -6, 1))
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "2", roots[0].Value.RatString())
	assert.Equal(t, 3, roots[0].Multiplicity)

	// x^2 (2x − 1)(x + 3) = 2x^4 + 5x^3 − 3x^2
	roots, err = poly.RationalRoots(poly.FromInts(0, 0, -3, 5, 2))
	require.NoError(t, err)
	require.Len(t, roots, 3)
	assert.Equal(t, "-3", roots[0].Value.RatString())
	assert.Equal(t, "0", roots[1].Value.RatString())
	assert.Equal(t, 2, roots[1].Multiplicity)
	assert.Equal(t, "1/2", roots[2].Value.RatString())
}

func TestRationalRoots_NonRational(t *testing.T) {
	// (x − 1)(x^2 + 1)
	roots, err := poly.RationalRoots(poly.FromInts(-1, 1, -1, 1))
	require.ErrorIs(t, err, poly.ErrNonRationalRoots)
	require.Len(t, roots, 1)
	assert.Equal(t, "1", roots[0].Value.RatString())

	f, err := poly.Factor(poly.FromInts(-1, 1, -1, 1))
	require.NoError(t, err)
	assert.Equal(t, "λ^2 + 1", f.Residual.String())

	_, err = poly.RationalRoots(poly.FromInts())
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)
}

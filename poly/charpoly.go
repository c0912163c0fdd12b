// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"

	"github.com/katalvlaran/jordan/matrix"
)

const opCharPoly = "CharPoly"

// CharPoly returns the monic characteristic polynomial det(λI − A).
//
// Implementation (Faddeev–LeVerrier, exact):
//   - Stage 1: M_0 = 0, c_n = 1.
//   - Stage 2: for k = 1..n: M_k = A·M_{k−1} + c_{n−k+1}·I and
//     c_{n−k} = −tr(A·M_k)/k.
//
// Division by k is exact over the rationals, so no fraction-free variant is
// needed at the sizes used here.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(n^4), Space O(n^2).
func CharPoly(a matrix.Matrix) (Polynomial, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Polynomial{}, polyErrorf(opCharPoly, err)
	}
	n := a.Rows()

	c := make([]*big.Rat, n+1)
	for i := range c {
		c[i] = new(big.Rat)
	}
	c[n].SetInt64(1)

	M, err := matrix.NewZeros(n, n)
	if err != nil {
		return Polynomial{}, polyErrorf(opCharPoly, err)
	}
	I, err := matrix.NewIdentity(n)
	if err != nil {
		return Polynomial{}, polyErrorf(opCharPoly, err)
	}

	var AM *matrix.Dense
	for k := 1; k <= n; k++ {
		// M_k = A·M_{k−1} + c_{n−k+1}·I
		if AM, err = matrix.Mul(a, M); err != nil {
			return Polynomial{}, polyErrorf(opCharPoly, err)
		}
		shiftI, err := matrix.Scale(I, c[n-k+1])
		if err != nil {
			return Polynomial{}, polyErrorf(opCharPoly, err)
		}
		if M, err = matrix.Add(AM, shiftI); err != nil {
			return Polynomial{}, polyErrorf(opCharPoly, err)
		}

		// c_{n−k} = −tr(A·M_k)/k
		if AM, err = matrix.Mul(a, M); err != nil {
			return Polynomial{}, polyErrorf(opCharPoly, err)
		}
		tr, err := trace(AM)
		if err != nil {
			return Polynomial{}, polyErrorf(opCharPoly, err)
		}
		c[n-k].Quo(tr, big.NewRat(int64(-k), 1))
	}

	return Polynomial{coeffs: trim(c)}, nil
}

func trace(m matrix.Matrix) (*big.Rat, error) {
	sum := new(big.Rat)
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, v)
	}

	return sum, nil
}

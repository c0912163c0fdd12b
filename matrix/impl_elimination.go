// SPDX-License-Identifier: MIT
// Package matrix - exact Gaussian elimination: RREF, rank, kernel bases and
// column concatenation.
//
// Purpose:
//   - Provide the rank and null-space oracle that Jordan-structure code relies on.
//   - Fix ONE canonical null-space basis so candidate enumeration is reproducible.
//
// Determinism:
//   - Pivot = first non-zero entry at or below the current row (column sweep
//     left to right). With exact arithmetic this yields the unique RREF.
//   - NullSpace emits one vector per free column, in increasing column order.

package matrix

import (
	"fmt"
	"math/big"
)

const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
	opHStack    = "HStack"
)

// RREF returns the reduced row echelon form of m and the pivot columns.
//
// Implementation:
//   - Stage 1: copy m (operand stays untouched).
//   - Stage 2: for each column, find a pivot row, swap it up, scale the
//     pivot to 1, clear the column above and below.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func RREF(m Matrix) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	R := d.clone()

	pivots := make([]int, 0, R.r)
	var (
		row, col, i, j, p int
		inv, f, tmp       big.Rat
	)
	for col = 0; col < R.c && row < R.r; col++ {
		p = -1
		for i = row; i < R.r; i++ {
			if R.at(i, col).Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		R.swapRows(p, row)

		inv.Inv(R.at(row, col))
		for j = col; j < R.c; j++ {
			R.at(row, j).Mul(R.at(row, j), &inv)
		}
		for i = 0; i < R.r; i++ {
			if i == row || R.at(i, col).Sign() == 0 {
				continue
			}
			f.Set(R.at(i, col))
			for j = col; j < R.c; j++ {
				tmp.Mul(&f, R.at(row, j))
				R.at(i, j).Sub(R.at(i, j), &tmp)
			}
		}
		pivots = append(pivots, col)
		row++
	}

	return R, pivots, nil
}

// Rank returns the number of pivots of RREF(m).
// Errors: ErrNilMatrix.
// Complexity: O(r*c*min(r,c)).
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// NullSpace returns the canonical basis of ker(m).
// MAIN DESCRIPTION:
//   - For every free (non-pivot) column f of RREF(m) emit v with v[f] = 1,
//     v[p_i] = −R[i][f] for each pivot column p_i, and zeros elsewhere.
//
// Behavior highlights:
//   - Full-rank input returns an empty (non-nil) slice.
//   - The zero matrix returns the standard basis e_0..e_{c-1}.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - O(RREF) + O(c^2).
func NullSpace(m Matrix) ([]Vector, error) {
	R, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	isPivot := make([]bool, R.c)
	for _, p := range pivots {
		isPivot[p] = true
	}

	basis := make([]Vector, 0, R.c-len(pivots))
	for f := 0; f < R.c; f++ {
		if isPivot[f] {
			continue
		}
		v := make(Vector, R.c)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[f].SetInt64(1)
		for i, p := range pivots {
			v[p].Neg(R.at(i, f))
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// HStack concatenates column vectors into an n×k matrix (the "horizontal
// concatenation" used to assemble transition matrices).
// Errors: ErrInvalidDimensions (no columns or empty vectors),
// ErrDimensionMismatch (ragged lengths), ErrNilEntry.
// Complexity: O(n*k).
func HStack(cols ...Vector) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opHStack, ErrInvalidDimensions)
	}
	n := len(cols[0])
	res := newDenseUnchecked(n, len(cols))
	for j, v := range cols {
		if err := ValidateVecLen(v, n); err != nil {
			return nil, matrixErrorf(opHStack, fmt.Errorf("column %d: %w", j, err))
		}
		for i := 0; i < n; i++ {
			res.at(i, j).Set(v[i])
		}
	}

	return res, nil
}

// FromColumns is a discoverability alias for HStack.
func FromColumns(cols []Vector) (*Dense, error) { return HStack(cols...) }

// RankOfColumns returns the rank of the matrix whose columns are vs;
// an empty set has rank 0.
// Errors: same as HStack.
func RankOfColumns(vs []Vector) (int, error) {
	if len(vs) == 0 {
		return 0, nil
	}
	M, err := HStack(vs...)
	if err != nil {
		return 0, err
	}

	return Rank(M)
}

// SPDX-License-Identifier: MIT

package jordan

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/jordan/matrix"
)

// shiftPowers returns B^0 = I, B^1, ..., B^upto for B = A − λI, built by
// repeated multiplication of the previous power.
func shiftPowers(a matrix.Matrix, lambda *big.Rat, upto int) ([]*matrix.Dense, error) {
	b, err := matrix.Shift(a, lambda)
	if err != nil {
		return nil, err
	}
	id, err := matrix.IdentityLike(a)
	if err != nil {
		return nil, err
	}
	pows := make([]*matrix.Dense, upto+1)
	pows[0] = id
	for k := 1; k <= upto; k++ {
		if pows[k], err = matrix.Mul(pows[k-1], b); err != nil {
			return nil, err
		}
	}

	return pows, nil
}

// CellQuantity returns the number of Jordan blocks of size exactly k for λ:
//
//	rank(B^(k−1)) + rank(B^(k+1)) − 2·rank(B^k),  B = A − λI, B^0 = I.
//
// For a non-eigenvalue the result is 0 for every k.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNilEntry.
//   - matrix.ErrNegativePower when k < 1.
//   - ErrNegativeBlockCount when the formula is negative.
func CellQuantity(a matrix.Matrix, lambda *big.Rat, k int) (int, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, jordanErrorf(opCellCount, err)
	}
	if k < 1 {
		return 0, jordanErrorf(opCellCount, matrix.ErrNegativePower)
	}
	pows, err := shiftPowers(a, lambda, k+1)
	if err != nil {
		return 0, jordanErrorf(opCellCount, err)
	}
	ranks, err := ranksOf(pows)
	if err != nil {
		return 0, jordanErrorf(opCellCount, err)
	}
	count := ranks[k-1] + ranks[k+1] - 2*ranks[k]
	if count < 0 {
		return 0, jordanErrorf(opCellCount, fmt.Errorf("λ=%s, k=%d: %w", lambda.RatString(), k, ErrNegativeBlockCount))
	}

	return count, nil
}

func ranksOf(pows []*matrix.Dense) ([]int, error) {
	ranks := make([]int, len(pows))
	for k, p := range pows {
		r, err := matrix.Rank(p)
		if err != nil {
			return nil, err
		}
		ranks[k] = r
	}

	return ranks, nil
}

// CountBlocks builds a BlockTable for every eigenvalue of sp, in spectrum
// order. Block sizes range over 1..m where m is the algebraic multiplicity;
// no block can be longer.
//
// Implementation:
//   - Stage 1: powers B^0..B^(m+1) by repeated multiplication, one rank each.
//   - Stage 2: Counts[k−1] by the rank formula.
//   - Stage 3: consistency: Σ k·Counts = m and Σ Counts = geometric multiplicity.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrNegativeBlockCount, ErrBlockCountMismatch (λ is not an eigenvalue of A
//     with the stated multiplicities).
//
// Complexity: O(Σ m_λ · n^3).
func CountBlocks(a matrix.Matrix, sp Spectrum) ([]BlockTable, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, jordanErrorf(opCountBlocks, err)
	}

	tables := make([]BlockTable, 0, len(sp.Eigenvalues))
	for _, ev := range sp.Eigenvalues {
		m := ev.Algebraic
		pows, err := shiftPowers(a, ev.Value, m+1)
		if err != nil {
			return nil, jordanErrorf(opCountBlocks, err)
		}
		ranks, err := ranksOf(pows)
		if err != nil {
			return nil, jordanErrorf(opCountBlocks, err)
		}

		counts := make([]int, m)
		sizeSum, blockSum := 0, 0
		for k := 1; k <= m; k++ {
			c := ranks[k-1] + ranks[k+1] - 2*ranks[k]
			if c < 0 {
				return nil, jordanErrorf(opCountBlocks,
					fmt.Errorf("λ=%s, k=%d: %w", ev.Value.RatString(), k, ErrNegativeBlockCount))
			}
			counts[k-1] = c
			sizeSum += k * c
			blockSum += c
		}
		if sizeSum != m || blockSum != ev.Geometric {
			return nil, jordanErrorf(opCountBlocks,
				fmt.Errorf("λ=%s: sizes sum %d (want %d), blocks %d (want %d): %w",
					ev.Value.RatString(), sizeSum, m, blockSum, ev.Geometric, ErrBlockCountMismatch))
		}

		tables = append(tables, BlockTable{Eigenvalue: ev, Ranks: ranks, Counts: counts})
	}

	return tables, nil
}

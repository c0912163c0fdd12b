// SPDX-License-Identifier: MIT

package jordan

import (
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

// TransitionMatrix concatenates the chains of set, each eigenvector first,
// into the n×m matrix P (m = number of chain vectors).
//
// Errors:
//   - ErrNoChains when set holds no chain.
//   - ErrUnderfilled when m != n; P is returned anyway so that it can be
//     shown, and it can never pass Verify.
func TransitionMatrix(n int, set ChainSet) (*matrix.Dense, error) {
	cols := set.Columns()
	if len(cols) == 0 {
		return nil, jordanErrorf(opTransition, ErrNoChains)
	}
	p, err := matrix.HStack(cols...)
	if err != nil {
		return nil, jordanErrorf(opTransition, err)
	}
	if len(cols) != n {
		return p, jordanErrorf(opTransition, fmt.Errorf("%d of %d columns: %w", len(cols), n, ErrUnderfilled))
	}

	return p, nil
}

// Cell returns the Jordan block J_k(λ): λ on the diagonal, 1 above it.
func Cell(b Block) (*matrix.Dense, error) {
	if b.Size < 1 {
		return nil, jordanErrorf(opJordanForm, matrix.ErrInvalidDimensions)
	}
	c, err := matrix.NewDense(b.Size, b.Size)
	if err != nil {
		return nil, jordanErrorf(opJordanForm, err)
	}
	for i := 0; i < b.Size; i++ {
		_ = c.Set(i, i, b.Eigenvalue)
		if i+1 < b.Size {
			_ = c.SetInt(i, i+1, 1)
		}
	}

	return c, nil
}

// Cells returns the blocks of every table, in processing order.
func Cells(tables []BlockTable) ([]*matrix.Dense, error) {
	blocks := AllBlocks(tables)
	out := make([]*matrix.Dense, len(blocks))
	for i, b := range blocks {
		c, err := Cell(b)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// JordanForm assembles the n×n block-diagonal Jordan matrix from tables:
// eigenvalues in table order, blocks by descending size.
//
// Errors: matrix.ErrInvalidDimensions when n < 1, ErrBlockCountMismatch when
// the block sizes do not sum to n.
func JordanForm(n int, tables []BlockTable) (*matrix.Dense, error) {
	j, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, jordanErrorf(opJordanForm, err)
	}
	offset := 0
	for _, b := range AllBlocks(tables) {
		if offset+b.Size > n {
			return nil, jordanErrorf(opJordanForm, ErrBlockCountMismatch)
		}
		for i := 0; i < b.Size; i++ {
			_ = j.Set(offset+i, offset+i, b.Eigenvalue)
			if i+1 < b.Size {
				_ = j.SetInt(offset+i, offset+i+1, 1)
			}
		}
		offset += b.Size
	}
	if offset != n {
		return nil, jordanErrorf(opJordanForm, fmt.Errorf("blocks cover %d of %d: %w", offset, n, ErrBlockCountMismatch))
	}

	return j, nil
}

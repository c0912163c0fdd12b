// SPDX-License-Identifier: MIT

package jordan

import (
	"math/big"

	"github.com/katalvlaran/jordan/matrix"
)

// Eigenvalue is one point of the spectrum with both multiplicities.
// Geometric = dim ker(A − λI) = number of Jordan blocks for λ.
type Eigenvalue struct {
	Value     *big.Rat
	Algebraic int
	Geometric int
}

// Block describes one Jordan block J_k(λ).
type Block struct {
	Eigenvalue *big.Rat
	Size       int
}

// BlockTable is the rank data and block census for one eigenvalue.
//
//   - Ranks[k] = rank(B^k) for k = 0..Algebraic+1 (B = A − λI).
//   - Counts[k-1] = number of blocks of size k, k = 1..Algebraic.
type BlockTable struct {
	Eigenvalue Eigenvalue
	Ranks      []int
	Counts     []int
}

// Sizes lists block sizes in descending order, one entry per block.
func (t BlockTable) Sizes() []int {
	var out []int
	for k := len(t.Counts); k >= 1; k-- {
		for c := 0; c < t.Counts[k-1]; c++ {
			out = append(out, k)
		}
	}

	return out
}

// Blocks returns one descriptor per block, descending by size.
func (t BlockTable) Blocks() []Block {
	sizes := t.Sizes()
	out := make([]Block, len(sizes))
	for i, k := range sizes {
		out[i] = Block{Eigenvalue: t.Eigenvalue.Value, Size: k}
	}

	return out
}

// NumBlocks returns the total number of blocks for the eigenvalue.
func (t BlockTable) NumBlocks() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}

	return total
}

// MaxSize returns the largest block size (the index of λ), 0 if none.
func (t BlockTable) MaxSize() int {
	for k := len(t.Counts); k >= 1; k-- {
		if t.Counts[k-1] > 0 {
			return k
		}
	}

	return 0
}

// Chain is a Jordan chain in generation order: Vectors[0] is the head of
// exact order Size, Vectors[i] = B·Vectors[i-1], and the last vector is an
// eigenvector. Ordinal is the position of its block in AllBlocks order.
type Chain struct {
	Ordinal    int
	Eigenvalue *big.Rat
	Size       int
	Vectors    []matrix.Vector
}

// Head returns the root vector of highest order.
func (c Chain) Head() matrix.Vector { return c.Vectors[0] }

// Eigenvector returns the terminal vector of the chain.
func (c Chain) Eigenvector() matrix.Vector { return c.Vectors[len(c.Vectors)-1] }

// EigenvectorFirst returns the chain reversed: the column order used by the
// transition matrix.
func (c Chain) EigenvectorFirst() []matrix.Vector {
	out := make([]matrix.Vector, len(c.Vectors))
	for i, v := range c.Vectors {
		out[len(c.Vectors)-1-i] = v
	}

	return out
}

// TotalBlocks returns Σ NumBlocks over all tables.
func TotalBlocks(tables []BlockTable) int {
	total := 0
	for _, t := range tables {
		total += t.NumBlocks()
	}

	return total
}

// AllBlocks flattens the tables into block descriptors in processing order.
func AllBlocks(tables []BlockTable) []Block {
	var out []Block
	for _, t := range tables {
		out = append(out, t.Blocks()...)
	}

	return out
}

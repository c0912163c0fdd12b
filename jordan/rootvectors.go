// SPDX-License-Identifier: MIT

package jordan

import (
	"math/big"

	"github.com/katalvlaran/jordan/matrix"
)

// RootLevel describes ker(B^k) for one order k.
type RootLevel struct {
	Order  int
	Power  *matrix.Dense   // B^k
	Rank   int             // rank(B^k)
	Kernel []matrix.Vector // canonical basis of ker(B^k)
	New    []matrix.Vector // kernel basis vectors absent from the level below
}

// RootSpace lists the root-vector levels of one eigenvalue, k = 1..m with
// m the algebraic multiplicity.
type RootSpace struct {
	Eigenvalue *big.Rat
	Levels     []RootLevel
}

// RootVectors computes, for every table, the kernel bases of B^k for
// k = 1..m, m the algebraic multiplicity of λ. Levels past the largest block
// repeat the full root subspace and carry no New vectors. New keeps the
// basis vectors that do not appear verbatim in the basis one level below;
// it is a display aid, chain heads are chosen by BuildChains.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func RootVectors(a matrix.Matrix, tables []BlockTable) ([]RootSpace, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, jordanErrorf(opRootVectors, err)
	}

	out := make([]RootSpace, 0, len(tables))
	for _, t := range tables {
		top := t.Eigenvalue.Algebraic
		pows, err := shiftPowers(a, t.Eigenvalue.Value, max(1, top))
		if err != nil {
			return nil, jordanErrorf(opRootVectors, err)
		}
		space := RootSpace{Eigenvalue: t.Eigenvalue.Value}
		var prev []matrix.Vector
		for k := 1; k <= top; k++ {
			kernel, err := matrix.NullSpace(pows[k])
			if err != nil {
				return nil, jordanErrorf(opRootVectors, err)
			}
			rank, err := matrix.Rank(pows[k])
			if err != nil {
				return nil, jordanErrorf(opRootVectors, err)
			}
			space.Levels = append(space.Levels, RootLevel{
				Order:  k,
				Power:  pows[k],
				Rank:   rank,
				Kernel: kernel,
				New:    notIn(kernel, prev),
			})
			prev = kernel
		}
		out = append(out, space)
	}

	return out, nil
}

func notIn(vs, prev []matrix.Vector) []matrix.Vector {
	var out []matrix.Vector
outer:
	for _, v := range vs {
		for _, w := range prev {
			if v.Equal(w) {
				continue outer
			}
		}
		out = append(out, v)
	}

	return out
}

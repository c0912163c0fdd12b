// SPDX-License-Identifier: MIT

package jordan

import (
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

// Decomposition is A = P·J·P⁻¹.
type Decomposition struct {
	P *matrix.Dense
	J *matrix.Dense
}

// Reference computes a Jordan decomposition independently of BuildChains,
// for use as the verification oracle.
//
// Implementation (per eigenvalue, k from the largest size down to 1):
//   - Stage 1: span = basis of ker(B^(k−1)) plus B^(s−k)·h for every head h
//     of size s > k already chosen;
//   - Stage 2: walk the basis of ker(B^k) and keep a vector whenever it raises
//     rank(span), until Counts[k−1] heads of size k are chosen;
//   - Stage 3: every head h yields columns B^(k−1)h, ..., B·h, h.
//
// Heads chosen this way are independent modulo ker(B^(k−1)) together with the
// images of longer chains, which is exactly the condition for a Jordan basis.
// The column order matches JordanForm, so J equals JordanForm(n, tables).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrReferenceIncomplete.
//
// Complexity: O(Σ_λ Σ_k dim ker(B^k) · rank test).
func Reference(a matrix.Matrix, tables []BlockTable) (Decomposition, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Decomposition{}, jordanErrorf(opReference, err)
	}
	n := a.Rows()

	var cols []matrix.Vector
	for _, t := range tables {
		top := t.MaxSize()
		if top == 0 {
			continue
		}
		pows, err := shiftPowers(a, t.Eigenvalue.Value, top)
		if err != nil {
			return Decomposition{}, jordanErrorf(opReference, err)
		}
		heads, err := referenceHeads(pows, t.Counts, top)
		if err != nil {
			return Decomposition{}, jordanErrorf(opReference,
				fmt.Errorf("λ=%s: %w", t.Eigenvalue.Value.RatString(), err))
		}
		for _, h := range heads {
			chain, err := generateChain(pows[1], h.v, h.size)
			if err != nil {
				return Decomposition{}, jordanErrorf(opReference, err)
			}
			cols = append(cols, Chain{Size: h.size, Vectors: chain}.EigenvectorFirst()...)
		}
	}
	if len(cols) != n {
		return Decomposition{}, jordanErrorf(opReference,
			fmt.Errorf("%d of %d columns: %w", len(cols), n, ErrReferenceIncomplete))
	}

	p, err := matrix.HStack(cols...)
	if err != nil {
		return Decomposition{}, jordanErrorf(opReference, err)
	}
	j, err := matrix.Conjugate(a, p)
	if err != nil {
		return Decomposition{}, jordanErrorf(opReference, fmt.Errorf("%w: %w", ErrReferenceIncomplete, err))
	}

	return Decomposition{P: p, J: j}, nil
}

type head struct {
	v    matrix.Vector
	size int
}

func referenceHeads(pows []*matrix.Dense, counts []int, top int) ([]head, error) {
	var heads []head
	for k := top; k >= 1; k-- {
		need := counts[k-1]
		if need == 0 {
			continue
		}

		span, err := matrix.NullSpace(pows[k-1])
		if err != nil {
			return nil, err
		}
		for _, h := range heads {
			img, err := matrix.MatVec(pows[h.size-k], h.v)
			if err != nil {
				return nil, err
			}
			span = append(span, img)
		}
		spanRank, err := matrix.RankOfColumns(span)
		if err != nil {
			return nil, err
		}

		kernel, err := matrix.NullSpace(pows[k])
		if err != nil {
			return nil, err
		}
		for _, v := range kernel {
			if need == 0 {
				break
			}
			r, err := matrix.RankOfColumns(append(span[:len(span):len(span)], v))
			if err != nil {
				return nil, err
			}
			if r == spanRank {
				continue
			}
			span = append(span, v)
			spanRank = r
			heads = append(heads, head{v: v, size: k})
			need--
		}
		if need > 0 {
			return nil, fmt.Errorf("size %d: %d heads missing: %w", k, need, ErrReferenceIncomplete)
		}
	}

	return heads, nil
}

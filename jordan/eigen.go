// SPDX-License-Identifier: MIT

package jordan

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/jordan/matrix"
	"github.com/katalvlaran/jordan/poly"
)

// Spectrum is the characteristic polynomial of A together with its
// distinct eigenvalues, ascending by value.
type Spectrum struct {
	CharPoly    poly.Polynomial
	Eigenvalues []Eigenvalue
}

// GeometricTotal returns Σ geometric multiplicities, which equals the total
// number of Jordan blocks.
func (s Spectrum) GeometricTotal() int {
	total := 0
	for _, ev := range s.Eigenvalues {
		total += ev.Geometric
	}

	return total
}

// AlgebraicTotal returns Σ algebraic multiplicities (= n for a split spectrum).
func (s Spectrum) AlgebraicTotal() int {
	total := 0
	for _, ev := range s.Eigenvalues {
		total += ev.Algebraic
	}

	return total
}

// ComputeSpectrum finds the eigenvalues of a square matrix with their
// algebraic and geometric multiplicities.
//
// Implementation:
//   - Stage 1: χ_A(λ) = det(λI − A) by Faddeev–LeVerrier (poly.CharPoly).
//   - Stage 2: rational roots with multiplicity (poly.RationalRoots).
//   - Stage 3: geometric multiplicity = n − rank(A − λI).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - ErrNonRationalSpectrum (wrapping poly.ErrNonRationalRoots) when χ_A
//     does not split over Q. The partial spectrum is still returned.
//
// Complexity: O(n^4) for χ_A plus O(d · n^3) for d distinct eigenvalues.
func ComputeSpectrum(a matrix.Matrix) (Spectrum, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Spectrum{}, jordanErrorf(opSpectrum, err)
	}
	cp, err := poly.CharPoly(a)
	if err != nil {
		return Spectrum{}, jordanErrorf(opSpectrum, err)
	}

	roots, rootErr := poly.RationalRoots(cp)
	if rootErr != nil && !errors.Is(rootErr, poly.ErrNonRationalRoots) {
		return Spectrum{}, jordanErrorf(opSpectrum, rootErr)
	}

	n := a.Rows()
	sp := Spectrum{CharPoly: cp, Eigenvalues: make([]Eigenvalue, 0, len(roots))}
	for _, r := range roots {
		geo, err := geometricMultiplicity(a, n, r.Value)
		if err != nil {
			return Spectrum{}, jordanErrorf(opSpectrum, err)
		}
		sp.Eigenvalues = append(sp.Eigenvalues, Eigenvalue{
			Value:     new(big.Rat).Set(r.Value),
			Algebraic: r.Multiplicity,
			Geometric: geo,
		})
	}

	if rootErr != nil {
		return sp, jordanErrorf(opSpectrum, fmt.Errorf("%w: %w", ErrNonRationalSpectrum, rootErr))
	}

	return sp, nil
}

// geometricMultiplicity returns dim ker(A − λI).
func geometricMultiplicity(a matrix.Matrix, n int, lambda *big.Rat) (int, error) {
	b, err := matrix.Shift(a, lambda)
	if err != nil {
		return 0, err
	}
	r, err := matrix.Rank(b)
	if err != nil {
		return 0, err
	}

	return n - r, nil
}

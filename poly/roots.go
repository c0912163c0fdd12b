// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"math/big"
	"sort"
)

const opRoots = "RationalRoots"

// maxSearchCoefficient bounds |a_0| and |a_n| of the integer-scaled
// polynomial; divisors are enumerated by trial division up to the square root.
const maxSearchCoefficient = int64(1) << 40

// Root is a rational root with its multiplicity.
type Root struct {
	Value        *big.Rat
	Multiplicity int
}

// Factorization splits p = lead · Π (x − r_i)^{m_i} · Residual, where the
// residual has no rational roots.
type Factorization struct {
	Roots    []Root     // ascending by value
	Residual Polynomial // monic up to the leading coefficient; degree 0 when fully split
}

// Factor finds every rational root of p with multiplicity.
//
// Implementation:
//   - Stage 1: strip x^k factors (root 0 with multiplicity k).
//   - Stage 2: scale the rest to integer coefficients a_i; collect candidates
//     ±u/v with u | a_0 and v | a_n (rational-root theorem), ascending.
//   - Stage 3: for every candidate divide out (x − r) while it remains a root.
//
// Roots of a quotient are roots of p, so the candidate set is computed once.
//
// Errors:
//   - ErrZeroPolynomial, ErrCoefficientTooLarge.
//
// Complexity:
//   - O(√|a_0| + √|a_n|) divisor search plus O(#candidates · n) evaluations.
func Factor(p Polynomial) (Factorization, error) {
	if p.IsZero() {
		return Factorization{}, polyErrorf(opRoots, ErrZeroPolynomial)
	}

	var roots []Root
	rest := p
	zeroMult := 0
	for rest.Degree() > 0 && rest.coeffs[0].Sign() == 0 {
		rest = Polynomial{coeffs: rest.coeffs[1:]}
		zeroMult++
	}
	if zeroMult > 0 {
		roots = append(roots, Root{Value: new(big.Rat), Multiplicity: zeroMult})
	}
	if rest.Degree() <= 0 {
		return Factorization{Roots: roots, Residual: rest}, nil
	}

	a0, an := integerEnds(rest)
	if !a0.IsInt64() || !an.IsInt64() ||
		abs64(a0.Int64()) > maxSearchCoefficient || abs64(an.Int64()) > maxSearchCoefficient {
		return Factorization{}, polyErrorf(opRoots, ErrCoefficientTooLarge)
	}

	for _, cand := range candidates(abs64(a0.Int64()), abs64(an.Int64())) {
		mult := 0
		for rest.Degree() > 0 && rest.IsRoot(cand) {
			rest, _ = rest.DivLinear(cand)
			mult++
		}
		if mult > 0 {
			roots = append(roots, Root{Value: cand, Multiplicity: mult})
		}
		if rest.Degree() <= 0 {
			break
		}
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].Value.Cmp(roots[j].Value) < 0 })

	return Factorization{Roots: roots, Residual: rest}, nil
}

// RationalRoots returns every root of p with multiplicity, ascending.
// The multiplicities sum to Degree(p).
//
// Errors:
//   - ErrZeroPolynomial, ErrCoefficientTooLarge.
//   - ErrNonRationalRoots when a factor without rational roots remains; the
//     roots found so far are still returned.
func RationalRoots(p Polynomial) ([]Root, error) {
	f, err := Factor(p)
	if err != nil {
		return nil, err
	}
	if f.Residual.Degree() > 0 {
		return f.Roots, polyErrorf(opRoots, ErrNonRationalRoots)
	}

	return f.Roots, nil
}

// integerEnds scales p by the lcm of its denominators and returns the
// integer constant and leading coefficients.
func integerEnds(p Polynomial) (*big.Int, *big.Int) {
	lcm := big.NewInt(1)
	var g big.Int
	for _, c := range p.coeffs {
		d := c.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, &g))
	}
	scale := func(c *big.Rat) *big.Int {
		v := new(big.Int).Mul(c.Num(), lcm)
		return v.Quo(v, c.Denom())
	}

	return scale(p.coeffs[0]), scale(p.coeffs[len(p.coeffs)-1])
}

// candidates returns ±u/v for u | a0, v | an, deduplicated and ascending.
func candidates(a0, an int64) []*big.Rat {
	seen := make(map[string]struct{})
	var out []*big.Rat
	for _, u := range divisors64(a0) {
		for _, v := range divisors64(an) {
			for _, sign := range []int64{1, -1} {
				r := big.NewRat(sign*u, v)
				key := r.RatString()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, r)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cmp(out[j]) < 0 })

	return out
}

// divisors64 returns the positive divisors of n (n > 0) by trial division.
func divisors64(n int64) []int64 {
	if n <= 0 {
		return []int64{1}
	}
	out := make([]int64, 0, 16)
	limit := int64(math.Sqrt(float64(n)))
	for limit*limit > n {
		limit--
	}
	for (limit+1)*(limit+1) <= n {
		limit++
	}
	for i := int64(1); i <= limit; i++ {
		if n%i != 0 {
			continue
		}
		out = append(out, i)
		if i != n/i {
			out = append(out, n/i)
		}
	}

	return out
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

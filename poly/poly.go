// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
	"strconv"
	"strings"
)

// Polynomial is p(x) = Σ coeffs[k]·x^k with exact rational coefficients.
// The value is immutable: every operation returns a fresh Polynomial.
// Trailing zero coefficients are trimmed, so Degree is len(coeffs)-1 and the
// zero polynomial has no coefficients (Degree -1).
type Polynomial struct {
	coeffs []*big.Rat // ascending powers, copies owned by the polynomial
}

// New builds a polynomial from ascending coefficients (copied).
// Errors: ErrNilCoefficient.
func New(coeffs ...*big.Rat) (Polynomial, error) {
	cs := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			return Polynomial{}, polyErrorf("New", ErrNilCoefficient)
		}
		cs[i] = new(big.Rat).Set(c)
	}

	return Polynomial{coeffs: trim(cs)}, nil
}

// FromInts builds a polynomial from ascending integer coefficients.
func FromInts(coeffs ...int64) Polynomial {
	cs := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		cs[i] = new(big.Rat).SetInt64(c)
	}

	return Polynomial{coeffs: trim(cs)}
}

func trim(cs []*big.Rat) []*big.Rat {
	n := len(cs)
	for n > 0 && cs[n-1].Sign() == 0 {
		n--
	}

	return cs[:n]
}

// Degree returns the degree; -1 for the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coeff returns a copy of the coefficient of x^k (zero beyond the degree).
func (p Polynomial) Coeff(k int) *big.Rat {
	if k < 0 || k >= len(p.coeffs) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.coeffs[k])
}

// Coeffs returns copies of the ascending coefficients.
func (p Polynomial) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}

// Eval returns p(x) by Horner's rule.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[k])
	}

	return acc
}

// IsRoot reports p(x) == 0.
func (p Polynomial) IsRoot(x *big.Rat) bool { return p.Eval(x).Sign() == 0 }

// DivLinear divides p by (x − r) with synthetic division and returns the
// quotient and the remainder (which equals p(r)).
func (p Polynomial) DivLinear(r *big.Rat) (Polynomial, *big.Rat) {
	d := p.Degree()
	if d <= 0 {
		return Polynomial{}, p.Coeff(0)
	}
	q := make([]*big.Rat, d)
	acc := new(big.Rat)
	var tmp big.Rat
	for k := d; k >= 1; k-- {
		tmp.Mul(acc, r)
		acc = new(big.Rat).Add(&tmp, p.coeffs[k])
		q[k-1] = acc
	}
	rem := new(big.Rat).Mul(acc, r)
	rem.Add(rem, p.coeffs[0])

	return Polynomial{coeffs: trim(q)}, rem
}

// String renders p in descending powers of λ, e.g. "λ^3 - 6λ^2 + 12λ - 8".
func (p Polynomial) String() string { return p.Format("λ") }

// Format renders p in descending powers of the given variable name.
func (p Polynomial) Format(variable string) string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for k := len(p.coeffs) - 1; k >= 0; k-- {
		c := p.coeffs[k]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Rat).Abs(c)
		switch {
		case first && c.Sign() < 0:
			sb.WriteString("-")
		case !first && c.Sign() < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false

		unit := abs.Cmp(big.NewRat(1, 1)) == 0
		switch {
		case k == 0:
			sb.WriteString(abs.RatString())
		case unit:
			// coefficient 1 is implicit
		case abs.IsInt():
			sb.WriteString(abs.RatString())
		default:
			sb.WriteString("(" + abs.RatString() + ")")
		}
		switch {
		case k == 1:
			sb.WriteString(variable)
		case k > 1:
			sb.WriteString(variable + "^" + strconv.Itoa(k))
		}
	}

	return sb.String()
}

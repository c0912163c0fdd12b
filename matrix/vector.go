// SPDX-License-Identifier: MIT

package matrix

import (
	"math/big"
	"strings"
)

// NewVector returns a zero vector of length n (n > 0).
func NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v, nil
}

// VectorFromInts builds a vector from integer entries.
func VectorFromInts(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}

	return v
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// Clone returns a deep copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Set(v[i])
	}

	return out
}

// IsZero reports whether every entry is zero. An empty vector is zero.
func (v Vector) IsZero() bool {
	for i := range v {
		if v[i].Sign() != 0 {
			return false
		}
	}

	return true
}

// Equal reports exact entry-wise equality. Vectors of different lengths
// are never equal. Since big.Rat values are kept normalized this is the
// "simplified equality" of a computer-algebra system.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}

	return true
}

// Scaled returns alpha·v as a fresh vector.
func (v Vector) Scaled(alpha *big.Rat) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Mul(alpha, v[i])
	}

	return out
}

// String renders the vector as a transposed column: [1, -1/2, 0]ᵀ.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v[i].RatString()
	}

	return "[" + strings.Join(parts, ", ") + "]ᵀ"
}

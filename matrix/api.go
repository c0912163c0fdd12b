// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Similarity transforms P⁻¹·A·P are available as Conjugate.

package matrix

const opConjugate = "Conjugate"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n <= 0.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return identity(n), nil
}

// CloneMatrix returns a structural clone of m.
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// DenseCopy returns an independent *Dense copy of m.
// Errors: ErrNilMatrix, ErrNilEntry (interface fallback only).
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("DenseCopy", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}

	return asDense(m)
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra aliases ----------

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// Kernel is an alias for NullSpace.
func Kernel(m Matrix) ([]Vector, error) { return NullSpace(m) }

// ---------- Convenience facades (compositions only) ----------

// Conjugate returns P⁻¹·A·P. Deterministic composition: Inverse → Mul → Mul.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular (P not invertible).
//
// Complexity: O(n^3).
func Conjugate(a, p Matrix) (*Dense, error) {
	pInv, err := Inverse(p)
	if err != nil {
		return nil, matrixErrorf(opConjugate, err)
	}
	left, err := Mul(pInv, a)
	if err != nil {
		return nil, matrixErrorf(opConjugate, err)
	}
	res, err := Mul(left, p)
	if err != nil {
		return nil, matrixErrorf(opConjugate, err)
	}

	return res, nil
}

// IsInvertible reports whether a square matrix has full rank.
// Errors: ErrNilMatrix, ErrNonSquare.
func IsInvertible(m Matrix) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf("IsInvertible", err)
	}
	r, err := Rank(m)
	if err != nil {
		return false, err
	}

	return r == m.Rows(), nil
}

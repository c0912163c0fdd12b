// SPDX-License-Identifier: MIT
// Package matrix provides universal exact operations on any Matrix
// implementation: element-wise addition and subtraction, matrix product,
// powers, transpose, scalar scaling, shifts A − λI and inversion. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used across the module.
//   - Define operation tags for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//   - Arithmetic is exact (math/big.Rat), so there is no tolerance anywhere.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opPow       = "Pow"
	opShift     = "Shift"
	opInverse   = "Inverse"
	opEqual     = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Behavior highlights:
//   - Preserves the underlying sentinel for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Mul", "Inverse").
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through the interface in fixed i→j order.
// Fast path: O(1). Fallback: O(r*c).
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v *big.Rat
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.at(i, j).Set(v)
		}
	}

	return out, nil
}

// addSub computes element-wise out = a ± b.
// Internal helper for Add/Sub to share validation, allocation and loops.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: normalize operands to *Dense and walk the flat buffers 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, negate bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDenseUnchecked(da.r, da.c)
	for idx := range res.data {
		if negate {
			res.data[idx].Sub(&da.data[idx], &db.data[idx])
		} else {
			res.data[idx].Add(&da.data[idx], &db.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Mul computes the matrix product C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: classic i→k→j loop; zero a[i,k] rows are skipped since
//     Jordan inputs are sparse and big.Rat products are comparatively costly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop order; exact arithmetic makes the order irrelevant to the value.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newDenseUnchecked(da.r, db.c)
	var (
		i, k, j int
		aik     *big.Rat
		tmp     big.Rat // scratch product
	)
	for i = 0; i < da.r; i++ {
		for k = 0; k < da.c; k++ {
			aik = da.at(i, k)
			if aik.Sign() == 0 {
				continue
			}
			for j = 0; j < db.c; j++ {
				tmp.Mul(aik, db.at(k, j))
				res.at(i, j).Add(res.at(i, j), &tmp)
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDenseUnchecked(d.c, d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.at(j, i).Set(d.at(i, j))
		}
	}

	return res, nil
}

// Scale returns alpha·m as a fresh Dense.
// Errors: ErrNilMatrix, ErrNilEntry (alpha == nil).
// Complexity: O(r*c).
func Scale(m Matrix, alpha *big.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if alpha == nil {
		return nil, matrixErrorf(opScale, ErrNilEntry)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDenseUnchecked(d.r, d.c)
	for idx := range res.data {
		res.data[idx].Mul(alpha, &d.data[idx])
	}

	return res, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols), ErrNilEntry.
// Complexity: O(r*c).
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make(Vector, d.r)
	var tmp big.Rat
	for i := 0; i < d.r; i++ {
		y[i] = new(big.Rat)
		for j := 0; j < d.c; j++ {
			if x[j].Sign() == 0 {
				continue
			}
			tmp.Mul(d.at(i, j), x[j])
			y[i].Add(y[i], &tmp)
		}
	}

	return y, nil
}

// Pow returns m^k for k ≥ 0 (m^0 = I) by binary exponentiation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNegativePower.
//
// Complexity:
//   - Time O(n^3 · log k), Space O(n^2).
//
// AI-Hints:
//   - Rank sequences rank(B^0), rank(B^1), ... are cheaper built by repeated
//     Mul of the previous power; Pow is for one-off powers.
func Pow(m Matrix, k int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativePower)
	}
	base, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	result := identity(base.r)
	base = base.clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return result, nil
}

// Shift returns B = m − λ·I, the characteristic shift used for every
// rank and kernel computation around an eigenvalue λ.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNilEntry.
// Complexity: O(n^2).
func Shift(m Matrix, lambda *big.Rat) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	if lambda == nil {
		return nil, matrixErrorf(opShift, ErrNilEntry)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opShift, err)
	}
	res := d.clone()
	for i := 0; i < res.r; i++ {
		res.at(i, i).Sub(res.at(i, i), lambda)
	}

	return res, nil
}

// Inverse returns A⁻¹ via Gauss–Jordan elimination on [A | I].
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); build the augmented n×2n buffer.
//   - Stage 2: For each column pick the first non-zero pivot at or below the
//     diagonal (exact arithmetic needs no magnitude pivoting), swap, normalize,
//     eliminate above and below.
//   - Stage 3: Copy out the right half.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (no pivot in some column).
//
// Determinism:
//   - First-non-zero pivot rule; fixed row order.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := d.r
	aug := newDenseUnchecked(n, 2*n)
	var i, j, col, p int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aug.at(i, j).Set(d.at(i, j))
		}
		aug.at(i, n+i).SetInt64(1)
	}

	var f, tmp, pivotInv big.Rat
	for col = 0; col < n; col++ {
		// Find the pivot row.
		p = -1
		for i = col; i < n; i++ {
			if aug.at(i, col).Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
		aug.swapRows(p, col)

		// Normalize the pivot row.
		pivotInv.Inv(aug.at(col, col))
		for j = col; j < 2*n; j++ {
			aug.at(col, j).Mul(aug.at(col, j), &pivotInv)
		}

		// Eliminate the column everywhere else.
		for i = 0; i < n; i++ {
			if i == col || aug.at(i, col).Sign() == 0 {
				continue
			}
			f.Set(aug.at(i, col))
			for j = col; j < 2*n; j++ {
				tmp.Mul(&f, aug.at(col, j))
				aug.at(i, j).Sub(aug.at(i, j), &tmp)
			}
		}
	}

	inv := newDenseUnchecked(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			inv.at(i, j).Set(aug.at(i, n+j))
		}
	}

	return inv, nil
}

// Equal reports exact equality of shape and entries.
// Errors: ErrNilMatrix. A shape difference is (false, nil), not an error.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range da.data {
		if da.data[idx].Cmp(&db.data[idx]) != 0 {
			return false, nil
		}
	}

	return true, nil
}

// swapRows exchanges rows p and q in place.
func (m *Dense) swapRows(p, q int) {
	if p == q {
		return
	}
	var tmp big.Rat
	for j := 0; j < m.c; j++ {
		tmp.Set(m.at(p, j))
		m.at(p, j).Set(m.at(q, j))
		m.at(q, j).Set(&tmp)
	}
}

// identity allocates I_n; n > 0 is guaranteed by callers.
func identity(n int) *Dense {
	I := newDenseUnchecked(n, n)
	for i := 0; i < n; i++ {
		I.at(i, i).SetInt64(1)
	}

	return I
}

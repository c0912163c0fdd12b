// SPDX-License-Identifier: MIT

package jordan

import (
	"fmt"

	"github.com/katalvlaran/jordan/matrix"
)

// Verification is the outcome of the final check.
type Verification struct {
	// Invertible reports whether the manual P is square and non-singular.
	Invertible bool
	// Manual is P⁻¹·A·P for the manual P; nil when P is not invertible.
	Manual *matrix.Dense
	// Reference is P_ref⁻¹·A·P_ref.
	Reference *matrix.Dense
	// Equal reports Manual == Reference, entry by entry and exactly.
	Equal bool
}

// Verify compares the manual transition matrix against the reference one:
// the check passes iff P is invertible and P⁻¹AP == P_ref⁻¹AP_ref.
// A singular or non-square P is a failed check, not an error.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (A).
//   - ErrReferenceIncomplete when P_ref is singular.
func Verify(a, p, pRef matrix.Matrix) (Verification, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return Verification{}, jordanErrorf(opVerify, err)
	}
	if err := matrix.ValidateNotNil(p); err != nil {
		return Verification{}, jordanErrorf(opVerify, err)
	}
	ref, err := matrix.Conjugate(a, pRef)
	if err != nil {
		return Verification{}, jordanErrorf(opVerify, fmt.Errorf("%w: %w", ErrReferenceIncomplete, err))
	}
	out := Verification{Reference: ref}

	if p.Rows() != a.Rows() || p.Cols() != a.Rows() {
		return out, nil
	}
	if out.Invertible, err = matrix.IsInvertible(p); err != nil {
		return Verification{}, jordanErrorf(opVerify, err)
	}
	if !out.Invertible {
		return out, nil
	}
	if out.Manual, err = matrix.Conjugate(a, p); err != nil {
		return Verification{}, jordanErrorf(opVerify, err)
	}
	if out.Equal, err = matrix.Equal(out.Manual, ref); err != nil {
		return Verification{}, jordanErrorf(opVerify, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroPolynomial is returned when roots of the zero polynomial are requested.
	ErrZeroPolynomial = errors.New("poly: zero polynomial")

	// ErrNonRationalRoots signals a factor of positive degree without rational roots.
	ErrNonRationalRoots = errors.New("poly: polynomial has non-rational roots")

	// ErrCoefficientTooLarge signals that divisor enumeration for the
	// rational-root search would not terminate in reasonable time.
	ErrCoefficientTooLarge = errors.New("poly: coefficient too large for rational-root search")

	// ErrNilCoefficient signals a nil *big.Rat passed to New.
	ErrNilCoefficient = errors.New("poly: nil coefficient")
)

// polyErrorf wraps err with an operation tag, preserving it for errors.Is.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

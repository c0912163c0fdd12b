// SPDX-License-Identifier: MIT
// Package jordan: sentinel error set.
// Every message is prefixed with "jordan: ..."; stages wrap with
// jordanErrorf(op, err) and callers match with errors.Is.

package jordan

import (
	"errors"
	"fmt"
)

var (
	// ErrNonRationalSpectrum signals that the characteristic polynomial does
	// not split over the rationals; the walkthrough supports rational spectra only.
	ErrNonRationalSpectrum = errors.New("jordan: spectrum is not rational")

	// ErrNegativeBlockCount signals a negative value of the rank formula,
	// which is impossible for a true eigenvalue (input-invariant violation).
	ErrNegativeBlockCount = errors.New("jordan: negative Jordan block count")

	// ErrBlockCountMismatch signals that block sizes do not add up to the
	// algebraic multiplicity or block counts to the geometric multiplicity.
	ErrBlockCountMismatch = errors.New("jordan: block counts disagree with multiplicities")

	// ErrNoBlockInfo is returned when chains are requested before block counting.
	ErrNoBlockInfo = errors.New("jordan: block information not computed")

	// ErrNoChains is returned when verification is requested before chains exist,
	// or when no chain at all could be built.
	ErrNoChains = errors.New("jordan: no Jordan chains built")

	// ErrChainNotTerminal signals a chain whose last vector is not an eigenvector.
	ErrChainNotTerminal = errors.New("jordan: chain does not end in an eigenvector")

	// ErrNoCandidate marks a block for which no admissible root vector was
	// found; the block is skipped and the transition matrix stays under-filled.
	ErrNoCandidate = errors.New("jordan: no admissible root vector for block")

	// ErrUnderfilled signals a transition matrix with fewer than n columns.
	ErrUnderfilled = errors.New("jordan: transition matrix under-filled")

	// ErrReferenceIncomplete signals that the reference decomposition could not
	// find enough independent root vectors (inconsistent input).
	ErrReferenceIncomplete = errors.New("jordan: reference decomposition incomplete")

	// ErrUnknownIndependence signals an unknown independence policy name.
	ErrUnknownIndependence = errors.New("jordan: unknown independence policy")
)

// Operation tags.
const (
	opSpectrum    = "ComputeSpectrum"
	opCountBlocks = "CountBlocks"
	opCellCount   = "CellQuantity"
	opRootVectors = "RootVectors"
	opBuildChains = "BuildChains"
	opTransition  = "TransitionMatrix"
	opJordanForm  = "JordanForm"
	opReference   = "Reference"
	opVerify      = "Verify"
	opSolver      = "Solver"
)

// jordanErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func jordanErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

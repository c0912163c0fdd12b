// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense implementation and kernels.
// This file intentionally contains ONLY domain-facing types (the Matrix
// interface and the Vector column type). Errors live in errors.go.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Contract:
//   - At returns a fresh copy; mutating it never changes the matrix.
//   - Set copies v; the caller keeps ownership of its argument.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange for invalid indices and ErrNilEntry for v == nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Vector is a column vector of exact rationals.
// Entries are never nil for vectors produced by this package.
type Vector []*big.Rat

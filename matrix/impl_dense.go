// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of big.Rat with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never leak internal pointers: At copies out, Set copies in.
//
// AI-Hints:
//   - Kernels in this package read the flat data slice directly; external
//     callers go through At/Set or Column.
//   - Use FromInts / FromStrings for literals in tests and catalogues.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Column: O(r).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero big.Rat is 0, so a fresh buffer is the zero matrix without any
// explicit initialization.
type Dense struct {
	r, c int       // row and column counts (> 0 for public constructors)
	data []big.Rat // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the zero-valued buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]big.Rat, rows*cols)}, nil
}

// newDenseUnchecked allocates without validation; callers guarantee r,c > 0.
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]big.Rat, rows*cols)}
}

// FromRows builds a Dense from row slices of rationals (copied).
// MAIN DESCRIPTION:
//   - Literal constructor used by parsers, tests and catalogues.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrRaggedRows (rows of unequal length).
//   - ErrNilEntry (a nil *big.Rat).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := newDenseUnchecked(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] == nil {
				return nil, denseErrorf(ctxSet, i, j, ErrNilEntry)
			}
			m.data[i*c+j].Set(rows[i][j])
		}
	}

	return m, nil
}

// FromInts builds a Dense from integer rows. Handy for literals in tests
// and in the example catalogue.
// Errors: same as FromRows minus ErrNilEntry.
// Complexity: O(r*c).
func FromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := newDenseUnchecked(r, c)
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("FromInts: row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRaggedRows)
		}
		for j := 0; j < c; j++ {
			m.data[i*c+j].SetInt64(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped
// with the caller's method tag and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// at returns the internal pointer to (i,j). Read-only; no bounds check.
func (m *Dense) at(i, j int) *big.Rat { return &m.data[i*m.c+j] }

// At retrieves a copy of the element at (row, col).
// Errors: ErrOutOfRange (wrapped with Dense.At(row,col)).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(&m.data[idx]), nil
}

// Set assigns a copy of v at (row, col).
// Errors: ErrOutOfRange, ErrNilEntry.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt is a convenience for Set(row, col, big.NewRat(v, 1)).
func (m *Dense) SetInt(row, col int, v int64) error {
	return m.Set(row, col, new(big.Rat).SetInt64(v))
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	out := newDenseUnchecked(m.r, m.c)
	for idx := range m.data {
		out.data[idx].Set(&m.data[idx])
	}

	return out
}

// Column returns a copy of column j as a Vector.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense) Column(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	v := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		v[i] = new(big.Rat).Set(m.at(i, j))
	}

	return v, nil
}

// Columns returns copies of all columns in order.
// Complexity: O(r*c).
func (m *Dense) Columns() []Vector {
	out := make([]Vector, m.c)
	for j := 0; j < m.c; j++ {
		out[j], _ = m.Column(j) // j is always in range
	}

	return out
}

// Row returns a copy of row i as a slice.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) ([]*big.Rat, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	row := make([]*big.Rat, m.c)
	for j := 0; j < m.c; j++ {
		row[j] = new(big.Rat).Set(m.at(i, j))
	}

	return row, nil
}

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	for idx := range m.data {
		if m.data[idx].Sign() != 0 {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Entries use big.Rat.RatString ("3", "-1/2").
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.at(i, j).RatString())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

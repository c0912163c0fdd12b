// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseRat parses a rational literal: an integer ("-3"), a fraction
// ("7/2") or a finite decimal ("0.25"). Surrounding spaces are ignored.
// Errors: ErrBadEntry (wrapped with the offending text).
func ParseRat(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseRat(%q): %w", s, ErrBadEntry)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("ParseRat(%q): %w", s, ErrBadEntry)
	}

	return r, nil
}

// FromStrings builds a Dense from rows of rational literals.
// Errors: ErrInvalidDimensions, ErrRaggedRows, ErrBadEntry.
// Complexity: O(r*c) parses.
func FromStrings(rows [][]string) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	parsed := make([][]*big.Rat, len(rows))
	for i := range rows {
		parsed[i] = make([]*big.Rat, len(rows[i]))
		for j := range rows[i] {
			v, err := ParseRat(rows[i][j])
			if err != nil {
				return nil, fmt.Errorf("FromStrings: entry (%d,%d): %w", i, j, err)
			}
			parsed[i][j] = v
		}
	}

	return FromRows(parsed)
}

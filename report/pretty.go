// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/jordan/matrix"
)

// Bracket glyphs for multi-row matrices.
const (
	glyphTopLeft     = "⎡"
	glyphTopRight    = "⎤"
	glyphMidLeft     = "⎢"
	glyphMidRight    = "⎥"
	glyphBottomLeft  = "⎣"
	glyphBottomRight = "⎦"
	cellGap          = "  "
)

// FormatMatrix renders m with right-aligned columns and tall brackets:
//
//	⎡-2  1  1/2⎤
//	⎢-4  0    1⎥
//	⎣-2  0    0⎦
//
// A single row uses plain square brackets. Every line ends with '\n'.
func FormatMatrix(m *matrix.Dense) string {
	if m == nil || m.Rows() == 0 {
		return "[]\n"
	}
	r, c := m.Shape()

	cells := make([][]string, r)
	widths := make([]int, c)
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		for j := 0; j < c; j++ {
			v, _ := m.At(i, j)
			s := v.RatString()
			cells[i][j] = s
			if n := utf8.RuneCountInString(s); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var sb strings.Builder
	for i := 0; i < r; i++ {
		left, right := glyphMidLeft, glyphMidRight
		switch {
		case r == 1:
			left, right = "[", "]"
		case i == 0:
			left, right = glyphTopLeft, glyphTopRight
		case i == r-1:
			left, right = glyphBottomLeft, glyphBottomRight
		}
		sb.WriteString(left)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(cellGap)
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cells[i][j])))
			sb.WriteString(cells[i][j])
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// formatVectors joins vectors as "v₁, v₂, ...".
func formatVectors(vs []matrix.Vector) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}

	return strings.Join(parts, ", ")
}

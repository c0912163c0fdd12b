package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

func TestParseRat(t *testing.T) {
	for in, want := range map[string]string{
		"3":      "3",
		" -7/14": "-1/2",
		"0.25":   "1/4",
		"-0":     "0",
	} {
		require.Equal(t, want, rat(t, in).RatString(), "input %q", in)
	}

	for _, bad := range []string{"", "  ", "x", "1/0", "1//2"} {
		_, err := matrix.ParseRat(bad)
		require.ErrorIs(t, err, matrix.ErrBadEntry, "input %q", bad)
	}
}

func TestFromStrings_Errors(t *testing.T) {
	_, err := matrix.FromStrings([][]string{{"1", "a"}})
	require.ErrorIs(t, err, matrix.ErrBadEntry)

	_, err = matrix.FromStrings([][]string{{"1", "2"}, {"3"}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.FromStrings([][]string{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

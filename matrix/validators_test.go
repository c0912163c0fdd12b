package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jordan/matrix"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 2, 2)
	wide := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(sq, nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateMulCompatible(sq, wide))
	require.ErrorIs(t, matrix.ValidateMulCompatible(wide, sq), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen(matrix.VectorFromInts(1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.VectorFromInts(1), 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(matrix.Vector{big.NewRat(1, 1), nil}, 2), matrix.ErrNilEntry)
}

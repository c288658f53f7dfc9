package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil[int](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense(t, 1, 1)))
}

// TestValidateMulCompatible checks the priority nil → dimension mismatch.
func TestValidateMulCompatible(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 3, 4)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)

	// Empty inner dimension is still compatible.
	require.NoError(t, matrix.ValidateMulCompatible(mustDense(t, 2, 0), mustDense(t, 0, 5)))
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/stretchr/testify/require"
)

// hiddenDense wraps a Matrix to force the interface fallback path in MatVec.
type hiddenDense struct{ matrix.Matrix }

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	x := []float64{1, 1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 11}, y)

	// Same answer through the generic At path.
	y2, err := matrix.MatVec(hiddenDense{m}, x)
	require.NoError(t, err)
	require.Equal(t, y, y2)
}

func TestMatVec_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := mustRows(t, [][]float64{{1, 2}})
	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

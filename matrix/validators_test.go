// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(mustRows(t, [][]float64{{1, 2}})), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSquareNonNil(mustRows(t, [][]float64{{1}})))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateReciprocal walks the composite order NotNil → Square → Positive → Reciprocal.
func TestValidateReciprocal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		eps     float64
		wantErr error
	}{
		{"nil", nil, matrix.DefaultEpsilon, matrix.ErrNilMatrix},
		{"non-square", mustRows(t, [][]float64{{1, 2, 3}, {0.5, 1, 1}}), matrix.DefaultEpsilon, matrix.ErrDimensionMismatch},
		{"bad eps", mustRows(t, [][]float64{{1}}), math.NaN(), matrix.ErrNaNInf},
		{"zero entry", mustRows(t, [][]float64{{1, 0}, {1, 1}}), matrix.DefaultEpsilon, matrix.ErrNonPositive},
		{"diagonal not one", mustRows(t, [][]float64{{2, 1}, {1, 1}}), matrix.DefaultEpsilon, matrix.ErrNotReciprocal},
		{"broken mirror", mustRows(t, [][]float64{{1, 3}, {3, 1}}), matrix.DefaultEpsilon, matrix.ErrNotReciprocal},
		{"valid thirds", mustRows(t, [][]float64{{1, 3, 1}, {1.0 / 3, 1, 1.0 / 3}, {1, 3, 1}}), matrix.DefaultEpsilon, nil},
		{"single item", mustRows(t, [][]float64{{1}}), 0, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateReciprocal(tc.m, tc.eps)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"zero cols", 3, 0},
		{"negative", -1, 2},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewFilled(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFilled(2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1}, {1, 1}}, m.ToRows())

	_, err = matrix.NewFilled(2, 2, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 7))

	orig, _ := m.At(0, 1)
	require.Equal(t, 0.0, orig)
	got, _ := cp.At(0, 1)
	require.Equal(t, 7.0, got)
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 3}, {1.0 / 3, 1}})
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, "[1, 3]\n[0.3333333333333333, 1]\n", m.String())

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

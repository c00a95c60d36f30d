// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opMatVec = "MatVec"

// matrixErrorf prefixes err with an operation tag; errors.Is still matches
// the wrapped sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec returns y = m·x. The consistency scorer uses it for
// λmax = mean_i (A·w)[i] / w[i].
//
// Contract: m and x non-nil, len(x) == m.Cols(); neither is modified.
// *Dense is read straight from its buffer, other implementations via At.
// Rows are accumulated left to right, so equal inputs give equal floats.
//
// Complexity: O(r*c) time, O(r) extra space.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.Rows())
	if d, ok := m.(*Dense); ok {
		for i := range y {
			row := d.data[i*d.c : (i+1)*d.c]
			acc := ZeroSum
			for j, a := range row {
				acc += a * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	for i := range y {
		acc := ZeroSum
		for j := range x {
			a, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += a * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

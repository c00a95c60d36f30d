// SPDX-License-Identifier: MIT

package priority

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ahp/matrix"
)

// FromEigenvector computes the principal right eigenvector of m.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square, positive) and copy it into a
//     gonum dense matrix; n == 1 short-circuits to [1].
//   - Stage 2: factorize with mat.Eigen (right vectors). Comparison matrices
//     are not symmetric, so the general solver is required.
//   - Stage 3: select the eigenvalue with the largest real part (first one
//     wins on ties), take the real part of its eigenvector and orient it so
//     that its sum is positive.
//   - Stage 4: normalize to sum 1 through Normalize.
//
// Errors:
//   - input sentinels as FromGeometricMean, ErrNoConvergence, ErrZeroSum,
//     ErrNegativeWeight.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func FromEigenvector(m matrix.Matrix) (Vector, error) {
	if err := validateInput(m); err != nil {
		return Vector{}, fmt.Errorf("%s: %w", opEigenvector, err)
	}

	n := m.Rows()
	if n == 1 {
		return Vector{Method: Eigenvector, Weights: []float64{1}, Principal: []float64{1}, Lambda: 1}, nil
	}

	data := make([]float64, 0, n*n)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j)
			data = append(data, v)
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenRight); !ok {
		return Vector{}, fmt.Errorf("%s: %w", opEigenvector, ErrNoConvergence)
	}

	values := eig.Values(nil)
	best := 0
	for i = 1; i < len(values); i++ {
		if real(values[i]) > real(values[best]) {
			best = i
		}
	}

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	principal := make([]float64, n)
	sum := 0.0
	for i = 0; i < n; i++ {
		principal[i] = real(vectors.At(i, best))
		sum += principal[i]
	}
	if sum < 0 {
		for i = range principal {
			principal[i] = -principal[i]
		}
	}

	weights, err := Normalize(principal)
	if err != nil {
		return Vector{}, fmt.Errorf("%s: %w", opEigenvector, err)
	}

	return Vector{
		Method:    Eigenvector,
		Weights:   weights,
		Principal: principal,
		Lambda:    real(values[best]),
	}, nil
}

// SPDX-License-Identifier: MIT

package priority

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/ahp/matrix"
)

// NoiseTolerance is the largest negative magnitude a normalized weight may
// have before it is treated as an error instead of floating-point noise.
const NoiseTolerance = 1e-10

// Operation tags for error wrapping.
const (
	opGeometricMean = "GeometricMean"
	opEigenvector   = "Eigenvector"
	opNormalize     = "Normalize"
)

// Method selects the priority extraction algorithm.
type Method int

const (
	// GeometricMean is the row geometric-mean approximation (default).
	GeometricMean Method = iota

	// Eigenvector is the principal right eigenvector method.
	Eigenvector
)

// DefaultMethod is used when no method is configured.
const DefaultMethod = GeometricMean

// String returns the config spelling of the method.
func (m Method) String() string {
	switch m {
	case GeometricMean:
		return "geometric-mean"
	case Eigenvector:
		return "eigenvector"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a config spelling to a Method (case-insensitive).
// The empty string selects DefaultMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultMethod, nil
	case "geometric-mean", "geometric", "gm":
		return GeometricMean, nil
	case "eigenvector", "eigen", "ev":
		return Eigenvector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Vector is the output of a priority method.
type Vector struct {
	// Method that produced the vector.
	Method Method

	// Weights are non-negative and sum to 1, aligned with the matrix items.
	Weights []float64

	// Principal is the unnormalized vector (row geometric means, or the
	// positively oriented eigenvector) consumed by consistency.Score.
	Principal []float64

	// Lambda is the selected eigenvalue's real part (Eigenvector only; 0 otherwise).
	Lambda float64
}

// Derive runs the selected method on m.
func Derive(m matrix.Matrix, method Method) (Vector, error) {
	switch method {
	case GeometricMean:
		return FromGeometricMean(m)
	case Eigenvector:
		return FromEigenvector(m)
	default:
		return Vector{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// FromGeometricMean computes principal[i] = (Π_j a[i][j])^(1/n) and the
// normalized weights. The product is taken in log space, so large matrices
// do not overflow.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square),
//     matrix.ErrNonPositive, matrix.ErrNaNInf, ErrZeroSum, ErrNegativeWeight.
//
// Complexity:
//   - Time O(n²), Space O(n).
func FromGeometricMean(m matrix.Matrix) (Vector, error) {
	if err := validateInput(m); err != nil {
		return Vector{}, fmt.Errorf("%s: %w", opGeometricMean, err)
	}

	n := m.Rows()
	inv := 1 / float64(n)
	principal := make([]float64, n)
	var (
		i, j   int
		logSum float64
		v      float64
	)
	for i = 0; i < n; i++ {
		logSum = 0
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // shape validated above
			logSum += math.Log(v)
		}
		principal[i] = math.Exp(logSum * inv)
	}

	weights, err := Normalize(principal)
	if err != nil {
		return Vector{}, fmt.Errorf("%s: %w", opGeometricMean, err)
	}

	return Vector{Method: GeometricMean, Weights: weights, Principal: principal}, nil
}

// Normalize divides v by its sum and returns a fresh slice. Entries in
// [-NoiseTolerance, 0) after division are clamped to 0 and the vector is
// rescaled; v itself is not modified.
//
// Errors:
//   - ErrNonFinite for NaN/Inf input, ErrZeroSum for a zero denominator
//     (including empty input), ErrNegativeWeight for real negative entries.
func Normalize(v []float64) ([]float64, error) {
	sum := 0.0
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%s: %w", opNormalize, ErrNonFinite)
		}
		sum += x
	}
	if sum == 0 {
		return nil, fmt.Errorf("%s: %w", opNormalize, ErrZeroSum)
	}

	out := make([]float64, len(v))
	clamped := false
	for i, x := range v {
		w := x / sum
		if w < 0 {
			if w < -NoiseTolerance {
				return nil, fmt.Errorf("%s: index %d = %g: %w", opNormalize, i, w, ErrNegativeWeight)
			}
			w = 0
			clamped = true
		}
		out[i] = w
	}
	if clamped {
		total := 0.0
		for _, w := range out {
			total += w
		}
		if total == 0 {
			return nil, fmt.Errorf("%s: %w", opNormalize, ErrZeroSum)
		}
		for i := range out {
			out[i] /= total
		}
	}

	return out, nil
}

// validateInput runs the shared checks: non-nil, square, strictly positive.
func validateInput(m matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return err
	}

	return matrix.ValidatePositive(m)
}

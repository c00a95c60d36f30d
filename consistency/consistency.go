// SPDX-License-Identifier: MIT

package consistency

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ahp/matrix"
)

const opScore = "Score"

// Status thresholds on the consistency ratio.
const (
	ExcellentBelow  = 0.10
	AcceptableBelow = 0.20
)

// FallbackRandomIndex is used for matrices larger than the Random Index table.
const FallbackRandomIndex = 1.49

// ciNoise absorbs rounding that pushes λmax a hair below n on perfectly
// consistent matrices.
const ciNoise = 1e-12

// randomIndex[n-1] is Saaty's Random Index for an n×n matrix.
var randomIndex = [...]float64{
	0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49,
	1.51, 1.48, 1.56, 1.57, 1.59,
}

// RandomIndex returns RI(n). n < 1 yields 0.
func RandomIndex(n int) float64 {
	switch {
	case n < 1:
		return 0
	case n > len(randomIndex):
		return FallbackRandomIndex
	default:
		return randomIndex[n-1]
	}
}

// Status classifies a consistency ratio.
type Status int

const (
	Excellent Status = iota
	Acceptable
	NeedsRevision
)

// String returns the report label of the status.
func (s Status) String() string {
	switch s {
	case Excellent:
		return "excellent"
	case Acceptable:
		return "acceptable"
	case NeedsRevision:
		return "needs revision"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText renders the status label for text encoders.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Classify maps cr to its Status band. NaN is NeedsRevision.
func Classify(cr float64) Status {
	switch {
	case cr < ExcellentBelow:
		return Excellent
	case cr < AcceptableBelow:
		return Acceptable
	default:
		return NeedsRevision
	}
}

// Record is the consistency report of one comparison matrix.
type Record struct {
	N         int
	LambdaMax float64
	CI        float64
	RI        float64
	CR        float64
	Status    Status
}

// Acceptable reports whether the judgments can be used without revision.
func (r Record) Acceptable() bool { return r.Status != NeedsRevision }

// Perfect returns the record of an n×n matrix that is consistent by construction.
func Perfect(n int) Record {
	return Record{N: n, LambdaMax: float64(n), RI: RandomIndex(n), Status: Excellent}
}

// Score computes λmax, CI, RI, CR and the status of m against its
// unnormalized priority vector.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square m or
//     len(principal) != n), ErrNonFinite, ErrZeroComponent.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Score(m matrix.Matrix, principal []float64) (Record, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return Record{}, fmt.Errorf("%s: %w", opScore, err)
	}
	n := m.Rows()
	if err := matrix.ValidateVecLen(principal, n); err != nil {
		return Record{}, fmt.Errorf("%s: %w", opScore, err)
	}
	if n <= 2 {
		return Perfect(n), nil
	}

	for i, w := range principal {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return Record{}, fmt.Errorf("%s: w[%d]: %w", opScore, i, ErrNonFinite)
		}
		if w == 0 {
			return Record{}, fmt.Errorf("%s: w[%d]: %w", opScore, i, ErrZeroComponent)
		}
	}

	aw, err := matrix.MatVec(m, principal)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", opScore, err)
	}

	lambda := 0.0
	for i := range aw {
		lambda += aw[i] / principal[i]
	}
	lambda /= float64(n)

	ci := (lambda - float64(n)) / float64(n-1)
	if ci < 0 && ci > -ciNoise {
		ci = 0
	}
	ri := RandomIndex(n)
	cr := 0.0
	if ri != 0 {
		cr = ci / ri
	}

	return Record{
		N:         n,
		LambdaMax: lambda,
		CI:        ci,
		RI:        ri,
		CR:        cr,
		Status:    Classify(cr),
	}, nil
}

// SPDX-License-Identifier: MIT

package hierarchy

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// MatrixResult is the evaluation of one comparison matrix.
type MatrixResult struct {
	Key         Key
	Items       []string
	Comparison  *pairwise.Comparison
	Priority    priority.Vector
	Consistency consistency.Record
}

// Result is the outcome of one Aggregate run. Aggregate vectors are nil
// when withheld; Errors explains why.
type Result struct {
	RunID  uuid.UUID
	Level  Level
	Method priority.Method

	// Item snapshots aligned with the aggregate vectors.
	Types        []string
	Criteria     []string
	Alternatives []string

	TypePriority         []float64
	CriteriaPriority     []float64
	AlternativesPriority []float64

	// Matrices holds every matrix that was built and scored.
	Matrices map[Key]MatrixResult

	// Evaluated lists every attempted key in evaluation order, including
	// keys whose matrix failed.
	Evaluated []Key

	Errors []error
}

// OK reports whether the run finished without errors.
func (r *Result) OK() bool { return len(r.Errors) == 0 }

// Err joins all run errors; nil when OK.
func (r *Result) Err() error { return errors.Join(r.Errors...) }

// Consistent reports whether every scored matrix is acceptable.
func (r *Result) Consistent() bool {
	for _, m := range r.Matrices {
		if !m.Consistency.Acceptable() {
			return false
		}
	}

	return true
}

// Ranked is one entry of Result.Ranking.
type Ranked struct {
	Rank   int
	Name   string
	Weight float64
}

// Ranking lists the alternatives by descending global weight; ties keep
// input order. nil when AlternativesPriority was withheld.
func (r *Result) Ranking() []Ranked {
	if len(r.AlternativesPriority) == 0 || len(r.AlternativesPriority) != len(r.Alternatives) {
		return nil
	}
	out := make([]Ranked, len(r.Alternatives))
	for i, name := range r.Alternatives {
		out[i] = Ranked{Name: name, Weight: r.AlternativesPriority[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

func (r *Result) addError(err error) { r.Errors = append(r.Errors, err) }

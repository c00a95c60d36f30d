// SPDX-License-Identifier: MIT

package hierarchy

import "errors"

var (
	// ErrInvalidLevel indicates a Level outside 1..3.
	ErrInvalidLevel = errors.New("hierarchy: level must be 1, 2 or 3")

	// ErrNoTypes indicates a level-3 run without criteria types.
	ErrNoTypes = errors.New("hierarchy: no criteria types declared")

	// ErrNoCriteria indicates a level-2 or level-3 run without criteria.
	ErrNoCriteria = errors.New("hierarchy: no criteria declared")

	// ErrNoAlternatives indicates a level-1 run without alternatives.
	ErrNoAlternatives = errors.New("hierarchy: no alternatives declared")

	// ErrMissingMatrix indicates that a matrix required by the level has no judgments.
	ErrMissingMatrix = errors.New("hierarchy: required matrix missing")

	// ErrUnknownCriterion indicates an alternatives matrix keyed by an undeclared criterion.
	ErrUnknownCriterion = errors.New("hierarchy: unknown criterion")

	// ErrUnknownType indicates a criteria matrix keyed by an undeclared criteria type.
	ErrUnknownType = errors.New("hierarchy: unknown criteria type")

	// ErrZeroSum indicates an aggregate whose contributing weights all vanish.
	ErrZeroSum = errors.New("hierarchy: aggregate weights sum to zero")

	// ErrInconsistent indicates a matrix that needs revision under strict consistency.
	ErrInconsistent = errors.New("hierarchy: judgments need revision")
)

// MatrixError ties an error to the comparison matrix that produced it.
type MatrixError struct {
	Key Key
	Err error
}

// Error implements error.
func (e *MatrixError) Error() string { return e.Key.String() + ": " + e.Err.Error() }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *MatrixError) Unwrap() error { return e.Err }

func matrixError(k Key, err error) error { return &MatrixError{Key: k, Err: err} }

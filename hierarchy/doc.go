// SPDX-License-Identifier: MIT

// Package hierarchy aggregates local AHP priorities into global weights.
//
// A run takes an immutable Input (items, a Level and one sparse judgment map
// per comparison matrix) and returns a fresh *Result. Nothing is retained
// between runs, so independent inputs may be aggregated concurrently.
//
// Levels, evaluated top-down:
//
//	Level3  criteria types → criteria (one matrix per type) → alternatives
//	        (one matrix per criterion).
//	        criterion weight   = local weight in its type × type weight
//	        alternative weight = Σ_c local weight under c × weight(c), renormalized
//	Level2  criteria → alternatives (one matrix per criterion), same rule with
//	        criterion weights taken from the single criteria matrix.
//	Level1  one alternatives matrix; its priority vector is the result.
//
// Matrices are addressed by a typed Key (TypesKey, CriteriaKey,
// AlternativesKey). Key.String renders the legacy labels
// ("criteria_types", "criteria_<type>", "alternatives_<criterion>") for
// display only.
//
// Failure model: Aggregate never panics and never returns an error value.
// Every problem lands in Result.Errors (usually as *MatrixError). A missing
// or invalid matrix withholds every aggregate that depends on it, while all
// other matrices are still evaluated and reported in Result.Matrices.
package hierarchy

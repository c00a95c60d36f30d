// Package scale parses and validates single pairwise judgments expressed on
// the Saaty 1–9 scale.
//
// A judgment token compares a row item with a column item:
//
//	"k"   (k ∈ 1..9)  the row item dominates the column item with strength k
//	"1/k" (k ∈ 1..9)  the column item dominates the row item with strength k
//
// Usage:
//
//	scale.Validate("1/3")   // true
//	scale.Validate("10")    // false
//	scale.Reciprocal("1/3") // "3"
//	v, err := scale.Parse("1/3") // 0.333…, nil
//
// Validate never panics and never returns an error: invalid input simply
// reports false. Reciprocal is a pure string transform that does not
// re-validate; invalid-input policy belongs to the caller.
package scale

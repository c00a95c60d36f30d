package scale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidJudgment is returned by Parse for tokens outside the Saaty scale.
var ErrInvalidJudgment = errors.New("scale: invalid judgment")

const (
	// ReciprocalPrefix marks a judgment in favour of the column item.
	ReciprocalPrefix = "1/"

	// Equal is the neutral judgment: both items are equally important.
	Equal = "1"

	// MinMagnitude and MaxMagnitude bound the Saaty scale.
	MinMagnitude = 1
	MaxMagnitude = 9
)

// descriptions holds the verbal anchors of the scale, indexed by magnitude.
var descriptions = [MaxMagnitude + 1]string{
	1: "equal importance",
	2: "weak or slight",
	3: "moderate importance",
	4: "moderate plus",
	5: "strong importance",
	6: "strong plus",
	7: "very strong importance",
	8: "very, very strong",
	9: "extreme importance",
}

// decimalDigits is the only alphabet accepted after the optional prefix;
// it keeps hex floats and signs out of strconv.ParseFloat.
const decimalDigits = "0123456789."

// magnitude strips an optional "1/" prefix and parses the remainder.
// It reports the magnitude, whether the token was a reciprocal, and ok.
func magnitude(token string) (k int, reciprocal bool, ok bool) {
	rest := token
	if strings.HasPrefix(rest, ReciprocalPrefix) {
		rest = rest[len(ReciprocalPrefix):]
		reciprocal = true
	}
	if rest == "" || strings.Trim(rest, decimalDigits) != "" {
		return 0, false, false
	}
	f, err := strconv.ParseFloat(rest, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, false
	}
	if f != math.Trunc(f) || f < MinMagnitude || f > MaxMagnitude {
		return 0, false, false
	}

	return int(f), reciprocal, true
}

// Validate reports whether token is a judgment on the Saaty scale: after an
// optional "1/" prefix the remainder must parse as a number equal to one of
// 1..9. Plain decimal spellings such as "3.0" are accepted; "2.5", "0",
// "10", "+3", "9e0" and "0x9p0" are not.
func Validate(token string) bool {
	_, _, ok := magnitude(token)
	return ok
}

// Parse returns the numeric value of a judgment token: k for "k", 1/k for "1/k".
//
// Errors:
//   - ErrInvalidJudgment (wrapped with the offending token).
func Parse(token string) (float64, error) {
	k, reciprocal, ok := magnitude(token)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidJudgment, token)
	}
	if reciprocal {
		return 1 / float64(k), nil
	}

	return float64(k), nil
}

// Reciprocal returns the judgment for the mirrored cell:
// "1/k" → "k", "1" → "1", anything else t → "1/t".
// It is a pure string transform and does not validate its input.
func Reciprocal(token string) string {
	switch {
	case strings.HasPrefix(token, ReciprocalPrefix):
		return token[len(ReciprocalPrefix):]
	case token == Equal:
		return Equal
	default:
		return ReciprocalPrefix + token
	}
}

// Canonical rewrites a valid token into its shortest form ("3.0" → "3",
// "1/1" → "1"). It returns false for invalid tokens.
func Canonical(token string) (string, bool) {
	k, reciprocal, ok := magnitude(token)
	if !ok {
		return "", false
	}
	if !reciprocal || k == MinMagnitude {
		return strconv.Itoa(k), true
	}

	return ReciprocalPrefix + strconv.Itoa(k), true
}

// Magnitudes returns the ordered Saaty scale {1, …, 9}.
func Magnitudes() []int {
	out := make([]int, 0, MaxMagnitude)
	for k := MinMagnitude; k <= MaxMagnitude; k++ {
		out = append(out, k)
	}

	return out
}

// Describe returns the verbal anchor of magnitude k, or "" outside 1..9.
func Describe(k int) string {
	if k < MinMagnitude || k > MaxMagnitude {
		return ""
	}

	return descriptions[k]
}

// Explain renders a human-readable reading of token from the row item's
// point of view, e.g. "1/5" → "column item: strong importance".
// Invalid tokens yield "".
func Explain(token string) string {
	k, reciprocal, ok := magnitude(token)
	switch {
	case !ok:
		return ""
	case k == MinMagnitude:
		return descriptions[k]
	case reciprocal:
		return "column item: " + descriptions[k]
	default:
		return "row item: " + descriptions[k]
	}
}

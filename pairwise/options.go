// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"strings"
)

// FillPolicy decides how Build treats upper-triangle cells with no judgment.
type FillPolicy int

const (
	// FillEqual treats an unset cell as "1" (equal importance).
	FillEqual FillPolicy = iota

	// FillRequired rejects matrices with any unset upper-triangle cell.
	FillRequired
)

// DefaultFillPolicy is the policy used when no option overrides it.
const DefaultFillPolicy = FillEqual

// fillNames maps policies to their config spelling.
var fillNames = map[FillPolicy]string{
	FillEqual:    "equal",
	FillRequired: "required",
}

// String returns the config spelling of the policy.
func (p FillPolicy) String() string {
	if s, ok := fillNames[p]; ok {
		return s
	}

	return fmt.Sprintf("FillPolicy(%d)", int(p))
}

// ParseFillPolicy is the inverse of FillPolicy.String (case-insensitive).
func ParseFillPolicy(s string) (FillPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "equal":
		return FillEqual, nil
	case "required":
		return FillRequired, nil
	default:
		return 0, fmt.Errorf("pairwise: unknown fill policy %q", s)
	}
}

// Options configures Build. The zero value is valid and equals the defaults.
type Options struct {
	Fill FillPolicy
}

// Option mutates Options.
type Option func(*Options)

// WithFillPolicy selects the fill policy for unset cells.
// Panics on values outside the declared constants (programmer error).
func WithFillPolicy(p FillPolicy) Option {
	if _, ok := fillNames[p]; !ok {
		panic("pairwise: WithFillPolicy: unknown policy")
	}

	return func(o *Options) { o.Fill = p }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{Fill: DefaultFillPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

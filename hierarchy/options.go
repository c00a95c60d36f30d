// SPDX-License-Identifier: MIT

package hierarchy

import (
	"log/slog"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// Observer receives per-matrix and per-run notifications from Aggregate.
// Calls happen synchronously on the aggregating goroutine.
type Observer interface {
	// ObserveMatrix is called once for every matrix that was scored.
	ObserveMatrix(k Key, rec consistency.Record)

	// ObserveRun is called once with the finished result.
	ObserveRun(res *Result)
}

// Options configures Aggregate.
type Options struct {
	Method   priority.Method
	Fill     pairwise.FillPolicy
	Strict   bool
	Logger   *slog.Logger
	Observer Observer
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the priority extraction method (default GeometricMean).
// Panics on values outside the declared constants.
func WithMethod(m priority.Method) Option {
	if m != priority.GeometricMean && m != priority.Eigenvector {
		panic("hierarchy: WithMethod: unknown method")
	}

	return func(o *Options) { o.Method = m }
}

// WithFillPolicy selects how unset upper-triangle cells are treated.
// Panics on values outside the declared constants.
func WithFillPolicy(p pairwise.FillPolicy) Option {
	if _, err := pairwise.ParseFillPolicy(p.String()); err != nil {
		panic("hierarchy: WithFillPolicy: unknown policy")
	}

	return func(o *Options) { o.Fill = p }
}

// WithStrictConsistency withholds every aggregate when any matrix needs revision.
func WithStrictConsistency(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithLogger attaches a structured logger. nil keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer. An untyped nil is ignored; a typed nil
// pointer is stored as is and must have nil-safe methods.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		Method: priority.DefaultMethod,
		Fill:   pairwise.DefaultFillPolicy,
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

// Package metrics records AHP run statistics as Prometheus collectors.
// A Recorder plugs into hierarchy.Aggregate through hierarchy.WithObserver.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/hierarchy"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder holds the collectors for aggregation runs.
type Recorder struct {
	RunsTotal        *prometheus.CounterVec
	RunErrorsTotal   prometheus.Counter
	MatricesTotal    *prometheus.CounterVec
	ConsistencyRatio *prometheus.HistogramVec
}

var _ hierarchy.Observer = (*Recorder)(nil)

// New creates a Recorder and registers its collectors with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ahp_runs_total",
				Help: "Total aggregation runs by hierarchy level and outcome (ok, error).",
			},
			[]string{"level", "outcome"},
		),
		RunErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ahp_run_errors_total",
				Help: "Total errors reported by aggregation runs.",
			},
		),
		MatricesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ahp_matrices_total",
				Help: "Total comparison matrices scored by kind and consistency status.",
			},
			[]string{"kind", "status"},
		),
		ConsistencyRatio: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ahp_consistency_ratio",
				Help:    "Consistency ratio of scored comparison matrices.",
				Buckets: []float64{0, 0.025, 0.05, 0.1, 0.15, 0.2, 0.3, 0.5, 1},
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(
		r.RunsTotal,
		r.RunErrorsTotal,
		r.MatricesTotal,
		r.ConsistencyRatio,
	)

	return r
}

// ObserveMatrix implements hierarchy.Observer. A nil Recorder records nothing.
func (r *Recorder) ObserveMatrix(k hierarchy.Key, rec consistency.Record) {
	if r == nil {
		return
	}
	kind := k.Kind.String()
	r.MatricesTotal.WithLabelValues(kind, rec.Status.String()).Inc()
	r.ConsistencyRatio.WithLabelValues(kind).Observe(rec.CR)
}

// ObserveRun implements hierarchy.Observer. A nil Recorder records nothing.
func (r *Recorder) ObserveRun(res *hierarchy.Result) {
	if r == nil || res == nil {
		return
	}
	outcome := OutcomeOK
	if !res.OK() {
		outcome = OutcomeError
	}
	r.RunsTotal.WithLabelValues(strconv.Itoa(int(res.Level)), outcome).Inc()
	r.RunErrorsTotal.Add(float64(len(res.Errors)))
}

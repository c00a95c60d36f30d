// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/metrics"
	"github.com/katalvlaran/ahp/pairwise"
)

func input(t *testing.T) hierarchy.Input {
	t.Helper()
	var it hierarchy.Items
	require.True(t, it.AddAlternative("A"))
	require.True(t, it.AddAlternative("B"))
	require.True(t, it.AddAlternative("C"))
	require.True(t, it.AddCriterion("Cost"))
	require.True(t, it.AddCriterion("Quality"))

	return hierarchy.Input{
		Items: it,
		Level: hierarchy.Level2,
		Judgments: map[hierarchy.Key]pairwise.Judgments{
			hierarchy.CriteriaKey(""):            {{Row: 0, Col: 1}: "1/2"},
			hierarchy.AlternativesKey("Cost"):    {{Row: 0, Col: 1}: "2", {Row: 0, Col: 2}: "4", {Row: 1, Col: 2}: "2"},
			hierarchy.AlternativesKey("Quality"): {{Row: 0, Col: 1}: "9", {Row: 0, Col: 2}: "1/9", {Row: 1, Col: 2}: "9"},
		},
	}
}

func TestRecorder_ObservesRuns(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	res := hierarchy.Aggregate(input(t), hierarchy.WithObserver(rec))
	require.True(t, res.OK())

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("2", metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.MatricesTotal.WithLabelValues("criteria", "excellent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.MatricesTotal.WithLabelValues("alternatives", "excellent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.MatricesTotal.WithLabelValues("alternatives", "needs revision")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.RunErrorsTotal))

	in := input(t)
	delete(in.Judgments, hierarchy.AlternativesKey("Cost"))
	res = hierarchy.Aggregate(in, hierarchy.WithObserver(rec))
	require.False(t, res.OK())

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunsTotal.WithLabelValues("2", metrics.OutcomeError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RunErrorsTotal))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.ConsistencyRatio))
}

func TestRecorder_Exposition(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	hierarchy.Aggregate(input(t), hierarchy.WithObserver(rec))

	expected := `
# HELP ahp_runs_total Total aggregation runs by hierarchy level and outcome (ok, error).
# TYPE ahp_runs_total counter
ahp_runs_total{level="2",outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ahp_runs_total"))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *metrics.Recorder
	var res *hierarchy.Result
	require.NotPanics(t, func() {
		res = hierarchy.Aggregate(input(t), hierarchy.WithObserver(r))
	})
	assert.True(t, res.OK(), "%v", res.Err())
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}

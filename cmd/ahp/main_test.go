// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/internal/report"
)

const twoLevel = `
level: 2
alternatives: [A, B]
criteria: [Cost, Quality]
matrices:
  - kind: criteria
    judgments: [{row: 0, col: 1, value: "3"}]
  - kind: alternatives
    name: Cost
    judgments: [{row: 0, col: 1, value: "1/3"}]
  - kind: alternatives
    name: Quality
    judgments: [{row: 0, col: 1, value: "5"}]
`

const incomplete = `
level: 2
alternatives: [A, B, C]
criteria: [Cost]
matrices:
  - kind: criteria
    judgments: []
  - kind: alternatives
    name: Cost
    judgments: [{row: 0, col: 1, value: "2"}]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testConfig() config.Config {
	return config.Config{
		Method:      "geometric-mean",
		Fill:        "equal",
		Parallelism: 2,
		Log:         config.LogConfig{Level: "error", Format: "text"},
		Output:      config.OutputConfig{Format: "text"},
	}
}

func TestRunAnalyze_Text(t *testing.T) {
	path := writeFile(t, "a.yaml", twoLevel)
	var out bytes.Buffer

	require.NoError(t, runAnalyze(context.Background(), &out, testConfig(), []string{path}))
	assert.Contains(t, out.String(), "Ranking")
	assert.Contains(t, out.String(), "Matrix alternatives_Quality")
}

func TestRunAnalyze_YAMLAndMetrics(t *testing.T) {
	good := writeFile(t, "a.yaml", twoLevel)
	bad := writeFile(t, "b.yaml", "level: 3\nalternatives: [A]\n")
	metricsFile := filepath.Join(t.TempDir(), "ahp.prom")

	cfg := testConfig()
	cfg.Output.Format = "yaml"
	cfg.Metrics.File = metricsFile

	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, cfg, []string{good, bad, good})
	require.ErrorContains(t, err, "1 of 3 analyses reported errors")

	dec := yaml.NewDecoder(&out)
	var docs []report.Document
	for {
		var d report.Document
		if dec.Decode(&d) != nil {
			break
		}
		docs = append(docs, d)
	}
	require.Len(t, docs, 3)
	assert.Equal(t, good, docs[0].Source)
	assert.True(t, docs[0].OK)
	assert.False(t, docs[1].OK)
	assert.NotEqual(t, docs[0].RunID, docs[2].RunID)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `ahp_runs_total{level="2",outcome="ok"} 2`)
	assert.Contains(t, string(prom), `ahp_runs_total{level="3",outcome="error"} 1`)
}

func TestRunAnalyze_LevelOverrideAndUnreadable(t *testing.T) {
	path := writeFile(t, "a.yaml", twoLevel)
	cfg := testConfig()
	cfg.Level = 1

	var out bytes.Buffer
	err := runAnalyze(context.Background(), &out, cfg, []string{path, filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.Contains(t, out.String(), "required matrix missing")
	assert.Contains(t, out.String(), "nope.yaml")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, runAnalyze(ctx, &out, testConfig(), []string{path}), context.Canceled)
}

func TestRunTemplate(t *testing.T) {
	path := writeFile(t, "c.yaml", incomplete)

	var out bytes.Buffer
	require.NoError(t, runTemplate(&out, path, 0, false))
	assert.Contains(t, out.String(), "criteria")
	assert.Contains(t, out.String(), "complete")
	assert.Contains(t, out.String(), "2 missing: (0,2) (1,2)")

	out.Reset()
	require.NoError(t, runTemplate(&out, path, 0, true))
	assert.Contains(t, out.String(), "kind: alternatives")
	assert.Contains(t, out.String(), "col: 2")

	require.Error(t, runTemplate(&out, path, 7, false))
}

func TestRunScale(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScale(&out, nil))
	assert.Contains(t, out.String(), "9")
	assert.Contains(t, out.String(), "MEANING")

	out.Reset()
	require.NoError(t, runScale(&out, []string{"3", "1/5"}))
	assert.Contains(t, out.String(), "1/3")
	assert.Contains(t, out.String(), "column item:")

	out.Reset()
	require.ErrorContains(t, runScale(&out, []string{"3", "12"}), "1 invalid")
	assert.Contains(t, out.String(), "12")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "ahp dev\n", out.String())
}

func TestReadConfig(t *testing.T) {
	t.Parallel()

	v := viper.New()
	v.SetConfigName("ahp")
	v.SetConfigType("yaml")
	v.AddConfigPath(t.TempDir())
	require.NoError(t, readConfig(v), "missing file found by search is fine")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ahp.yaml"), []byte("method: [unclosed\n"), 0o600))
	v = viper.New()
	v.SetConfigName("ahp")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	err := readConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")

	v = viper.New()
	v.SetConfigFile(writeFile(t, "ok.yaml", "method: eigenvector\n"))
	require.NoError(t, readConfig(v))
	assert.Equal(t, "eigenvector", v.GetString("method"))
}

// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/internal/bundle"
	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/internal/logging"
	"github.com/katalvlaran/ahp/internal/report"
	"github.com/katalvlaran/ahp/metrics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Evaluate analysis files and print priority reports",
	Long: `Analyze reads each analysis file, builds its comparison matrices, derives
priorities, scores consistency and aggregates the weights for the file's
level. Files are independent and are evaluated in parallel; reports are
printed in argument order.

The exit status is non-zero when any file cannot be read or any result
carries errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd.Context(), cmd.OutOrStdout(), cfg, args)
	},
}

func init() {
	analyzeCmd.Flags().Int("level", 0, "override the level declared in the files (1, 2 or 3)")
	analyzeCmd.Flags().Int("parallelism", config.DefaultParallelism, "maximum files evaluated at once")
	analyzeCmd.Flags().String("metrics-file", "", "write Prometheus metrics to this textfile after the run")

	bindFlag(analyzeCmd.Flags().Lookup("level"), config.KeyLevel)
	bindFlag(analyzeCmd.Flags().Lookup("parallelism"), config.KeyParallelism)
	bindFlag(analyzeCmd.Flags().Lookup("metrics-file"), config.KeyMetricsFile)

	rootCmd.AddCommand(analyzeCmd)
}

// analysis is the outcome of one file.
type analysis struct {
	path string
	res  *hierarchy.Result
	err  error
}

func runAnalyze(ctx context.Context, w io.Writer, cfg config.Config, paths []string) error {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts, err := cfg.AggregateOptions()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts = append(opts, hierarchy.WithObserver(metrics.New(reg)))
	log := logging.WithComponent("analyze")

	results := make([]analysis, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := evaluate(path, cfg.Level, opts)
			results[i] = analysis{path: path, res: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, a := range results {
		if i > 0 {
			separate(w, format)
		}
		if a.err != nil {
			failed++
			log.Error("analysis failed", slog.String("file", a.path), slog.Any("error", a.err))
			fmt.Fprintf(w, "%s: %v\n", a.path, a.err)
			continue
		}
		if !a.res.OK() {
			failed++
		}
		if err := report.Write(w, format, report.Build(a.path, a.res)); err != nil {
			return err
		}
	}

	if cfg.Metrics.File != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Debug("metrics written", slog.String("path", cfg.Metrics.File))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d analyses reported errors", failed, len(paths))
	}

	return nil
}

// evaluate reads one analysis file and aggregates it. level overrides the
// file's level when non-zero.
func evaluate(path string, level int, opts []hierarchy.Option) (*hierarchy.Result, error) {
	f, err := bundle.Read(path)
	if err != nil {
		return nil, err
	}
	in, err := f.Input()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if level != 0 {
		in.Level = hierarchy.Level(level)
	}

	logger := logging.WithComponent("aggregate").With(slog.String("file", path))
	all := make([]hierarchy.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, hierarchy.WithLogger(logger))

	return hierarchy.Aggregate(in, all...), nil
}

func separate(w io.Writer, f report.Format) {
	if f == report.FormatYAML {
		fmt.Fprintln(w, "---")
		return
	}
	fmt.Fprintln(w)
}

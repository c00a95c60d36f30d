// SPDX-License-Identifier: MIT

// Package config holds the ahp CLI configuration, loaded through viper from
// ahp.yaml, AHP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// Keys understood by Load.
const (
	KeyMethod      = "method"
	KeyFill        = "fill"
	KeyStrict      = "strict"
	KeyLevel       = "level"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyOutput      = "output.format"
	KeyMetricsFile = "metrics.file"
	KeyParallelism = "parallelism"
)

// Defaults.
const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultOutput      = "text"
	DefaultParallelism = 4
)

// ErrInvalid wraps every validation failure of Load.
var ErrInvalid = errors.New("config: invalid value")

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level"`

	// Format is text or json.
	Format string `mapstructure:"format" yaml:"format"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	// Format is text or yaml.
	Format string `mapstructure:"format" yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	// File receives the metrics after a run; empty disables the export.
	File string `mapstructure:"file" yaml:"file"`
}

// Config is the resolved CLI configuration.
type Config struct {
	// Method is the priority method (geometric-mean or eigenvector).
	Method string `mapstructure:"method" yaml:"method"`

	// Fill is the unset-cell policy (equal or required).
	Fill string `mapstructure:"fill" yaml:"fill"`

	// Strict withholds aggregates when any matrix needs revision.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// Level overrides the level declared in analysis files when non-zero.
	Level int `mapstructure:"level" yaml:"level"`

	// Parallelism bounds how many analysis files are evaluated at once.
	Parallelism int `mapstructure:"parallelism" yaml:"parallelism"`

	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMethod, priority.DefaultMethod.String())
	v.SetDefault(KeyFill, pairwise.DefaultFillPolicy.String())
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyLevel, 0)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyMetricsFile, "")
	v.SetDefault(KeyParallelism, DefaultParallelism)
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	var errs []error
	if _, err := priority.ParseMethod(c.Method); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyMethod, err))
	}
	if _, err := pairwise.ParseFillPolicy(c.Fill); err != nil {
		errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, KeyFill, err))
	}
	if c.Level != 0 && !hierarchy.Level(c.Level).Valid() {
		errs = append(errs, fmt.Errorf("%w: %s: %d", ErrInvalid, KeyLevel, c.Level))
	}
	if c.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalid, KeyParallelism, c.Parallelism))
	}
	if !oneOf(c.Log.Level, "debug", "info", "warn", "error") {
		errs = append(errs, fmt.Errorf("%w: %s: %q", ErrInvalid, KeyLogLevel, c.Log.Level))
	}
	if !oneOf(c.Log.Format, "text", "json") {
		errs = append(errs, fmt.Errorf("%w: %s: %q", ErrInvalid, KeyLogFormat, c.Log.Format))
	}
	if !oneOf(c.Output.Format, "text", "yaml") {
		errs = append(errs, fmt.Errorf("%w: %s: %q", ErrInvalid, KeyOutput, c.Output.Format))
	}

	return errors.Join(errs...)
}

// AggregateOptions translates the configuration into hierarchy options.
func (c Config) AggregateOptions() ([]hierarchy.Option, error) {
	method, err := priority.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	fill, err := pairwise.ParseFillPolicy(c.Fill)
	if err != nil {
		return nil, err
	}

	return []hierarchy.Option{
		hierarchy.WithMethod(method),
		hierarchy.WithFillPolicy(fill),
		hierarchy.WithStrictConsistency(c.Strict),
	}, nil
}

func oneOf(s string, allowed ...string) bool {
	s = strings.ToLower(s)
	for _, a := range allowed {
		if s == a {
			return true
		}
	}

	return false
}

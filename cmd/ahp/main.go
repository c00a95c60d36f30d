// SPDX-License-Identifier: MIT

// Package main is the entry point for the ahp CLI: it evaluates analysis
// files with the Analytic Hierarchy Process and prints priority reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ahp/internal/config"
	"github.com/katalvlaran/ahp/internal/logging"
	"github.com/katalvlaran/ahp/pairwise"
	"github.com/katalvlaran/ahp/priority"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is resolved in PersistentPreRunE before any subcommand runs.
var cfg config.Config

// configErr holds a config file read failure from initConfig; cobra
// initializers cannot return errors.
var configErr error

var rootCmd = &cobra.Command{
	Use:   "ahp",
	Short: "Analytic Hierarchy Process calculator",
	Long: `ahp derives priority weights from pairwise judgments on the Saaty 1-9
scale. An analysis file declares alternatives, criteria and optional criteria
types, plus the upper-triangle judgments of every comparison matrix; ahp
builds the matrices, scores their consistency and aggregates the weights over
one, two or three hierarchy levels.

Settings come from flags, AHP_* environment variables and ahp.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
		if used := viper.ConfigFileUsed(); used != "" {
			logging.WithComponent("config").Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./ahp.yaml or ~/.config/ahp/ahp.yaml)")
	pf.String("method", priority.DefaultMethod.String(), "priority method: geometric-mean or eigenvector")
	pf.String("fill", pairwise.DefaultFillPolicy.String(), "unset judgments: equal (treated as 1) or required")
	pf.Bool("strict", false, "withhold aggregates when any matrix needs revision")
	pf.StringP("output", "o", config.DefaultOutput, "report format: text or yaml")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.String("log-format", config.DefaultLogFormat, "log format: text or json")

	bindFlag(pf.Lookup("method"), config.KeyMethod)
	bindFlag(pf.Lookup("fill"), config.KeyFill)
	bindFlag(pf.Lookup("strict"), config.KeyStrict)
	bindFlag(pf.Lookup("output"), config.KeyOutput)
	bindFlag(pf.Lookup("log-level"), config.KeyLogLevel)
	bindFlag(pf.Lookup("log-format"), config.KeyLogFormat)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ahp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ahp"))
		}
	}

	viper.SetEnvPrefix("AHP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = readConfig(viper.GetViper())
}

// readConfig reads the config file. A file that is absent from every search
// path is tolerated; one that exists must parse.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}

	return fmt.Errorf("reading config: %w", err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

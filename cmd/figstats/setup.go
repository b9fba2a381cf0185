package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/figstats/analytics"
	"github.com/hasbyte1/figstats/config"
	"github.com/hasbyte1/figstats/ledger"
	"github.com/hasbyte1/figstats/logger"
)

// loadConfig reads --config and applies the command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("transactions"); v != "" {
		cfg.Dataset.Transactions = v
	}
	if v, _ := cmd.Flags().GetString("customers"); v != "" {
		cfg.Dataset.Customers = v
	}
	if cmd.Flags().Changed("large") {
		cfg.Thresholds.Large, _ = cmd.Flags().GetFloat64("large")
	}
	if cmd.Flags().Lookup("output") != nil {
		if v, _ := cmd.Flags().GetString("output"); v != "" {
			cfg.Output = v
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAnalyzer wires config, logger and dataset together.
func newAnalyzer(cmd *cobra.Command) (*config.Config, *analytics.Analyzer, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	ds, err := ledger.LoadDataset(cfg.Dataset.Transactions, cfg.Dataset.Customers)
	if err != nil {
		return nil, nil, fmt.Errorf("load dataset: %w", err)
	}
	logDataset(log, cfg)

	th := analytics.Thresholds{
		Small:  cfg.Thresholds.Small,
		Medium: cfg.Thresholds.Medium,
		Large:  cfg.Thresholds.Large,
	}
	return cfg, analytics.NewAnalyzer(ds, th, log), nil
}

func logDataset(log zerolog.Logger, cfg *config.Config) {
	if cfg.Dataset.Transactions == "" {
		log.Debug().Msg("using embedded sample dataset")
		return
	}
	log.Debug().
		Str("transactions", cfg.Dataset.Transactions).
		Str("customers", cfg.Dataset.Customers).
		Msg("loaded dataset")
}

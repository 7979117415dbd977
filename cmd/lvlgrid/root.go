package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/config"
	"github.com/katalvlaran/lvlgrid/solver"
)

var (
	configFile string
	logLevel   string

	logger = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "lvlgrid",
	Short: "Solve grid puzzles with the lvlgrid toolkit",
	Long: `lvlgrid runs the registered grid puzzles (basins, cascades, folds,
line overlays) against puzzle input and prints both answers.

Examples:
  lvlgrid list
  lvlgrid run --day 9 --input day9.txt
  lvlgrid run -d 13 -i day13.txt --config lvlgrid.yaml
  lvlgrid sample --day 11`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		solver.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// loadConfig returns the configured settings and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)
	logger.WithFields(logrus.Fields{
		"config": configFile,
		"level":  lvl,
	}).Debug("configuration loaded")
	return cfg, nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/td-bot/internal/config"
	"github.com/vovakirdan/td-bot/internal/core"
)

// loadSettings loads the config file and applies the flags set on the
// command line on top of it.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = flagStrategy
	}
	if flags.Changed("columns-from") {
		cfg.Board.ColumnsFrom = core.ColumnSource(flagColumnsFrom)
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("record") {
		cfg.Record.Enabled = flagRecord
	}
	if flags.Changed("db") {
		cfg.Record.DB = flagDBPath
	}

	return cfg, cfg.Validate()
}

// mustLoadSettings is loadSettings for commands that cannot continue without a config.
func mustLoadSettings(cmd *cobra.Command) config.Config {
	cfg, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(exitError)
	}
	return cfg
}

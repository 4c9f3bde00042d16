// Package config provides YAML-based operator configuration for the bot:
// which strategy to play, how to read the board, where to log and whether
// to record matches.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/td-bot/internal/core"
)

// Config is the operator configuration.
type Config struct {
	Strategy string       `yaml:"strategy"`
	Board    BoardConfig  `yaml:"board"`
	Log      LogConfig    `yaml:"log"`
	Record   RecordConfig `yaml:"record"`
}

// BoardConfig controls how board dimensions are derived from the map.
type BoardConfig struct {
	// ColumnsFrom selects the map dimension used as the board width:
	// "cols" (the map's column count) or "rows" (legacy square boards).
	ColumnsFrom core.ColumnSource `yaml:"columns_from"`
}

// LogConfig controls operational logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr
}

// RecordConfig controls match recording.
type RecordConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"`
}

// Validate checks the values that cannot be caught by YAML decoding.
func (c Config) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("config: strategy is empty")
	}
	if !c.Board.ColumnsFrom.Valid() {
		return fmt.Errorf("config: board.columns_from must be %q or %q, got %q",
			core.ColumnsFromCols, core.ColumnsFromRows, c.Board.ColumnsFrom)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Record.Enabled && c.Record.DB == "" {
		return fmt.Errorf("config: record.db is required when recording is enabled")
	}
	return nil
}

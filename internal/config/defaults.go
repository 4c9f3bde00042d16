package config

import (
	_ "embed"
)

//go:embed defaults/tdbot.yaml
var defaultYAML []byte

// DefaultDBPath is where matches are recorded unless configured otherwise.
const DefaultDBPath = "~/.tdbot/matches.db"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Strategy: "roundrobin",
		Board: BoardConfig{
			ColumnsFrom: "cols",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Record: RecordConfig{
			Enabled: false,
			DB:      DefaultDBPath,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

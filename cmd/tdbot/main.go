// tdbot is a tower-defense bot that plays against a judge process over
// standard input and output.
//
// Usage:
//
//	tdbot [run]                  - Play a match on stdin/stdout (default)
//	tdbot strategies             - List available strategies
//	tdbot perimeter <rows> <cols> - Print the spawn perimeter of a board
//	tdbot matches                - List recorded matches
//	tdbot replay <match-id>      - Step through a recorded match
//
// Global flags:
//
//	--config <path>        - Config file (default search: ~/.tdbot/config.yaml, ./configs/tdbot.yaml)
//	--strategy <id>        - Strategy to play
//	--columns-from <src>   - Board width source: cols or rows
//	--log-level <level>    - debug, info, warn, error
//	--log-file <path>      - Operational log file (default: stderr)
//	--record               - Record the match
//	--db <path>            - Match database (default: ~/.tdbot/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/td-bot/internal/strategy"
)

// Exit statuses
const (
	exitError  = 1
	exitMisuse = 3
)

var (
	// Global flags
	flagConfig      string
	flagStrategy    string
	flagColumnsFrom string
	flagLogLevel    string
	flagLogFile     string
	flagRecord      bool
	flagDBPath      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tdbot",
	Short: "Tower-defense bot speaking the judge protocol",
	Long: `tdbot reads the match constants, the map and one state update per turn
from stdin, and answers every turn with spawn requests and target
assignments on stdout. Each turn's log is written to stderr between
"TURN <n>" and "ENDLOG" lines.

Available commands:
  run         - Play a match (default when no command is given)
  strategies  - Show all available strategies
  perimeter   - Print the ordered spawn perimeter of a board
  matches     - Browse recorded matches
  replay      - Step through a recorded match

Examples:
  judge ./tdbot
  tdbot --strategy nearest --record
  tdbot perimeter 5 5
  tdbot matches --tui
  tdbot replay 3f2a9c1e`,
	Args: cobra.NoArgs,
	Run:  runMatch,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", "", "Strategy to play (see 'tdbot strategies')")
	rootCmd.PersistentFlags().StringVar(&flagColumnsFrom, "columns-from", "", "Board width source: cols or rows")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write operational logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagRecord, "record", false, "Record the match to the database")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to matches database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(perimeterCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(replayCmd)
}

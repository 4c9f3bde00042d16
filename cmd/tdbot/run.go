package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/td-bot/internal/config"
	"github.com/vovakirdan/td-bot/internal/driver"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/registry"
	"github.com/vovakirdan/td-bot/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a match against the judge on stdin/stdout",
	Long: `Play one match. The judge writes the match constants, the map and one
state update per turn to stdin; the bot answers every turn on stdout.
The turn log goes to stderr, delimited by "TURN <n>" and "ENDLOG".

Exit status is 1 on malformed input or a bad configuration, and 3 when
a one-shot initialization step is invoked twice.

Examples:
  tdbot run
  tdbot run --strategy perimeter
  tdbot run --record --db ./matches.db`,
	Args: cobra.NoArgs,
	Run:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) {
	cfg := mustLoadSettings(cmd)

	logger, closer, err := cfg.Log.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Warn("stdin is a terminal, waiting for judge input")
	}

	err = playMatch(cfg, logger, os.Stdin, os.Stdout, os.Stderr)
	closer.Close()
	if err == nil {
		return
	}

	code := exitCode(err)
	if code == exitMisuse {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if errors.Is(err, errUnknownStrategy) {
		fmt.Fprintln(os.Stderr, "Run 'tdbot strategies' to see available strategies.")
	}
	os.Exit(code)
}

var errUnknownStrategy = errors.New("unknown strategy")

// playMatch plays one match with the configured strategy. The match store,
// when recording is on, is closed before playMatch returns.
func playMatch(cfg config.Config, logger *log.Logger, in io.Reader, out, diag io.Writer) error {
	if !registry.Exists(cfg.Strategy) {
		return fmt.Errorf("%w %q", errUnknownStrategy, cfg.Strategy)
	}
	strat, err := registry.Create(cfg.Strategy)
	if err != nil {
		return fmt.Errorf("creating strategy: %w", err)
	}

	opts := driver.Options{
		Strategy: strat,
		Columns:  cfg.Board.ColumnsFrom,
		Logger:   logger,
	}

	if cfg.Record.Enabled {
		store, err := storage.Open(cfg.Record.DB)
		if err != nil {
			// The match is played either way
			logger.Warn("recording disabled", "db", cfg.Record.DB, "err", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	if err := driver.Run(in, out, diag, opts); err != nil {
		return err
	}
	logger.Info("match finished", "strategy", cfg.Strategy)
	return nil
}

// exitCode maps a match error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, game.ErrInternalMisuse):
		return exitMisuse
	default:
		return exitError
	}
}

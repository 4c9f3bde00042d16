package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/td-bot/internal/platform/tui"
	"github.com/vovakirdan/td-bot/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <match-id>",
	Short: "Step through a recorded match",
	Long: `Open the turn viewer for a recorded match. A unique prefix of the
match id is enough.

Controls:
  Left/Right  - Previous/next turn
  Home/End    - First/last turn
  Space       - Play/pause
  Q/Esc       - Quit

Examples:
  tdbot replay 3f2a9c1e`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	store := openStore(cmd)
	defer store.Close()

	replayMatch(store, args[0])
}

func replayMatch(store *storage.Store, id string) {
	match, err := store.MatchByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	if match == nil {
		fmt.Fprintf(os.Stderr, "Error: no match %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'tdbot matches' to see recorded matches.")
		os.Exit(exitError)
	}

	turns, err := store.TurnsForMatch(match.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving turns: %v\n", err)
		os.Exit(exitError)
	}

	width, height := terminalSize()
	if err := tui.RunReplay(*match, turns, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

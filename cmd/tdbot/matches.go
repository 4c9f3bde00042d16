package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/td-bot/internal/platform/tui"
	"github.com/vovakirdan/td-bot/internal/storage"
)

var (
	flagMatchesTUI   bool
	flagMatchesLimit int
	flagDeleteMatch  string
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List recorded matches",
	Long: `Display the most recently recorded matches.

Matches are recorded when the bot runs with --record or with
record.enabled in the config file.

Examples:
  tdbot matches
  tdbot matches --limit 50
  tdbot matches --tui
  tdbot matches --delete 3f2a9c1e`,
	Args: cobra.NoArgs,
	Run:  runMatches,
}

func init() {
	matchesCmd.Flags().BoolVar(&flagMatchesTUI, "tui", false, "Browse matches interactively")
	matchesCmd.Flags().IntVar(&flagMatchesLimit, "limit", 20, "Number of matches to list")
	matchesCmd.Flags().StringVar(&flagDeleteMatch, "delete", "", "Delete the match with this id")
}

// terminalSize returns the size of the terminal on stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func openStore(cmd *cobra.Command) *storage.Store {
	cfg := mustLoadSettings(cmd)
	store, err := storage.Open(cfg.Record.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		os.Exit(exitError)
	}
	return store
}

func runMatches(cmd *cobra.Command, args []string) {
	store := openStore(cmd)
	defer store.Close()

	if flagDeleteMatch != "" {
		deleteMatch(store, flagDeleteMatch)
		return
	}

	if flagMatchesTUI {
		width, height := terminalSize()
		selected, err := tui.RunMatches(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		if selected != "" {
			replayMatch(store, selected)
		}
		return
	}

	matches, err := store.RecentMatches(flagMatchesLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(exitError)
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	fmt.Println(titleStyle.Render("Recorded matches"))
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tdbot --record' to keep match history.")
		return
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-8s  %-12s  %-7s  %-7s  %s", "Match", "Strategy", "Board", "Turns", "Date")))

	for _, row := range tui.MatchRows(matches) {
		fmt.Printf("  %-8s  %-12s  %-7s  %-7s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	fmt.Println()
	fmt.Println("Run 'tdbot replay <match>' to step through a match.")
}

func deleteMatch(store *storage.Store, id string) {
	m, err := store.MatchByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "Error: no match %q\n", id)
		os.Exit(exitError)
	}
	if err := store.DeleteMatch(m.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
	fmt.Printf("Deleted match %s\n", m.ID)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/td-bot/internal/registry"
	"github.com/vovakirdan/td-bot/internal/storage"
)

var flagStats bool

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List all available strategies",
	Long: `Shows a list of all strategies registered in the bot.

With --stats, also shows how many matches of each were recorded.`,
	Args: cobra.NoArgs,
	Run:  runStrategies,
}

func init() {
	strategiesCmd.Flags().BoolVar(&flagStats, "stats", false, "Show recorded match counts")
}

func runStrategies(cmd *cobra.Command, args []string) {
	strategies := registry.List()

	if len(strategies) == 0 {
		fmt.Println("No strategies available.")
		return
	}

	var stats map[string]*storage.StrategyStats
	if flagStats {
		cfg := mustLoadSettings(cmd)
		store, err := storage.Open(cfg.Record.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
			os.Exit(exitError)
		}
		stats, err = store.StrategiesStats()
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(exitError)
		}
	}

	fmt.Println("Available strategies:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range strategies {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	if flagStats {
		fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "ID", "Matches", "Turns", "Description")
		fmt.Printf("  %-*s  %-7s  %-6s  %s\n", maxIDLen, "--", "-------", "-----", "-----------")
	} else {
		fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
		fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	}

	for _, s := range strategies {
		if flagStats {
			var matches, turns int
			if st := stats[s.ID]; st != nil {
				matches, turns = st.Matches, st.TurnsTotal
			}
			fmt.Printf("  %-*s  %-7d  %-6d  %s\n", maxIDLen, s.ID, matches, turns, s.Description)
			continue
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tdbot --strategy <id>' to play with a strategy.")
}

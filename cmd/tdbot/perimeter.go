package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/td-bot/internal/core"
)

var perimeterCmd = &cobra.Command{
	Use:   "perimeter <rows> <cols>",
	Short: "Print the spawn perimeter of a board",
	Long: `Print the spawn positions of a rows x cols board in the order the
round-robin strategies walk them: left column top to bottom, top row,
right column, then the inner part of the bottom row.

Examples:
  tdbot perimeter 5 5
  tdbot perimeter 3 8`,
	Args: cobra.ExactArgs(2),
	Run:  runPerimeter,
}

func runPerimeter(cmd *cobra.Command, args []string) {
	dims := make([]int, 2)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: %q is not a positive board dimension\n", arg)
			os.Exit(exitError)
		}
		dims[i] = n
	}

	board := core.NewBoard(dims[0], dims[1])
	positions := board.ValidSpawnPositions()

	fmt.Printf("Board %dx%d, %d spawn positions:\n", board.Rows, board.Cols, len(positions))
	fmt.Println()
	fmt.Printf("  %-5s  %s\n", "Index", "Position")
	fmt.Printf("  %-5s  %s\n", "-----", "--------")
	for i, p := range positions {
		fmt.Printf("  %-5d  %s\n", i, p)
	}
}

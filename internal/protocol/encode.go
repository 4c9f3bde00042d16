package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
)

// The encoders below produce the judge's side of the conversation. They are
// used to record turns and to build input streams for tests and local runs.

// Startup is the complete startup block sent before turn 0.
type Startup struct {
	Header
	Rows int
	Cols int
	Grid [][]int // Row-major, Grid[y][x]
}

// EncodeStartup writes the startup block.
func EncodeStartup(w io.Writer, s Startup) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", s.Turns, s.MaxCoins)
	writeAttributes(bw, s.Attackers)
	writeAttributes(bw, s.Defenders)
	writeGrid(bw, s.Rows, s.Cols, func(x, y int) int { return s.Grid[y][x] })

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("protocol: writing startup: %w", err)
	}
	return nil
}

func writeAttributes(w io.Writer, rows []core.Attributes) {
	fmt.Fprintln(w, len(rows))
	for _, a := range rows {
		fmt.Fprintf(w, "%d %d %d %d %d\n", a.HP, a.Range, a.AttackPower, a.Speed, a.Price)
	}
}

func writeGrid(w io.Writer, rows, cols int, cell func(x, y int) int) {
	fmt.Fprintf(w, "%d %d\n", rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, cell(x, y))
		}
		fmt.Fprintln(w)
	}
}

// EncodeMap returns the grid section of a map as text.
func EncodeMap(m *game.Map) string {
	var b strings.Builder
	writeGrid(&b, m.Rows(), m.Cols(), m.Cell)
	return b.String()
}

// DecodeMap parses text produced by EncodeMap.
func DecodeMap(text string) (*game.Map, error) {
	return readGrid(newTokens(strings.NewReader(text)))
}

// EncodeTurn writes one turn's input: both rosters then the coins left.
func EncodeTurn(w io.Writer, attackers, defenders []game.Actor, coinsLeft int) error {
	bw := bufio.NewWriter(w)

	writeRoster(bw, attackers)
	writeRoster(bw, defenders)
	fmt.Fprintln(bw, coinsLeft)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("protocol: writing turn: %w", err)
	}
	return nil
}

// EncodeRoster returns a roster as "count" followed by "id x y type hp" rows.
func EncodeRoster(actors []game.Actor) string {
	var b strings.Builder
	writeRoster(&b, actors)
	return b.String()
}

// DecodeRoster parses text produced by EncodeRoster.
func DecodeRoster(text string, role game.Role) ([]game.Actor, error) {
	return readRoster(newTokens(strings.NewReader(text)), role)
}

func writeRoster(w io.Writer, actors []game.Actor) {
	fmt.Fprintln(w, len(actors))
	for _, a := range actors {
		fmt.Fprintf(w, "%d %d %d %d %d\n", a.ID, a.Position.X, a.Position.Y, a.Type, a.HP)
	}
}

package strategy

import (
	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/registry"
)

func init() {
	registry.Register("perimeter", func() registry.Strategy { return Perimeter{} })
	registry.Register("hold", func() registry.Strategy { return Hold{} })
}

// Perimeter requests a type 1 attacker on every perimeter cell each turn,
// ignoring coins. The judge drops what cannot be paid for.
type Perimeter struct{}

// ID implements registry.Strategy.
func (Perimeter) ID() string { return "perimeter" }

// Description implements registry.Strategy.
func (Perimeter) Description() string {
	return "Type 1 attacker on every perimeter cell, every turn"
}

// Decide implements registry.Strategy.
func (Perimeter) Decide(st game.State, consts *core.Constants) *game.Game {
	g := game.New()
	if consts.Table.AttackerTypes() == 0 {
		return g
	}
	for _, pos := range consts.Board.ValidSpawnPositions() {
		g.SpawnAttacker(1, pos)
	}
	return g
}

// Hold never acts. It only logs a summary of the turn.
type Hold struct{}

// ID implements registry.Strategy.
func (Hold) ID() string { return "hold" }

// Description implements registry.Strategy.
func (Hold) Description() string {
	return "No spawns, no targets; logs the turn summary"
}

// Decide implements registry.Strategy.
func (Hold) Decide(st game.State, _ *core.Constants) *game.Game {
	g := game.New()
	g.Log().Printf("turn %d: %d attackers, %d defenders, %d coins",
		st.Turn(), st.NumAttackers(), st.NumDefenders(), st.CoinsLeft())
	return g
}

package strategy

import (
	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/registry"
)

func init() {
	registry.Register("roundrobin", func() registry.Strategy {
		return NewRoundRobin()
	})
}

// RoundRobin spawns one attacker of each type per turn, stepping around the
// perimeter, and points the first attacker at the first defender.
type RoundRobin struct {
	cursor spawnCursor
}

// NewRoundRobin creates a round-robin strategy starting at perimeter index 0.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// ID implements registry.Strategy.
func (s *RoundRobin) ID() string { return "roundrobin" }

// Description implements registry.Strategy.
func (s *RoundRobin) Description() string {
	return "One attacker of each type per turn around the perimeter, first attacker targets first defender"
}

// Cursor returns the perimeter index the next spawn will use.
func (s *RoundRobin) Cursor() int { return s.cursor.next }

// Decide implements registry.Strategy.
func (s *RoundRobin) Decide(st game.State, consts *core.Constants) *game.Game {
	g := game.New()
	g.Log().Printf("TURN %d LOGS:\n", st.Turn())

	// Nothing left to attack: keep the coins
	if st.NumDefenders() > 0 {
		s.cursor.spawnEachType(g, st, consts)
	}

	if st.NumAttackers() > 0 && st.NumDefenders() > 0 {
		g.SetTargetFor(st.Attackers()[0], st.Defenders()[0])
	}

	logSpawns(g)
	return g
}

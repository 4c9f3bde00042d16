package strategy

import (
	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/registry"
)

func init() {
	registry.Register("nearest", func() registry.Strategy {
		return NewNearest()
	})
}

// Nearest spawns like RoundRobin, skipping types it cannot afford, and sends
// every attacker at the closest defender.
type Nearest struct {
	cursor spawnCursor
}

// NewNearest creates a nearest-target strategy.
func NewNearest() *Nearest {
	return &Nearest{cursor: spawnCursor{budgeted: true}}
}

// ID implements registry.Strategy.
func (s *Nearest) ID() string { return "nearest" }

// Description implements registry.Strategy.
func (s *Nearest) Description() string {
	return "Round-robin spawning within the coin budget, every attacker targets its nearest defender"
}

// Decide implements registry.Strategy.
func (s *Nearest) Decide(st game.State, consts *core.Constants) *game.Game {
	g := game.New()
	g.Log().Printf("TURN %d LOGS:\n", st.Turn())

	defenders := st.Defenders()
	if len(defenders) == 0 {
		return g
	}

	s.cursor.spawnEachType(g, st, consts)

	for _, a := range st.Attackers() {
		d := NearestDefender(a, defenders)
		g.SetTargetFor(a, d)
		g.Log().Printf("attacker %d -> defender %d (%.2f)\n", a.ID, d.ID, a.Position.DistanceTo(d.Position))
	}

	logSpawns(g)
	return g
}

// NearestDefender returns the defender closest to a by Euclidean distance.
// Ties go to the lower defender id. defenders must not be empty.
func NearestDefender(a game.Actor, defenders []game.Actor) game.Actor {
	best := defenders[0]
	bestDist := a.Position.DistanceTo(best.Position)
	for _, d := range defenders[1:] {
		dist := a.Position.DistanceTo(d.Position)
		if dist < bestDist || (dist == bestDist && d.ID < best.ID) {
			best, bestDist = d, dist
		}
	}
	return best
}

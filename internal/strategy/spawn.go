// Package strategy contains the decision routines the bot can play with.
// Each one registers itself with the registry in init().
package strategy

import (
	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
)

// spawnCursor walks the spawn perimeter one position per spawned attacker.
// The index survives across turns; it lives in the strategy value.
type spawnCursor struct {
	next int
	// budgeted skips types that cost more than the coins still unspent this
	// turn. Without it every type is requested and the judge drops what
	// cannot be paid for.
	budgeted bool
}

// spawnEachType tries to spawn one attacker of every type at the cursor's
// position. A type is skipped when the position is invalid or already used
// this turn, or when the cursor is budgeted and the type is unaffordable.
func (c *spawnCursor) spawnEachType(g *game.Game, st game.State, consts *core.Constants) {
	perimeter := consts.Board.ValidSpawnPositions()
	if len(perimeter) == 0 {
		return
	}
	c.next %= len(perimeter)

	budget := st.CoinsLeft()
	for typ := 1; typ <= consts.Table.AttackerTypes(); typ++ {
		pos := perimeter[c.next]
		if !consts.Board.IsValidSpawnPosition(pos) || g.AlreadySpawnedAtPosition(pos) {
			continue
		}

		attrs := consts.Table.Attacker(typ)
		if c.budgeted && attrs.Price > budget {
			g.Log().Printf("type %d costs %d, only %d left\n", typ, attrs.Price, budget)
			continue
		}
		budget -= attrs.Price

		g.SpawnAttacker(typ, pos)
		g.Log().Printf("(%d,%d) to be spawned at Position(%d,%d)\n", attrs.HP, attrs.AttackPower, pos.X, pos.Y)
		c.next = (c.next + 1) % len(perimeter)
	}
}

// logSpawns appends one line per recorded spawn request.
func logSpawns(g *game.Game) {
	for _, s := range g.SpawnRequests() {
		g.Log().Printf("Type %d at Position (%d,%d)\n", s.Type, s.Position.X, s.Position.Y)
	}
}

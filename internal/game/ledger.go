package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/td-bot/internal/core"
)

// SpawnRequest asks the driver to place an attacker of Type at Position.
type SpawnRequest struct {
	Type     int
	Position core.Position
}

// Target assigns an attacker to a defender.
type Target struct {
	AttackerID int
	DefenderID int
}

// LogBuffer is the append-only diagnostic text for one turn.
type LogBuffer struct {
	b strings.Builder
}

// Write appends p to the buffer. It never fails.
func (l *LogBuffer) Write(p []byte) (int, error) {
	return l.b.Write(p)
}

// Print appends the operands formatted as with fmt.Sprint.
func (l *LogBuffer) Print(a ...any) {
	fmt.Fprint(&l.b, a...)
}

// Printf appends a formatted string.
func (l *LogBuffer) Printf(format string, a ...any) {
	fmt.Fprintf(&l.b, format, a...)
}

// Println appends the operands followed by a newline.
func (l *LogBuffer) Println(a ...any) {
	fmt.Fprintln(&l.b, a...)
}

// String returns everything written so far.
func (l *LogBuffer) String() string {
	return l.b.String()
}

// Game is the action ledger filled in by a decision routine during one turn.
// It only records: nothing here checks that a spawn or target is legal, the
// driver enforces the rules and applies penalties.
type Game struct {
	spawns  []SpawnRequest
	spawned map[core.Position]struct{}
	targets map[int]int
	order   []int // attacker ids in first-assignment order
	log     LogBuffer
}

// New creates an empty ledger for a turn.
func New() *Game {
	return &Game{
		spawned: make(map[core.Position]struct{}),
		targets: make(map[int]int),
	}
}

// SpawnAttacker records a spawn request. The request is always appended, even
// for an invalid or already used position.
func (g *Game) SpawnAttacker(typ int, pos core.Position) {
	g.spawns = append(g.spawns, SpawnRequest{Type: typ, Position: pos})
	g.spawned[pos] = struct{}{}
}

// AlreadySpawnedAtPosition reports whether a spawn was recorded at pos this turn.
func (g *Game) AlreadySpawnedAtPosition(pos core.Position) bool {
	_, ok := g.spawned[pos]
	return ok
}

// SetTarget assigns an attacker to a defender. The first assignment for an
// attacker id wins; later calls for the same attacker are ignored.
func (g *Game) SetTarget(attackerID, defenderID int) {
	if _, exists := g.targets[attackerID]; exists {
		return
	}
	g.targets[attackerID] = defenderID
	g.order = append(g.order, attackerID)
}

// SetTargetFor is SetTarget taking the actors themselves.
func (g *Game) SetTargetFor(attacker, defender Actor) {
	g.SetTarget(attacker.ID, defender.ID)
}

// TargetOf returns the defender assigned to an attacker, if any.
func (g *Game) TargetOf(attackerID int) (int, bool) {
	id, ok := g.targets[attackerID]
	return id, ok
}

// Log returns the turn's diagnostic buffer.
func (g *Game) Log() *LogBuffer {
	return &g.log
}

// SpawnRequests returns the recorded spawns in insertion order.
func (g *Game) SpawnRequests() []SpawnRequest {
	return append([]SpawnRequest(nil), g.spawns...)
}

// Targets returns the target assignments in first-assignment order.
func (g *Game) Targets() []Target {
	out := make([]Target, len(g.order))
	for i, attackerID := range g.order {
		out[i] = Target{AttackerID: attackerID, DefenderID: g.targets[attackerID]}
	}
	return out
}

// SpawnedPositions returns the distinct spawn positions, sorted by (x, y).
func (g *Game) SpawnedPositions() []core.Position {
	out := make([]core.Position, 0, len(g.spawned))
	for pos := range g.spawned {
		out = append(out, pos)
	}
	slices.SortFunc(out, core.Position.Compare)
	return out
}

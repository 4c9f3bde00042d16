package strategy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/registry"
)

func testConstants(rows, cols int, prices ...int) *core.Constants {
	attackers := make([]core.Attributes, len(prices))
	for i, p := range prices {
		attackers[i] = core.Attributes{HP: 10 * (i + 1), Range: 2, AttackPower: i + 1, Speed: 1, Price: p}
	}
	return &core.Constants{
		Turns:    10,
		MaxCoins: 1000,
		Board:    core.NewBoard(rows, cols),
		Table:    core.NewAttributeTable(attackers, []core.Attributes{{HP: 100, Range: 3, AttackPower: 5}}),
	}
}

func oneDefender() []game.Actor {
	return []game.Actor{game.NewDefender(0, 100, 1, core.P(1, 1))}
}

func TestRoundRobinCyclesPerimeter(t *testing.T) {
	consts := testConstants(3, 3, 1, 1)
	s := NewRoundRobin()
	perimeter := consts.Board.ValidSpawnPositions()

	var got []core.Position
	for turn := 0; turn < 5; turn++ {
		g := s.Decide(game.NewState(nil, oneDefender(), 1000, turn), consts)
		for _, req := range g.SpawnRequests() {
			got = append(got, req.Position)
		}
	}

	// Two types per turn over five turns wraps the 8-cell perimeter once
	if len(got) != 10 {
		t.Fatalf("expected 10 spawns, got %d", len(got))
	}
	for i, pos := range got {
		if pos != perimeter[i%len(perimeter)] {
			t.Errorf("spawn %d at %v, expected %v", i, pos, perimeter[i%len(perimeter)])
		}
	}
	if s.Cursor() != 10%len(perimeter) {
		t.Errorf("Cursor() = %d, expected %d", s.Cursor(), 10%len(perimeter))
	}
}

func TestRoundRobinSpawnTypesInOrder(t *testing.T) {
	consts := testConstants(4, 4, 5, 5, 5)
	g := NewRoundRobin().Decide(game.NewState(nil, oneDefender(), 100, 0), consts)

	spawns := g.SpawnRequests()
	if len(spawns) != 3 {
		t.Fatalf("expected 3 spawns, got %d", len(spawns))
	}
	for i, s := range spawns {
		if s.Type != i+1 {
			t.Errorf("spawn %d type = %d, expected %d", i, s.Type, i+1)
		}
	}
}

func TestRoundRobinNoDefendersSavesCoins(t *testing.T) {
	consts := testConstants(3, 3, 1)
	s := NewRoundRobin()
	attackers := []game.Actor{game.NewAttacker(0, 10, 1, core.P(0, 0))}

	g := s.Decide(game.NewState(attackers, nil, 500, 3), consts)
	if len(g.SpawnRequests()) != 0 {
		t.Errorf("expected no spawns without defenders, got %d", len(g.SpawnRequests()))
	}
	if len(g.Targets()) != 0 {
		t.Errorf("expected no targets without defenders, got %d", len(g.Targets()))
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor moved to %d without spawning", s.Cursor())
	}
}

func TestRoundRobinIgnoresCoins(t *testing.T) {
	consts := testConstants(3, 3, 30, 80, 20)
	s := NewRoundRobin()
	g := s.Decide(game.NewState(nil, oneDefender(), 10, 0), consts)

	// Every type is requested; the judge drops what cannot be paid for
	spawns := g.SpawnRequests()
	if len(spawns) != 3 {
		t.Fatalf("expected 3 spawns, got %d", len(spawns))
	}
	if s.Cursor() != 3 {
		t.Errorf("Cursor() = %d, expected 3", s.Cursor())
	}
}

func TestNearestSkipsUnaffordable(t *testing.T) {
	consts := testConstants(3, 3, 30, 80, 20)
	s := NewNearest()
	g := s.Decide(game.NewState(nil, oneDefender(), 60, 0), consts)

	spawns := g.SpawnRequests()
	if len(spawns) != 2 {
		t.Fatalf("expected 2 affordable spawns, got %d", len(spawns))
	}
	if spawns[0].Type != 1 || spawns[1].Type != 3 {
		t.Errorf("unexpected spawn types %+v", spawns)
	}
	// Skipped types do not move the cursor
	if spawns[1].Position != core.P(0, 1) {
		t.Errorf("type 3 spawned at %v, expected (0,1)", spawns[1].Position)
	}
	if !strings.Contains(g.Log().String(), "type 2 costs 80") {
		t.Errorf("log should mention the skipped type: %q", g.Log().String())
	}
}

func TestRoundRobinTargetsFirstPair(t *testing.T) {
	consts := testConstants(3, 3, 1)
	attackers := []game.Actor{
		game.NewAttacker(5, 10, 1, core.P(0, 0)),
		game.NewAttacker(6, 10, 1, core.P(0, 1)),
	}
	defenders := []game.Actor{
		game.NewDefender(2, 100, 1, core.P(2, 2)),
		game.NewDefender(3, 100, 1, core.P(1, 1)),
	}

	g := NewRoundRobin().Decide(game.NewState(attackers, defenders, 100, 1), consts)
	targets := g.Targets()
	if len(targets) != 1 || targets[0] != (game.Target{AttackerID: 5, DefenderID: 2}) {
		t.Errorf("targets = %+v, expected [5 -> 2]", targets)
	}
}

func TestRoundRobinMoreTypesThanPerimeter(t *testing.T) {
	// 2x2 board has 4 perimeter cells; the fifth type would reuse (0,0)
	consts := testConstants(2, 2, 1, 1, 1, 1, 1)
	g := NewRoundRobin().Decide(game.NewState(nil, oneDefender(), 100, 0), consts)

	if len(g.SpawnRequests()) != 4 {
		t.Errorf("expected 4 spawns, got %d", len(g.SpawnRequests()))
	}
	if len(g.SpawnedPositions()) != 4 {
		t.Errorf("expected 4 distinct positions, got %d", len(g.SpawnedPositions()))
	}
}

func TestNearestDefender(t *testing.T) {
	a := game.NewAttacker(0, 10, 1, core.P(0, 0))
	defenders := []game.Actor{
		game.NewDefender(4, 100, 1, core.P(3, 4)),
		game.NewDefender(2, 100, 1, core.P(4, 3)),
		game.NewDefender(7, 100, 1, core.P(6, 6)),
	}

	// (3,4) and (4,3) are both at distance 5; lower id wins
	if d := NearestDefender(a, defenders); d.ID != 2 {
		t.Errorf("NearestDefender() = %d, expected 2", d.ID)
	}
}

func TestNearestTargetsEveryAttacker(t *testing.T) {
	consts := testConstants(5, 5, 1)
	attackers := []game.Actor{
		game.NewAttacker(0, 10, 1, core.P(0, 0)),
		game.NewAttacker(1, 10, 1, core.P(4, 4)),
	}
	defenders := []game.Actor{
		game.NewDefender(0, 100, 1, core.P(1, 1)),
		game.NewDefender(1, 100, 1, core.P(3, 3)),
	}

	g := NewNearest().Decide(game.NewState(attackers, defenders, 100, 2), consts)

	if id, _ := g.TargetOf(0); id != 0 {
		t.Errorf("attacker 0 target = %d, expected 0", id)
	}
	if id, _ := g.TargetOf(1); id != 1 {
		t.Errorf("attacker 1 target = %d, expected 1", id)
	}
	if len(g.SpawnRequests()) != 1 {
		t.Errorf("expected 1 spawn, got %d", len(g.SpawnRequests()))
	}
}

func TestPerimeterSpawnsEverywhere(t *testing.T) {
	consts := testConstants(4, 6, 1)
	g := Perimeter{}.Decide(game.NewState(nil, nil, 0, 0), consts)

	if len(g.SpawnRequests()) != 2*4+2*6-4 {
		t.Errorf("expected %d spawns, got %d", 2*4+2*6-4, len(g.SpawnRequests()))
	}
	for _, s := range g.SpawnRequests() {
		if s.Type != 1 {
			t.Errorf("unexpected spawn type %d", s.Type)
		}
	}
}

func TestHoldRecordsNothing(t *testing.T) {
	consts := testConstants(3, 3, 1)
	g := Hold{}.Decide(game.NewState(nil, oneDefender(), 50, 7), consts)

	if len(g.SpawnRequests()) != 0 || len(g.Targets()) != 0 {
		t.Error("hold should not record actions")
	}
	if !strings.Contains(g.Log().String(), "turn 7") {
		t.Errorf("unexpected log %q", g.Log().String())
	}
}

func TestStrategiesRegistered(t *testing.T) {
	for _, id := range []string{"roundrobin", "nearest", "perimeter", "hold"} {
		s, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", id, err)
			continue
		}
		if s.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, s.ID())
		}
	}
}

func TestRegistryCreatesFreshCursor(t *testing.T) {
	consts := testConstants(3, 3, 1)

	first, _ := registry.Create("roundrobin")
	first.Decide(game.NewState(nil, oneDefender(), 100, 0), consts)

	second, _ := registry.Create("roundrobin")
	g := second.Decide(game.NewState(nil, oneDefender(), 100, 0), consts)
	if g.SpawnRequests()[0].Position != core.P(0, 0) {
		t.Error("a new strategy instance should start at perimeter index 0")
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/driver"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/protocol"
	"github.com/vovakirdan/td-bot/internal/storage"
)

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(1, 1, 'X', TintAttacker)
	if cell := c.Get(1, 1); cell.Rune != 'X' || cell.Tint != TintAttacker {
		t.Errorf("Get(1, 1) = %+v", cell)
	}

	// Out of bounds should be silent
	c.Set(-1, 0, 'A', TintDefault)
	c.Set(4, 0, 'A', TintDefault)
	c.Set(0, 2, 'A', TintDefault)
	if c.Get(9, 9).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}

	if c.String() != "    \n X  " {
		t.Errorf("String() = %q", c.String())
	}
	if c.Row(1) != " X  " {
		t.Errorf("Row(1) = %q", c.Row(1))
	}
}

func TestCanvasDrawTextClips(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawText(2, 0, "turn", TintLabel)
	if c.Row(0) != "  tur" {
		t.Errorf("Row(0) = %q", c.Row(0))
	}
}

func TestRenderCanvasKeepsText(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawText(0, 0, "a1*", TintDefault)
	if !strings.Contains(RenderCanvas(c), "a1*") {
		t.Errorf("RenderCanvas() lost text: %q", RenderCanvas(c))
	}
}

func TestDrawBoard(t *testing.T) {
	board := core.NewBoard(3, 3)
	f := Frame{
		Attackers: []game.Actor{game.NewAttacker(0, 10, 2, core.P(0, 0))},
		Defenders: []game.Actor{game.NewDefender(4, 100, 1, core.P(1, 1))},
		Actions: protocol.Actions{
			Spawns:  []game.SpawnRequest{{Type: 1, Position: core.P(2, 0)}},
			Targets: []game.Target{{AttackerID: 0, DefenderID: 4}},
		},
	}

	c := DrawBoard(board, board, f)
	expected := []string{
		"b : * ",
		": 1 : ",
		": : : ",
	}
	for y, row := range expected {
		if c.Row(y) != row {
			t.Errorf("Row(%d) = %q, expected %q", y, c.Row(y), row)
		}
	}
	if c.Get(2, 1).Tint != TintTarget {
		t.Errorf("targeted defender tint = %v, expected TintTarget", c.Get(2, 1).Tint)
	}
}

func TestDrawBoardInterior(t *testing.T) {
	c := DrawBoard(core.NewBoard(3, 4), core.NewBoard(3, 4), Frame{})
	if c.Row(1) != ": . . : " {
		t.Errorf("Row(1) = %q", c.Row(1))
	}
}

func TestTypeGlyph(t *testing.T) {
	tests := []struct {
		base rune
		typ  int
		want rune
	}{
		{'0', 1, '1'},
		{'0', 9, '9'},
		{'a' - 1, 1, 'a'},
		{'a' - 1, 3, 'c'},
		{'0', 0, '?'},
		{'0', 12, '?'},
	}
	for _, tt := range tests {
		if got := typeGlyph(tt.base, tt.typ); got != tt.want {
			t.Errorf("typeGlyph(%q, %d) = %q, expected %q", tt.base, tt.typ, got, tt.want)
		}
	}
}

func testTurns() []storage.Turn {
	return []storage.Turn{
		{MatchID: "m", TurnRecord: driver.TurnRecord{
			Turn: 0, CoinsLeft: 100,
			Attackers: "0\n", Defenders: "1\n0 1 1 1 100\n",
			Actions: "1\n1 0 0\n0\n", Log: "TURN 0 LOGS:\n",
		}},
		{MatchID: "m", TurnRecord: driver.TurnRecord{
			Turn: 1, CoinsLeft: 95,
			Attackers: "1\n0 0 0 1 10\n", Defenders: "1\n0 1 1 1 100\n",
			Actions: "1\n1 0 1\n1\n0 0\n", Log: "TURN 1 LOGS:\n",
		}},
		{MatchID: "m", TurnRecord: driver.TurnRecord{
			Turn: 2, CoinsLeft: 90,
			Attackers: "1\n0 1 0 1 10\n", Defenders: "0\n",
			Actions: "0\n0\n", Log: "TURN 2 LOGS:\n",
		}},
	}
}

func TestDecodeFrames(t *testing.T) {
	frames, err := DecodeFrames(testTurns())
	if err != nil {
		t.Fatalf("DecodeFrames() failed: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}

	f := frames[1]
	if f.Turn != 1 || f.CoinsLeft != 95 {
		t.Errorf("frame = %+v", f)
	}
	if len(f.Attackers) != 1 || f.Attackers[0].Role != game.RoleAttacker || f.Attackers[0].Position != core.P(0, 0) {
		t.Errorf("Attackers = %+v", f.Attackers)
	}
	if len(f.Actions.Targets) != 1 || f.Actions.Targets[0] != (game.Target{AttackerID: 0, DefenderID: 0}) {
		t.Errorf("Targets = %+v", f.Actions.Targets)
	}
}

func TestDecodeFrameBadActions(t *testing.T) {
	turn := testTurns()[0]
	turn.Actions = "2\n1 0 0\n"
	if _, err := DecodeFrame(turn); err == nil {
		t.Error("DecodeFrame() should fail on truncated actions")
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestReplay(t *testing.T) ReplayModel {
	t.Helper()
	frames, err := DecodeFrames(testTurns())
	if err != nil {
		t.Fatalf("DecodeFrames() failed: %v", err)
	}
	match := storage.Match{ID: "0123456789abcdef", Strategy: "roundrobin", Rows: 3, Cols: 3, Turns: 2}
	return NewReplayModel(match, frames, 100, 30)
}

func update(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next
}

func TestReplayStepping(t *testing.T) {
	var m tea.Model = newTestReplay(t)

	steps := []struct {
		key    string
		cursor int
	}{
		{"left", 0}, // clamped at the first turn
		{"right", 1},
		{"l", 2},
		{"right", 2}, // clamped at the last turn
		{"h", 1},
		{"g", 0},
		{"end", 2},
	}

	for _, s := range steps {
		m = update(t, m, keyMsg(s.key))
		if got := m.(ReplayModel).Cursor(); got != s.cursor {
			t.Errorf("after %q cursor = %d, expected %d", s.key, got, s.cursor)
		}
	}
}

func TestReplayAutoplay(t *testing.T) {
	var m tea.Model = newTestReplay(t)

	m, cmd := m.Update(keyMsg("space"))
	if !m.(ReplayModel).Playing() {
		t.Fatal("space should start autoplay")
	}
	if cmd == nil {
		t.Fatal("autoplay should schedule a tick")
	}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	r := m.(ReplayModel)
	if r.Cursor() != 2 {
		t.Errorf("cursor = %d, expected 2", r.Cursor())
	}
	if r.Playing() {
		t.Error("autoplay should stop on the last turn")
	}
}

func TestReplayView(t *testing.T) {
	var m tea.Model = newTestReplay(t)
	m = update(t, m, keyMsg("right"))

	view := m.View()
	for _, want := range []string{"MATCH 01234567", "turn 1/2", "coins 95", "Spawns (1)", "type 1 at (0,1)", "0 -> 0", "TURN 1 LOGS:"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestReplayColumnSource(t *testing.T) {
	tests := []struct {
		source core.ColumnSource
		cols   int
		row0   string
	}{
		// The rows source squares the board, so only the first two map
		// columns are perimeter
		{core.ColumnsFromRows, 2, ": : . . "},
		{core.ColumnsFromCols, 4, ": : : : "},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			match := storage.Match{ID: "ffffffff-6", Rows: 2, Cols: 4, ColumnsFrom: tt.source, Turns: 1}
			r := NewReplayModel(match, []Frame{{}}, 100, 30)
			if b := r.Board(); b.Rows != 2 || b.Cols != tt.cols {
				t.Errorf("Board() = %dx%d, expected 2x%d", b.Rows, b.Cols, tt.cols)
			}

			c := DrawBoard(r.Board(), core.NewBoard(match.Rows, match.Cols), Frame{})
			if c.Row(0) != tt.row0 {
				t.Errorf("Row(0) = %q, expected %q", c.Row(0), tt.row0)
			}
		})
	}
}

func TestReplayQuit(t *testing.T) {
	var m tea.Model = newTestReplay(t)
	m, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func testMatches() []storage.Match {
	at := time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)
	return []storage.Match{
		{ID: "aaaaaaaa-1", Strategy: "roundrobin", Rows: 3, Cols: 3, Turns: 2, Played: 3, CreatedAt: at},
		{ID: "bbbbbbbb-2", Strategy: "nearest", Rows: 5, Cols: 4, Turns: 10, Played: 4, CreatedAt: at},
		{ID: "cccccccc-3", Strategy: "roundrobin", Rows: 3, Cols: 3, Turns: 2, Played: 0, CreatedAt: at},
	}
}

func TestMatchRows(t *testing.T) {
	rows := MatchRows(testMatches())
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	want := []string{"bbbbbbbb", "nearest", "5x4", "3/10", "May 04 10:30"}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Errorf("row[1][%d] = %q, expected %q", i, rows[1][i], cell)
		}
	}
	if rows[2][3] != "0/2" {
		t.Errorf("unplayed match turns = %q, expected 0/2", rows[2][3])
	}
}

func TestMatchRowsColumnSource(t *testing.T) {
	matches := []storage.Match{
		{ID: "dddddddd-4", Rows: 2, Cols: 4, ColumnsFrom: core.ColumnsFromRows},
		{ID: "eeeeeeee-5", Rows: 2, Cols: 4, ColumnsFrom: core.ColumnsFromCols},
	}
	rows := MatchRows(matches)
	if rows[0][2] != "2x2" {
		t.Errorf("rows source board = %q, expected 2x2", rows[0][2])
	}
	if rows[1][2] != "2x4" {
		t.Errorf("cols source board = %q, expected 2x4", rows[1][2])
	}
}

func TestMatchesFilterAndOpen(t *testing.T) {
	var m tea.Model = NewMatchesModel(testMatches(), 100, 30)

	mm := m.(MatchesModel)
	if len(mm.strategies) != 3 || mm.strategies[0] != allStrategies || mm.strategies[1] != "nearest" {
		t.Fatalf("strategies = %v", mm.strategies)
	}
	if len(mm.shown) != 3 {
		t.Errorf("all filter shows %d matches, expected 3", len(mm.shown))
	}

	// all -> nearest -> roundrobin
	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("tab"))
	if shown := m.(MatchesModel).shown; len(shown) != 2 {
		t.Errorf("roundrobin filter shows %d matches, expected 2", len(shown))
	}

	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Error("enter should quit the browser")
	}
	if got := m.(MatchesModel).Selected(); got != "aaaaaaaa-1" {
		t.Errorf("Selected() = %q, expected aaaaaaaa-1", got)
	}
}

func TestMatchesEmpty(t *testing.T) {
	m := NewMatchesModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No matches recorded yet.") {
		t.Error("empty browser should say so")
	}
	next, _ := m.Update(keyMsg("enter"))
	if next.(MatchesModel).Selected() != "" {
		t.Error("enter on an empty table should not select")
	}
}

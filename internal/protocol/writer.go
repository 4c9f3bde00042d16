package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/td-bot/internal/game"
)

// EndLogMarker closes a turn's diagnostic block.
const EndLogMarker = "ENDLOG"

// Actions is the decoded form of one turn's output.
type Actions struct {
	Spawns  []game.SpawnRequest
	Targets []game.Target
}

// ActionsOf extracts the wire content of a ledger.
func ActionsOf(g *game.Game) Actions {
	return Actions{
		Spawns:  g.SpawnRequests(),
		Targets: g.Targets(),
	}
}

// WriteActions writes the spawn requests and target assignments of a ledger
// and flushes before returning.
func WriteActions(w io.Writer, g *game.Game) error {
	return EncodeActions(w, ActionsOf(g))
}

// EncodeActions writes actions in wire format:
//
//	<spawn count>
//	<type> <x> <y>       (per spawn, in ledger order)
//	<target count>
//	<attacker> <defender> (per assignment)
func EncodeActions(w io.Writer, a Actions) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, len(a.Spawns))
	for _, s := range a.Spawns {
		fmt.Fprintf(bw, "%d %d %d\n", s.Type, s.Position.X, s.Position.Y)
	}

	fmt.Fprintln(bw, len(a.Targets))
	for _, t := range a.Targets {
		fmt.Fprintf(bw, "%d %d\n", t.AttackerID, t.DefenderID)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("protocol: writing actions: %w", err)
	}
	return nil
}

// DecodeActions parses one turn's output as written by EncodeActions.
func DecodeActions(r io.Reader) (Actions, error) {
	t := newTokens(r)
	a, err := readActions(t)
	if err != nil {
		return Actions{}, err
	}
	if _, err := t.atEOF(); err != nil {
		return Actions{}, err
	}
	return a, nil
}

// ActionsReader decodes a stream of consecutive turn outputs, as the judge
// sees them.
type ActionsReader struct {
	t *tokens
}

// NewActionsReader creates a reader over a bot's output stream.
func NewActionsReader(r io.Reader) *ActionsReader {
	return &ActionsReader{t: newTokens(r)}
}

// Next decodes the next turn's actions.
func (r *ActionsReader) Next() (Actions, error) {
	return readActions(r.t)
}

func readActions(t *tokens) (Actions, error) {
	var a Actions

	n, err := t.count("spawn count")
	if err != nil {
		return a, err
	}
	a.Spawns = make([]game.SpawnRequest, n)
	for i := range a.Spawns {
		s := &a.Spawns[i]
		if err := t.ints("spawn", &s.Type, &s.Position.X, &s.Position.Y); err != nil {
			return a, err
		}
	}

	n, err = t.count("target count")
	if err != nil {
		return a, err
	}
	a.Targets = make([]game.Target, n)
	for i := range a.Targets {
		tg := &a.Targets[i]
		if err := t.ints("target", &tg.AttackerID, &tg.DefenderID); err != nil {
			return a, err
		}
	}
	return a, nil
}

// WriteLog writes a turn's diagnostic block:
//
//	TURN <turn>
//	<log text>
//	ENDLOG
//
// The block is assembled first and written with a single Write call.
func WriteLog(w io.Writer, turn int, g *game.Game) error {
	var b strings.Builder
	fmt.Fprintf(&b, "TURN %d\n", turn)
	b.WriteString(g.Log().String())
	b.WriteString("\n")
	b.WriteString(EndLogMarker)
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("protocol: writing log: %w", err)
	}
	return nil
}

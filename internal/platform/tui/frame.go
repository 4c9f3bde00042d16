package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/protocol"
	"github.com/vovakirdan/td-bot/internal/storage"
)

// Frame is a recorded turn decoded for display.
type Frame struct {
	Turn      int
	CoinsLeft int
	Attackers []game.Actor
	Defenders []game.Actor
	Actions   protocol.Actions
	Log       string
}

// DecodeFrame decodes the wire text stored for a turn.
func DecodeFrame(t storage.Turn) (Frame, error) {
	f := Frame{
		Turn:      t.Turn,
		CoinsLeft: t.CoinsLeft,
		Log:       t.Log,
	}

	var err error
	if f.Attackers, err = protocol.DecodeRoster(t.Attackers, game.RoleAttacker); err != nil {
		return f, fmt.Errorf("turn %d attackers: %w", t.Turn, err)
	}
	if f.Defenders, err = protocol.DecodeRoster(t.Defenders, game.RoleDefender); err != nil {
		return f, fmt.Errorf("turn %d defenders: %w", t.Turn, err)
	}
	if f.Actions, err = protocol.DecodeActions(strings.NewReader(t.Actions)); err != nil {
		return f, fmt.Errorf("turn %d actions: %w", t.Turn, err)
	}
	return f, nil
}

// DecodeFrames decodes every turn of a match.
func DecodeFrames(turns []storage.Turn) ([]Frame, error) {
	frames := make([]Frame, 0, len(turns))
	for _, t := range turns {
		f, err := DecodeFrame(t)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

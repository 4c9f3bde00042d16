// Package driver runs the turn loop between the judge and a decision routine.
package driver

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/protocol"
	"github.com/vovakirdan/td-bot/internal/registry"
)

// Options configures a match.
type Options struct {
	Strategy registry.Strategy
	Columns  core.ColumnSource // Empty means core.ColumnsFromCols
	Logger   *log.Logger       // Nil discards operational logs
	Recorder Recorder          // Nil disables recording
}

// Loop holds the state of one match. It is not safe for concurrent use.
type Loop struct {
	in   *protocol.Reader
	out  io.Writer
	diag io.Writer
	opts Options

	consts  *core.Constants
	state   game.State
	matchID string
}

// New creates a loop reading judge input from in, writing actions to out and
// per-turn diagnostic blocks to diag.
func New(in io.Reader, out, diag io.Writer, opts Options) *Loop {
	if opts.Columns == "" {
		opts.Columns = core.ColumnsFromCols
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Loop{
		in:   protocol.NewReader(in),
		out:  out,
		diag: diag,
		opts: opts,
	}
}

// Run executes a whole match: initialization, turn 0, then one turn per
// judge update until the configured number of turns has been played.
func Run(in io.Reader, out, diag io.Writer, opts Options) error {
	l := New(in, out, diag, opts)
	if err := l.Init(); err != nil {
		return err
	}
	for {
		if err := l.Step(); err != nil {
			return err
		}
		if l.Done() {
			return nil
		}
		if err := l.Advance(); err != nil {
			return err
		}
	}
}

// Init reads the startup block, derives the initial defender roster and
// builds the turn 0 state.
func (l *Loop) Init() error {
	if l.opts.Strategy == nil {
		return fmt.Errorf("driver: no strategy")
	}

	header, err := l.in.ReadHeader()
	if err != nil {
		return fmt.Errorf("driver: reading header: %w", err)
	}
	m, err := l.in.ReadMap()
	if err != nil {
		return fmt.Errorf("driver: reading map: %w", err)
	}

	l.consts = &core.Constants{
		Turns:    header.Turns,
		MaxCoins: header.MaxCoins,
		Board:    l.opts.Columns.BoardFor(m.Rows(), m.Cols()),
		Table:    header.Table(),
	}

	defenders, err := m.SpawnDefenders(l.consts.Table)
	if err != nil {
		return fmt.Errorf("driver: spawning defenders: %w", err)
	}
	l.state = game.NewState(nil, defenders, header.MaxCoins, 0)

	l.opts.Logger.Info("match started",
		"strategy", l.opts.Strategy.ID(),
		"turns", header.Turns,
		"coins", header.MaxCoins,
		"rows", l.consts.Board.Rows,
		"cols", l.consts.Board.Cols,
		"defenders", len(defenders),
	)

	if l.opts.Recorder != nil {
		id, err := l.opts.Recorder.BeginMatch(newMatchInfo(l.opts.Strategy.ID(), l.opts.Columns, l.consts, m))
		if err != nil {
			l.opts.Logger.Warn("recording disabled", "err", err)
			l.opts.Recorder = nil
		} else {
			l.matchID = id
			l.opts.Logger.Debug("recording match", "id", id)
		}
	}
	return nil
}

// Step runs the decision routine on the current state and writes its actions
// and diagnostic block.
func (l *Loop) Step() error {
	g := l.opts.Strategy.Decide(l.state, l.consts)

	if err := protocol.WriteActions(l.out, g); err != nil {
		return fmt.Errorf("driver: turn %d: %w", l.state.Turn(), err)
	}
	if err := protocol.WriteLog(l.diag, l.state.Turn(), g); err != nil {
		return fmt.Errorf("driver: turn %d: %w", l.state.Turn(), err)
	}

	l.opts.Logger.Debug("turn decided",
		"turn", l.state.Turn(),
		"coins", l.state.CoinsLeft(),
		"spawns", len(g.SpawnRequests()),
		"targets", len(g.Targets()),
	)

	if l.opts.Recorder != nil {
		if err := l.opts.Recorder.RecordTurn(l.matchID, newTurnRecord(l.state, g)); err != nil {
			l.opts.Logger.Warn("cannot record turn", "turn", l.state.Turn(), "err", err)
		}
	}
	return nil
}

// Done reports whether the last turn has been played.
func (l *Loop) Done() bool {
	return l.state.Turn() >= l.consts.Turns
}

// Advance reads the judge's next update into the current state.
func (l *Loop) Advance() error {
	next, err := l.in.ReadTurn(l.state)
	if err != nil {
		return fmt.Errorf("driver: reading turn %d: %w", l.state.Turn()+1, err)
	}
	l.state = next
	return nil
}

// State returns the current turn's state.
func (l *Loop) State() game.State {
	return l.state
}

// Constants returns the match constants; nil before Init.
func (l *Loop) Constants() *core.Constants {
	return l.consts
}

// MatchID returns the recording id, empty when the match is not recorded.
func (l *Loop) MatchID() string {
	return l.matchID
}

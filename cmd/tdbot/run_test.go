package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/td-bot/internal/config"
	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/protocol"
	"github.com/vovakirdan/td-bot/internal/storage"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"misuse", game.ErrInternalMisuse, exitMisuse},
		{"wrapped misuse", fmt.Errorf("driver: reading map: %w", game.ErrInternalMisuse), exitMisuse},
		{"short input", io.ErrUnexpectedEOF, exitError},
		{"unknown strategy", errUnknownStrategy, exitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, expected %d", tt.err, got, tt.want)
			}
		})
	}
}

// shortMatch is a two-turn match whose input stops after the first update.
func shortMatch(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	startup := protocol.Startup{
		Header: protocol.Header{
			Turns:     2,
			MaxCoins:  100,
			Attackers: []core.Attributes{{HP: 10, Range: 1, AttackPower: 3, Speed: 1, Price: 5}},
			Defenders: []core.Attributes{{HP: 100, Range: 2, AttackPower: 4}},
		},
		Rows: 3,
		Cols: 3,
		Grid: [][]int{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
	}
	if err := protocol.EncodeStartup(&buf, startup); err != nil {
		t.Fatalf("EncodeStartup() failed: %v", err)
	}
	defender := game.NewDefender(0, 100, 1, core.P(1, 1))
	if err := protocol.EncodeTurn(&buf, nil, []game.Actor{defender}, 95); err != nil {
		t.Fatalf("EncodeTurn() failed: %v", err)
	}
	return &buf
}

func TestPlayMatchFailureKeepsRecording(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Record.Enabled = true
	cfg.Record.DB = filepath.Join(t.TempDir(), "matches.db")

	err := playMatch(cfg, log.New(io.Discard), shortMatch(t), io.Discard, io.Discard)
	if err == nil {
		t.Fatal("playMatch() should fail on truncated input")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		t.Errorf("playMatch() = %v, expected an end of input error", err)
	}
	if exitCode(err) != exitError {
		t.Errorf("exitCode() = %d, expected %d", exitCode(err), exitError)
	}

	// The store was closed on the way out, so the turns played before the
	// failure are readable from a fresh connection
	store, err := storage.Open(cfg.Record.DB)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	matches, err := store.RecentMatches(0)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 recorded match, got %d", len(matches))
	}
	if matches[0].Played != 2 {
		t.Errorf("Played = %d, expected 2", matches[0].Played)
	}
	if matches[0].Strategy != cfg.Strategy {
		t.Errorf("Strategy = %q, expected %q", matches[0].Strategy, cfg.Strategy)
	}
}

func TestPlayMatchUnknownStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strategy = "no-such-strategy"

	err := playMatch(cfg, log.New(io.Discard), shortMatch(t), io.Discard, io.Discard)
	if !errors.Is(err, errUnknownStrategy) {
		t.Errorf("playMatch() = %v, expected errUnknownStrategy", err)
	}
}

package driver

import (
	"strings"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
	"github.com/vovakirdan/td-bot/internal/protocol"
)

// MatchInfo describes a match at the moment turn 0 is about to be decided.
type MatchInfo struct {
	Strategy    string
	Rows        int
	Cols        int
	ColumnsFrom core.ColumnSource // Header value the board width was taken from
	Grid        string            // Grid section in wire format
	Turns       int
	MaxCoins    int
}

// TurnRecord is everything observed and produced during one turn.
type TurnRecord struct {
	Turn      int
	CoinsLeft int
	Attackers string // Roster in wire format
	Defenders string
	Actions   string // Output block exactly as written to the judge
	Log       string
}

// Recorder persists match history. Implementations must not block the loop
// for long; errors are reported but never stop the match.
type Recorder interface {
	BeginMatch(info MatchInfo) (matchID string, err error)
	RecordTurn(matchID string, rec TurnRecord) error
}

func newMatchInfo(strategy string, columns core.ColumnSource, consts *core.Constants, m *game.Map) MatchInfo {
	return MatchInfo{
		Strategy:    strategy,
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		ColumnsFrom: columns,
		Grid:        protocol.EncodeMap(m),
		Turns:       consts.Turns,
		MaxCoins:    consts.MaxCoins,
	}
}

func newTurnRecord(st game.State, g *game.Game) TurnRecord {
	var actions strings.Builder
	// strings.Builder never fails
	_ = protocol.WriteActions(&actions, g)

	return TurnRecord{
		Turn:      st.Turn(),
		CoinsLeft: st.CoinsLeft(),
		Attackers: protocol.EncodeRoster(st.Attackers()),
		Defenders: protocol.EncodeRoster(st.Defenders()),
		Actions:   actions.String(),
		Log:       g.Log().String(),
	}
}

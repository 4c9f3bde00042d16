// Package storage provides SQLite-based persistence for recorded matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/driver"
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Match is a recorded match header.
type Match struct {
	ID          string
	Strategy    string
	Rows        int
	Cols        int
	ColumnsFrom core.ColumnSource
	Grid        string
	Turns       int
	MaxCoins    int
	Played      int // Turns recorded so far
	CreatedAt   time.Time
}

// Board returns the geometry the strategy played on, which differs from
// Rows x Cols when the width was taken from the row count.
func (m Match) Board() core.Board {
	return m.ColumnsFrom.BoardFor(m.Rows, m.Cols)
}

// Turn is one recorded turn of a match.
type Turn struct {
	MatchID string
	driver.TurnRecord
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			strategy TEXT NOT NULL,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			columns_from TEXT NOT NULL DEFAULT 'cols',
			grid TEXT NOT NULL,
			turns INTEGER NOT NULL,
			max_coins INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);

		CREATE TABLE IF NOT EXISTS turns (
			match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
			turn INTEGER NOT NULL,
			coins_left INTEGER NOT NULL,
			attackers TEXT NOT NULL,
			defenders TEXT NOT NULL,
			actions TEXT NOT NULL,
			log TEXT NOT NULL,
			PRIMARY KEY (match_id, turn)
		);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addColumnIfMissing("matches", "columns_from", "TEXT NOT NULL DEFAULT 'cols'")
}

// addColumnIfMissing upgrades tables created before a column existed.
func (s *Store) addColumnIfMissing(table, column, decl string) error {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`, table, column,
	).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl))
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// BeginMatch implements driver.Recorder. It stores the match header under a
// fresh random id and returns that id.
func (s *Store) BeginMatch(info driver.MatchInfo) (string, error) {
	id := uuid.NewString()
	columns := info.ColumnsFrom
	if columns == "" {
		columns = core.ColumnsFromCols
	}
	_, err := s.db.Exec(
		`INSERT INTO matches (id, strategy, board_rows, board_cols, columns_from, grid, turns, max_coins, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, info.Strategy, info.Rows, info.Cols, string(columns), info.Grid, info.Turns, info.MaxCoins,
		s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return id, nil
}

// RecordTurn implements driver.Recorder.
func (s *Store) RecordTurn(matchID string, rec driver.TurnRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO turns (match_id, turn, coins_left, attackers, defenders, actions, log)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		matchID, rec.Turn, rec.CoinsLeft, rec.Attackers, rec.Defenders, rec.Actions, rec.Log,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save turn %d: %w", rec.Turn, err)
	}
	return nil
}

// Ensure Store implements driver.Recorder
var _ driver.Recorder = (*Store)(nil)

const matchColumns = `m.id, m.strategy, m.board_rows, m.board_cols, m.columns_from, m.grid, m.turns, m.max_coins, m.created_at,
	(SELECT COUNT(*) FROM turns t WHERE t.match_id = m.id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var createdAt int64
	var columns string
	err := row.Scan(&m.ID, &m.Strategy, &m.Rows, &m.Cols, &columns, &m.Grid, &m.Turns, &m.MaxCoins, &createdAt, &m.Played)
	if err != nil {
		return m, err
	}
	m.ColumnsFrom = core.ColumnSource(columns)
	m.CreatedAt = time.UnixMilli(createdAt)
	return m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Match, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches m
		 ORDER BY m.created_at DESC, m.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchByID retrieves a match by id. A unique id prefix is accepted and is
// compared literally, so '%' and '_' match only themselves.
// Returns nil if no match is found.
func (s *Store) MatchByID(id string) (*Match, error) {
	if id == "" {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches m
		 WHERE m.id = ? OR substr(m.id, 1, length(?)) = ?
		 LIMIT 2`,
		id, id, id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	defer rows.Close()

	var found []Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if m.ID == id {
			return &m, nil
		}
		found = append(found, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("storage: match id prefix %q is ambiguous", id)
	}
}

// TurnsForMatch retrieves all recorded turns of a match in turn order.
func (s *Store) TurnsForMatch(matchID string) ([]Turn, error) {
	rows, err := s.db.Query(
		`SELECT match_id, turn, coins_left, attackers, defenders, actions, log
		 FROM turns
		 WHERE match_id = ?
		 ORDER BY turn`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.MatchID, &t.Turn, &t.CoinsLeft, &t.Attackers, &t.Defenders, &t.Actions, &t.Log); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return turns, nil
}

// DeleteMatch removes a match and its turns.
func (s *Store) DeleteMatch(matchID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM turns WHERE match_id = ?", matchID); err != nil {
		return fmt.Errorf("storage: cannot delete turns: %w", err)
	}
	res, err := tx.Exec("DELETE FROM matches WHERE id = ?", matchID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete match: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMatchNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// ErrMatchNotFound is returned when a match id does not exist.
var ErrMatchNotFound = errors.New("storage: match not found")

// StrategyStats contains aggregated statistics for a strategy.
type StrategyStats struct {
	Strategy   string
	Matches    int
	TurnsTotal int
	LastPlayed time.Time
}

// StrategiesStats retrieves statistics for every strategy that has been recorded.
func (s *Store) StrategiesStats() (map[string]*StrategyStats, error) {
	rows, err := s.db.Query(
		`SELECT m.strategy, COUNT(*), COALESCE(SUM(
		     (SELECT COUNT(*) FROM turns t WHERE t.match_id = m.id)), 0), MAX(m.created_at)
		 FROM matches m
		 GROUP BY m.strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StrategyStats)
	for rows.Next() {
		var st StrategyStats
		var lastPlayed int64
		if err := rows.Scan(&st.Strategy, &st.Matches, &st.TurnsTotal, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.UnixMilli(lastPlayed)
		stats[st.Strategy] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

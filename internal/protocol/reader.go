package protocol

import (
	"fmt"
	"io"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/game"
)

// Header is the constants block at the start of the input stream.
type Header struct {
	Turns     int
	MaxCoins  int
	Attackers []core.Attributes // Row i is attacker type i+1
	Defenders []core.Attributes // Row i is defender type i+1
}

// Table builds the attribute table described by the header.
func (h Header) Table() core.AttributeTable {
	return core.NewAttributeTable(h.Attackers, h.Defenders)
}

// Reader decodes the driver's input stream.
type Reader struct {
	t       *tokens
	mapRead bool
}

// NewReader creates a reader over the driver's input.
func NewReader(r io.Reader) *Reader {
	return &Reader{t: newTokens(r)}
}

// ReadHeader reads the turn count, coin budget and both attribute lists.
func (r *Reader) ReadHeader() (Header, error) {
	var h Header
	if err := r.t.ints("header", &h.Turns, &h.MaxCoins); err != nil {
		return h, err
	}

	var err error
	if h.Attackers, err = r.readAttributes("attacker type"); err != nil {
		return h, err
	}
	if h.Defenders, err = r.readAttributes("defender type"); err != nil {
		return h, err
	}
	return h, nil
}

func (r *Reader) readAttributes(what string) ([]core.Attributes, error) {
	n, err := r.t.count(what + " count")
	if err != nil {
		return nil, err
	}

	rows := make([]core.Attributes, n)
	for i := range rows {
		a := &rows[i]
		if err := r.t.ints(what, &a.HP, &a.Range, &a.AttackPower, &a.Speed, &a.Price); err != nil {
			return nil, fmt.Errorf("%s %d: %w", what, i+1, err)
		}
	}
	return rows, nil
}

// ReadMap reads the grid dimensions and row-major cell values.
// It may be called once per Reader; a second call returns game.ErrInternalMisuse.
func (r *Reader) ReadMap() (*game.Map, error) {
	if r.mapRead {
		return nil, game.ErrInternalMisuse
	}
	r.mapRead = true
	return readGrid(r.t)
}

func readGrid(t *tokens) (*game.Map, error) {
	rows, err := t.count("map rows")
	if err != nil {
		return nil, err
	}
	cols, err := t.count("map cols")
	if err != nil {
		return nil, err
	}

	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
		for x := range grid[y] {
			if grid[y][x], err = t.next("map cell"); err != nil {
				return nil, err
			}
		}
	}
	return game.NewMap(rows, cols, grid)
}

// ReadTurn reads the next turn's rosters and coins and returns the state
// following prev.
func (r *Reader) ReadTurn(prev game.State) (game.State, error) {
	attackers, err := readRoster(r.t, game.RoleAttacker)
	if err != nil {
		return game.State{}, err
	}
	defenders, err := readRoster(r.t, game.RoleDefender)
	if err != nil {
		return game.State{}, err
	}
	coins, err := r.t.count("coins left")
	if err != nil {
		return game.State{}, err
	}
	return prev.Next(attackers, defenders, coins), nil
}

// readRoster reads a count followed by that many "id x y type hp" rows.
func readRoster(t *tokens, role game.Role) ([]game.Actor, error) {
	what := "attacker"
	if role == game.RoleDefender {
		what = "defender"
	}

	n, err := t.count(what + " count")
	if err != nil {
		return nil, err
	}

	actors := make([]game.Actor, 0, n)
	for i := 0; i < n; i++ {
		var id, x, y, typ, hp int
		if err := t.ints(what, &id, &x, &y, &typ, &hp); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", what, i, err)
		}
		actors = append(actors, game.Actor{
			Role:     role,
			ID:       id,
			HP:       hp,
			Type:     typ,
			Position: core.P(x, y),
		})
	}
	return actors, nil
}

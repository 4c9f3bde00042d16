package game

import (
	"fmt"

	"github.com/vovakirdan/td-bot/internal/core"
)

// Map is the initial grid sent by the driver. Positive cells hold defender
// type codes, zero cells are empty. Grid is row-major: Grid[y][x].
type Map struct {
	grid     [][]int
	rows     int
	cols     int
	consumed bool
}

// NewMap creates a map from row-major grid values.
// Every row must have exactly cols entries.
func NewMap(rows, cols int, grid [][]int) (*Map, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("game: invalid map size %dx%d", rows, cols)
	}
	if len(grid) != rows {
		return nil, fmt.Errorf("game: map has %d rows, expected %d", len(grid), rows)
	}

	cells := make([][]int, rows)
	for y, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("game: map row %d has %d cells, expected %d", y, len(row), cols)
		}
		cells[y] = append([]int(nil), row...)
	}

	return &Map{grid: cells, rows: rows, cols: cols}, nil
}

// Rows returns the number of grid rows.
func (m *Map) Rows() int {
	return m.rows
}

// Cols returns the number of grid columns.
func (m *Map) Cols() int {
	return m.cols
}

// Cell returns the value at (x, y), or 0 if out of bounds.
func (m *Map) Cell(x, y int) int {
	if y < 0 || y >= m.rows || x < 0 || x >= m.cols {
		return 0
	}
	return m.grid[y][x]
}

// SpawnDefenders derives the initial defender roster. Cells are scanned
// column by column (x outer, y inner) and ids are handed out 0, 1, 2... in
// that scan order. Health comes from the defender attribute table.
//
// The derivation may run once per Map; later calls return ErrInternalMisuse.
func (m *Map) SpawnDefenders(table core.AttributeTable) ([]Actor, error) {
	if m.consumed {
		return nil, ErrInternalMisuse
	}
	m.consumed = true

	defenders := make([]Actor, 0)
	id := 0
	for x := 0; x < m.cols; x++ {
		for y := 0; y < m.rows; y++ {
			typ := m.grid[y][x]
			if typ <= 0 {
				continue
			}
			attrs := table.Defender(typ)
			defenders = append(defenders, NewDefender(id, attrs.HP, typ, core.P(x, y)))
			id++
		}
	}
	return defenders, nil
}

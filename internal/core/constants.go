// Package core provides the fundamental value types shared by the bot:
// board geometry, the attribute table and the per-match constants.
package core

// Constants are the per-match values read once from the driver before the
// first turn. Components receive them by pointer and treat them as read-only.
type Constants struct {
	Turns    int // Number of turns after turn 0
	MaxCoins int // Coin budget at turn 0
	Board    Board
	Table    AttributeTable
}

// ColumnSource selects which header value becomes the board width.
type ColumnSource string

const (
	// ColumnsFromCols uses the column count sent by the driver.
	ColumnsFromCols ColumnSource = "cols"
	// ColumnsFromRows copies the row count into the width, so every board
	// is square.
	ColumnsFromRows ColumnSource = "rows"
)

// BoardFor returns the board geometry for the given header dimensions.
func (c ColumnSource) BoardFor(rows, cols int) Board {
	if c == ColumnsFromRows {
		return NewBoard(rows, rows)
	}
	return NewBoard(rows, cols)
}

// Valid reports whether c is a known column source.
func (c ColumnSource) Valid() bool {
	return c == ColumnsFromCols || c == ColumnsFromRows
}

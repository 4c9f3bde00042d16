package core

// Board holds the map dimensions consulted by the spawn geometry.
type Board struct {
	Rows int
	Cols int
}

// NewBoard creates a board with the given dimensions.
func NewBoard(rows, cols int) Board {
	return Board{Rows: rows, Cols: cols}
}

// InBounds returns true if the position lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// IsValidSpawnPosition returns true if the position is on the board and on
// its outer ring. On a board one cell wide every in-bounds cell qualifies.
func (b Board) IsValidSpawnPosition(p Position) bool {
	if !b.InBounds(p) {
		return false
	}
	return p.X == 0 || p.Y == 0 || p.X == b.Cols-1 || p.Y == b.Rows-1
}

// ValidSpawnPositions returns every perimeter cell exactly once, in order:
//   - left column, y = 0..Rows-1
//   - top row, x = 1..Cols-1
//   - right column, y = 1..Rows-1
//   - bottom row, x = 1..Cols-2
//
// Strategies cycle through this slice by index, so the order must not change.
func (b Board) ValidSpawnPositions() []Position {
	if b.Rows <= 0 || b.Cols <= 0 {
		return nil
	}

	positions := make([]Position, 0, b.PerimeterLen())

	// Left column, both left corners included
	for y := 0; y < b.Rows; y++ {
		positions = append(positions, P(0, y))
	}

	// Top row, top-right corner included
	for x := 1; x < b.Cols; x++ {
		positions = append(positions, P(x, 0))
	}

	// Right column, bottom-right corner included
	for y := 1; y < b.Rows; y++ {
		positions = append(positions, P(b.Cols-1, y))
	}

	// Bottom row, corners already emitted
	for x := 1; x+1 < b.Cols; x++ {
		positions = append(positions, P(x, b.Rows-1))
	}

	return positions
}

// PerimeterLen returns 2*Rows + 2*Cols - 4, the number of perimeter cells on
// a board at least 2x2. Single-row or single-column boards are not covered:
// ValidSpawnPositions follows the same four sweeps there and repeats cells.
func (b Board) PerimeterLen() int {
	if b.Rows <= 0 || b.Cols <= 0 {
		return 0
	}
	return max(2*b.Rows+2*b.Cols-4, 0)
}

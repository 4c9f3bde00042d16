package tui

import (
	"github.com/vovakirdan/td-bot/internal/core"
)

// Board glyphs. Each board cell takes two canvas columns.
const (
	glyphInterior  = '.'
	glyphPerimeter = ':'
	glyphSpawn     = '*'
	cellWidth      = 2
)

// DrawBoard draws a frame onto a canvas covering both board and the map size
// in extent. The perimeter comes from board; map cells outside it are
// interior. Later layers win: perimeter, spawn requests, defenders, attackers.
func DrawBoard(board, extent core.Board, f Frame) *Canvas {
	rows, cols := max(board.Rows, extent.Rows), max(board.Cols, extent.Cols)
	c := NewCanvas(cols*cellWidth, rows)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if board.IsValidSpawnPosition(core.P(x, y)) {
				c.Set(x*cellWidth, y, glyphPerimeter, TintPerimeter)
			} else {
				c.Set(x*cellWidth, y, glyphInterior, TintGrid)
			}
		}
	}

	for _, s := range f.Actions.Spawns {
		c.Set(s.Position.X*cellWidth, s.Position.Y, glyphSpawn, TintSpawn)
	}

	targeted := make(map[int]bool, len(f.Actions.Targets))
	for _, t := range f.Actions.Targets {
		targeted[t.DefenderID] = true
	}
	for _, d := range f.Defenders {
		tint := TintDefender
		if targeted[d.ID] {
			tint = TintTarget
		}
		c.Set(d.Position.X*cellWidth, d.Position.Y, typeGlyph('0', d.Type), tint)
	}

	for _, a := range f.Attackers {
		c.Set(a.Position.X*cellWidth, a.Position.Y, typeGlyph('a'-1, a.Type), TintAttacker)
	}

	return c
}

// typeGlyph maps a type code to base+typ, or '?' outside a single glyph range.
func typeGlyph(base rune, typ int) rune {
	if typ < 1 || typ > 9 {
		return '?'
	}
	return base + rune(typ)
}

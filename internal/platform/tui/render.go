package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// tintStyles maps canvas tints to lipgloss styles.
var tintStyles = map[Tint]lipgloss.Style{
	TintDefault:   lipgloss.NewStyle(),
	TintGrid:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	TintPerimeter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	TintDefender:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	TintAttacker:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	TintSpawn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	TintTarget:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	TintLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same tint to minimize ANSI escape sequences.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same tint
		x := 0
		for x < c.Width() {
			start := c.Get(x, y).Tint

			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Tint != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := tintStyles[start]
			if !ok {
				style = tintStyles[TintDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// Package tui provides the Bubble Tea screens for inspecting recorded
// matches: a match browser and a turn-by-turn replay viewer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/td-bot/internal/core"
	"github.com/vovakirdan/td-bot/internal/storage"
)

// Replay layout constants
const (
	autoplayRate   = 4  // Turns per second while playing
	minPanelWidth  = 30 // Minimum width of the actions/log panel
	panelLogLines  = 12 // Log lines shown below the actions
	maxActionLines = 8  // Spawn/target lines shown before eliding
)

// TickMsg advances an auto-playing replay by one turn.
type TickMsg time.Time

// autoplayTick schedules the next TickMsg at rate turns per second.
func autoplayTick(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReplayModel is the Bubble Tea model for stepping through a recorded match.
type ReplayModel struct {
	match    storage.Match
	board    core.Board // Geometry the strategy played on
	extent   core.Board // Size of the recorded map
	frames   []Frame
	cursor   int
	playing  bool
	help     help.Model
	keys     ReplayKeyMap
	width    int
	height   int
	quitting bool
}

// NewReplayModel creates a replay viewer positioned on the first turn.
func NewReplayModel(match storage.Match, frames []Frame, width, height int) ReplayModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	return ReplayModel{
		match:  match,
		board:  match.Board(),
		extent: core.NewBoard(match.Rows, match.Cols),
		frames: frames,
		help:   h,
		keys:   DefaultReplayKeyMap(),
		width:  width,
		height: height,
	}
}

// Board returns the spawn geometry the replay draws the perimeter from.
func (m ReplayModel) Board() core.Board {
	return m.board
}

// Cursor returns the index of the displayed frame.
func (m ReplayModel) Cursor() int {
	return m.cursor
}

// Playing reports whether autoplay is on.
func (m ReplayModel) Playing() bool {
	return m.playing
}

// Init initializes the replay model.
func (m ReplayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay viewer.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Prev):
			m.playing = false
			m.step(-1)

		case key.Matches(msg, m.keys.Next):
			m.playing = false
			m.step(1)

		case key.Matches(msg, m.keys.First):
			m.playing = false
			m.cursor = 0

		case key.Matches(msg, m.keys.Last):
			m.playing = false
			m.cursor = max(len(m.frames)-1, 0)

		case key.Matches(msg, m.keys.Play):
			if len(m.frames) == 0 {
				return m, nil
			}
			m.playing = !m.playing
			if m.playing {
				if m.cursor == len(m.frames)-1 {
					m.cursor = 0
				}
				return m, autoplayTick(autoplayRate)
			}

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case TickMsg:
		if !m.playing {
			return m, nil
		}
		m.step(1)
		if m.cursor == len(m.frames)-1 {
			m.playing = false
			return m, nil
		}
		return m, autoplayTick(autoplayRate)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// step moves the cursor by delta, clamped to the recorded turns.
func (m *ReplayModel) step(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.frames)-1, 0))
}

// View renders the replay viewer.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n\n")

	if len(m.frames) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No turns recorded for this match."))
	} else {
		b.WriteString(m.renderFrame(m.frames[m.cursor]))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ReplayModel) title() string {
	id := m.match.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if len(m.frames) == 0 {
		return fmt.Sprintf("MATCH %s - %s", id, m.match.Strategy)
	}
	f := m.frames[m.cursor]
	status := ""
	if m.playing {
		status = " [playing]"
	}
	return fmt.Sprintf("MATCH %s - %s - turn %d/%d - coins %d%s",
		id, m.match.Strategy, f.Turn, m.match.Turns, f.CoinsLeft, status)
}

// renderFrame renders the board next to the actions and log panel.
func (m ReplayModel) renderFrame(f Frame) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	board := boxStyle.Render(RenderCanvas(DrawBoard(m.board, m.extent, f)) + "\n\n" + legend())

	panelWidth := max(m.width-lipgloss.Width(board)-6, minPanelWidth)
	panel := boxStyle.Width(panelWidth).Render(m.renderPanel(f, panelWidth-2))

	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
}

func legend() string {
	label := tintStyles[TintLabel]
	return strings.Join([]string{
		tintStyles[TintAttacker].Render("a-i") + label.Render(" attacker"),
		tintStyles[TintDefender].Render("1-9") + label.Render(" defender"),
		tintStyles[TintTarget].Render("1-9") + label.Render(" targeted"),
		tintStyles[TintSpawn].Render("*") + label.Render("   spawn request"),
	}, "\n")
}

// renderPanel lists the turn's actions followed by the tail of its log.
func (m ReplayModel) renderPanel(f Frame, width int) string {
	heading := lipgloss.NewStyle().Bold(true)
	dim := tintStyles[TintLabel]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("Spawns (%d)", len(f.Actions.Spawns))))
	for i, s := range f.Actions.Spawns {
		if i == maxActionLines {
			b.WriteString(dim.Render(fmt.Sprintf("  ... %d more", len(f.Actions.Spawns)-i)) + "\n")
			break
		}
		fmt.Fprintf(&b, "  type %d at %s\n", s.Type, s.Position)
	}

	fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("Targets (%d)", len(f.Actions.Targets))))
	for i, t := range f.Actions.Targets {
		if i == maxActionLines {
			b.WriteString(dim.Render(fmt.Sprintf("  ... %d more", len(f.Actions.Targets)-i)) + "\n")
			break
		}
		fmt.Fprintf(&b, "  %d -> %d\n", t.AttackerID, t.DefenderID)
	}

	fmt.Fprintf(&b, "\n%s\n", heading.Render("Log"))
	lines := strings.Split(strings.TrimRight(f.Log, "\n"), "\n")
	if len(lines) > panelLogLines {
		lines = lines[len(lines)-panelLogLines:]
	}
	for _, line := range lines {
		if lipgloss.Width(line) > width {
			line = line[:max(width-1, 0)] + "~"
		}
		b.WriteString(dim.Render(line) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RunReplay runs the replay viewer for a recorded match.
func RunReplay(match storage.Match, turns []storage.Turn, width, height int) error {
	frames, err := DecodeFrames(turns)
	if err != nil {
		return fmt.Errorf("replay %s: %w", match.ID, err)
	}

	p := tea.NewProgram(
		NewReplayModel(match, frames, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

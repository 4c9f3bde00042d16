package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/td-bot/internal/storage"
)

// Match browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show strategy sidebar
	sidebarWidth       = 20  // Width of strategy sidebar
	maxMatches         = 200 // Max matches to load
	allStrategies      = "all"
)

// MatchesModel is the Bubble Tea model for browsing recorded matches.
type MatchesModel struct {
	all         []storage.Match
	strategies  []string // Filter entries, "all" first
	filter      int      // Selected strategy filter index
	shown       []storage.Match
	table       table.Model
	help        help.Model
	keys        MatchesKeyMap
	width       int
	height      int
	selected    string // Match id chosen with Open
	quitting    bool
	showSidebar bool
}

// NewMatchesModel creates a browser over matches, newest first.
func NewMatchesModel(matches []storage.Match, width, height int) MatchesModel {
	strategies := []string{allStrategies}
	for _, mt := range matches {
		if !slices.Contains(strategies, mt.Strategy) {
			strategies = append(strategies, mt.Strategy)
		}
	}
	slices.Sort(strategies[1:])

	h := help.New()
	h.ShowAll = false

	m := MatchesModel{
		all:         matches,
		strategies:  strategies,
		keys:        DefaultMatchesKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.applyFilter()
	return m
}

// createTable creates a new table sized for the current window.
func (m *MatchesModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Match", Width: 10},
		{Title: "Strategy", Width: 12},
		{Title: "Board", Width: 7},
		{Title: "Turns", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// applyFilter selects the matches of the current strategy filter.
func (m *MatchesModel) applyFilter() {
	want := m.strategies[m.filter]
	var shown []storage.Match
	for _, mt := range m.all {
		if want == allStrategies || mt.Strategy == want {
			shown = append(shown, mt)
		}
	}
	m.shown = shown
	m.updateTableRows()
}

// updateTableRows updates the table with the shown matches.
func (m *MatchesModel) updateTableRows() {
	m.table.SetRows(MatchRows(m.shown))
	m.table.GotoTop()
}

// MatchRows formats matches as table rows.
func MatchRows(matches []storage.Match) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, mt := range matches {
		board := mt.Board()
		rows[i] = table.Row{
			shortID(mt.ID),
			mt.Strategy,
			fmt.Sprintf("%dx%d", board.Rows, board.Cols),
			fmt.Sprintf("%d/%d", max(mt.Played-1, 0), mt.Turns),
			mt.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the match browser.
func (m MatchesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the match browser.
func (m MatchesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Open):
			if i := m.table.Cursor(); i >= 0 && i < len(m.shown) {
				m.selected = m.shown[i].ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.NextStrategy):
			m.filter = (m.filter + 1) % len(m.strategies)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevStrategy):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.strategies) - 1
			}
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the match browser.
func (m MatchesModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RECORDED MATCHES - %s (%d)", m.strategies[m.filter], len(m.shown))
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.strategies[m.filter]), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the strategy filter list.
func (m MatchesModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Strategies\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, s := range m.strategies {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.filter {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := s
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m MatchesModel) renderTableContent() string {
	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nRun with --record to keep match history.")
	}

	return m.table.View()
}

// Selected returns the id of the match chosen for replay, if any.
func (m MatchesModel) Selected() string {
	return m.selected
}

// RunMatches runs the match browser. It returns the id of the match the
// user chose to replay, or an empty string if they quit.
func RunMatches(store *storage.Store, width, height int) (string, error) {
	matches, err := store.RecentMatches(maxMatches)
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(
		NewMatchesModel(matches, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MatchesModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}

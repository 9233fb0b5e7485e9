package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show level list sidebar
	sidebarWidth       = 22  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load per level
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run log screen.
type ScoreboardModel struct {
	levels      []int // Level numbers, one tab each
	cursor      int   // Currently selected level index
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.LevelStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool // Whether to show level list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	levels := make([]int, solarcity.LevelCount())
	for i := range levels {
		levels[i] = i + 1
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		levels:      levels,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// level returns the selected level number.
func (m *ScoreboardModel) level() int {
	return m.levels[m.cursor]
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Points", Width: 7},
		{Title: "Panels", Width: 7},
		{Title: "Outcome", Width: 9},
		{Title: "Date", Width: 12},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give the date column whatever is left, up to a full timestamp.
	if extra := tableWidth - 50; extra > 0 {
		columns[4].Width += min(extra, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and stats of the selected level.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.runs, m.loadErr = m.store.TopRuns(m.level(), maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetLevelStats(m.level())
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Points),
			fmt.Sprintf("%d/%d", r.Panels, r.Buildings),
			r.Outcome,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.levels)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			m.cursor = (m.cursor + len(m.levels) - 1) % len(m.levels)
			m.loadRuns()
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

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RUN LOG - %s - Level %d", solarcity.GameTitle, m.level())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the run log with a level sidebar.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, level := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%sLevel %d", cursor, level)))
		sidebar.WriteString("\n")
	}

	if stats := m.statsLines(); len(stats) > 0 {
		sidebar.WriteString("\n")
		sidebar.WriteString(strings.Join(stats, "\n"))
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the run log with level tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("28")).
		Padding(0, 1)

	tabs := make([]string, len(m.levels))
	for i, level := range m.levels {
		name := fmt.Sprintf("Level %d", level)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// statsLines summarizes the selected level for the sidebar.
func (m ScoreboardModel) statsLines() []string {
	if m.stats == nil || m.stats.Runs == 0 {
		return nil
	}
	return []string{
		fmt.Sprintf("Runs: %d", m.stats.Runs),
		fmt.Sprintf("Won:  %.0f%%", m.stats.WinRate()*100),
		fmt.Sprintf("Best: %d", m.stats.BestScore),
		fmt.Sprintf("CO2:  %.0f kg", m.stats.TotalCO2),
	}
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("The run log is disabled.\nPass --db to record finished levels.")
	case m.loadErr != nil:
		return emptyStyle.Render("Cannot read the run log:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a level to fill the log!")
	}

	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the run log screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

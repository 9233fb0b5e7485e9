package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/platform/runlog"
	"github.com/vovakirdan/solar-city/internal/storage"
)

// Rows kept below the playfield for the help footer.
const (
	shortHelpRows = 1
	fullHelpRows  = 3
)

// Options configures a terminal session.
type Options struct {
	Config  core.RuntimeConfig
	MaxStep float64           // Upper bound for one simulation step in seconds
	Events  solarcity.Emitter // Sound cues; nil drops them
	Store   *storage.Store    // Run log; nil disables it
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running Solar City.
type Model struct {
	machine  *solarcity.Machine
	screen   *core.Screen
	clock    *core.FrameClock
	runs     *runlog.Saver
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	machine := solarcity.NewMachine(solarcity.Deps{
		Rand:   rand.New(rand.NewSource(cfg.Seed)), //#nosec G404 -- gameplay randomness
		Events: opts.Events,
		Logger: logger,
	})

	return Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-shortHelpRows)),
		clock:   core.NewFrameClock(opts.MaxStep),
		runs:    runlog.NewSaver(opts.Store, logger, cfg.Seed),
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Machine returns the simulation driven by the model.
func (m Model) Machine() *solarcity.Machine {
	return m.machine
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()

	case key.Matches(msg, m.keys.Confirm):
		// The first button of every screen is the one that moves forward.
		if buttons := solarcity.Buttons(m.machine.State(), m.machine.Level()); len(buttons) > 0 {
			m.click(buttons[0].Rect.Center())
		}

	case key.Matches(msg, m.keys.Install):
		i, ok := buildingIndex(msg)
		if !ok || m.machine.State() != solarcity.StatePlaying {
			break
		}
		if b := m.machine.Session().Buildings; i < len(b) {
			m.click(b[i].Bounds.Center())
		}
	}

	return m, nil
}

// handleMouse maps a left press on a cell to a world click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	w, h := m.screen.Width(), m.screen.Height()
	if msg.X < 0 || msg.Y < 0 || msg.X >= w || msg.Y >= h {
		return m, nil
	}

	m.click(solarcity.CellToWorld(msg.X, msg.Y, w, h))
	return m, nil
}

func (m Model) click(x, y int) {
	if m.machine.Click(x, y) {
		m.runs.Observe(m.machine)
	}
}

// handleResize processes window resize events. The world is fixed size, so
// only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the playfield to the terminal minus the help footer.
func (m Model) fitScreen() {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	m.screen.Resize(m.config.ScreenW, core.Max(0, m.config.ScreenH-rows))
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.machine.Tick(m.clock.Step(now))
	m.runs.Observe(m.machine)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	solarcity.Render(m.machine.Snapshot(), m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".solarcity", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%d_%s_%s.txt", m.machine.Level(), m.machine.State(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	solarcity.Render(m.machine.Snapshot(), m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for one terminal session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

package solarcity

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solar-city/internal/core"
)

// State is the UI state of the game.
type State int

const (
	StateMenu State = iota
	StateTutorial
	StatePlaying
	StateGameOver
	StateVictory
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateTutorial:
		return "tutorial"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends a session.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}

var panelParticleColor = core.PanelBlue

// Deps are the collaborators of a Machine. Zero fields get defaults.
type Deps struct {
	Rand   *rand.Rand  // Panel output, layout jitter and particles; time-seeded if nil
	Events Emitter     // Audio cues; discarded if nil
	Logger *log.Logger // Transition log; discarded if nil
}

// Machine is the game state machine. It owns the active Session and is
// driven from a single goroutine through Tick and Click.
type Machine struct {
	state     State
	level     int
	session   *Session
	particles *ParticlePool

	rng    *rand.Rand
	events Emitter
	logger *log.Logger
}

// NewMachine creates a machine in the menu at level 1. A level-1 session is
// built right away so hosts always have a roster to draw.
func NewMachine(deps Deps) *Machine {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- game randomness
	}
	if deps.Events == nil {
		deps.Events = nopEmitter{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	m := &Machine{
		state:     StateMenu,
		level:     1,
		rng:       deps.Rand,
		events:    deps.Events,
		logger:    deps.Logger,
		particles: NewParticlePool(deps.Rand),
	}
	m.resetLevel(1)
	return m
}

// State returns the current UI state.
func (m *Machine) State() State { return m.state }

// Level returns the current 1-based level.
func (m *Machine) Level() int { return m.level }

// Session returns the active session. Hosts must treat it as read-only.
func (m *Machine) Session() *Session { return m.session }

// Particles returns the live particles. Hosts must treat them as read-only.
func (m *Machine) Particles() []Particle { return m.particles.Particles() }

// Tick advances the simulation by dt seconds.
func (m *Machine) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}

	m.particles.Tick(dt)
	for i := range m.session.Buildings {
		m.session.Buildings[i].Tick(dt)
	}

	if m.state != StatePlaying {
		return
	}

	s := m.session

	// Past the deadline only the storm clock runs.
	if s.StormActive {
		if s.Advance(dt) {
			s.Outcome = OutcomeStorm
			m.setState(StateGameOver)
			m.emit(playDefeat())
		}
		return
	}

	switch s.integrate(dt) {
	case stepVictory:
		s.Outcome = OutcomeVictory
		m.setState(StateVictory)
		m.emit(setMusicVolume(VolumeLow))
		m.emit(playVictory())
		return
	case stepBlackout:
		s.Outcome = OutcomeBlackout
		m.setState(StateGameOver)
		m.emit(setMusicVolume(VolumeLow))
		m.emit(playDefeat())
		return
	}

	if s.Elapsed >= s.TargetTime && s.Latch() {
		m.logger.Debug("storm started", "level", m.level, "energy", s.Energy, "panels", s.PanelsInstalled)
		m.emit(setMusicVolume(VolumeLow))
		m.emit(playThunder())
	}
}

// Click handles a pointer press at world coordinates (x, y) and reports
// whether it did anything.
func (m *Machine) Click(x, y int) bool {
	if m.state == StatePlaying {
		return m.clickBuilding(x, y)
	}

	id, ok := HitButton(m.state, m.level, x, y)
	if !ok {
		return false
	}

	switch id {
	case ButtonStart:
		m.level = 1
		m.setState(StateTutorial)
	case ButtonBegin:
		m.resetLevel(m.level)
		m.setState(StatePlaying)
	case ButtonRetry:
		m.resetLevel(m.level)
		m.setState(StatePlaying)
	case ButtonNext:
		m.level = NextLevel(m.level)
		m.resetLevel(m.level)
		m.setState(StatePlaying)
	case ButtonMenu:
		m.toMenu()
	default:
		return false
	}
	return true
}

func (m *Machine) clickBuilding(x, y int) bool {
	s := m.session
	for i := range s.Buildings {
		b := &s.Buildings[i]
		if !b.Bounds.Contains(x, y) {
			continue
		}
		if !b.InstallSolar(m.rng) {
			return false
		}
		s.PanelsInstalled++
		s.Points += installPoints
		m.particles.SpawnBurst(b.PanelAnchor(), panelParticleColor, BurstSize)
		m.logger.Debug("panel installed", "building", b.Name, "generation", b.Generation, "panels", s.PanelsInstalled)
		return true
	}
	return false
}

// resetLevel replaces the session with a fresh one for level.
func (m *Machine) resetLevel(level int) {
	m.session = NewSession(BuildConfig(level), m.rng)
	m.particles.Clear()
	m.emit(setMusicVolume(VolumeNormal))
	m.logger.Debug("level loaded", "level", level, "buildings", len(m.session.Buildings))
}

func (m *Machine) toMenu() {
	m.level = 1
	m.setState(StateMenu)
	m.emit(setMusicVolume(VolumeNormal))
}

func (m *Machine) setState(next State) {
	if next == m.state {
		return
	}
	m.logger.Debug("state change", "from", m.state, "to", next, "level", m.level,
		"elapsed", m.session.Elapsed, "points", m.session.Points)
	m.state = next
}

func (m *Machine) emit(e Event) {
	m.events.Emit(e)
}

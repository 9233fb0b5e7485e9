// Package window runs Solar City in a desktop window with Ebitengine.
// The logical screen is the 1200x800 world, so cursor positions are world
// pixels and Ebitengine handles the scaling.
package window

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/platform/runlog"
	"github.com/vovakirdan/solar-city/internal/storage"
)

// Options configures a window session.
type Options struct {
	Title  string
	Scale  float64 // Window size relative to the world
	TPS    int     // Updates per second
	Seed   int64   // 0 means time-based
	Events solarcity.Emitter
	Store  *storage.Store
	Logger *log.Logger
}

// Game implements ebiten.Game on top of the simulation.
type Game struct {
	machine *solarcity.Machine
	runs    *runlog.Saver
	sky     *Sky
	fonts   *Fonts
	logger  *log.Logger
	dt      float64 // Fixed step, 1/TPS
	snap    solarcity.Snapshot
}

// NewGame builds the simulation and loads fonts.
func NewGame(opts Options) (*Game, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	//#nosec G404 -- gameplay randomness
	rng := rand.New(rand.NewSource(opts.Seed))
	machine := solarcity.NewMachine(solarcity.Deps{
		Rand:   rng,
		Events: opts.Events,
		Logger: logger,
	})

	g := &Game{
		machine: machine,
		runs:    runlog.NewSaver(opts.Store, logger, opts.Seed),
		// The sky has its own source so visual effects never shift the
		// simulation's random sequence.
		sky:    NewSky(rand.New(rand.NewSource(opts.Seed + 1))), //#nosec G404
		fonts:  fonts,
		logger: logger,
		dt:     1 / float64(opts.TPS),
	}
	g.snap = machine.Snapshot()
	return g, nil
}

// Update reads input and advances the simulation by one fixed step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.machine.Click(x, y) {
			g.runs.Observe(g.machine)
		}
	}

	g.step(g.dt)
	return nil
}

// step advances the simulation and the sky by dt.
func (g *Game) step(dt float64) {
	g.machine.Tick(dt)
	g.runs.Observe(g.machine)

	g.snap = g.machine.Snapshot()
	g.sky.Update(dt, &g.snap)
}

// Draw renders the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := &g.snap

	switch snap.State {
	case solarcity.StateMenu:
		g.drawMenu(screen)
	case solarcity.StateTutorial:
		g.drawTutorial(screen)
	case solarcity.StatePlaying:
		g.drawPlaying(screen, snap)
	case solarcity.StateGameOver:
		g.drawGameOver(screen, &snap.Session)
	case solarcity.StateVictory:
		g.drawVictory(screen, &snap.Session)
	}

	g.drawButtons(screen, snap)
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WorldW, core.WorldH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(core.WorldW*scale), int(core.WorldH*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	g.logger.Debug("window open", "scale", scale, "tps", ebiten.TPS())
	return ebiten.RunGame(g)
}

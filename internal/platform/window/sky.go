package window

import (
	"math/rand"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

// Sky animation constants, world pixels and seconds.
const (
	cloudCount      = 5
	cloudWrap       = 150
	rainSpawnChance = 0.8
	rainDropLength  = 15
	flashDecay      = 5 // Flash intensity lost per second
	boltSegments    = 6
	confettiCount   = 40
)

// Cloud drifts to the right and wraps around the window.
type Cloud struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// Drop is a falling rain streak.
type Drop struct {
	X, Y  float64
	Speed float64
}

// Confetti is one dot of the victory screen.
type Confetti struct {
	X, Y  float64
	Size  float64
	Color core.RGB
}

// Sky holds the purely visual weather of the window host: clouds, rain,
// lightning and confetti. It never feeds back into the simulation.
type Sky struct {
	rng      *rand.Rand
	Clouds   []Cloud
	Drops    []Drop
	Flash    float64     // Lightning overlay intensity in [0, 1]
	Bolt     []core.Vec2 // Last lightning path, empty when none
	Confetti []Confetti
}

// NewSky creates the sky with a fresh set of clouds.
func NewSky(rng *rand.Rand) *Sky {
	s := &Sky{rng: rng}
	for range cloudCount {
		s.Clouds = append(s.Clouds, Cloud{
			X:     float64(rng.Intn(core.WorldW)),
			Y:     float64(50 + rng.Intn(100)),
			Speed: 0.5 + rng.Float64(),
			Size:  float64(70 + rng.Intn(51)),
		})
	}
	return s
}

// Update advances the sky by dt seconds for the given frame.
func (s *Sky) Update(dt float64, snap *solarcity.Snapshot) {
	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X += c.Speed * dt * 30
		if c.X > core.WorldW+cloudWrap {
			c.X = -cloudWrap
		}
	}

	if s.Flash > 0 {
		s.Flash = core.ClampF(s.Flash-dt*flashDecay, 0, 1)
	}

	s.updateRain(dt, snap.State == solarcity.StatePlaying && snap.Session.StormActive)

	if snap.State == solarcity.StatePlaying && snap.Lightning(s.rng.Float64()) {
		s.strike()
	}
	if s.Flash == 0 {
		s.Bolt = s.Bolt[:0]
	}

	if snap.State == solarcity.StateVictory {
		s.scatterConfetti()
	} else {
		s.Confetti = s.Confetti[:0]
	}
}

func (s *Sky) updateRain(dt float64, storm bool) {
	if !storm {
		s.Drops = s.Drops[:0]
		return
	}

	if s.rng.Float64() < rainSpawnChance {
		s.Drops = append(s.Drops, Drop{
			X:     float64(s.rng.Intn(core.WorldW + 1)),
			Y:     -10,
			Speed: 400 + s.rng.Float64()*300,
		})
	}

	kept := s.Drops[:0]
	for _, d := range s.Drops {
		d.Y += d.Speed * dt
		if d.Y < core.WorldH {
			kept = append(kept, d)
		}
	}
	s.Drops = kept
}

// strike starts a flash and draws a new jagged bolt from the top edge.
func (s *Sky) strike() {
	s.Flash = 1
	x := float64(100 + s.rng.Intn(core.WorldW-199))
	y := 0.0
	s.Bolt = append(s.Bolt[:0], core.Vec2{X: x, Y: y})
	for range boltSegments {
		x += float64(s.rng.Intn(81) - 40)
		y += float64(50 + s.rng.Intn(51))
		s.Bolt = append(s.Bolt, core.Vec2{X: x, Y: y})
	}
}

var confettiColors = []core.RGB{
	{R: 255, G: 255, B: 0}, {R: 255, G: 100, B: 100},
	{R: 100, G: 255, B: 100}, {R: 100, G: 200, B: 255},
}

// scatterConfetti redraws the confetti every frame so it sparkles.
func (s *Sky) scatterConfetti() {
	s.Confetti = s.Confetti[:0]
	for range confettiCount {
		s.Confetti = append(s.Confetti, Confetti{
			X:     float64(s.rng.Intn(core.WorldW + 1)),
			Y:     float64(s.rng.Intn(core.WorldH + 1)),
			Size:  float64(4 + s.rng.Intn(9)),
			Color: confettiColors[s.rng.Intn(len(confettiColors))],
		})
	}
}

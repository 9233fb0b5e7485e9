package solarcity

import (
	"math/rand"

	"github.com/vovakirdan/solar-city/internal/core"
)

// Outcome explains how a session ended.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Still running
	OutcomeVictory                 // Every building got a panel before the deadline
	OutcomeBlackout                // Energy reached zero
	OutcomeStorm                   // The storm grace period ran out
)

// String returns the outcome name used in logs and the run log.
func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeBlackout:
		return "blackout"
	case OutcomeStorm:
		return "storm"
	default:
		return "none"
	}
}

// Session is the state of one attempt at a level. It is replaced wholesale
// on every level (re)start.
//
// A single record serves every UI state; which fields a screen reads:
//
//	menu, tutorial  none (the roster is only drawn as scenery)
//	playing         all fields
//	gameover        Level, TargetTime, PanelsInstalled, CO2Avoided, Points, Outcome
//	victory         PanelsInstalled, EnergyGenerated, CO2Avoided, SavingsPercent, Points, Tip
type Session struct {
	Level      int
	Elapsed    float64 // Frozen once the storm starts
	TargetTime float64
	Energy     float64 // Never negative
	Weather

	Points          float64
	CO2Avoided      float64
	PanelsInstalled int
	EnergyGenerated float64

	Buildings []Building
	Outcome   Outcome
	Tip       string
}

// NewSession builds a fresh session for the level config. The roster
// layout draws its jitter from rng.
func NewSession(cfg LevelConfig, rng *rand.Rand) *Session {
	rects := cfg.Rects(rng)
	buildings := make([]Building, len(cfg.Buildings))
	for i, spec := range cfg.Buildings {
		buildings[i] = NewBuilding(spec, rects[i], core.BuildingColor(i))
	}

	return &Session{
		Level:      cfg.Level,
		TargetTime: cfg.TargetTime,
		Energy:     cfg.InitialEnergy,
		Weather:    NewWeather(),
		Buildings:  buildings,
		Tip:        cfg.Tip,
	}
}

// TotalConsumption returns the energy drawn per second by the whole roster.
func (s *Session) TotalConsumption() float64 {
	total := 0
	for i := range s.Buildings {
		total += s.Buildings[i].Consumption
	}
	return float64(total)
}

// TotalGeneration returns the energy produced per second at the current
// sun intensity.
func (s *Session) TotalGeneration() float64 {
	total := 0.0
	for i := range s.Buildings {
		b := &s.Buildings[i]
		if b.HasSolar {
			total += float64(b.Generation) * s.SunIntensity
		}
	}
	return total
}

// Net returns generation minus consumption per second.
func (s *Session) Net() float64 {
	return s.TotalGeneration() - s.TotalConsumption()
}

// AllInstalled reports whether every building has a panel.
func (s *Session) AllInstalled() bool {
	return s.PanelsInstalled == len(s.Buildings)
}

// TimeLeft returns the seconds until the deadline.
func (s *Session) TimeLeft() float64 {
	left := s.TargetTime - s.Elapsed
	if left < 0 {
		return 0
	}
	return left
}

// EnergyRatio returns energy as a fraction of a full 100-unit battery,
// clamped to [0, 1].
func (s *Session) EnergyRatio() float64 {
	return core.ClampF(s.Energy/100, 0, 1)
}

// SavingsPercent returns the share of buildings running on solar.
func (s *Session) SavingsPercent() int {
	return s.PanelsInstalled * 100 / core.Max(1, len(s.Buildings))
}

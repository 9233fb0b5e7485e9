package solarcity

import (
	"math/rand"

	"github.com/vovakirdan/solar-city/internal/core"
)

// Panel output constants.
const (
	baseGeneration     = 22
	generationSpreadLo = -2  // Inclusive
	generationSpreadHi = 5   // Inclusive
	installDecayRate   = 2.0 // InstallProgress units per second
)

// Building is a single structure of the roster.
type Building struct {
	Name            string
	Consumption     int
	HasSolar        bool    // One-way: false until installed
	Generation      int     // 0 until installed, then in [20, 27]
	InstallProgress float64 // Cosmetic pop animation, 1.0 right after install down to 0
	Bounds          core.Rect
	Color           core.RGB
}

// NewBuilding creates an uninstalled building from its spec.
func NewBuilding(spec BuildingSpec, bounds core.Rect, color core.RGB) Building {
	return Building{
		Name:        spec.Name,
		Consumption: spec.Consumption,
		Bounds:      bounds,
		Color:       color,
	}
}

// InstallSolar puts a panel on the building.
// Returns false and changes nothing if a panel is already installed.
func (b *Building) InstallSolar(rng *rand.Rand) bool {
	if b.HasSolar {
		return false
	}

	b.HasSolar = true
	b.Generation = baseGeneration + generationSpreadLo +
		rng.Intn(generationSpreadHi-generationSpreadLo+1)
	b.InstallProgress = 1.0
	return true
}

// Tick decays the install animation.
func (b *Building) Tick(dt float64) {
	if b.InstallProgress <= 0 {
		return
	}
	b.InstallProgress -= dt * installDecayRate
	if b.InstallProgress < 0 {
		b.InstallProgress = 0
	}
}

// PanelAnchor returns the point where install particles burst from:
// horizontally centered, just above the roof-mounted panel.
func (b *Building) PanelAnchor() core.Vec2 {
	cx, _ := b.Bounds.Center()
	return core.Vec2{X: float64(cx), Y: float64(b.Bounds.Y - 25)}
}

// Package solarcity implements the Solar City simulation: a short arcade game
// where the player installs solar panels on buildings before a storm hits.
//
// The package holds pure game logic. Hosts drive it with Machine.Tick and
// Machine.Click and read Machine.Snapshot for drawing; audio and volume
// changes leave the package as Events through an Emitter.
package solarcity

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/solar-city/internal/core"
)

// BuildingSpec describes one building of a level roster.
type BuildingSpec struct {
	Name        string
	Consumption int // Energy units per second, drawn whether or not a panel is installed
}

// Layout places a level roster in the 1200x800 world.
type Layout struct {
	StartX  int // X of the first building
	Spacing int // Horizontal distance between building origins
	BaseY   int // Y of the building tops before jitter
	JitterY int // Tops vary uniformly in [BaseY-JitterY, BaseY+JitterY]
	Width   int
	Height  int
}

// LevelConfig is the immutable definition of a level.
type LevelConfig struct {
	Level         int
	Buildings     []BuildingSpec
	TargetTime    float64 // Seconds until the storm arrives
	InitialEnergy float64
	Layout        Layout
	Tip           string // Energy-saving tip shown after a win
}

// levels defines the three built-in tiers, easiest first.
var levels = []LevelConfig{
	{
		Level: 1,
		Buildings: []BuildingSpec{
			{Name: "Casa 1", Consumption: 3},
			{Name: "Casa 2", Consumption: 3},
			{Name: "Casa 3", Consumption: 3},
		},
		TargetTime:    5,
		InitialEnergy: 100,
		Layout:        Layout{StartX: 150, Spacing: 250, BaseY: 420, JitterY: 0, Width: 160, Height: 200},
		Tip:           "Desligue aparelhos da tomada quando não usar",
	},
	{
		Level: 2,
		Buildings: []BuildingSpec{
			{Name: "Casa", Consumption: 12},
			{Name: "Escola", Consumption: 11},
			{Name: "Loja", Consumption: 13},
			{Name: "Mercado", Consumption: 12},
			{Name: "Hospital", Consumption: 11},
		},
		TargetTime:    7,
		InitialEnergy: 70,
		Layout:        Layout{StartX: 100, Spacing: 200, BaseY: 400, JitterY: 20, Width: 140, Height: 210},
		Tip:           "Evite abrir geladeira desnecessariamente",
	},
	{
		Level: 3,
		Buildings: []BuildingSpec{
			{Name: "Fábrica 1", Consumption: 6},
			{Name: "Indústria", Consumption: 7},
			{Name: "Usinagem", Consumption: 8},
			{Name: "Depósito", Consumption: 6},
			{Name: "DataCenter", Consumption: 9},
			{Name: "Metalúrgica", Consumption: 8},
			{Name: "Refinaria", Consumption: 9},
			{Name: "Complexo", Consumption: 7},
		},
		TargetTime:    9,
		InitialEnergy: 50,
		Layout:        Layout{StartX: 50, Spacing: 140, BaseY: 390, JitterY: 30, Width: 120, Height: 220},
		Tip:           "Limpe filtros de ar-condicionado regularmente",
	},
}

// LevelCount returns the number of built-in levels.
func LevelCount() int {
	return len(levels)
}

// BuildConfig returns the configuration of the given 1-based level.
// The state machine only ever drives levels 1..LevelCount(), so any other
// value is a logic bug and panics.
func BuildConfig(level int) LevelConfig {
	if level < 1 || level > len(levels) {
		panic(fmt.Sprintf("solarcity: level %d out of range [1, %d]", level, len(levels)))
	}

	cfg := levels[level-1]
	cfg.Buildings = append([]BuildingSpec(nil), cfg.Buildings...)
	return cfg
}

// NextLevel returns the level that follows a won level. The last level
// loops back to the first.
func NextLevel(level int) int {
	if level < len(levels) {
		return level + 1
	}
	return 1
}

// TotalConsumption returns the summed consumption of the roster.
func (c LevelConfig) TotalConsumption() int {
	total := 0
	for _, b := range c.Buildings {
		total += b.Consumption
	}
	return total
}

// Rects assigns a bounding rectangle to every building of the roster.
// Vertical jitter is drawn from rng so layouts are reproducible per seed.
func (c LevelConfig) Rects(rng *rand.Rand) []core.Rect {
	l := c.Layout
	rects := make([]core.Rect, len(c.Buildings))
	for i := range c.Buildings {
		y := l.BaseY
		if l.JitterY > 0 {
			y += rng.Intn(2*l.JitterY+1) - l.JitterY
		}
		rects[i] = core.NewRect(l.StartX+i*l.Spacing, y, l.Width, l.Height)
	}
	return rects
}

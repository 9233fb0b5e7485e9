package solarcity

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/solar-city/internal/core"
)

func newTestBuilding() Building {
	return NewBuilding(BuildingSpec{Name: "Casa", Consumption: 3}, core.NewRect(100, 400, 160, 200), core.BuildingColor(0))
}

func TestInstallSolarGenerationRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		b := newTestBuilding()
		if !b.InstallSolar(rng) {
			t.Fatal("first install failed")
		}
		if b.Generation < 20 || b.Generation > 27 {
			t.Fatalf("generation %d outside [20, 27]", b.Generation)
		}
		seen[b.Generation] = true
	}

	for g := 20; g <= 27; g++ {
		if !seen[g] {
			t.Errorf("generation %d never drawn", g)
		}
	}
}

func TestInstallSolarOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := newTestBuilding()

	if !b.InstallSolar(rng) {
		t.Fatal("first install failed")
	}
	if !b.HasSolar || b.InstallProgress != 1.0 {
		t.Errorf("after install: HasSolar=%v InstallProgress=%v", b.HasSolar, b.InstallProgress)
	}

	gen := b.Generation
	b.InstallProgress = 0.3
	if b.InstallSolar(rng) {
		t.Error("second install succeeded")
	}
	if b.Generation != gen {
		t.Errorf("generation changed from %d to %d", gen, b.Generation)
	}
	if b.InstallProgress != 0.3 {
		t.Errorf("failed install touched InstallProgress: %v", b.InstallProgress)
	}
}

func TestBuildingTickDecay(t *testing.T) {
	b := newTestBuilding()
	b.InstallProgress = 1.0

	tests := []struct {
		dt       float64
		expected float64
	}{
		{0.25, 0.5},
		{0.1, 0.3},
		{1.0, 0},
		{1.0, 0},
	}
	for _, tc := range tests {
		b.Tick(tc.dt)
		if diff := b.InstallProgress - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("after Tick(%v): InstallProgress = %v, expected %v", tc.dt, b.InstallProgress, tc.expected)
		}
	}
}

func TestPanelAnchor(t *testing.T) {
	b := newTestBuilding()
	got := b.PanelAnchor()
	if got.X != 180 || got.Y != 375 {
		t.Errorf("PanelAnchor() = %+v, expected (180, 375)", got)
	}
}

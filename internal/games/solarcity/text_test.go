package solarcity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/solar-city/internal/core"
)

func TestEnergyBarColor(t *testing.T) {
	tests := []struct {
		energy   float64
		expected core.RGB
	}{
		{100, core.Grass},
		{51, core.Grass},
		{50, core.RGB{R: 255, G: 167, B: 38}},
		{26, core.RGB{R: 255, G: 167, B: 38}},
		{25, core.RGB{R: 244, G: 67, B: 54}},
		{0, core.RGB{R: 244, G: 67, B: 54}},
	}

	for _, tc := range tests {
		s := &Session{Energy: tc.energy}
		if got := EnergyBarColor(s); got != tc.expected {
			t.Errorf("energy %v: color %v, expected %v", tc.energy, got, tc.expected)
		}
	}
}

func TestHUDLines(t *testing.T) {
	s := &Session{
		Level:           2,
		Elapsed:         3.7,
		TargetTime:      7,
		Energy:          42.9,
		PanelsInstalled: 3,
		Points:          180.4,
		CO2Avoided:      55.5,
	}

	want := []string{"Nível: 2", "Tempo: 3s / 7s", "Painéis: 3", "Pontos: 180", "CO2: 55 kg"}
	lines := HUDLines(s)
	if len(lines) != len(want) {
		t.Fatalf("%d lines, expected %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.Text != want[i] {
			t.Errorf("line %d = %q, expected %q", i, l.Text, want[i])
		}
	}
	if got := EnergyLabel(s); got != "Energia: 42" {
		t.Errorf("EnergyLabel = %q", got)
	}
}

func TestVictoryLines(t *testing.T) {
	s := NewSession(BuildConfig(1), rand.New(rand.NewSource(1)))
	s.PanelsInstalled = 2
	s.EnergyGenerated = 120.9
	s.Points = 300

	lines := VictoryLines(s)
	if !strings.Contains(lines[3].Text, "66%") {
		t.Errorf("savings line %q, expected 66%%", lines[3].Text)
	}
	if !strings.Contains(lines[1].Text, "120") {
		t.Errorf("energy line %q", lines[1].Text)
	}
	if tip := VictoryTip(s); tip != "- "+BuildConfig(1).Tip {
		t.Errorf("VictoryTip = %q", tip)
	}
}

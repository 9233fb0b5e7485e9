package solarcity

import (
	"strings"
	"testing"

	"github.com/vovakirdan/solar-city/internal/core"
)

func TestCellWorldRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {120, 40}, {97, 31}, {200, 60}}

	for _, sz := range sizes {
		for cy := 0; cy < sz.h; cy++ {
			for cx := 0; cx < sz.w; cx++ {
				x, y := CellToWorld(cx, cy, sz.w, sz.h)
				gx, gy := WorldToCell(float64(x), float64(y), sz.w, sz.h)
				if gx != cx || gy != cy {
					t.Fatalf("%dx%d: cell (%d,%d) -> world (%d,%d) -> cell (%d,%d)", sz.w, sz.h, cx, cy, x, y, gx, gy)
				}
			}
		}
	}
}

func TestCellClickHitsButtons(t *testing.T) {
	const w, h = 80, 24

	for _, state := range []State{StateMenu, StateTutorial, StateGameOver, StateVictory} {
		for _, b := range Buttons(state, 1) {
			r := worldRect(b.Rect, w, h)
			x, y := CellToWorld(r.X+r.W/2, r.Y+r.H/2, w, h)
			if id, ok := HitButton(state, 1, x, y); !ok || id != b.ID {
				t.Errorf("%v: center cell of %q maps to (%d,%d), hit %v %v", state, b.Label, x, y, id, ok)
			}
		}
	}
}

func screenText(s *core.Screen) string {
	return s.String()
}

func TestRenderMenu(t *testing.T) {
	m, _ := newTestMachine(1)
	screen := core.NewScreen(100, 30)
	Render(m.Snapshot(), screen)

	out := screenText(screen)
	for _, want := range []string{GameTitle, "JOGAR", MenuHints[0]} {
		if !strings.Contains(out, want) {
			t.Errorf("menu screen missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	m, _ := startPlaying(t, 1)
	clickBuilding(m, 0)
	screen := core.NewScreen(100, 30)

	Render(m.Snapshot(), screen)
	out := screenText(screen)
	for _, want := range []string{"Energia: 100", "Nível: 1", "Painéis: 1", "Casa 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("playing screen missing %q", want)
		}
	}
	if strings.Contains(out, StormAlert) {
		t.Error("storm alert shown before the deadline")
	}

	m.Tick(5)
	Render(m.Snapshot(), screen)
	if !strings.Contains(screenText(screen), StormAlert) {
		t.Error("storm alert missing during the storm")
	}
}

func TestRenderEndScreens(t *testing.T) {
	m, _ := newTestMachine(4)
	forceLevel(m, 2)
	m.Tick(2)

	screen := core.NewScreen(100, 30)
	Render(m.Snapshot(), screen)
	out := screenText(screen)
	for _, want := range []string{GameOverTitle, "Energia esgotada", "TENTAR NOVAMENTE", "MENU INICIAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("gameover screen missing %q", want)
		}
	}

	forceLevel(m, 3)
	m.state = StateVictory
	Render(m.Snapshot(), screen)
	out = screenText(screen)
	for _, want := range []string{VictoryTitle, "JOGAR NOVAMENTE", "Limpe filtros"} {
		if !strings.Contains(out, want) {
			t.Errorf("victory screen missing %q", want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	m, _ := startPlaying(t, 1)
	for _, sz := range []struct{ w, h int }{{0, 0}, {1, 1}, {5, 3}} {
		screen := core.NewScreen(sz.w, sz.h)
		Render(m.Snapshot(), screen) // Must not panic
	}
}

func TestGameOverMessage(t *testing.T) {
	s := &Session{Outcome: OutcomeStorm}
	if !strings.Contains(GameOverMessage(s), "tempestade") {
		t.Errorf("storm message = %q", GameOverMessage(s))
	}
	s.Outcome = OutcomeBlackout
	if !strings.Contains(GameOverMessage(s), "Energia esgotada") {
		t.Errorf("blackout message = %q", GameOverMessage(s))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Depósito", 10, "Depósito"},
		{"Depósito", 5, "Depó…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.expected)
		}
	}
}

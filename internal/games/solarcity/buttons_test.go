package solarcity

import (
	"testing"

	"github.com/vovakirdan/solar-city/internal/core"
)

func TestButtons(t *testing.T) {
	tests := []struct {
		name  string
		state State
		level int
		ids   []ButtonID
	}{
		{"menu", StateMenu, 1, []ButtonID{ButtonStart}},
		{"tutorial", StateTutorial, 1, []ButtonID{ButtonBegin}},
		{"playing", StatePlaying, 2, nil},
		{"gameover", StateGameOver, 2, []ButtonID{ButtonRetry, ButtonMenu}},
		{"victory", StateVictory, 1, []ButtonID{ButtonNext, ButtonMenu}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buttons := Buttons(tc.state, tc.level)
			if len(buttons) != len(tc.ids) {
				t.Fatalf("%d buttons, expected %d", len(buttons), len(tc.ids))
			}
			for i, b := range buttons {
				if b.ID != tc.ids[i] {
					t.Errorf("button %d = %v, expected %v", i, b.ID, tc.ids[i])
				}
				if b.Rect.Bottom() > core.WorldH || b.Rect.Right() > core.WorldW {
					t.Errorf("button %q outside the world: %+v", b.Label, b.Rect)
				}
			}
		})
	}
}

func TestButtonsLastLevelLabel(t *testing.T) {
	if got := Buttons(StateVictory, 1)[0].Label; got != "PRÓXIMO NÍVEL" {
		t.Errorf("level 1 next label %q", got)
	}
	if got := Buttons(StateVictory, LevelCount())[0].Label; got != "JOGAR NOVAMENTE" {
		t.Errorf("last level next label %q", got)
	}
	// The shared button value must not be modified.
	if nextButton.Label != "PRÓXIMO NÍVEL" {
		t.Errorf("nextButton label changed to %q", nextButton.Label)
	}
}

func TestHitButton(t *testing.T) {
	tests := []struct {
		name  string
		state State
		x, y  int
		id    ButtonID
		ok    bool
	}{
		{"start center", StateMenu, 600, 460, ButtonStart, true},
		{"start left edge", StateMenu, 420, 420, ButtonStart, true},
		{"start right edge exclusive", StateMenu, 780, 460, 0, false},
		{"begin", StateTutorial, 600, 715, ButtonBegin, true},
		{"retry", StateGameOver, 600, 570, ButtonRetry, true},
		{"gap between loss buttons", StateGameOver, 600, 610, 0, false},
		{"loss menu", StateGameOver, 600, 650, ButtonMenu, true},
		{"win menu", StateVictory, 600, 685, ButtonMenu, true},
		{"nothing while playing", StatePlaying, 600, 460, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := HitButton(tc.state, 1, tc.x, tc.y)
			if ok != tc.ok || id != tc.id {
				t.Errorf("HitButton = (%v, %v), expected (%v, %v)", id, ok, tc.id, tc.ok)
			}
		})
	}
}

package solarcity

import "github.com/vovakirdan/solar-city/internal/core"

// ButtonID identifies a clickable button.
type ButtonID int

const (
	ButtonStart ButtonID = iota // menu: open the tutorial
	ButtonBegin                 // tutorial: start level 1
	ButtonRetry                 // gameover: replay the same level
	ButtonNext                  // victory: next level, 3 loops to 1
	ButtonMenu                  // gameover, victory: back to the menu
)

// Button is a fixed rectangle in world pixels with its label.
type Button struct {
	ID    ButtonID
	Label string
	Rect  core.Rect
}

var (
	startButton = Button{ID: ButtonStart, Label: "JOGAR", Rect: core.NewRect(420, 420, 360, 80)}
	beginButton = Button{ID: ButtonBegin, Label: "COMEÇAR!", Rect: core.NewRect(450, 685, 300, 60)}
	retryButton = Button{ID: ButtonRetry, Label: "TENTAR NOVAMENTE", Rect: core.NewRect(400, 540, 400, 60)}
	lossMenu    = Button{ID: ButtonMenu, Label: "MENU INICIAL", Rect: core.NewRect(400, 620, 400, 60)}
	nextButton  = Button{ID: ButtonNext, Label: "PRÓXIMO NÍVEL", Rect: core.NewRect(400, 590, 400, 55)}
	winMenu     = Button{ID: ButtonMenu, Label: "MENU INICIAL", Rect: core.NewRect(400, 660, 400, 55)}
)

// Buttons returns the buttons shown in state. The victory "next" label
// changes on the last level, where it loops back to the first.
func Buttons(state State, level int) []Button {
	switch state {
	case StateMenu:
		return []Button{startButton}
	case StateTutorial:
		return []Button{beginButton}
	case StateGameOver:
		return []Button{retryButton, lossMenu}
	case StateVictory:
		next := nextButton
		if level >= LevelCount() {
			next.Label = "JOGAR NOVAMENTE"
		}
		return []Button{next, winMenu}
	default:
		return nil
	}
}

// HitButton returns the button of state under (x, y).
func HitButton(state State, level, x, y int) (ButtonID, bool) {
	for _, b := range Buttons(state, level) {
		if b.Rect.Contains(x, y) {
			return b.ID, true
		}
	}
	return 0, false
}

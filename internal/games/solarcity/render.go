package solarcity

import (
	"strings"

	"github.com/vovakirdan/solar-city/internal/core"
)

// Terminal glyphs
const (
	BuildingChar = '█'
	WindowChar   = '▪'
	PanelChar    = '▀'
	GrassChar    = '▒'
	RainChar     = '/'
	SunChar      = '☼'
	CloudChar    = '≈'
	ParticleChar = '•'
	EnergyFull   = '█'
	EnergyEmpty  = '░'
)

// GroundY is the top of the grass in world pixels.
const GroundY = core.WorldH - 150

// SunPos is the sun center in world pixels.
var SunPos = core.Vec2{X: core.WorldW - 120, Y: 100}

// CellToWorld maps the center of terminal cell (cx, cy) on a w x h screen to
// world pixels.
func CellToWorld(cx, cy, w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) * core.WorldW / float64(w)
	y := (float64(cy) + 0.5) * core.WorldH / float64(h)
	return int(x), int(y)
}

// WorldToCell maps world pixels to a terminal cell.
func WorldToCell(x, y float64, w, h int) (int, int) {
	return int(x * float64(w) / core.WorldW), int(y * float64(h) / core.WorldH)
}

// worldRect scales a world rectangle to cells, keeping at least one cell.
func worldRect(r core.Rect, w, h int) core.Rect {
	x0, y0 := WorldToCell(float64(r.X), float64(r.Y), w, h)
	x1, y1 := WorldToCell(float64(r.Right()), float64(r.Bottom()), w, h)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws a snapshot onto a terminal screen.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	switch snap.State {
	case StateMenu:
		renderMenu(dst)
	case StateTutorial:
		renderTutorial(dst)
	case StatePlaying:
		renderScenery(snap, dst)
		renderHUD(&snap.Session, dst)
	case StateGameOver:
		renderGameOver(&snap.Session, dst)
	case StateVictory:
		renderVictory(&snap.Session, dst)
	}

	for _, b := range snap.Buttons {
		renderButton(b, dst)
	}
}

func renderScenery(snap Snapshot, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	s := &snap.Session

	if s.StormActive {
		renderRain(s, dst)
		cx, cy := WorldToCell(SunPos.X, SunPos.Y, w, h)
		dst.DrawTextColored(cx-2, cy, strings.Repeat(string(CloudChar), 5), core.SkyStorm)
	} else {
		cx, cy := WorldToCell(SunPos.X, SunPos.Y, w, h)
		dst.SetColored(cx, cy, SunChar, core.SunYellow)
	}

	_, gy := WorldToCell(0, GroundY, w, h)
	dst.FillRect(core.NewRect(0, gy, w, h-gy), GrassChar, core.Grass)

	for i := range s.Buildings {
		renderBuilding(&s.Buildings[i], s.StormActive, dst)
	}

	for _, p := range snap.Particles {
		x, y := WorldToCell(p.Pos.X, p.Pos.Y, w, h)
		dst.SetColored(x, y, ParticleChar, p.Color)
	}
}

func renderBuilding(b *Building, storm bool, dst *core.Screen) {
	r := worldRect(b.Bounds, dst.Width(), dst.Height())

	color := b.Color
	if storm {
		color = color.Scale(0.6)
	}
	dst.FillRect(r, BuildingChar, color)

	// Lit windows on every other cell of every other row.
	for y := r.Y + 1; y < r.Bottom()-1; y += 2 {
		for x := r.X + 1; x < r.Right()-1; x += 2 {
			dst.SetColored(x, y, WindowChar, core.RGB{R: 255, G: 255, B: 200})
		}
	}

	if b.HasSolar {
		panel := core.PanelDark
		if b.InstallProgress > 0 {
			panel = core.PanelBlue.Scale(1 + b.InstallProgress)
		}
		dst.FillRect(core.NewRect(r.X, r.Y-1, r.W, 1), PanelChar, panel)
	}

	name := truncate(b.Name, r.W)
	dst.DrawTextColored(r.X+(r.W-len([]rune(name)))/2, r.Bottom(), name, core.White)
}

func renderRain(s *Session, dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	phase := int(s.StormGraceTimer * 20)
	for x := 0; x < w; x += 3 {
		y := (x*7 + phase) % core.Max(1, h)
		dst.SetColored(x, y, RainChar, core.RainColor)
	}
}

func renderHUD(s *Session, dst *core.Screen) {
	const barWidth = 20

	filled := int(s.EnergyRatio() * barWidth)
	bar := strings.Repeat(string(EnergyFull), filled) + strings.Repeat(string(EnergyEmpty), barWidth-filled)
	dst.DrawTextColored(1, 0, "["+bar+"]", EnergyBarColor(s))
	dst.DrawTextColored(barWidth+4, 0, EnergyLabel(s), colorText)

	for i, l := range HUDLines(s) {
		dst.DrawTextColored(1, 1+i, l.Text, l.Color)
	}

	if s.StormActive {
		dst.DrawTextCentered(0, StormAlert, colorStorm)
	}
}

func renderMenu(dst *core.Screen) {
	drawCentered(dst, 180, GameTitle, colorTitle)
	drawCentered(dst, 270, GameSubtitle, colorGreen)
	drawCentered(dst, 330, GameGoals, colorMuted)
	for i, hint := range MenuHints {
		drawCentered(dst, 570+50*i, hint, colorText)
	}
}

func renderTutorial(dst *core.Screen) {
	drawCentered(dst, 60, TutorialTitle, colorTitle)
	drawCentered(dst, 130, TutorialObjective, colorGreen)

	w, h := dst.Width(), dst.Height()
	colW := w/2 - 2
	for i, blk := range TutorialBlocks {
		wx := 100
		if i%2 == 1 {
			wx = 620
		}
		wy := 200 + (i/2)*140
		x, y := WorldToCell(float64(wx), float64(wy), w, h)
		_, yDesc := WorldToCell(0, float64(wy+40), w, h)
		_, yDetail := WorldToCell(0, float64(wy+75), w, h)

		dst.DrawTextColored(x, y, truncate(blk.Title, colW), blk.Color)
		if yDesc > y {
			dst.DrawTextColored(x, yDesc, truncate(blk.Desc, colW), colorText)
		}
		if yDetail > yDesc {
			dst.DrawTextColored(x, yDetail, truncate(blk.Detail, colW), colorMuted)
		}
	}

	drawCentered(dst, 640, TutorialTip, colorTitle)
}

func renderGameOver(s *Session, dst *core.Screen) {
	drawCentered(dst, 150, GameOverTitle, colorLoss)
	drawCentered(dst, 230, GameOverMessage(s), colorLossDim)
	for i, l := range GameOverLines(s) {
		drawCentered(dst, 320+45*i, l.Text, l.Color)
	}
}

func renderVictory(s *Session, dst *core.Screen) {
	drawCentered(dst, 90, VictoryTitle, colorWin)
	drawCentered(dst, 160, VictorySubtitle, colorGreen)
	for i, l := range VictoryLines(s) {
		drawCentered(dst, 220+45*i, l.Text, l.Color)
	}
	drawCentered(dst, 470, VictoryTipsHead, colorWin)
	drawCentered(dst, 525, VictoryTip(s), colorMuted)
}

func renderButton(b Button, dst *core.Screen) {
	r := worldRect(b.Rect, dst.Width(), dst.Height())
	label := "[ " + b.Label + " ]"
	if r.H >= 3 {
		dst.DrawBox(r, colorGreen)
		label = b.Label
	}
	n := len([]rune(label))
	dst.DrawTextColored(r.X+(r.W-n)/2, r.Y+r.H/2, label, core.White)
}

// drawCentered draws text centered at world y.
func drawCentered(dst *core.Screen, worldY int, text string, color core.RGB) {
	_, y := WorldToCell(0, float64(worldY), dst.Width(), dst.Height())
	dst.DrawTextCentered(y, truncate(text, dst.Width()), color)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

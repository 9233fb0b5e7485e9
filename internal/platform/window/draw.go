package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

// Window layout in world pixels.
const (
	groundY      = solarcity.GroundY
	gradientBand = 4 // Height of one gradient strip
	hudX, hudY   = 20, 20
	hudW, hudH   = 380, 320
	barX, barY   = 40, 40
	barW, barH   = 340, 40
)

var (
	darkGreen  = core.RGB{R: 56, G: 142, B: 60}
	sunInner   = core.RGB{R: 255, G: 240, B: 100}
	cloudClear = core.RGB{R: 255, G: 255, B: 255}
	cloudStorm = core.RGB{R: 160, G: 160, B: 180}
	textDark   = core.RGB{R: 40, G: 40, B: 40}
	textGray   = core.RGB{R: 100, G: 100, B: 100}
)

// rgba converts a palette color with an alpha in [0, 1].
func rgba(c core.RGB, alpha float64) color.Color {
	a := core.ClampF(alpha, 0, 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

func opaque(c core.RGB) color.Color {
	return rgba(c, 1)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func strokeRect(dst *ebiten.Image, r core.Rect, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, true)
}

// gradient fills rows y0..y1 fading top to bottom by up to fade.
func gradient(dst *ebiten.Image, base core.RGB, y0, y1 int, fade float64) {
	span := float64(core.Max(1, y1-y0))
	for y := y0; y < y1; y += gradientBand {
		f := float64(y-y0) / span
		fillRect(dst, 0, float64(y), core.WorldW, gradientBand, opaque(base.Scale(1-f*fade)))
	}
}

// drawText draws s with its top edge at y, centered on x when center is set.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c core.RGB, center bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(opaque(c))
	if center {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}

// drawCenteredText draws a line centered on the window.
func drawCenteredText(dst *ebiten.Image, s string, face *text.GoTextFace, y float64, c core.RGB) {
	drawText(dst, s, face, core.WorldW/2, y, c, true)
}

// drawLabel draws text over a translucent rounded backdrop.
func drawLabel(dst *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, fg, bg core.RGB, alpha float64) {
	w, h := text.Measure(s, face, 0)
	fillRect(dst, cx-w/2-15, y-5, w+30, h+10, rgba(bg, alpha))
	drawText(dst, s, face, cx, y, fg, true)
}

func drawSun(dst *ebiten.Image, x, y, radius, rays, spin float64) {
	for i := range 12 {
		angle := float64(i)*math.Pi/6 + spin
		ex := x + math.Cos(angle)*rays
		ey := y + math.Sin(angle)*rays
		vector.StrokeLine(dst, float32(x), float32(y), float32(ex), float32(ey), 5, opaque(core.SunYellow), true)
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius), opaque(core.SunYellow), true)
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(radius-5), opaque(sunInner), true)
}

func drawClouds(dst *ebiten.Image, clouds []Cloud, storm bool) {
	c := opaque(cloudClear)
	if storm {
		c = opaque(cloudStorm)
	}
	for _, cl := range clouds {
		x, y, s := float32(cl.X), float32(cl.Y), float32(cl.Size)
		vector.DrawFilledCircle(dst, x, y, s, c, true)
		vector.DrawFilledCircle(dst, x+s*0.7, y, s*0.8, c, true)
		vector.DrawFilledCircle(dst, x+s*1.3, y, s*0.7, c, true)
	}
}

// buttonColors returns fill and border of a button on the given screen.
func buttonColors(state solarcity.State, level int, id solarcity.ButtonID) (core.RGB, core.RGB) {
	switch {
	case state == solarcity.StateGameOver && id == solarcity.ButtonRetry:
		return core.RGB{R: 200, G: 60, B: 60}, core.RGB{R: 150, G: 30, B: 30}
	case state == solarcity.StateGameOver:
		return textGray, core.RGB{R: 60, G: 60, B: 60}
	case state == solarcity.StateVictory && id == solarcity.ButtonNext && level >= solarcity.LevelCount():
		return core.PanelBlue, core.PanelDark
	case state == solarcity.StateVictory && id == solarcity.ButtonMenu:
		return core.RGB{R: 139, G: 195, B: 74}, core.RGB{R: 104, G: 159, B: 56}
	default:
		return core.Grass, darkGreen
	}
}

func (g *Game) drawButtons(dst *ebiten.Image, snap *solarcity.Snapshot) {
	for _, b := range snap.Buttons {
		fill, border := buttonColors(snap.State, snap.Level, b.ID)
		r := b.Rect
		fillRect(dst, float64(r.X+5), float64(r.Y+5), float64(r.W), float64(r.H), rgba(core.Black, 0.3))
		fillRect(dst, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), opaque(fill))
		strokeRect(dst, r, 4, opaque(border))

		_, h := text.Measure(b.Label, g.fonts.Heading, 0)
		cx, cy := r.Center()
		drawText(dst, b.Label, g.fonts.Heading, float64(cx), float64(cy)-h/2, core.White, true)
	}
}

func (g *Game) drawMenu(dst *ebiten.Image) {
	gradient(dst, core.SkyBlue, 0, core.WorldH, 0.3)
	drawClouds(dst, g.sky.Clouds, false)
	drawSun(dst, core.WorldW-150, 100, 70, 110, 0)

	fillRect(dst, core.WorldW/2-450, 150, 900, 400, rgba(core.White, 0.94))
	drawCenteredText(dst, solarcity.GameTitle, g.fonts.Title, 180, core.PanelBlue)
	drawCenteredText(dst, solarcity.GameSubtitle, g.fonts.Heading, 270, core.Grass)
	drawCenteredText(dst, solarcity.GameGoals, g.fonts.Body, 330, core.RGB{R: 60, G: 60, B: 60})

	for i, hint := range solarcity.MenuHints {
		drawLabel(dst, hint, g.fonts.Body, core.WorldW/2, float64(570+50*i), textDark, core.White, 0.8)
	}
}

func (g *Game) drawTutorial(dst *ebiten.Image) {
	gradient(dst, core.SkyBlue, 0, core.WorldH, 0.3)
	fillRect(dst, core.WorldW/2-550, 40, 1100, 720, rgba(core.White, 0.98))

	drawCenteredText(dst, solarcity.TutorialTitle, g.fonts.Title, 55, core.PanelBlue)
	fillRect(dst, core.WorldW/2-500, 120, 1000, 50, rgba(core.Grass, 0.16))
	drawCenteredText(dst, solarcity.TutorialObjective, g.fonts.Body, 132, core.Grass)

	for i, blk := range solarcity.TutorialBlocks {
		x := float64(core.WorldW/2 - 500)
		if i >= 3 {
			x = core.WorldW/2 + 20
		}
		y := float64(200 + (i%3)*140)
		drawText(dst, blk.Title, g.fonts.Heading, x, y, blk.Color, false)
		drawText(dst, blk.Desc, g.fonts.Small, x, y+36, textDark, false)
		drawText(dst, blk.Detail, g.fonts.Small, x, y+60, textGray, false)
	}

	fillRect(dst, core.WorldW/2-500, 620, 1000, 40, rgba(core.PanelBlue, 0.16))
	drawCenteredText(dst, solarcity.TutorialTip, g.fonts.Small, 630, core.PanelBlue)
}

func (g *Game) drawPlaying(dst *ebiten.Image, snap *solarcity.Snapshot) {
	s := &snap.Session

	if s.StormActive {
		gradient(dst, core.SkyStorm, 0, core.WorldH, 0.2)
		for _, d := range g.sky.Drops {
			vector.StrokeLine(dst, float32(d.X), float32(d.Y), float32(d.X), float32(d.Y+rainDropLength), 2, opaque(core.RainColor), false)
		}
		g.drawBolt(dst)
	} else {
		gradient(dst, core.SkyBlue, 0, core.WorldH, 0.3)
	}

	drawClouds(dst, g.sky.Clouds, s.StormActive)

	if !s.StormActive {
		radius := 65 * s.SunIntensity
		drawSun(dst, solarcity.SunPos.X, solarcity.SunPos.Y, radius, radius+35, s.Elapsed)
	}

	gradient(dst, core.Grass, groundY, core.WorldH, 0.3)
	for x := 0; x < core.WorldW; x += 20 {
		bx := float32(x + (x*7)%11 - 5)
		by := float32(groundY + (x*13)%31)
		vector.StrokeLine(dst, bx, by, bx+float32((x%7)-3), by-15, 2, opaque(darkGreen), false)
	}

	cx, cy := ebiten.CursorPosition()
	for i := range s.Buildings {
		b := &s.Buildings[i]
		g.drawBuilding(dst, b, i, b.Bounds.Contains(cx, cy) && !b.HasSolar)
	}

	for _, p := range snap.Particles {
		vector.DrawFilledCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), rgba(p.Color, p.Life), true)
	}

	if g.sky.Flash > 0 {
		fillRect(dst, 0, 0, core.WorldW, core.WorldH, rgba(core.White, 0.7*g.sky.Flash))
	}

	g.drawHUD(dst, s)
}

func (g *Game) drawBolt(dst *ebiten.Image) {
	for i := 1; i < len(g.sky.Bolt); i++ {
		a, b := g.sky.Bolt[i-1], g.sky.Bolt[i]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 5, opaque(core.White), true)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, opaque(core.RGB{R: 200, G: 200, B: 255}), true)
	}
}

func (g *Game) drawBuilding(dst *ebiten.Image, b *solarcity.Building, index int, hover bool) {
	r := b.Bounds
	x, y, w, h := float64(r.X), float64(r.Y), float64(r.W), float64(r.H)

	fillRect(dst, x+5, y+5, w+10, h+10, rgba(core.Black, 0.24))
	for i := 0; i < r.H; i += gradientBand {
		fillRect(dst, x, y+float64(i), w, gradientBand, opaque(b.Color.Scale(1-float64(i)/h*0.3)))
	}
	strokeRect(dst, r, 4, opaque(b.Color.Scale(0.8)))

	const cols, rows = 3, 5
	ww := (w - 20) / cols
	wh := (h - 30) / rows
	for row := range rows {
		for col := range cols {
			lit := core.RGB{R: 200, G: 220, B: 255}
			if (index*7+row*3+col)%10 > 2 {
				lit = core.RGB{R: 255, G: 255, B: 200}
			}
			fillRect(dst, x+10+float64(col)*ww, y+15+float64(row)*wh, ww-5, wh-5, opaque(lit))
		}
	}

	if hover {
		fillRect(dst, x, y, w, h, rgba(core.White, 0.3))
	}

	if b.HasSolar {
		scale := 1 + b.InstallProgress*0.3
		pw, ph := (w-10)*scale, 22*scale
		px, py := x+w/2-pw/2, y-25+11-ph/2
		fillRect(dst, px, py, pw, ph, opaque(core.PanelDark))
		cw := (pw - 8) / 5
		for i := range 5 {
			cx := px + 4 + float64(i)*cw
			fillRect(dst, cx, py+3, cw-2, ph-6, opaque(core.PanelBlue))
			fillRect(dst, cx, py+3, cw-2, 4, rgba(core.White, 0.4))
		}
	}

	tw, th := text.Measure(b.Name, g.fonts.Small, 0)
	cx, _ := r.Center()
	fillRect(dst, float64(cx)-tw/2-6, float64(r.Bottom())+8, tw+12, th+6, rgba(core.Black, 0.7))
	drawText(dst, b.Name, g.fonts.Small, float64(cx), float64(r.Bottom())+11, core.White, true)
}

func (g *Game) drawHUD(dst *ebiten.Image, s *solarcity.Session) {
	fillRect(dst, hudX, hudY, hudW, hudH, rgba(core.White, 0.9))

	fillRect(dst, barX, barY, barW, barH, opaque(core.RGB{R: 200, G: 200, B: 200}))
	fillRect(dst, barX, barY, barW*s.EnergyRatio(), barH, opaque(solarcity.EnergyBarColor(s)))
	strokeRect(dst, core.NewRect(barX, barY, barW, barH), 3, opaque(textGray))
	drawText(dst, solarcity.EnergyLabel(s), g.fonts.Body, barX+10, barY+6, core.RGB{R: 50, G: 50, B: 50}, false)

	for i, l := range solarcity.HUDLines(s) {
		drawText(dst, l.Text, g.fonts.Body, 40, float64(100+40*i), l.Color, false)
	}

	if s.StormActive {
		fillRect(dst, core.WorldW/2-150, 20, 300, 60, rgba(core.RGB{R: 255, G: 235, B: 59}, 0.94))
		drawCenteredText(dst, solarcity.StormAlert, g.fonts.Heading, 32, core.RGB{R: 198, G: 40, B: 40})
	}
}

func (g *Game) drawGameOver(dst *ebiten.Image, s *solarcity.Session) {
	for y := 0; y < core.WorldH; y += gradientBand {
		f := float64(y) / core.WorldH
		fillRect(dst, 0, float64(y), core.WorldW, gradientBand, opaque(core.RGB{R: uint8(60 * (1 - f*0.5))}))
	}

	panel := core.NewRect(core.WorldW/2-350, 120, 700, 550)
	fillRect(dst, float64(panel.X), float64(panel.Y), float64(panel.W), float64(panel.H), rgba(core.RGB{R: 50}, 0.8))
	strokeRect(dst, panel, 3, opaque(core.RGB{R: 200, G: 50, B: 50}))

	drawCenteredText(dst, solarcity.GameOverTitle, g.fonts.Title, 150, core.RGB{R: 255, G: 80, B: 80})
	drawCenteredText(dst, solarcity.GameOverMessage(s), g.fonts.Body, 250, core.RGB{R: 255, G: 200, B: 200})
	for i, l := range solarcity.GameOverLines(s) {
		drawCenteredText(dst, l.Text, g.fonts.Body, float64(320+50*i), l.Color)
	}
}

func (g *Game) drawVictory(dst *ebiten.Image, s *solarcity.Session) {
	for y := 0; y < core.WorldH; y += gradientBand {
		f := float64(y) / core.WorldH
		c := core.RGB{R: uint8(100 * (1 - f)), G: uint8(200 + f*30), B: uint8(100 + f*100)}
		fillRect(dst, 0, float64(y), core.WorldW, gradientBand, opaque(c))
	}
	for _, c := range g.sky.Confetti {
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.Size), opaque(c.Color), true)
	}

	panel := core.NewRect(core.WorldW/2-425, 60, 850, 680)
	fillRect(dst, float64(panel.X), float64(panel.Y), float64(panel.W), float64(panel.H), rgba(core.RGB{R: 240, G: 255, B: 240}, 0.94))
	strokeRect(dst, panel, 4, opaque(core.Grass))

	drawCenteredText(dst, solarcity.VictoryTitle, g.fonts.Title, 90, core.RGB{R: 30, G: 100, B: 30})
	drawCenteredText(dst, solarcity.VictorySubtitle, g.fonts.Heading, 165, core.RGB{R: 50, G: 150, B: 50})
	for i, l := range solarcity.VictoryLines(s) {
		drawLabel(dst, l.Text, g.fonts.Body, core.WorldW/2, float64(225+45*i), l.Color, core.White, 0.7)
	}
	drawCenteredText(dst, solarcity.VictoryTipsHead, g.fonts.Body, 470, core.RGB{G: 100})
	drawCenteredText(dst, solarcity.VictoryTip(s), g.fonts.Small, 520, core.RGB{R: 60, G: 60, B: 60})
}

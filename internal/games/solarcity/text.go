package solarcity

import (
	"fmt"

	"github.com/vovakirdan/solar-city/internal/core"
)

// Line is a piece of colored text shown by a host.
type Line struct {
	Text  string
	Color core.RGB
}

// Text colors.
var (
	colorTitle   = core.PanelBlue
	colorText    = core.RGB{R: 40, G: 40, B: 40}
	colorMuted   = core.RGB{R: 100, G: 100, B: 100}
	colorOrange  = core.RGB{R: 255, G: 152, B: 0}
	colorPurple  = core.RGB{R: 156, G: 39, B: 176}
	colorGreen   = core.Grass
	colorStorm   = core.RGB{R: 198, G: 40, B: 40}
	colorLoss    = core.RGB{R: 255, G: 80, B: 80}
	colorLossDim = core.RGB{R: 255, G: 150, B: 150}
	colorWin     = core.RGB{R: 30, G: 100, B: 30}
)

// Menu texts.
const (
	GameTitle    = "Cidade Solar Inteligente"
	GameSubtitle = "Energia Limpa e Sustentabilidade"
	GameGoals    = "ODS 7: Energia Limpa | ODS 13: Ação Climática"
)

// MenuHints are shown under the start button.
var MenuHints = []string{
	"Clique nos prédios para instalar painéis solares",
	"Mantenha a energia positiva para evitar apagão",
	"Cuidado com as tempestades!",
}

// TutorialBlock is one instruction card of the tutorial.
type TutorialBlock struct {
	Title  string
	Desc   string
	Detail string
	Color  core.RGB
}

// Tutorial texts.
const (
	TutorialTitle     = "Como Jogar?"
	TutorialObjective = "OBJETIVO: Manter sua cidade iluminada com energia solar!"
	TutorialTip       = "DICA: Instale painéis em TODOS os prédios o mais rápido possível!"
)

// TutorialBlocks are laid out in two columns of three.
var TutorialBlocks = []TutorialBlock{
	{"CONSUMO DE ENERGIA", "Cada prédio da cidade consome energia constantemente.", "A barra de energia no topo mostra quanto você tem.", core.RGB{R: 244, G: 67, B: 54}},
	{"PAINÉIS SOLARES", "Clique com o mouse nos prédios para instalar painéis.", "Os painéis aparecem no teto e geram energia limpa!", core.PanelBlue},
	{"GERAÇÃO DE ENERGIA", "Painéis produzem energia quando o sol está brilhando.", "Quanto mais painéis, mais energia sua cidade terá!", core.RGB{R: 255, G: 193, B: 7}},
	{"CUIDADO COM APAGÕES", "Se a energia chegar a ZERO, a cidade fica no escuro!", "Fique de olho na barra e instale painéis rápido.", colorPurple},
	{"TEMPESTADES", "Durante tempestades, a geração de energia cai muito.", "Instale painéis ANTES das tempestades aparecerem!", colorOrange},
	{"COMO VENCER", "Sobreviva até o tempo alvo de cada nível.", "Cada nível tem mais prédios e menos tempo!", colorGreen},
}

// StormAlert is the banner shown while the storm is active.
const StormAlert = "TEMPESTADE!"

// EnergyLabel returns the text drawn over the energy bar.
func EnergyLabel(s *Session) string {
	return fmt.Sprintf("Energia: %d", int(s.Energy))
}

// EnergyBarColor returns the fill color for the current energy ratio.
func EnergyBarColor(s *Session) core.RGB {
	switch r := s.EnergyRatio(); {
	case r > 0.5:
		return core.Grass
	case r > 0.25:
		return core.RGB{R: 255, G: 167, B: 38}
	default:
		return core.RGB{R: 244, G: 67, B: 54}
	}
}

// HUDLines returns the status lines drawn while playing.
func HUDLines(s *Session) []Line {
	return []Line{
		{fmt.Sprintf("Nível: %d", s.Level), colorTitle},
		{fmt.Sprintf("Tempo: %ds / %gs", int(s.Elapsed), s.TargetTime), colorMuted},
		{fmt.Sprintf("Painéis: %d", s.PanelsInstalled), colorOrange},
		{fmt.Sprintf("Pontos: %d", int(s.Points)), colorPurple},
		{fmt.Sprintf("CO2: %d kg", int(s.CO2Avoided)), colorGreen},
	}
}

// GameOverTitle is the heading of the loss screen.
const GameOverTitle = "APAGÃO!"

// GameOverMessage explains the loss.
func GameOverMessage(s *Session) string {
	if s.Outcome == OutcomeStorm {
		return "Tempo esgotado! A tempestade venceu."
	}
	return "Energia esgotada! Instale mais rápido!"
}

// GameOverLines returns the stats of the loss screen.
func GameOverLines(s *Session) []Line {
	return []Line{
		{fmt.Sprintf("Tempo: %ds", int(s.TargetTime)), core.White},
		{fmt.Sprintf("Painéis: %d / %d", s.PanelsInstalled, len(s.Buildings)), colorLossDim},
		{fmt.Sprintf("CO2: %d kg", int(s.CO2Avoided)), colorLossDim},
		{fmt.Sprintf("Pontos: %d", int(s.Points)), colorLossDim},
	}
}

// Victory texts.
const (
	VictoryTitle    = "PARABÉNS!"
	VictorySubtitle = "Você criou uma cidade sustentável!"
	VictoryTipsHead = "Dicas para economizar energia:"
)

// VictoryLines returns the stats of the win screen.
func VictoryLines(s *Session) []Line {
	return []Line{
		{fmt.Sprintf("Painéis instalados: %d", s.PanelsInstalled), core.RGB{R: 0, G: 150, B: 0}},
		{fmt.Sprintf("Energia gerada: %d un.", int(s.EnergyGenerated)), core.RGB{R: 0, G: 120, B: 200}},
		{fmt.Sprintf("CO2 evitado: %d kg", int(s.CO2Avoided)), core.RGB{R: 0, G: 150, B: 0}},
		{fmt.Sprintf("Economia: %d%%", s.SavingsPercent()), core.RGB{R: 200, G: 150, B: 0}},
		{fmt.Sprintf("Pontos finais: %d", int(s.Points)), core.RGB{R: 255, G: 100, B: 0}},
	}
}

// VictoryTip returns the level tip shown after a win.
func VictoryTip(s *Session) string {
	return "- " + s.Tip
}

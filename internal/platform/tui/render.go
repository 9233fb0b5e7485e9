package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/solar-city/internal/core"
)

// cellStyle returns the lipgloss style for a cell's foreground.
func cellStyle(c core.Cell) lipgloss.Style {
	if !c.Styled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.FG.Hex()))
}

// sameColor reports whether two cells can share one styled run.
func sameColor(a, b core.Cell) bool {
	if a.Styled != b.Styled {
		return false
	}
	return !a.Styled || a.FG == b.FG
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

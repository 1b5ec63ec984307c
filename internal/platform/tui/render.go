package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Hex values follow the
// arcade palette; lipgloss downsamples them on limited terminals.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorBlack:        lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff00")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffff99")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa500")),
}

// HUD and footer styles.
var (
	hudStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	powerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence; blank runs
// are written unstyled since their color is invisible.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one screen row as color runs.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		start := s.GetCell(x, y)
		blank := start.Rune == ' '

		run.Reset()
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if blank != (cell.Rune == ' ') || (!blank && cell.Color != start.Color) {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		if blank {
			sb.WriteString(run.String())
			continue
		}
		style, ok := colorStyles[start.Color]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
}

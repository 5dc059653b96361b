package viz

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	panel  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	active lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
	rec    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1).
			Width(panelWidth),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		active: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		graph:  lipgloss.NewStyle().Foreground(t.Secondary),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		rec:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true).Blink(true),
	}
}

// swatch renders a small block in c.
func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexRGBA(c))).Render("██")
}

func hexRGBA(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

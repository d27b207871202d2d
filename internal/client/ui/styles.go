// Package ui is the terminal interface for SoulSpace, built on Bubble Tea.
// One root model gates the page tree on the resolved session state; each
// screen is its own page model with screen-local errors.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is one color scheme. The light and dark palettes swap on theme
// toggle; everything else derives from the active one.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Err        lipgloss.Color
}

func lightPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#f7f4fb"),
		Foreground: lipgloss.Color("#2d2440"),
		Primary:    lipgloss.Color("#6b4fa0"),
		Accent:     lipgloss.Color("#9b7fc7"),
		Muted:      lipgloss.Color("#8a8496"),
		Border:     lipgloss.Color("#d8d0e8"),
		Err:        lipgloss.Color("#c0392b"),
	}
}

func darkPalette() Palette {
	return Palette{
		Background: lipgloss.Color("#1d1829"),
		Foreground: lipgloss.Color("#ece7f5"),
		Primary:    lipgloss.Color("#b39ddb"),
		Accent:     lipgloss.Color("#7e57c2"),
		Muted:      lipgloss.Color("#6f6a7d"),
		Border:     lipgloss.Color("#3a3150"),
		Err:        lipgloss.Color("#e57373"),
	}
}

// Styles is the ready-to-render style set for the active theme.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Card     lipgloss.Style
	Help     lipgloss.Style
	Modal    lipgloss.Style
}

// NewStyles builds the style set for the given theme preference.
func NewStyles(dark bool) Styles {
	p := lightPalette()
	if dark {
		p = darkPalette()
	}
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary).MarginBottom(1),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		Body:     lipgloss.NewStyle().Foreground(p.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Error:    lipgloss.NewStyle().Foreground(p.Err),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Primary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(p.Muted).MarginTop(1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Err).
			Padding(1, 2),
	}
}

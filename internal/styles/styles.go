// Package styles provides terminal styling shared by the CLI and the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors - the control card mirrors the light card of the display panel.
var (
	// Brand colors
	ColorBrand  = lipgloss.Color("#f44336") // Signal red, the default flash color
	ColorAccent = lipgloss.Color("#03a9f4")
	ColorInk    = lipgloss.Color("#222222") // Label text on the card

	// Semantic colors
	ColorError   = lipgloss.Color("#FF3366")
	ColorSuccess = lipgloss.Color("#4caf50")
	ColorMuted   = lipgloss.Color("#888888")

	// Card surfaces
	ColorCard      = lipgloss.Color("#FFFFFF")
	ColorCardTrack = lipgloss.Color("#DDDDDD")
)

// CLI styles
var (
	Brand = lipgloss.NewStyle().
		Foreground(ColorBrand)

	BrandBold = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true)

	Secondary = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(ColorMuted)

	Error = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(ColorSuccess)
)

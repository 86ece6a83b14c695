package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/xonecas/strobe/internal/styles"
)

// Control card styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(styles.ColorCard).
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(styles.ColorCardTrack).
			BorderBackground(styles.ColorCard).
			Padding(1, 2, 2, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.ColorInk).
			Background(styles.ColorCard)

	FocusedLabelStyle = LabelStyle.
				Bold(true)

	CardTextStyle = lipgloss.NewStyle().
			Background(styles.ColorCard)

	// Editor shown while the title is editable
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
)

// buttonWidth fits the longest button label on one line.
const buttonWidth = 21

// buttonStyle returns the translucent outline button drawn over the display.
func buttonStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(fg)).
		BorderBackground(lipgloss.Color(bg)).
		Faint(true).
		Width(buttonWidth).
		Align(lipgloss.Center)
}

// swatchStyle renders one color picker swatch.
func swatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Width(3)
}

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/display"
	"github.com/xonecas/strobe/internal/palette"
	"github.com/xonecas/strobe/internal/styles"
)

// control identifies a focusable control on the card.
type control int

const (
	controlSpeed control = iota
	controlFontSize
	controlColor
	controlCount
)

const maxCardWidth = 64

// Controls is the settings card: two sliders and a swatch picker.
type Controls struct {
	focus    control
	swatches []string
	cursor   int // selected swatch, -1 when the base color is not in the palette

	speedBar progress.Model
	sizeBar  progress.Model
	help     help.Model

	width int
}

// NewControls creates the settings card.
func NewControls(swatches []string, baseColor string) Controls {
	newBar := func() progress.Model {
		return progress.New(
			progress.WithSolidFill(baseColor),
			progress.WithoutPercentage(),
		)
	}

	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = LabelStyle.Bold(true)
	h.Styles.ShortDesc = LabelStyle.Foreground(styles.ColorMuted)
	h.Styles.ShortSeparator = LabelStyle.Foreground(styles.ColorMuted)

	c := Controls{
		swatches: swatches,
		cursor:   palette.IndexOf(swatches, baseColor),
		speedBar: newBar(),
		sizeBar:  newBar(),
		help:     h,
	}
	c.SetWidth(maxCardWidth)
	return c
}

// SetWidth fits the card into the terminal width.
func (c *Controls) SetWidth(width int) {
	c.width = min(width, maxCardWidth)
	inner := c.innerWidth()
	c.speedBar.Width = inner
	c.sizeBar.Width = inner
	c.help.Width = inner
}

// innerWidth is the card width minus border (2) and padding (4).
func (c Controls) innerWidth() int {
	return max(c.width-6, 1)
}

// FocusNext moves focus forward, wrapping around.
func (c *Controls) FocusNext() {
	c.focus = (c.focus + 1) % controlCount
}

// FocusPrev moves focus backward, wrapping around.
func (c *Controls) FocusPrev() {
	c.focus = (c.focus + controlCount - 1) % controlCount
}

// Focused returns the focused control.
func (c Controls) Focused() control {
	return c.focus
}

// MoveSwatch moves the swatch selection by dir and returns the newly selected
// color.
func (c *Controls) MoveSwatch(dir int) string {
	n := len(c.swatches)
	if n == 0 {
		return ""
	}
	switch {
	case c.cursor < 0 && dir > 0:
		c.cursor = 0
	case c.cursor < 0:
		c.cursor = n - 1
	default:
		c.cursor = ((c.cursor+dir)%n + n) % n
	}
	return c.swatches[c.cursor]
}

// stepValue moves v by dir slider steps, snapped to the step grid.
func stepValue(v float64, dir int, step float64) float64 {
	n := math.Round((v + float64(dir)*step) / step)
	return n / math.Round(1/step)
}

// fraction maps v in [lo, hi] to [0, 1].
func fraction(v, lo, hi float64) float64 {
	return math.Max(0, math.Min(1, (v-lo)/(hi-lo)))
}

// View renders the card for the current configuration.
func (c Controls) View(cfg display.Config) string {
	inner := c.innerWidth()

	speed := c.speedBar
	speed.FullColor = cfg.BaseColor
	speed.EmptyColor = string(styles.ColorCardTrack)

	size := c.sizeBar
	size.FullColor = cfg.BaseColor
	size.EmptyColor = string(styles.ColorCardTrack)

	rows := []string{
		c.label(controlSpeed, fmt.Sprintf("Speed: %.1f", cfg.FlashHz), cfg.BaseColor),
		CardTextStyle.Width(inner).Render(speed.ViewAs(fraction(cfg.FlashHz, constants.MinFlashHz, constants.MaxFlashHz))),
		"",
		c.label(controlFontSize, fmt.Sprintf("Font Size: %.1f", cfg.FontSizePercent), cfg.BaseColor),
		CardTextStyle.Width(inner).Render(size.ViewAs(fraction(cfg.FontSizePercent, constants.MinFontSize, constants.MaxFontSize))),
		"",
		c.label(controlColor, "Color", cfg.BaseColor),
	}
	rows = append(rows, c.swatchRows(inner)...)
	rows = append(rows, "", c.help.ShortHelpView(cardHelp))

	for i, r := range rows {
		rows[i] = CardTextStyle.Width(inner).Render(r)
	}
	return CardStyle.Width(c.width - 2).Render(strings.Join(rows, "\n"))
}

// label renders a control label with the active marker in the base color.
func (c Controls) label(ctl control, text, baseColor string) string {
	if c.focus != ctl {
		return LabelStyle.Render("  " + text)
	}
	marker := LabelStyle.Foreground(lipgloss.Color(baseColor)).Render("▸ ")
	return marker + FocusedLabelStyle.Render(text)
}

// swatchRows lays the palette out in rows of 3-cell swatches.
func (c Controls) swatchRows(inner int) []string {
	perRow := max(inner/3, 1)

	var rows []string
	var line strings.Builder
	for i, s := range c.swatches {
		content := "   "
		if i == c.cursor {
			content = " ● "
		}
		line.WriteString(swatchStyle(s).Foreground(lipgloss.Color(palette.ContrastColor(s))).Render(content))
		if (i+1)%perRow == 0 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}
	if line.Len() > 0 {
		rows = append(rows, line.String())
	}
	return rows
}

// Card help bindings, display only.
var cardHelp = []key.Binding{
	key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
	key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "hide")),
}

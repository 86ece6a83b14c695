package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xonecas/strobe/internal/banner"
	"github.com/xonecas/strobe/internal/display"
)

// minBlockEm is the smallest em size, in half-block pixels, drawn as block
// glyphs. Anything smaller falls back to plain text.
const minBlockEm = 6

// Half-block glyphs indexed by (top lit, bottom lit).
var halfBlocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

// renderHero draws the message filling width x height cells in the render
// colors. Each cell holds two vertical pixels, so the pixel grid is
// width x 2*height with roughly square pixels.
func renderHero(r *banner.Rasterizer, f display.Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(f.Render.TextColor)).
		Background(lipgloss.Color(f.Render.BackgroundColor))

	if r == nil || banner.EmPixels(f.FontSizePercent, width) < minBlockEm {
		return style.Bold(true).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(f.Message)
	}

	img := r.Rasterize(f.Message, f.FontSizePercent, width)
	offsetY := (2*height - img.Bounds().Dy()) / 2

	rows := make([]string, height)
	var line strings.Builder
	for row := 0; row < height; row++ {
		line.Reset()
		top := 2*row - offsetY
		for x := 0; x < width; x++ {
			t := boolIndex(banner.Lit(img, x, top))
			b := boolIndex(banner.Lit(img, x, top+1))
			line.WriteRune(halfBlocks[t][b])
		}
		rows[row] = style.Render(line.String())
	}
	return strings.Join(rows, "\n")
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

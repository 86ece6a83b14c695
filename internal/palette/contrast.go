// Package palette provides color parsing, contrast computation and the fixed
// swatch palette offered by the color picker.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Sentinel contrast colors.
const (
	Black = "#000000"
	White = "#ffffff"
)

// Normalize parses a "#rgb" or "#rrggbb" color and returns it as lowercase
// "#rrggbb".
func Normalize(hex string) (string, error) {
	s := strings.TrimSpace(hex)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) == 4 {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	if len(s) != 7 {
		return "", fmt.Errorf("invalid color %q", hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c.Hex(), nil
}

// IsValid reports whether hex parses as a color.
func IsValid(hex string) bool {
	_, err := Normalize(hex)
	return err == nil
}

// Luminance returns the WCAG relative luminance of a color in [0, 1].
// Unparsable input is treated as black.
func Luminance(hex string) float64 {
	norm, err := Normalize(hex)
	if err != nil {
		return 0
	}
	c, _ := colorful.Hex(norm)
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1, 21].
func ContrastRatio(a, b string) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// ContrastColor returns Black or White, whichever contrasts more against hex.
// Black wins ties.
func ContrastColor(hex string) string {
	if ContrastRatio(hex, Black) >= ContrastRatio(hex, White) {
		return Black
	}
	return White
}

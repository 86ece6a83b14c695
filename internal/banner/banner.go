// Package banner rasterizes the display message into a coverage bitmap sized
// relative to the viewport width.
package banner

import (
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the line box height as a multiple of the em size.
const LineHeight = 1.15

// maxFaces bounds the per-size face cache.
const maxFaces = 32

type cacheKey struct {
	text    string
	emPx    int
	widthPx int
}

// Rasterizer draws text with the Go Bold font. It is safe for concurrent use.
type Rasterizer struct {
	font *truetype.Font

	mu      sync.Mutex
	faces   map[int]font.Face
	lastKey cacheKey
	lastImg *image.Alpha
}

// New parses the embedded font.
func New() (*Rasterizer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{font: f, faces: make(map[int]font.Face)}, nil
}

// EmPixels converts a font size percentage of the viewport width to pixels.
func EmPixels(sizePercent float64, widthPx int) int {
	return int(math.Round(sizePercent / 100 * float64(widthPx)))
}

// Rasterize renders text centered line by line into an image widthPx wide.
// The em size is sizePercent of widthPx; words wrap greedily to the width.
// The returned image must not be modified.
func (r *Rasterizer) Rasterize(text string, sizePercent float64, widthPx int) *image.Alpha {
	em := EmPixels(sizePercent, widthPx)
	if em < 1 {
		em = 1
	}
	if widthPx < 1 {
		return image.NewAlpha(image.Rectangle{})
	}

	key := cacheKey{text: text, emPx: em, widthPx: widthPx}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastImg != nil && r.lastKey == key {
		return r.lastImg
	}

	face := r.face(em)
	lines := Wrap(face, text, widthPx)
	lineH := int(math.Ceil(float64(em) * LineHeight))

	img := image.NewAlpha(image.Rect(0, 0, widthPx, lineH*len(lines)))
	m := face.Metrics()
	glyphH := (m.Ascent + m.Descent).Ceil()
	ascent := m.Ascent.Ceil()

	drawer := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i, line := range lines {
		w := drawer.MeasureString(line).Ceil()
		x := (widthPx - w) / 2
		baseline := i*lineH + (lineH-glyphH)/2 + ascent
		drawer.Dot = fixed.P(x, baseline)
		drawer.DrawString(line)
	}

	r.lastKey = key
	r.lastImg = img
	return img
}

// face returns a cached face for an em size in pixels.
func (r *Rasterizer) face(em int) font.Face {
	if f, ok := r.faces[em]; ok {
		return f
	}
	if len(r.faces) >= maxFaces {
		for k, f := range r.faces {
			_ = f.Close()
			delete(r.faces, k)
		}
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    float64(em),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[em] = f
	return f
}

// Wrap splits text into lines no wider than widthPx where possible.
// Explicit newlines are kept; a single word wider than the limit gets its own
// line.
func Wrap(face font.Face, text string, widthPx int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if font.MeasureString(face, candidate).Ceil() <= widthPx {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

// Lit reports whether the pixel at (x, y) is covered. Out-of-bounds pixels are
// not.
func Lit(img *image.Alpha, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return false
	}
	return img.AlphaAt(x, y).A >= 0x80
}

// Package framebuffer mirrors the display onto a Linux framebuffer device
// for kiosk setups.
package framebuffer

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/strobe/internal/banner"
	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/display"
)

// Mirror draws the latest presented frame onto a device. Present may be
// called from any goroutine; drawing happens in RunLoop.
type Mirror struct {
	dst    draw.Image
	close  func()
	canvas *image.RGBA
	raster *banner.Rasterizer

	pending atomic.Pointer[display.Frame]
	drawn   *display.Frame
	frames  atomic.Uint64
}

// Open opens the framebuffer device at path and prepares a mirror for it.
func Open(path string) (*Mirror, error) {
	dev, closeFn, err := openDevice(path)
	if err != nil {
		return nil, err
	}

	r, err := banner.New()
	if err != nil {
		closeFn()
		return nil, err
	}

	m := New(dev, r)
	m.close = closeFn

	b := dev.Bounds()
	log.Info().
		Str("device", path).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("Framebuffer opened")
	return m, nil
}

// New creates a mirror drawing onto dst.
func New(dst draw.Image, r *banner.Rasterizer) *Mirror {
	return &Mirror{
		dst:    dst,
		canvas: image.NewRGBA(dst.Bounds()),
		raster: r,
	}
}

// Present publishes a frame to be drawn on the next redraw.
func (m *Mirror) Present(f display.Frame) {
	m.pending.Store(&f)
}

// Redraw draws the pending frame if it differs from the one on screen. It
// reports whether anything was drawn.
func (m *Mirror) Redraw() bool {
	f := m.pending.Load()
	if f == nil || (m.drawn != nil && *m.drawn == *f) {
		return false
	}

	m.paint(*f)
	draw.Draw(m.dst, m.dst.Bounds(), m.canvas, m.canvas.Bounds().Min, draw.Src)

	m.drawn = f
	m.frames.Add(1)
	return true
}

// Frames returns the number of frames drawn so far.
func (m *Mirror) Frames() uint64 {
	return m.frames.Load()
}

// paint renders f onto the offscreen canvas.
func (m *Mirror) paint(f display.Frame) {
	bounds := m.canvas.Bounds()
	bg := parseColor(f.Render.BackgroundColor)
	fg := parseColor(f.Render.TextColor)

	draw.Draw(m.canvas, bounds, &image.Uniform{C: bg}, image.Point{}, draw.Src)

	if m.raster == nil || f.Message == "" {
		return
	}
	mask := m.raster.Rasterize(f.Message, f.FontSizePercent, bounds.Dx())
	mb := mask.Bounds()
	offset := image.Pt(bounds.Min.X, bounds.Min.Y+(bounds.Dy()-mb.Dy())/2)
	draw.DrawMask(m.canvas, mb.Add(offset), &image.Uniform{C: fg}, image.Point{}, mask, mb.Min, draw.Over)
}

// RunLoop redraws at a fixed rate until ctx is done, then closes the device.
func (m *Mirror) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(constants.MirrorFrameInterval)
	defer ticker.Stop()
	defer m.Close()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Uint64("frames", m.Frames()).Msg("Framebuffer mirror stopped")
			return
		case <-ticker.C:
			m.Redraw()
		}
	}
}

// Close releases the device. Safe to call more than once.
func (m *Mirror) Close() {
	if m.close != nil {
		m.close()
		m.close = nil
	}
}

// parseColor converts a #rrggbb string, falling back to black.
func parseColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

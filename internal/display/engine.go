// Package display implements the flashing display engine: persisted display
// configuration, the invert timer and the derived render colors.
//
// The engine is not safe for concurrent use. All mutation is expected to
// happen on a single event loop goroutine.
package display

import (
	"math"
	"time"

	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/palette"
)

// Config is the persisted display configuration.
type Config struct {
	Message         string
	FlashHz         float64
	FontSizePercent float64
	BaseColor       string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Message:         constants.DefaultMessage,
		FlashHz:         constants.DefaultFlashHz,
		FontSizePercent: constants.DefaultFontSize,
		BaseColor:       constants.DefaultColor,
	}
}

// RenderState is derived from the config and the invert flag. Never persisted.
type RenderState struct {
	Inverted        bool
	BackgroundColor string
	TextColor       string
}

// UIState is ephemeral panel state, reset on every start.
type UIState struct {
	ControlsVisible bool
	TitleEditable   bool
}

// Token identifies one armed timer generation. Only the most recently armed
// token is live; ticks carrying any other token are stale.
type Token struct {
	gen      uint64
	Interval time.Duration
}

// Valid reports whether the token was issued by Arm.
func (t Token) Valid() bool {
	return t.gen != 0
}

// Engine owns the display state and its transitions.
type Engine struct {
	message  *persisted[string]
	flashHz  *persisted[float64]
	fontSize *persisted[float64]
	color    *persisted[string]

	inverted bool
	ui       UIState

	gen   uint64
	armed bool
}

// New creates an engine, loading each setting from store and falling back to
// defaults. A nil store keeps all state in memory.
func New(store Store, defaults Config) *Engine {
	defaults = sanitize(defaults)
	colorCodec := codec[string]{
		encode: func(s string) string { return s },
		decode: func(s string) (string, bool) {
			norm, err := palette.Normalize(s)
			return norm, err == nil
		},
	}

	return &Engine{
		message:  loadPersisted(store, constants.KeyMessage, defaults.Message, stringCodec),
		flashHz:  loadPersisted(store, constants.KeyFlashHz, defaults.FlashHz, floatCodec(constants.MinFlashHz, constants.MaxFlashHz)),
		fontSize: loadPersisted(store, constants.KeyFontSize, defaults.FontSizePercent, floatCodec(constants.MinFontSize, constants.MaxFontSize)),
		color:    loadPersisted(store, constants.KeyColor, defaults.BaseColor, colorCodec),
		inverted: true,
	}
}

// sanitize forces caller-supplied defaults into range.
func sanitize(c Config) Config {
	builtin := DefaultConfig()
	if math.IsNaN(c.FlashHz) || c.FlashHz == 0 {
		c.FlashHz = builtin.FlashHz
	}
	if math.IsNaN(c.FontSizePercent) || c.FontSizePercent == 0 {
		c.FontSizePercent = builtin.FontSizePercent
	}
	c.FlashHz = clamp(c.FlashHz, constants.MinFlashHz, constants.MaxFlashHz)
	c.FontSizePercent = clamp(c.FontSizePercent, constants.MinFontSize, constants.MaxFontSize)
	if norm, err := palette.Normalize(c.BaseColor); err == nil {
		c.BaseColor = norm
	} else {
		c.BaseColor = builtin.BaseColor
	}
	return c
}

// Config returns the current persisted configuration.
func (e *Engine) Config() Config {
	return Config{
		Message:         e.message.get(),
		FlashHz:         e.flashHz.get(),
		FontSizePercent: e.fontSize.get(),
		BaseColor:       e.color.get(),
	}
}

// UI returns the current panel state.
func (e *Engine) UI() UIState {
	return e.ui
}

// Render derives the colors to draw with.
func (e *Engine) Render() RenderState {
	return Derive(e.color.get(), e.inverted)
}

// Derive computes the render colors for a base color and invert flag.
// The inverted background is the contrast of the contrast of the base color,
// a perceptual opposite rather than a color-wheel inverse.
func Derive(baseColor string, inverted bool) RenderState {
	bg := baseColor
	if inverted {
		bg = palette.ContrastColor(palette.ContrastColor(baseColor))
	}
	return RenderState{
		Inverted:        inverted,
		BackgroundColor: bg,
		TextColor:       palette.ContrastColor(bg),
	}
}

// Interval returns the tick period for the current flash rate.
func (e *Engine) Interval() time.Duration {
	return IntervalFor(e.flashHz.get())
}

// IntervalFor returns 1000/hz milliseconds.
func IntervalFor(hz float64) time.Duration {
	return time.Duration(float64(time.Second) / hz)
}

// Arm starts a new timer generation, invalidating any earlier token.
func (e *Engine) Arm() Token {
	e.gen++
	e.armed = true
	return Token{gen: e.gen, Interval: e.Interval()}
}

// Disarm tears down the timer. No outstanding token will tick again.
func (e *Engine) Disarm() {
	e.gen++
	e.armed = false
}

// Armed reports whether a timer generation is live.
func (e *Engine) Armed() bool {
	return e.armed
}

// Tick flips the invert flag if t is the live token. It returns false for
// stale tokens, which the caller must not reschedule.
func (e *Engine) Tick(t Token) bool {
	if !e.armed || !t.Valid() || t.gen != e.gen {
		return false
	}
	e.inverted = !e.inverted
	return true
}

// SetFlashHz clamps and persists the flash rate. When the engine is armed and
// the rate changed, the timer is replaced and the new token returned; the
// caller schedules it in place of the old one.
func (e *Engine) SetFlashHz(hz float64) (Token, bool) {
	if math.IsNaN(hz) {
		return Token{}, false
	}
	hz = clamp(hz, constants.MinFlashHz, constants.MaxFlashHz)
	if hz == e.flashHz.get() {
		return Token{}, false
	}
	e.flashHz.set(hz)
	if !e.armed {
		return Token{}, false
	}
	return e.Arm(), true
}

// SetFontSize clamps and persists the font size percentage.
func (e *Engine) SetFontSize(size float64) {
	if math.IsNaN(size) {
		return
	}
	size = clamp(size, constants.MinFontSize, constants.MaxFontSize)
	if size == e.fontSize.get() {
		return
	}
	e.fontSize.set(size)
}

// SetBaseColor normalizes and persists the base color. Unparsable colors are
// ignored and reported with false.
func (e *Engine) SetBaseColor(hex string) bool {
	norm, err := palette.Normalize(hex)
	if err != nil {
		return false
	}
	if norm != e.color.get() {
		e.color.set(norm)
	}
	return true
}

// EditMessage replaces the message. It only takes effect while the title is
// editable.
func (e *Engine) EditMessage(msg string) bool {
	if !e.ui.TitleEditable {
		return false
	}
	if r := []rune(msg); len(r) > constants.MaxMessageLength {
		msg = string(r[:constants.MaxMessageLength])
	}
	if msg != e.message.get() {
		e.message.set(msg)
	}
	return true
}

// ToggleControls shows or hides the settings panel.
func (e *Engine) ToggleControls() bool {
	e.ui.ControlsVisible = !e.ui.ControlsVisible
	return e.ui.ControlsVisible
}

// ToggleTitleEditable switches edit mode. The timer is unaffected.
func (e *Engine) ToggleTitleEditable() bool {
	e.ui.TitleEditable = !e.ui.TitleEditable
	return e.ui.TitleEditable
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Frame is an immutable snapshot of everything needed to draw the display.
type Frame struct {
	Message         string
	FontSizePercent float64
	Render          RenderState
}

// Frame captures the current drawable state.
func (e *Engine) Frame() Frame {
	return Frame{
		Message:         e.message.get(),
		FontSizePercent: e.fontSize.get(),
		Render:          e.Render(),
	}
}

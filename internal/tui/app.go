// Package tui provides the full-screen terminal display.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/strobe/internal/banner"
	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/display"
)

// Mirror receives every committed frame, e.g. to drive a second output.
// Present is called on the UI goroutine and must not block.
type Mirror interface {
	Present(display.Frame)
}

// Model is the main TUI model.
type Model struct {
	engine   *display.Engine
	banner   *banner.Rasterizer
	editor   textinput.Model
	controls Controls
	mirror   Mirror

	width  int
	height int
	ready  bool
}

// NewModel creates a model around an engine. rasterizer may be nil, in which
// case the message is drawn as plain text.
func NewModel(engine *display.Engine, rasterizer *banner.Rasterizer, swatches []string) Model {
	ti := textinput.New()
	ti.Prompt = "✎ "
	ti.Placeholder = "Type your message..."
	ti.CharLimit = constants.MaxMessageLength
	ti.Width = 40

	return Model{
		engine:   engine,
		banner:   rasterizer,
		editor:   ti,
		controls: NewControls(swatches, engine.Config().BaseColor),
	}
}

// SetMirror attaches a frame mirror.
func (m *Model) SetMirror(mirror Mirror) {
	m.mirror = mirror
}

// TickMsg flips the display when its token is still live.
type TickMsg struct {
	Token display.Token
}

// tick schedules one tick for tok.
func tick(tok display.Token) tea.Cmd {
	return tea.Tick(tok.Interval, func(time.Time) tea.Msg {
		return TickMsg{Token: tok}
	})
}

// Init arms the flash timer.
func (m Model) Init() tea.Cmd {
	tok := m.engine.Arm()
	m.present()
	return tea.Batch(
		tick(tok),
		m.windowTitle(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.controls.SetWidth(m.width)
		m.editor.Width = max(min(m.width, maxCardWidth)-8, 8)
		m.ready = true
		return m, nil

	case TickMsg:
		if !m.engine.Tick(msg.Token) {
			// stale timer, torn down by a rate change or quit
			return m, nil
		}
		cmd = tick(msg.Token)

	case tea.KeyMsg:
		var quit bool
		m, cmd, quit = m.handleKey(msg)
		if quit {
			m.engine.Disarm()
			return m, tea.Quit
		}

	default:
		// cursor blink and other editor internals
		if m.engine.UI().TitleEditable {
			m.editor, cmd = m.editor.Update(msg)
		}
	}

	m.present()
	return m, cmd
}

// handleKey routes a key press. quit reports that the program should exit.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if key.Matches(msg, keys.ForceQuit) {
		return m, nil, true
	}

	if m.engine.UI().TitleEditable {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, nil, true

	case key.Matches(msg, keys.Edit):
		m.engine.ToggleTitleEditable()
		m.editor.SetValue(m.engine.Config().Message)
		m.editor.CursorEnd()
		cmd := m.editor.Focus()
		return m, cmd, false

	case key.Matches(msg, keys.Controls):
		m.engine.ToggleControls()
		return m, nil, false
	}

	if !m.engine.UI().ControlsVisible {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, keys.NextControl):
		m.controls.FocusNext()
	case key.Matches(msg, keys.PrevControl):
		m.controls.FocusPrev()
	case key.Matches(msg, keys.Increase):
		return m.adjust(1)
	case key.Matches(msg, keys.Decrease):
		return m.adjust(-1)
	}
	return m, nil, false
}

// handleEditKey feeds the editor and commits every change to the message.
func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if key.Matches(msg, keys.Save) {
		m.engine.ToggleTitleEditable()
		m.editor.Blur()
		log.Debug().Str("text", m.engine.Config().Message).Msg("Saved message")
		return m, nil, false
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if value := m.editor.Value(); value != m.engine.Config().Message {
		m.engine.EditMessage(value)
		cmd = tea.Batch(cmd, m.windowTitle())
	}
	return m, cmd, false
}

// adjust moves the focused control one step in dir.
func (m Model) adjust(dir int) (Model, tea.Cmd, bool) {
	cfg := m.engine.Config()

	switch m.controls.Focused() {
	case controlSpeed:
		tok, rearmed := m.engine.SetFlashHz(stepValue(cfg.FlashHz, dir, constants.FlashHzStep))
		if rearmed {
			log.Debug().Dur("interval", tok.Interval).Msg("Flash timer replaced")
			return m, tick(tok), false
		}

	case controlFontSize:
		m.engine.SetFontSize(stepValue(cfg.FontSizePercent, dir, constants.FontSizeStep))

	case controlColor:
		if color := m.controls.MoveSwatch(dir); color != "" {
			m.engine.SetBaseColor(color)
		}
	}
	return m, nil, false
}

// present forwards the current frame to the mirror, if any.
func (m Model) present() {
	if m.mirror != nil {
		m.mirror.Present(m.engine.Frame())
	}
}

// windowTitle mirrors the message into the terminal title.
func (m Model) windowTitle() tea.Cmd {
	title := m.engine.Config().Message
	if title == "" {
		title = constants.AppName
	}
	return tea.SetWindowTitle(title)
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	frame := m.engine.Frame()
	ui := m.engine.UI()
	bg := frame.Render.BackgroundColor

	var panel []string
	if ui.TitleEditable {
		panel = append(panel, EditorStyle.
			BorderForeground(lipgloss.Color(frame.Render.TextColor)).
			Render(m.editor.View()))
	}
	panel = append(panel, m.buttons(frame.Render))
	if ui.ControlsVisible {
		panel = append(panel, m.controls.View(m.engine.Config()))
	}

	bottom := lipgloss.JoinVertical(lipgloss.Center, panel...)
	bottomHeight := min(lipgloss.Height(bottom), m.height)
	bottom = lipgloss.Place(m.width, bottomHeight, lipgloss.Center, lipgloss.Bottom, bottom,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bg)))

	heroHeight := m.height - bottomHeight
	if heroHeight <= 0 {
		return bottom
	}
	return renderHero(m.banner, frame, m.width, heroHeight) + "\n" + bottom
}

// buttons renders the edit and controls toggles.
func (m Model) buttons(rs display.RenderState) string {
	ui := m.engine.UI()

	edit := "[e] Edit Text"
	if ui.TitleEditable {
		edit = "[enter] Save Text"
	}
	ctl := "[c] Show Controls"
	if ui.ControlsVisible {
		ctl = "[c] Hide Controls"
	}

	style := buttonStyle(rs.TextColor, rs.BackgroundColor)
	gap := lipgloss.NewStyle().Background(lipgloss.Color(rs.BackgroundColor)).Render("    ")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, style.Render(edit), gap, style.Render(ctl))
}

// Key bindings
var keys = struct {
	ForceQuit   key.Binding
	Quit        key.Binding
	Edit        key.Binding
	Save        key.Binding
	Controls    key.Binding
	NextControl key.Binding
	PrevControl key.Binding
	Increase    key.Binding
	Decrease    key.Binding
}{
	ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	Quit:        key.NewBinding(key.WithKeys("q")),
	Edit:        key.NewBinding(key.WithKeys("e")),
	Save:        key.NewBinding(key.WithKeys("enter", "esc")),
	Controls:    key.NewBinding(key.WithKeys("c")),
	NextControl: key.NewBinding(key.WithKeys("tab", "down", "j")),
	PrevControl: key.NewBinding(key.WithKeys("shift+tab", "up", "k")),
	Increase:    key.NewBinding(key.WithKeys("right", "l", "+", "=")),
	Decrease:    key.NewBinding(key.WithKeys("left", "h", "-")),
}

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/strobe/internal/banner"
	"github.com/xonecas/strobe/internal/display"
)

// Options configures a TUI run.
type Options struct {
	Swatches []string
	Mirror   Mirror
}

// Run starts the full-screen display and blocks until the user quits or ctx
// is cancelled. The flash timer is disarmed on return.
func Run(ctx context.Context, engine *display.Engine, opts Options) error {
	if engine == nil {
		return fmt.Errorf("engine cannot be nil")
	}

	rasterizer, err := banner.New()
	if err != nil {
		// plain text still works
		log.Warn().Err(err).Msg("Failed to load banner font, using plain text")
		rasterizer = nil
	}

	model := NewModel(engine, rasterizer, opts.Swatches)
	if opts.Mirror != nil {
		model.SetMirror(opts.Mirror)
	}

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	defer engine.Disarm()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run display: %w", err)
	}
	log.Info().Msg("Display closed")
	return nil
}

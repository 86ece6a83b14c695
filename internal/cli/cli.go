// Package cli wires configuration, persistence and the display into the
// strobe command.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xonecas/strobe/internal/config"
	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/display"
	"github.com/xonecas/strobe/internal/framebuffer"
	"github.com/xonecas/strobe/internal/profile"
	"github.com/xonecas/strobe/internal/store"
	"github.com/xonecas/strobe/internal/tui"
)

// NewRootCommand builds the strobe command tree.
func NewRootCommand(version string) *cobra.Command {
	var flags Flags

	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Full-screen flashing message display",
		Long: `Strobe fills the terminal with a message and flashes it between a base
color and its contrast color at an adjustable rate.

Press e to edit the message, c to show the speed, size and color controls,
and q to quit. Settings are saved per profile and restored on the next start.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDisplay(cmd.Context(), &flags)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("Strobe %s\n", version))
	root.SetHelpFunc(printHelp)

	flags.bind(root)
	root.AddCommand(newProfilesCommand(&flags))

	return root
}

// runDisplay starts the full-screen display.
func runDisplay(ctx context.Context, flags *Flags) error {
	closeLogs := setupDisplayLogging(flags.Debug)
	defer closeLogs()

	cfg, engine, closeStore, err := prepareDisplay(flags)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := tui.Options{Swatches: cfg.Palette.Swatches}

	device := flags.Framebuffer
	if device == "" {
		device = cfg.Kiosk.Framebuffer
	}
	if device != "" {
		mirror, err := framebuffer.Open(device)
		if err != nil {
			return err
		}
		opts.Mirror = mirror

		mirrorCtx, cancel := context.WithCancel(ctx)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			mirror.RunLoop(mirrorCtx)
		}()
		defer func() {
			cancel()
			wg.Wait()
		}()
	}

	return tui.Run(ctx, engine, opts)
}

// prepareDisplay loads the config and builds the engine on top of the
// profile's settings. Only an unreadable config file is an error.
func prepareDisplay(flags *Flags) (*config.Config, *display.Engine, func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, nil, err
	}

	name := flags.ProfileName
	if name == "" {
		name = cfg.Storage.Profile
	}

	settings, closeStore := openSettings(cfg, name, flags)
	return cfg, display.New(settings, cfg.DisplayDefaults()), closeStore, nil
}

// loadConfig resolves and loads the config file, or returns the built-in
// defaults when there is none.
func loadConfig(flags *Flags) (*config.Config, error) {
	path := config.ResolvePath(flags.ConfigPath)
	if path == "" {
		log.Debug().Msg("No config file found, using defaults")
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("config", path).Msg("Loaded config")
	return cfg, nil
}

// openSettings returns the settings store for the named profile. Any failure
// to reach the database degrades to in-memory settings.
func openSettings(cfg *config.Config, name string, flags *Flags) (display.Store, func()) {
	noop := func() {}

	if flags.Memory || cfg.Storage.Disabled {
		log.Info().Msg("Settings kept in memory")
		return display.NewMemoryStore(), noop
	}

	db, err := openStore(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Settings database unavailable, keeping settings in memory")
		return display.NewMemoryStore(), noop
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	mgr := profile.NewManager(db)
	if flags.Reset {
		if err := mgr.Reset(name); err != nil {
			log.Warn().Err(err).Str("profile", name).Msg("Failed to reset profile")
		}
	}

	result, err := mgr.Initialize(name)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize profile, keeping settings in memory")
		closeDB()
		return display.NewMemoryStore(), noop
	}
	log.Info().Str("profile_id", result.ProfileID).Msg(result.ProfileInfo)

	return mgr.Settings(result.ProfileID), closeDB
}

// openStore opens the settings database configured in cfg.
func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Debug().Str("path", path).Msg("Opened settings database")
	return db, nil
}

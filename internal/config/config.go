// Package config loads the optional TOML configuration file and resolves the
// application data directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/xonecas/strobe/internal/constants"
	"github.com/xonecas/strobe/internal/display"
	"github.com/xonecas/strobe/internal/palette"
)

// Config is the root configuration.
type Config struct {
	Display Display `toml:"display"`
	Palette Palette `toml:"palette"`
	Storage Storage `toml:"storage"`
	Kiosk   Kiosk   `toml:"kiosk"`
}

// Display holds the defaults used when a setting has never been persisted.
type Display struct {
	Message  string  `toml:"message"`
	FlashHz  float64 `toml:"flash_hz"`
	FontSize float64 `toml:"font_size"`
	Color    string  `toml:"color"`
}

// Palette holds the color picker swatches.
type Palette struct {
	Swatches []string `toml:"swatches"`
}

// Storage configures settings persistence.
type Storage struct {
	// Path overrides the database location. Empty means the data dir.
	Path    string `toml:"path"`
	Profile string `toml:"profile"`
	// Disabled keeps settings in memory only.
	Disabled bool `toml:"disabled"`
}

// Kiosk configures the optional framebuffer mirror.
type Kiosk struct {
	Framebuffer string `toml:"framebuffer"`
}

// Default returns the built-in configuration.
func Default() *Config {
	swatches := make([]string, len(palette.Swatches))
	copy(swatches, palette.Swatches)

	return &Config{
		Display: Display{
			Message:  constants.DefaultMessage,
			FlashHz:  constants.DefaultFlashHz,
			FontSize: constants.DefaultFontSize,
			Color:    constants.DefaultColor,
		},
		Palette: Palette{Swatches: swatches},
		Storage: Storage{Profile: constants.DefaultProfile},
	}
}

// Load reads the config file at path over the defaults. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and colors and normalizes swatches in place.
func (c *Config) Validate() error {
	d := c.Display
	if d.FlashHz < constants.MinFlashHz || d.FlashHz > constants.MaxFlashHz {
		return fmt.Errorf("display.flash_hz %v out of range [%v, %v]", d.FlashHz, constants.MinFlashHz, constants.MaxFlashHz)
	}
	if d.FontSize < constants.MinFontSize || d.FontSize > constants.MaxFontSize {
		return fmt.Errorf("display.font_size %v out of range [%v, %v]", d.FontSize, constants.MinFontSize, constants.MaxFontSize)
	}
	color, err := palette.Normalize(d.Color)
	if err != nil {
		return fmt.Errorf("display.color: %w", err)
	}
	c.Display.Color = color

	if len(c.Palette.Swatches) == 0 {
		return fmt.Errorf("palette.swatches must not be empty")
	}
	for i, s := range c.Palette.Swatches {
		norm, err := palette.Normalize(s)
		if err != nil {
			return fmt.Errorf("palette.swatches[%d]: %w", i, err)
		}
		c.Palette.Swatches[i] = norm
	}

	if c.Storage.Profile == "" {
		c.Storage.Profile = constants.DefaultProfile
	}
	return nil
}

// DisplayDefaults converts the [display] section for the engine.
func (c *Config) DisplayDefaults() display.Config {
	return display.Config{
		Message:         c.Display.Message,
		FlashHz:         c.Display.FlashHz,
		FontSizePercent: c.Display.FontSize,
		BaseColor:       c.Display.Color,
	}
}

// DatabasePath returns the configured database path, defaulting to the data dir.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := EnsureDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.DatabaseFile), nil
}

// DataDir returns the application data directory.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, constants.AppDataDir), nil
}

// EnsureDataDir returns the data directory, creating it if needed.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// ResolvePath picks the config file: an explicit path, then ./config.toml,
// then the data dir. It returns "" when none exists.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("config.toml"); err == nil {
		return "config.toml"
	}
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

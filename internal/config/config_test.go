package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xonecas/strobe/internal/palette"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Display.Message != "S.O.S" {
		t.Errorf("Message = %q, want S.O.S", cfg.Display.Message)
	}
	if cfg.Display.FlashHz != 1.5 || cfg.Display.FontSize != 25 {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Display.Color != "#f44336" {
		t.Errorf("Color = %q", cfg.Display.Color)
	}
	if len(cfg.Palette.Swatches) != len(palette.Swatches) {
		t.Errorf("got %d swatches, want %d", len(cfg.Palette.Swatches), len(palette.Swatches))
	}
	if cfg.Storage.Profile != "default" {
		t.Errorf("Profile = %q, want default", cfg.Storage.Profile)
	}
}

func TestDefaultDoesNotAliasPalette(t *testing.T) {
	cfg := Default()
	cfg.Palette.Swatches[0] = "#000000"
	if palette.Swatches[0] != "#f44336" {
		t.Fatal("Default shares the package swatch slice")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[display]
message = "EXIT"
flash_hz = 4
color = "#2196F3"

[palette]
swatches = ["#000", "#FFFFFF"]

[storage]
profile = "festival"

[kiosk]
framebuffer = "/dev/fb1"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Display.Message != "EXIT" {
		t.Errorf("Message = %q, want EXIT", cfg.Display.Message)
	}
	if cfg.Display.FlashHz != 4 {
		t.Errorf("FlashHz = %v, want 4", cfg.Display.FlashHz)
	}
	if cfg.Display.FontSize != 25 {
		t.Errorf("FontSize = %v, want untouched default 25", cfg.Display.FontSize)
	}
	if cfg.Display.Color != "#2196f3" {
		t.Errorf("Color = %q, want normalized #2196f3", cfg.Display.Color)
	}
	if got := strings.Join(cfg.Palette.Swatches, ","); got != "#000000,#ffffff" {
		t.Errorf("Swatches = %s", got)
	}
	if cfg.Storage.Profile != "festival" {
		t.Errorf("Profile = %q", cfg.Storage.Profile)
	}
	if cfg.Kiosk.Framebuffer != "/dev/fb1" {
		t.Errorf("Framebuffer = %q", cfg.Kiosk.Framebuffer)
	}

	d := cfg.DisplayDefaults()
	if d.Message != "EXIT" || d.FlashHz != 4 || d.FontSizePercent != 25 || d.BaseColor != "#2196f3" {
		t.Errorf("DisplayDefaults = %+v", d)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"flash too fast", "[display]\nflash_hz = 11\n", "flash_hz"},
		{"flash too slow", "[display]\nflash_hz = 0.1\n", "flash_hz"},
		{"font too big", "[display]\nfont_size = 101\n", "font_size"},
		{"bad color", "[display]\ncolor = \"red\"\n", "display.color"},
		{"empty palette", "[palette]\nswatches = []\n", "swatches"},
		{"bad swatch", "[palette]\nswatches = [\"#fff\", \"nope\"]\n", "swatches[1]"},
		{"bad toml", "[display\n", "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEmptyProfileFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[storage]\nprofile = \"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Profile != "default" {
		t.Errorf("Profile = %q, want default", cfg.Storage.Profile)
	}
}

func TestDatabasePathOverride(t *testing.T) {
	cfg := Default()
	cfg.Storage.Path = "/tmp/custom.db"

	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath: %v", err)
	}
	if path != "/tmp/custom.db" {
		t.Errorf("DatabasePath = %q", path)
	}
}

func TestResolvePathExplicit(t *testing.T) {
	if got := ResolvePath("/etc/strobe.toml"); got != "/etc/strobe.toml" {
		t.Errorf("ResolvePath = %q", got)
	}
}

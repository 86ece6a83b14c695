package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/strobe/internal/config"
	"github.com/xonecas/strobe/internal/display"
	"github.com/xonecas/strobe/internal/profile"
	"github.com/xonecas/strobe/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "strobe.db")
	return cfg
}

func TestOpenSettingsMemory(t *testing.T) {
	cfg := testConfig(t)

	settings, closeFn := openSettings(cfg, "default", &Flags{Memory: true})
	defer closeFn()

	if _, ok := settings.(*display.MemoryStore); !ok {
		t.Errorf("settings = %T, want *display.MemoryStore", settings)
	}
}

func TestOpenSettingsDisabledInConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Disabled = true

	settings, closeFn := openSettings(cfg, "default", &Flags{})
	defer closeFn()

	if _, ok := settings.(*display.MemoryStore); !ok {
		t.Errorf("settings = %T, want *display.MemoryStore", settings)
	}
}

func TestOpenSettingsPersists(t *testing.T) {
	cfg := testConfig(t)

	settings, closeFn := openSettings(cfg, "stage", &Flags{})
	e := display.New(settings, cfg.DisplayDefaults())
	e.SetFontSize(60)
	closeFn()

	settings, closeFn = openSettings(cfg, "stage", &Flags{})
	defer closeFn()
	if got := display.New(settings, cfg.DisplayDefaults()).Config().FontSizePercent; got != 60 {
		t.Errorf("FontSizePercent = %v, want 60", got)
	}
}

func TestOpenSettingsReset(t *testing.T) {
	cfg := testConfig(t)

	settings, closeFn := openSettings(cfg, "stage", &Flags{})
	display.New(settings, cfg.DisplayDefaults()).SetFontSize(60)
	closeFn()

	settings, closeFn = openSettings(cfg, "stage", &Flags{Reset: true})
	defer closeFn()
	if got := display.New(settings, cfg.DisplayDefaults()).Config().FontSizePercent; got != 25 {
		t.Errorf("FontSizePercent = %v, want 25 after reset", got)
	}
}

func TestOpenSettingsFallsBackToMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "missing", "dir", "strobe.db")

	settings, closeFn := openSettings(cfg, "default", &Flags{})
	defer closeFn()

	if _, ok := settings.(*display.MemoryStore); !ok {
		t.Errorf("settings = %T, want *display.MemoryStore", settings)
	}
}

func newTestManager(t *testing.T) *profile.Manager {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "strobe.db"))
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return profile.NewManager(db)
}

func TestListProfilesCmd(t *testing.T) {
	mgr := newTestManager(t)

	var buf bytes.Buffer
	if err := ListProfilesCmd(&buf, mgr); err != nil {
		t.Fatalf("ListProfilesCmd() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No profiles found") {
		t.Errorf("output = %q", buf.String())
	}

	if _, err := mgr.Initialize("stage"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	buf.Reset()
	if err := ListProfilesCmd(&buf, mgr); err != nil {
		t.Fatalf("ListProfilesCmd() error = %v", err)
	}
	if !strings.Contains(buf.String(), "stage") {
		t.Errorf("output missing profile name: %q", buf.String())
	}
}

func TestDeleteProfileCmd(t *testing.T) {
	mgr := newTestManager(t)
	if _, err := mgr.Initialize("stage"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	var buf bytes.Buffer
	if err := DeleteProfileCmd(&buf, mgr, "stage"); err != nil {
		t.Fatalf("DeleteProfileCmd() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Deleted profile 'stage'") {
		t.Errorf("output = %q", buf.String())
	}

	if err := DeleteProfileCmd(&buf, mgr, "stage"); err == nil {
		t.Error("deleting a missing profile should fail")
	}
}

func TestRootCommandVersion(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := buf.String(); got != "Strobe 1.2.3\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand("dev")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"--profile", "--framebuffer", "profiles list"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := NewRootCommand("dev")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestProfilesDeleteRequiresName(t *testing.T) {
	cmd := NewRootCommand("dev")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"profiles", "delete"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error without a profile name")
	}
}

// unusableHome points HOME at a regular file so the data directory cannot be
// created.
func unusableHome(t *testing.T) {
	t.Helper()
	home := filepath.Join(t.TempDir(), "home-is-a-file")
	if err := os.WriteFile(home, nil, 0600); err != nil {
		t.Fatalf("write home file: %v", err)
	}
	t.Setenv("HOME", home)

	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})
}

func TestFileLoggingWritesAndCloses(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	logger, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
	})

	closeLogs, err := SetupFileLogging(true)
	if err != nil {
		t.Fatalf("SetupFileLogging() error = %v", err)
	}
	log.Info().Msg("hello")
	closeLogs()

	for _, name := range []string{"strobe.log", "strobe-debug.log"} {
		data, err := os.ReadFile(filepath.Join(home, ".config", "strobe", "logs", name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), "hello") {
			t.Errorf("%s missing log line: %q", name, data)
		}
	}
}

func TestDisplayLoggingUnwritableHome(t *testing.T) {
	unusableHome(t)

	if _, err := SetupFileLogging(false); err == nil {
		t.Fatal("SetupFileLogging() should fail without a data directory")
	}

	closeLogs := setupDisplayLogging(false)
	defer closeLogs()
	log.Info().Msg("discarded")
}

func TestPrepareDisplayUnwritableHome(t *testing.T) {
	for _, flags := range []*Flags{{Memory: true}, {}} {
		unusableHome(t)
		closeLogs := setupDisplayLogging(false)

		_, engine, closeStore, err := prepareDisplay(flags)
		if err != nil {
			t.Fatalf("prepareDisplay(memory=%v) error = %v", flags.Memory, err)
		}
		if got := engine.Config().Message; got != "S.O.S" {
			t.Errorf("Message = %q, want default", got)
		}

		// settings still work in memory
		engine.SetFontSize(60)
		if got := engine.Config().FontSizePercent; got != 60 {
			t.Errorf("FontSizePercent = %v, want 60", got)
		}
		closeStore()
		closeLogs()
	}
}

func TestPrepareDisplayMissingConfig(t *testing.T) {
	unusableHome(t)
	flags := &Flags{Memory: true, ConfigPath: filepath.Join(t.TempDir(), "nope.toml")}

	if _, _, _, err := prepareDisplay(flags); err == nil {
		t.Error("an explicit config path that does not exist should fail")
	}
}

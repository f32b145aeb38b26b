package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvBackend, "YUI_LOG_LEVEL", "YUI_LOG_DIR", "YUI_STRICT_INPUT", "YUI_REST_API", "YUI_ICON_BASE_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg.TextMode.ResizeDebounce != 150*time.Millisecond {
		t.Fatalf("resize debounce = %v, want 150ms", cfg.TextMode.ResizeDebounce)
	}
	if cfg.TextMode.RedrawInterval != 100*time.Millisecond || cfg.TextMode.PollInterval != 10*time.Millisecond {
		t.Fatalf("unexpected text-mode intervals: %+v", cfg.TextMode)
	}
	if cfg.TextMode.PixelsPerColumn != 8 || cfg.TextMode.PixelsPerRow != 16 {
		t.Fatalf("unexpected pixel ratios: %+v", cfg.TextMode)
	}
	if cfg.Input.StrictDateTime {
		t.Fatal("strict date/time input should default off")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "yui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	body := `
backend:
  preferred: gtk
textmode:
  resize_debounce: 300ms
input:
  strict_date_time: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PreferredBackend() != config.BackendGTK {
		t.Errorf("preferred = %q, want gtk", cfg.PreferredBackend())
	}
	if cfg.TextMode.ResizeDebounce != 300*time.Millisecond {
		t.Errorf("resize debounce = %v, want 300ms", cfg.TextMode.ResizeDebounce)
	}
	if cfg.TextMode.RedrawInterval != config.DefaultRedrawInterval {
		t.Errorf("redraw interval should keep default, got %v", cfg.TextMode.RedrawInterval)
	}
	if !cfg.Input.StrictDateTime {
		t.Error("strict_date_time should be loaded")
	}
}

func TestLoadMissingUserConfigUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TextMode.PollInterval != config.DefaultPollInterval {
		t.Errorf("poll interval = %v", cfg.TextMode.PollInterval)
	}
}

func TestLoadFromPathErrors(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if !yerrors.IsCode(err, yerrors.ErrCodeConfigLoad) {
		t.Fatalf("missing file error = %v, want CONFIG_LOAD", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("textmode:\n  poll_interval: -5ms\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err = config.LoadFromPath(bad)
	if !yerrors.IsCode(err, yerrors.ErrCodeConfigInvalid) {
		t.Fatalf("invalid interval error = %v, want CONFIG_INVALID", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvBackend, "NCurses")
	t.Setenv("YUI_LOG_LEVEL", "DEBUG")
	t.Setenv("YUI_STRICT_INPUT", "yes")
	t.Setenv("YUI_REST_API", "127.0.0.1:9999")

	cfg := config.DefaultConfig()
	config.ApplyEnvOverrides(cfg)

	if cfg.PreferredBackend() != config.BackendNCurses {
		t.Errorf("preferred = %q, want ncurses", cfg.PreferredBackend())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if !cfg.Input.StrictDateTime {
		t.Error("YUI_STRICT_INPUT=yes should enable strict input")
	}
	if !cfg.Remote.Enabled || cfg.Remote.Listen != "127.0.0.1:9999" {
		t.Errorf("remote = %+v", cfg.Remote)
	}
}

func TestUnknownBackendIsIgnoredWithWarning(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend.Preferred = "motif"

	if cfg.PreferredBackend() != "" {
		t.Errorf("unknown backend should fall back to auto-detect, got %q", cfg.PreferredBackend())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unknown backend should not fail validation: %v", err)
	}
	if len(cfg.ValidationWarnings()) != 1 {
		t.Errorf("warnings = %v, want one", cfg.ValidationWarnings())
	}
}

func TestCellsForPixels(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := cfg.CellsForPixels(100, false); got != 13 {
		t.Errorf("100px wide = %d cells, want 13", got)
	}
	if got := cfg.CellsForPixels(32, true); got != 2 {
		t.Errorf("32px tall = %d cells, want 2", got)
	}
	if got := cfg.CellsForPixels(0, true); got != 0 {
		t.Errorf("0px = %d cells, want 0", got)
	}
}

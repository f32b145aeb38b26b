package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// Backend names accepted by the backend override.
const (
	BackendQt      = "qt"
	BackendGTK     = "gtk"
	BackendNCurses = "ncurses"
)

// EnvBackend is the single environment variable selecting a backend.
const EnvBackend = "YUI_BACKEND"

// Default configuration values exported for documentation and validation
const (
	DefaultResizeDebounce  = 150 * time.Millisecond
	DefaultRedrawInterval  = 100 * time.Millisecond
	DefaultPollInterval    = 10 * time.Millisecond
	DefaultPixelsPerColumn = 8
	DefaultPixelsPerRow    = 16
	DefaultLogLevel        = "info"
	DefaultRemoteListen    = "127.0.0.1:14155"
)

// Config represents the complete library configuration
type Config struct {
	Backend     BackendConfig     `yaml:"backend"`
	TextMode    TextModeConfig    `yaml:"textmode"`
	Input       InputConfig       `yaml:"input"`
	Application ApplicationConfig `yaml:"application"`
	Logging     LoggingConfig     `yaml:"logging"`
	Remote      RemoteConfig      `yaml:"remote"`
}

// BackendConfig controls backend selection.
type BackendConfig struct {
	Preferred  string `yaml:"preferred"` // qt, gtk, ncurses or "" for auto-detect
	Fullscreen bool   `yaml:"fullscreen"`
}

// TextModeConfig tunes the character-cell backend.
type TextModeConfig struct {
	ResizeDebounce  time.Duration `yaml:"resize_debounce"`
	RedrawInterval  time.Duration `yaml:"redraw_interval"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	PixelsPerColumn int           `yaml:"pixels_per_column"`
	PixelsPerRow    int           `yaml:"pixels_per_row"`
}

// InputConfig controls input field validation policy.
type InputConfig struct {
	// StrictDateTime makes date/time fields report malformed values as
	// errors instead of silently ignoring them.
	StrictDateTime bool `yaml:"strict_date_time"`
}

// ApplicationConfig holds process-wide application defaults.
type ApplicationConfig struct {
	ProductName  string `yaml:"product_name"`
	IconBasePath string `yaml:"icon_base_path"`
	LocalesDir   string `yaml:"locales_dir"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Dir   string `yaml:"dir"` // empty disables file logging
	Level string `yaml:"level"`
}

// RemoteConfig controls the HTTP remote-control API.
type RemoteConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	return &Config{
		TextMode: TextModeConfig{
			ResizeDebounce:  DefaultResizeDebounce,
			RedrawInterval:  DefaultRedrawInterval,
			PollInterval:    DefaultPollInterval,
			PixelsPerColumn: DefaultPixelsPerColumn,
			PixelsPerRow:    DefaultPixelsPerRow,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Remote: RemoteConfig{
			Listen: DefaultRemoteListen,
		},
	}
}

// Load loads configuration from default locations with proper precedence
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := UserConfigPath(); path != "" {
		if err := loadAndMerge(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, yerrors.Wrap(err, yerrors.ErrCodeConfigLoad, "loading user config").
				WithContext("path", path)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		return nil, yerrors.Wrap(err, yerrors.ErrCodeConfigLoad, "loading config").
			WithContext("path", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies the YUI_* environment variables to cfg.
func ApplyEnvOverrides(cfg *Config) {
	applyEnvOverrides(cfg)
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv(EnvBackend); ok {
		cfg.Backend.Preferred = strings.TrimSpace(v)
	}
	if v := os.Getenv("YUI_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("YUI_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v, ok := envBool("YUI_STRICT_INPUT"); ok {
		cfg.Input.StrictDateTime = v
	}
	if v := os.Getenv("YUI_REST_API"); v != "" {
		if enabled, ok := envBool("YUI_REST_API"); ok {
			cfg.Remote.Enabled = enabled
		} else {
			cfg.Remote.Enabled = true
			cfg.Remote.Listen = v
		}
	}
	if v := os.Getenv("YUI_ICON_BASE_PATH"); v != "" {
		cfg.Application.IconBasePath = v
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// NormalizeBackendName lowercases a backend name and reports whether it is
// one of the three accepted names.
func NormalizeBackendName(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case BackendQt, BackendGTK, BackendNCurses:
		return n, true
	default:
		return n, false
	}
}

// PreferredBackend returns the normalized preferred backend, or "" when the
// preference is empty or names no known backend.
func (c *Config) PreferredBackend() string {
	if c == nil {
		return ""
	}
	n, ok := NormalizeBackendName(c.Backend.Preferred)
	if !ok {
		return ""
	}
	return n
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	var problems []string

	if c.TextMode.ResizeDebounce < 0 {
		problems = append(problems, "textmode.resize_debounce must not be negative")
	}
	if c.TextMode.RedrawInterval <= 0 {
		problems = append(problems, "textmode.redraw_interval must be positive")
	}
	if c.TextMode.PollInterval <= 0 {
		problems = append(problems, "textmode.poll_interval must be positive")
	}
	if c.TextMode.PixelsPerColumn <= 0 || c.TextMode.PixelsPerRow <= 0 {
		problems = append(problems, "textmode pixel ratios must be positive")
	}
	if c.Remote.Enabled && strings.TrimSpace(c.Remote.Listen) == "" {
		problems = append(problems, "remote.listen is required when remote.enabled is set")
	}

	if len(problems) > 0 {
		return yerrors.New(yerrors.ErrCodeConfigInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ValidationWarnings lists non-fatal configuration issues.
func (c *Config) ValidationWarnings() []string {
	var warnings []string
	if c.Backend.Preferred != "" {
		if _, ok := NormalizeBackendName(c.Backend.Preferred); !ok {
			warnings = append(warnings, fmt.Sprintf("unknown backend %q ignored; auto-detecting", c.Backend.Preferred))
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q; using info", c.Logging.Level))
	}
	return warnings
}

// CellsForPixels converts a pixel extent to character cells along the
// horizontal (vertical=false) or vertical axis, rounding up.
func (c *Config) CellsForPixels(pixels int, vertical bool) int {
	if pixels <= 0 {
		return 0
	}
	per := c.TextMode.PixelsPerColumn
	if vertical {
		per = c.TextMode.PixelsPerRow
	}
	if per <= 0 {
		per = 1
	}
	return (pixels + per - 1) / per
}

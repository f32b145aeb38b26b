package config

import (
	"os"
	"path/filepath"
	"strings"
)

// UserConfigPath returns the per-user config file location.
// Preference order:
//  1. $XDG_CONFIG_HOME/yui/config.yaml
//  2. ~/.config/yui/config.yaml
func UserConfigPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "yui", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "yui", "config.yaml")
}

// ExpandPath expands a leading ~ and makes the path absolute when possible.
func ExpandPath(path string) string {
	path = expandHomeDir(path)
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

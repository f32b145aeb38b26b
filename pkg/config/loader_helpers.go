package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadAndMerge loads a YAML file and merges it into the config.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if strings.TrimSpace(override.Backend.Preferred) != "" {
		base.Backend.Preferred = override.Backend.Preferred
	}
	if boolFieldSet(raw, "backend", "fullscreen") {
		base.Backend.Fullscreen = override.Backend.Fullscreen
	}

	if override.TextMode.ResizeDebounce != 0 {
		base.TextMode.ResizeDebounce = override.TextMode.ResizeDebounce
	}
	if override.TextMode.RedrawInterval != 0 {
		base.TextMode.RedrawInterval = override.TextMode.RedrawInterval
	}
	if override.TextMode.PollInterval != 0 {
		base.TextMode.PollInterval = override.TextMode.PollInterval
	}
	if override.TextMode.PixelsPerColumn != 0 {
		base.TextMode.PixelsPerColumn = override.TextMode.PixelsPerColumn
	}
	if override.TextMode.PixelsPerRow != 0 {
		base.TextMode.PixelsPerRow = override.TextMode.PixelsPerRow
	}

	if boolFieldSet(raw, "input", "strict_date_time") {
		base.Input.StrictDateTime = override.Input.StrictDateTime
	}

	if override.Application.ProductName != "" {
		base.Application.ProductName = override.Application.ProductName
	}
	if override.Application.IconBasePath != "" {
		base.Application.IconBasePath = expandHomeDir(override.Application.IconBasePath)
	}
	if override.Application.LocalesDir != "" {
		base.Application.LocalesDir = expandHomeDir(override.Application.LocalesDir)
	}

	if override.Logging.Dir != "" {
		base.Logging.Dir = expandHomeDir(override.Logging.Dir)
	}
	if override.Logging.Level != "" {
		base.Logging.Level = strings.ToLower(override.Logging.Level)
	}

	if boolFieldSet(raw, "remote", "enabled") {
		base.Remote.Enabled = override.Remote.Enabled
	}
	if override.Remote.Listen != "" {
		base.Remote.Listen = override.Remote.Listen
	}
}

func boolFieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}

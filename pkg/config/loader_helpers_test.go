package config

import "testing"

func TestMergeConfigsPreservesBooleanDefaults(t *testing.T) {
	base := DefaultConfig()
	base.Remote.Enabled = true
	override := &Config{
		Backend: BackendConfig{Preferred: "qt"},
	}
	raw := map[string]any{
		"backend": map[string]any{
			"preferred": "qt",
		},
	}

	mergeConfigs(base, override, raw)

	if !base.Remote.Enabled {
		t.Fatalf("remote enabled flag should remain true when not overridden")
	}
	if base.Backend.Preferred != "qt" {
		t.Fatalf("expected preferred backend to be overridden")
	}
}

func TestMergeConfigsRespectsBooleanOverrides(t *testing.T) {
	base := DefaultConfig()
	base.Input.StrictDateTime = true
	override := &Config{}
	raw := map[string]any{
		"input": map[string]any{
			"strict_date_time": false,
		},
	}

	mergeConfigs(base, override, raw)

	if base.Input.StrictDateTime {
		t.Fatalf("explicit false should override strict_date_time")
	}
}

func TestBoolFieldSet(t *testing.T) {
	raw := map[string]any{
		"remote": map[string]any{"enabled": true},
		"input":  "scalar",
	}
	if !boolFieldSet(raw, "remote", "enabled") {
		t.Error("remote.enabled should be detected")
	}
	if boolFieldSet(raw, "remote", "listen") {
		t.Error("missing key should not be detected")
	}
	if boolFieldSet(raw, "input", "strict_date_time") {
		t.Error("non-map parent should not be detected")
	}
	if boolFieldSet(nil, "remote") {
		t.Error("nil map should not be detected")
	}
}

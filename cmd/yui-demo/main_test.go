package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/odvcencio/yui/pkg/config"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"--gtk", "--fullscreen", "--locales-dir", "/tmp/loc", "menu"})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.backend != config.BackendGTK || !opts.fullscreen || opts.localesDir != "/tmp/loc" || opts.scenario != "menu" {
		t.Fatalf("unexpected options %+v", opts)
	}

	opts, err = parseOptions([]string{"--locales-dir=/x", "--config=/etc/yui.yaml"})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.localesDir != "/x" || opts.configPath != "/etc/yui.yaml" || opts.scenario != "hello" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestParseOptionsRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"conflicting backends", []string{"--qt", "--ncurses"}, "conflicts"},
		{"missing locales path", []string{"--locales-dir"}, "requires a path"},
		{"unknown flag", []string{"--bogus"}, "unknown option"},
		{"unknown scenario", []string{"nope"}, "unknown scenario"},
		{"two scenarios", []string{"hello", "menu"}, "at most one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRepeatedBackendFlagIsAccepted(t *testing.T) {
	opts, err := parseOptions([]string{"--qt", "--qt"})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.backend != config.BackendQt {
		t.Fatalf("backend = %q", opts.backend)
	}
}

func TestOptionsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Backend.Preferred = config.BackendQt
	opts := &options{backend: config.BackendNCurses, fullscreen: true, localesDir: "/l"}
	opts.apply(cfg)
	if cfg.Backend.Preferred != config.BackendNCurses || !cfg.Backend.Fullscreen || cfg.Application.LocalesDir != "/l" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestRunVersionAndUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--version"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("--version exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "yui-demo "+version) {
		t.Fatalf("unexpected version output %q", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"--ncurses", "--gtk"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("conflicting flags exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("usage not printed: %q", stderr.String())
	}
}

func TestExitCodeForError(t *testing.T) {
	if got := exitCodeForError(nil); got != exitOK {
		t.Fatalf("nil error exit code = %d", got)
	}
	if got := exitCodeForError(withExitCode(context.Canceled, exitInit)); got != exitInit {
		t.Fatalf("wrapped exit code = %d", got)
	}
	if got := exitCodeForError(context.Canceled); got != exitFailure {
		t.Fatalf("plain error exit code = %d", got)
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name   string
		script []yuitest.Action
	}{
		{name: "hello", script: []yuitest.Action{yuitest.Press("OK")}},
		{name: "widgets", script: []yuitest.Action{
			yuitest.EnterText("Name", "Ada"),
			yuitest.Toggle("Subscribe"),
			yuitest.Press("Apply"),
			yuitest.Press("Quit"),
		}},
		{name: "tabs", script: []yuitest.Action{
			yuitest.SelectTab("Notes"),
			yuitest.SelectTab("About"),
			yuitest.Press("Close"),
		}},
		{name: "progress", script: []yuitest.Action{yuitest.Press("Cancel")}},
		{name: "tree", script: []yuitest.Action{
			yuitest.SelectItem("Files", "hosts"),
			yuitest.Press("Close"),
		}},
		{name: "menu", script: []yuitest.Action{
			yuitest.ActivateMenu("View/Wrap lines"),
			yuitest.ActivateMenu("Help/About"),
			yuitest.Press("OK"),
			yuitest.ActivateMenu("File/Quit"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, be := yuitest.Install(t, yuitest.WithScript(tt.script...))
			if err := runScenario(context.Background(), ui, tt.name); err != nil {
				t.Fatalf("scenario %s: %v", tt.name, err)
			}
			if be.Remaining() != 0 {
				t.Fatalf("%d scripted actions left unplayed", be.Remaining())
			}
			if ui.HasDialogs() {
				t.Fatalf("scenario %s left dialogs open", tt.name)
			}
		})
	}
}

func TestScenarioEndsOnCancel(t *testing.T) {
	for _, name := range scenarioNames() {
		t.Run(name, func(t *testing.T) {
			ui, _ := yuitest.Install(t)
			if err := runScenario(context.Background(), ui, name); err != nil {
				t.Fatalf("scenario %s: %v", name, err)
			}
		})
	}
}

func TestSetupTracingWritesSpans(t *testing.T) {
	shutdown, err := setupTracing("headless")
	if err != nil {
		t.Fatalf("setupTracing without env: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}

	path := filepath.Join(t.TempDir(), "spans.json")
	t.Setenv(traceFileEnv, path)
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	shutdown, err = setupTracing("headless")
	if err != nil {
		t.Fatalf("setupTracing: %v", err)
	}
	ui, _ := yuitest.Install(t, yuitest.WithScript(yuitest.Press("OK")))
	if err := runScenario(context.Background(), ui, "hello"); err != nil {
		t.Fatalf("hello: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spans: %v", err)
	}
	if !strings.Contains(string(data), "yui.WaitForEvent") {
		t.Fatalf("span not exported: %q", data)
	}
}

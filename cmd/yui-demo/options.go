package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/odvcencio/yui/pkg/config"
)

type options struct {
	backend     string
	fullscreen  bool
	localesDir  string
	configPath  string
	scenario    string
	showVersion bool
	showHelp    bool
}

const usageText = `Usage: yui-demo [options] [scenario]

Options:
  --qt | --gtk | --ncurses   preselect the UI backend (mutually exclusive)
  --fullscreen               open main dialogs fullscreen
  --locales-dir <path>       directory holding message catalogs
  --config, -c <path>        read configuration from path
  --version                  print the version and exit
  --help, -h                 show this help

Scenarios: %s (default: hello)
`

func usage() string {
	return fmt.Sprintf(usageText, strings.Join(scenarioNames(), ", "))
}

func parseOptions(raw []string) (*options, error) {
	opts := &options{scenario: "hello"}
	var nextLocales, nextConfig bool
	var positional []string

	setBackend := func(name string) error {
		if opts.backend != "" && opts.backend != name {
			return fmt.Errorf("--%s conflicts with --%s", name, opts.backend)
		}
		opts.backend = name
		return nil
	}

	for _, arg := range raw {
		if nextLocales {
			opts.localesDir = arg
			nextLocales = false
			continue
		}
		if nextConfig {
			opts.configPath = arg
			nextConfig = false
			continue
		}

		switch arg {
		case "--qt":
			if err := setBackend(config.BackendQt); err != nil {
				return nil, err
			}
		case "--gtk":
			if err := setBackend(config.BackendGTK); err != nil {
				return nil, err
			}
		case "--ncurses":
			if err := setBackend(config.BackendNCurses); err != nil {
				return nil, err
			}
		case "--fullscreen":
			opts.fullscreen = true
		case "--locales-dir":
			nextLocales = true
		case "--config", "-c":
			nextConfig = true
		case "--version":
			opts.showVersion = true
		case "--help", "-h":
			opts.showHelp = true
		default:
			switch {
			case strings.HasPrefix(arg, "--locales-dir="):
				opts.localesDir = strings.TrimPrefix(arg, "--locales-dir=")
			case strings.HasPrefix(arg, "--config="):
				opts.configPath = strings.TrimPrefix(arg, "--config=")
			case strings.HasPrefix(arg, "-"):
				return nil, fmt.Errorf("unknown option %q", arg)
			default:
				positional = append(positional, arg)
			}
		}
	}
	if nextLocales {
		return nil, fmt.Errorf("--locales-dir requires a path")
	}
	if nextConfig {
		return nil, fmt.Errorf("--config requires a path")
	}
	if len(positional) > 1 {
		return nil, fmt.Errorf("expected at most one scenario, got %d", len(positional))
	}
	if len(positional) == 1 {
		opts.scenario = strings.ToLower(positional[0])
	}
	if _, ok := scenarios[opts.scenario]; !ok && !opts.showVersion && !opts.showHelp {
		return nil, fmt.Errorf("unknown scenario %q (choose from %s)", opts.scenario, strings.Join(scenarioNames(), ", "))
	}
	return opts, nil
}

// apply layers the command line over cfg; flags win over environment.
func (o *options) apply(cfg *config.Config) {
	if o.backend != "" {
		cfg.Backend.Preferred = o.backend
	}
	if o.fullscreen {
		cfg.Backend.Fullscreen = true
	}
	if o.localesDir != "" {
		cfg.Application.LocalesDir = o.localesDir
	}
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

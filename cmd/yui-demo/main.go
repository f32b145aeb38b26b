// Command yui-demo runs sample dialogs on whichever backend is available.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/odvcencio/yui/pkg/backend/all"
	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/restapi"
	"github.com/odvcencio/yui/pkg/yui"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, usage())
		return exitUsage
	}
	if opts.showHelp {
		fmt.Fprint(stdout, usage())
		return exitOK
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "yui-demo %s (commit %s, built %s)\n", version, commit, buildDate)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return exitCodeForError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui, err := yui.EnsureUI(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeForError(withExitCode(err, exitInit))
	}
	defer yui.Teardown()

	shutdown, err := setupTracing(ui.Backend().Name())
	if err != nil {
		fmt.Fprintf(stderr, "Warning: tracing disabled: %v\n", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = shutdown(flushCtx)
		}()
	}

	if err := runScenario(ctx, ui, opts.scenario); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeForError(err)
	}
	return exitOK
}

func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, withExitCode(err, exitUsage)
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, withExitCode(err, exitUsage)
	}
	return cfg, nil
}

// runScenario starts the remote-control server when configured and runs
// the named scenario until its main dialog closes.
func runScenario(ctx context.Context, ui *yui.UI, name string) error {
	sc, ok := scenarios[name]
	if !ok {
		return withExitCode(yerrors.New(yerrors.ErrCodeInvalidInput, "unknown scenario").WithContext("scenario", name), exitUsage)
	}
	if cfg := ui.Config(); cfg != nil && cfg.Remote.Enabled {
		srv := restapi.New(ui)
		if err := srv.Start(ctx, cfg.Remote.Listen); err != nil {
			return err
		}
		ui.Logger().Info(logging.CategoryRemote, "enabled", "remote control listening", map[string]any{"addr": srv.Addr()})
	}
	ui.Logger().Info(logging.CategoryApplication, "scenario", name, map[string]any{"backend": ui.Backend().Name()})
	return sc(ctx, ui)
}

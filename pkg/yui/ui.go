package yui

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
)

// UI is the process-wide toolkit instance: the selected backend, the
// open-dialog stack and the application settings. Only the goroutine that
// created it may touch widgets; other goroutines use Invoke.
type UI struct {
	backend  Backend
	cfg      *config.Config
	logger   *logging.Logger
	dialogs  []*Dialog
	app      *Application
	factory  *Factory
	optional *OptionalWidgetFactory

	invokeMu sync.Mutex
	invokes  []func()
	wake     chan struct{}
}

var (
	singletonMu sync.Mutex
	singleton   *UI
)

// EnsureUI returns the UI singleton, creating it on first use. The backend
// is chosen by SelectBackend from cfg's preferred backend (which carries
// YUI_BACKEND) and the registered backends. A nil cfg loads the default
// configuration.
func EnsureUI(cfg *config.Config) (*UI, error) {
	singletonMu.Lock()
	defer singletonMu.Unlock()
	if singleton != nil {
		return singleton, nil
	}
	if cfg == nil {
		cfg = loadConfig()
	}
	reg, err := SelectBackend(cfg.Backend.Preferred, Registrations())
	if err != nil {
		return nil, err
	}
	ui, err := newUI(cfg, reg.New)
	if err != nil {
		return nil, err
	}
	singleton = ui
	return ui, nil
}

// CurrentUI returns the singleton, creating it with the default
// configuration if needed.
func CurrentUI() (*UI, error) { return EnsureUI(nil) }

// InstallBackend replaces the singleton with a UI driven by the backend
// newBackend builds. Tests and embedders use it to bypass selection.
func InstallBackend(cfg *config.Config, newBackend func(*UI) (Backend, error)) (*UI, error) {
	Teardown()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ui, err := newUI(cfg, newBackend)
	if err != nil {
		return nil, err
	}
	singletonMu.Lock()
	singleton = ui
	singletonMu.Unlock()
	return ui, nil
}

// Teardown destroys all dialogs, closes the backend and forgets the
// singleton. It is safe to call when no UI exists.
func Teardown() {
	singletonMu.Lock()
	ui := singleton
	singleton = nil
	singletonMu.Unlock()
	if ui == nil {
		return
	}
	for len(ui.dialogs) > 0 {
		_ = ui.dialogs[len(ui.dialogs)-1].Destroy()
	}
	if err := ui.backend.Close(); err != nil {
		ui.logger.Warn(logging.CategoryBackend, "close_failed", err.Error(), nil)
	}
	ui.logger.Info(logging.CategoryApplication, "teardown", "ui torn down", nil)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Warn(logging.CategoryApplication, "config_load_failed", err.Error(), nil)
		cfg = config.DefaultConfig()
		config.ApplyEnvOverrides(cfg)
	}
	return cfg
}

func newUI(cfg *config.Config, newBackend func(*UI) (Backend, error)) (*UI, error) {
	if newBackend == nil {
		return nil, yerrors.New(yerrors.ErrCodeNoBackend, "backend has no constructor")
	}
	ui := &UI{
		cfg:    cfg,
		logger: setupLogger(cfg),
		wake:   make(chan struct{}, 1),
	}
	ui.factory = &Factory{ui: ui}
	ui.optional = &OptionalWidgetFactory{ui: ui}
	ui.app = newApplication(ui)

	be, err := newBackend(ui)
	if err != nil {
		return nil, yerrors.Wrap(err, yerrors.ErrCodeNoBackend, "backend initialization failed")
	}
	ui.backend = be
	ui.logger.SetBackend(be.Name())
	for _, w := range cfg.ValidationWarnings() {
		ui.logger.Warn(logging.CategoryApplication, "config_warning", w, nil)
	}
	ui.logger.Info(logging.CategoryBackend, "selected", "backend selected", map[string]any{"backend": be.Name()})
	return ui, nil
}

func setupLogger(cfg *config.Config) *logging.Logger {
	if cfg.Logging.Dir == "" {
		return logging.Default()
	}
	l, err := logging.NewLogger(config.ExpandPath(cfg.Logging.Dir), ulid.Make().String())
	if err != nil {
		logging.Default().Warn(logging.CategoryApplication, "log_open_failed", err.Error(), nil)
		return logging.Default()
	}
	l.SetMinLevel(logging.ParseLevel(cfg.Logging.Level))
	logging.SetDefault(l)
	return l
}

// Backend returns the selected backend.
func (u *UI) Backend() Backend { return u.backend }

// Config returns the configuration the UI was created with.
func (u *UI) Config() *config.Config { return u.cfg }

// Logger returns the UI logger.
func (u *UI) Logger() *logging.Logger { return u.logger }

// Factory returns the widget factory.
func (u *UI) Factory() *Factory { return u.factory }

// OptionalFactory returns the factory for widgets a backend may omit.
func (u *UI) OptionalFactory() *OptionalWidgetFactory { return u.optional }

// Application returns the application façade.
func (u *UI) Application() *Application { return u.app }

// Dialogs returns the open-dialog stack, bottom first.
func (u *UI) Dialogs() []*Dialog {
	out := make([]*Dialog, len(u.dialogs))
	copy(out, u.dialogs)
	return out
}

// CurrentDialog returns the top of the dialog stack, or a no-dialog error.
func (u *UI) CurrentDialog() (*Dialog, error) {
	if len(u.dialogs) == 0 {
		return nil, yerrors.New(yerrors.ErrCodeNoDialog, "no dialog is open")
	}
	return u.dialogs[len(u.dialogs)-1], nil
}

// TopmostDialog is CurrentDialog.
func (u *UI) TopmostDialog() (*Dialog, error) { return u.CurrentDialog() }

// HasDialogs reports whether any dialog exists.
func (u *UI) HasDialogs() bool { return len(u.dialogs) > 0 }

func (u *UI) pushDialog(d *Dialog) {
	u.dialogs = append(u.dialogs, d)
	metricDialogsOpen.Set(float64(len(u.dialogs)))
}

func (u *UI) removeDialog(d *Dialog) {
	for i := len(u.dialogs) - 1; i >= 0; i-- {
		if u.dialogs[i] == d {
			u.dialogs = append(u.dialogs[:i], u.dialogs[i+1:]...)
			break
		}
	}
	metricDialogsOpen.Set(float64(len(u.dialogs)))
}

// Post queues fn to run on the UI goroutine during the next pump cycle.
func (u *UI) Post(fn func()) {
	u.invokeMu.Lock()
	u.invokes = append(u.invokes, fn)
	u.invokeMu.Unlock()
	select {
	case u.wake <- struct{}{}:
	default:
	}
}

// Invoke runs fn on the UI goroutine and waits for it to finish. The work
// only runs while some dialog is pumping events. If ctx ends first Invoke
// returns ctx.Err() and fn may still run later.
func (u *UI) Invoke(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	u.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunPending runs queued work and returns how many functions ran. Pumps
// call it on the UI goroutine.
func (u *UI) RunPending() int {
	u.invokeMu.Lock()
	fns := u.invokes
	u.invokes = nil
	u.invokeMu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// HasPending reports whether work is queued.
func (u *UI) HasPending() bool {
	u.invokeMu.Lock()
	defer u.invokeMu.Unlock()
	return len(u.invokes) > 0
}

// Wakeup is signalled whenever work is queued.
func (u *UI) Wakeup() <-chan struct{} { return u.wake }

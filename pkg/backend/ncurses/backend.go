// Package ncurses is the text-mode backend. It draws dialogs into a
// character grid on a tcell terminal and runs its own input loop: key
// dispatch, focus cycling, resize debouncing and rate-limited redraws.
package ncurses

import (
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	xterm "golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/ui/runtime"
	"github.com/odvcencio/yui/pkg/ui/term"
	"github.com/odvcencio/yui/pkg/ui/term/tcell"
	"github.com/odvcencio/yui/pkg/ui/terminal"
	"github.com/odvcencio/yui/pkg/ui/theme"
	"github.com/odvcencio/yui/pkg/yui"
)

// Name is the registered backend name.
const Name = config.BackendNCurses

const eventQueueSize = 256

func init() {
	yui.RegisterBackend(yui.Registration{
		Name:     Name,
		Priority: 30,
		Probe:    Available,
		New: func(ui *yui.UI) (yui.Backend, error) {
			return New(ui)
		},
	})
}

// Available reports whether stdin and stdout are a usable terminal.
func Available() bool {
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return false
	}
	return xterm.IsTerminal(int(os.Stdin.Fd())) && xterm.IsTerminal(int(os.Stdout.Fd()))
}

// Option configures a Backend.
type Option func(*Backend)

// WithProfile overrides colour profile detection.
func WithProfile(p termenv.Profile) Option {
	return func(b *Backend) { b.profile = p }
}

// Backend implements yui.Backend on a character terminal. Everything except
// the input reader goroutine runs on the UI goroutine.
type Backend struct {
	ui      *yui.UI
	cfg     *config.Config
	log     *logging.Logger
	term    term.Terminal
	profile termenv.Profile
	desktop *desktop

	events    chan terminal.Event
	done      chan struct{}
	closeOnce sync.Once

	windows []*window
	buf     *runtime.Buffer
	width   int
	height  int

	dirty       bool
	layoutDirty bool
	limiter     *rate.Limiter
	resizeAt    time.Time
	resizeW     int
	resizeH     int
	relayouts   int
	frames      int

	menu   *menuState
	themes map[theme.Mode]*theme.Theme
}

// window is the per-dialog state kept in Dialog.BackendData.
type window struct {
	d     *yui.Dialog
	rect  runtime.Rect
	inner runtime.Rect
	theme *theme.Theme
	hits  *runtime.HitGrid[yui.Widget]
}

// New opens the process terminal and builds a backend on it.
func New(ui *yui.UI, opts ...Option) (*Backend, error) {
	t, err := tcell.New()
	if err != nil {
		return nil, yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "opening terminal")
	}
	return NewWithTerminal(ui, t, opts...)
}

// NewWithTerminal builds a backend drawing on t. Tests pass a simulated
// terminal.
func NewWithTerminal(ui *yui.UI, t term.Terminal, opts ...Option) (*Backend, error) {
	if err := t.Init(); err != nil {
		return nil, yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "initializing terminal")
	}
	cfg := ui.Config()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	b := &Backend{
		ui:      ui,
		cfg:     cfg,
		log:     ui.Logger(),
		term:    t,
		profile: theme.DetectProfile(),
		events:  make(chan terminal.Event, eventQueueSize),
		done:    make(chan struct{}),
		limiter: rate.NewLimiter(rate.Every(cfg.TextMode.RedrawInterval), 1),
		themes:  map[theme.Mode]*theme.Theme{},
	}
	if b.log == nil {
		b.log = logging.Default()
	}
	for _, opt := range opts {
		opt(b)
	}
	b.desktop = &desktop{b: b}
	b.width, b.height = t.Size()
	b.buf = runtime.NewBuffer(b.width, b.height)
	t.HideCursor()
	go b.readInput()
	return b, nil
}

// readInput forwards terminal input to the pump until the terminal is
// finalized.
func (b *Backend) readInput() {
	defer close(b.events)
	for {
		ev := b.term.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.done:
			return
		}
	}
}

// Name implements yui.Backend.
func (b *Backend) Name() string { return Name }

// Supports implements yui.Backend. Every widget kind is available in text mode.
func (b *Backend) Supports(yui.WidgetKind) bool { return true }

// Realize implements yui.Backend.
func (b *Backend) Realize(w yui.Widget) (yui.Peer, error) {
	p := &peer{b: b, w: w, link: -1}
	p.resetValue()
	b.layoutDirty = true
	b.dirty = true
	return p, nil
}

// OpenDialog implements yui.Backend.
func (b *Backend) OpenDialog(d *yui.Dialog) error {
	win := &window{
		d:     d,
		theme: b.themeFor(d.ColorMode()),
		hits:  runtime.NewHitGrid[yui.Widget](b.width, b.height),
	}
	d.SetBackendData(win)
	b.windows = append(b.windows, win)
	b.closeMenu()
	b.layoutDirty = true
	b.dirty = true
	return nil
}

// DestroyDialog implements yui.Backend.
func (b *Backend) DestroyDialog(d *yui.Dialog) error {
	for i, win := range b.windows {
		if win.d == d {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			break
		}
	}
	d.SetBackendData(nil)
	b.closeMenu()
	b.layoutDirty = true
	b.dirty = true
	b.redraw(true)
	return nil
}

// Pump implements yui.Backend.
func (b *Backend) Pump() yui.Pump { return b }

// Desktop implements yui.Backend.
func (b *Backend) Desktop() yui.DesktopServices { return b.desktop }

// Close restores the terminal.
func (b *Backend) Close() error {
	b.closeOnce.Do(func() {
		close(b.done)
		b.term.Fini()
	})
	return nil
}

// Relayouts returns how many times the dialogs were laid out.
func (b *Backend) Relayouts() int { return b.relayouts }

// Frames returns how many frames were drawn.
func (b *Backend) Frames() int { return b.frames }

// ScreenSize returns the size the dialogs are laid out for.
func (b *Backend) ScreenSize() (width, height int) { return b.width, b.height }

func (b *Backend) themeFor(mode yui.DialogColorMode) *theme.Theme {
	m := theme.Normal
	switch mode {
	case yui.ColorWarning:
		m = theme.Warning
	case yui.ColorInfo:
		m = theme.Info
	}
	if th, ok := b.themes[m]; ok {
		return th
	}
	th := theme.New(m, b.profile)
	b.themes[m] = th
	return th
}

func windowOf(d *yui.Dialog) *window {
	if d == nil {
		return nil
	}
	win, _ := d.BackendData().(*window)
	return win
}

// top returns the window receiving input.
func (b *Backend) top() *window {
	if len(b.windows) == 0 {
		return nil
	}
	return b.windows[len(b.windows)-1]
}

func (b *Backend) invalidate() { b.dirty = true }

func (b *Backend) relayout() {
	b.layoutDirty = true
	b.dirty = true
}

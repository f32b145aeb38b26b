//go:build gtk

package gtk

import (
	goruntime "runtime"
	"time"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/backend/internal/native"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/yui"
)

// GTK must be driven from the thread that initialized it.
func init() { goruntime.LockOSThread() }

var initialized bool

func available() bool {
	if !native.DisplayAvailable() {
		return false
	}
	if !initialized {
		initialized = gtk.InitCheck()
	}
	return initialized && gtk.GetMajorVersion() == 4
}

func newBackend(ui *yui.UI) (yui.Backend, error) {
	if !available() {
		return nil, yerrors.New(yerrors.ErrCodeNoBackend, "GTK 4 is not available")
	}
	b := &Backend{ui: ui, log: ui.Logger(), ctx: glib.MainContextDefault()}
	if b.log == nil {
		b.log = logging.Default()
	}
	b.desktop = &desktop{b: b}
	return b, nil
}

// Backend implements yui.Backend with GTK 4 widgets.
type Backend struct {
	ui      *yui.UI
	log     *logging.Logger
	ctx     *glib.MainContext
	desktop *desktop
	windows []*window
}

// window is the per-dialog state kept in Dialog.BackendData.
type window struct {
	d   *yui.Dialog
	win *gtk.Window
}

func (b *Backend) Name() string { return Name }

// Supports implements yui.Backend.
func (b *Backend) Supports(kind yui.WidgetKind) bool { return Supports(kind) }

// Realize implements yui.Backend.
func (b *Backend) Realize(w yui.Widget) (yui.Peer, error) {
	if !Supports(w.Kind()) {
		return nil, yerrors.New(yerrors.ErrCodeUnsupportedWidget, "widget kind not supported by GTK").
			WithContext("kind", w.Kind().String())
	}
	if d, ok := w.(*yui.Dialog); ok {
		return b.realizeDialog(d), nil
	}
	p, err := b.newPeer(w)
	if err != nil {
		return nil, err
	}
	if parent, _ := w.Parent().Peer().(*peer); parent != nil && parent.attach != nil {
		dim := native.ParentDim(w)
		stretch := native.Stretch(w, dim) > 0
		if dim == yui.Horizontal {
			p.widget.SetHExpand(stretch)
		} else {
			p.widget.SetVExpand(stretch)
		}
		parent.attach(p.native)
	}
	p.syncAll()
	return p, nil
}

func (b *Backend) realizeDialog(d *yui.Dialog) *peer {
	win := &window{d: d, win: gtk.NewWindow()}
	if d.Type() == yui.PopupDialog {
		win.win.SetModal(true)
		if n := len(b.windows); n > 0 {
			win.win.SetTransientFor(b.windows[n-1].win)
		}
	} else {
		win.win.SetDefaultSize(800, 600)
	}
	win.win.ConnectCloseRequest(func() bool {
		if !d.IsDestroyed() {
			d.PostEvent(yui.NewCancelEvent())
		}
		return true
	})
	d.SetBackendData(win)
	p := &peer{b: b, w: d, native: win.win, widget: gtk.BaseWidget(win.win)}
	p.attach = func(child gtk.Widgetter) { win.win.SetChild(child) }
	p.sync = func(a yui.Aspect) {
		if a == yui.AspectTitle {
			win.win.SetTitle(d.Title())
		}
	}
	p.syncAll()
	return p
}

func windowOf(d *yui.Dialog) *window {
	w, _ := d.BackendData().(*window)
	return w
}

// OpenDialog implements yui.Backend.
func (b *Backend) OpenDialog(d *yui.Dialog) error {
	win := windowOf(d)
	if win == nil {
		return yerrors.New(yerrors.ErrCodeBackendFailure, "dialog was not realized").WithContext("dialog", d.UUID())
	}
	b.windows = append(b.windows, win)
	if d.Type() == yui.MainDialog && b.ui.Config().Backend.Fullscreen {
		win.win.Fullscreen()
	}
	win.win.Present()
	if f := d.Focused(); f != nil {
		if p, _ := f.Peer().(*peer); p != nil {
			p.widget.GrabFocus()
		}
	}
	return nil
}

// DestroyDialog implements yui.Backend.
func (b *Backend) DestroyDialog(d *yui.Dialog) error {
	win := windowOf(d)
	if win == nil {
		return nil
	}
	for i, w := range b.windows {
		if w == win {
			b.windows = append(b.windows[:i], b.windows[i+1:]...)
			break
		}
	}
	win.win.Destroy()
	d.SetBackendData(nil)
	return nil
}

// Pump implements yui.Backend.
func (b *Backend) Pump() yui.Pump { return b }

// PumpUntilEventOrTimeout implements yui.Pump.
func (b *Backend) PumpUntilEventOrTimeout(d *yui.Dialog, deadline time.Time) error {
	return native.Pump(b.ui, d, deadline, func() bool {
		return b.ctx.Iteration(false)
	})
}

// Desktop implements yui.Backend.
func (b *Backend) Desktop() yui.DesktopServices { return b.desktop }

// Close implements yui.Backend.
func (b *Backend) Close() error {
	for _, w := range b.windows {
		w.win.Destroy()
	}
	b.windows = nil
	for b.ctx.Iteration(false) {
	}
	return nil
}

//go:build qt

package qt

import (
	"os"
	goruntime "runtime"
	"time"

	"github.com/mappu/miqt/qt"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/backend/internal/native"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/yui"
)

// Qt requires every call to come from the thread that created the
// application object.
func init() { goruntime.LockOSThread() }

func available() bool { return native.DisplayAvailable() }

var app *qt.QApplication

func newBackend(ui *yui.UI) (yui.Backend, error) {
	if !available() {
		return nil, yerrors.New(yerrors.ErrCodeNoBackend, "no display for Qt")
	}
	if app == nil {
		app = qt.NewQApplication(os.Args)
	}
	b := &Backend{ui: ui, log: ui.Logger()}
	if b.log == nil {
		b.log = logging.Default()
	}
	b.desktop = &desktop{b: b}
	return b, nil
}

// Backend implements yui.Backend with Qt widgets.
type Backend struct {
	ui      *yui.UI
	log     *logging.Logger
	desktop *desktop
	windows []*window
}

// window is the per-dialog state kept in Dialog.BackendData.
type window struct {
	d      *yui.Dialog
	widget *qt.QWidget
	layout *qt.QVBoxLayout
	dialog *qt.QDialog
}

func (b *Backend) Name() string { return Name }

// Supports implements yui.Backend. Qt has every widget kind.
func (b *Backend) Supports(yui.WidgetKind) bool { return true }

// Realize implements yui.Backend.
func (b *Backend) Realize(w yui.Widget) (yui.Peer, error) {
	if d, ok := w.(*yui.Dialog); ok {
		return b.realizeDialog(d), nil
	}
	p, err := b.newPeer(w)
	if err != nil {
		return nil, err
	}
	b.attach(p)
	p.syncAll()
	return p, nil
}

func (b *Backend) realizeDialog(d *yui.Dialog) *peer {
	win := &window{d: d}
	if d.Type() == yui.PopupDialog {
		win.dialog = qt.NewQDialog2()
		win.dialog.SetModal(true)
		win.widget = win.dialog.QWidget
	} else {
		win.widget = qt.NewQWidget2()
	}
	win.layout = qt.NewQVBoxLayout2()
	win.widget.SetLayout(win.layout.QLayout)
	win.widget.OnCloseEvent(func(super func(ev *qt.QCloseEvent), ev *qt.QCloseEvent) {
		ev.Ignore()
		if !d.IsDestroyed() {
			d.PostEvent(yui.NewCancelEvent())
		}
	})
	d.SetBackendData(win)
	p := &peer{b: b, w: d, widget: win.widget, box: win.layout.QBoxLayout}
	p.sync = func(a yui.Aspect) {
		if a == yui.AspectTitle {
			win.widget.SetWindowTitle(d.Title())
		}
	}
	p.syncAll()
	return p
}

// attach inserts p's native widget into its parent's container.
func (b *Backend) attach(p *peer) {
	parent, _ := p.w.Parent().Peer().(*peer)
	if parent == nil || p.widget == nil {
		return
	}
	switch {
	case parent.splitter != nil:
		parent.splitter.AddWidget(p.widget)
		parent.splitter.SetStretchFactor(len(parent.w.Children())-1, native.Stretch(p.w, native.ParentDim(p.w)))
	case parent.box != nil:
		parent.box.AddWidget2(p.widget, native.Stretch(p.w, native.ParentDim(p.w)))
	}
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
	if win.dialog == nil && b.ui.Config().Backend.Fullscreen {
		win.widget.ShowFullScreen()
	} else {
		win.widget.Show()
	}
	if f := d.Focused(); f != nil {
		if p, _ := f.Peer().(*peer); p != nil && p.widget != nil {
			p.widget.SetFocus()
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
	win.widget.Hide()
	win.widget.DeleteLater()
	d.SetBackendData(nil)
	return nil
}

// Pump implements yui.Backend.
func (b *Backend) Pump() yui.Pump { return b }

// PumpUntilEventOrTimeout implements yui.Pump.
func (b *Backend) PumpUntilEventOrTimeout(d *yui.Dialog, deadline time.Time) error {
	return native.Pump(b.ui, d, deadline, func() bool {
		qt.QCoreApplication_ProcessEvents()
		return false
	})
}

// Desktop implements yui.Backend.
func (b *Backend) Desktop() yui.DesktopServices { return b.desktop }

// Close implements yui.Backend.
func (b *Backend) Close() error {
	for _, w := range b.windows {
		w.widget.Hide()
		w.widget.DeleteLater()
	}
	b.windows = nil
	qt.QCoreApplication_ProcessEvents()
	return nil
}

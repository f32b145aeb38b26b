// Package yuitest provides a headless in-memory backend for driving dialogs
// from tests and scripts. It registers itself as "headless" and is only
// selected by name.
package yuitest

import (
	"fmt"
	"testing"
	"time"

	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

// Name is the registered backend name.
const Name = "headless"

func init() {
	yui.RegisterBackend(yui.Registration{
		Name:     Name,
		Priority: 100,
		Manual:   true,
		New: func(ui *yui.UI) (yui.Backend, error) {
			return New(ui), nil
		},
	})
}

// Action is one scripted user interaction, run by the pump on the UI
// goroutine.
type Action func(d *yui.Dialog) error

// SyncRecord is one peer update.
type SyncRecord struct {
	Widget yui.Widget
	Aspect yui.Aspect
}

// Backend keeps realized widgets in memory and replays scripted actions
// from its pump: each pump cycle runs the next action. When the script is
// empty a wait without timeout ends with a cancel event unless the
// backend was built with Blocking.
type Backend struct {
	ui       *yui.UI
	kinds    yui.KindSet
	failSync bool
	blocking bool
	script   []Action
	desktop  yui.DesktopServices

	syncs     []SyncRecord
	realized  int
	destroyed int
	opened    []*yui.Dialog
	closed    bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithoutKinds makes the backend reject the listed widget kinds, the way a
// partial toolkit does.
func WithoutKinds(kinds ...yui.WidgetKind) Option {
	return func(b *Backend) { b.kinds = yui.AllKindsExcept(kinds...) }
}

// FailSync makes every peer update fail.
func FailSync() Option {
	return func(b *Backend) { b.failSync = true }
}

// Blocking makes the pump wait for posted events or queued work once the
// script runs out instead of cancelling.
func Blocking() Option {
	return func(b *Backend) { b.blocking = true }
}

// WithScript queues actions.
func WithScript(actions ...Action) Option {
	return func(b *Backend) { b.script = append(b.script, actions...) }
}

// WithDesktop replaces the built-in Desktop.
func WithDesktop(ds yui.DesktopServices) Option {
	return func(b *Backend) { b.desktop = ds }
}

// New builds a headless backend for ui.
func New(ui *yui.UI, opts ...Option) *Backend {
	b := &Backend{
		ui:      ui,
		kinds:   yui.AllKindsExcept(),
		desktop: &Desktop{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Install replaces the UI singleton with one driven by a headless backend
// and tears it down when the test ends.
func Install(tb testing.TB, opts ...Option) (*yui.UI, *Backend) {
	return InstallWithConfig(tb, nil, opts...)
}

// InstallWithConfig is Install with an explicit configuration.
func InstallWithConfig(tb testing.TB, cfg *config.Config, opts ...Option) (*yui.UI, *Backend) {
	tb.Helper()
	var be *Backend
	ui, err := yui.InstallBackend(cfg, func(ui *yui.UI) (yui.Backend, error) {
		be = New(ui, opts...)
		return be, nil
	})
	if err != nil {
		tb.Fatalf("install headless backend: %v", err)
	}
	tb.Cleanup(yui.Teardown)
	return ui, be
}

// Name implements yui.Backend.
func (b *Backend) Name() string { return Name }

// Supports implements yui.Backend.
func (b *Backend) Supports(kind yui.WidgetKind) bool { return b.kinds.Has(kind) }

// Realize implements yui.Backend.
func (b *Backend) Realize(w yui.Widget) (yui.Peer, error) {
	if !b.Supports(w.Kind()) {
		return nil, yerrors.New(yerrors.ErrCodeUnsupportedWidget, "headless backend has no "+w.Kind().String())
	}
	b.realized++
	return &peer{b: b, w: w}, nil
}

// OpenDialog implements yui.Backend.
func (b *Backend) OpenDialog(d *yui.Dialog) error {
	b.opened = append(b.opened, d)
	return nil
}

// DestroyDialog implements yui.Backend.
func (b *Backend) DestroyDialog(d *yui.Dialog) error {
	for i, o := range b.opened {
		if o == d {
			b.opened = append(b.opened[:i], b.opened[i+1:]...)
			break
		}
	}
	return nil
}

// Pump implements yui.Backend.
func (b *Backend) Pump() yui.Pump { return b }

// Desktop implements yui.Backend.
func (b *Backend) Desktop() yui.DesktopServices { return b.desktop }

// Close implements yui.Backend.
func (b *Backend) Close() error {
	b.closed = true
	return nil
}

// PumpUntilEventOrTimeout implements yui.Pump.
func (b *Backend) PumpUntilEventOrTimeout(d *yui.Dialog, deadline time.Time) error {
	if len(b.script) > 0 {
		act := b.script[0]
		b.script = b.script[1:]
		if err := act(d); err != nil {
			return fmt.Errorf("scripted action: %w", err)
		}
		return nil
	}
	if deadline.IsZero() && !b.blocking {
		if !d.HasPendingEvent() && !b.ui.HasPending() {
			d.PostEvent(yui.NewCancelEvent())
		}
		return nil
	}
	d.WaitPosted(deadline)
	return nil
}

// Push appends actions to the script.
func (b *Backend) Push(actions ...Action) { b.script = append(b.script, actions...) }

// Remaining returns the number of unplayed actions.
func (b *Backend) Remaining() int { return len(b.script) }

// Syncs returns every recorded peer update.
func (b *Backend) Syncs() []SyncRecord {
	out := make([]SyncRecord, len(b.syncs))
	copy(out, b.syncs)
	return out
}

// SyncsFor returns the aspects synced for w, in order.
func (b *Backend) SyncsFor(w yui.Widget) []yui.Aspect {
	var out []yui.Aspect
	for _, s := range b.syncs {
		if s.Widget == w {
			out = append(out, s.Aspect)
		}
	}
	return out
}

// ResetSyncs forgets recorded updates.
func (b *Backend) ResetSyncs() { b.syncs = nil }

// Realized returns how many peers were created.
func (b *Backend) Realized() int { return b.realized }

// DestroyedPeers returns how many peers were destroyed.
func (b *Backend) DestroyedPeers() int { return b.destroyed }

// OpenDialogs returns the dialogs shown and not yet destroyed.
func (b *Backend) OpenDialogs() []*yui.Dialog {
	out := make([]*yui.Dialog, len(b.opened))
	copy(out, b.opened)
	return out
}

// Closed reports whether Close ran.
func (b *Backend) Closed() bool { return b.closed }

type peer struct {
	b *Backend
	w yui.Widget
}

func (p *peer) Sync(a yui.Aspect) error {
	if p.b.failSync {
		return fmt.Errorf("headless: sync %s on %s failed", a, p.w.Kind())
	}
	p.b.syncs = append(p.b.syncs, SyncRecord{Widget: p.w, Aspect: a})
	return nil
}

func (p *peer) Destroy() { p.b.destroyed++ }

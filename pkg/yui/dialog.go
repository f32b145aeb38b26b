package yui

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
)

const tracerName = "github.com/odvcencio/yui/pkg/yui"

// Dialog is a top-level window holding a single root widget. It is the
// unit of event pumping: each dialog has its own one-slot mailbox.
type Dialog struct {
	Base
	uid        uuid.UUID
	dialogType DialogType
	colorMode  DialogColorMode
	title      string

	opened  bool
	closed  bool
	pumping bool

	mailbox       *mailbox
	defaultButton *PushButton
	focused       Widget
	backendData   any
}

func newDialog(ui *UI, typ DialogType, color DialogColorMode) *Dialog {
	d := &Dialog{
		uid:        uuid.New(),
		dialogType: typ,
		colorMode:  color,
		mailbox:    newMailbox(),
	}
	d.init(d, ui, KindDialog, 1)
	return d
}

// UUID returns the dialog's unique identifier.
func (d *Dialog) UUID() string { return d.uid.String() }

// Type returns main or popup.
func (d *Dialog) Type() DialogType { return d.dialogType }

// ColorMode returns the colour scheme.
func (d *Dialog) ColorMode() DialogColorMode { return d.colorMode }

// Stretchable is always true; a dialog fills its window.
func (d *Dialog) Stretchable(Dimension) bool { return true }

// Title returns the window title.
func (d *Dialog) Title() string { return d.title }

// SetTitle changes the window title.
func (d *Dialog) SetTitle(title string) {
	d.title = title
	d.sync(AspectTitle)
}

// Root returns the single child, or nil.
func (d *Dialog) Root() Widget { return d.FirstChild() }

// IsOpen reports whether Open has run.
func (d *Dialog) IsOpen() bool { return d.opened && !d.destroyed }

// IsClosed reports whether a cancel event has been delivered.
func (d *Dialog) IsClosed() bool { return d.closed }

// BackendData returns per-dialog state stored by the backend.
func (d *Dialog) BackendData() any { return d.backendData }

// SetBackendData stores per-dialog backend state.
func (d *Dialog) SetBackendData(v any) { d.backendData = v }

// Open realizes the widget tree and shows the window. It does not block
// and does not start the event loop.
func (d *Dialog) Open() error {
	if d.destroyed {
		return yerrors.New(yerrors.ErrCodeNoDialog, "dialog already destroyed").WithContext("dialog", d.UUID())
	}
	if d.opened {
		return nil
	}
	d.realizeTree(d)
	if err := d.ui.backend.OpenDialog(d); err != nil {
		return yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "opening dialog").
			WithContext("backend", d.ui.backend.Name())
	}
	d.opened = true
	if d.focused == nil {
		if fs := d.FocusableWidgets(); len(fs) > 0 {
			d.focused = fs[0]
		}
	}
	d.logger().Info(logging.CategoryDialog, "open", "dialog opened", map[string]any{
		"dialog": d.UUID(),
		"type":   d.dialogType.String(),
	})
	return nil
}

// realizeTree creates backend peers for w and its descendants. A widget
// the backend fails to realize is logged and skipped.
func (d *Dialog) realizeTree(w Widget) {
	be := d.ui.backend
	Walk(w, func(n Widget) bool {
		b := n.base()
		if b.destroyed {
			return false
		}
		if b.peer != nil {
			return true
		}
		peer, err := be.Realize(n)
		if err != nil {
			d.logger().Debug(logging.CategoryBackend, "realize_failed", err.Error(), map[string]any{
				"widget": n.Kind().String(),
			})
			return true
		}
		b.peer = peer
		return true
	})
}

// PostEvent stores ev in the mailbox, replacing any undelivered event.
// Backends and widgets call it; applications rarely need to.
func (d *Dialog) PostEvent(ev *Event) {
	if d.destroyed || ev == nil {
		return
	}
	metricEventsPosted.WithLabelValues(ev.Type.String()).Inc()
	if replaced := d.mailbox.post(ev); replaced {
		metricEventsReplaced.Inc()
		d.logger().Debug(logging.CategoryEvent, "replaced", "pending event overwritten", map[string]any{
			"dialog": d.UUID(),
			"event":  ev.String(),
		})
	}
}

// HasPendingEvent reports whether an event waits in the mailbox.
func (d *Dialog) HasPendingEvent() bool { return d.mailbox.len() > 0 }

// PendingEvents returns 0 or 1.
func (d *Dialog) PendingEvents() int { return d.mailbox.len() }

// WaitForEvent blocks until an event is posted to this dialog or, when
// timeoutMillis > 0, until the timeout elapses. It opens the dialog first if
// needed. A closed dialog returns a cancel event immediately.
func (d *Dialog) WaitForEvent(timeoutMillis int) (*Event, error) {
	return d.WaitForEventContext(context.Background(), timeoutMillis)
}

// WaitForEventContext is WaitForEvent with cancellation: when ctx is done
// the wait ends with a cancel event, as a process interrupt would.
func (d *Dialog) WaitForEventContext(ctx context.Context, timeoutMillis int) (*Event, error) {
	if d.destroyed {
		return nil, yerrors.New(yerrors.ErrCodeNoDialog, "dialog already destroyed").WithContext("dialog", d.UUID())
	}
	if d.closed {
		return NewCancelEvent(), nil
	}
	if d.pumping {
		return nil, yerrors.New(yerrors.ErrCodePumpReentrant, "event pump reentered").WithContext("dialog", d.UUID())
	}
	if !d.opened {
		if err := d.Open(); err != nil {
			return nil, err
		}
	}

	d.pumping = true
	defer func() { d.pumping = false }()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "yui.WaitForEvent")
	defer span.End()
	span.SetAttributes(
		attribute.String("yui.dialog", d.UUID()),
		attribute.String("yui.backend", d.ui.backend.Name()),
		attribute.Int("yui.timeout_ms", timeoutMillis),
	)

	stop := context.AfterFunc(ctx, func() { d.PostEvent(NewCancelEvent()) })
	defer stop()

	start := time.Now()
	var deadline time.Time
	if timeoutMillis > 0 {
		deadline = start.Add(time.Duration(timeoutMillis) * time.Millisecond)
	}

	pump := d.ui.backend.Pump()
	for {
		d.ui.RunPending()
		if d.destroyed {
			return d.deliver(span, NewCancelEvent(), start), nil
		}
		if ev := d.mailbox.take(); ev != nil {
			return d.deliver(span, ev, start), nil
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return d.deliver(span, NewTimeoutEvent(), start), nil
		}
		if err := pump.PumpUntilEventOrTimeout(d, deadline); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pump failed")
			return nil, yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "event pump").
				WithContext("backend", d.ui.backend.Name())
		}
	}
}

func (d *Dialog) deliver(span trace.Span, ev *Event, start time.Time) *Event {
	if ev.Type == CancelEvent {
		d.closed = true
	}
	metricEventsDelivered.WithLabelValues(ev.Type.String()).Inc()
	metricPumpWait.Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.String("yui.event", ev.Type.String()))
	d.logger().Debug(logging.CategoryEvent, "deliver", ev.String(), map[string]any{
		"dialog": d.UUID(),
		"serial": ev.Serial.String(),
	})
	return ev
}

// WaitPosted blocks until an event is posted, work is queued with
// UI.Invoke, or the deadline passes. A zero deadline never expires. Pumps
// without a native event loop use it to sleep.
func (d *Dialog) WaitPosted(deadline time.Time) bool {
	return d.mailbox.wait(deadline, d.ui.wake)
}

// PollEvent runs one short pump cycle and returns the pending event, or
// nil when there is none.
func (d *Dialog) PollEvent() (*Event, error) {
	if d.destroyed {
		return nil, yerrors.New(yerrors.ErrCodeNoDialog, "dialog already destroyed")
	}
	if d.closed {
		return NewCancelEvent(), nil
	}
	if d.pumping {
		return nil, yerrors.New(yerrors.ErrCodePumpReentrant, "event pump reentered")
	}
	if !d.opened {
		if err := d.Open(); err != nil {
			return nil, err
		}
	}
	d.pumping = true
	defer func() { d.pumping = false }()

	d.ui.RunPending()
	if !d.HasPendingEvent() {
		if err := d.ui.backend.Pump().PumpUntilEventOrTimeout(d, time.Now().Add(time.Millisecond)); err != nil {
			return nil, yerrors.Wrap(err, yerrors.ErrCodeBackendFailure, "event pump")
		}
	}
	ev := d.mailbox.take()
	if ev != nil && ev.Type == CancelEvent {
		d.closed = true
	}
	return ev, nil
}

// Destroy closes the window, destroys the widget tree and removes the
// dialog from the open-dialog stack.
func (d *Dialog) Destroy() error {
	if d.destroyed {
		return nil
	}
	destroyTree(d)
	if d.opened {
		if e := d.ui.backend.DestroyDialog(d); e != nil {
			d.logger().Debug(logging.CategoryBackend, "destroy_failed", e.Error(), map[string]any{"dialog": d.UUID()})
		}
	}
	d.ui.removeDialog(d)
	d.focused = nil
	d.defaultButton = nil
	d.logger().Info(logging.CategoryDialog, "destroy", "dialog destroyed", map[string]any{"dialog": d.UUID()})
	return nil
}

// forget drops references to a widget that is being destroyed.
func (d *Dialog) forget(w Widget) {
	if d.focused == w {
		d.focused = nil
	}
	if b, ok := w.(*PushButton); ok && d.defaultButton == b {
		d.defaultButton = nil
	}
}

// DefaultButton returns the registered default button, or nil.
func (d *Dialog) DefaultButton() *PushButton { return d.defaultButton }

// SetDefaultButton registers b as the default button, replacing any
// previous one. nil clears it.
func (d *Dialog) SetDefaultButton(b *PushButton) error {
	if b != nil && b.FindDialog() != d {
		return invalidWidget(b, "default button must belong to the dialog")
	}
	if old := d.defaultButton; old != nil && old != b {
		old.isDefault = false
		old.sync(AspectDefault)
	}
	d.defaultButton = b
	if b != nil {
		b.isDefault = true
		b.sync(AspectDefault)
	}
	return nil
}

// ActivateDefault fires the default button for an Enter or Space press on
// the dialog window, unless a text editor has focus.
func (d *Dialog) ActivateDefault() bool {
	if d.defaultButton == nil {
		return false
	}
	if _, editing := d.focused.(TextEditor); editing {
		return false
	}
	return d.defaultButton.Activate()
}

// Focused returns the widget with keyboard focus, or nil.
func (d *Dialog) Focused() Widget { return d.focused }

// SetFocus moves keyboard focus to w.
func (d *Dialog) SetFocus(w Widget) error {
	if w == nil {
		d.focused = nil
		return nil
	}
	if w.FindDialog() != d {
		return invalidWidget(w, "widget does not belong to the dialog")
	}
	if _, ok := w.(Focusable); !ok {
		return invalidWidget(w, "widget cannot take focus")
	}
	d.focused = w
	d.sync(AspectFocus)
	return nil
}

// FocusableWidgets lists visible, enabled, focusable widgets in tree order.
func (d *Dialog) FocusableWidgets() []Widget {
	var out []Widget
	Walk(d, func(w Widget) bool {
		if !w.IsVisible() || !w.EffectivelyEnabled() {
			return false
		}
		if _, ok := w.(Focusable); ok {
			out = append(out, w)
		}
		return true
	})
	return out
}

// FocusNext moves focus forward (or backward) through FocusableWidgets,
// wrapping around.
func (d *Dialog) FocusNext(backward bool) Widget {
	fs := d.FocusableWidgets()
	if len(fs) == 0 {
		d.focused = nil
		return nil
	}
	idx := -1
	for i, w := range fs {
		if w == d.focused {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && backward:
		idx = len(fs) - 1
	case idx < 0:
		idx = 0
	case backward:
		idx = (idx - 1 + len(fs)) % len(fs)
	default:
		idx = (idx + 1) % len(fs)
	}
	d.focused = fs[idx]
	d.sync(AspectFocus)
	return d.focused
}

// Recalc asks the backend to recompute the layout.
func (d *Dialog) Recalc() { d.sync(AspectLayout) }

// FindWidget returns the widget with the given id.
func (d *Dialog) FindWidget(id string) (Widget, error) {
	var found Widget
	Walk(d, func(w Widget) bool {
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	if found == nil {
		return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no widget with this id").WithContext("id", id)
	}
	return found, nil
}

// NormalizeLabel strips keyboard shortcut markers ("&") and surrounding space.
func NormalizeLabel(label string) string {
	label = strings.ReplaceAll(label, "&&", "\x00")
	label = strings.ReplaceAll(label, "&", "")
	label = strings.ReplaceAll(label, "\x00", "&")
	return strings.TrimSpace(label)
}

// FindWidgetByLabel returns the first widget whose label matches,
// ignoring shortcut markers.
func (d *Dialog) FindWidgetByLabel(label string) (Widget, error) {
	want := NormalizeLabel(label)
	var found Widget
	Walk(d, func(w Widget) bool {
		if l, ok := w.(Labeler); ok && NormalizeLabel(l.Label()) == want {
			found = w
			return false
		}
		return true
	})
	if found == nil {
		return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no widget with this label").WithContext("label", label)
	}
	return found, nil
}

// FindWidgets returns every widget for which match is true.
func (d *Dialog) FindWidgets(match func(Widget) bool) []Widget {
	var out []Widget
	Walk(d, func(w Widget) bool {
		if w != Widget(d) && match(w) {
			out = append(out, w)
		}
		return true
	})
	return out
}

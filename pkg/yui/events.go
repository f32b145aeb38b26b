package yui

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Event is what Dialog.WaitForEvent returns. Which fields are set depends on
// Type: widget events carry Widget and Reason, menu events carry ID (the
// "/"-joined path of the activated item, or a rich-text link target) and
// MenuItem, key events carry Key.
type Event struct {
	Type     EventType
	Reason   EventReason
	Widget   Widget
	Item     SelectionItem
	Column   int
	MenuItem *MenuItem
	ID       string
	Key      string

	// Serial orders events by posting time across all dialogs.
	Serial ulid.ULID
	Posted time.Time
}

func newEvent(t EventType) *Event {
	now := time.Now()
	return &Event{
		Type:   t,
		Column: -1,
		Serial: ulid.Make(),
		Posted: now,
	}
}

func newWidgetEvent(w Widget, reason EventReason) *Event {
	ev := newEvent(WidgetEvent)
	ev.Widget = w
	ev.Reason = reason
	return ev
}

// NewCancelEvent builds the event delivered when a dialog is closed by the
// user or the window manager.
func NewCancelEvent() *Event { return newEvent(CancelEvent) }

// NewTimeoutEvent builds the event delivered when a wait times out.
func NewTimeoutEvent() *Event { return newEvent(TimeoutEvent) }

// NewKeyEvent builds a key event for w. Backends post it only when
// w.KeyEvents() is set.
func NewKeyEvent(w Widget, key string) *Event {
	ev := newEvent(KeyEvent)
	ev.Widget = w
	ev.Key = key
	return ev
}

// NewMenuEvent builds a menu event with the given id.
func NewMenuEvent(w Widget, item *MenuItem, id string) *Event {
	ev := newEvent(MenuEvent)
	ev.Widget = w
	ev.MenuItem = item
	ev.ID = id
	return ev
}

// NewGenericEvent builds an event with no widget, tagged with id.
func NewGenericEvent(id string) *Event {
	ev := newEvent(GenericEvent)
	ev.ID = id
	return ev
}

// IsActivation reports whether the event is a widget activation of w.
func (e *Event) IsActivation(w Widget) bool {
	return e != nil && e.Type == WidgetEvent && e.Reason == Activated && e.Widget == w
}

func (e *Event) String() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Type.String()
	if e.Reason != ReasonNone {
		s += "/" + e.Reason.String()
	}
	if e.Widget != nil {
		s += " " + e.Widget.Kind().String() + "(" + e.Widget.DebugLabel() + ")"
	}
	if e.ID != "" {
		s += " id=" + e.ID
	}
	if e.Key != "" {
		s += " key=" + e.Key
	}
	return s
}

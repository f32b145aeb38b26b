package yui

import (
	"github.com/odvcencio/yui/pkg/logging"
)

// Aspect names the part of a widget's model that changed, so a backend peer
// can update only the matching part of its native counterpart.
type Aspect int

const (
	AspectEnabled Aspect = iota
	AspectVisible
	AspectLabel
	AspectValue
	AspectRange
	AspectItems
	AspectSelection
	AspectItemState
	AspectChildren
	AspectLayout
	AspectTitle
	AspectHelp
	AspectDefault
	AspectFocus
)

func (a Aspect) String() string {
	switch a {
	case AspectEnabled:
		return "enabled"
	case AspectVisible:
		return "visible"
	case AspectLabel:
		return "label"
	case AspectValue:
		return "value"
	case AspectRange:
		return "range"
	case AspectItems:
		return "items"
	case AspectSelection:
		return "selection"
	case AspectItemState:
		return "item_state"
	case AspectChildren:
		return "children"
	case AspectLayout:
		return "layout"
	case AspectTitle:
		return "title"
	case AspectHelp:
		return "help"
	case AspectDefault:
		return "default"
	case AspectFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// Peer is a backend's realization of a widget.
type Peer interface {
	// Sync pushes the named aspect of the model to the native widget.
	Sync(a Aspect) error
	// Destroy releases native resources.
	Destroy()
}

// Widget is implemented by every widget in this package. The interface is
// sealed: backends realize widgets, they do not implement them.
type Widget interface {
	Kind() WidgetKind
	ID() string
	SetID(id string)
	DebugLabel() string

	Parent() Widget
	Children() []Widget
	AddChild(c Widget) error
	FindDialog() *Dialog

	IsEnabled() bool
	SetEnabled(on bool)
	EffectivelyEnabled() bool
	IsVisible() bool
	SetVisible(on bool)
	Notify() bool
	SetNotify(on bool)
	KeyEvents() bool
	SetKeyEvents(on bool)
	HelpText() string
	SetHelpText(text string)

	Stretchable(dim Dimension) bool
	SetStretchable(dim Dimension, on bool)
	Weight(dim Dimension) int
	SetWeight(dim Dimension, w int)

	Peer() Peer
	SetPeer(p Peer)
	IsRealized() bool
	IsDestroyed() bool

	base() *Base
}

// Labeler is implemented by widgets with a caption.
type Labeler interface {
	Widget
	Label() string
	SetLabel(label string)
}

// TextEditor marks widgets that consume Enter and Space themselves, which
// suppresses default-button activation while they have focus.
type TextEditor interface {
	Widget
	textEditor()
}

// Focusable marks widgets that can take keyboard focus.
type Focusable interface {
	Widget
	focusable()
}

// Base carries the state shared by all widgets. Every widget type embeds it.
type Base struct {
	self        Widget
	ui          *UI
	kind        WidgetKind
	id          string
	parent      Widget
	children    []Widget
	maxChildren int

	enabled   bool
	visible   bool
	notify    bool
	keyEvents bool
	helpText  string
	stretch   [2]bool
	weight    [2]int

	peer      Peer
	destroyed bool
}

func (b *Base) init(self Widget, ui *UI, kind WidgetKind, maxChildren int) {
	b.self = self
	b.ui = ui
	b.kind = kind
	b.maxChildren = maxChildren
	b.enabled = true
	b.visible = true
}

func (b *Base) base() *Base { return b }

// Kind returns the widget class.
func (b *Base) Kind() WidgetKind { return b.kind }

// ID returns the application-assigned identifier.
func (b *Base) ID() string { return b.id }

// SetID assigns an identifier used by Dialog.FindWidget.
func (b *Base) SetID(id string) { b.id = id }

// DebugLabel describes the widget for logs and lookups.
func (b *Base) DebugLabel() string {
	if l, ok := b.self.(Labeler); ok && l.Label() != "" {
		return l.Label()
	}
	if b.id != "" {
		return b.id
	}
	return b.kind.String()
}

// Parent returns the containing widget, or nil when detached.
func (b *Base) Parent() Widget { return b.parent }

// Children returns a copy of the child list in insertion order.
func (b *Base) Children() []Widget {
	out := make([]Widget, len(b.children))
	copy(out, b.children)
	return out
}

// FirstChild returns the first child or nil.
func (b *Base) FirstChild() Widget {
	if len(b.children) == 0 {
		return nil
	}
	return b.children[0]
}

// HasChildren reports whether the widget has any children.
func (b *Base) HasChildren() bool { return len(b.children) > 0 }

// canAdd reports whether one more child fits.
func (b *Base) canAdd() error {
	if b.maxChildren < 0 {
		return invalidWidget(b.self, b.kind.String()+" cannot have children")
	}
	if b.maxChildren > 0 && len(b.children) >= b.maxChildren {
		return invalidWidget(b.self, b.kind.String()+" already has its maximum number of children")
	}
	return nil
}

// AddChild appends c. Single-child containers reject a second child and a
// paned container rejects a third.
func (b *Base) AddChild(c Widget) error {
	if c == nil {
		return invalidWidget(b.self, "nil child")
	}
	if _, ok := c.(*Dialog); ok {
		return invalidWidget(c, "a dialog cannot be a child")
	}
	if b.destroyed || c.IsDestroyed() {
		return invalidWidget(c, "destroyed widget")
	}
	if c.Parent() != nil {
		return invalidWidget(c, "widget already has a parent")
	}
	for w := b.self; w != nil; w = w.Parent() {
		if w == c {
			return invalidWidget(c, "widget cannot contain itself")
		}
	}
	if err := b.canAdd(); err != nil {
		return err
	}

	b.children = append(b.children, c)
	c.base().parent = b.self

	if b.peer != nil {
		if d := b.self.FindDialog(); d != nil {
			d.realizeTree(c)
		}
		b.sync(AspectChildren)
	}
	return nil
}

// removeChildren destroys and detaches every child.
func (b *Base) removeChildren() {
	children := b.children
	b.children = nil
	for _, c := range children {
		destroyTree(c)
		c.base().parent = nil
	}
	b.sync(AspectChildren)
}

// FindDialog returns the nearest enclosing dialog, or nil.
func (b *Base) FindDialog() *Dialog {
	for w := b.self; w != nil; w = w.Parent() {
		if d, ok := w.(*Dialog); ok {
			return d
		}
	}
	return nil
}

// IsEnabled returns the widget's own enabled flag.
func (b *Base) IsEnabled() bool { return b.enabled }

// SetEnabled stores the flag, updates the peer and recurses into the subtree.
func (b *Base) SetEnabled(on bool) {
	b.enabled = on
	b.sync(AspectEnabled)
	for _, c := range b.children {
		c.SetEnabled(on)
	}
}

// EffectivelyEnabled is the AND of this widget's flag and every ancestor's.
func (b *Base) EffectivelyEnabled() bool {
	if !b.enabled {
		return false
	}
	if b.parent == nil {
		return true
	}
	return b.parent.EffectivelyEnabled()
}

// IsVisible returns the widget's own visible flag.
func (b *Base) IsVisible() bool { return b.visible }

// SetVisible shows or hides the widget.
func (b *Base) SetVisible(on bool) {
	if b.visible == on {
		return
	}
	b.visible = on
	b.sync(AspectVisible)
}

// EffectivelyVisible reports whether the widget and all ancestors are visible.
func EffectivelyVisible(w Widget) bool {
	for ; w != nil; w = w.Parent() {
		if !w.IsVisible() {
			return false
		}
	}
	return true
}

// Notify reports whether value and selection changes post events.
func (b *Base) Notify() bool { return b.notify }

// SetNotify gates posting of value-changed and selection-changed events.
func (b *Base) SetNotify(on bool) { b.notify = on }

// KeyEvents reports whether key presses on this widget post key events.
func (b *Base) KeyEvents() bool { return b.keyEvents }

// SetKeyEvents enables key events for this widget.
func (b *Base) SetKeyEvents(on bool) { b.keyEvents = on }

// HelpText returns the tooltip text.
func (b *Base) HelpText() string { return b.helpText }

// SetHelpText sets the tooltip text.
func (b *Base) SetHelpText(text string) {
	b.helpText = text
	b.sync(AspectHelp)
}

// Stretchable returns the explicit stretch hint for dim. Containers override
// this to derive it from their children.
func (b *Base) Stretchable(dim Dimension) bool { return b.stretch[dim] }

// SetStretchable sets the stretch hint for dim.
func (b *Base) SetStretchable(dim Dimension, on bool) {
	b.stretch[dim] = on
	b.sync(AspectLayout)
}

// Weight returns the layout weight for dim.
func (b *Base) Weight(dim Dimension) int { return b.weight[dim] }

// SetWeight sets the layout weight for dim. Negative weights are stored as 0.
func (b *Base) SetWeight(dim Dimension, w int) {
	if w < 0 {
		w = 0
	}
	b.weight[dim] = w
	b.sync(AspectLayout)
}

// Peer returns the backend peer, or nil before realization.
func (b *Base) Peer() Peer { return b.peer }

// SetPeer attaches a backend peer. It is used by backends that realize
// widgets outside the normal dialog open path.
func (b *Base) SetPeer(p Peer) { b.peer = p }

// IsRealized reports whether the widget has a backend peer.
func (b *Base) IsRealized() bool { return b.peer != nil }

// IsDestroyed reports whether the widget was destroyed with its parent.
func (b *Base) IsDestroyed() bool { return b.destroyed }

// UI returns the UI that created the widget.
func (b *Base) UI() *UI { return b.ui }

func (b *Base) logger() *logging.Logger {
	if b.ui != nil && b.ui.logger != nil {
		return b.ui.logger
	}
	return logging.Default()
}

// sync pushes a to the peer. Rendering failures are logged and swallowed so
// the pump survives them.
func (b *Base) sync(a Aspect) {
	if b.peer == nil || b.destroyed {
		return
	}
	if err := b.peer.Sync(a); err != nil {
		b.logger().Debug(logging.CategoryBackend, "sync_failed", err.Error(), map[string]any{
			"widget": b.kind.String(),
			"aspect": a.String(),
		})
	}
}

// post delivers ev to the enclosing dialog. Unless always is set, the
// widget's notify flag must be on.
func (b *Base) post(ev *Event, always bool) {
	if !always && !b.notify {
		return
	}
	d := b.self.FindDialog()
	if d == nil {
		return
	}
	d.PostEvent(ev)
}

func (b *Base) postWidgetEvent(reason EventReason, always bool) {
	if !always && !b.notify {
		return
	}
	b.post(newWidgetEvent(b.self, reason), always)
}

// destroyTree marks the subtree destroyed and releases peers top-down, a
// parent before its children.
func destroyTree(w Widget) {
	b := w.base()
	if b.destroyed {
		return
	}
	b.destroyed = true
	if b.peer != nil {
		b.peer.Destroy()
		b.peer = nil
	}
	for _, c := range b.children {
		destroyTree(c)
	}
	if d := dialogOf(b.self); d != nil && d != b.self {
		d.forget(w)
	}
}

func dialogOf(w Widget) *Dialog {
	if w == nil {
		return nil
	}
	return w.FindDialog()
}

// Walk visits w and its descendants depth-first in child order. Returning
// false from fn stops the walk.
func Walk(w Widget, fn func(Widget) bool) bool {
	if w == nil {
		return true
	}
	if !fn(w) {
		return false
	}
	for _, c := range w.base().children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

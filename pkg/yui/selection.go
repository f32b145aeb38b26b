package yui

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// SelectionWidget is the shared model of lists, combo boxes, trees, tables
// and tab bars: an ordered item list with single or multi selection.
type SelectionWidget struct {
	Base
	label     string
	items     []SelectionItem
	multi     bool
	recursive bool
	accept    func(SelectionItem) bool
}

func (s *SelectionWidget) initSelection(self Widget, ui *UI, kind WidgetKind, label string, multi bool, accept func(SelectionItem) bool) {
	s.init(self, ui, kind, -1)
	s.label = label
	s.multi = multi
	s.accept = accept
}

// Label returns the widget caption.
func (s *SelectionWidget) Label() string { return s.label }

// SetLabel changes the caption.
func (s *SelectionWidget) SetLabel(label string) {
	s.label = label
	s.sync(AspectLabel)
}

// MultiSelection reports whether more than one item may be selected.
func (s *SelectionWidget) MultiSelection() bool { return s.multi }

// RecursiveSelection reports whether selecting a node selects its subtree.
func (s *SelectionWidget) RecursiveSelection() bool { return s.recursive && s.multi }

// AddItem appends it. Items of the wrong type for this widget are rejected.
func (s *SelectionWidget) AddItem(it SelectionItem) error {
	if err := s.addItem(it); err != nil {
		return err
	}
	s.sync(AspectItems)
	return nil
}

// AddItems appends several items with a single peer update.
func (s *SelectionWidget) AddItems(items ...SelectionItem) error {
	for _, it := range items {
		if s.accept != nil && !s.accept(it) {
			return invalidWidget(s.self, "wrong item type for "+s.kind.String())
		}
	}
	for _, it := range items {
		if err := s.addItem(it); err != nil {
			return err
		}
	}
	s.sync(AspectItems)
	return nil
}

func (s *SelectionWidget) addItem(it SelectionItem) error {
	if it == nil {
		return invalidWidget(s.self, "nil item")
	}
	if s.accept != nil && !s.accept(it) {
		return invalidWidget(s.self, "wrong item type for "+s.kind.String())
	}
	it.itemBase().index = len(s.items)
	s.items = append(s.items, it)
	if it.itemBase().selected {
		s.applySelection(it, true)
	}
	return nil
}

// Items returns the top-level items.
func (s *SelectionWidget) Items() []SelectionItem {
	out := make([]SelectionItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount returns the number of top-level items.
func (s *SelectionWidget) ItemCount() int { return len(s.items) }

// ItemAt returns the top-level item at index, or nil.
func (s *SelectionWidget) ItemAt(index int) SelectionItem {
	if index < 0 || index >= len(s.items) {
		return nil
	}
	return s.items[index]
}

// AllItems returns every item including nested tree nodes, depth-first.
func (s *SelectionWidget) AllItems() []SelectionItem {
	var out []SelectionItem
	var walk func([]SelectionItem)
	walk = func(items []SelectionItem) {
		for _, it := range items {
			out = append(out, it)
			walk(it.childItems())
		}
	}
	walk(s.items)
	return out
}

// FindItem returns the first item whose label matches, searching nested items too.
func (s *SelectionWidget) FindItem(label string) (SelectionItem, error) {
	for _, it := range s.AllItems() {
		if it.itemBase().label == label {
			return it, nil
		}
	}
	return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no such item").
		WithContext("label", label).
		WithContext("widget", s.kind.String())
}

// DeleteAllItems removes every item.
func (s *SelectionWidget) DeleteAllItems() {
	s.items = nil
	s.sync(AspectItems)
}

// RebuildItems tells a realized widget that item labels or icons changed.
func (s *SelectionWidget) RebuildItems() { s.sync(AspectItems) }

func (s *SelectionWidget) owns(it SelectionItem) bool {
	for _, o := range s.AllItems() {
		if o == it {
			return true
		}
	}
	return false
}

// SelectItem selects or deselects it without posting an event. In single
// selection mode selecting an item clears every other selection. With
// recursive selection the change also applies to all descendants.
func (s *SelectionWidget) SelectItem(it SelectionItem, on bool) error {
	if it == nil || !s.owns(it) {
		return yerrors.New(yerrors.ErrCodeWidgetNotFound, "item does not belong to this widget").
			WithContext("widget", s.kind.String())
	}
	s.applySelection(it, on)
	s.sync(AspectSelection)
	return nil
}

func (s *SelectionWidget) applySelection(it SelectionItem, on bool) {
	if on && !s.multi {
		for _, o := range s.AllItems() {
			o.itemBase().selected = false
		}
	}
	it.itemBase().selected = on
	if s.RecursiveSelection() {
		var walk func([]SelectionItem)
		walk = func(items []SelectionItem) {
			for _, c := range items {
				c.itemBase().selected = on
				walk(c.childItems())
			}
		}
		walk(it.childItems())
	}
}

// selectionMatches reports whether applying on to it would change nothing,
// including its subtree when selection is recursive.
func (s *SelectionWidget) selectionMatches(it SelectionItem, on bool) bool {
	if it.itemBase().selected != on {
		return false
	}
	if !s.RecursiveSelection() {
		return true
	}
	for _, c := range it.childItems() {
		if !s.selectionMatches(c, on) {
			return false
		}
	}
	return true
}

// DeselectAllItems clears the selection without posting an event.
func (s *SelectionWidget) DeselectAllItems() {
	for _, it := range s.AllItems() {
		it.itemBase().selected = false
	}
	s.sync(AspectSelection)
}

// SelectedItem returns the first selected item, or nil.
func (s *SelectionWidget) SelectedItem() SelectionItem {
	for _, it := range s.AllItems() {
		if it.itemBase().selected {
			return it
		}
	}
	return nil
}

// SelectedItems returns every selected item in depth-first order.
func (s *SelectionWidget) SelectedItems() []SelectionItem {
	var out []SelectionItem
	for _, it := range s.AllItems() {
		if it.itemBase().selected {
			out = append(out, it)
		}
	}
	return out
}

// UserSelect records a selection made by the user and posts
// selection-changed when notify is on.
func (s *SelectionWidget) UserSelect(it SelectionItem, on bool) error {
	if it == nil || !s.owns(it) {
		return yerrors.New(yerrors.ErrCodeWidgetNotFound, "item does not belong to this widget")
	}
	if !it.itemBase().enabled {
		return nil
	}
	if s.selectionMatches(it, on) {
		return nil
	}
	s.applySelection(it, on)
	s.post(s.selectionEvent(SelectionChanged, it), false)
	return nil
}

// UserActivate records a double click or Enter on it and posts activated
// when notify is on.
func (s *SelectionWidget) UserActivate(it SelectionItem) error {
	if it == nil || !s.owns(it) {
		return yerrors.New(yerrors.ErrCodeWidgetNotFound, "item does not belong to this widget")
	}
	if !s.multi && !it.itemBase().selected {
		s.applySelection(it, true)
	}
	s.post(s.selectionEvent(Activated, it), false)
	return nil
}

func (s *SelectionWidget) selectionEvent(reason EventReason, it SelectionItem) *Event {
	ev := newWidgetEvent(s.self, reason)
	ev.Item = it
	return ev
}

// SelectionBox is a list of items with single or multi selection.
type SelectionBox struct {
	SelectionWidget
	shrinkable bool
}

func acceptPlainItem(it SelectionItem) bool {
	_, ok := it.(*Item)
	return ok
}

func newSelectionBox(ui *UI, label string, multi bool) *SelectionBox {
	s := &SelectionBox{}
	s.initSelection(s, ui, KindSelectionBox, label, multi, acceptPlainItem)
	s.stretch = [2]bool{true, true}
	return s
}

func (s *SelectionBox) focusable() {}

// Shrinkable reports whether the box may be smaller than its content.
func (s *SelectionBox) Shrinkable() bool { return s.shrinkable }

// SetShrinkable allows the box to be smaller than its content.
func (s *SelectionBox) SetShrinkable(on bool) {
	s.shrinkable = on
	s.sync(AspectLayout)
}

// ComboBox is a single-selection drop-down. An editable combo box also
// accepts free text.
type ComboBox struct {
	SelectionWidget
	editable bool
	text     string
}

func newComboBox(ui *UI, label string, editable bool) *ComboBox {
	c := &ComboBox{editable: editable}
	c.initSelection(c, ui, KindComboBox, label, false, acceptPlainItem)
	return c
}

func (c *ComboBox) focusable() {}

// Editable reports whether free text is accepted.
func (c *ComboBox) Editable() bool { return c.editable }

// Value returns the selected label, or the typed text of an editable combo box.
func (c *ComboBox) Value() string {
	if c.editable && c.text != "" {
		return c.text
	}
	if it := c.SelectedItem(); it != nil {
		return it.itemBase().label
	}
	return c.text
}

// SetValue selects the item with that label. An editable combo box keeps
// unmatched text as its value. No event is posted.
func (c *ComboBox) SetValue(value string) {
	c.setValue(value)
	c.sync(AspectValue)
}

func (c *ComboBox) setValue(value string) bool {
	for _, it := range c.items {
		if it.itemBase().label == value {
			c.text = ""
			c.applySelection(it, true)
			return true
		}
	}
	if c.editable {
		c.text = value
		for _, it := range c.items {
			it.itemBase().selected = false
		}
		return true
	}
	return false
}

// UserSetValue records text typed or picked by the user and posts
// value-changed when notify is on.
func (c *ComboBox) UserSetValue(value string) {
	if value == c.Value() {
		return
	}
	if c.setValue(value) {
		c.postWidgetEvent(ValueChanged, false)
	}
}

// DumbTab is a tab bar whose single child is the content area. The
// application swaps the content when a tab is activated.
type DumbTab struct {
	SelectionWidget
}

func newDumbTab(ui *UI) *DumbTab {
	t := &DumbTab{}
	t.initSelection(t, ui, KindDumbTab, "", false, acceptPlainItem)
	t.maxChildren = 1
	return t
}

func (t *DumbTab) focusable() {}

// Stretchable follows the content.
func (t *DumbTab) Stretchable(dim Dimension) bool {
	return t.stretch[dim] || anyChildWantsSpace(t.children, dim)
}

// UserSelectTab switches to it and always posts activated.
func (t *DumbTab) UserSelectTab(it *Item) error {
	if it == nil || !t.owns(it) {
		return yerrors.New(yerrors.ErrCodeWidgetNotFound, "no such tab")
	}
	if !it.enabled {
		return nil
	}
	t.applySelection(it, true)
	t.sync(AspectSelection)
	t.post(t.selectionEvent(Activated, it), true)
	return nil
}

// CurrentTab returns the selected tab item.
func (t *DumbTab) CurrentTab() *Item {
	if it := t.SelectedItem(); it != nil {
		return it.itemBase()
	}
	return nil
}

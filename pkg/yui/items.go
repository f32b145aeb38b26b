package yui

import "strings"

// SelectionItem is an entry of a selection widget: a plain Item, a
// TreeItem or a TableItem.
type SelectionItem interface {
	itemBase() *Item
	childItems() []SelectionItem
}

// Item is a labelled entry in a list, combo box or tab bar.
type Item struct {
	label    string
	icon     string
	selected bool
	enabled  bool
	visible  bool
	index    int
	data     any
}

// NewItem returns an enabled, visible, unselected item.
func NewItem(label string) *Item {
	return &Item{label: label, enabled: true, visible: true, index: -1}
}

// NewIconItem returns an item with an icon name.
func NewIconItem(label, icon string) *Item {
	it := NewItem(label)
	it.icon = icon
	return it
}

func (it *Item) itemBase() *Item              { return it }
func (it *Item) childItems() []SelectionItem { return nil }

// Label returns the item text.
func (it *Item) Label() string { return it.label }

// SetLabel changes the item text. Owners must be told via RebuildItems.
func (it *Item) SetLabel(label string) { it.label = label }

// Icon returns the icon name.
func (it *Item) Icon() string { return it.icon }

// SetIcon sets the icon name.
func (it *Item) SetIcon(icon string) { it.icon = icon }

// Selected reports the selection flag.
func (it *Item) Selected() bool { return it.selected }

// Enabled reports whether the item can be chosen.
func (it *Item) Enabled() bool { return it.enabled }

// SetEnabled sets whether the item can be chosen.
func (it *Item) SetEnabled(on bool) { it.enabled = on }

// Visible reports whether the item is shown.
func (it *Item) Visible() bool { return it.visible }

// SetVisible sets whether the item is shown.
func (it *Item) SetVisible(on bool) { it.visible = on }

// Index is the position assigned when the item was added, or -1.
func (it *Item) Index() int { return it.index }

// Data returns the opaque application value.
func (it *Item) Data() any { return it.data }

// SetData attaches an opaque application value.
func (it *Item) SetData(v any) { it.data = v }

// ItemOf returns the Item part of any selection item.
func ItemOf(si SelectionItem) *Item {
	if si == nil {
		return nil
	}
	return si.itemBase()
}

// TreeItem is a node of a Tree.
type TreeItem struct {
	Item
	parent   *TreeItem
	children []*TreeItem
	open     bool
}

// NewTreeItem creates a node and appends it to parent when parent is non-nil.
func NewTreeItem(parent *TreeItem, label string, open bool) *TreeItem {
	t := &TreeItem{Item: *NewItem(label), open: open}
	if parent != nil {
		parent.AddChild(t)
	}
	return t
}

func (t *TreeItem) childItems() []SelectionItem {
	out := make([]SelectionItem, len(t.children))
	for i, c := range t.children {
		out[i] = c
	}
	return out
}

// AddChild appends c under t.
func (t *TreeItem) AddChild(c *TreeItem) {
	c.parent = t
	c.index = len(t.children)
	t.children = append(t.children, c)
}

// Parent returns the parent node, or nil for a root.
func (t *TreeItem) Parent() *TreeItem { return t.parent }

// Children returns the child nodes.
func (t *TreeItem) Children() []*TreeItem { return t.children }

// IsOpen reports whether the node is expanded.
func (t *TreeItem) IsOpen() bool { return t.open }

// SetOpen expands or collapses the node.
func (t *TreeItem) SetOpen(open bool) { t.open = open }

// Depth returns 0 for roots.
func (t *TreeItem) Depth() int {
	d := 0
	for p := t.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the labels from the root down to t.
func (t *TreeItem) Path() []string {
	var path []string
	for n := t; n != nil; n = n.parent {
		path = append([]string{n.label}, path...)
	}
	return path
}

// TableCell is one cell of a TableItem. A checkable cell carries a check
// flag the user can toggle.
type TableCell struct {
	label     string
	icon      string
	checkable bool
	checked   bool
	column    int
	parent    *TableItem
}

// Label returns the cell text.
func (c *TableCell) Label() string { return c.label }

// SetLabel changes the cell text. Use Table.SetCellLabel to update a realized table.
func (c *TableCell) SetLabel(label string) { c.label = label }

// Icon returns the cell icon name.
func (c *TableCell) Icon() string { return c.icon }

// SetIcon sets the cell icon name.
func (c *TableCell) SetIcon(icon string) { c.icon = icon }

// Checkable reports whether the cell has a check flag.
func (c *TableCell) Checkable() bool { return c.checkable }

// Checked reports the check flag.
func (c *TableCell) Checked() bool { return c.checked }

// SetChecked sets the check flag and makes the cell checkable.
func (c *TableCell) SetChecked(on bool) {
	c.checkable = true
	c.checked = on
}

// Column returns the column index.
func (c *TableCell) Column() int { return c.column }

// Item returns the owning row.
func (c *TableCell) Item() *TableItem { return c.parent }

// TableItem is a table row.
type TableItem struct {
	Item
	cells []*TableCell
}

// NewTableItem creates a row with one text cell per label.
func NewTableItem(labels ...string) *TableItem {
	t := &TableItem{Item: *NewItem("")}
	for _, l := range labels {
		t.AddCell(l)
	}
	return t
}

// AddCell appends a text cell.
func (t *TableItem) AddCell(label string) *TableCell {
	c := &TableCell{label: label, column: len(t.cells), parent: t}
	t.cells = append(t.cells, c)
	if c.column == 0 {
		t.label = label
	}
	return c
}

// AddCheckBoxCell appends a checkable cell.
func (t *TableItem) AddCheckBoxCell(checked bool) *TableCell {
	c := t.AddCell("")
	c.SetChecked(checked)
	return c
}

// Cells returns the row cells.
func (t *TableItem) Cells() []*TableCell { return t.cells }

// Cell returns the cell at column, or nil.
func (t *TableItem) Cell(column int) *TableCell {
	if column < 0 || column >= len(t.cells) {
		return nil
	}
	return t.cells[column]
}

// CellLabel returns the text at column, or "".
func (t *TableItem) CellLabel(column int) string {
	if c := t.Cell(column); c != nil {
		return c.label
	}
	return ""
}

// MenuItem is an entry of a menu bar. Menus are items with IsMenu set and
// may contain plain items, separators and nested menus.
type MenuItem struct {
	label     string
	icon      string
	enabled   bool
	visible   bool
	isMenu    bool
	separator bool
	checkable bool
	checked   bool
	parent    *MenuItem
	children  []*MenuItem
	bar       *MenuBar
	data      any
}

// NewMenu returns a detached menu.
func NewMenu(label string) *MenuItem {
	return &MenuItem{label: label, enabled: true, visible: true, isMenu: true}
}

func (m *MenuItem) add(c *MenuItem) *MenuItem {
	c.parent = m
	c.bar = m.bar
	m.children = append(m.children, c)
	return c
}

// AddItem appends an activatable item.
func (m *MenuItem) AddItem(label string) *MenuItem {
	return m.add(&MenuItem{label: label, enabled: true, visible: true})
}

// AddIconItem appends an activatable item with an icon.
func (m *MenuItem) AddIconItem(label, icon string) *MenuItem {
	it := m.AddItem(label)
	it.icon = icon
	return it
}

// AddCheckItem appends a checkable item.
func (m *MenuItem) AddCheckItem(label string, checked bool) *MenuItem {
	it := m.AddItem(label)
	it.checkable = true
	it.checked = checked
	return it
}

// AddMenu appends a nested menu.
func (m *MenuItem) AddMenu(label string) *MenuItem {
	return m.add(NewMenu(label))
}

// AddSeparator appends a separator.
func (m *MenuItem) AddSeparator() *MenuItem {
	return m.add(&MenuItem{enabled: true, visible: true, separator: true})
}

// Label returns the item text.
func (m *MenuItem) Label() string { return m.label }

// SetLabel renames the item. A realized bar needs RebuildMenus.
func (m *MenuItem) SetLabel(label string) { m.label = label }

// Icon returns the icon name.
func (m *MenuItem) Icon() string { return m.icon }

// IsMenu reports whether the item is a (sub)menu.
func (m *MenuItem) IsMenu() bool { return m.isMenu }

// IsSeparator reports whether the item is a separator.
func (m *MenuItem) IsSeparator() bool { return m.separator }

// Enabled reports the item's own enabled flag.
func (m *MenuItem) Enabled() bool { return m.enabled }

// SetEnabled enables or disables the item and updates the realized bar.
func (m *MenuItem) SetEnabled(on bool) {
	m.enabled = on
	if m.bar != nil {
		m.bar.sync(AspectItemState)
	}
}

// Visible reports whether the item is shown.
func (m *MenuItem) Visible() bool { return m.visible }

// SetVisible shows or hides the item and updates the realized bar.
func (m *MenuItem) SetVisible(on bool) {
	m.visible = on
	if m.bar != nil {
		m.bar.sync(AspectItems)
	}
}

// Checkable reports whether the item carries a check flag.
func (m *MenuItem) Checkable() bool { return m.checkable }

// Checked reports the check flag.
func (m *MenuItem) Checked() bool { return m.checked }

// SetChecked sets the check flag and updates the realized bar.
func (m *MenuItem) SetChecked(on bool) {
	m.checkable = true
	m.checked = on
	if m.bar != nil {
		m.bar.sync(AspectItemState)
	}
}

// Parent returns the containing menu, or nil for a top-level menu.
func (m *MenuItem) Parent() *MenuItem { return m.parent }

// Children returns the entries of a menu.
func (m *MenuItem) Children() []*MenuItem { return m.children }

// Data returns the opaque application value.
func (m *MenuItem) Data() any { return m.data }

// SetData attaches an opaque application value.
func (m *MenuItem) SetData(v any) { m.data = v }

// EffectivelyEnabled is false if the item or any containing menu is disabled.
func (m *MenuItem) EffectivelyEnabled() bool {
	for n := m; n != nil; n = n.parent {
		if !n.enabled {
			return false
		}
	}
	return true
}

// Path returns the "/"-joined labels from the top-level menu to m.
func (m *MenuItem) Path() string {
	var parts []string
	for n := m; n != nil; n = n.parent {
		parts = append(parts, n.label)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

func (m *MenuItem) setBar(bar *MenuBar) {
	m.bar = bar
	for _, c := range m.children {
		c.setBar(bar)
	}
}

// WalkMenu visits m and its descendants depth-first.
func WalkMenu(m *MenuItem, fn func(*MenuItem)) {
	fn(m)
	for _, c := range m.children {
		WalkMenu(c, fn)
	}
}

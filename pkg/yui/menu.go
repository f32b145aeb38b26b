package yui

import (
	"strings"

	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// MenuBar holds ordered top-level menus. After changing the item structure
// directly, call RebuildMenus to regenerate the native menus.
type MenuBar struct {
	Base
	menus []*MenuItem
}

func newMenuBar(ui *UI) *MenuBar {
	m := &MenuBar{}
	m.init(m, ui, KindMenuBar, -1)
	m.stretch[Horizontal] = true
	return m
}

func (m *MenuBar) focusable() {}

// AddMenu appends a new top-level menu.
func (m *MenuBar) AddMenu(label string) *MenuItem {
	menu := NewMenu(label)
	menu.setBar(m)
	m.menus = append(m.menus, menu)
	m.sync(AspectItems)
	return menu
}

// AttachMenu appends a menu built with NewMenu.
func (m *MenuBar) AttachMenu(menu *MenuItem) error {
	if menu == nil || !menu.isMenu {
		return invalidWidget(m, "only menus can be added to a menu bar")
	}
	if menu.parent != nil || menu.bar != nil {
		return invalidWidget(m, "menu already attached")
	}
	menu.setBar(m)
	m.menus = append(m.menus, menu)
	m.sync(AspectItems)
	return nil
}

// Menus returns the top-level menus.
func (m *MenuBar) Menus() []*MenuItem {
	out := make([]*MenuItem, len(m.menus))
	copy(out, m.menus)
	return out
}

// RebuildMenus regenerates the native menus from the model.
func (m *MenuBar) RebuildMenus() {
	for _, menu := range m.menus {
		menu.setBar(m)
	}
	m.sync(AspectItems)
}

// DeleteMenus empties the bar and its native mirror.
func (m *MenuBar) DeleteMenus() {
	for _, menu := range m.menus {
		menu.setBar(nil)
	}
	m.menus = nil
	m.sync(AspectItems)
}

// FindMenuItem looks an item up by its "/"-joined path.
func (m *MenuBar) FindMenuItem(path string) (*MenuItem, error) {
	parts := strings.Split(path, "/")
	level := m.menus
	var found *MenuItem
	for _, p := range parts {
		found = nil
		for _, it := range level {
			if !it.separator && it.label == p {
				found = it
				break
			}
		}
		if found == nil {
			return nil, yerrors.New(yerrors.ErrCodeWidgetNotFound, "no such menu item").WithContext("path", path)
		}
		level = found.children
	}
	return found, nil
}

// Activate posts a menu event for item, as a click would. Menus,
// separators and disabled items are ignored.
func (m *MenuBar) Activate(item *MenuItem) bool {
	if item == nil || item.bar != m || item.isMenu || item.separator {
		return false
	}
	if !item.EffectivelyEnabled() || !m.EffectivelyEnabled() {
		return false
	}
	if item.checkable {
		item.checked = !item.checked
	}
	m.post(NewMenuEvent(m, item, item.Path()), true)
	return true
}

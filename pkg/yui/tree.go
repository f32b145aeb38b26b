package yui

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// Tree is a hierarchical selection widget. With multi selection and
// recursive selection on, selecting a node selects its whole subtree.
type Tree struct {
	SelectionWidget
}

func acceptTreeItem(it SelectionItem) bool {
	_, ok := it.(*TreeItem)
	return ok
}

func newTree(ui *UI, label string, multi, recursive bool) *Tree {
	t := &Tree{}
	t.initSelection(t, ui, KindTree, label, multi, acceptTreeItem)
	t.recursive = recursive
	t.stretch = [2]bool{true, true}
	return t
}

func (t *Tree) focusable() {}

// Roots returns the top-level nodes.
func (t *Tree) Roots() []*TreeItem {
	out := make([]*TreeItem, 0, len(t.items))
	for _, it := range t.items {
		out = append(out, it.(*TreeItem))
	}
	return out
}

// SelectedTreeItem returns the first selected node, or nil.
func (t *Tree) SelectedTreeItem() *TreeItem {
	if it, ok := t.SelectedItem().(*TreeItem); ok {
		return it
	}
	return nil
}

// SetItemOpen expands or collapses n.
func (t *Tree) SetItemOpen(n *TreeItem, open bool) error {
	if n == nil || !t.owns(n) {
		return yerrors.New(yerrors.ErrCodeWidgetNotFound, "node does not belong to this tree")
	}
	n.open = open
	t.sync(AspectItemState)
	return nil
}

// UserSetItemOpen records the user expanding or collapsing n. No event is posted.
func (t *Tree) UserSetItemOpen(n *TreeItem, open bool) {
	if n != nil {
		n.open = open
	}
}

// VisibleItems returns the nodes a renderer should show, honouring the
// open flag of every ancestor.
func (t *Tree) VisibleItems() []*TreeItem {
	var out []*TreeItem
	var walk func([]*TreeItem)
	walk = func(nodes []*TreeItem) {
		for _, n := range nodes {
			if !n.visible {
				continue
			}
			out = append(out, n)
			if n.open {
				walk(n.children)
			}
		}
	}
	walk(t.Roots())
	return out
}

package ncurses

import (
	"strconv"

	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/ui/runtime"
	"github.com/odvcencio/yui/pkg/yui"
)

// peer is the text-mode realization of one widget: its last layout rect
// plus the view state the model does not carry (scroll offsets, cursors,
// the segment being edited).
type peer struct {
	b *Backend
	w yui.Widget

	rect   runtime.Rect
	top    int
	cursor int
	seg    int
	follow bool
	edit   string
	link   int

	split      int
	splitTotal int

	tabs  []span[*yui.Item]
	menus []span[*yui.MenuItem]

	doc      *markup.Document
	docWidth int
	lines    []markup.Line

	imgPath string
	imgW    int
	imgH    int

	destroyed bool
}

// span is a clickable horizontal range on a widget's first row.
type span[T any] struct {
	x, width int
	v        T
}

func peerOf(w yui.Widget) *peer {
	if w == nil {
		return nil
	}
	p, _ := w.Peer().(*peer)
	return p
}

// Sync implements yui.Peer.
func (p *peer) Sync(a yui.Aspect) error {
	if p.destroyed {
		return nil
	}
	switch a {
	case yui.AspectValue:
		p.resetValue()
		p.b.relayout()
	case yui.AspectItems:
		p.clampCursor()
		p.b.relayout()
	case yui.AspectLabel, yui.AspectChildren, yui.AspectLayout, yui.AspectVisible:
		p.b.relayout()
	case yui.AspectSelection:
		p.cursorToSelection()
		p.b.invalidate()
	case yui.AspectTitle:
		p.b.relayout()
	default:
		p.b.invalidate()
	}
	return nil
}

// Destroy implements yui.Peer.
func (p *peer) Destroy() {
	p.destroyed = true
	if m := p.b.menu; m != nil && yui.Widget(m.bar) == p.w {
		p.b.closeMenu()
	}
	p.b.relayout()
}

// resetValue reloads view state derived from the model value.
func (p *peer) resetValue() {
	switch v := p.w.(type) {
	case *yui.InputField:
		p.cursor = runeLen(v.Value())
	case *yui.MultiLineEdit:
		p.cursor = runeLen(v.Value())
	case *yui.ComboBox:
		p.cursor = runeLen(v.Value())
	case *yui.IntField:
		p.edit = strconv.Itoa(v.Value())
	case *yui.RichText:
		p.doc = nil
		p.link = -1
		if v.AutoScrollDown() {
			p.follow = true
		}
	case *yui.LogView:
		if p.top == 0 {
			p.follow = true
		}
	case *yui.Image:
		p.imgPath = ""
	}
}

// cursorToSelection moves the list cursor onto the selected item.
func (p *peer) cursorToSelection() {
	switch v := p.w.(type) {
	case *yui.SelectionBox:
		p.cursor = indexOf(v.Items(), v.SelectedItem(), p.cursor)
	case *yui.Table:
		p.cursor = indexOf(v.Items(), v.SelectedItem(), p.cursor)
	case *yui.Tree:
		if sel := v.SelectedTreeItem(); sel != nil {
			for i, n := range v.VisibleItems() {
				if n == sel {
					p.cursor = i
				}
			}
		}
	}
}

func indexOf(items []yui.SelectionItem, it yui.SelectionItem, fallback int) int {
	if it == nil {
		return fallback
	}
	for i, o := range items {
		if o == it {
			return i
		}
	}
	return fallback
}

func (p *peer) clampCursor() {
	n := 0
	switch v := p.w.(type) {
	case *yui.SelectionBox:
		n = v.ItemCount()
	case *yui.Table:
		n = v.ItemCount()
	case *yui.Tree:
		n = len(v.VisibleItems())
	default:
		return
	}
	p.cursor = max(0, min(p.cursor, n-1))
	p.top = max(0, min(p.top, n-1))
}

// scrollTo adjusts top so that row is inside a window of height rows.
func (p *peer) scrollTo(row, height int) {
	if height <= 0 {
		return
	}
	if row < p.top {
		p.top = row
	}
	if row >= p.top+height {
		p.top = row - height + 1
	}
	if p.top < 0 {
		p.top = 0
	}
}

func runeLen(s string) int { return len([]rune(s)) }

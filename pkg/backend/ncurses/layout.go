package ncurses

import (
	"strconv"
	"strings"

	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/ui/runtime"
	"github.com/odvcencio/yui/pkg/ui/theme"
	"github.com/odvcencio/yui/pkg/yui"
)

const (
	minFieldWidth  = 20
	richTextWidth  = 40
	maxListRows    = 8
	wrapLabelWidth = 40
)

// layoutAll computes rects for every open dialog. Main dialogs fill the
// screen; popups are centred at their natural size.
func (b *Backend) layoutAll() {
	b.layoutDirty = false
	b.relayouts++
	screen := runtime.NewRect(0, 0, b.width, b.height)
	for _, win := range b.windows {
		root := win.d.Root()
		if win.d.Type() == yui.PopupDialog {
			nat := b.measure(root)
			w := max(nat.Width+2, runtime.StringWidth(win.d.Title())+6)
			win.rect = screen.Centered(w, nat.Height+2)
		} else {
			win.rect = screen
		}
		win.inner = win.rect.Inset(1, 1, 1, 1)
		if root != nil {
			b.arrange(root, win.inner)
		}
	}
}

func caption(label string) string { return yui.NormalizeLabel(label) }

// captioned adds a caption row above body when label is set.
func captioned(label string, body runtime.Size) runtime.Size {
	if label == "" {
		return body
	}
	return runtime.Size{
		Width:  max(body.Width, runtime.StringWidth(caption(label))),
		Height: body.Height + 1,
	}
}

// bodyRect is r without the caption row.
func bodyRect(label string, r runtime.Rect) runtime.Rect {
	if label == "" {
		return r
	}
	return r.Inset(1, 0, 0, 0)
}

func textSize(text string) runtime.Size {
	lines := strings.Split(text, "\n")
	s := runtime.Size{Height: len(lines)}
	for _, l := range lines {
		s.Width = max(s.Width, runtime.StringWidth(l))
	}
	return s
}

func framed(inner runtime.Size, title string) runtime.Size {
	return runtime.Size{
		Width:  max(inner.Width, runtime.StringWidth(title)+4) + 2,
		Height: inner.Height + 2,
	}
}

func (b *Backend) measureFirst(w yui.Widget) runtime.Size {
	if kids := w.Children(); len(kids) > 0 {
		return b.measure(kids[0])
	}
	return runtime.Size{}
}

// measure returns the natural size of w in cells.
func (b *Backend) measure(w yui.Widget) runtime.Size {
	if w == nil || !w.IsVisible() {
		return runtime.Size{}
	}
	switch v := w.(type) {
	case *yui.Dialog:
		return b.measure(v.Root())
	case *yui.Box:
		var s runtime.Size
		for _, c := range v.Children() {
			cs := b.measure(c)
			if v.Primary() == yui.Horizontal {
				s.Width += cs.Width
				s.Height = max(s.Height, cs.Height)
			} else {
				s.Height += cs.Height
				s.Width = max(s.Width, cs.Width)
			}
		}
		return s
	case *yui.Frame:
		return framed(b.measureFirst(v), caption(v.Label()))
	case *yui.CheckBoxFrame:
		return framed(b.measureFirst(v), checkFrameTitle(v))
	case *yui.AlignmentBox, *yui.ReplacePoint:
		return b.measureFirst(w)
	case *yui.Paned:
		var s runtime.Size
		for _, c := range v.Children() {
			cs := b.measure(c)
			if v.Primary() == yui.Horizontal {
				s.Width += cs.Width
				s.Height = max(s.Height, cs.Height)
			} else {
				s.Height += cs.Height
				s.Width = max(s.Width, cs.Width)
			}
		}
		if v.Primary() == yui.Horizontal {
			s.Width++
		} else {
			s.Height++
		}
		return s
	case *yui.DumbTab:
		child := b.measureFirst(v)
		tabs := 0
		for _, it := range v.Items() {
			tabs += runtime.StringWidth(caption(yui.ItemOf(it).Label())) + 3
		}
		return runtime.Size{Width: max(child.Width, tabs), Height: child.Height + 1}
	case *yui.Label:
		if v.WordWrap() {
			width := min(textSize(v.Value()).Width, wrapLabelWidth)
			return runtime.Size{Width: width, Height: len(markup.Wrap(v.Value(), max(width, 1)))}
		}
		return textSize(v.Value())
	case *yui.InputField:
		return captioned(v.Label(), runtime.Size{Width: minFieldWidth, Height: 1})
	case *yui.MultiLineEdit:
		return captioned(v.Label(), runtime.Size{Width: minFieldWidth + 10, Height: v.DefaultVisibleLines()})
	case *yui.IntField:
		digits := max(len(strconv.Itoa(v.Min())), len(strconv.Itoa(v.Max())))
		return captioned(v.Label(), runtime.Size{Width: digits + 2, Height: 1})
	case *yui.CheckBox:
		return runtime.Size{Width: 4 + runtime.StringWidth(caption(v.Label())), Height: 1}
	case *yui.RadioButton:
		return runtime.Size{Width: 4 + runtime.StringWidth(caption(v.Label())), Height: 1}
	case *yui.PushButton:
		return runtime.Size{Width: 4 + runtime.StringWidth(caption(v.Label())), Height: 1}
	case *yui.ComboBox:
		width := 0
		for _, it := range v.Items() {
			width = max(width, runtime.StringWidth(yui.ItemOf(it).Label()))
		}
		return captioned(v.Label(), runtime.Size{Width: max(width, 8) + 2, Height: 1})
	case *yui.SelectionBox:
		width, rows := 0, 0
		for _, it := range v.Items() {
			if yui.ItemOf(it).Visible() {
				width = max(width, runtime.StringWidth(yui.ItemOf(it).Label()))
				rows++
			}
		}
		if v.MultiSelection() {
			width += 4
		}
		if v.Shrinkable() {
			rows = min(rows, 3)
		}
		return captioned(v.Label(), runtime.Size{Width: max(width, 10) + 2, Height: clampRows(rows) + 2})
	case *yui.Tree:
		width := 0
		items := v.VisibleItems()
		for _, n := range items {
			width = max(width, runtime.StringWidth(n.Label())+2*n.Depth()+2)
		}
		return captioned(v.Label(), runtime.Size{Width: max(width, 10) + 2, Height: clampRows(len(items)) + 2})
	case *yui.Table:
		cols := tableColumns(v)
		width := len(cols) - 1
		for _, c := range cols {
			width += c
		}
		return runtime.Size{Width: max(width, 10) + 2, Height: clampRows(v.ItemCount()) + 3}
	case *yui.ProgressBar:
		return captioned(v.Label(), runtime.Size{Width: minFieldWidth, Height: 1})
	case *yui.Slider:
		digits := max(len(strconv.Itoa(v.Min())), len(strconv.Itoa(v.Max())))
		return captioned(v.Label(), runtime.Size{Width: minFieldWidth + digits + 1, Height: 1})
	case *yui.DateField:
		return captioned(v.Label(), runtime.Size{Width: 10, Height: 1})
	case *yui.TimeField:
		return captioned(v.Label(), runtime.Size{Width: 8, Height: 1})
	case *yui.RichText:
		lines := peerOf(v).layoutRichText(richTextWidth)
		rows := min(len(lines), 10)
		if v.Shrinkable() {
			rows = min(rows, 3)
		}
		return runtime.Size{Width: richTextWidth, Height: max(rows, 1)}
	case *yui.LogView:
		return framed(runtime.Size{Width: minFieldWidth + 10, Height: v.VisibleLines()}, caption(v.Label()))
	case *yui.Image:
		w, h := b.imageCells(v)
		return runtime.Size{Width: w, Height: h}
	case *yui.MenuBar:
		width := 0
		for _, m := range v.Menus() {
			if m.Visible() {
				width += runtime.StringWidth(caption(m.Label())) + 2
			}
		}
		return runtime.Size{Width: width, Height: 1}
	case *yui.Spacing:
		vertical := v.Primary() == yui.Vertical
		n := b.cfg.CellsForPixels(v.Size(), vertical)
		if vertical {
			return runtime.Size{Height: n}
		}
		return runtime.Size{Width: n}
	}
	return runtime.Size{}
}

func clampRows(n int) int { return max(1, min(n, maxListRows)) }

func checkFrameTitle(f *yui.CheckBoxFrame) string {
	sym := theme.Symbols.CheckOff
	if f.Value() {
		sym = theme.Symbols.CheckOn
	}
	return sym + " " + caption(f.Label())
}

// tableColumns returns the width of each column.
func tableColumns(t *yui.Table) []int {
	cols := t.Header().Columns()
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runtime.StringWidth(c.Header)
		if c.CheckBox {
			widths[i] = max(widths[i], runtime.StringWidth(theme.Symbols.CheckOn))
		}
	}
	for _, row := range t.Rows() {
		for i, cell := range row.Cells() {
			if i < len(widths) {
				widths[i] = max(widths[i], runtime.StringWidth(cell.Label()))
			}
		}
	}
	return widths
}

// arrange assigns r to w and lays out its children inside it.
func (b *Backend) arrange(w yui.Widget, r runtime.Rect) {
	if !w.IsVisible() {
		r = runtime.ZeroRect
	}
	if p := peerOf(w); p != nil {
		p.rect = r
	}
	if r.Empty() {
		for _, c := range w.Children() {
			b.arrange(c, runtime.ZeroRect)
		}
		return
	}
	switch v := w.(type) {
	case *yui.Box:
		b.arrangeBox(v, r)
	case *yui.Frame, *yui.CheckBoxFrame:
		for _, c := range w.Children() {
			b.arrange(c, r.Inset(1, 1, 1, 1))
		}
	case *yui.AlignmentBox:
		for _, c := range w.Children() {
			nat := b.measure(c)
			width := yui.AlignedSize(v.Alignment(yui.Horizontal), r.Width, nat.Width, c.Stretchable(yui.Horizontal))
			height := yui.AlignedSize(v.Alignment(yui.Vertical), r.Height, nat.Height, c.Stretchable(yui.Vertical))
			x := r.X + yui.AlignOffset(v.Alignment(yui.Horizontal), r.Width, width)
			y := r.Y + yui.AlignOffset(v.Alignment(yui.Vertical), r.Height, height)
			b.arrange(c, runtime.NewRect(x, y, width, height))
		}
	case *yui.Paned:
		b.arrangePaned(v, r)
	case *yui.DumbTab:
		for _, c := range w.Children() {
			b.arrange(c, r.Inset(1, 0, 0, 0))
		}
	default:
		for _, c := range w.Children() {
			b.arrange(c, r)
		}
	}
}

// arrangeBox gives each child its natural size along the primary axis
// plus a share of the extra space. Across the box, stretchable children
// fill it and the rest are centred.
func (b *Backend) arrangeBox(box *yui.Box, r runtime.Rect) {
	dim := box.Primary()
	horizontal := dim == yui.Horizontal
	children := box.Children()
	mins := make([]int, len(children))
	weights := make([]int, len(children))
	stretch := make([]bool, len(children))
	naturals := make([]runtime.Size, len(children))
	for i, c := range children {
		if !c.IsVisible() {
			continue
		}
		naturals[i] = b.measure(c)
		mins[i] = naturals[i].Along(horizontal)
		weights[i] = c.Weight(dim)
		stretch[i] = c.Stretchable(dim)
	}
	total, across := r.Height, r.Width
	if horizontal {
		total, across = r.Width, r.Height
	}
	sizes := yui.BoxSizes(total, mins, weights, stretch)

	pos := 0
	for i, c := range children {
		size := max(0, min(sizes[i], total-pos))
		cross := min(naturals[i].Along(!horizontal), across)
		if c.Stretchable(dim.Other()) {
			cross = across
		}
		offset := yui.AlignOffset(yui.AlignCenter, across, cross)
		if horizontal {
			b.arrange(c, runtime.NewRect(r.X+pos, r.Y+offset, size, cross))
		} else {
			b.arrange(c, runtime.NewRect(r.X+offset, r.Y+pos, cross, size))
		}
		pos += size
	}
}

// arrangePaned splits r once by the children's weights and keeps the split
// until the pane is resized.
func (b *Backend) arrangePaned(p *yui.Paned, r runtime.Rect) {
	kids := p.Children()
	pp := peerOf(p)
	horizontal := p.Primary() == yui.Horizontal
	total := r.Height
	if horizontal {
		total = r.Width
	}
	total--
	if pp != nil && (pp.splitTotal != total || pp.split == 0) {
		if len(kids) == 2 {
			m0 := b.measure(kids[0]).Along(horizontal)
			m1 := b.measure(kids[1]).Along(horizontal)
			if first, _, ok := p.InitialSizes(total, m0, m1); ok {
				pp.split = first
				pp.splitTotal = total
			}
		} else {
			pp.split = total
			pp.splitTotal = total
		}
	}
	first := total
	if pp != nil {
		first = pp.split
	}
	for i, c := range kids {
		var cr runtime.Rect
		switch {
		case i == 0 && horizontal:
			cr = runtime.NewRect(r.X, r.Y, first, r.Height)
		case i == 0:
			cr = runtime.NewRect(r.X, r.Y, r.Width, first)
		case horizontal:
			cr = runtime.NewRect(r.X+first+1, r.Y, total-first, r.Height)
		default:
			cr = runtime.NewRect(r.X, r.Y+first+1, r.Width, total-first)
		}
		b.arrange(c, cr)
	}
}

// layoutRichText parses and wraps the widget text for width, caching the
// result until the text or width changes.
func (p *peer) layoutRichText(width int) []markup.Line {
	if p == nil {
		return nil
	}
	rt, ok := p.w.(*yui.RichText)
	if !ok {
		return nil
	}
	if p.doc == nil {
		format := markup.FormatPlain
		if !rt.PlainText() {
			format = markup.Detect(rt.Value())
		}
		doc, err := markup.Parse(rt.Value(), format)
		if err != nil {
			p.b.log.Debug(logging.CategoryWidget, "markup_failed", err.Error(), nil)
			doc = markup.ParsePlain(rt.Value())
		}
		p.doc = doc
		p.docWidth = -1
	}
	if p.docWidth != width {
		p.lines = p.doc.Layout(width)
		p.docWidth = width
	}
	return p.lines
}

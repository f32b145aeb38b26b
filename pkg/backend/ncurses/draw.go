package ncurses

import (
	"strconv"
	"strings"

	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/ui/runtime"
	"github.com/odvcencio/yui/pkg/ui/term"
	"github.com/odvcencio/yui/pkg/ui/theme"
	"github.com/odvcencio/yui/pkg/yui"
)

// painter draws one window into the backend buffer.
type painter struct {
	b      *Backend
	buf    *runtime.Buffer
	win    *window
	th     *theme.Theme
	active bool
	focus  yui.Widget

	cursorX, cursorY int
	cursor           bool
}

// paint redraws the whole dialog stack, bottom window first.
func (b *Backend) paint() {
	b.buf.Clear(b.themeFor(yui.ColorNormal).Background)
	top := b.top()
	var cur *painter
	for _, win := range b.windows {
		win.hits.Clear()
		p := &painter{b: b, buf: b.buf, win: win, th: win.theme, active: win == top}
		if p.active {
			p.focus = win.d.Focused()
		}
		p.window()
		if p.active {
			cur = p
		}
	}
	if b.menu != nil {
		b.paintMenu()
	}
	b.buf.Flush(b.term)
	if cur != nil && cur.cursor && b.menu == nil {
		b.term.SetCursorPos(cur.cursorX, cur.cursorY)
	} else {
		b.term.HideCursor()
	}
	b.term.Show()
	b.frames++
}

func (p *painter) window() {
	r := p.win.rect
	if r.Empty() {
		return
	}
	p.buf.Fill(r, ' ', p.th.Background)
	box := runtime.SingleBox
	if p.win.d.Type() == yui.PopupDialog {
		box = runtime.DoubleBox
		shadow := runtime.NewRect(r.X+1, r.Y+r.Height, r.Width, 1)
		p.buf.Fill(shadow, ' ', p.th.Shadow)
		p.buf.Fill(runtime.NewRect(r.X+r.Width, r.Y+1, 1, r.Height), ' ', p.th.Shadow)
	}
	title := p.win.d.Title()
	if title == "" && p.win.d.Type() == yui.MainDialog {
		title = p.b.desktop.title
	}
	p.buf.DrawFrame(r, box, title, p.th.Title)
	if root := p.win.d.Root(); root != nil {
		p.widget(root)
	}
}

func (p *painter) focused(w yui.Widget) bool { return p.focus != nil && p.focus == w }

// text picks the style for plain text of w.
func (p *painter) text(w yui.Widget) term.Style {
	if !w.EffectivelyEnabled() {
		return p.th.Disabled
	}
	return p.th.Text
}

func (p *painter) input(w yui.Widget) term.Style {
	switch {
	case !w.EffectivelyEnabled():
		return p.th.Disabled
	case p.focused(w):
		return p.th.InputFocused
	}
	return p.th.Input
}

func (p *painter) frame(w yui.Widget) term.Style {
	if p.focused(w) {
		return p.th.FrameFocused
	}
	if !w.EffectivelyEnabled() {
		return p.th.Disabled
	}
	return p.th.Frame
}

func (p *painter) hit(w yui.Widget, r runtime.Rect) {
	if w.EffectivelyEnabled() {
		p.win.hits.Add(w, r)
	}
}

func (p *painter) setCursor(x, y int) {
	p.cursorX, p.cursorY, p.cursor = x, y, true
}

// caption draws the label row of a captioned widget and returns the body.
func (p *painter) caption(w yui.Widget, label string, r runtime.Rect) runtime.Rect {
	if label == "" {
		return r
	}
	p.buf.SetStringClipped(r.X, r.Y, r.Width, caption(label), p.text(w))
	return bodyRect(label, r)
}

func (p *painter) widget(w yui.Widget) {
	pr := peerOf(w)
	if pr == nil || !w.IsVisible() || pr.rect.Empty() {
		return
	}
	r := pr.rect
	switch v := w.(type) {
	case *yui.Frame:
		p.buf.DrawFrame(r, runtime.SingleBox, caption(v.Label()), p.frame(v))
	case *yui.CheckBoxFrame:
		p.buf.DrawFrame(r, runtime.SingleBox, checkFrameTitle(v), p.frame(v))
		p.hit(v, runtime.NewRect(r.X+2, r.Y, runtime.StringWidth(checkFrameTitle(v))+2, 1))
	case *yui.Paned:
		p.paned(v, pr)
	case *yui.DumbTab:
		p.tabs(v, pr)
	case *yui.Label:
		p.label(v, r)
	case *yui.InputField:
		p.inputField(v, pr)
	case *yui.MultiLineEdit:
		p.multiLine(v, pr)
	case *yui.IntField:
		body := p.caption(v, v.Label(), r)
		text := strconv.Itoa(v.Value())
		if p.focused(v) {
			text = pr.edit
			p.setCursor(body.X+1+runtime.StringWidth(text), body.Y)
		}
		p.buf.Fill(runtime.NewRect(body.X, body.Y, body.Width, 1), ' ', p.input(v))
		p.buf.SetStringClipped(body.X+1, body.Y, body.Width-2, text, p.input(v))
		p.hit(v, r)
	case *yui.CheckBox:
		sym := theme.Symbols.CheckOff
		switch v.CheckState() {
		case yui.Checked:
			sym = theme.Symbols.CheckOn
		case yui.DontCare:
			sym = theme.Symbols.CheckDontCare
		}
		p.toggle(v, sym, v.Label(), r)
	case *yui.RadioButton:
		sym := theme.Symbols.RadioOff
		if v.Value() {
			sym = theme.Symbols.RadioOn
		}
		p.toggle(v, sym, v.Label(), r)
	case *yui.PushButton:
		p.button(v, r)
	case *yui.ComboBox:
		p.combo(v, pr)
	case *yui.SelectionBox:
		p.selectionBox(v, pr)
	case *yui.Tree:
		p.tree(v, pr)
	case *yui.Table:
		p.table(v, pr)
	case *yui.ProgressBar:
		p.progress(v, r)
	case *yui.Slider:
		p.slider(v, r)
	case *yui.DateField:
		year, month, day := v.Parts()
		p.segments(v, v.Label(), dateSegments(v.Order(), year, month, day), pr)
	case *yui.TimeField:
		hour, minute, second := v.Parts()
		p.segments(v, v.Label(), timeSegments(hour, minute, second), pr)
	case *yui.RichText:
		p.richText(v, pr)
	case *yui.LogView:
		p.logView(v, pr)
	case *yui.Image:
		p.image(v, r)
	case *yui.MenuBar:
		p.menuBar(v, pr)
	}
	for _, c := range w.Children() {
		p.widget(c)
	}
}

func (p *painter) paned(v *yui.Paned, pr *peer) {
	r := pr.rect
	if v.Primary() == yui.Horizontal {
		x := r.X + pr.split
		for y := r.Y; y < r.Y+r.Height; y++ {
			p.buf.Set(x, y, theme.Symbols.PaneSplitH, p.th.Frame)
		}
		return
	}
	y := r.Y + pr.split
	for x := r.X; x < r.X+r.Width; x++ {
		p.buf.Set(x, y, theme.Symbols.PaneSplitV, p.th.Frame)
	}
}

func (p *painter) tabs(v *yui.DumbTab, pr *peer) {
	r := pr.rect
	pr.tabs = pr.tabs[:0]
	current := v.CurrentTab()
	x := r.X
	for _, si := range v.Items() {
		it := yui.ItemOf(si)
		if !it.Visible() {
			continue
		}
		label := " " + caption(it.Label()) + " "
		style := p.th.Item
		switch {
		case !it.Enabled() || !v.EffectivelyEnabled():
			style = p.th.Disabled
		case it == current && p.focused(v):
			style = p.th.SelectedFocused
		case it == current:
			style = p.th.TabActive
		}
		n := p.buf.SetStringClipped(x, r.Y, r.X+r.Width-x, label, style)
		pr.tabs = append(pr.tabs, span[*yui.Item]{x: x - r.X, width: n, v: it})
		x += n + 1
	}
	p.hit(v, runtime.NewRect(r.X, r.Y, r.Width, 1))
}

func (p *painter) label(v *yui.Label, r runtime.Rect) {
	style := p.text(v)
	if v.IsHeading() && v.EffectivelyEnabled() {
		style = p.th.Heading
	}
	if v.IsOutputField() {
		p.buf.Fill(r, ' ', p.th.Input)
		style = p.th.Input
	}
	lines := strings.Split(v.Value(), "\n")
	if v.WordWrap() {
		lines = markup.Wrap(v.Value(), r.Width)
	}
	for i, line := range lines {
		if i >= r.Height {
			break
		}
		p.buf.SetStringClipped(r.X, r.Y+i, r.Width, line, style)
	}
}

// visibleText returns the part of text around cursor that fits width,
// and the cursor column inside it.
func visibleText(text []rune, cursor, width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	start := 0
	if cursor >= width {
		start = cursor - width + 1
	}
	end := min(len(text), start+width)
	return string(text[start:end]), cursor - start
}

func (p *painter) inputField(v *yui.InputField, pr *peer) {
	body := p.caption(v, v.Label(), pr.rect)
	line := runtime.NewRect(body.X, body.Y, body.Width, 1)
	p.buf.Fill(line, ' ', p.input(v))
	text := []rune(v.Value())
	if v.PasswordMode() {
		text = []rune(strings.Repeat(string(theme.Symbols.PasswordMask), len(text)))
	}
	shown, col := visibleText(text, min(pr.cursor, len(text)), body.Width)
	p.buf.SetStringClipped(body.X, body.Y, body.Width, shown, p.input(v))
	if p.focused(v) {
		p.setCursor(body.X+runtime.StringWidth(string([]rune(shown)[:col])), body.Y)
	}
	p.hit(v, pr.rect)
}

// cursorLine returns the line and column of a rune offset in text.
func cursorLine(text []rune, cursor int) (line, col int) {
	for i := 0; i < cursor && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

func (p *painter) multiLine(v *yui.MultiLineEdit, pr *peer) {
	body := p.caption(v, v.Label(), pr.rect)
	p.buf.Fill(body, ' ', p.input(v))
	text := []rune(v.Value())
	line, col := cursorLine(text, pr.cursor)
	pr.scrollTo(line, body.Height)
	for i, l := range strings.Split(string(text), "\n") {
		y := i - pr.top
		if y < 0 {
			continue
		}
		if y >= body.Height {
			break
		}
		shown := l
		if i == line {
			shown, col = visibleText([]rune(l), col, body.Width)
		}
		p.buf.SetStringClipped(body.X, body.Y+y, body.Width, shown, p.input(v))
	}
	if p.focused(v) {
		p.setCursor(body.X+col, body.Y+line-pr.top)
	}
	p.hit(v, pr.rect)
}

func (p *painter) toggle(w yui.Widget, sym, label string, r runtime.Rect) {
	style := p.text(w)
	if p.focused(w) {
		style = p.th.ButtonFocused
	}
	n := p.buf.SetStringClipped(r.X, r.Y, r.Width, sym+" ", p.text(w))
	p.buf.SetStringClipped(r.X+n, r.Y, r.Width-n, caption(label), style)
	if p.focused(w) {
		p.setCursor(r.X+1, r.Y)
	}
	p.hit(w, r)
}

func (p *painter) button(v *yui.PushButton, r runtime.Rect) {
	style := p.th.Button
	switch {
	case !v.EffectivelyEnabled():
		style = p.th.Disabled
	case p.focused(v):
		style = p.th.ButtonFocused
	case v.IsDefault():
		style = p.th.ButtonDefault
	}
	label := "[ " + caption(v.Label()) + " ]"
	x := r.X + max(0, (r.Width-runtime.StringWidth(label))/2)
	p.buf.SetStringClipped(x, r.Y, r.X+r.Width-x, label, style)
	p.hit(v, r)
}

func (p *painter) combo(v *yui.ComboBox, pr *peer) {
	body := p.caption(v, v.Label(), pr.rect)
	line := runtime.NewRect(body.X, body.Y, body.Width, 1)
	p.buf.Fill(line, ' ', p.input(v))
	width := max(0, body.Width-2)
	text := []rune(v.Value())
	shown, col := visibleText(text, min(pr.cursor, len(text)), width)
	p.buf.SetStringClipped(body.X, body.Y, width, shown, p.input(v))
	p.buf.SetString(body.X+body.Width-1, body.Y, theme.Symbols.ComboArrow, p.input(v))
	if p.focused(v) && v.Editable() {
		p.setCursor(body.X+col, body.Y)
	}
	p.hit(v, pr.rect)
}

// list draws rows inside a framed box and keeps the cursor row visible.
// It returns the interior rect.
func (p *painter) list(w yui.Widget, label string, pr *peer, rows int, header bool) runtime.Rect {
	body := p.caption(w, label, pr.rect)
	p.buf.DrawBox(body, p.frame(w))
	inner := body.Inset(1, 1, 1, 1)
	if header {
		inner = inner.Inset(1, 0, 0, 0)
	}
	pr.scrollTo(pr.cursor, inner.Height)
	if pr.top > 0 {
		p.buf.SetString(body.X+body.Width-2, body.Y, theme.Symbols.ScrollUp, p.frame(w))
	}
	if pr.top+inner.Height < rows {
		p.buf.SetString(body.X+body.Width-2, body.Y+body.Height-1, theme.Symbols.ScrollDown, p.frame(w))
	}
	p.hit(w, pr.rect)
	return inner
}

func (p *painter) row(w yui.Widget, r runtime.Rect, y int, text string, selected, current bool) {
	style := p.th.Item
	switch {
	case !w.EffectivelyEnabled():
		style = p.th.Disabled
	case current && p.focused(w):
		style = p.th.SelectedFocused
	case selected:
		style = p.th.Selected
	}
	line := runtime.NewRect(r.X, y, r.Width, 1)
	p.buf.Fill(line, ' ', style)
	p.buf.SetStringClipped(r.X, y, r.Width, text, style)
	if current && p.focused(w) {
		p.setCursor(r.X, y)
	}
}

func (p *painter) selectionBox(v *yui.SelectionBox, pr *peer) {
	items := v.Items()
	inner := p.list(v, v.Label(), pr, len(items), false)
	for i := pr.top; i < len(items) && i-pr.top < inner.Height; i++ {
		it := yui.ItemOf(items[i])
		text := it.Label()
		if v.MultiSelection() {
			sym := theme.Symbols.CheckOff
			if it.Selected() {
				sym = theme.Symbols.CheckOn
			}
			text = sym + " " + text
		}
		p.row(v, inner, inner.Y+i-pr.top, text, it.Selected() && !v.MultiSelection(), i == pr.cursor)
	}
}

func (p *painter) tree(v *yui.Tree, pr *peer) {
	items := v.VisibleItems()
	inner := p.list(v, v.Label(), pr, len(items), false)
	for i := pr.top; i < len(items) && i-pr.top < inner.Height; i++ {
		n := items[i]
		sym := theme.Symbols.TreeLeaf
		switch {
		case len(n.Children()) > 0 && n.IsOpen():
			sym = theme.Symbols.TreeOpen
		case len(n.Children()) > 0:
			sym = theme.Symbols.TreeClosed
		}
		text := strings.Repeat("  ", n.Depth()) + sym + n.Label()
		if v.MultiSelection() {
			check := theme.Symbols.CheckOff
			if n.Selected() {
				check = theme.Symbols.CheckOn
			}
			text = strings.Repeat("  ", n.Depth()) + sym + check + " " + n.Label()
		}
		p.row(v, inner, inner.Y+i-pr.top, text, n.Selected() && !v.MultiSelection(), i == pr.cursor)
	}
}

func (p *painter) table(v *yui.Table, pr *peer) {
	rows := v.Rows()
	inner := p.list(v, "", pr, len(rows), true)
	widths := tableColumns(v)
	cols := v.Header().Columns()
	cell := func(y int, texts []string, aligns []yui.Alignment, style term.Style) {
		x := inner.X
		for i, t := range texts {
			if i >= len(widths) || x >= inner.X+inner.Width {
				break
			}
			w := min(widths[i], inner.X+inner.Width-x)
			off := 0
			if i < len(aligns) {
				off = yui.AlignOffset(aligns[i], w, runtime.StringWidth(t))
			}
			p.buf.SetStringClipped(x+off, y, w-off, t, style)
			x += widths[i] + 1
		}
	}
	headers := make([]string, len(cols))
	aligns := make([]yui.Alignment, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
		aligns[i] = c.Align
	}
	p.buf.Fill(runtime.NewRect(inner.X, inner.Y-1, inner.Width, 1), ' ', p.th.ColumnHeader)
	cell(inner.Y-1, headers, aligns, p.th.ColumnHeader)
	for i := pr.top; i < len(rows) && i-pr.top < inner.Height; i++ {
		row := rows[i]
		texts := make([]string, len(cols))
		for c := range cols {
			cl := row.Cell(c)
			switch {
			case cl == nil:
			case cols[c].CheckBox || cl.Checkable():
				texts[c] = theme.Symbols.CheckOff
				if cl.Checked() {
					texts[c] = theme.Symbols.CheckOn
				}
			default:
				texts[c] = cl.Label()
			}
		}
		y := inner.Y + i - pr.top
		p.row(v, inner, y, "", row.Selected(), i == pr.cursor)
		style := p.th.Item
		switch {
		case !v.EffectivelyEnabled():
			style = p.th.Disabled
		case i == pr.cursor && p.focused(v):
			style = p.th.SelectedFocused
		case row.Selected():
			style = p.th.Selected
		}
		cell(y, texts, aligns, style)
		if i == pr.cursor && p.focused(v) && pr.seg > 0 {
			x := inner.X
			for c := 0; c < pr.seg && c < len(widths); c++ {
				x += widths[c] + 1
			}
			p.setCursor(x, y)
		}
	}
}

// bar fills width cells with filled cells proportional to part of whole.
func (p *painter) bar(x, y, width, part, whole int, fill, empty rune) {
	filled := 0
	if whole > 0 {
		filled = width * part / whole
	}
	for i := 0; i < width; i++ {
		if i < filled {
			p.buf.Set(x+i, y, fill, p.th.ProgressFill)
		} else {
			p.buf.Set(x+i, y, empty, p.th.Progress)
		}
	}
}

func (p *painter) progress(v *yui.ProgressBar, r runtime.Rect) {
	body := p.caption(v, v.Label(), r)
	pct := strconv.Itoa(v.Percent()) + "%"
	width := max(0, body.Width-len(pct)-1)
	p.bar(body.X, body.Y, width, v.Value(), v.Max(), theme.Symbols.ProgressFill, theme.Symbols.ProgressEmpty)
	p.buf.SetString(body.X+width+1, body.Y, pct, p.text(v))
}

func (p *painter) slider(v *yui.Slider, r runtime.Rect) {
	body := p.caption(v, v.Label(), r)
	value := strconv.Itoa(v.Value())
	digits := max(len(strconv.Itoa(v.Min())), len(strconv.Itoa(v.Max())))
	width := max(1, body.Width-digits-1)
	style := p.text(v)
	if p.focused(v) {
		style = p.th.InputFocused
	}
	for i := 0; i < width; i++ {
		p.buf.Set(body.X+i, body.Y, theme.Symbols.SliderTrack, style)
	}
	pos := 0
	if span := v.Max() - v.Min(); span > 0 {
		pos = (width - 1) * (v.Value() - v.Min()) / span
	}
	p.buf.Set(body.X+pos, body.Y, theme.Symbols.SliderThumb, style)
	p.buf.SetString(body.X+width+1, body.Y, runtime.PadRight(value, digits), p.text(v))
	if p.focused(v) {
		p.setCursor(body.X+pos, body.Y)
	}
	p.hit(v, r)
}

func (p *painter) segments(w yui.Widget, label string, segs []segment, pr *peer) {
	body := p.caption(w, label, pr.rect)
	x := body.X
	for i, s := range segs {
		style := p.input(w)
		if p.focused(w) && i == pr.seg {
			style = p.th.SelectedFocused
			p.setCursor(x, body.Y)
		}
		x += p.buf.SetStringClipped(x, body.Y, body.X+body.Width-x, s.text(), style)
		if s.sep != "" {
			x += p.buf.SetStringClipped(x, body.Y, body.X+body.Width-x, s.sep, p.text(w))
		}
	}
	p.hit(w, pr.rect)
}

func (p *painter) richText(v *yui.RichText, pr *peer) {
	r := pr.rect
	lines := pr.layoutRichText(r.Width)
	if pr.follow {
		pr.top = max(0, len(lines)-r.Height)
	}
	pr.top = max(0, min(pr.top, len(lines)-r.Height))
	links := 0
	for i, line := range lines {
		y := i - pr.top
		if y >= r.Height {
			break
		}
		x := r.X + line.Indent
		if line.Rule {
			if y >= 0 {
				for c := r.X; c < r.X+r.Width; c++ {
					p.buf.Set(c, r.Y+y, theme.Symbols.SliderTrack, p.text(v))
				}
			}
			continue
		}
		for _, s := range line.Spans {
			style := spanStyle(p.th, p.text(v), s)
			if s.Attr&markup.LinkAttr != 0 {
				if links == pr.link && p.focused(v) {
					style = p.th.SelectedFocused
				}
				links++
			}
			if y >= 0 {
				x += p.buf.SetStringClipped(x, r.Y+y, r.X+r.Width-x, s.Text, style)
			}
		}
	}
	p.hit(v, r)
}

func spanStyle(th *theme.Theme, base term.Style, s markup.Span) term.Style {
	style := base
	switch {
	case s.Attr&markup.LinkAttr != 0:
		style = th.Link
	case s.Attr&markup.Heading != 0:
		style = th.Heading
	}
	if s.Attr&markup.Bold != 0 {
		style = style.Bold(true)
	}
	if s.Attr&markup.Underline != 0 {
		style = style.Underline(true)
	}
	if s.Attr&markup.Italic != 0 {
		style = style.Attr(term.AttrItalic, true)
	}
	if s.Attr&markup.Code != 0 {
		style = style.Reverse(true)
	}
	return style
}

func (p *painter) logView(v *yui.LogView, pr *peer) {
	r := pr.rect
	p.buf.DrawFrame(r, runtime.SingleBox, caption(v.Label()), p.frame(v))
	inner := r.Inset(1, 1, 1, 1)
	lines := v.LineSlice()
	last := max(0, len(lines)-inner.Height)
	if pr.follow {
		pr.top = last
	}
	pr.top = max(0, min(pr.top, last))
	for i := 0; i < inner.Height && pr.top+i < len(lines); i++ {
		p.buf.SetStringClipped(inner.X, inner.Y+i, inner.Width, lines[pr.top+i], p.text(v))
	}
	p.hit(v, r)
}

func (p *painter) image(v *yui.Image, r runtime.Rect) {
	natW, natH := p.b.imageCells(v)
	w, h := yui.ImageSize(r.Width, r.Height, natW, natH,
		v.Stretchable(yui.Horizontal), v.Stretchable(yui.Vertical), v.AutoScale())
	r = runtime.NewRect(r.X+(r.Width-w)/2, r.Y+(r.Height-h)/2, w, h)
	p.buf.Fill(r, theme.Symbols.ImagePlaceholder, p.th.Disabled)
	name := v.Path()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if name != "" && r.Height > 0 {
		name = runtime.Truncate(name, r.Width)
		x := r.X + (r.Width-runtime.StringWidth(name))/2
		p.buf.SetString(x, r.Y+r.Height/2, name, p.th.Text)
	}
}

func (p *painter) menuBar(v *yui.MenuBar, pr *peer) {
	r := pr.rect
	p.buf.Fill(runtime.NewRect(r.X, r.Y, r.Width, 1), ' ', p.th.MenuBar)
	pr.menus = pr.menus[:0]
	x := r.X
	var open *yui.MenuItem
	if m := p.b.menu; m != nil && m.bar == v && len(m.path) > 0 {
		open = m.path[0]
	}
	for _, m := range v.Menus() {
		if !m.Visible() {
			continue
		}
		style := p.th.MenuBar
		switch {
		case !m.EffectivelyEnabled() || !v.EffectivelyEnabled():
			style = p.th.Disabled
		case m == open:
			style = p.th.MenuSelected
		}
		n := p.buf.SetStringClipped(x, r.Y, r.X+r.Width-x, " "+caption(m.Label())+" ", style)
		pr.menus = append(pr.menus, span[*yui.MenuItem]{x: x - r.X, width: n, v: m})
		x += n
	}
	p.hit(v, r)
}

// paintMenu draws the open dropdown chain over everything else.
func (b *Backend) paintMenu() {
	m := b.menu
	pr := peerOf(m.bar)
	if pr == nil || m.win == nil {
		return
	}
	th := m.win.theme
	m.rects = m.rects[:0]
	x, y := pr.rect.X, pr.rect.Y+1
	for _, s := range pr.menus {
		if len(m.path) > 0 && s.v == m.path[0] {
			x += s.x
		}
	}
	for level, menu := range m.path {
		items := visibleMenuItems(menu)
		width := 4
		for _, it := range items {
			width = max(width, runtime.StringWidth(caption(it.Label()))+6)
		}
		r := runtime.NewRect(x, y, width+2, len(items)+2)
		if over := r.X + r.Width - b.width; over > 0 {
			r.X = max(0, r.X-over)
		}
		m.rects = append(m.rects, r)
		b.buf.Fill(r, ' ', th.MenuItem)
		b.buf.DrawBox(r, th.MenuItem)
		for i, it := range items {
			row := r.Y + 1 + i
			if it.IsSeparator() {
				for c := r.X + 1; c < r.X+r.Width-1; c++ {
					b.buf.Set(c, row, theme.Symbols.PaneSplitV, th.MenuItem)
				}
				continue
			}
			style := th.MenuItem
			switch {
			case !it.EffectivelyEnabled():
				style = th.Disabled
			case level < len(m.cursor) && i == m.cursor[level]:
				style = th.MenuSelected
			}
			b.buf.Fill(runtime.NewRect(r.X+1, row, r.Width-2, 1), ' ', style)
			mark := "  "
			if it.Checkable() && it.Checked() {
				mark = theme.Symbols.MenuCheck + " "
			}
			b.buf.SetStringClipped(r.X+1, row, r.Width-2, mark+caption(it.Label()), style)
			if it.IsMenu() {
				b.buf.SetString(r.X+r.Width-3, row, theme.Symbols.SubmenuArrow, style)
			}
		}
		if level < len(m.cursor) {
			x = r.X + r.Width - 1
			y = r.Y + 1 + m.cursor[level]
		}
	}
}

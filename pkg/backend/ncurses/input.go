package ncurses

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/ui/runtime"
	"github.com/odvcencio/yui/pkg/ui/terminal"
	"github.com/odvcencio/yui/pkg/yui"
)

// menuState tracks an open dropdown chain. path[0] is the top-level menu,
// cursor[i] the highlighted row of path[i].
type menuState struct {
	bar    *yui.MenuBar
	win    *window
	path   []*yui.MenuItem
	cursor []int
	rects  []runtime.Rect
}

func (b *Backend) closeMenu() {
	if b.menu != nil {
		b.menu = nil
		b.dirty = true
	}
}

func (b *Backend) openMenu(win *window, bar *yui.MenuBar, menu *yui.MenuItem) {
	if menu == nil || !menu.EffectivelyEnabled() {
		return
	}
	b.menu = &menuState{bar: bar, win: win}
	b.pushMenu(menu)
}

func (b *Backend) pushMenu(menu *yui.MenuItem) {
	m := b.menu
	m.path = append(m.path, menu)
	m.cursor = append(m.cursor, nextMenuRow(visibleMenuItems(menu), -1, 1))
	b.dirty = true
}

func visibleMenuItems(menu *yui.MenuItem) []*yui.MenuItem {
	var out []*yui.MenuItem
	for _, c := range menu.Children() {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

// nextMenuRow steps from row in dir, skipping separators and disabled items.
func nextMenuRow(items []*yui.MenuItem, row, dir int) int {
	n := len(items)
	for i := 1; i <= n; i++ {
		r := ((row+dir*i)%n + n) % n
		if !items[r].IsSeparator() && items[r].EffectivelyEnabled() {
			return r
		}
	}
	return max(row, 0)
}

func isRune(ev terminal.KeyEvent, r rune) bool {
	return ev.Key == terminal.KeyRune && ev.Rune == r && !ev.Ctrl && !ev.Alt
}

func isText(ev terminal.KeyEvent) bool {
	return ev.Key == terminal.KeyRune && !ev.Ctrl && !ev.Alt && unicode.IsPrint(ev.Rune)
}

// handleKey runs dialog-level bindings first, then the focused widget,
// then default-button activation.
func (b *Backend) handleKey(_ *yui.Dialog, ev terminal.KeyEvent) {
	win := b.top()
	if win == nil {
		return
	}
	d := win.d
	if b.menu != nil {
		b.menuKey(ev)
		return
	}
	switch ev.Key {
	case terminal.KeyF10, terminal.KeyCtrlC, terminal.KeyEscape:
		d.PostEvent(yui.NewCancelEvent())
		return
	case terminal.KeyTab:
		d.FocusNext(false)
		return
	case terminal.KeyBacktab:
		d.FocusNext(true)
		return
	case terminal.KeyF9:
		if bar := firstMenuBar(d); bar != nil {
			b.openMenu(win, bar, firstEnabledMenu(bar))
			return
		}
	}
	focus := d.Focused()
	if focus != nil && focus.KeyEvents() {
		d.PostEvent(yui.NewKeyEvent(focus, ev.Name()))
		return
	}
	if focus != nil && focus.EffectivelyEnabled() && b.widgetKey(win, focus, ev) {
		return
	}
	_, editing := focus.(yui.TextEditor)
	switch {
	case ev.Key == terminal.KeyEnter, !editing && isRune(ev, ' '):
		d.ActivateDefault()
	case !editing && (isRune(ev, 'q') || isRune(ev, 'Q')):
		d.PostEvent(yui.NewCancelEvent())
	}
}

func firstMenuBar(d *yui.Dialog) *yui.MenuBar {
	for _, w := range d.FindWidgets(func(w yui.Widget) bool {
		_, ok := w.(*yui.MenuBar)
		return ok && yui.EffectivelyVisible(w) && w.EffectivelyEnabled()
	}) {
		return w.(*yui.MenuBar)
	}
	return nil
}

func firstEnabledMenu(bar *yui.MenuBar) *yui.MenuItem {
	for _, m := range bar.Menus() {
		if m.Visible() && m.EffectivelyEnabled() {
			return m
		}
	}
	return nil
}

// widgetKey feeds ev to w and reports whether w consumed it.
func (b *Backend) widgetKey(win *window, w yui.Widget, ev terminal.KeyEvent) bool {
	p := peerOf(w)
	if p == nil {
		return false
	}
	activate := ev.Key == terminal.KeyEnter || isRune(ev, ' ')
	switch v := w.(type) {
	case *yui.PushButton:
		if activate {
			v.Activate()
			return true
		}
	case *yui.CheckBox:
		if isRune(ev, ' ') {
			v.UserToggle()
			return true
		}
	case *yui.RadioButton:
		if isRune(ev, ' ') {
			v.UserSelect()
			return true
		}
	case *yui.InputField:
		text, cursor, changed, ok := editText([]rune(v.Value()), p.cursor, ev, false)
		if changed {
			v.UserSetValue(string(text))
		}
		p.cursor = min(cursor, runeLen(v.Value()))
		return ok
	case *yui.MultiLineEdit:
		text, cursor, changed, ok := editText([]rune(v.Value()), p.cursor, ev, true)
		if changed {
			v.UserSetValue(string(text))
		}
		p.cursor = min(cursor, runeLen(v.Value()))
		return ok
	case *yui.IntField:
		return b.intFieldKey(v, p, ev)
	case *yui.ComboBox:
		return comboKey(v, p, ev)
	case *yui.SelectionBox:
		return listKey(v, p, ev, v.Items(), v.MultiSelection())
	case *yui.Table:
		if isRune(ev, ' ') && v.Header().HasCheckBoxColumn() && p.cursor < v.ItemCount() {
			row := v.Rows()[p.cursor]
			for col := range v.Header().Columns() {
				if v.Header().IsCheckBoxColumn(col) {
					_ = v.UserToggleCell(row, col)
					return true
				}
			}
		}
		return listKey(v, p, ev, v.Items(), v.MultiSelection())
	case *yui.Tree:
		return treeKey(v, p, ev)
	case *yui.Slider:
		return sliderKey(v, ev)
	case *yui.DateField:
		year, month, day := v.Parts()
		segs := dateSegments(v.Order(), year, month, day)
		if moveSegment(p, len(segs), ev) {
			return true
		}
		if editSegments(segs, p.seg, ev.Name(), digitRune(ev)) {
			parts := partsOf(segs)
			v.UserSetDate(parts[partYear], parts[partMonth], parts[partDay])
			return true
		}
	case *yui.TimeField:
		hour, minute, second := v.Parts()
		segs := timeSegments(hour, minute, second)
		if moveSegment(p, len(segs), ev) {
			return true
		}
		if editSegments(segs, p.seg, ev.Name(), digitRune(ev)) {
			parts := partsOf(segs)
			v.UserSetTime(parts[0], parts[1], parts[2])
			return true
		}
	case *yui.DumbTab:
		return tabKey(v, ev)
	case *yui.RichText:
		return richTextKey(v, p, ev)
	case *yui.LogView:
		return scrollKey(p, ev, v.Lines(), max(1, p.rect.Height-2))
	case *yui.MenuBar:
		if activate || ev.Key == terminal.KeyDown {
			b.openMenu(win, v, firstEnabledMenu(v))
			return true
		}
	}
	return false
}

func digitRune(ev terminal.KeyEvent) rune {
	if ev.Key == terminal.KeyRune {
		return ev.Rune
	}
	return 0
}

// editText applies a line-editing key to text.
func editText(text []rune, cursor int, ev terminal.KeyEvent, multiline bool) (out []rune, pos int, changed, handled bool) {
	cursor = max(0, min(cursor, len(text)))
	insert := func(rs ...rune) {
		out = make([]rune, 0, len(text)+len(rs))
		out = append(out, text[:cursor]...)
		out = append(out, rs...)
		out = append(out, text[cursor:]...)
		pos, changed = cursor+len(rs), true
	}
	out, pos, handled = text, cursor, true
	switch {
	case isText(ev):
		insert(ev.Rune)
	case ev.Key == terminal.KeyEnter && multiline:
		insert('\n')
	case ev.Key == terminal.KeyBackspace:
		if cursor > 0 {
			out = append(append([]rune{}, text[:cursor-1]...), text[cursor:]...)
			pos, changed = cursor-1, true
		}
	case ev.Key == terminal.KeyDelete:
		if cursor < len(text) {
			out = append(append([]rune{}, text[:cursor]...), text[cursor+1:]...)
			changed = true
		}
	case ev.Key == terminal.KeyLeft:
		pos = max(0, cursor-1)
	case ev.Key == terminal.KeyRight:
		pos = min(len(text), cursor+1)
	case ev.Key == terminal.KeyHome:
		pos = lineStart(text, cursor, multiline)
	case ev.Key == terminal.KeyEnd:
		pos = lineEnd(text, cursor, multiline)
	case multiline && (ev.Key == terminal.KeyUp || ev.Key == terminal.KeyDown):
		start := lineStart(text, cursor, true)
		col := cursor - start
		if ev.Key == terminal.KeyUp {
			if start == 0 {
				return text, cursor, false, true
			}
			prev := lineStart(text, start-1, true)
			pos = min(prev+col, start-1)
		} else {
			end := lineEnd(text, cursor, true)
			if end >= len(text) {
				return text, cursor, false, true
			}
			pos = min(end+1+col, lineEnd(text, end+1, true))
		}
	default:
		handled = false
	}
	return out, pos, changed, handled
}

func lineStart(text []rune, cursor int, multiline bool) int {
	if !multiline {
		return 0
	}
	for i := cursor - 1; i >= 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

func lineEnd(text []rune, cursor int, multiline bool) int {
	if !multiline {
		return len(text)
	}
	for i := cursor; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	return len(text)
}

// intFieldKey edits the digits being typed and commits them on every
// change; Up and Down step the value.
func (b *Backend) intFieldKey(v *yui.IntField, p *peer, ev terminal.KeyEvent) bool {
	switch {
	case ev.Key == terminal.KeyUp:
		v.UserSetValue(v.Value() + 1)
	case ev.Key == terminal.KeyDown:
		v.UserSetValue(v.Value() - 1)
	case ev.Key == terminal.KeyPageUp:
		v.UserSetValue(v.Value() + 10)
	case ev.Key == terminal.KeyPageDown:
		v.UserSetValue(v.Value() - 10)
	case ev.Key == terminal.KeyBackspace:
		if p.edit != "" {
			p.edit = p.edit[:len(p.edit)-1]
		}
		b.commitInt(v, p)
		return true
	case isRune(ev, '-') && p.edit == "" && v.Min() < 0:
		p.edit = "-"
		return true
	case ev.Key == terminal.KeyRune && ev.Rune >= '0' && ev.Rune <= '9':
		p.edit += string(ev.Rune)
		b.commitInt(v, p)
		return true
	default:
		return false
	}
	p.edit = strconv.Itoa(v.Value())
	return true
}

func (b *Backend) commitInt(v *yui.IntField, p *peer) {
	n, err := strconv.Atoi(p.edit)
	if err != nil {
		return
	}
	v.UserSetValue(n)
	if n != v.Value() {
		b.log.Debug(logging.CategoryWidget, "clamped", "int field value clamped", map[string]any{
			"typed": n,
			"value": v.Value(),
		})
		p.edit = strconv.Itoa(v.Value())
	}
}

func comboKey(v *yui.ComboBox, p *peer, ev terminal.KeyEvent) bool {
	items := v.Items()
	step := 0
	switch ev.Key {
	case terminal.KeyUp:
		step = -1
	case terminal.KeyDown:
		step = 1
	}
	if step != 0 {
		if len(items) == 0 {
			return true
		}
		cur := indexOf(items, v.SelectedItem(), -1)
		next := max(0, min(len(items)-1, cur+step))
		if cur < 0 {
			next = 0
		}
		v.UserSetValue(yui.ItemOf(items[next]).Label())
		p.cursor = runeLen(v.Value())
		return true
	}
	if !v.Editable() {
		return false
	}
	text, cursor, changed, ok := editText([]rune(v.Value()), p.cursor, ev, false)
	if changed {
		v.UserSetValue(string(text))
	}
	p.cursor = min(cursor, runeLen(v.Value()))
	return ok
}

// moveCursor handles list navigation keys and returns the new row.
func moveCursor(p *peer, ev terminal.KeyEvent, n, page int) (int, bool) {
	c := p.cursor
	switch ev.Key {
	case terminal.KeyUp:
		c--
	case terminal.KeyDown:
		c++
	case terminal.KeyPageUp:
		c -= page
	case terminal.KeyPageDown:
		c += page
	case terminal.KeyHome:
		c = 0
	case terminal.KeyEnd:
		c = n - 1
	default:
		return c, false
	}
	return max(0, min(c, n-1)), true
}

type selectionWidget interface {
	UserSelect(it yui.SelectionItem, on bool) error
	UserActivate(it yui.SelectionItem) error
}

// listKey navigates a flat list. Single selection follows the cursor;
// multi selection toggles with Space.
func listKey(v selectionWidget, p *peer, ev terminal.KeyEvent, items []yui.SelectionItem, multi bool) bool {
	if len(items) == 0 {
		return false
	}
	page := max(1, p.rect.Height-2)
	if c, ok := moveCursor(p, ev, len(items), page); ok {
		p.cursor = c
		if !multi {
			_ = v.UserSelect(items[c], true)
		}
		return true
	}
	it := items[min(p.cursor, len(items)-1)]
	switch {
	case isRune(ev, ' ') && multi:
		_ = v.UserSelect(it, !yui.ItemOf(it).Selected())
		return true
	case ev.Key == terminal.KeyEnter:
		_ = v.UserActivate(it)
		return true
	}
	return false
}

func treeKey(v *yui.Tree, p *peer, ev terminal.KeyEvent) bool {
	items := v.VisibleItems()
	if len(items) == 0 {
		return false
	}
	p.cursor = min(p.cursor, len(items)-1)
	n := items[p.cursor]
	switch {
	case ev.Key == terminal.KeyRight || isRune(ev, '+'):
		if len(n.Children()) > 0 && !n.IsOpen() {
			v.UserSetItemOpen(n, true)
			p.b.relayout()
		}
		return true
	case ev.Key == terminal.KeyLeft || isRune(ev, '-'):
		if len(n.Children()) > 0 && n.IsOpen() {
			v.UserSetItemOpen(n, false)
			p.b.relayout()
		} else if parent := n.Parent(); parent != nil {
			for i, o := range items {
				if o == parent {
					p.cursor = i
				}
			}
			if !v.MultiSelection() {
				_ = v.UserSelect(parent, true)
			}
		}
		return true
	}
	list := make([]yui.SelectionItem, len(items))
	for i, it := range items {
		list[i] = it
	}
	return listKey(v, p, ev, list, v.MultiSelection())
}

func sliderKey(v *yui.Slider, ev terminal.KeyEvent) bool {
	step := max(1, (v.Max()-v.Min())/20)
	switch ev.Key {
	case terminal.KeyLeft, terminal.KeyDown:
		v.UserDrag(v.Value() - 1)
	case terminal.KeyRight, terminal.KeyUp:
		v.UserDrag(v.Value() + 1)
	case terminal.KeyPageDown:
		v.UserDrag(v.Value() - step)
	case terminal.KeyPageUp:
		v.UserDrag(v.Value() + step)
	case terminal.KeyHome:
		v.UserDrag(v.Min())
	case terminal.KeyEnd:
		v.UserDrag(v.Max())
	case terminal.KeyEnter:
		v.UserRelease(v.Value())
	default:
		return false
	}
	return true
}

func moveSegment(p *peer, n int, ev terminal.KeyEvent) bool {
	switch ev.Key {
	case terminal.KeyLeft:
		p.seg = max(0, p.seg-1)
	case terminal.KeyRight:
		p.seg = min(n-1, p.seg+1)
	default:
		return false
	}
	return true
}

func tabKey(v *yui.DumbTab, ev terminal.KeyEvent) bool {
	dir := 0
	switch ev.Key {
	case terminal.KeyLeft:
		dir = -1
	case terminal.KeyRight:
		dir = 1
	default:
		return false
	}
	items := v.Items()
	cur := indexOf(items, v.SelectedItem(), 0)
	for i := cur + dir; i >= 0 && i < len(items); i += dir {
		it := yui.ItemOf(items[i])
		if it.Visible() && it.Enabled() {
			_ = v.UserSelectTab(it)
			break
		}
	}
	return true
}

func scrollKey(p *peer, ev terminal.KeyEvent, total, height int) bool {
	last := max(0, total-height)
	switch ev.Key {
	case terminal.KeyUp:
		p.top--
	case terminal.KeyDown:
		p.top++
	case terminal.KeyPageUp:
		p.top -= height
	case terminal.KeyPageDown:
		p.top += height
	case terminal.KeyHome:
		p.top = 0
	case terminal.KeyEnd:
		p.top = last
	default:
		return false
	}
	p.top = max(0, min(p.top, last))
	p.follow = p.top == last
	return true
}

// richTextKey scrolls and cycles through links; Enter follows the
// highlighted link.
func richTextKey(v *yui.RichText, p *peer, ev terminal.KeyEvent) bool {
	links := linkTargets(p.lines)
	switch {
	case ev.Key == terminal.KeyEnter:
		if p.link >= 0 && p.link < len(links) {
			v.ActivateLink(links[p.link])
			return true
		}
		return false
	case isRune(ev, ' ') || ev.Key == terminal.KeyRight:
		if len(links) == 0 {
			return false
		}
		p.link = (p.link + 1) % len(links)
		return true
	case ev.Key == terminal.KeyLeft:
		if len(links) == 0 {
			return false
		}
		p.link = (p.link - 1 + len(links)) % len(links)
		return true
	}
	return scrollKey(p, ev, len(p.lines), p.rect.Height)
}

// linkTargets lists link hrefs in display order, one per link span.
func linkTargets(lines []markup.Line) []string {
	var out []string
	for _, l := range lines {
		for _, s := range l.Spans {
			if s.Href != "" {
				out = append(out, s.Href)
			}
		}
	}
	return out
}

// menuKey drives an open dropdown chain.
func (b *Backend) menuKey(ev terminal.KeyEvent) {
	m := b.menu
	level := len(m.path) - 1
	items := visibleMenuItems(m.path[level])
	row := m.cursor[level]
	b.dirty = true
	switch ev.Key {
	case terminal.KeyEscape:
		if level == 0 {
			b.closeMenu()
			return
		}
		m.path, m.cursor = m.path[:level], m.cursor[:level]
	case terminal.KeyF10, terminal.KeyF9:
		b.closeMenu()
	case terminal.KeyUp:
		m.cursor[level] = nextMenuRow(items, row, -1)
	case terminal.KeyDown:
		m.cursor[level] = nextMenuRow(items, row, 1)
	case terminal.KeyLeft, terminal.KeyRight:
		if ev.Key == terminal.KeyRight && row < len(items) && items[row].IsMenu() {
			b.pushMenu(items[row])
			return
		}
		if ev.Key == terminal.KeyLeft && level > 0 {
			m.path, m.cursor = m.path[:level], m.cursor[:level]
			return
		}
		b.switchTopMenu(ev.Key == terminal.KeyRight)
	case terminal.KeyEnter:
		b.chooseMenuRow(items, row)
	default:
		if ev.Key == terminal.KeyRune {
			for i, it := range items {
				if hotkey(it.Label()) == unicode.ToLower(ev.Rune) && it.EffectivelyEnabled() {
					b.chooseMenuRow(items, i)
					return
				}
			}
		}
	}
}

func (b *Backend) chooseMenuRow(items []*yui.MenuItem, row int) {
	if row < 0 || row >= len(items) {
		return
	}
	it := items[row]
	m := b.menu
	m.cursor[len(m.path)-1] = row
	if it.IsMenu() {
		b.pushMenu(it)
		return
	}
	bar := m.bar
	b.closeMenu()
	bar.Activate(it)
}

func (b *Backend) switchTopMenu(forward bool) {
	m := b.menu
	var menus []*yui.MenuItem
	for _, top := range m.bar.Menus() {
		if top.Visible() && top.EffectivelyEnabled() {
			menus = append(menus, top)
		}
	}
	if len(menus) < 2 {
		return
	}
	cur := 0
	for i, top := range menus {
		if top == m.path[0] {
			cur = i
		}
	}
	dir := -1
	if forward {
		dir = 1
	}
	next := menus[(cur+dir+len(menus))%len(menus)]
	bar, win := m.bar, m.win
	b.openMenu(win, bar, next)
}

// hotkey returns the lower-cased character after the first '&' in label.
func hotkey(label string) rune {
	i := strings.IndexByte(label, '&')
	if i < 0 || i+1 >= len(label) {
		return 0
	}
	for _, r := range label[i+1:] {
		return unicode.ToLower(r)
	}
	return 0
}

// handleMouse focuses and acts on the widget under the pointer.
func (b *Backend) handleMouse(_ *yui.Dialog, ev terminal.MouseEvent) {
	if ev.Action != terminal.MousePress {
		return
	}
	if b.menu != nil {
		b.menuClick(ev)
		return
	}
	win := b.top()
	if win == nil {
		return
	}
	w, ok := win.hits.At(ev.X, ev.Y)
	if !ok || w == nil {
		return
	}
	p := peerOf(w)
	if p == nil {
		return
	}
	switch ev.Button {
	case terminal.MouseWheelUp:
		b.widgetKey(win, w, terminal.KeyEvent{Key: terminal.KeyUp})
		return
	case terminal.MouseWheelDown:
		b.widgetKey(win, w, terminal.KeyEvent{Key: terminal.KeyDown})
		return
	case terminal.MouseLeft:
	default:
		return
	}
	if _, ok := w.(yui.Focusable); ok {
		_ = win.d.SetFocus(w)
	}
	x, y := ev.X-p.rect.X, ev.Y-p.rect.Y
	switch v := w.(type) {
	case *yui.PushButton:
		v.Activate()
	case *yui.CheckBox:
		v.UserToggle()
	case *yui.RadioButton:
		v.UserSelect()
	case *yui.CheckBoxFrame:
		v.UserSetValue(!v.Value())
	case *yui.SelectionBox:
		row := p.top + y - listOffset(v.Label())
		if row >= 0 && row < v.ItemCount() {
			p.cursor = row
			it := v.Items()[row]
			_ = v.UserSelect(it, !v.MultiSelection() || !yui.ItemOf(it).Selected())
		}
	case *yui.Tree:
		items := v.VisibleItems()
		row := p.top + y - listOffset(v.Label())
		if row >= 0 && row < len(items) {
			p.cursor = row
			n := items[row]
			if x-1 < 2*n.Depth()+2 && len(n.Children()) > 0 {
				v.UserSetItemOpen(n, !n.IsOpen())
				b.relayout()
			} else {
				_ = v.UserSelect(n, !v.MultiSelection() || !n.Selected())
			}
		}
	case *yui.Table:
		row := p.top + y - 2
		if row >= 0 && row < v.ItemCount() {
			p.cursor = row
			_ = v.UserSelect(v.Items()[row], !v.MultiSelection() || !yui.ItemOf(v.Items()[row]).Selected())
		}
	case *yui.DumbTab:
		for _, s := range p.tabs {
			if y == 0 && x >= s.x && x < s.x+s.width {
				_ = v.UserSelectTab(s.v)
			}
		}
	case *yui.MenuBar:
		for _, s := range p.menus {
			if x >= s.x && x < s.x+s.width {
				b.openMenu(win, v, s.v)
			}
		}
	case *yui.Slider:
		width := max(1, p.rect.Width-len(strconv.Itoa(v.Max()))-1)
		if v.Label() != "" {
			y--
		}
		if y == 0 && x < width {
			value := v.Min() + x*(v.Max()-v.Min())/max(1, width-1)
			v.UserDrag(value)
			v.UserRelease(value)
		}
	}
}

// listOffset is the row of the first item inside a framed list.
func listOffset(label string) int {
	if label == "" {
		return 1
	}
	return 2
}

func (b *Backend) menuClick(ev terminal.MouseEvent) {
	m := b.menu
	for level := len(m.rects) - 1; level >= 0; level-- {
		r := m.rects[level]
		if !r.Contains(ev.X, ev.Y) {
			continue
		}
		m.path, m.cursor = m.path[:level+1], m.cursor[:level+1]
		b.chooseMenuRow(visibleMenuItems(m.path[level]), ev.Y-r.Y-1)
		return
	}
	b.closeMenu()
}

// handlePaste inserts text into the focused text widget.
func (b *Backend) handlePaste(_ *yui.Dialog, text string) {
	win := b.top()
	if win == nil || b.menu != nil {
		return
	}
	w := win.d.Focused()
	p := peerOf(w)
	if p == nil || !w.EffectivelyEnabled() {
		return
	}
	for _, r := range text {
		if r == '\r' {
			continue
		}
		ev := terminal.KeyEvent{Key: terminal.KeyRune, Rune: r}
		if r == '\n' {
			if _, ok := w.(*yui.MultiLineEdit); !ok {
				continue
			}
			ev = terminal.KeyEvent{Key: terminal.KeyEnter}
		}
		switch w.(type) {
		case *yui.InputField, *yui.MultiLineEdit, *yui.IntField, *yui.ComboBox:
			b.widgetKey(win, w, ev)
		}
	}
}

//go:build qt

package qt

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/mappu/miqt/qt"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/backend/internal/native"
	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/yui"
)

// peer wraps the Qt widget standing in for one yui widget. Containers set
// box or splitter so children can attach; sync pushes one model aspect to
// the native side.
type peer struct {
	b        *Backend
	w        yui.Widget
	widget   *qt.QWidget
	box      *qt.QBoxLayout
	splitter *qt.QSplitter
	sync     func(a yui.Aspect)

	// updating is set while the model is pushed to Qt so that signal
	// handlers do not echo programmatic changes back as user input.
	updating bool

	// rows maps native tree items to model items for trees and tables.
	rows map[unsafe.Pointer]yui.SelectionItem
}

// Sync implements yui.Peer.
func (p *peer) Sync(a yui.Aspect) error {
	if p.widget == nil {
		return nil
	}
	p.updating = true
	defer func() { p.updating = false }()
	switch a {
	case yui.AspectEnabled:
		p.widget.SetEnabled(p.w.IsEnabled())
	case yui.AspectVisible:
		p.widget.SetVisible(p.w.IsVisible())
	case yui.AspectHelp:
		p.widget.SetToolTip(p.w.HelpText())
	case yui.AspectFocus:
		p.widget.SetFocus()
	default:
		if p.sync != nil {
			p.sync(a)
		}
	}
	return nil
}

// Destroy implements yui.Peer.
func (p *peer) Destroy() {
	if p.widget == nil {
		return
	}
	if _, ok := p.w.(*yui.Dialog); !ok {
		p.widget.Hide()
		p.widget.DeleteLater()
	}
	p.widget = nil
}

func (p *peer) syncAll() {
	for _, a := range []yui.Aspect{
		yui.AspectEnabled, yui.AspectVisible, yui.AspectHelp, yui.AspectLabel,
		yui.AspectTitle, yui.AspectRange, yui.AspectItems, yui.AspectValue,
		yui.AspectSelection, yui.AspectDefault,
	} {
		_ = p.Sync(a)
	}
}

// user runs fn for a signal unless the signal was caused by a sync.
func (p *peer) user(fn func()) {
	if p.updating {
		return
	}
	fn()
}

func label(s string) string { return native.Mnemonic(s, '&') }

func peerOf(w yui.Widget) *peer {
	p, _ := w.Peer().(*peer)
	return p
}

func (b *Backend) newPeer(w yui.Widget) (*peer, error) {
	p := &peer{b: b, w: w}
	switch v := w.(type) {
	case *yui.Box:
		p.container(v.Primary())
	case *yui.AlignmentBox:
		p.container(yui.Vertical)
		p.box.SetContentsMargins(0, 0, 0, 0)
	case *yui.ReplacePoint:
		p.container(yui.Vertical)
		p.box.SetContentsMargins(0, 0, 0, 0)
	case *yui.Frame:
		g := qt.NewQGroupBox3(v.Label())
		p.group(g)
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectLabel {
				g.SetTitle(label(v.Label()))
			}
		}
	case *yui.CheckBoxFrame:
		g := qt.NewQGroupBox3(v.Label())
		g.SetCheckable(true)
		p.group(g)
		g.OnToggled(func(on bool) { p.user(func() { v.UserSetValue(on) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				g.SetTitle(label(v.Label()))
			case yui.AspectValue:
				g.SetChecked(v.Value())
			}
		}
	case *yui.Paned:
		orient := qt.Vertical
		if v.Primary() == yui.Horizontal {
			orient = qt.Horizontal
		}
		p.splitter = qt.NewQSplitter3(orient)
		p.widget = p.splitter.QWidget
	case *yui.DumbTab:
		p.dumbTab(v)
	case *yui.Label:
		l := qt.NewQLabel3(v.Value())
		p.widget = l.QWidget
		if v.IsOutputField() {
			l.SetFrameShape(qt.QFrame__StyledPanel)
			l.SetTextInteractionFlags(qt.TextSelectableByMouse)
		}
		if v.IsHeading() {
			f := l.Font()
			f.SetBold(true)
			l.SetFont(f)
		}
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectValue, yui.AspectLabel:
				l.SetText(v.Value())
				l.SetWordWrap(v.WordWrap())
			}
		}
	case *yui.InputField:
		p.lineEdit(v)
	case *yui.MultiLineEdit:
		e := qt.NewQPlainTextEdit2()
		p.labelled(v.Label(), e.QWidget)
		e.OnTextChanged(func() { p.user(func() { v.UserSetValue(e.ToPlainText()) }) })
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue && e.ToPlainText() != v.Value() {
				e.SetPlainText(v.Value())
			}
		}
	case *yui.IntField:
		s := qt.NewQSpinBox2()
		p.labelled(v.Label(), s.QWidget)
		s.OnValueChanged(func(n int) { p.user(func() { v.UserSetValue(n) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange:
				s.SetRange(v.Min(), v.Max())
			case yui.AspectValue:
				s.SetValue(v.Value())
			}
		}
	case *yui.CheckBox:
		c := qt.NewQCheckBox3(label(v.Label()))
		p.widget = c.QWidget
		c.OnClicked(func() { p.user(func() { v.UserToggle(); _ = p.Sync(yui.AspectValue) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				c.SetText(label(v.Label()))
			case yui.AspectValue:
				c.SetTristate(v.CheckState() == yui.DontCare)
				c.SetCheckState(checkState(v.CheckState()))
			}
		}
	case *yui.RadioButton:
		r := qt.NewQRadioButton3(label(v.Label()))
		r.SetAutoExclusive(false)
		p.widget = r.QWidget
		r.OnClicked(func() {
			p.user(func() {
				v.UserSelect()
				_ = p.Sync(yui.AspectValue)
				for _, s := range v.Siblings() {
					if sp := peerOf(s); sp != nil {
						_ = sp.Sync(yui.AspectValue)
					}
				}
			})
		})
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				r.SetText(label(v.Label()))
			case yui.AspectValue:
				r.SetChecked(v.Value())
			}
		}
	case *yui.PushButton:
		btn := qt.NewQPushButton3(label(v.Label()))
		p.widget = btn.QWidget
		btn.OnClicked(func() { v.Activate() })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				btn.SetText(label(v.Label()))
				if v.Icon() != "" {
					btn.SetIcon(qt.QIcon_FromTheme(v.Icon()))
				}
			case yui.AspectDefault:
				btn.SetDefault(v.IsDefault())
			}
		}
	case *yui.ComboBox:
		p.comboBox(v)
	case *yui.SelectionBox:
		p.listWidget(v)
	case *yui.Tree:
		p.treeWidget(v)
	case *yui.Table:
		p.tableWidget(v)
	case *yui.ProgressBar:
		bar := qt.NewQProgressBar2()
		p.labelled(v.Label(), bar.QWidget)
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange, yui.AspectValue:
				bar.SetRange(0, v.Max())
				bar.SetValue(v.Value())
			}
		}
	case *yui.Slider:
		s := qt.NewQSlider3(qt.Horizontal)
		p.labelled(v.Label(), s.QWidget)
		s.OnSliderMoved(func(n int) { p.user(func() { v.UserDrag(n) }) })
		s.OnSliderReleased(func() { p.user(func() { v.UserRelease(s.Value()) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange:
				s.SetRange(v.Min(), v.Max())
			case yui.AspectValue:
				s.SetValue(v.Value())
			}
		}
	case *yui.DateField:
		p.dateField(v)
	case *yui.TimeField:
		p.timeField(v)
	case *yui.RichText:
		p.richText(v)
	case *yui.LogView:
		e := qt.NewQPlainTextEdit2()
		e.SetReadOnly(true)
		e.SetMaximumBlockCount(v.MaxLines())
		p.labelled(v.Label(), e.QWidget)
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue {
				e.SetPlainText(v.LogText())
				e.VerticalScrollBar().SetValue(e.VerticalScrollBar().Maximum())
			}
		}
	case *yui.Image:
		l := qt.NewQLabel2()
		p.widget = l.QWidget
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue {
				l.SetPixmap(qt.NewQPixmap3(v.Path()))
				l.SetScaledContents(v.AutoScale())
			}
		}
	case *yui.MenuBar:
		p.menuBar(v)
	case *yui.Spacing:
		s := qt.NewQWidget2()
		p.widget = s
		px := v.Size()
		if v.Primary() == yui.Horizontal {
			s.SetMinimumSize2(px, 0)
		} else {
			s.SetMinimumSize2(0, px)
		}
	default:
		return nil, yerrors.New(yerrors.ErrCodeUnsupportedWidget, "widget kind not supported by Qt").
			WithContext("kind", w.Kind().String())
	}
	return p, nil
}

// container gives p a plain widget with a box layout along dim.
func (p *peer) container(dim yui.Dimension) {
	p.widget = qt.NewQWidget2()
	if dim == yui.Horizontal {
		l := qt.NewQHBoxLayout2()
		p.widget.SetLayout(l.QLayout)
		p.box = l.QBoxLayout
	} else {
		l := qt.NewQVBoxLayout2()
		p.widget.SetLayout(l.QLayout)
		p.box = l.QBoxLayout
	}
}

func (p *peer) group(g *qt.QGroupBox) {
	p.widget = g.QWidget
	l := qt.NewQVBoxLayout2()
	g.SetLayout(l.QLayout)
	p.box = l.QBoxLayout
}

// labelled puts a caption above field when text is not empty.
func (p *peer) labelled(text string, field *qt.QWidget) {
	if text == "" {
		p.widget = field
		return
	}
	p.widget = qt.NewQWidget2()
	l := qt.NewQVBoxLayout2()
	l.SetContentsMargins(0, 0, 0, 0)
	caption := qt.NewQLabel3(label(text))
	caption.SetBuddy(field)
	l.AddWidget(caption.QWidget)
	l.AddWidget(field)
	p.widget.SetLayout(l.QLayout)
}

func checkState(s yui.CheckState) qt.CheckState {
	switch s {
	case yui.Checked:
		return qt.Checked
	case yui.DontCare:
		return qt.PartiallyChecked
	default:
		return qt.Unchecked
	}
}

func (p *peer) lineEdit(v *yui.InputField) {
	e := qt.NewQLineEdit2()
	if v.PasswordMode() {
		e.SetEchoMode(qt.QLineEdit__Password)
	}
	p.labelled(v.Label(), e.QWidget)
	e.OnTextEdited(func(text string) {
		p.user(func() {
			v.UserSetValue(text)
			if v.Value() != text {
				e.SetText(v.Value())
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectValue:
			if e.Text() != v.Value() {
				e.SetText(v.Value())
			}
		case yui.AspectRange:
			if n := v.InputMaxLength(); n > 0 {
				e.SetMaxLength(n)
			}
		}
	}
}

func (p *peer) comboBox(v *yui.ComboBox) {
	c := qt.NewQComboBox2()
	c.SetEditable(v.Editable())
	p.labelled(v.Label(), c.QWidget)
	c.OnCurrentIndexChanged(func(i int) {
		p.user(func() {
			if it := v.ItemAt(i); it != nil {
				_ = v.UserSelect(it, true)
			}
		})
	})
	if v.Editable() {
		c.OnEditTextChanged(func(text string) { p.user(func() { v.UserSetValue(text) }) })
	}
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems:
			c.Clear()
			for _, it := range v.Items() {
				c.AddItem(yui.ItemOf(it).Label())
			}
			fallthrough
		case yui.AspectSelection, yui.AspectValue:
			if sel := v.SelectedItem(); sel != nil {
				c.SetCurrentIndex(yui.ItemOf(sel).Index())
			}
			if v.Editable() {
				c.SetEditText(v.Value())
			}
		}
	}
}

func (p *peer) listWidget(v *yui.SelectionBox) {
	l := qt.NewQListWidget2()
	if v.MultiSelection() {
		l.SetSelectionMode(qt.QAbstractItemView__MultiSelection)
	}
	p.labelled(v.Label(), l.QWidget)
	l.OnCurrentRowChanged(func(row int) {
		p.user(func() {
			if it := v.ItemAt(row); it != nil && !v.MultiSelection() {
				_ = v.UserSelect(it, true)
			}
		})
	})
	l.OnItemChanged(func(item *qt.QListWidgetItem) {
		p.user(func() {
			if it := v.ItemAt(l.Row(item)); it != nil && v.MultiSelection() {
				_ = v.UserSelect(it, item.CheckState() == qt.Checked)
			}
		})
	})
	l.OnItemActivated(func(item *qt.QListWidgetItem) {
		p.user(func() {
			if it := v.ItemAt(l.Row(item)); it != nil {
				_ = v.UserActivate(it)
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems:
			l.Clear()
			for _, it := range v.Items() {
				row := qt.NewQListWidgetItem7(yui.ItemOf(it).Label(), l)
				if v.MultiSelection() {
					row.SetCheckState(qt.Unchecked)
				}
			}
			fallthrough
		case yui.AspectSelection:
			for i, it := range v.Items() {
				on := yui.ItemOf(it).Selected()
				if v.MultiSelection() {
					l.Item(i).SetCheckState(checkState(boolState(on)))
				} else if on {
					l.SetCurrentRow(i)
				}
			}
		}
	}
}

func boolState(on bool) yui.CheckState {
	if on {
		return yui.Checked
	}
	return yui.Unchecked
}

// itemWidget builds a QTreeWidget and wires the signals shared by trees
// and tables.
func (p *peer) itemWidget(sel *yui.SelectionWidget, headers []string) *qt.QTreeWidget {
	t := qt.NewQTreeWidget2()
	t.SetHeaderLabels(headers)
	if sel.MultiSelection() {
		t.SetSelectionMode(qt.QAbstractItemView__MultiSelection)
	}
	p.rows = map[unsafe.Pointer]yui.SelectionItem{}
	t.OnItemSelectionChanged(func() {
		p.user(func() {
			for _, n := range t.SelectedItems() {
				if it := p.rows[n.UnsafePointer()]; it != nil && !yui.ItemOf(it).Selected() {
					_ = sel.UserSelect(it, true)
				}
			}
		})
	})
	t.OnItemActivated(func(n *qt.QTreeWidgetItem, _ int) {
		p.user(func() {
			if it := p.rows[n.UnsafePointer()]; it != nil {
				_ = sel.UserActivate(it)
			}
		})
	})
	return t
}

func (p *peer) treeWidget(v *yui.Tree) {
	t := p.itemWidget(&v.SelectionWidget, []string{v.Label()})
	t.SetHeaderHidden(v.Label() == "")
	p.labelled("", t.QWidget)
	toggle := func(n *qt.QTreeWidgetItem, open bool) {
		p.user(func() {
			if it, ok := p.rows[n.UnsafePointer()].(*yui.TreeItem); ok {
				v.UserSetItemOpen(it, open)
			}
		})
	}
	t.OnItemExpanded(func(n *qt.QTreeWidgetItem) { toggle(n, true) })
	t.OnItemCollapsed(func(n *qt.QTreeWidgetItem) { toggle(n, false) })

	var add func(parent *qt.QTreeWidgetItem, nodes []*yui.TreeItem)
	add = func(parent *qt.QTreeWidgetItem, nodes []*yui.TreeItem) {
		for _, n := range nodes {
			row := qt.NewQTreeWidgetItem()
			row.SetText(0, n.Label())
			p.rows[row.UnsafePointer()] = n
			if parent == nil {
				t.AddTopLevelItem(row)
			} else {
				parent.AddChild(row)
			}
			add(row, n.Children())
			row.SetExpanded(n.IsOpen())
			row.SetSelected(n.Selected())
		}
	}
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems, yui.AspectItemState, yui.AspectSelection:
			t.Clear()
			clear(p.rows)
			add(nil, v.Roots())
		}
	}
}

func (p *peer) tableWidget(v *yui.Table) {
	cols := v.Header().Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	t := p.itemWidget(&v.SelectionWidget, headers)
	t.SetRootIsDecorated(false)
	p.labelled("", t.QWidget)
	t.OnItemChanged(func(n *qt.QTreeWidgetItem, col int) {
		p.user(func() {
			row, ok := p.rows[n.UnsafePointer()].(*yui.TableItem)
			if !ok || !v.Header().IsCheckBoxColumn(col) {
				return
			}
			if c := row.Cell(col); c != nil && c.Checked() != (n.CheckState(col) == qt.Checked) {
				_ = v.UserToggleCell(row, col)
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems, yui.AspectItemState, yui.AspectSelection:
			t.Clear()
			clear(p.rows)
			for _, r := range v.Rows() {
				n := qt.NewQTreeWidgetItem()
				for i := range cols {
					if v.Header().IsCheckBoxColumn(i) {
						c := r.Cell(i)
						n.SetCheckState(i, checkState(boolState(c != nil && c.Checked())))
						continue
					}
					n.SetText(i, r.CellLabel(i))
					n.SetTextAlignment(i, int(alignFlag(cols[i].Align)))
				}
				p.rows[n.UnsafePointer()] = r
				t.AddTopLevelItem(n)
				n.SetSelected(r.Selected())
			}
		}
	}
}

func alignFlag(a yui.Alignment) qt.AlignmentFlag {
	switch a {
	case yui.AlignCenter:
		return qt.AlignHCenter | qt.AlignVCenter
	case yui.AlignEnd:
		return qt.AlignRight | qt.AlignVCenter
	default:
		return qt.AlignLeft | qt.AlignVCenter
	}
}

func (p *peer) dumbTab(v *yui.DumbTab) {
	p.widget = qt.NewQWidget2()
	l := qt.NewQVBoxLayout2()
	l.SetContentsMargins(0, 0, 0, 0)
	bar := qt.NewQTabBar2()
	l.AddWidget(bar.QWidget)
	p.widget.SetLayout(l.QLayout)
	p.box = l.QBoxLayout
	bar.OnCurrentChanged(func(i int) {
		p.user(func() {
			if it, ok := v.ItemAt(i).(*yui.Item); ok {
				_ = v.UserSelectTab(it)
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems:
			for bar.Count() > 0 {
				bar.RemoveTab(0)
			}
			for _, it := range v.Items() {
				bar.AddTab(label(yui.ItemOf(it).Label()))
			}
			fallthrough
		case yui.AspectSelection:
			if cur := v.CurrentTab(); cur != nil {
				bar.SetCurrentIndex(cur.Index())
			}
		}
	}
}

// dateField edits the date in a masked line edit ordered like the locale.
func (p *peer) dateField(v *yui.DateField) {
	e := qt.NewQLineEdit2()
	mask := map[yui.DateOrder]string{
		yui.OrderYMD: "9999-99-99",
		yui.OrderDMY: "99.99.9999",
		yui.OrderMDY: "99/99/9999",
	}[v.Order()]
	e.SetInputMask(mask)
	p.labelled(v.Label(), e.QWidget)
	e.OnEditingFinished(func() {
		p.user(func() {
			n := digits(e.Text())
			if len(n) != 3 {
				return
			}
			switch v.Order() {
			case yui.OrderDMY:
				v.UserSetDate(n[2], n[1], n[0])
			case yui.OrderMDY:
				v.UserSetDate(n[2], n[0], n[1])
			default:
				v.UserSetDate(n[0], n[1], n[2])
			}
			_ = p.Sync(yui.AspectValue)
		})
	})
	p.sync = func(a yui.Aspect) {
		if a != yui.AspectValue {
			return
		}
		y, m, d := v.Parts()
		var s string
		switch v.Order() {
		case yui.OrderDMY:
			s = pad(d, 2) + "." + pad(m, 2) + "." + pad(y, 4)
		case yui.OrderMDY:
			s = pad(m, 2) + "/" + pad(d, 2) + "/" + pad(y, 4)
		default:
			s = pad(y, 4) + "-" + pad(m, 2) + "-" + pad(d, 2)
		}
		e.SetText(s)
	}
}

func (p *peer) timeField(v *yui.TimeField) {
	e := qt.NewQLineEdit2()
	e.SetInputMask("99:99:99")
	p.labelled(v.Label(), e.QWidget)
	e.OnEditingFinished(func() {
		p.user(func() {
			if n := digits(e.Text()); len(n) == 3 {
				v.UserSetTime(n[0], n[1], n[2])
				_ = p.Sync(yui.AspectValue)
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		if a == yui.AspectValue {
			h, m, s := v.Parts()
			e.SetText(pad(h, 2) + ":" + pad(m, 2) + ":" + pad(s, 2))
		}
	}
}

// digits returns the numeric fields of s.
func digits(s string) []int {
	var out []int
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' }) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func (p *peer) richText(v *yui.RichText) {
	t := qt.NewQTextBrowser2()
	t.SetOpenLinks(false)
	p.widget = t.QWidget
	t.OnAnchorClicked(func(u *qt.QUrl) { v.ActivateLink(u.ToString()) })
	p.sync = func(a yui.Aspect) {
		if a != yui.AspectValue {
			return
		}
		switch {
		case v.PlainText():
			t.SetPlainText(v.Value())
		case markup.Detect(v.Value()) == markup.FormatMarkdown:
			t.SetMarkdown(v.Value())
		default:
			t.SetHtml(v.Value())
		}
		if v.AutoScrollDown() {
			t.VerticalScrollBar().SetValue(t.VerticalScrollBar().Maximum())
		}
	}
}

func (p *peer) menuBar(v *yui.MenuBar) {
	bar := qt.NewQMenuBar2()
	p.widget = bar.QWidget
	var fill func(m *qt.QMenu, items []*yui.MenuItem)
	fill = func(m *qt.QMenu, items []*yui.MenuItem) {
		for _, it := range items {
			switch {
			case !it.Visible():
			case it.IsSeparator():
				m.AddSeparator()
			case it.IsMenu():
				sub := m.AddMenuWithTitle(label(it.Label()))
				sub.SetEnabled(it.EffectivelyEnabled())
				fill(sub, it.Children())
			default:
				act := m.AddAction(label(it.Label()))
				act.SetEnabled(it.EffectivelyEnabled())
				act.SetCheckable(it.Checkable())
				act.SetChecked(it.Checked())
				act.OnTriggered(func() { v.Activate(it) })
			}
		}
	}
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems, yui.AspectItemState:
			bar.Clear()
			for _, m := range v.Menus() {
				if !m.Visible() {
					continue
				}
				menu := bar.AddMenuWithTitle(label(m.Label()))
				menu.SetEnabled(m.EffectivelyEnabled())
				fill(menu, m.Children())
			}
		}
	}
}

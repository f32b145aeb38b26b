//go:build gtk

package gtk

import (
	"strconv"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/backend/internal/native"
	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/ui/markup"
	"github.com/odvcencio/yui/pkg/yui"
)

// peer wraps the GTK widget standing in for one yui widget.
type peer struct {
	b      *Backend
	w      yui.Widget
	native gtk.Widgetter
	widget *gtk.Widget
	attach func(child gtk.Widgetter)
	sync   func(a yui.Aspect)

	updating bool

	// rows holds the model item shown on each list box row.
	rows []yui.SelectionItem
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
		p.widget.SetSensitive(p.w.IsEnabled())
	case yui.AspectVisible:
		p.widget.SetVisible(p.w.IsVisible())
	case yui.AspectHelp:
		p.widget.SetTooltipText(p.w.HelpText())
	case yui.AspectFocus:
		p.widget.GrabFocus()
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
		p.widget.Unparent()
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

func (p *peer) user(fn func()) {
	if !p.updating {
		fn()
	}
}

func (p *peer) set(w gtk.Widgetter) {
	p.native = w
	p.widget = gtk.BaseWidget(w)
}

func label(s string) string { return native.Mnemonic(s, '_') }

func (b *Backend) newPeer(w yui.Widget) (*peer, error) {
	p := &peer{b: b, w: w}
	switch v := w.(type) {
	case *yui.Box:
		orient := gtk.OrientationVertical
		if v.Primary() == yui.Horizontal {
			orient = gtk.OrientationHorizontal
		}
		box := gtk.NewBox(orient, 6)
		p.set(box)
		p.attach = func(c gtk.Widgetter) { box.Append(c) }
	case *yui.AlignmentBox, *yui.ReplacePoint:
		box := gtk.NewBox(gtk.OrientationVertical, 0)
		p.set(box)
		p.attach = func(c gtk.Widgetter) { box.Append(c) }
		if a, ok := v.(*yui.AlignmentBox); ok {
			p.attach = func(c gtk.Widgetter) {
				cw := gtk.BaseWidget(c)
				cw.SetHAlign(gtkAlign(a.Alignment(yui.Horizontal)))
				cw.SetVAlign(gtkAlign(a.Alignment(yui.Vertical)))
				box.Append(c)
			}
		}
	case *yui.Frame:
		f := gtk.NewFrame(v.Label())
		p.set(f)
		p.attach = func(c gtk.Widgetter) { f.SetChild(c) }
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectLabel {
				f.SetLabel(yui.NormalizeLabel(v.Label()))
			}
		}
	case *yui.CheckBoxFrame:
		f := gtk.NewFrame("")
		check := gtk.NewCheckButtonWithMnemonic(label(v.Label()))
		f.SetLabelWidget(check)
		p.set(f)
		p.attach = func(c gtk.Widgetter) { f.SetChild(c) }
		check.ConnectToggled(func() { p.user(func() { v.UserSetValue(check.Active()) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				check.SetLabel(label(v.Label()))
			case yui.AspectValue:
				check.SetActive(v.Value())
			}
		}
	case *yui.Paned:
		orient := gtk.OrientationVertical
		if v.Primary() == yui.Horizontal {
			orient = gtk.OrientationHorizontal
		}
		pn := gtk.NewPaned(orient)
		p.set(pn)
		first := true
		p.attach = func(c gtk.Widgetter) {
			if first {
				pn.SetStartChild(c)
				first = false
				return
			}
			pn.SetEndChild(c)
		}
	case *yui.Label:
		l := gtk.NewLabel(v.Value())
		l.SetXAlign(0)
		l.SetSelectable(v.IsOutputField())
		if v.IsHeading() {
			l.AddCSSClass("title-3")
		}
		p.set(l)
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectValue, yui.AspectLabel:
				l.SetText(v.Value())
				l.SetWrap(v.WordWrap())
			}
		}
	case *yui.InputField:
		e := gtk.NewEntry()
		e.SetVisibility(!v.PasswordMode())
		p.labelled(v.Label(), e)
		e.ConnectChanged(func() {
			p.user(func() {
				v.UserSetValue(e.Text())
				if e.Text() != v.Value() {
					_ = p.Sync(yui.AspectValue)
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
				e.SetMaxLength(v.InputMaxLength())
			}
		}
	case *yui.MultiLineEdit:
		tv := gtk.NewTextView()
		p.labelled(v.Label(), scrolled(tv))
		buf := tv.Buffer()
		buf.ConnectChanged(func() { p.user(func() { v.UserSetValue(bufferText(buf)) }) })
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue && bufferText(buf) != v.Value() {
				buf.SetText(v.Value())
			}
		}
	case *yui.IntField:
		s := gtk.NewSpinButtonWithRange(float64(v.Min()), float64(v.Max()), 1)
		p.labelled(v.Label(), s)
		s.ConnectValueChanged(func() { p.user(func() { v.UserSetValue(s.ValueAsInt()) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange:
				s.SetRange(float64(v.Min()), float64(v.Max()))
			case yui.AspectValue:
				s.SetValue(float64(v.Value()))
			}
		}
	case *yui.CheckBox:
		c := gtk.NewCheckButtonWithMnemonic(label(v.Label()))
		p.set(c)
		c.ConnectToggled(func() { p.user(func() { v.UserToggle(); _ = p.Sync(yui.AspectValue) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				c.SetLabel(label(v.Label()))
			case yui.AspectValue:
				c.SetInconsistent(v.CheckState() == yui.DontCare)
				c.SetActive(v.CheckState() == yui.Checked)
			}
		}
	case *yui.RadioButton:
		r := gtk.NewCheckButtonWithMnemonic(label(v.Label()))
		for _, s := range v.Siblings() {
			if sp, _ := s.Peer().(*peer); sp != nil {
				if g, ok := sp.native.(*gtk.CheckButton); ok {
					r.SetGroup(g)
					break
				}
			}
		}
		p.set(r)
		r.ConnectToggled(func() {
			p.user(func() {
				if r.Active() && !v.Value() {
					v.UserSelect()
				}
			})
		})
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				r.SetLabel(label(v.Label()))
			case yui.AspectValue:
				r.SetActive(v.Value())
			}
		}
	case *yui.PushButton:
		btn := gtk.NewButtonWithMnemonic(label(v.Label()))
		p.set(btn)
		btn.ConnectClicked(func() { v.Activate() })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectLabel:
				if v.Icon() != "" && v.Label() == "" {
					btn.SetIconName(v.Icon())
				} else {
					btn.SetLabel(label(v.Label()))
				}
			case yui.AspectDefault:
				if v.IsDefault() {
					btn.AddCSSClass("suggested-action")
					if win := windowOf(v.FindDialog()); win != nil {
						win.win.SetDefaultWidget(btn)
					}
				} else {
					btn.RemoveCSSClass("suggested-action")
				}
			}
		}
	case *yui.ComboBox:
		p.comboBox(v)
	case *yui.SelectionBox:
		p.listBox(v.Label(), &v.SelectionWidget, func(lb *gtk.ListBox) {
			for _, it := range v.Items() {
				p.addRow(lb, it, gtk.NewLabel(yui.ItemOf(it).Label()))
			}
		})
	case *yui.Tree:
		p.treeBox(v)
	case *yui.Table:
		p.tableBox(v)
	case *yui.ProgressBar:
		bar := gtk.NewProgressBar()
		bar.SetShowText(true)
		p.labelled(v.Label(), bar)
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange, yui.AspectValue:
				bar.SetFraction(float64(v.Percent()) / 100)
				bar.SetText(strconv.Itoa(v.Percent()) + "%")
			}
		}
	case *yui.Slider:
		s := gtk.NewScaleWithRange(gtk.OrientationHorizontal, float64(v.Min()), float64(v.Max()), 1)
		s.SetDrawValue(true)
		p.labelled(v.Label(), s)
		s.ConnectValueChanged(func() { p.user(func() { v.UserRelease(int(s.Value())) }) })
		p.sync = func(a yui.Aspect) {
			switch a {
			case yui.AspectRange:
				s.SetRange(float64(v.Min()), float64(v.Max()))
			case yui.AspectValue:
				s.SetValue(float64(v.Value()))
			}
		}
	case *yui.RichText:
		p.richText(v)
	case *yui.LogView:
		tv := gtk.NewTextView()
		tv.SetEditable(false)
		tv.SetMonospace(true)
		p.labelled(v.Label(), scrolled(tv))
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue {
				tv.Buffer().SetText(v.LogText())
				tv.ScrollToMark(tv.Buffer().GetInsert(), 0, false, 0, 1)
			}
		}
	case *yui.Image:
		pic := gtk.NewPicture()
		p.set(pic)
		p.sync = func(a yui.Aspect) {
			if a == yui.AspectValue {
				pic.SetFilename(v.Path())
				pic.SetCanShrink(v.AutoScale())
			}
		}
	case *yui.MenuBar:
		p.menuBar(v)
	case *yui.Spacing:
		s := gtk.NewBox(gtk.OrientationHorizontal, 0)
		if v.Primary() == yui.Horizontal {
			s.SetSizeRequest(v.Size(), -1)
		} else {
			s.SetSizeRequest(-1, v.Size())
		}
		p.set(s)
	default:
		return nil, yerrors.New(yerrors.ErrCodeUnsupportedWidget, "widget kind not supported by GTK").
			WithContext("kind", w.Kind().String())
	}
	return p, nil
}

func gtkAlign(a yui.Alignment) gtk.Align {
	switch a {
	case yui.AlignBegin:
		return gtk.AlignStart
	case yui.AlignCenter:
		return gtk.AlignCenter
	case yui.AlignEnd:
		return gtk.AlignEnd
	default:
		return gtk.AlignFill
	}
}

// labelled puts a mnemonic caption above field when text is not empty.
func (p *peer) labelled(text string, field gtk.Widgetter) {
	if text == "" {
		p.set(field)
		return
	}
	box := gtk.NewBox(gtk.OrientationVertical, 2)
	caption := gtk.NewLabelWithMnemonic(label(text))
	caption.SetXAlign(0)
	caption.SetMnemonicWidget(field)
	box.Append(caption)
	box.Append(field)
	p.set(box)
}

func scrolled(child gtk.Widgetter) *gtk.ScrolledWindow {
	sw := gtk.NewScrolledWindow()
	sw.SetChild(child)
	sw.SetVExpand(true)
	return sw
}

func bufferText(buf *gtk.TextBuffer) string {
	start, end := buf.Bounds()
	return buf.Text(start, end, false)
}

func (p *peer) comboBox(v *yui.ComboBox) {
	var c *gtk.ComboBoxText
	if v.Editable() {
		c = gtk.NewComboBoxTextWithEntry()
	} else {
		c = gtk.NewComboBoxText()
	}
	p.labelled(v.Label(), c)
	c.ConnectChanged(func() {
		p.user(func() {
			if i := c.Active(); i >= 0 {
				if it := v.ItemAt(i); it != nil {
					_ = v.UserSelect(it, true)
					return
				}
			}
			if v.Editable() {
				v.UserSetValue(c.ActiveText())
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems:
			c.RemoveAll()
			for _, it := range v.Items() {
				c.AppendText(yui.ItemOf(it).Label())
			}
			fallthrough
		case yui.AspectSelection, yui.AspectValue:
			if sel := v.SelectedItem(); sel != nil {
				c.SetActive(yui.ItemOf(sel).Index())
			}
		}
	}
}

// listBox builds the list box shared by selection boxes, trees and
// tables. fill appends one row per model item through addRow.
func (p *peer) listBox(caption string, sel *yui.SelectionWidget, fill func(lb *gtk.ListBox)) *gtk.ListBox {
	lb := gtk.NewListBox()
	if sel.MultiSelection() {
		lb.SetSelectionMode(gtk.SelectionMultiple)
	}
	p.labelled(caption, scrolled(lb))
	lb.ConnectRowSelected(func(row *gtk.ListBoxRow) {
		p.user(func() {
			if row == nil {
				return
			}
			if i := row.Index(); i >= 0 && i < len(p.rows) {
				_ = sel.UserSelect(p.rows[i], true)
			}
		})
	})
	lb.ConnectRowActivated(func(row *gtk.ListBoxRow) {
		p.user(func() {
			if i := row.Index(); i >= 0 && i < len(p.rows) {
				p.activateRow(sel, p.rows[i])
			}
		})
	})
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems, yui.AspectItemState:
			for c := lb.FirstChild(); c != nil; c = lb.FirstChild() {
				lb.Remove(c)
			}
			p.rows = p.rows[:0]
			fill(lb)
			fallthrough
		case yui.AspectSelection:
			for i, it := range p.rows {
				row := lb.RowAtIndex(i)
				if yui.ItemOf(it).Selected() {
					lb.SelectRow(row)
				} else {
					lb.UnselectRow(row)
				}
			}
		}
	}
	return lb
}

func (p *peer) addRow(lb *gtk.ListBox, it yui.SelectionItem, child gtk.Widgetter) {
	gtk.BaseWidget(child).SetHAlign(gtk.AlignStart)
	lb.Append(child)
	p.rows = append(p.rows, it)
}

// activateRow opens or closes tree branches and activates leaves.
func (p *peer) activateRow(sel *yui.SelectionWidget, it yui.SelectionItem) {
	if n, ok := it.(*yui.TreeItem); ok && len(n.Children()) > 0 {
		if t, ok := p.w.(*yui.Tree); ok {
			t.UserSetItemOpen(n, !n.IsOpen())
			p.b.ui.Post(func() { _ = p.Sync(yui.AspectItemState) })
			return
		}
	}
	_ = sel.UserActivate(it)
}

func (p *peer) treeBox(v *yui.Tree) {
	p.listBox(v.Label(), &v.SelectionWidget, func(lb *gtk.ListBox) {
		for _, n := range v.VisibleItems() {
			marker := "  "
			if len(n.Children()) > 0 {
				marker = "▸ "
				if n.IsOpen() {
					marker = "▾ "
				}
			}
			text := strings.Repeat("    ", n.Depth()) + marker + n.Label()
			p.addRow(lb, n, gtk.NewLabel(text))
		}
	})
}

func (p *peer) tableBox(v *yui.Table) {
	cols := v.Header().Columns()
	header := gtk.NewBox(gtk.OrientationHorizontal, 12)
	for _, c := range cols {
		l := gtk.NewLabel("")
		l.SetMarkup("<b>" + glib.MarkupEscapeText(c.Header) + "</b>")
		l.SetHExpand(true)
		l.SetXAlign(0)
		header.Append(l)
	}
	p.listBox("", &v.SelectionWidget, func(lb *gtk.ListBox) {
		for _, r := range v.Rows() {
			row := gtk.NewBox(gtk.OrientationHorizontal, 12)
			for i := range cols {
				if v.Header().IsCheckBoxColumn(i) {
					cb := gtk.NewCheckButton()
					c := r.Cell(i)
					cb.SetActive(c != nil && c.Checked())
					col := i
					cb.ConnectToggled(func() { p.user(func() { _ = v.UserToggleCell(r, col) }) })
					row.Append(cb)
					continue
				}
				l := gtk.NewLabel(r.CellLabel(i))
				l.SetHExpand(true)
				l.SetXAlign(map[yui.Alignment]float32{yui.AlignCenter: 0.5, yui.AlignEnd: 1}[cols[i].Align])
				row.Append(l)
			}
			p.addRow(lb, r, row)
		}
	})
	list := p.native
	box := gtk.NewBox(gtk.OrientationVertical, 2)
	box.Append(header)
	box.Append(list)
	p.set(box)
}

func (p *peer) richText(v *yui.RichText) {
	l := gtk.NewLabel("")
	l.SetXAlign(0)
	l.SetYAlign(0)
	l.SetWrap(true)
	l.SetSelectable(true)
	sw := scrolled(l)
	p.set(sw)
	l.ConnectActivateLink(func(uri string) bool {
		v.ActivateLink(uri)
		return true
	})
	p.sync = func(a yui.Aspect) {
		if a != yui.AspectValue {
			return
		}
		if v.PlainText() {
			l.SetText(v.Value())
		} else {
			doc, err := markup.Parse(v.Value(), markup.Detect(v.Value()))
			if err != nil {
				p.b.log.Debug(logging.CategoryWidget, "markup_failed", err.Error(), nil)
				doc = markup.ParsePlain(v.Value())
			}
			l.SetMarkup(doc.Pango())
		}
		if v.AutoScrollDown() {
			adj := sw.VAdjustment()
			adj.SetValue(adj.Upper())
		}
	}
}

// menuBar builds a gio menu model with one action per leaf item in a
// private action group.
func (p *peer) menuBar(v *yui.MenuBar) {
	model := gio.NewMenu()
	bar := gtk.NewPopoverMenuBarFromModel(model)
	p.set(bar)
	var group *gio.SimpleActionGroup
	n := 0

	var fill func(m *gio.Menu, items []*yui.MenuItem)
	fill = func(m *gio.Menu, items []*yui.MenuItem) {
		section := gio.NewMenu()
		for _, it := range items {
			switch {
			case !it.Visible():
			case it.IsSeparator():
				m.AppendSection("", section)
				section = gio.NewMenu()
			case it.IsMenu():
				sub := gio.NewMenu()
				fill(sub, it.Children())
				section.AppendSubmenu(label(it.Label()), sub)
			default:
				n++
				name := "item" + strconv.Itoa(n)
				var act *gio.SimpleAction
				if it.Checkable() {
					act = gio.NewSimpleActionStateful(name, nil, glib.NewVariantBoolean(it.Checked()))
				} else {
					act = gio.NewSimpleAction(name, nil)
				}
				act.SetEnabled(it.EffectivelyEnabled())
				act.ConnectActivate(func(*glib.Variant) { v.Activate(it) })
				group.AddAction(act)
				section.Append(label(it.Label()), "yui."+name)
			}
		}
		m.AppendSection("", section)
	}
	p.sync = func(a yui.Aspect) {
		switch a {
		case yui.AspectItems, yui.AspectItemState:
			model.RemoveAll()
			group = gio.NewSimpleActionGroup()
			n = 0
			for _, m := range v.Menus() {
				if !m.Visible() {
					continue
				}
				sub := gio.NewMenu()
				fill(sub, m.Children())
				model.AppendSubmenu(label(m.Label()), sub)
			}
			bar.InsertActionGroup("yui", group)
		}
	}
}

package yui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/config"
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

func strictConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Input.StrictDateTime = true
	return cfg
}

func newDialog(t *testing.T, opts ...yuitest.Option) (*yui.UI, *yuitest.Backend, *yui.Dialog, *yui.Box) {
	t.Helper()
	ui, be := yuitest.Install(t, opts...)
	d, err := ui.Factory().CreateMainDialog()
	require.NoError(t, err)
	vbox, err := ui.Factory().CreateVBox(d)
	require.NoError(t, err)
	return ui, be, d, vbox
}

func TestSingleChildContainers(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	frame, err := f.CreateFrame(vbox, "Frame")
	require.NoError(t, err)
	_, err = f.CreateLabel(frame, "first")
	require.NoError(t, err)

	_, err = f.CreateLabel(frame, "second")
	require.Error(t, err)
	assert.ErrorIs(t, err, yui.ErrInvalidWidget)
	assert.Len(t, frame.Children(), 1)

	align, err := f.CreateHVCenter(vbox)
	require.NoError(t, err)
	_, err = f.CreatePushButton(align, "a")
	require.NoError(t, err)
	_, err = f.CreatePushButton(align, "b")
	assert.True(t, yerrors.IsCode(err, yerrors.ErrCodeInvalidWidget))
	assert.Len(t, align.Children(), 1)
}

func TestPanedTakesTwoChildren(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	p, err := f.CreatePaned(vbox, yui.Horizontal)
	require.NoError(t, err)
	_, err = f.CreateLabel(p, "left")
	require.NoError(t, err)
	_, err = f.CreateLabel(p, "right")
	require.NoError(t, err)
	_, err = f.CreateLabel(p, "third")
	assert.ErrorIs(t, err, yui.ErrInvalidWidget)
	assert.Len(t, p.Children(), 2)
	assert.True(t, p.Stretchable(yui.Horizontal))
}

func TestLeavesRejectChildren(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	lbl, err := f.CreateLabel(vbox, "leaf")
	require.NoError(t, err)
	_, err = f.CreateLabel(lbl, "child")
	assert.ErrorIs(t, err, yui.ErrInvalidWidget)
}

func TestAddChildStructuralErrors(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	hbox, err := f.CreateHBox(vbox)
	require.NoError(t, err)

	assert.ErrorIs(t, hbox.AddChild(vbox), yui.ErrInvalidWidget, "cycle")
	assert.ErrorIs(t, hbox.AddChild(d), yui.ErrInvalidWidget, "dialog as child")
	assert.ErrorIs(t, hbox.AddChild(nil), yui.ErrInvalidWidget, "nil child")

	lbl, err := f.CreateLabel(vbox, "owned")
	require.NoError(t, err)
	assert.ErrorIs(t, hbox.AddChild(lbl), yui.ErrInvalidWidget, "already parented")
}

func TestUnsupportedWidget(t *testing.T) {
	ui, _, _, vbox := newDialog(t, yuitest.WithoutKinds(yui.KindSlider, yui.KindDateField))
	f := ui.Factory()
	opt := ui.OptionalFactory()

	assert.False(t, opt.HasSlider())
	assert.False(t, opt.HasDateField())
	assert.True(t, opt.HasTimeField())
	assert.True(t, opt.HasPaned())

	before := len(vbox.Children())
	s, err := opt.CreateSlider(vbox, "Volume", 0, 10, 5)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, yui.ErrUnsupportedWidget)
	_, err = f.CreateDateField(vbox, "Date")
	assert.True(t, yerrors.IsCode(err, yerrors.ErrCodeUnsupportedWidget))
	assert.Len(t, vbox.Children(), before)
}

func TestEnabledAndVisibleInheritance(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	hbox, err := f.CreateHBox(vbox)
	require.NoError(t, err)
	btn, err := f.CreatePushButton(hbox, "Go")
	require.NoError(t, err)

	hbox.SetEnabled(false)
	assert.False(t, btn.IsEnabled())
	assert.False(t, btn.EffectivelyEnabled())
	assert.False(t, btn.Activate())
	assert.False(t, d.HasPendingEvent())

	hbox.SetEnabled(true)
	vbox.SetVisible(false)
	assert.True(t, btn.IsVisible())
	assert.False(t, yui.EffectivelyVisible(btn))
	assert.Empty(t, d.FocusableWidgets())
}

func TestCheckBoxFrameAutoEnable(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	frame, err := f.CreateCheckBoxFrame(vbox, "Expert", false)
	require.NoError(t, err)
	input, err := f.CreateInputField(frame, "Option")
	require.NoError(t, err)
	assert.False(t, input.IsEnabled())

	frame.SetValue(true)
	assert.True(t, input.IsEnabled())

	frame.SetInvertAutoEnable(true)
	assert.False(t, input.IsEnabled())
}

func TestSingleSelectionKeepsOneItem(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	box, err := f.CreateSelectionBox(vbox, "Pick")
	require.NoError(t, err)
	a, b, c := yui.NewItem("a"), yui.NewItem("b"), yui.NewItem("c")
	require.NoError(t, box.AddItems(a, b, c))

	for _, it := range []*yui.Item{a, c, b, b} {
		require.NoError(t, box.SelectItem(it, true))
		assert.Len(t, box.SelectedItems(), 1)
		assert.Same(t, it, box.SelectedItem())
	}
	assert.False(t, d.HasPendingEvent())

	err = box.AddItem(yui.NewTreeItem(nil, "wrong", false))
	assert.ErrorIs(t, err, yui.ErrInvalidWidget)
}

func TestMultiSelection(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	box, err := ui.Factory().CreateMultiSelectionBox(vbox, "Pick")
	require.NoError(t, err)
	a, b := yui.NewItem("a"), yui.NewItem("b")
	require.NoError(t, box.AddItems(a, b))
	require.NoError(t, box.SelectItem(a, true))
	require.NoError(t, box.SelectItem(b, true))
	assert.Len(t, box.SelectedItems(), 2)

	box.DeselectAllItems()
	assert.Empty(t, box.SelectedItems())
}

func TestIntFieldClamps(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	field, err := ui.Factory().CreateIntField(vbox, "Count", -5, 10, 0)
	require.NoError(t, err)

	tests := []struct {
		in, want int
	}{
		{in: 3, want: 3},
		{in: -5, want: -5},
		{in: -6, want: -5},
		{in: 10, want: 10},
		{in: 1000, want: 10},
	}
	for _, tt := range tests {
		field.SetValue(tt.in)
		assert.Equal(t, tt.want, field.Value(), "SetValue(%d)", tt.in)
	}
}

func TestDateAndTimeRoundTrip(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()
	df, err := f.CreateDateField(vbox, "Date")
	require.NoError(t, err)
	tf, err := f.CreateTimeField(vbox, "Time")
	require.NoError(t, err)

	for _, s := range []string{"2024-02-29", "2000-02-29", "0001-01-01", "9999-12-31", "2023-04-30"} {
		require.NoError(t, df.SetValue(s))
		assert.Equal(t, s, df.Value())
	}

	require.NoError(t, df.SetValue("2023-06-15"))
	for _, s := range []string{"1900-02-29", "2023-04-31", "2023-13-01", "2023-6-15", "20230615", "abcd-ef-gh", ""} {
		require.NoError(t, df.SetValue(s))
		assert.Equal(t, "2023-06-15", df.Value(), "input %q", s)
	}

	require.NoError(t, tf.SetValue("23:59:59"))
	assert.Equal(t, "23:59:59", tf.Value())
	require.NoError(t, tf.SetValue("24:00:00"))
	assert.Equal(t, "23:59:59", tf.Value())

	df.UserSetDate(2023, 2, 31)
	assert.Equal(t, "2023-02-28", df.Value())
	tf.UserSetTime(25, -1, 61)
	assert.Equal(t, "23:00:59", tf.Value())
}

func TestNotifyGatesEvents(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	cb, err := f.CreateCheckBox(vbox, "Agree", false)
	require.NoError(t, err)
	cb.UserToggle()
	assert.True(t, cb.Value())
	assert.False(t, d.HasPendingEvent(), "notify off")

	cb.SetNotify(true)
	cb.SetValue(false)
	assert.False(t, d.HasPendingEvent(), "programmatic change")

	cb.UserToggle()
	require.True(t, d.HasPendingEvent())
	ev, err := d.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, yui.ValueChanged, ev.Reason)
	assert.Same(t, cb, ev.Widget)

	input, err := f.CreateInputField(vbox, "Name")
	require.NoError(t, err)
	input.UserSetValue("x")
	assert.False(t, d.HasPendingEvent())
	input.SetNotify(true)
	input.SetValue("y")
	assert.False(t, d.HasPendingEvent())
	input.UserSetValue("z")
	assert.True(t, d.HasPendingEvent())
}

func TestRadioButtonsInSameParent(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	f := ui.Factory()

	a, err := f.CreateRadioButton(vbox, "A", true)
	require.NoError(t, err)
	b, err := f.CreateRadioButton(vbox, "B", false)
	require.NoError(t, err)

	b.SetValue(true)
	assert.True(t, a.Value(), "programmatic set does not touch siblings")

	b.UserSelect()
	assert.False(t, a.Value())
	assert.True(t, b.Value())
}

func TestDefaultButton(t *testing.T) {
	ui, _, d, vbox := newDialog(t, yuitest.WithScript(yuitest.PressDefault()))
	f := ui.Factory()

	input, err := f.CreateInputField(vbox, "Name")
	require.NoError(t, err)
	ok, err := f.CreatePushButton(vbox, "OK")
	require.NoError(t, err)
	ok.SetDefault(true)
	assert.Same(t, ok, d.DefaultButton())

	require.NoError(t, d.Open())
	require.NoError(t, d.SetFocus(input))
	assert.False(t, d.ActivateDefault(), "text editor has focus")

	require.NoError(t, d.SetFocus(ok))
	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.True(t, ev.IsActivation(ok))

	other, err := f.CreatePushButton(vbox, "Other")
	require.NoError(t, err)
	require.NoError(t, d.SetDefaultButton(other))
	assert.False(t, ok.IsDefault())
	assert.True(t, other.IsDefault())
}

func TestFocusCycling(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	_, err := f.CreateLabel(vbox, "not focusable")
	require.NoError(t, err)
	first, err := f.CreateInputField(vbox, "First")
	require.NoError(t, err)
	second, err := f.CreatePushButton(vbox, "Second")
	require.NoError(t, err)

	require.NoError(t, d.Open())
	assert.Same(t, first, d.Focused())
	assert.Same(t, second, d.FocusNext(false))
	assert.Same(t, first, d.FocusNext(false))
	assert.Same(t, second, d.FocusNext(true))
}

func TestFindWidget(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()

	btn, err := f.CreatePushButton(vbox, "&Save")
	require.NoError(t, err)
	btn.SetID("save")

	w, err := d.FindWidget("save")
	require.NoError(t, err)
	assert.Same(t, btn, w)

	w, err = d.FindWidgetByLabel("Save")
	require.NoError(t, err)
	assert.Same(t, btn, w)

	_, err = d.FindWidget("missing")
	assert.ErrorIs(t, err, yui.ErrWidgetNotFound)
	_, err = d.FindWidgetByLabel("Missing")
	assert.ErrorIs(t, err, yui.ErrWidgetNotFound)
}

func TestSyncFailuresAreSwallowed(t *testing.T) {
	ui, be, d, vbox := newDialog(t, yuitest.FailSync())
	lbl, err := ui.Factory().CreateLabel(vbox, "before")
	require.NoError(t, err)
	require.NoError(t, d.Open())

	lbl.SetLabel("after")
	assert.Equal(t, "after", lbl.Label())
	assert.Empty(t, be.Syncs())
}

func TestSettersSyncRealizedPeers(t *testing.T) {
	ui, be, d, vbox := newDialog(t)
	lbl, err := ui.Factory().CreateLabel(vbox, "before")
	require.NoError(t, err)

	lbl.SetLabel("unrealized")
	assert.Empty(t, be.SyncsFor(lbl))

	require.NoError(t, d.Open())
	lbl.SetLabel("after")
	assert.Equal(t, []yui.Aspect{yui.AspectLabel}, be.SyncsFor(lbl))
}

func TestLogViewRetention(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	lv, err := ui.Factory().CreateLogView(vbox, "Log", 5, 3)
	require.NoError(t, err)

	lv.AppendLines("one\ntwo\nthree\nfour\nfive\n")
	assert.Equal(t, 3, lv.Lines())
	assert.Equal(t, []string{"three", "four", "five"}, lv.LineSlice())

	lv.ClearText()
	assert.Equal(t, 0, lv.Lines())
}

func TestRichTextLinkPostsURL(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	rt, err := ui.Factory().CreateRichText(vbox, `<a href="https://example.org/x?y=1">x</a>`, false)
	require.NoError(t, err)

	rt.ActivateLink("https://example.org/x?y=1")
	ev, err := d.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, yui.MenuEvent, ev.Type)
	assert.Equal(t, "https://example.org/x?y=1", ev.ID)
}

func TestNestedMenuPath(t *testing.T) {
	ui, _, d, vbox := newDialog(t, yuitest.WithScript(yuitest.ActivateMenu("Edit/Format/Bold")))
	bar, err := ui.Factory().CreateMenuBar(vbox)
	require.NoError(t, err)
	bold := bar.AddMenu("Edit").AddMenu("Format").AddCheckItem("Bold", false)

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, "Edit/Format/Bold", ev.ID)
	assert.True(t, bold.Checked())

	_, err = bar.FindMenuItem("Edit/Nope")
	assert.ErrorIs(t, err, yui.ErrWidgetNotFound)
}

func TestTableCheckBoxColumn(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	header := yui.NewTableHeader("Name")
	header.AddCheckBoxColumn("Enabled")
	table, err := ui.Factory().CreateTable(vbox, header, true)
	require.NoError(t, err)
	assert.False(t, table.MultiSelection(), "check box column forces single selection")

	row := yui.NewTableItem("sshd")
	row.AddCheckBoxCell(false)
	require.NoError(t, table.AddItem(row))
	table.SetNotify(true)

	require.NoError(t, table.UserToggleCell(row, 1))
	assert.True(t, row.Cell(1).Checked())
	ev, err := d.PollEvent()
	require.NoError(t, err)
	assert.Equal(t, yui.ValueChanged, ev.Reason)
	assert.Equal(t, 1, ev.Column)
}

type orderPeer struct {
	name  string
	order *[]string
}

func (p orderPeer) Sync(yui.Aspect) error { return nil }
func (p orderPeer) Destroy() { *p.order = append(*p.order, p.name) }

func TestDestroyReleasesPeersTopDown(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	f := ui.Factory()
	frame, err := f.CreateFrame(vbox, "Options")
	require.NoError(t, err)
	inner, err := f.CreateVBox(frame)
	require.NoError(t, err)
	ok, err := f.CreatePushButton(inner, "&OK")
	require.NoError(t, err)

	var order []string
	for name, w := range map[string]yui.Widget{"vbox": vbox, "frame": frame, "inner": inner, "ok": ok} {
		w.SetPeer(orderPeer{name: name, order: &order})
	}

	require.NoError(t, d.Destroy())
	assert.Equal(t, []string{"vbox", "frame", "inner", "ok"}, order)
	assert.True(t, ok.IsDestroyed())
	assert.Nil(t, ok.Peer())
}

package yui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

func TestHelloWorld(t *testing.T) {
	ui, be := yuitest.Install(t, yuitest.WithScript(yuitest.Press("OK")))
	f := ui.Factory()

	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	_, err = f.CreateLabel(vbox, "Hello, World!")
	require.NoError(t, err)
	ok, err := f.CreatePushButton(vbox, "&OK")
	require.NoError(t, err)

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, yui.WidgetEvent, ev.Type)
	assert.Equal(t, yui.Activated, ev.Reason)
	assert.Same(t, ok, ev.Widget)
	assert.True(t, ev.IsActivation(ok))
	assert.Len(t, be.OpenDialogs(), 1)

	require.NoError(t, d.Destroy())
	assert.False(t, ui.HasDialogs())
	assert.Empty(t, be.OpenDialogs())
	assert.True(t, ok.IsDestroyed())
}

func TestDateFieldIgnoresInvalidDates(t *testing.T) {
	ui, _ := yuitest.Install(t)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	df, err := f.CreateDateField(d, "Date")
	require.NoError(t, err)

	before := df.Value()
	require.NoError(t, df.SetValue("2025-02-31"))
	assert.Equal(t, before, df.Value())

	require.NoError(t, df.SetValue("2024-02-29"))
	assert.Equal(t, "2024-02-29", df.Value())
}

func TestMenuPath(t *testing.T) {
	ui, _ := yuitest.Install(t, yuitest.WithScript(yuitest.ActivateMenu("File/Open")))
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	bar, err := f.CreateMenuBar(vbox)
	require.NoError(t, err)

	file := bar.AddMenu("File")
	open := file.AddItem("Open")
	closeItem := file.AddItem("Close")
	closeItem.SetEnabled(false)

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, yui.MenuEvent, ev.Type)
	assert.Equal(t, "File/Open", ev.ID)
	assert.Same(t, open, ev.MenuItem)

	open.SetEnabled(false)
	closeItem.SetEnabled(true)
	assert.False(t, bar.Activate(open))
	assert.True(t, bar.Activate(closeItem))

	ev, err = d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, "File/Close", ev.ID)
}

func TestTabSwap(t *testing.T) {
	ui, be := yuitest.Install(t, yuitest.WithScript(yuitest.SelectTab("Notes")))
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	tab, err := f.CreateDumbTab(vbox)
	require.NoError(t, err)

	options := yui.NewItem("Options")
	require.NoError(t, tab.AddItems(options, yui.NewItem("Notes"), yui.NewItem("Actions")))
	require.NoError(t, tab.SelectItem(options, true))

	rp, err := f.CreateReplacePoint(tab)
	require.NoError(t, err)
	_, err = f.CreateLabel(rp, "options page")
	require.NoError(t, err)

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	require.Equal(t, yui.WidgetEvent, ev.Type)
	assert.Equal(t, yui.Activated, ev.Reason)
	assert.Same(t, tab, ev.Widget)
	assert.Equal(t, "Notes", yui.ItemOf(ev.Item).Label())
	assert.Equal(t, "Notes", tab.CurrentTab().Label())

	old := rp.FirstChild()
	rp.DeleteChildren()
	notes, err := f.CreateLabel(rp, "notes page")
	require.NoError(t, err)
	be.ResetSyncs()
	rp.ShowChild()

	assert.True(t, old.IsDestroyed())
	require.Len(t, rp.Children(), 1)
	assert.Same(t, notes, rp.FirstChild())
	assert.True(t, notes.IsRealized())
	assert.Contains(t, be.SyncsFor(d), yui.AspectLayout)
}

func TestProgressWithTimeoutPump(t *testing.T) {
	ui, be := yuitest.Install(t)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	pb, err := f.CreateProgressBar(d, "Working", 100)
	require.NoError(t, err)
	pb.SetValue(0)

	const timeouts = 3
	for {
		if pb.Value() == timeouts {
			be.Push(yuitest.Cancel())
		}
		ev, err := d.WaitForEvent(5)
		require.NoError(t, err)
		if ev.Type != yui.TimeoutEvent {
			assert.Equal(t, yui.CancelEvent, ev.Type)
			break
		}
		pb.SetValue(pb.Value() + 1)
	}
	assert.Equal(t, timeouts, pb.Value())

	pb.SetValue(250)
	assert.Equal(t, 100, pb.Value())
	assert.Equal(t, 100, pb.Percent())
}

func TestRecursiveTreeSelection(t *testing.T) {
	ui, _ := yuitest.Install(t)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	tree, err := f.CreateTree(d, "Tree", true, true)
	require.NoError(t, err)

	r := yui.NewTreeItem(nil, "R", true)
	a := yui.NewTreeItem(r, "A", true)
	b := yui.NewTreeItem(r, "B", false)
	a1 := yui.NewTreeItem(a, "A1", false)
	a2 := yui.NewTreeItem(a, "A2", false)
	require.NoError(t, tree.AddItem(r))
	require.NoError(t, tree.SelectItem(b, true))

	require.NoError(t, tree.SelectItem(a, true))
	assert.Equal(t, []yui.SelectionItem{a, a1, a2, b}, tree.SelectedItems())

	require.NoError(t, tree.SelectItem(a, false))
	for _, it := range []*yui.TreeItem{a, a1, a2} {
		assert.False(t, it.Selected(), it.Label())
	}
	assert.True(t, b.Selected())
	assert.False(t, r.Selected())
}

func TestUserReselectRestoresSubtree(t *testing.T) {
	ui, _ := yuitest.Install(t)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	tree, err := f.CreateTree(d, "Tree", true, true)
	require.NoError(t, err)
	tree.SetNotify(true)

	a := yui.NewTreeItem(nil, "A", true)
	a1 := yui.NewTreeItem(a, "A1", false)
	a2 := yui.NewTreeItem(a, "A2", false)
	require.NoError(t, tree.AddItem(a))
	require.NoError(t, tree.SelectItem(a, true))

	require.NoError(t, tree.UserSelect(a1, false))
	ev, err := d.WaitForEvent(10)
	require.NoError(t, err)
	assert.Equal(t, yui.SelectionChanged, ev.Reason)
	assert.True(t, a.Selected())
	assert.False(t, a1.Selected())

	require.NoError(t, tree.UserSelect(a, true))
	assert.True(t, a1.Selected())
	assert.True(t, a2.Selected())
	ev, err = d.WaitForEvent(10)
	require.NoError(t, err)
	assert.Same(t, a, ev.Item)

	require.NoError(t, tree.UserSelect(a, true))
	assert.False(t, d.HasPendingEvent(), "nothing changed")
}

func TestStrictDateInput(t *testing.T) {
	cfg := strictConfig()
	ui, _ := yuitest.InstallWithConfig(t, cfg)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)

	df, err := f.CreateDateField(d, "Date")
	require.NoError(t, err)
	err = df.SetValue("2023-02-29")
	require.Error(t, err)
	assert.True(t, yerrors.IsCode(err, yerrors.ErrCodeInvalidInput))
	assert.ErrorIs(t, err, yui.ErrInvalidInput)
}

func TestParseDateAndTime(t *testing.T) {
	dates := []struct {
		in string
		ok bool
	}{
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-04-31", false},
		{"2024-2-09", false},
		{"+001-02-03", false},
		{"0000-01-01", false},
		{"2024-12-31", true},
	}
	for _, tt := range dates {
		_, _, _, ok := yui.ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	y, m, d, ok := yui.ParseDate("2024-02-29")
	require.True(t, ok)
	assert.Equal(t, [3]int{2024, 2, 29}, [3]int{y, m, d})

	times := []struct {
		in string
		ok bool
	}{
		{"23:59:59", true},
		{"00:00:00", true},
		{"24:00:00", false},
		{"7:05:00", false},
		{"12:60:00", false},
		{"12:00", false},
	}
	for _, tt := range times {
		_, _, _, ok := yui.ParseTime(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	hh, mm, ss, ok := yui.ParseTime("07:05:09")
	require.True(t, ok)
	assert.Equal(t, [3]int{7, 5, 9}, [3]int{hh, mm, ss})
}

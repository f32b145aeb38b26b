package ncurses

import (
	"context"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/config"
	"github.com/odvcencio/yui/pkg/ui/term/sim"
	"github.com/odvcencio/yui/pkg/ui/terminal"
	"github.com/odvcencio/yui/pkg/yui"
)

func install(t *testing.T, width, height int) (*yui.UI, *Backend, *sim.Terminal) {
	t.Helper()
	screen := sim.New(width, height)
	var be *Backend
	ui, err := yui.InstallBackend(config.DefaultConfig(), func(ui *yui.UI) (yui.Backend, error) {
		var err error
		be, err = NewWithTerminal(ui, screen, WithProfile(termenv.Ascii))
		return be, err
	})
	require.NoError(t, err)
	t.Cleanup(yui.Teardown)
	return ui, be, screen
}

// idle pumps d until the timeout and expects nothing else to happen.
func idle(t *testing.T, d *yui.Dialog, millis int) {
	t.Helper()
	ev, err := d.WaitForEvent(millis)
	require.NoError(t, err)
	require.Equal(t, yui.TimeoutEvent, ev.Type, "unexpected %s", ev)
}

func helloDialog(t *testing.T, ui *yui.UI) (*yui.Dialog, *yui.Box, *yui.PushButton) {
	t.Helper()
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	_, err = f.CreateLabel(vbox, "Hello, World!")
	require.NoError(t, err)
	ok, err := f.CreatePushButton(vbox, "&OK")
	require.NoError(t, err)
	return d, vbox, ok
}

func TestRendersDialog(t *testing.T) {
	ui, be, screen := install(t, 60, 12)
	d, _, _ := helloDialog(t, ui)
	d.SetTitle("Greeting")

	idle(t, d, 30)
	assert.True(t, screen.ContainsText("Hello, World!"), screen.Capture())
	assert.True(t, screen.ContainsText("[ OK ]"), screen.Capture())
	assert.True(t, screen.ContainsText("Greeting"))
	assert.Positive(t, be.Frames())
	assert.Positive(t, screen.Shows())
}

func TestF10Cancels(t *testing.T) {
	ui, _, screen := install(t, 60, 12)
	d, _, _ := helloDialog(t, ui)
	idle(t, d, 10)

	screen.InjectKey(terminal.KeyF10, 0)
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.CancelEvent, ev.Type)
}

func TestEnterActivatesFocusedButton(t *testing.T) {
	ui, _, screen := install(t, 60, 12)
	d, _, ok := helloDialog(t, ui)
	idle(t, d, 10)
	require.Same(t, ok, d.Focused())

	screen.InjectKey(terminal.KeyEnter, 0)
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.True(t, ev.IsActivation(ok), "got %s", ev)
}

func TestEnterActivatesDefaultButton(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, vbox, ok := helloDialog(t, ui)
	box, err := f.CreateCheckBox(vbox, "&Verbose", false)
	require.NoError(t, err)
	require.NoError(t, d.SetDefaultButton(ok))
	require.NoError(t, d.Open())
	require.NoError(t, d.SetFocus(box))

	screen.InjectKey(terminal.KeyEnter, 0)
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.True(t, ev.IsActivation(ok), "got %s", ev)
	assert.False(t, box.Value())
}

func TestTabMovesFocus(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, vbox, ok := helloDialog(t, ui)
	cancel, err := f.CreatePushButton(vbox, "&Cancel")
	require.NoError(t, err)
	idle(t, d, 10)
	require.Same(t, ok, d.Focused())

	screen.InjectKey(terminal.KeyTab, 0)
	idle(t, d, 50)
	assert.Same(t, cancel, d.Focused())

	screen.InjectKey(terminal.KeyBacktab, 0)
	idle(t, d, 50)
	assert.Same(t, ok, d.Focused())
}

func TestTypingIntoInputField(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	name, err := f.CreateInputField(vbox, "&Name")
	require.NoError(t, err)
	idle(t, d, 10)
	require.Same(t, name, d.Focused())

	screen.InjectKeyString("abd")
	screen.InjectKey(terminal.KeyLeft, 0)
	screen.InjectKeyRune('c')
	screen.InjectKey(terminal.KeyBackspace, 0)
	screen.InjectKeyRune('c')
	idle(t, d, 150)
	assert.Equal(t, "abcd", name.Value())
	assert.True(t, screen.ContainsText("abcd"))

	screen.InjectKeyRune('q')
	idle(t, d, 100)
	assert.Equal(t, "abcdq", name.Value(), "q is text while an editor has focus")
}

func TestSpaceTogglesCheckBox(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	box, err := f.CreateCheckBox(d, "&Verbose", false)
	require.NoError(t, err)
	box.SetNotify(true)
	idle(t, d, 10)

	screen.InjectKeyRune(' ')
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.ValueChanged, ev.Reason)
	assert.True(t, box.Value())
	idle(t, d, 50)
	assert.True(t, screen.ContainsText("[x] Verbose"), screen.Capture())
}

func TestResizeIsDebounced(t *testing.T) {
	ui, be, screen := install(t, 60, 16)
	d, _, _ := helloDialog(t, ui)
	idle(t, d, 20)
	before := be.Relayouts()

	for i := 0; i < 5; i++ {
		screen.InjectResize(70+i, 20)
	}
	idle(t, d, 50)
	assert.Equal(t, before, be.Relayouts(), "still settling")

	idle(t, d, 400)
	assert.Equal(t, before+1, be.Relayouts())
	w, h := be.ScreenSize()
	assert.Equal(t, 74, w)
	assert.Equal(t, 20, h)
}

func TestMenuKeyboard(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	vbox, err := f.CreateVBox(d)
	require.NoError(t, err)
	bar, err := f.CreateMenuBar(vbox)
	require.NoError(t, err)
	file := bar.AddMenu("&File")
	file.AddItem("&Open")
	file.AddSeparator()
	quit := file.AddItem("&Quit")
	idle(t, d, 10)

	screen.InjectKey(terminal.KeyF9, 0)
	idle(t, d, 50)
	assert.True(t, screen.ContainsText("Quit"), screen.Capture())

	screen.InjectKey(terminal.KeyDown, 0)
	screen.InjectKey(terminal.KeyEnter, 0)
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.MenuEvent, ev.Type)
	assert.Same(t, quit, ev.MenuItem)
}

func TestSelectionBoxNavigation(t *testing.T) {
	ui, _, screen := install(t, 60, 20)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	list, err := f.CreateSelectionBox(d, "&Services")
	require.NoError(t, err)
	a, b := yui.NewItem("cron"), yui.NewItem("sshd")
	require.NoError(t, list.AddItems(a, b))
	list.SetNotify(true)
	idle(t, d, 10)

	screen.InjectKey(terminal.KeyDown, 0)
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.SelectionChanged, ev.Reason)
	assert.Same(t, b, list.SelectedItem())

	screen.InjectKey(terminal.KeyEnter, 0)
	ev, err = d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.Activated, ev.Reason)
	assert.Same(t, b, ev.Item)
}

func TestPopupDrawsOverMainDialog(t *testing.T) {
	ui, _, screen := install(t, 60, 20)
	main, _, _ := helloDialog(t, ui)
	require.NoError(t, main.Open())

	f := ui.Factory()
	popup, err := f.CreatePopupDialog(yui.ColorWarning)
	require.NoError(t, err)
	popup.SetTitle("Warning")
	_, err = f.CreateLabel(popup, "Disk almost full")
	require.NoError(t, err)
	idle(t, popup, 30)

	assert.True(t, screen.ContainsText("Disk almost full"))
	assert.True(t, screen.ContainsText("Hello, World!"), "main dialog still visible below")
	_, y := screen.FindText("Disk almost full")
	assert.Greater(t, y, 0)

	require.NoError(t, popup.Destroy())
	idle(t, main, 30)
	assert.False(t, screen.ContainsText("Disk almost full"))
}

func TestIntFieldClampsTypedValue(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	require.NoError(t, err)
	field, err := f.CreateIntField(d, "&Count", 0, 50, 5)
	require.NoError(t, err)
	idle(t, d, 10)

	screen.InjectKey(terminal.KeyBackspace, 0)
	screen.InjectKeyString("99")
	idle(t, d, 100)
	assert.Equal(t, 50, field.Value())

	screen.InjectKey(terminal.KeyDown, 0)
	idle(t, d, 50)
	assert.Equal(t, 49, field.Value())
}

func TestSegmentsFollowLocaleOrder(t *testing.T) {
	segs := dateSegments(yui.OrderDMY, 2024, 2, 29)
	var text string
	for _, s := range segs {
		text += s.text() + s.sep
	}
	assert.Equal(t, "29.02.2024", text)

	require.True(t, editSegments(segs, 0, "Up", 0))
	assert.Equal(t, [3]int{2024, 2, 30}, partsOf(segs))
	assert.Equal(t, 42, typeDigit(4, 2, 2))
	assert.Equal(t, 23, typeDigit(12, 2, 3))
}

func TestPumpReturnsOnPostedWork(t *testing.T) {
	ui, _, _ := install(t, 40, 10)
	d, _, _ := helloDialog(t, ui)
	idle(t, d, 10)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	done := make(chan struct{})
	go func() {
		_ = ui.Invoke(ctx, func() { d.PostEvent(yui.NewGenericEvent("work")) })
		close(done)
	}()
	start := time.Now()
	ev, err := d.WaitForEvent(5000)
	require.NoError(t, err)
	assert.Equal(t, yui.GenericEvent, ev.Type)
	assert.Less(t, time.Since(start), 2*time.Second)
	<-done
}

func TestSpaceActivatesDefaultButton(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, vbox, ok := helloDialog(t, ui)
	volume, err := f.CreateSlider(vbox, "&Volume", 0, 10, 5)
	require.NoError(t, err)
	require.NoError(t, d.SetDefaultButton(ok))
	require.NoError(t, d.Open())
	require.NoError(t, d.SetFocus(volume))

	screen.InjectKeyRune(' ')
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.True(t, ev.IsActivation(ok), "got %s", ev)
	assert.Equal(t, 5, volume.Value())
}

func TestSpaceIsTextInEditor(t *testing.T) {
	ui, _, screen := install(t, 60, 16)
	f := ui.Factory()
	d, vbox, ok := helloDialog(t, ui)
	name, err := f.CreateInputField(vbox, "&Name")
	require.NoError(t, err)
	require.NoError(t, d.SetDefaultButton(ok))
	require.NoError(t, d.Open())
	require.NoError(t, d.SetFocus(name))

	screen.InjectKeyString("a b")
	idle(t, d, 100)
	assert.Equal(t, "a b", name.Value())
}

func TestQuitKeyCancels(t *testing.T) {
	ui, _, screen := install(t, 60, 12)
	d, _, ok := helloDialog(t, ui)
	idle(t, d, 10)
	require.Same(t, ok, d.Focused())

	screen.InjectKeyRune('Q')
	ev, err := d.WaitForEvent(2000)
	require.NoError(t, err)
	assert.Equal(t, yui.CancelEvent, ev.Type)
	assert.True(t, d.IsClosed())
}

func TestUnforcedRedrawsAreRateLimited(t *testing.T) {
	ui, be, _ := install(t, 60, 12)
	d, _, _ := helloDialog(t, ui)
	idle(t, d, 10)
	before := be.Frames()

	start := time.Now()
	for time.Since(start) < 250*time.Millisecond {
		be.invalidate()
		be.redraw(false)
		time.Sleep(2 * time.Millisecond)
	}
	drawn := be.Frames() - before
	assert.GreaterOrEqual(t, drawn, 1)
	assert.LessOrEqual(t, drawn, 4, "at most one unforced frame per 100ms")

	be.invalidate()
	be.redraw(true)
	assert.Equal(t, before+drawn+1, be.Frames(), "forced redraws bypass the limiter")
}

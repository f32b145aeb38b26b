package yui_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/yui"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

func TestWaitForEventTimeout(t *testing.T) {
	_, _, d, _ := newDialog(t)

	start := time.Now()
	ev, err := d.WaitForEvent(20)
	require.NoError(t, err)
	assert.Equal(t, yui.TimeoutEvent, ev.Type)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.False(t, d.IsClosed())
}

func TestCancelClosesDialog(t *testing.T) {
	_, _, d, _ := newDialog(t, yuitest.WithScript(yuitest.Cancel()))

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, yui.CancelEvent, ev.Type)
	assert.True(t, d.IsClosed())

	ev, err = d.WaitForEvent(1000)
	require.NoError(t, err)
	assert.Equal(t, yui.CancelEvent, ev.Type, "closed dialog cancels immediately")
}

func TestLastPostWins(t *testing.T) {
	ui, _, d, vbox := newDialog(t)
	a, err := ui.Factory().CreatePushButton(vbox, "A")
	require.NoError(t, err)
	b, err := ui.Factory().CreatePushButton(vbox, "B")
	require.NoError(t, err)

	a.Activate()
	b.Activate()
	assert.Equal(t, 1, d.PendingEvents())

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Same(t, b, ev.Widget)
	assert.Equal(t, 0, d.PendingEvents())
}

func TestPumpIsNotReentrant(t *testing.T) {
	var inner error
	_, _, d, _ := newDialog(t, yuitest.WithScript(yuitest.Do(func(d *yui.Dialog) error {
		_, inner = d.WaitForEvent(0)
		d.PostEvent(yui.NewGenericEvent("done"))
		return nil
	})))

	ev, err := d.WaitForEvent(0)
	require.NoError(t, err)
	assert.Equal(t, "done", ev.ID)
	assert.ErrorIs(t, inner, yui.ErrPumpReentrant)
}

func TestContextCancelPostsCancelEvent(t *testing.T) {
	_, _, d, _ := newDialog(t, yuitest.Blocking())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	ev, err := d.WaitForEventContext(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, yui.CancelEvent, ev.Type)
	assert.True(t, d.IsClosed())
}

func TestInvokeRunsOnPumpingGoroutine(t *testing.T) {
	ui, _, d, _ := newDialog(t, yuitest.Blocking())

	errc := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errc <- ui.Invoke(ctx, func() { d.PostEvent(yui.NewGenericEvent("remote")) })
	}()

	ev, err := d.WaitForEvent(5000)
	require.NoError(t, err)
	assert.Equal(t, yui.GenericEvent, ev.Type)
	assert.Equal(t, "remote", ev.ID)
	require.NoError(t, <-errc)
}

func TestDialogStackSymmetry(t *testing.T) {
	ui, _, main, _ := newDialog(t)
	before := ui.Dialogs()

	cur, err := ui.CurrentDialog()
	require.NoError(t, err)
	assert.Same(t, main, cur)

	popup, err := ui.Factory().CreatePopupDialog(yui.ColorWarning)
	require.NoError(t, err)
	_, err = ui.Factory().CreateLabel(popup, "Are you sure?")
	require.NoError(t, err)
	require.NoError(t, popup.Open())

	top, err := ui.TopmostDialog()
	require.NoError(t, err)
	assert.Same(t, popup, top)
	assert.Equal(t, yui.PopupDialog, popup.Type())
	assert.Equal(t, yui.ColorWarning, popup.ColorMode())

	require.NoError(t, popup.Destroy())
	assert.Equal(t, before, ui.Dialogs())

	_, err = popup.WaitForEvent(0)
	assert.ErrorIs(t, err, yui.ErrNoDialog)

	require.NoError(t, main.Destroy())
	_, err = ui.CurrentDialog()
	assert.ErrorIs(t, err, yui.ErrNoDialog)
}

func TestDestroyReleasesPeers(t *testing.T) {
	ui, be, d, vbox := newDialog(t)
	_, err := ui.Factory().CreateLabel(vbox, "x")
	require.NoError(t, err)
	require.NoError(t, d.Open())
	realized := be.Realized()
	require.Equal(t, 3, realized)

	require.NoError(t, d.Destroy())
	assert.Equal(t, realized, be.DestroyedPeers())
}

func TestScriptedActionErrorIsBackendFailure(t *testing.T) {
	_, _, d, _ := newDialog(t, yuitest.WithScript(yuitest.Press("Nope")))

	_, err := d.WaitForEvent(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event pump")
}

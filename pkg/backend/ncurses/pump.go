package ncurses

import (
	"time"

	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/ui/terminal"
	"github.com/odvcencio/yui/pkg/yui"
)

// PumpUntilEventOrTimeout implements yui.Pump. It reads terminal input in
// short slices of the poll interval so a pending resize can settle and a
// deferred redraw can go out between key presses.
func (b *Backend) PumpUntilEventOrTimeout(d *yui.Dialog, deadline time.Time) error {
	b.redraw(true)
	poll := b.cfg.TextMode.PollInterval
	if poll <= 0 {
		poll = 10 * time.Millisecond
	}
	for {
		if d.HasPendingEvent() || d.IsDestroyed() {
			b.redraw(true)
			return nil
		}
		now := time.Now()
		if !deadline.IsZero() && !now.Before(deadline) {
			b.redraw(true)
			return nil
		}
		wait := poll
		if !deadline.IsZero() {
			wait = min(wait, deadline.Sub(now))
		}
		timer := time.NewTimer(wait)
		select {
		case ev, ok := <-b.events:
			timer.Stop()
			if !ok {
				d.PostEvent(yui.NewCancelEvent())
				return nil
			}
			b.handleEvent(d, ev)
		case <-b.ui.Wakeup():
			timer.Stop()
			return nil
		case <-timer.C:
		}
		b.applyPendingResize(time.Now())
		b.redraw(false)
	}
}

func (b *Backend) handleEvent(d *yui.Dialog, ev terminal.Event) {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		b.resizeW, b.resizeH = e.Width, e.Height
		b.resizeAt = time.Now().Add(b.cfg.TextMode.ResizeDebounce)
		return
	case terminal.KeyEvent:
		b.handleKey(d, e)
	case terminal.MouseEvent:
		b.handleMouse(d, e)
	case terminal.PasteEvent:
		b.handlePaste(d, e.Text)
	}
	b.dirty = true
	b.redraw(true)
}

// applyPendingResize lays the dialogs out for the new size once the
// terminal has stopped resizing for the debounce interval.
func (b *Backend) applyPendingResize(now time.Time) {
	if b.resizeAt.IsZero() || now.Before(b.resizeAt) {
		return
	}
	b.resizeAt = time.Time{}
	w, h := b.resizeW, b.resizeH
	if w <= 0 || h <= 0 {
		w, h = b.term.Size()
	}
	b.log.Debug(logging.CategoryLayout, "resize", "terminal resized", map[string]any{
		"width":  w,
		"height": h,
	})
	b.width, b.height = w, h
	b.buf.Resize(w, h)
	for _, win := range b.windows {
		win.hits.Resize(w, h)
	}
	b.term.Sync()
	b.relayout()
	b.redraw(true)
}

// redraw paints the dialog stack when something changed. Unforced redraws
// are limited to one per redraw interval.
func (b *Backend) redraw(force bool) {
	if !b.dirty && !b.layoutDirty {
		return
	}
	if !force && !b.limiter.Allow() {
		return
	}
	if b.layoutDirty {
		b.layoutAll()
	}
	b.paint()
	b.dirty = false
}

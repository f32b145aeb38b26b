// Package native holds what the Qt and GTK backends share: the pump loop
// around a toolkit's non-blocking iteration call, the display probe, and
// the mapping from yui layout hints to toolkit stretch factors.
package native

import (
	"os"
	goruntime "runtime"
	"time"

	"github.com/odvcencio/yui/pkg/yui"
)

// IdleSlice is how long the pump sleeps when the toolkit had nothing to do.
const IdleSlice = 5 * time.Millisecond

// Iterate dispatches pending toolkit events without blocking and reports
// whether anything was dispatched.
type Iterate func() bool

// Pump runs iterate until d has an event, the UI has queued work, d is
// destroyed, or deadline passes. A zero deadline never expires.
func Pump(ui *yui.UI, d *yui.Dialog, deadline time.Time, iterate Iterate) error {
	for {
		busy := iterate()
		if d.HasPendingEvent() || d.IsDestroyed() || ui.HasPending() {
			return nil
		}
		now := time.Now()
		if !deadline.IsZero() && !now.Before(deadline) {
			return nil
		}
		if busy {
			continue
		}
		wait := IdleSlice
		if !deadline.IsZero() {
			wait = min(wait, deadline.Sub(now))
		}
		timer := time.NewTimer(wait)
		select {
		case <-ui.Wakeup():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// DisplayAvailable reports whether a graphical session is reachable. On
// Linux and the BSDs that means an X11 or Wayland display.
func DisplayAvailable() bool {
	switch goruntime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// Stretch is the stretch factor a child gets inside a box along dim: its
// weight when set, 1 when it is stretchable, otherwise 0.
func Stretch(w yui.Widget, dim yui.Dimension) int {
	if wt := w.Weight(dim); wt > 0 {
		return wt
	}
	if w.Stretchable(dim) {
		return 1
	}
	return 0
}

// ParentDim is the primary axis of w's parent box, or Vertical for other
// containers.
func ParentDim(w yui.Widget) yui.Dimension {
	switch p := w.Parent().(type) {
	case *yui.Box:
		return p.Primary()
	case *yui.Paned:
		return p.Primary()
	}
	return yui.Vertical
}

// Mnemonic converts a yui shortcut label to a toolkit one that uses
// marker instead of '&'. A doubled "&&" stays a literal ampersand.
func Mnemonic(label string, marker rune) string {
	out := make([]rune, 0, len(label))
	rs := []rune(label)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '&' && i+1 < len(rs) && rs[i+1] == '&':
			out = append(out, '&')
			i++
		case rs[i] == '&':
			out = append(out, marker)
		default:
			out = append(out, rs[i])
		}
	}
	return string(out)
}

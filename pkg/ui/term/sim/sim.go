// Package sim is an in-memory terminal for tests. Drawing goes to a tcell
// simulation screen; input comes from an explicit queue that tests fill
// with InjectKey, InjectResize and friends.
package sim

import (
	"errors"
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/yui/pkg/ui/term"
	"github.com/odvcencio/yui/pkg/ui/term/tcell"
	"github.com/odvcencio/yui/pkg/ui/terminal"
)

// ErrQueueFull is returned by PostEvent when the input queue is full.
var ErrQueueFull = errors.New("sim: event queue full")

const queueSize = 256

// Terminal is a simulated terminal.
type Terminal struct {
	*tcell.Terminal
	screen tcellv2.SimulationScreen

	mu            sync.Mutex
	width, height int
	shows         int
	beeps         int

	events   chan terminal.Event
	done     chan struct{}
	finiOnce sync.Once
}

// New creates a simulated terminal of the given size.
func New(width, height int) *Terminal {
	screen := tcellv2.NewSimulationScreen("")
	return &Terminal{
		Terminal: tcell.NewWithScreen(screen),
		screen:   screen,
		width:    width,
		height:   height,
		events:   make(chan terminal.Event, queueSize),
		done:     make(chan struct{}),
	}
}

// Init initializes the screen at the configured size.
func (s *Terminal) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.mu.Unlock()
	return nil
}

// Fini finalizes the screen and releases a blocked PollEvent.
func (s *Terminal) Fini() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.screen.Fini()
	})
}

// Size returns the simulated dimensions.
func (s *Terminal) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Show flushes drawing and counts frames.
func (s *Terminal) Show() {
	s.mu.Lock()
	s.shows++
	s.mu.Unlock()
	s.Terminal.Show()
}

// Shows returns how many frames were flushed.
func (s *Terminal) Shows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// Beep counts bells.
func (s *Terminal) Beep() {
	s.mu.Lock()
	s.beeps++
	s.mu.Unlock()
}

// Beeps returns how many bells rang.
func (s *Terminal) Beeps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beeps
}

// PollEvent returns the next queued event, or nil after Fini.
func (s *Terminal) PollEvent() terminal.Event {
	select {
	case ev := <-s.events:
		return ev
	case <-s.done:
		return nil
	}
}

// PostEvent queues ev without blocking.
func (s *Terminal) PostEvent(ev terminal.Event) error {
	select {
	case s.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

// Resize changes the size without posting an event.
func (s *Terminal) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectKey queues a key press.
func (s *Terminal) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyEvent queues a key press with modifiers.
func (s *Terminal) InjectKeyEvent(ev terminal.KeyEvent) {
	_ = s.PostEvent(ev)
}

// InjectKeyRune queues a printable character.
func (s *Terminal) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString queues each rune of str.
func (s *Terminal) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectResize resizes the screen and queues the matching event.
func (s *Terminal) InjectResize(width, height int) {
	s.Resize(width, height)
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// InjectMouse queues a left click at (x, y).
func (s *Terminal) InjectMouse(x, y int) {
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
}

// InjectPaste queues pasted text.
func (s *Terminal) InjectPaste(text string) {
	_ = s.PostEvent(terminal.PasteEvent{Text: text})
}

// Pending returns the number of queued events.
func (s *Terminal) Pending() int { return len(s.events) }

// Capture returns the screen as newline-separated rows.
func (s *Terminal) Capture() string {
	w, h := s.Size()
	return s.CaptureRegion(0, 0, w, h)
}

// CaptureCell returns the content and style of one cell.
func (s *Terminal) CaptureCell(x, y int) (mainc rune, comb []rune, style term.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, c, ts, _ := s.screen.GetContent(x, y)
	return m, c, tcell.StyleFromTcell(ts)
}

// CaptureRegion returns a rectangle of the screen as rows.
func (s *Terminal) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, width := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if width > 1 {
				col += width - 1
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText returns the cell position of text, or -1, -1.
func (s *Terminal) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Terminal) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

// Line returns one row of the screen with trailing spaces removed.
func (s *Terminal) Line(y int) string {
	w, _ := s.Size()
	return strings.TrimRight(s.CaptureRegion(0, y, w, 1), " ")
}

var _ term.Terminal = (*Terminal)(nil)

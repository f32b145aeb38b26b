package sim

import (
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/yui/pkg/ui/term"
	"github.com/odvcencio/yui/pkg/ui/terminal"
)

func newSim(t *testing.T, w, h int) *Terminal {
	t.Helper()
	s := New(w, h)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func write(s *Terminal, x, y int, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, term.DefaultStyle())
	}
	s.Show()
}

func TestRendering(t *testing.T) {
	s := newSim(t, 20, 5)
	write(s, 0, 0, "Hello, World!")

	lines := strings.Split(s.Capture(), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Hello, World!") {
		t.Errorf("first line = %q", lines[0])
	}
	if got := s.Line(0); got != "Hello, World!" {
		t.Errorf("Line(0) = %q", got)
	}
	if s.Shows() != 1 {
		t.Errorf("Shows() = %d, want 1", s.Shows())
	}
}

func TestSizeSurvivesInit(t *testing.T) {
	s := newSim(t, 80, 24)
	if w, h := s.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %dx%d, want 80x24", w, h)
	}
	s.Resize(40, 12)
	if w, h := s.Size(); w != 40 || h != 12 {
		t.Errorf("after Resize: %dx%d", w, h)
	}
}

func TestFindText(t *testing.T) {
	s := newSim(t, 40, 10)
	write(s, 5, 3, "target")

	if x, y := s.FindText("target"); x != 5 || y != 3 {
		t.Errorf("FindText = (%d, %d), want (5, 3)", x, y)
	}
	if x, y := s.FindText("missing"); x != -1 || y != -1 {
		t.Errorf("missing text found at (%d, %d)", x, y)
	}
	if !s.ContainsText("target") || s.ContainsText("nothere") {
		t.Error("ContainsText mismatch")
	}
}

func TestCaptureRegion(t *testing.T) {
	s := newSim(t, 20, 10)
	for y := 0; y < 3; y++ {
		write(s, 0, y, "XXXXX")
	}
	want := "XXXXX\nXXXXX\nXXXXX"
	if got := s.CaptureRegion(0, 0, 5, 3); got != want {
		t.Errorf("CaptureRegion:\n%s\nwant:\n%s", got, want)
	}
}

func TestInjectedEventsArriveInOrder(t *testing.T) {
	s := newSim(t, 20, 10)
	s.InjectKeyRune('a')
	s.InjectKey(terminal.KeyBacktab, 0)
	s.InjectResize(30, 12)
	if s.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", s.Pending())
	}

	ev := s.PollEvent().(terminal.KeyEvent)
	if ev.Key != terminal.KeyRune || ev.Rune != 'a' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := s.PollEvent().(terminal.KeyEvent); ev.Key != terminal.KeyBacktab {
		t.Errorf("second event = %+v", ev)
	}
	rs := s.PollEvent().(terminal.ResizeEvent)
	if rs.Width != 30 || rs.Height != 12 {
		t.Errorf("resize = %+v", rs)
	}
	if w, _ := s.Size(); w != 30 {
		t.Errorf("InjectResize did not resize: width %d", w)
	}
}

func TestFiniReleasesPoll(t *testing.T) {
	s := New(10, 5)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	got := make(chan terminal.Event, 1)
	go func() { got <- s.PollEvent() }()

	s.Fini()
	s.Fini()
	select {
	case ev := <-got:
		if ev != nil {
			t.Errorf("expected nil after Fini, got %T", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent still blocked after Fini")
	}
}

func TestPostEventQueueFull(t *testing.T) {
	s := newSim(t, 10, 5)
	for i := 0; i < queueSize; i++ {
		if err := s.PostEvent(terminal.PasteEvent{Text: "x"}); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	if err := s.PostEvent(terminal.PasteEvent{Text: "overflow"}); err != ErrQueueFull {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}

func TestStylesRoundTrip(t *testing.T) {
	s := newSim(t, 20, 10)
	style := term.DefaultStyle().
		Foreground(term.ColorRed).
		Background(term.ColorRGB(10, 20, 30)).
		Bold(true).
		Reverse(true)
	s.SetContent(0, 0, 'S', nil, style)
	s.Show()

	mainc, _, got := s.CaptureCell(0, 0)
	if mainc != 'S' {
		t.Errorf("rune = %c, want S", mainc)
	}
	if !got.Has(term.AttrBold | term.AttrReverse) {
		t.Errorf("attributes = %b", got.Attributes())
	}
	if r, g, b := got.BG().RGB(); r != 10 || g != 20 || b != 30 {
		t.Errorf("background = %v", got.BG())
	}
}

func TestBeepCounts(t *testing.T) {
	s := newSim(t, 10, 5)
	s.Beep()
	s.Beep()
	if s.Beeps() != 2 {
		t.Errorf("Beeps() = %d", s.Beeps())
	}
}

package terminal

import "testing"

func TestKeyConstantsUnique(t *testing.T) {
	seen := make(map[Key]bool)
	for k := KeyNone; k <= KeyCtrlZ; k++ {
		if seen[k] {
			t.Errorf("duplicate key constant: %d", k)
		}
		seen[k] = true
	}
}

func TestEventInterface(t *testing.T) {
	var _ Event = KeyEvent{}
	var _ Event = ResizeEvent{}
	var _ Event = MouseEvent{}
	var _ Event = PasteEvent{}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEnter, "Enter"},
		{KeyBacktab, "Backtab"},
		{KeyF1, "F1"},
		{KeyF10, "F10"},
		{KeyF12, "F12"},
		{KeyCtrlC, "Ctrl+C"},
		{Key(999), "Key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyEventName(t *testing.T) {
	tests := []struct {
		ev   KeyEvent
		want string
	}{
		{KeyEvent{Key: KeyRune, Rune: 'a'}, "a"},
		{KeyEvent{Key: KeyRune, Rune: 'A', Shift: true}, "A"},
		{KeyEvent{Key: KeyRune, Rune: 'x', Alt: true}, "Alt+x"},
		{KeyEvent{Key: KeyCtrlC, Ctrl: true}, "Ctrl+C"},
		{KeyEvent{Key: KeyF1, Alt: true}, "Alt+F1"},
		{KeyEvent{Key: KeyUp, Shift: true}, "Shift+Up"},
		{KeyEvent{Key: KeyBacktab, Shift: true}, "Backtab"},
	}
	for _, tt := range tests {
		if got := tt.ev.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestResizeEvent(t *testing.T) {
	ev := ResizeEvent{Width: 120, Height: 40}
	if ev.Width != 120 || ev.Height != 40 {
		t.Errorf("unexpected size %dx%d", ev.Width, ev.Height)
	}
}

// Package tcell implements term.Terminal on a tcell screen.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/yui/pkg/ui/term"
	"github.com/odvcencio/yui/pkg/ui/terminal"
)

// Terminal drives a real terminal through tcell.
type Terminal struct {
	screen tcell.Screen

	// bracketed paste
	inPaste     bool
	pasteBuffer strings.Builder
}

// New opens the controlling terminal. Init must be called before use.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen wraps an existing screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Fini() { t.screen.Fini() }

func (t *Terminal) Size() (width, height int) { return t.screen.Size() }

func (t *Terminal) SetContent(x, y int, mainc rune, comb []rune, style term.Style) {
	t.screen.SetContent(x, y, mainc, comb, ConvertStyle(style))
}

func (t *Terminal) Show()  { t.screen.Show() }
func (t *Terminal) Clear() { t.screen.Clear() }
func (t *Terminal) Sync()  { t.screen.Sync() }
func (t *Terminal) Beep()  { _ = t.screen.Beep() }

func (t *Terminal) HideCursor() { t.screen.HideCursor() }

// SetCursorPos moves the cursor and makes it visible.
func (t *Terminal) SetCursorPos(x, y int) { t.screen.ShowCursor(x, y) }

// PollEvent blocks for the next event. Key presses inside a bracketed
// paste are collected into one PasteEvent.
func (t *Terminal) PollEvent() terminal.Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				t.inPaste = true
				t.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				t.inPaste = false
				text := t.pasteBuffer.String()
				t.pasteBuffer.Reset()
				if text != "" {
					return terminal.PasteEvent{Text: text}
				}
				continue
			}
		case *tcell.EventKey:
			if t.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					t.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					t.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					t.pasteBuffer.WriteRune('\t')
				}
				continue
			}
		}

		if out := ConvertEvent(ev); out != nil {
			return out
		}
	}
}

// PostEvent queues ev. Key and resize events are supported.
func (t *Terminal) PostEvent(ev terminal.Event) error {
	if tev := reverseConvertEvent(ev); tev != nil {
		return t.screen.PostEvent(tev)
	}
	return nil
}

// ConvertStyle maps a term.Style to tcell.
func ConvertStyle(s term.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	var mask tcell.AttrMask
	for _, a := range attrTable {
		if attrs&a.ours != 0 {
			mask |= a.theirs
		}
	}
	return style.Attributes(mask)
}

// StyleFromTcell maps a tcell style back, for screen captures.
func StyleFromTcell(ts tcell.Style) term.Style {
	fg, bg, attrs := ts.Decompose()
	style := term.DefaultStyle().
		Foreground(colorFromTcell(fg)).
		Background(colorFromTcell(bg))
	for _, a := range attrTable {
		if attrs&a.theirs != 0 {
			style = style.Attr(a.ours, true)
		}
	}
	return style
}

var attrTable = []struct {
	ours   term.AttrMask
	theirs tcell.AttrMask
}{
	{term.AttrBold, tcell.AttrBold},
	{term.AttrBlink, tcell.AttrBlink},
	{term.AttrReverse, tcell.AttrReverse},
	{term.AttrUnderline, tcell.AttrUnderline},
	{term.AttrDim, tcell.AttrDim},
	{term.AttrItalic, tcell.AttrItalic},
	{term.AttrStrikeThrough, tcell.AttrStrikeThrough},
}

func convertColor(c term.Color) tcell.Color {
	if c == term.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func colorFromTcell(tc tcell.Color) term.Color {
	if tc == tcell.ColorDefault {
		return term.ColorDefault
	}
	if tc&tcell.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return term.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return term.Color(tc & 0xFF)
}

// ConvertEvent maps a tcell event, or returns nil for events the backend
// does not use.
func ConvertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := e.Modifiers()
		key, ok := keyFromTcell[e.Key()]
		if !ok {
			key = terminal.KeyNone
		}
		return terminal.KeyEvent{
			Key:   key,
			Rune:  e.Rune(),
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: convertMouseButton(e.Buttons()),
			Action: convertMouseAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	default:
		return nil
	}
}

var keyFromTcell = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyCtrlB:      terminal.KeyCtrlB,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlD:      terminal.KeyCtrlD,
	tcell.KeyCtrlF:      terminal.KeyCtrlF,
	tcell.KeyCtrlP:      terminal.KeyCtrlP,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
	tcell.KeyF1:         terminal.KeyF1,
	tcell.KeyF2:         terminal.KeyF2,
	tcell.KeyF3:         terminal.KeyF3,
	tcell.KeyF4:         terminal.KeyF4,
	tcell.KeyF5:         terminal.KeyF5,
	tcell.KeyF6:         terminal.KeyF6,
	tcell.KeyF7:         terminal.KeyF7,
	tcell.KeyF8:         terminal.KeyF8,
	tcell.KeyF9:         terminal.KeyF9,
	tcell.KeyF10:        terminal.KeyF10,
	tcell.KeyF11:        terminal.KeyF11,
	tcell.KeyF12:        terminal.KeyF12,
}

var keyToTcell = func() map[terminal.Key]tcell.Key {
	m := make(map[terminal.Key]tcell.Key, len(keyFromTcell))
	for tk, k := range keyFromTcell {
		m[k] = tk
	}
	m[terminal.KeyBackspace] = tcell.KeyBackspace2
	return m
}()

func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func convertMouseAction(buttons tcell.ButtonMask) terminal.MouseAction {
	if buttons == tcell.ButtonNone {
		return terminal.MouseRelease
	}
	return terminal.MousePress
}

func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		tk, ok := keyToTcell[e.Key]
		if !ok {
			return nil
		}
		var mod tcell.ModMask
		if e.Alt {
			mod |= tcell.ModAlt
		}
		if e.Ctrl {
			mod |= tcell.ModCtrl
		}
		if e.Shift {
			mod |= tcell.ModShift
		}
		return tcell.NewEventKey(tk, e.Rune, mod)
	default:
		return nil
	}
}

var _ term.Terminal = (*Terminal)(nil)

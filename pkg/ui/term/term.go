// Package term is the character-cell terminal the text-mode backend draws
// on. The tcell implementation drives real terminals; the sim
// implementation keeps everything in memory for golden-frame tests.
package term

import "github.com/odvcencio/yui/pkg/ui/terminal"

// Terminal is a full-screen character terminal.
type Terminal interface {
	// Init enters raw mode and the alternate screen.
	Init() error

	// Fini restores the terminal. PollEvent returns nil afterwards.
	Fini()

	Size() (width, height int)

	// SetContent stores one cell; nothing is visible until Show.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	Show()
	Clear()

	HideCursor()
	SetCursorPos(x, y int)

	// PollEvent blocks until input arrives. It returns nil once the
	// terminal is finalized.
	PollEvent() terminal.Event

	// PostEvent queues a synthetic event for PollEvent.
	PostEvent(ev terminal.Event) error

	Beep()

	// Sync forces a full repaint on the next Show.
	Sync()
}

// RenderTarget is the drawing half of Terminal.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}

// Package theme provides the text-mode colour schemes. Each dialog colour
// mode (normal, warning, info) has its own scheme, and every colour is
// degraded to what the terminal's colour profile can show.
package theme

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/odvcencio/yui/pkg/ui/term"
)

// Mode selects a scheme.
type Mode int

const (
	Normal Mode = iota
	Warning
	Info
)

func (m Mode) String() string {
	switch m {
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "normal"
	}
}

// Theme is the set of styles a dialog is drawn with.
type Theme struct {
	Mode    Mode
	Profile termenv.Profile

	// Surfaces
	Background term.Style
	Shadow     term.Style
	Title      term.Style

	// Text
	Text     term.Style
	Heading  term.Style
	Disabled term.Style
	Link     term.Style

	// Frames and focus
	Frame        term.Style
	FrameFocused term.Style

	// Inputs
	Input        term.Style
	InputFocused term.Style

	// Buttons
	Button        term.Style
	ButtonFocused term.Style
	ButtonDefault term.Style

	// Lists, trees, tables, tabs
	Item            term.Style
	Selected        term.Style
	SelectedFocused term.Style
	TabActive       term.Style
	ColumnHeader    term.Style

	// Menus
	MenuBar      term.Style
	MenuItem     term.Style
	MenuSelected term.Style

	// Progress and sliders
	Progress     term.Style
	ProgressFill term.Style
}

type palette struct {
	bg, fg, heading, accent, input, inputFg, button, selected, menu, fill, shadow string
}

var palettes = map[Mode]palette{
	Normal: {
		bg: "#1f3b73", fg: "#e6e6e6", heading: "#ffffff", accent: "#ffd75f",
		input: "#0b1d3a", inputFg: "#ffffff", button: "#3a5a99", selected: "#5f87d7",
		menu: "#d0d0d0", fill: "#5fd7ff", shadow: "#000000",
	},
	Warning: {
		bg: "#8b1a1a", fg: "#f2f2f2", heading: "#ffffff", accent: "#ffff5f",
		input: "#4a0d0d", inputFg: "#ffffff", button: "#b03030", selected: "#d75f5f",
		menu: "#d0d0d0", fill: "#ffaf5f", shadow: "#000000",
	},
	Info: {
		bg: "#12615c", fg: "#eeeeee", heading: "#ffffff", accent: "#afffaf",
		input: "#083532", inputFg: "#ffffff", button: "#1f8a83", selected: "#5fafaf",
		menu: "#d0d0d0", fill: "#87ffd7", shadow: "#000000",
	},
}

// DetectProfile returns the colour profile of the process's terminal.
func DetectProfile() termenv.Profile {
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New builds the scheme for mode under profile.
func New(mode Mode, profile termenv.Profile) *Theme {
	p, ok := palettes[mode]
	if !ok {
		p = palettes[Normal]
		mode = Normal
	}
	if profile == termenv.Ascii {
		return monochrome(mode)
	}
	c := func(hex string) term.Color { return Convert(profile, hex) }
	s := func(fg, bg string) term.Style {
		return term.DefaultStyle().Foreground(c(fg)).Background(c(bg))
	}

	return &Theme{
		Mode:    mode,
		Profile: profile,

		Background: s(p.fg, p.bg),
		Shadow:     s(p.fg, p.shadow),
		Title:      s(p.heading, p.bg).Bold(true),

		Text:     s(p.fg, p.bg),
		Heading:  s(p.heading, p.bg).Bold(true),
		Disabled: s(p.fg, p.bg).Dim(true),
		Link:     s(p.accent, p.bg).Underline(true),

		Frame:        s(p.fg, p.bg),
		FrameFocused: s(p.accent, p.bg).Bold(true),

		Input:        s(p.inputFg, p.input),
		InputFocused: s(p.accent, p.input).Bold(true),

		Button:        s(p.fg, p.button),
		ButtonFocused: s(p.bg, p.accent).Bold(true),
		ButtonDefault: s(p.heading, p.button).Bold(true),

		Item:            s(p.inputFg, p.input),
		Selected:        s(p.heading, p.selected),
		SelectedFocused: s(p.bg, p.accent).Bold(true),
		TabActive:       s(p.accent, p.bg).Bold(true).Underline(true),
		ColumnHeader:    s(p.heading, p.bg).Bold(true).Underline(true),

		MenuBar:      s(p.bg, p.menu),
		MenuItem:     s(p.shadow, p.menu),
		MenuSelected: s(p.heading, p.selected).Bold(true),

		Progress:     s(p.fg, p.input),
		ProgressFill: s(p.bg, p.fill),
	}
}

// monochrome relies on attributes alone.
func monochrome(mode Mode) *Theme {
	plain := term.DefaultStyle()
	rev := plain.Reverse(true)
	return &Theme{
		Mode:    mode,
		Profile: termenv.Ascii,

		Background: plain,
		Shadow:     plain,
		Title:      plain.Bold(true),

		Text:     plain,
		Heading:  plain.Bold(true),
		Disabled: plain.Dim(true),
		Link:     plain.Underline(true),

		Frame:        plain,
		FrameFocused: plain.Bold(true),

		Input:        plain.Underline(true),
		InputFocused: rev,

		Button:        plain,
		ButtonFocused: rev,
		ButtonDefault: plain.Bold(true),

		Item:            plain,
		Selected:        plain.Bold(true),
		SelectedFocused: rev,
		TabActive:       plain.Bold(true).Underline(true),
		ColumnHeader:    plain.Underline(true),

		MenuBar:      rev,
		MenuItem:     rev,
		MenuSelected: plain.Bold(true),

		Progress:     plain,
		ProgressFill: rev,
	}
}

// Convert degrades a "#rrggbb" colour to profile and maps it to a
// terminal colour.
func Convert(profile termenv.Profile, hex string) term.Color {
	switch c := profile.Convert(termenv.RGBColor(hex)).(type) {
	case termenv.ANSIColor:
		return term.Color(c)
	case termenv.ANSI256Color:
		return term.Color(c)
	case termenv.RGBColor:
		var r, g, b uint8
		if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
			return term.ColorDefault
		}
		return term.ColorRGB(r, g, b)
	default:
		return term.ColorDefault
	}
}

// Symbols are the glyphs widgets are drawn with.
var Symbols = struct {
	CheckOn, CheckOff, CheckDontCare string
	RadioOn, RadioOff                string
	TreeOpen, TreeClosed, TreeLeaf   string
	ComboArrow                       string
	SubmenuArrow                     string
	MenuCheck                        string
	ProgressFill, ProgressEmpty      rune
	SliderTrack, SliderThumb         rune
	ScrollUp, ScrollDown             string
	PaneSplitH, PaneSplitV           rune
	PasswordMask                     rune
	Ellipsis                         string
	ImagePlaceholder                 rune
}{
	CheckOn:          "[x]",
	CheckOff:         "[ ]",
	CheckDontCare:    "[#]",
	RadioOn:          "(*)",
	RadioOff:         "( )",
	TreeOpen:         "▾ ",
	TreeClosed:       "▸ ",
	TreeLeaf:         "  ",
	ComboArrow:       "▼",
	SubmenuArrow:     "▶",
	MenuCheck:        "✓",
	ProgressFill:     '█',
	ProgressEmpty:    '░',
	SliderTrack:      '─',
	SliderThumb:      '●',
	ScrollUp:         "▲",
	ScrollDown:       "▼",
	PaneSplitH:       '│',
	PaneSplitV:       '─',
	PasswordMask:     '*',
	Ellipsis:         "…",
	ImagePlaceholder: '▒',
}

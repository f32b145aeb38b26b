package term

import "fmt"

// Color is a terminal colour. Values 0-255 index the palette; true colours
// carry the rgbFlag bit.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack   Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
)

const rgbFlag = 0x01000000

// ColorRGB creates a true colour.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbFlag)
}

// IsRGB reports whether c is a true colour.
func (c Color) IsRGB() bool { return c != ColorDefault && c&rgbFlag != 0 }

// RGB returns the components of a true colour, or zeros for palette colours.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

func (c Color) String() string {
	switch {
	case c == ColorDefault:
		return "default"
	case c.IsRGB():
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	default:
		return fmt.Sprintf("palette(%d)", int32(c))
	}
}

// AttrMask holds text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrBlink
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
	AttrStrikeThrough
)

// Style is a foreground, a background and attributes. The zero value is
// not the default style; use DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle uses the terminal's default colours without attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns s with foreground c.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns s with background c.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Attr sets or clears the attributes in mask.
func (s Style) Attr(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

func (s Style) Bold(on bool) Style { return s.Attr(AttrBold, on) }
func (s Style) Reverse(on bool) Style { return s.Attr(AttrReverse, on) }
func (s Style) Underline(on bool) Style { return s.Attr(AttrUnderline, on) }
func (s Style) Dim(on bool) Style { return s.Attr(AttrDim, on) }

// Has reports whether every attribute in mask is set.
func (s Style) Has(mask AttrMask) bool { return s.attrs&mask == mask }

func (s Style) FG() Color { return s.fg }
func (s Style) BG() Color { return s.bg }
func (s Style) Attributes() AttrMask { return s.attrs }

// Decompose returns the foreground, background and attributes.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Over layers s on top of base: default colours in s fall through to base
// and attributes are combined.
func (s Style) Over(base Style) Style {
	out := base
	if s.fg != ColorDefault {
		out.fg = s.fg
	}
	if s.bg != ColorDefault {
		out.bg = s.bg
	}
	out.attrs |= s.attrs
	return out
}

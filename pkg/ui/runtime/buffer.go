package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/yui/pkg/ui/term"
)

// Cell is one character cell. The right half of a double-width rune is a
// cell with Tail set.
type Cell struct {
	Rune  rune
	Style term.Style
	Tail  bool
}

// Buffer is an off-screen grid of cells. Drawing marks changed cells dirty
// and Flush sends only those to the terminal.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a blank w x h buffer.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

func blank() Cell { return Cell{Rune: ' ', Style: term.DefaultStyle()} }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) { return b.width, b.height }

// Bounds returns the buffer as a rect at the origin.
func (b *Buffer) Bounds() Rect { return Rect{Width: b.width, Height: b.height} }

// Resize changes the dimensions, keeping content where it still fits.
// Everything is dirty afterwards.
func (b *Buffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w == b.width && h == b.height && b.cells != nil {
		return
	}
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blank()
	}
	for y := 0; y < min(h, b.height); y++ {
		for x := 0; x < min(w, b.width); x++ {
			cells[y*w+x] = b.cells[y*b.width+x]
		}
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width = w
	b.height = h
	b.MarkAllDirty()
}

// Clear fills the buffer with spaces in style s.
func (b *Buffer) Clear(s term.Style) {
	b.Fill(b.Bounds(), ' ', s)
}

// Get returns the cell at (x, y), or a blank cell out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blank()
	}
	return b.cells[y*b.width+x]
}

// Set writes r at (x, y). A double-width rune also claims the next cell;
// it is dropped when only one column is left.
func (b *Buffer) Set(x, y int, r rune, s term.Style) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	if w == 2 && x+1 >= b.width {
		b.put(x, y, Cell{Rune: ' ', Style: s})
		return 1
	}
	if b.cells[y*b.width+x].Tail && x > 0 {
		b.put(x-1, y, Cell{Rune: ' ', Style: b.cells[y*b.width+x-1].Style})
	}
	b.put(x, y, Cell{Rune: r, Style: s})
	if w == 2 {
		b.put(x+1, y, Cell{Style: s, Tail: true})
	} else if x+1 < b.width && b.cells[y*b.width+x+1].Tail {
		b.put(x+1, y, Cell{Rune: ' ', Style: s})
	}
	return w
}

func (b *Buffer) put(x, y int, c Cell) {
	idx := y*b.width + x
	if b.cells[idx] != c {
		b.cells[idx] = c
		b.markCellDirty(x, y, idx)
	}
}

// SetString writes s starting at (x, y) and returns the columns used.
// Output is clipped to the buffer.
func (b *Buffer) SetString(x, y int, s string, style term.Style) int {
	return b.SetStringClipped(x, y, b.width-x, s, style)
}

// SetStringClipped writes at most maxWidth columns of s.
func (b *Buffer) SetStringClipped(x, y, maxWidth int, s string, style term.Style) int {
	if y < 0 || y >= b.height || maxWidth <= 0 {
		return 0
	}
	col := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > maxWidth {
			break
		}
		if x+col >= 0 {
			b.Set(x+col, y, r, style)
		}
		col += rw
	}
	return col
}

// Fill fills r with ch in style s.
func (b *Buffer) Fill(r Rect, ch rune, s term.Style) {
	r = r.Intersection(b.Bounds())
	cell := Cell{Rune: ch, Style: s}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.put(x, y, cell)
		}
	}
}

// BoxRunes are the characters of a border: corners clockwise from the top
// left, then horizontal and vertical.
type BoxRunes [6]rune

var (
	SingleBox  = BoxRunes{'┌', '┐', '┘', '└', '─', '│'}
	RoundedBox = BoxRunes{'╭', '╮', '╯', '╰', '─', '│'}
	DoubleBox  = BoxRunes{'╔', '╗', '╝', '╚', '═', '║'}
)

// DrawBox draws a single-line border around r.
func (b *Buffer) DrawBox(r Rect, s term.Style) {
	b.DrawFrame(r, SingleBox, "", s)
}

// DrawFrame draws a border with the given runes and an optional title in
// the top edge.
func (b *Buffer) DrawFrame(r Rect, box BoxRunes, title string, s term.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	b.Set(r.X, r.Y, box[0], s)
	b.Set(right, r.Y, box[1], s)
	b.Set(right, bottom, box[2], s)
	b.Set(r.X, bottom, box[3], s)
	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, box[4], s)
		b.Set(x, bottom, box[4], s)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, box[5], s)
		b.Set(right, y, box[5], s)
	}
	if title != "" && r.Width > 4 {
		b.SetStringClipped(r.X+2, r.Y, r.Width-4, " "+title+" ", s)
	}
}

// Flush sends dirty cells to t and clears the dirty state.
func (b *Buffer) Flush(t term.RenderTarget) {
	b.ForEachDirtyCell(func(x, y int, c Cell) {
		if c.Tail {
			return
		}
		r := c.Rune
		if r == 0 {
			r = ' '
		}
		t.SetContent(x, y, r, nil, c.Style)
	})
	b.ClearDirty()
}

// SubBuffer is a clipped, translated view of a Buffer region.
type SubBuffer struct {
	parent *Buffer
	bounds Rect
}

// Sub returns a view of region r.
func (b *Buffer) Sub(r Rect) *SubBuffer {
	return &SubBuffer{parent: b, bounds: r.Intersection(b.Bounds())}
}

// Size returns the view's dimensions.
func (s *SubBuffer) Size() (w, h int) { return s.bounds.Width, s.bounds.Height }

// Bounds returns the view's region in parent coordinates.
func (s *SubBuffer) Bounds() Rect { return s.bounds }

// Set writes a rune at view-relative coordinates.
func (s *SubBuffer) Set(x, y int, r rune, style term.Style) {
	if x < 0 || x >= s.bounds.Width || y < 0 || y >= s.bounds.Height {
		return
	}
	s.parent.Set(s.bounds.X+x, s.bounds.Y+y, r, style)
}

// SetString writes s at view-relative coordinates, clipped to the view.
func (s *SubBuffer) SetString(x, y int, str string, style term.Style) int {
	if y < 0 || y >= s.bounds.Height || x >= s.bounds.Width {
		return 0
	}
	return s.parent.SetStringClipped(s.bounds.X+x, s.bounds.Y+y, s.bounds.Width-x, str, style)
}

// Fill fills a view-relative region.
func (s *SubBuffer) Fill(r Rect, ch rune, style term.Style) {
	clipped := r.Intersection(Rect{Width: s.bounds.Width, Height: s.bounds.Height})
	if clipped.Empty() {
		return
	}
	clipped.X += s.bounds.X
	clipped.Y += s.bounds.Y
	s.parent.Fill(clipped, ch, style)
}

// Clear fills the view with spaces.
func (s *SubBuffer) Clear(style term.Style) {
	s.Fill(Rect{Width: s.bounds.Width, Height: s.bounds.Height}, ' ', style)
}

func (b *Buffer) markCellDirty(x, y, idx int) {
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++
	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	if x < b.dirtyRect.X {
		b.dirtyRect.Width += b.dirtyRect.X - x
		b.dirtyRect.X = x
	} else if x >= b.dirtyRect.X+b.dirtyRect.Width {
		b.dirtyRect.Width = x - b.dirtyRect.X + 1
	}
	if y < b.dirtyRect.Y {
		b.dirtyRect.Height += b.dirtyRect.Y - y
		b.dirtyRect.Y = y
	} else if y >= b.dirtyRect.Y+b.dirtyRect.Height {
		b.dirtyRect.Height = y - b.dirtyRect.Y + 1
	}
}

// MarkAllDirty forces the next Flush to send every cell.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = b.Bounds()
}

// ClearDirty resets dirty tracking.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed since the last flush.
func (b *Buffer) IsDirty() bool { return b.dirtyCount > 0 }

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int { return b.dirtyCount }

// DirtyRect returns the bounding box of changed cells.
func (b *Buffer) DirtyRect() Rect { return b.dirtyRect }

// ForEachDirtyCell calls fn for each changed cell in row order.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	if b.dirtyCount > b.width*b.height/2 {
		r = b.Bounds()
	}
	for y := r.Y; y < r.Y+r.Height && y < b.height; y++ {
		for x := r.X; x < r.X+r.Width && x < b.width; x++ {
			idx := y*b.width + x
			if b.dirty[idx] {
				fn(x, y, b.cells[idx])
			}
		}
	}
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int { return runewidth.StringWidth(s) }

// Truncate shortens s to at most w cells, ending with "…" when cut.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// PadRight pads s with spaces to exactly w cells, truncating if longer.
func PadRight(s string, w int) string {
	return runewidth.FillRight(Truncate(s, w), w)
}

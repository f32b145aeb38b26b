package runtime

import (
	"testing"

	"github.com/odvcencio/yui/pkg/ui/term"
)

func TestBuffer_New(t *testing.T) {
	b := NewBuffer(80, 24)
	if w, h := b.Size(); w != 80 || h != 24 {
		t.Errorf("Size() = %d, %d; want 80, 24", w, h)
	}
	if b.Get(3, 3).Rune != ' ' {
		t.Error("new buffer should be blank")
	}
	if !b.IsDirty() {
		t.Error("new buffer should be fully dirty")
	}
}

func TestBuffer_SetOutOfBounds(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Set(-1, 5, 'X', term.DefaultStyle())
	b.Set(100, 5, 'X', term.DefaultStyle())
	b.Set(5, -1, 'X', term.DefaultStyle())
	if cell := b.Get(-1, -1); cell.Rune != ' ' {
		t.Errorf("Get(-1,-1) = %c, want space", cell.Rune)
	}
}

func TestBuffer_SetStringClips(t *testing.T) {
	b := NewBuffer(10, 5)
	n := b.SetString(7, 2, "Hello", term.DefaultStyle())
	if n != 3 {
		t.Errorf("SetString wrote %d columns, want 3", n)
	}
	for i, r := range "Hel" {
		if got := b.Get(7+i, 2).Rune; got != r {
			t.Errorf("Get(%d, 2) = %c, want %c", 7+i, got, r)
		}
	}
}

func TestBuffer_WideRunes(t *testing.T) {
	b := NewBuffer(6, 1)
	n := b.SetString(0, 0, "日本x", term.DefaultStyle())
	if n != 5 {
		t.Errorf("columns = %d, want 5", n)
	}
	if !b.Get(1, 0).Tail || b.Get(2, 0).Rune != '本' || b.Get(4, 0).Rune != 'x' {
		t.Error("wide runes should occupy two cells")
	}

	// overwriting the tail breaks the wide rune
	b.Set(1, 0, 'a', term.DefaultStyle())
	if b.Get(0, 0).Rune != ' ' || b.Get(1, 0).Rune != 'a' {
		t.Errorf("got %q %q", b.Get(0, 0).Rune, b.Get(1, 0).Rune)
	}

	// no room for the right half
	b.Set(5, 0, '本', term.DefaultStyle())
	if b.Get(5, 0).Rune != ' ' {
		t.Error("wide rune at the last column should be dropped")
	}
}

func TestBuffer_SetStringClipped(t *testing.T) {
	b := NewBuffer(20, 1)
	b.SetStringClipped(0, 0, 4, "abcdef", term.DefaultStyle())
	if b.Get(3, 0).Rune != 'd' || b.Get(4, 0).Rune != ' ' {
		t.Error("expected output clipped to 4 columns")
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Fill(Rect{2, 2, 5, 5}, '#', term.DefaultStyle())

	if b.Get(2, 2).Rune != '#' || b.Get(6, 6).Rune != '#' {
		t.Error("expected # inside the region")
	}
	if b.Get(1, 1).Rune != ' ' || b.Get(7, 7).Rune != ' ' {
		t.Error("fill leaked outside the region")
	}
}

func TestBuffer_ResizeKeepsContent(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Set(5, 5, 'X', term.DefaultStyle())
	b.Resize(20, 20)

	if w, h := b.Size(); w != 20 || h != 20 {
		t.Errorf("Size() = %d, %d", w, h)
	}
	if b.Get(5, 5).Rune != 'X' {
		t.Error("content not preserved after resize")
	}
	if b.DirtyCount() != 400 {
		t.Errorf("DirtyCount() = %d, want 400", b.DirtyCount())
	}
}

func TestBuffer_DrawFrameWithTitle(t *testing.T) {
	b := NewBuffer(12, 4)
	b.DrawFrame(Rect{0, 0, 12, 4}, SingleBox, "Net", term.DefaultStyle())

	corners := map[[2]int]rune{{0, 0}: '┌', {11, 0}: '┐', {0, 3}: '└', {11, 3}: '┘'}
	for pos, want := range corners {
		if got := b.Get(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner %v = %c, want %c", pos, got, want)
		}
	}
	row := ""
	for x := 0; x < 12; x++ {
		row += string(b.Get(x, 0).Rune)
	}
	if row != "┌─ Net ────┐" {
		t.Errorf("top edge = %q", row)
	}
	if b.Get(0, 2).Rune != '│' {
		t.Error("left edge missing")
	}
}

func TestBuffer_DirtyTracking(t *testing.T) {
	b := NewBuffer(10, 10)
	b.ClearDirty()

	b.Set(2, 3, 'A', term.DefaultStyle())
	b.Set(5, 7, 'B', term.DefaultStyle())
	b.Set(5, 7, 'B', term.DefaultStyle())

	if b.DirtyCount() != 2 {
		t.Errorf("DirtyCount() = %d, want 2", b.DirtyCount())
	}
	if r := b.DirtyRect(); r != (Rect{2, 3, 4, 5}) {
		t.Errorf("DirtyRect() = %+v", r)
	}
	if !b.IsCellDirty(2, 3) || b.IsCellDirty(0, 0) {
		t.Error("IsCellDirty mismatch")
	}
}

type recorder struct {
	cells map[[2]int]rune
}

func (r *recorder) Size() (int, int) { return 10, 2 }

func (r *recorder) SetContent(x, y int, mainc rune, _ []rune, _ term.Style) {
	r.cells[[2]int{x, y}] = mainc
}

func TestBuffer_FlushSendsOnlyDirtyCells(t *testing.T) {
	b := NewBuffer(10, 2)
	rec := &recorder{cells: map[[2]int]rune{}}
	b.Flush(rec)
	if len(rec.cells) != 20 {
		t.Fatalf("first flush sent %d cells, want 20", len(rec.cells))
	}

	rec.cells = map[[2]int]rune{}
	b.SetString(0, 1, "日", term.DefaultStyle())
	b.Flush(rec)
	if len(rec.cells) != 1 || rec.cells[[2]int{0, 1}] != '日' {
		t.Errorf("second flush = %v", rec.cells)
	}
	if b.IsDirty() {
		t.Error("flush should clear dirty state")
	}
}

func TestSubBuffer(t *testing.T) {
	b := NewBuffer(20, 10)
	sub := b.Sub(Rect{5, 2, 10, 5})

	if w, h := sub.Size(); w != 10 || h != 5 {
		t.Errorf("SubBuffer Size() = %d, %d; want 10, 5", w, h)
	}
	sub.Set(0, 0, 'X', term.DefaultStyle())
	sub.SetString(1, 0, "Hello", term.DefaultStyle())
	if b.Get(5, 2).Rune != 'X' || b.Get(6, 2).Rune != 'H' {
		t.Error("SubBuffer didn't write to parent at offset")
	}

	sub.Set(10, 0, 'Y', term.DefaultStyle())
	sub.SetString(8, 1, "clipped", term.DefaultStyle())
	if b.Get(15, 2).Rune != ' ' || b.Get(15, 3).Rune != ' ' {
		t.Error("SubBuffer wrote outside bounds")
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := Truncate("Service Manager", 8); got != "Service…" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("short", 8); got != "short" {
		t.Errorf("Truncate = %q", got)
	}
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if StringWidth("日本") != 4 {
		t.Error("StringWidth should count double-width runes")
	}
}

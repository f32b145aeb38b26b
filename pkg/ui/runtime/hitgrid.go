package runtime

// HitGrid maps screen cells to the values drawn there, for mouse hit
// testing. Later additions cover earlier ones.
type HitGrid[T any] struct {
	width  int
	height int
	cells  []int
	values []T
}

// NewHitGrid creates an empty grid.
func NewHitGrid[T any](width, height int) *HitGrid[T] {
	g := &HitGrid[T]{}
	g.Resize(width, height)
	return g
}

// Resize changes the grid dimensions and clears it.
func (g *HitGrid[T]) Resize(width, height int) {
	if width == g.width && height == g.height && g.cells != nil {
		g.Clear()
		return
	}
	g.width = width
	g.height = height
	if width <= 0 || height <= 0 {
		g.cells = nil
		g.values = nil
		return
	}
	g.cells = make([]int, width*height)
	g.Clear()
}

// Clear forgets every region.
func (g *HitGrid[T]) Clear() {
	for i := range g.cells {
		g.cells[i] = -1
	}
	g.values = g.values[:0]
}

// Add records v as occupying bounds.
func (g *HitGrid[T]) Add(v T, bounds Rect) {
	bounds = bounds.Intersection(Rect{Width: g.width, Height: g.height})
	if bounds.Empty() {
		return
	}
	id := len(g.values)
	g.values = append(g.values, v)
	for y := bounds.Y; y < bounds.Y+bounds.Height; y++ {
		row := y * g.width
		for x := bounds.X; x < bounds.X+bounds.Width; x++ {
			g.cells[row+x] = id
		}
	}
}

// At returns the value at (x, y).
func (g *HitGrid[T]) At(x, y int) (T, bool) {
	var zero T
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return zero, false
	}
	idx := g.cells[y*g.width+x]
	if idx < 0 || idx >= len(g.values) {
		return zero, false
	}
	return g.values[idx], true
}

package runtime

import "testing"

func TestRectIntersection(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}
	if got := a.Intersection(b); got != (Rect{5, 5, 5, 5}) {
		t.Errorf("Intersection = %+v", got)
	}
	if got := a.Intersection(Rect{20, 20, 1, 1}); got != ZeroRect {
		t.Errorf("disjoint Intersection = %+v", got)
	}
	if !a.Intersects(b) || a.Intersects(Rect{10, 0, 2, 2}) {
		t.Error("Intersects mismatch")
	}
}

func TestRectInsetAndCentered(t *testing.T) {
	r := Rect{0, 0, 10, 6}
	if got := r.Inset(1, 1, 1, 1); got != (Rect{1, 1, 8, 4}) {
		t.Errorf("Inset = %+v", got)
	}
	if got := r.Inset(4, 6, 4, 6); !got.Empty() {
		t.Errorf("over-inset should be empty, got %+v", got)
	}
	if got := r.Centered(4, 2); got != (Rect{3, 2, 4, 2}) {
		t.Errorf("Centered = %+v", got)
	}
	if got := r.Centered(40, 2); got.Width != 10 || got.X != 0 {
		t.Errorf("Centered should clip, got %+v", got)
	}
}

func TestConstraints(t *testing.T) {
	c := Loose(20, 5)
	if got := c.Constrain(Size{30, 2}); got != (Size{20, 2}) {
		t.Errorf("Constrain = %+v", got)
	}
	if !Tight(3, 3).IsTight() || c.IsTight() {
		t.Error("IsTight mismatch")
	}
	if got := Unbounded().Constrain(Size{1000, 1000}); got != (Size{1000, 1000}) {
		t.Errorf("Unbounded Constrain = %+v", got)
	}
}

func TestHitGrid(t *testing.T) {
	g := NewHitGrid[string](10, 5)
	g.Add("list", Rect{0, 0, 10, 5})
	g.Add("button", Rect{2, 2, 4, 1})

	if v, ok := g.At(3, 2); !ok || v != "button" {
		t.Errorf("At(3,2) = %q, %v", v, ok)
	}
	if v, _ := g.At(0, 0); v != "list" {
		t.Errorf("At(0,0) = %q", v)
	}
	if _, ok := g.At(20, 20); ok {
		t.Error("out of range hit")
	}
	g.Clear()
	if _, ok := g.At(3, 2); ok {
		t.Error("Clear should forget regions")
	}
}

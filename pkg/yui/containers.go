package yui

// wantsSpace reports whether c asks for extra space along dim.
func wantsSpace(c Widget, dim Dimension) bool {
	return c.Stretchable(dim) || c.Weight(dim) > 0
}

func anyChildWantsSpace(children []Widget, dim Dimension) bool {
	for _, c := range children {
		if wantsSpace(c, dim) {
			return true
		}
	}
	return false
}

// Box lays out any number of children along one axis.
type Box struct {
	Base
	primary Dimension
}

func newBox(ui *UI, dim Dimension) *Box {
	b := &Box{primary: dim}
	kind := KindVBox
	if dim == Horizontal {
		kind = KindHBox
	}
	b.init(b, ui, kind, 0)
	return b
}

// Primary returns the layout axis.
func (b *Box) Primary() Dimension { return b.primary }

// Stretchable is true if the box was marked stretchable or any child is
// stretchable or weighted along dim.
func (b *Box) Stretchable(dim Dimension) bool {
	return b.stretch[dim] || anyChildWantsSpace(b.children, dim)
}

// Frame draws a titled border around a single child.
type Frame struct {
	Base
	label string
}

func newFrame(ui *UI, label string) *Frame {
	f := &Frame{label: label}
	f.init(f, ui, KindFrame, 1)
	return f
}

// Label returns the frame title.
func (f *Frame) Label() string { return f.label }

// SetLabel changes the frame title.
func (f *Frame) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Stretchable follows the child.
func (f *Frame) Stretchable(dim Dimension) bool {
	return f.stretch[dim] || anyChildWantsSpace(f.children, dim)
}

// AlignmentBox positions a single child inside the space it is given.
type AlignmentBox struct {
	Base
	align [2]Alignment
}

func newAlignment(ui *UI, h, v Alignment) *AlignmentBox {
	a := &AlignmentBox{align: [2]Alignment{h, v}}
	a.init(a, ui, KindAlignment, 1)
	return a
}

// Alignment returns the alignment along dim.
func (a *AlignmentBox) Alignment(dim Dimension) Alignment { return a.align[dim] }

// Stretchable is true when the child is centred along dim, when it is
// right-aligned horizontally (it needs room to move), or when the child
// itself wants space.
func (a *AlignmentBox) Stretchable(dim Dimension) bool {
	if a.stretch[dim] {
		return true
	}
	switch a.align[dim] {
	case AlignCenter:
		return true
	case AlignEnd:
		if dim == Horizontal {
			return true
		}
	}
	return anyChildWantsSpace(a.children, dim)
}

// CheckBoxFrame is a frame whose title carries a check box. With auto
// enable on, the child is enabled exactly when the box is checked (or
// unchecked, if inverted).
type CheckBoxFrame struct {
	Base
	label      string
	checked    bool
	autoEnable bool
	invert     bool
}

func newCheckBoxFrame(ui *UI, label string, checked bool) *CheckBoxFrame {
	f := &CheckBoxFrame{label: label, checked: checked, autoEnable: true}
	f.init(f, ui, KindCheckBoxFrame, 1)
	return f
}

// Label returns the frame title.
func (f *CheckBoxFrame) Label() string { return f.label }

// SetLabel changes the frame title.
func (f *CheckBoxFrame) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Value returns the check state.
func (f *CheckBoxFrame) Value() bool { return f.checked }

// SetValue sets the check state without posting an event.
func (f *CheckBoxFrame) SetValue(on bool) {
	f.checked = on
	f.sync(AspectValue)
	f.applyAutoEnable()
}

// UserSetValue records a toggle by the user and posts value-changed when
// notify is on.
func (f *CheckBoxFrame) UserSetValue(on bool) {
	if f.checked == on {
		return
	}
	f.checked = on
	f.applyAutoEnable()
	f.postWidgetEvent(ValueChanged, false)
}

// AutoEnable reports whether the child follows the check state.
func (f *CheckBoxFrame) AutoEnable() bool { return f.autoEnable }

// SetAutoEnable turns child enablement tracking on or off.
func (f *CheckBoxFrame) SetAutoEnable(on bool) {
	f.autoEnable = on
	f.applyAutoEnable()
}

// InvertAutoEnable reports whether the child is enabled when unchecked.
func (f *CheckBoxFrame) InvertAutoEnable() bool { return f.invert }

// SetInvertAutoEnable enables the child when the box is unchecked instead.
func (f *CheckBoxFrame) SetInvertAutoEnable(on bool) {
	f.invert = on
	f.applyAutoEnable()
}

// SetEnabled disables the whole frame; re-enabling restores the child
// according to the check state.
func (f *CheckBoxFrame) SetEnabled(on bool) {
	f.Base.SetEnabled(on)
	if on {
		f.applyAutoEnable()
	}
}

func (f *CheckBoxFrame) applyAutoEnable() {
	if !f.autoEnable || !f.enabled {
		return
	}
	want := f.checked != f.invert
	for _, c := range f.children {
		c.SetEnabled(want)
	}
}

// AddChild attaches the child and applies auto enable to it.
func (f *CheckBoxFrame) AddChild(c Widget) error {
	if err := f.Base.AddChild(c); err != nil {
		return err
	}
	f.applyAutoEnable()
	return nil
}

// Stretchable follows the child.
func (f *CheckBoxFrame) Stretchable(dim Dimension) bool {
	return f.stretch[dim] || anyChildWantsSpace(f.children, dim)
}

// ReplacePoint is a placeholder whose single child can be swapped at run
// time. After replacing the content call ShowChild.
type ReplacePoint struct {
	Base
}

func newReplacePoint(ui *UI) *ReplacePoint {
	r := &ReplacePoint{}
	r.init(r, ui, KindReplacePoint, 1)
	return r
}

// DeleteChildren destroys the current content.
func (r *ReplacePoint) DeleteChildren() {
	r.removeChildren()
}

// ShowChild realizes and shows the current child and recomputes the
// dialog layout. The window may grow to fit but does not shrink.
func (r *ReplacePoint) ShowChild() {
	d := r.FindDialog()
	if d == nil {
		return
	}
	if d.IsOpen() {
		for _, c := range r.children {
			d.realizeTree(c)
		}
	}
	r.sync(AspectChildren)
	d.Recalc()
}

// Stretchable follows the child.
func (r *ReplacePoint) Stretchable(dim Dimension) bool {
	return r.stretch[dim] || anyChildWantsSpace(r.children, dim)
}

// Paned splits its area between two children along a fixed axis.
type Paned struct {
	Base
	primary Dimension
}

func newPaned(ui *UI, dim Dimension) *Paned {
	p := &Paned{primary: dim}
	p.init(p, ui, KindPaned, 2)
	return p
}

// Primary returns the split axis.
func (p *Paned) Primary() Dimension { return p.primary }

// Stretchable is always true along the split axis.
func (p *Paned) Stretchable(dim Dimension) bool {
	if dim == p.primary {
		return true
	}
	return p.stretch[dim] || anyChildWantsSpace(p.children, dim)
}

// InitialSizes divides total along the split axis using the children's
// weights. ok is false until both children exist and total is non-zero.
func (p *Paned) InitialSizes(total, min0, min1 int) (first, second int, ok bool) {
	if len(p.children) != 2 {
		return 0, 0, false
	}
	return PaneSplit(total, p.children[0].Weight(p.primary), p.children[1].Weight(p.primary), min0, min1)
}

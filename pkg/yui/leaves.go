package yui

// Label displays text. A heading uses a larger font; an output field is a
// read-only, selectable value display.
type Label struct {
	Base
	text        string
	heading     bool
	outputField bool
	wordWrap    bool
}

func newLabel(ui *UI, text string, heading, outputField bool) *Label {
	l := &Label{text: text, heading: heading, outputField: outputField}
	l.init(l, ui, KindLabel, -1)
	return l
}

// Label returns the text.
func (l *Label) Label() string { return l.text }

// SetLabel replaces the text.
func (l *Label) SetLabel(text string) { l.SetValue(text) }

// Value returns the text.
func (l *Label) Value() string { return l.text }

// SetValue replaces the text.
func (l *Label) SetValue(text string) {
	l.text = text
	l.sync(AspectValue)
}

// IsHeading reports whether the label is a heading.
func (l *Label) IsHeading() bool { return l.heading }

// IsOutputField reports whether the label is an output field.
func (l *Label) IsOutputField() bool { return l.outputField }

// WordWrap reports whether long text wraps.
func (l *Label) WordWrap() bool { return l.wordWrap }

// SetWordWrap enables wrapping; a wrapping label stretches horizontally.
func (l *Label) SetWordWrap(on bool) {
	l.wordWrap = on
	l.stretch[Horizontal] = on
	l.sync(AspectLayout)
}

// InputField is a single-line text entry.
type InputField struct {
	Base
	label      string
	value      string
	password   bool
	maxLength  int
	validChars string
}

func newInputField(ui *UI, label string, password bool) *InputField {
	f := &InputField{label: label, password: password}
	f.init(f, ui, KindInputField, -1)
	f.stretch[Horizontal] = true
	return f
}

func (f *InputField) textEditor() {}
func (f *InputField) focusable()  {}

// Label returns the caption.
func (f *InputField) Label() string { return f.label }

// SetLabel changes the caption.
func (f *InputField) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Value returns the text.
func (f *InputField) Value() string { return f.value }

// SetValue replaces the text without posting an event.
func (f *InputField) SetValue(v string) {
	f.value = f.filter(v)
	f.sync(AspectValue)
}

// UserSetValue records an edit and posts value-changed when notify is on.
// Backends call it once per keystroke.
func (f *InputField) UserSetValue(v string) {
	v = f.filter(v)
	if v == f.value {
		return
	}
	f.value = v
	f.postWidgetEvent(ValueChanged, false)
}

func (f *InputField) filter(v string) string {
	if f.validChars != "" {
		kept := make([]rune, 0, len(v))
		for _, r := range v {
			for _, ok := range f.validChars {
				if r == ok {
					kept = append(kept, r)
					break
				}
			}
		}
		v = string(kept)
	}
	if f.maxLength > 0 {
		if r := []rune(v); len(r) > f.maxLength {
			v = string(r[:f.maxLength])
		}
	}
	return v
}

// PasswordMode reports whether input is echoed masked.
func (f *InputField) PasswordMode() bool { return f.password }

// InputMaxLength returns the character limit, 0 for none.
func (f *InputField) InputMaxLength() int { return f.maxLength }

// SetInputMaxLength limits the number of characters and truncates the value.
func (f *InputField) SetInputMaxLength(n int) {
	if n < 0 {
		n = 0
	}
	f.maxLength = n
	f.SetValue(f.value)
}

// ValidChars returns the allowed characters, "" for any.
func (f *InputField) ValidChars() string { return f.validChars }

// SetValidChars restricts input to the given characters.
func (f *InputField) SetValidChars(chars string) {
	f.validChars = chars
	f.SetValue(f.value)
}

// MultiLineEdit is a multi-line text entry.
type MultiLineEdit struct {
	Base
	label        string
	value        string
	visibleLines int
}

func newMultiLineEdit(ui *UI, label string) *MultiLineEdit {
	m := &MultiLineEdit{label: label, visibleLines: 3}
	m.init(m, ui, KindMultiLineEdit, -1)
	m.stretch = [2]bool{true, true}
	return m
}

func (m *MultiLineEdit) textEditor() {}
func (m *MultiLineEdit) focusable()  {}

// Label returns the caption.
func (m *MultiLineEdit) Label() string { return m.label }

// SetLabel changes the caption.
func (m *MultiLineEdit) SetLabel(label string) {
	m.label = label
	m.sync(AspectLabel)
}

// Value returns the text.
func (m *MultiLineEdit) Value() string { return m.value }

// SetValue replaces the text without posting an event.
func (m *MultiLineEdit) SetValue(v string) {
	m.value = v
	m.sync(AspectValue)
}

// UserSetValue records an edit and posts value-changed when the content
// changed and notify is on.
func (m *MultiLineEdit) UserSetValue(v string) {
	if v == m.value {
		return
	}
	m.value = v
	m.postWidgetEvent(ValueChanged, false)
}

// DefaultVisibleLines is the preferred height in lines.
func (m *MultiLineEdit) DefaultVisibleLines() int { return m.visibleLines }

// SetDefaultVisibleLines sets the preferred height in lines.
func (m *MultiLineEdit) SetDefaultVisibleLines(n int) {
	if n < 1 {
		n = 1
	}
	m.visibleLines = n
	m.sync(AspectLayout)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IntField is an integer entry with an inclusive range.
type IntField struct {
	Base
	label    string
	min, max int
	value    int
}

func newIntField(ui *UI, label string, min, max, initial int) *IntField {
	if min > max {
		min, max = max, min
	}
	f := &IntField{label: label, min: min, max: max, value: clamp(initial, min, max)}
	f.init(f, ui, KindIntField, -1)
	return f
}

func (f *IntField) textEditor() {}
func (f *IntField) focusable()  {}

// Label returns the caption.
func (f *IntField) Label() string { return f.label }

// SetLabel changes the caption.
func (f *IntField) SetLabel(label string) {
	f.label = label
	f.sync(AspectLabel)
}

// Min returns the lower bound.
func (f *IntField) Min() int { return f.min }

// Max returns the upper bound.
func (f *IntField) Max() int { return f.max }

// Value returns the current value.
func (f *IntField) Value() int { return f.value }

// SetValue stores v clamped to [Min, Max] without posting an event.
func (f *IntField) SetValue(v int) {
	f.value = clamp(v, f.min, f.max)
	f.sync(AspectValue)
}

// UserSetValue stores the clamped user value and posts value-changed when
// it changed and notify is on.
func (f *IntField) UserSetValue(v int) {
	v = clamp(v, f.min, f.max)
	if v == f.value {
		return
	}
	f.value = v
	f.postWidgetEvent(ValueChanged, false)
}

// CheckBox is a labelled tri-state toggle.
type CheckBox struct {
	Base
	label string
	state CheckState
}

func newCheckBox(ui *UI, label string, checked bool) *CheckBox {
	c := &CheckBox{label: label}
	if checked {
		c.state = Checked
	}
	c.init(c, ui, KindCheckBox, -1)
	return c
}

func (c *CheckBox) focusable() {}

// Label returns the caption.
func (c *CheckBox) Label() string { return c.label }

// SetLabel changes the caption.
func (c *CheckBox) SetLabel(label string) {
	c.label = label
	c.sync(AspectLabel)
}

// Value reports whether the box is checked.
func (c *CheckBox) Value() bool { return c.state == Checked }

// SetValue checks or unchecks the box without posting an event.
func (c *CheckBox) SetValue(on bool) {
	if on {
		c.SetCheckState(Checked)
	} else {
		c.SetCheckState(Unchecked)
	}
}

// CheckState returns the tri-state value.
func (c *CheckBox) CheckState() CheckState { return c.state }

// SetCheckState sets the tri-state value without posting an event.
func (c *CheckBox) SetCheckState(s CheckState) {
	c.state = s
	c.sync(AspectValue)
}

// UserToggle advances the state as a click would (don't-care becomes
// checked) and posts value-changed when notify is on.
func (c *CheckBox) UserToggle() {
	if c.state == Checked {
		c.state = Unchecked
	} else {
		c.state = Checked
	}
	c.postWidgetEvent(ValueChanged, false)
}

// UserSetValue records an explicit user choice.
func (c *CheckBox) UserSetValue(on bool) {
	want := Unchecked
	if on {
		want = Checked
	}
	if c.state == want {
		return
	}
	c.state = want
	c.postWidgetEvent(ValueChanged, false)
}

// RadioButton is a labelled exclusive toggle. Buttons sharing a parent
// form a group when the user picks one.
type RadioButton struct {
	Base
	label string
	value bool
}

func newRadioButton(ui *UI, label string, checked bool) *RadioButton {
	r := &RadioButton{label: label, value: checked}
	r.init(r, ui, KindRadioButton, -1)
	return r
}

func (r *RadioButton) focusable() {}

// Label returns the caption.
func (r *RadioButton) Label() string { return r.label }

// SetLabel changes the caption.
func (r *RadioButton) SetLabel(label string) {
	r.label = label
	r.sync(AspectLabel)
}

// Value reports whether the button is on.
func (r *RadioButton) Value() bool { return r.value }

// SetValue turns only this button on or off, without posting an event.
func (r *RadioButton) SetValue(on bool) {
	r.value = on
	r.sync(AspectValue)
}

// Siblings returns the other radio buttons under the same parent.
func (r *RadioButton) Siblings() []*RadioButton {
	if r.parent == nil {
		return nil
	}
	var out []*RadioButton
	for _, c := range r.parent.base().children {
		if rb, ok := c.(*RadioButton); ok && rb != r {
			out = append(out, rb)
		}
	}
	return out
}

// UserSelect turns the button on for the user, turns its siblings off and
// posts value-changed when notify is on.
func (r *RadioButton) UserSelect() {
	if r.value {
		return
	}
	r.value = true
	for _, s := range r.Siblings() {
		if s.value {
			s.value = false
			s.sync(AspectValue)
		}
	}
	r.postWidgetEvent(ValueChanged, false)
}

// PushButton posts an activated event when pressed, regardless of notify.
type PushButton struct {
	Base
	label     string
	icon      string
	role      ButtonRole
	isDefault bool
}

func newPushButton(ui *UI, label string) *PushButton {
	b := &PushButton{label: label}
	b.init(b, ui, KindPushButton, -1)
	return b
}

func (b *PushButton) focusable() {}

// Label returns the caption.
func (b *PushButton) Label() string { return b.label }

// SetLabel changes the caption.
func (b *PushButton) SetLabel(label string) {
	b.label = label
	b.sync(AspectLabel)
}

// Icon returns the icon name.
func (b *PushButton) Icon() string { return b.icon }

// SetIcon sets the icon name.
func (b *PushButton) SetIcon(icon string) {
	b.icon = icon
	b.sync(AspectLabel)
}

// Role returns the button role.
func (b *PushButton) Role() ButtonRole { return b.role }

// SetRole assigns a role such as RoleOK or RoleCancel.
func (b *PushButton) SetRole(r ButtonRole) { b.role = r }

// IsDefault reports whether the button is the dialog default.
func (b *PushButton) IsDefault() bool { return b.isDefault }

// SetDefault registers or unregisters the button as the dialog default.
// A dialog tracks at most one default button.
func (b *PushButton) SetDefault(on bool) {
	if d := b.FindDialog(); d != nil {
		if on {
			d.SetDefaultButton(b)
		} else if d.DefaultButton() == b {
			d.SetDefaultButton(nil)
		}
		return
	}
	b.isDefault = on
	b.sync(AspectDefault)
}

// Activate presses the button. Disabled or hidden buttons ignore it.
func (b *PushButton) Activate() bool {
	if !b.EffectivelyEnabled() || !EffectivelyVisible(b) {
		return false
	}
	b.postWidgetEvent(Activated, true)
	return true
}

// ProgressBar shows a value in [0, Max].
type ProgressBar struct {
	Base
	label string
	max   int
	value int
}

func newProgressBar(ui *UI, label string, max int) *ProgressBar {
	if max < 0 {
		max = 0
	}
	p := &ProgressBar{label: label, max: max}
	p.init(p, ui, KindProgressBar, -1)
	p.stretch[Horizontal] = true
	return p
}

// Label returns the caption.
func (p *ProgressBar) Label() string { return p.label }

// SetLabel changes the caption.
func (p *ProgressBar) SetLabel(label string) {
	p.label = label
	p.sync(AspectLabel)
}

// Max returns the upper bound.
func (p *ProgressBar) Max() int { return p.max }

// Value returns the progress.
func (p *ProgressBar) Value() int { return p.value }

// SetValue stores v clamped to [0, Max].
func (p *ProgressBar) SetValue(v int) {
	p.value = clamp(v, 0, p.max)
	p.sync(AspectValue)
}

// Percent returns the progress as 0..100.
func (p *ProgressBar) Percent() int {
	if p.max == 0 {
		return 0
	}
	return p.value * 100 / p.max
}

// Slider is an integer range control with a numeric display.
type Slider struct {
	Base
	label    string
	min, max int
	value    int
}

func newSlider(ui *UI, label string, min, max, initial int) *Slider {
	if min > max {
		min, max = max, min
	}
	s := &Slider{label: label, min: min, max: max, value: clamp(initial, min, max)}
	s.init(s, ui, KindSlider, -1)
	s.stretch[Horizontal] = true
	return s
}

func (s *Slider) focusable() {}

// Label returns the caption.
func (s *Slider) Label() string { return s.label }

// SetLabel changes the caption.
func (s *Slider) SetLabel(label string) {
	s.label = label
	s.sync(AspectLabel)
}

// Min returns the lower bound.
func (s *Slider) Min() int { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() int { return s.max }

// Value returns the current value.
func (s *Slider) Value() int { return s.value }

// SetValue stores v clamped to the range without posting an event.
func (s *Slider) SetValue(v int) {
	s.value = clamp(v, s.min, s.max)
	s.sync(AspectValue)
}

// UserDrag records an intermediate drag position and posts value-changed
// when notify is on.
func (s *Slider) UserDrag(v int) {
	v = clamp(v, s.min, s.max)
	if v == s.value {
		return
	}
	s.value = v
	s.postWidgetEvent(ValueChanged, false)
}

// UserRelease records the final position and posts activated when notify is on.
func (s *Slider) UserRelease(v int) {
	s.value = clamp(v, s.min, s.max)
	s.postWidgetEvent(Activated, false)
}

// Spacing reserves space along one axis: a fixed number of pixels, or a
// stretchable gap with a minimum.
type Spacing struct {
	Base
	primary Dimension
	size    int
}

func newSpacing(ui *UI, dim Dimension, stretchable bool, size int) *Spacing {
	if size < 0 {
		size = 0
	}
	s := &Spacing{primary: dim, size: size}
	s.init(s, ui, KindSpacing, -1)
	s.stretch[dim] = stretchable
	return s
}

// Primary returns the axis along which space is reserved.
func (s *Spacing) Primary() Dimension { return s.primary }

// Size returns the fixed or minimum size in pixels.
func (s *Spacing) Size() int { return s.size }

// Image shows a bitmap or icon. With auto scale on, it grows in both axes
// while keeping the source aspect ratio.
type Image struct {
	Base
	path      string
	autoScale bool
}

func newImage(ui *UI, path string, autoScale bool) *Image {
	img := &Image{path: path}
	img.init(img, ui, KindImage, -1)
	img.SetAutoScale(autoScale)
	return img
}

// Path returns the image file or icon name.
func (i *Image) Path() string { return i.path }

// SetPath replaces the image.
func (i *Image) SetPath(path string) {
	i.path = path
	i.sync(AspectValue)
}

// AutoScale reports whether the image scales with the widget.
func (i *Image) AutoScale() bool { return i.autoScale }

// SetAutoScale toggles aspect-preserving scaling; scaling images stretch in
// both axes.
func (i *Image) SetAutoScale(on bool) {
	i.autoScale = on
	if on {
		i.stretch = [2]bool{true, true}
	}
	i.sync(AspectLayout)
}

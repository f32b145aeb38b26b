package yui

import (
	"sort"
	"strconv"

	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// PropertyType is the value type of a widget property.
type PropertyType int

const (
	StringProperty PropertyType = iota
	IntProperty
	BoolProperty
)

func (t PropertyType) String() string {
	switch t {
	case IntProperty:
		return "int"
	case BoolProperty:
		return "bool"
	default:
		return "string"
	}
}

// Property describes one named widget property.
type Property struct {
	Name     string
	Type     PropertyType
	ReadOnly bool
}

// PropertyValue is a typed property value.
type PropertyValue struct {
	typ PropertyType
	s   string
	i   int
	b   bool
}

// StringValue wraps a string.
func StringValue(s string) PropertyValue { return PropertyValue{typ: StringProperty, s: s} }

// IntValue wraps an int.
func IntValue(i int) PropertyValue { return PropertyValue{typ: IntProperty, i: i} }

// BoolValue wraps a bool.
func BoolValue(b bool) PropertyValue { return PropertyValue{typ: BoolProperty, b: b} }

// Type returns the value type.
func (v PropertyValue) Type() PropertyType { return v.typ }

// String returns the string form of any value.
func (v PropertyValue) String() string {
	switch v.typ {
	case IntProperty:
		return strconv.Itoa(v.i)
	case BoolProperty:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Int returns the int payload.
func (v PropertyValue) Int() int { return v.i }

// Bool returns the bool payload.
func (v PropertyValue) Bool() bool { return v.b }

// ParsePropertyValue converts text into a value of type t.
func ParsePropertyValue(t PropertyType, text string) (PropertyValue, error) {
	switch t {
	case IntProperty:
		n, err := strconv.Atoi(text)
		if err != nil {
			return PropertyValue{}, yerrors.Wrap(err, yerrors.ErrCodeInvalidInput, "not an integer")
		}
		return IntValue(n), nil
	case BoolProperty:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return PropertyValue{}, yerrors.Wrap(err, yerrors.ErrCodeInvalidInput, "not a boolean")
		}
		return BoolValue(b), nil
	default:
		return StringValue(text), nil
	}
}

// PropertySet is the sorted list of properties a widget supports.
type PropertySet []Property

// Contains reports whether name is in the set.
func (s PropertySet) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Lookup returns the property called name.
func (s PropertySet) Lookup(name string) (Property, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

type propertyDef struct {
	Property
	get func() PropertyValue
	set func(PropertyValue)
}

// propertyOwner is implemented by widgets with class-specific properties.
type propertyOwner interface {
	widgetProperties() []propertyDef
}

func roString(name string, get func() string) propertyDef {
	return propertyDef{Property: Property{Name: name, Type: StringProperty, ReadOnly: true},
		get: func() PropertyValue { return StringValue(get()) }}
}

func stringProp(name string, get func() string, set func(string)) propertyDef {
	return propertyDef{Property: Property{Name: name, Type: StringProperty},
		get: func() PropertyValue { return StringValue(get()) },
		set: func(v PropertyValue) { set(v.String()) }}
}

func intProp(name string, get func() int, set func(int)) propertyDef {
	d := propertyDef{Property: Property{Name: name, Type: IntProperty},
		get: func() PropertyValue { return IntValue(get()) }}
	if set == nil {
		d.ReadOnly = true
	} else {
		d.set = func(v PropertyValue) { set(v.Int()) }
	}
	return d
}

func boolProp(name string, get func() bool, set func(bool)) propertyDef {
	return propertyDef{Property: Property{Name: name, Type: BoolProperty},
		get: func() PropertyValue { return BoolValue(get()) },
		set: func(v PropertyValue) { set(v.Bool()) }}
}

func (b *Base) propertyDefs() []propertyDef {
	w := b.self
	defs := []propertyDef{
		boolProp("Enabled", w.IsEnabled, w.SetEnabled),
		boolProp("Visible", w.IsVisible, w.SetVisible),
		boolProp("Notify", w.Notify, w.SetNotify),
		stringProp("HelpText", w.HelpText, w.SetHelpText),
		stringProp("ID", w.ID, w.SetID),
		roString("WidgetClass", w.Kind().String),
		roString("DebugLabel", w.DebugLabel),
	}
	if o, ok := w.(propertyOwner); ok {
		defs = append(defs, o.widgetProperties()...)
	}
	return defs
}

// PropertySet lists the widget's properties by name.
func (b *Base) PropertySet() PropertySet {
	defs := b.propertyDefs()
	set := make(PropertySet, 0, len(defs))
	for _, d := range defs {
		set = append(set, d.Property)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].Name < set[j].Name })
	return set
}

func (b *Base) lookupProperty(name string) (propertyDef, error) {
	for _, d := range b.propertyDefs() {
		if d.Name == name {
			return d, nil
		}
	}
	return propertyDef{}, yerrors.Newf(yerrors.ErrCodeInvalidInput, "unknown property %q", name).
		WithContext("widget", b.kind.String())
}

// GetProperty returns the value of the named property.
func (b *Base) GetProperty(name string) (PropertyValue, error) {
	d, err := b.lookupProperty(name)
	if err != nil {
		return PropertyValue{}, err
	}
	return d.get(), nil
}

// SetProperty assigns the named property. The value must have the
// property's type; read-only properties are rejected.
func (b *Base) SetProperty(name string, v PropertyValue) error {
	d, err := b.lookupProperty(name)
	if err != nil {
		return err
	}
	if d.ReadOnly || d.set == nil {
		return yerrors.Newf(yerrors.ErrCodeInvalidInput, "property %q is read-only", name).
			WithContext("widget", b.kind.String())
	}
	if v.typ != d.Type {
		return yerrors.Newf(yerrors.ErrCodeInvalidInput, "property %q wants %s, got %s", name, d.Type, v.typ).
			WithContext("widget", b.kind.String())
	}
	d.set(v)
	return nil
}

func (l *Label) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", l.Label, l.SetLabel),
		stringProp("Value", l.Value, l.SetValue),
	}
}

func (f *InputField) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", f.Label, f.SetLabel),
		stringProp("Value", f.Value, func(s string) { f.SetValue(s) }),
		intProp("InputMaxLength", f.InputMaxLength, f.SetInputMaxLength),
		stringProp("ValidChars", f.ValidChars, f.SetValidChars),
	}
}

func (m *MultiLineEdit) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", m.Label, m.SetLabel),
		stringProp("Value", m.Value, func(s string) { m.SetValue(s) }),
	}
}

func (f *IntField) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", f.Label, f.SetLabel),
		intProp("Value", f.Value, f.SetValue),
		intProp("MinValue", f.Min, nil),
		intProp("MaxValue", f.Max, nil),
	}
}

func (c *CheckBox) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", c.Label, c.SetLabel),
		boolProp("Value", c.Value, c.SetValue),
	}
}

func (r *RadioButton) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", r.Label, r.SetLabel),
		boolProp("Value", r.Value, r.SetValue),
	}
}

func (b *PushButton) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", b.Label, b.SetLabel),
		stringProp("Icon", b.Icon, b.SetIcon),
	}
}

func (p *ProgressBar) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", p.Label, p.SetLabel),
		intProp("Value", p.Value, p.SetValue),
		intProp("MaxValue", p.Max, nil),
	}
}

func (s *Slider) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", s.Label, s.SetLabel),
		intProp("Value", s.Value, s.SetValue),
	}
}

func (f *DateField) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", f.Label, f.SetLabel),
		stringProp("Value", f.Value, func(s string) { _ = f.SetValue(s) }),
	}
}

func (f *TimeField) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", f.Label, f.SetLabel),
		stringProp("Value", f.Value, func(s string) { _ = f.SetValue(s) }),
	}
}

func (r *RichText) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Value", r.Value, r.SetValue),
	}
}

func (c *ComboBox) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", c.Label, c.SetLabel),
		stringProp("Value", c.Value, c.SetValue),
	}
}

func (l *LogView) widgetProperties() []propertyDef {
	return []propertyDef{
		stringProp("Label", l.Label, l.SetLabel),
		stringProp("Value", l.LogText, l.SetLogText),
		intProp("MaxLines", l.MaxLines, l.SetMaxLines),
	}
}

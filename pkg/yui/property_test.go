package yui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/yui/pkg/yui"
)

func TestWidgetProperties(t *testing.T) {
	ui, _, _, vbox := newDialog(t)
	field, err := ui.Factory().CreateIntField(vbox, "Count", 0, 10, 5)
	require.NoError(t, err)

	set := field.PropertySet()
	for _, name := range []string{"Enabled", "Visible", "Notify", "HelpText", "ID", "WidgetClass", "Value", "MinValue", "MaxValue", "Label"} {
		assert.True(t, set.Contains(name), name)
	}
	p, ok := set.Lookup("MaxValue")
	require.True(t, ok)
	assert.True(t, p.ReadOnly)
	assert.Equal(t, yui.IntProperty, p.Type)

	require.NoError(t, field.SetProperty("Value", yui.IntValue(42)))
	v, err := field.GetProperty("Value")
	require.NoError(t, err)
	assert.Equal(t, 10, v.Int(), "clamped through the setter")

	cls, err := field.GetProperty("WidgetClass")
	require.NoError(t, err)
	assert.Equal(t, "IntField", cls.String())

	assert.ErrorIs(t, field.SetProperty("MaxValue", yui.IntValue(3)), yui.ErrInvalidInput)
	assert.ErrorIs(t, field.SetProperty("Value", yui.StringValue("3")), yui.ErrInvalidInput)
	_, err = field.GetProperty("Bogus")
	assert.ErrorIs(t, err, yui.ErrInvalidInput)

	require.NoError(t, field.SetProperty("Enabled", yui.BoolValue(false)))
	assert.False(t, field.IsEnabled())
}

func TestParsePropertyValue(t *testing.T) {
	v, err := yui.ParsePropertyValue(yui.IntProperty, "12")
	require.NoError(t, err)
	assert.Equal(t, 12, v.Int())

	v, err = yui.ParsePropertyValue(yui.BoolProperty, "true")
	require.NoError(t, err)
	assert.True(t, v.Bool())
	assert.Equal(t, "true", v.String())

	_, err = yui.ParsePropertyValue(yui.IntProperty, "twelve")
	assert.ErrorIs(t, err, yui.ErrInvalidInput)
}

package yui

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/logging"
)

// Factory creates widgets for the selected backend. Every Create method
// checks that the backend supports the widget class and that the parent can
// take another child before anything is built, so a failed call leaves the
// tree unchanged.
type Factory struct {
	ui *UI
}

func (f *Factory) supported(kind WidgetKind) error {
	if f.ui.backend.Supports(kind) {
		return nil
	}
	return yerrors.New(yerrors.ErrCodeUnsupportedWidget, "widget not supported by backend").
		WithContext("widget", kind.String()).
		WithContext("backend", f.ui.backend.Name())
}

func create[W Widget](f *Factory, parent Widget, kind WidgetKind, build func() W) (W, error) {
	var zero W
	if err := f.supported(kind); err != nil {
		return zero, err
	}
	if parent != nil {
		if parent.IsDestroyed() {
			return zero, invalidWidget(parent, "parent already destroyed")
		}
		if err := parent.base().canAdd(); err != nil {
			return zero, err
		}
	}
	w := build()
	if parent != nil {
		if err := parent.AddChild(w); err != nil {
			return zero, err
		}
	}
	f.ui.logger.Debug(logging.CategoryWidget, "create", kind.String(), nil)
	return w, nil
}

// CreateDialog creates a dialog and pushes it on the open-dialog stack.
func (f *Factory) CreateDialog(typ DialogType, color DialogColorMode) (*Dialog, error) {
	d, err := create(f, nil, KindDialog, func() *Dialog { return newDialog(f.ui, typ, color) })
	if err != nil {
		return nil, err
	}
	f.ui.pushDialog(d)
	return d, nil
}

// CreateMainDialog creates a main window.
func (f *Factory) CreateMainDialog() (*Dialog, error) {
	return f.CreateDialog(MainDialog, ColorNormal)
}

// CreatePopupDialog creates a popup with the given colour mode.
func (f *Factory) CreatePopupDialog(color DialogColorMode) (*Dialog, error) {
	return f.CreateDialog(PopupDialog, color)
}

// CreateVBox creates a vertical box.
func (f *Factory) CreateVBox(parent Widget) (*Box, error) {
	return create(f, parent, KindVBox, func() *Box { return newBox(f.ui, Vertical) })
}

// CreateHBox creates a horizontal box.
func (f *Factory) CreateHBox(parent Widget) (*Box, error) {
	return create(f, parent, KindHBox, func() *Box { return newBox(f.ui, Horizontal) })
}

// CreateFrame creates a titled frame.
func (f *Factory) CreateFrame(parent Widget, label string) (*Frame, error) {
	return create(f, parent, KindFrame, func() *Frame { return newFrame(f.ui, label) })
}

// CreateAlignment creates an alignment container.
func (f *Factory) CreateAlignment(parent Widget, h, v Alignment) (*AlignmentBox, error) {
	return create(f, parent, KindAlignment, func() *AlignmentBox { return newAlignment(f.ui, h, v) })
}

// CreateLeft aligns its child to the left.
func (f *Factory) CreateLeft(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignBegin, AlignUnchanged)
}

// CreateRight aligns its child to the right.
func (f *Factory) CreateRight(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignEnd, AlignUnchanged)
}

// CreateTop aligns its child to the top.
func (f *Factory) CreateTop(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignUnchanged, AlignBegin)
}

// CreateBottom aligns its child to the bottom.
func (f *Factory) CreateBottom(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignUnchanged, AlignEnd)
}

// CreateHCenter centres its child horizontally.
func (f *Factory) CreateHCenter(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignCenter, AlignUnchanged)
}

// CreateVCenter centres its child vertically.
func (f *Factory) CreateVCenter(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignUnchanged, AlignCenter)
}

// CreateHVCenter centres its child in both axes.
func (f *Factory) CreateHVCenter(parent Widget) (*AlignmentBox, error) {
	return f.CreateAlignment(parent, AlignCenter, AlignCenter)
}

// CreateCheckBoxFrame creates a frame with a check box in its title.
func (f *Factory) CreateCheckBoxFrame(parent Widget, label string, checked bool) (*CheckBoxFrame, error) {
	return create(f, parent, KindCheckBoxFrame, func() *CheckBoxFrame { return newCheckBoxFrame(f.ui, label, checked) })
}

// CreateReplacePoint creates a placeholder for swappable content.
func (f *Factory) CreateReplacePoint(parent Widget) (*ReplacePoint, error) {
	return create(f, parent, KindReplacePoint, func() *ReplacePoint { return newReplacePoint(f.ui) })
}

// CreatePaned creates a two-pane splitter along dim.
func (f *Factory) CreatePaned(parent Widget, dim Dimension) (*Paned, error) {
	return create(f, parent, KindPaned, func() *Paned { return newPaned(f.ui, dim) })
}

// CreateDumbTab creates a tab bar.
func (f *Factory) CreateDumbTab(parent Widget) (*DumbTab, error) {
	return create(f, parent, KindDumbTab, func() *DumbTab { return newDumbTab(f.ui) })
}

// CreateLabel creates a plain label.
func (f *Factory) CreateLabel(parent Widget, text string) (*Label, error) {
	return create(f, parent, KindLabel, func() *Label { return newLabel(f.ui, text, false, false) })
}

// CreateHeading creates a heading label.
func (f *Factory) CreateHeading(parent Widget, text string) (*Label, error) {
	return create(f, parent, KindLabel, func() *Label { return newLabel(f.ui, text, true, false) })
}

// CreateOutputField creates a read-only selectable value label.
func (f *Factory) CreateOutputField(parent Widget, text string) (*Label, error) {
	return create(f, parent, KindLabel, func() *Label { return newLabel(f.ui, text, false, true) })
}

// CreateInputField creates a single-line text entry.
func (f *Factory) CreateInputField(parent Widget, label string) (*InputField, error) {
	return create(f, parent, KindInputField, func() *InputField { return newInputField(f.ui, label, false) })
}

// CreatePasswordField creates a masked single-line text entry.
func (f *Factory) CreatePasswordField(parent Widget, label string) (*InputField, error) {
	return create(f, parent, KindInputField, func() *InputField { return newInputField(f.ui, label, true) })
}

// CreateMultiLineEdit creates a multi-line text entry.
func (f *Factory) CreateMultiLineEdit(parent Widget, label string) (*MultiLineEdit, error) {
	return create(f, parent, KindMultiLineEdit, func() *MultiLineEdit { return newMultiLineEdit(f.ui, label) })
}

// CreateIntField creates an integer entry with an inclusive range.
func (f *Factory) CreateIntField(parent Widget, label string, min, max, initial int) (*IntField, error) {
	return create(f, parent, KindIntField, func() *IntField { return newIntField(f.ui, label, min, max, initial) })
}

// CreateCheckBox creates a check box.
func (f *Factory) CreateCheckBox(parent Widget, label string, checked bool) (*CheckBox, error) {
	return create(f, parent, KindCheckBox, func() *CheckBox { return newCheckBox(f.ui, label, checked) })
}

// CreateRadioButton creates a radio button.
func (f *Factory) CreateRadioButton(parent Widget, label string, checked bool) (*RadioButton, error) {
	return create(f, parent, KindRadioButton, func() *RadioButton { return newRadioButton(f.ui, label, checked) })
}

// CreatePushButton creates a push button.
func (f *Factory) CreatePushButton(parent Widget, label string) (*PushButton, error) {
	return create(f, parent, KindPushButton, func() *PushButton { return newPushButton(f.ui, label) })
}

// CreateComboBox creates a drop-down, editable if requested.
func (f *Factory) CreateComboBox(parent Widget, label string, editable bool) (*ComboBox, error) {
	return create(f, parent, KindComboBox, func() *ComboBox { return newComboBox(f.ui, label, editable) })
}

// CreateSelectionBox creates a single-selection list.
func (f *Factory) CreateSelectionBox(parent Widget, label string) (*SelectionBox, error) {
	return create(f, parent, KindSelectionBox, func() *SelectionBox { return newSelectionBox(f.ui, label, false) })
}

// CreateMultiSelectionBox creates a multi-selection list.
func (f *Factory) CreateMultiSelectionBox(parent Widget, label string) (*SelectionBox, error) {
	return create(f, parent, KindSelectionBox, func() *SelectionBox { return newSelectionBox(f.ui, label, true) })
}

// CreateTree creates a tree. Recursive selection only applies with multi selection.
func (f *Factory) CreateTree(parent Widget, label string, multi, recursive bool) (*Tree, error) {
	return create(f, parent, KindTree, func() *Tree { return newTree(f.ui, label, multi, recursive) })
}

// CreateTable creates a table. A header with a check box column forces
// single selection.
func (f *Factory) CreateTable(parent Widget, header *TableHeader, multi bool) (*Table, error) {
	return create(f, parent, KindTable, func() *Table { return newTable(f.ui, header, multi) })
}

// CreateProgressBar creates a progress bar with range [0, max].
func (f *Factory) CreateProgressBar(parent Widget, label string, max int) (*ProgressBar, error) {
	return create(f, parent, KindProgressBar, func() *ProgressBar { return newProgressBar(f.ui, label, max) })
}

// CreateSlider creates a slider.
func (f *Factory) CreateSlider(parent Widget, label string, min, max, initial int) (*Slider, error) {
	return create(f, parent, KindSlider, func() *Slider { return newSlider(f.ui, label, min, max, initial) })
}

// CreateDateField creates a date entry initialised to today.
func (f *Factory) CreateDateField(parent Widget, label string) (*DateField, error) {
	return create(f, parent, KindDateField, func() *DateField { return newDateField(f.ui, label) })
}

// CreateTimeField creates a time entry initialised to now.
func (f *Factory) CreateTimeField(parent Widget, label string) (*TimeField, error) {
	return create(f, parent, KindTimeField, func() *TimeField { return newTimeField(f.ui, label) })
}

// CreateRichText creates a rich text view.
func (f *Factory) CreateRichText(parent Widget, text string, plain bool) (*RichText, error) {
	return create(f, parent, KindRichText, func() *RichText { return newRichText(f.ui, text, plain) })
}

// CreateLogView creates a log view. maxLines 0 keeps every line.
func (f *Factory) CreateLogView(parent Widget, label string, visibleLines, maxLines int) (*LogView, error) {
	return create(f, parent, KindLogView, func() *LogView { return newLogView(f.ui, label, visibleLines, maxLines) })
}

// CreateImage creates an image view.
func (f *Factory) CreateImage(parent Widget, path string, autoScale bool) (*Image, error) {
	return create(f, parent, KindImage, func() *Image { return newImage(f.ui, path, autoScale) })
}

// CreateMenuBar creates a menu bar.
func (f *Factory) CreateMenuBar(parent Widget) (*MenuBar, error) {
	return create(f, parent, KindMenuBar, func() *MenuBar { return newMenuBar(f.ui) })
}

// CreateSpacing reserves size pixels along dim; a stretchable spacing
// takes any extra space with size as its minimum.
func (f *Factory) CreateSpacing(parent Widget, dim Dimension, stretchable bool, size int) (*Spacing, error) {
	return create(f, parent, KindSpacing, func() *Spacing { return newSpacing(f.ui, dim, stretchable, size) })
}

// CreateHStretch creates a horizontal stretchable gap.
func (f *Factory) CreateHStretch(parent Widget) (*Spacing, error) {
	return f.CreateSpacing(parent, Horizontal, true, 0)
}

// CreateVStretch creates a vertical stretchable gap.
func (f *Factory) CreateVStretch(parent Widget) (*Spacing, error) {
	return f.CreateSpacing(parent, Vertical, true, 0)
}

// CreateHSpacing creates a fixed horizontal gap of size pixels.
func (f *Factory) CreateHSpacing(parent Widget, size int) (*Spacing, error) {
	return f.CreateSpacing(parent, Horizontal, false, size)
}

// CreateVSpacing creates a fixed vertical gap of size pixels.
func (f *Factory) CreateVSpacing(parent Widget, size int) (*Spacing, error) {
	return f.CreateSpacing(parent, Vertical, false, size)
}

// OptionalWidgetFactory lets applications probe for widgets that a
// backend may omit before creating them.
type OptionalWidgetFactory struct {
	ui *UI
}

// OptionalKinds are the widget classes a backend is allowed to omit.
var OptionalKinds = []WidgetKind{KindDumbTab, KindPaned, KindSlider, KindDateField, KindTimeField, KindImage}

// Has reports whether the backend supports kind.
func (o *OptionalWidgetFactory) Has(kind WidgetKind) bool { return o.ui.backend.Supports(kind) }

// HasDumbTab reports tab bar support.
func (o *OptionalWidgetFactory) HasDumbTab() bool { return o.Has(KindDumbTab) }

// HasPaned reports splitter support.
func (o *OptionalWidgetFactory) HasPaned() bool { return o.Has(KindPaned) }

// HasSlider reports slider support.
func (o *OptionalWidgetFactory) HasSlider() bool { return o.Has(KindSlider) }

// HasDateField reports date field support.
func (o *OptionalWidgetFactory) HasDateField() bool { return o.Has(KindDateField) }

// HasTimeField reports time field support.
func (o *OptionalWidgetFactory) HasTimeField() bool { return o.Has(KindTimeField) }

// HasImage reports image support.
func (o *OptionalWidgetFactory) HasImage() bool { return o.Has(KindImage) }

// CreateDumbTab creates a tab bar or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreateDumbTab(parent Widget) (*DumbTab, error) {
	return o.ui.factory.CreateDumbTab(parent)
}

// CreatePaned creates a splitter or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreatePaned(parent Widget, dim Dimension) (*Paned, error) {
	return o.ui.factory.CreatePaned(parent, dim)
}

// CreateSlider creates a slider or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreateSlider(parent Widget, label string, min, max, initial int) (*Slider, error) {
	return o.ui.factory.CreateSlider(parent, label, min, max, initial)
}

// CreateDateField creates a date field or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreateDateField(parent Widget, label string) (*DateField, error) {
	return o.ui.factory.CreateDateField(parent, label)
}

// CreateTimeField creates a time field or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreateTimeField(parent Widget, label string) (*TimeField, error) {
	return o.ui.factory.CreateTimeField(parent, label)
}

// CreateImage creates an image or fails with unsupported-widget.
func (o *OptionalWidgetFactory) CreateImage(parent Widget, path string, autoScale bool) (*Image, error) {
	return o.ui.factory.CreateImage(parent, path, autoScale)
}

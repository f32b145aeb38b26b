package yui

import "strings"

// Dimension selects the horizontal or vertical layout axis.
type Dimension int

const (
	Horizontal Dimension = iota
	Vertical
)

func (d Dimension) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Other returns the perpendicular dimension.
func (d Dimension) Other() Dimension {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Alignment positions a child inside an alignment container along one axis.
type Alignment int

const (
	AlignUnchanged Alignment = iota
	AlignBegin
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignBegin:
		return "begin"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "unchanged"
	}
}

// DialogType distinguishes main windows from popups.
type DialogType int

const (
	MainDialog DialogType = iota
	PopupDialog
)

func (t DialogType) String() string {
	if t == PopupDialog {
		return "popup"
	}
	return "main"
}

// DialogColorMode selects the colour scheme of a dialog.
type DialogColorMode int

const (
	ColorNormal DialogColorMode = iota
	ColorWarning
	ColorInfo
)

func (m DialogColorMode) String() string {
	switch m {
	case ColorWarning:
		return "warning"
	case ColorInfo:
		return "info"
	default:
		return "normal"
	}
}

// EventType is the kind of an Event.
type EventType int

const (
	NoEvent EventType = iota
	WidgetEvent
	MenuEvent
	KeyEvent
	CancelEvent
	TimeoutEvent
	GenericEvent
)

func (t EventType) String() string {
	switch t {
	case WidgetEvent:
		return "widget"
	case MenuEvent:
		return "menu"
	case KeyEvent:
		return "key"
	case CancelEvent:
		return "cancel"
	case TimeoutEvent:
		return "timeout"
	case GenericEvent:
		return "generic"
	default:
		return "none"
	}
}

// EventReason tells why a widget event was posted.
type EventReason int

const (
	ReasonNone EventReason = iota
	Activated
	ValueChanged
	SelectionChanged
)

func (r EventReason) String() string {
	switch r {
	case Activated:
		return "activated"
	case ValueChanged:
		return "value_changed"
	case SelectionChanged:
		return "selection_changed"
	default:
		return "none"
	}
}

// ButtonRole describes the purpose of a push button.
type ButtonRole int

const (
	RoleCustom ButtonRole = iota
	RoleOK
	RoleCancel
	RoleApply
	RoleHelp
)

func (r ButtonRole) String() string {
	switch r {
	case RoleOK:
		return "ok"
	case RoleCancel:
		return "cancel"
	case RoleApply:
		return "apply"
	case RoleHelp:
		return "help"
	default:
		return "custom"
	}
}

// CheckState is the tri-state value of a check box.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	DontCare
)

func (s CheckState) String() string {
	switch s {
	case Checked:
		return "checked"
	case DontCare:
		return "dont_care"
	default:
		return "unchecked"
	}
}

// WidgetKind identifies a widget class. Backends report which kinds they support.
type WidgetKind int

const (
	KindDialog WidgetKind = iota
	KindVBox
	KindHBox
	KindFrame
	KindAlignment
	KindCheckBoxFrame
	KindReplacePoint
	KindPaned
	KindDumbTab
	KindLabel
	KindInputField
	KindMultiLineEdit
	KindIntField
	KindCheckBox
	KindRadioButton
	KindPushButton
	KindComboBox
	KindSelectionBox
	KindTree
	KindTable
	KindProgressBar
	KindSlider
	KindDateField
	KindTimeField
	KindRichText
	KindLogView
	KindImage
	KindMenuBar
	KindSpacing
	kindCount
)

var kindNames = [...]string{
	KindDialog:        "Dialog",
	KindVBox:          "VBox",
	KindHBox:          "HBox",
	KindFrame:         "Frame",
	KindAlignment:     "Alignment",
	KindCheckBoxFrame: "CheckBoxFrame",
	KindReplacePoint:  "ReplacePoint",
	KindPaned:         "Paned",
	KindDumbTab:       "DumbTab",
	KindLabel:         "Label",
	KindInputField:    "InputField",
	KindMultiLineEdit: "MultiLineEdit",
	KindIntField:      "IntField",
	KindCheckBox:      "CheckBox",
	KindRadioButton:   "RadioButton",
	KindPushButton:    "PushButton",
	KindComboBox:      "ComboBox",
	KindSelectionBox:  "SelectionBox",
	KindTree:          "Tree",
	KindTable:         "Table",
	KindProgressBar:   "ProgressBar",
	KindSlider:        "Slider",
	KindDateField:     "DateField",
	KindTimeField:     "TimeField",
	KindRichText:      "RichText",
	KindLogView:       "LogView",
	KindImage:         "Image",
	KindMenuBar:       "MenuBar",
	KindSpacing:       "Spacing",
}

func (k WidgetKind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// AllKinds lists every widget kind.
func AllKinds() []WidgetKind {
	kinds := make([]WidgetKind, 0, kindCount)
	for k := WidgetKind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseWidgetKind maps a class name such as "PushButton" to its kind.
func ParseWidgetKind(name string) (WidgetKind, bool) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return WidgetKind(k), true
		}
	}
	return 0, false
}

package restapi

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

// Actions accepted by POST /v1/widgets.
const (
	ActionPress     = "press"
	ActionEnterText = "enter_text"
	ActionCheck     = "check"
	ActionUncheck   = "uncheck"
	ActionToggle    = "toggle"
	ActionSelect    = "select"
)

type itemSelector interface {
	FindItem(label string) (yui.SelectionItem, error)
	UserSelect(it yui.SelectionItem, on bool) error
}

// perform applies action to w as if the user did it. User changes are
// not echoed to peers by the model, so the peer is refreshed here.
func perform(w yui.Widget, action, value string) error {
	if !w.EffectivelyEnabled() {
		return yerrors.New(yerrors.ErrCodeInvalidInput, "widget is disabled").WithContext("widget", w.DebugLabel())
	}
	switch action {
	case ActionPress:
		b, ok := w.(*yui.PushButton)
		if !ok {
			return unsupported(w, action)
		}
		if !b.Activate() {
			return yerrors.New(yerrors.ErrCodeInvalidInput, "button cannot be pressed").WithContext("widget", w.DebugLabel())
		}
		return nil
	case ActionEnterText:
		return enterText(w, value)
	case ActionCheck, ActionUncheck, ActionToggle:
		return check(w, action)
	case ActionSelect:
		return selectValue(w, value)
	case "":
		return yerrors.New(yerrors.ErrCodeInvalidInput, "action is required")
	default:
		return yerrors.New(yerrors.ErrCodeInvalidInput, "unknown action").WithContext("action", action)
	}
}

func unsupported(w yui.Widget, action string) error {
	return yerrors.New(yerrors.ErrCodeInvalidInput, "action not supported by this widget").
		WithContext("action", action).WithContext("widget", w.Kind().String())
}

func refresh(w yui.Widget, a yui.Aspect) {
	if p := w.Peer(); p != nil {
		_ = p.Sync(a)
	}
}

func enterText(w yui.Widget, value string) error {
	switch v := w.(type) {
	case *yui.InputField:
		v.UserSetValue(value)
	case *yui.MultiLineEdit:
		v.UserSetValue(value)
	case *yui.ComboBox:
		if !v.Editable() {
			return unsupported(w, ActionEnterText)
		}
		v.UserSetValue(value)
	case *yui.IntField:
		n, err := parseInt(value)
		if err != nil {
			return err
		}
		v.UserSetValue(n)
	case *yui.DateField:
		y, m, d, ok := yui.ParseDate(value)
		if !ok {
			return yerrors.New(yerrors.ErrCodeInvalidInput, "value must be YYYY-MM-DD").WithContext("value", value)
		}
		v.UserSetDate(y, m, d)
	case *yui.TimeField:
		h, m, s, ok := yui.ParseTime(value)
		if !ok {
			return yerrors.New(yerrors.ErrCodeInvalidInput, "value must be HH:MM:SS").WithContext("value", value)
		}
		v.UserSetTime(h, m, s)
	default:
		return unsupported(w, ActionEnterText)
	}
	refresh(w, yui.AspectValue)
	return nil
}

func check(w yui.Widget, action string) error {
	switch v := w.(type) {
	case *yui.CheckBox:
		switch action {
		case ActionToggle:
			v.UserToggle()
		default:
			v.UserSetValue(action == ActionCheck)
		}
	case *yui.CheckBoxFrame:
		on := action == ActionCheck
		if action == ActionToggle {
			on = !v.Value()
		}
		v.UserSetValue(on)
	case *yui.RadioButton:
		if action == ActionUncheck {
			return unsupported(w, action)
		}
		v.UserSelect()
		for _, s := range v.Siblings() {
			refresh(s, yui.AspectValue)
		}
	default:
		return unsupported(w, action)
	}
	refresh(w, yui.AspectValue)
	return nil
}

func selectValue(w yui.Widget, value string) error {
	switch v := w.(type) {
	case *yui.MenuBar:
		item, err := v.FindMenuItem(value)
		if err != nil {
			return err
		}
		if !v.Activate(item) {
			return yerrors.New(yerrors.ErrCodeInvalidInput, "menu item cannot be activated").WithContext("path", value)
		}
		return nil
	case *yui.DumbTab:
		it, err := v.FindItem(value)
		if err != nil {
			return err
		}
		if err := v.UserSelectTab(yui.ItemOf(it)); err != nil {
			return err
		}
	case itemSelector:
		it, err := v.FindItem(value)
		if err != nil {
			return err
		}
		if err := v.UserSelect(it, true); err != nil {
			return err
		}
	default:
		return unsupported(w, ActionSelect)
	}
	refresh(w, yui.AspectSelection)
	return nil
}

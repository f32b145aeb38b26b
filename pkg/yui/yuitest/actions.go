package yuitest

import (
	"fmt"

	"github.com/odvcencio/yui/pkg/yui"
)

// Do wraps a function as an action.
func Do(fn func(d *yui.Dialog) error) Action { return fn }

// Idle lets one pump cycle pass without user input.
func Idle() Action { return func(*yui.Dialog) error { return nil } }

// Cancel closes the window as the window manager would.
func Cancel() Action {
	return func(d *yui.Dialog) error {
		d.PostEvent(yui.NewCancelEvent())
		return nil
	}
}

// Press activates the push button with the given label.
func Press(label string) Action {
	return func(d *yui.Dialog) error {
		w, err := d.FindWidgetByLabel(label)
		if err != nil {
			return err
		}
		b, ok := w.(*yui.PushButton)
		if !ok {
			return fmt.Errorf("%q is a %s, not a push button", label, w.Kind())
		}
		b.Activate()
		return nil
	}
}

// PressDefault activates the dialog's default button, as Enter does.
func PressDefault() Action {
	return func(d *yui.Dialog) error {
		d.ActivateDefault()
		return nil
	}
}

// EnterText types text into the input field with the given label.
func EnterText(label, text string) Action {
	return func(d *yui.Dialog) error {
		w, err := d.FindWidgetByLabel(label)
		if err != nil {
			return err
		}
		switch f := w.(type) {
		case *yui.InputField:
			f.UserSetValue(text)
		case *yui.MultiLineEdit:
			f.UserSetValue(text)
		case *yui.ComboBox:
			f.UserSetValue(text)
		default:
			return fmt.Errorf("%q is a %s, not a text field", label, w.Kind())
		}
		return nil
	}
}

// Toggle clicks the check box with the given label.
func Toggle(label string) Action {
	return func(d *yui.Dialog) error {
		w, err := d.FindWidgetByLabel(label)
		if err != nil {
			return err
		}
		switch c := w.(type) {
		case *yui.CheckBox:
			c.UserToggle()
		case *yui.CheckBoxFrame:
			c.UserSetValue(!c.Value())
		case *yui.RadioButton:
			c.UserSelect()
		default:
			return fmt.Errorf("%q is a %s, not a toggle", label, w.Kind())
		}
		return nil
	}
}

// SelectItem selects the item with itemLabel in the selection widget
// labelled label. Tabs are activated instead.
func SelectItem(label, itemLabel string) Action {
	return func(d *yui.Dialog) error {
		w, err := d.FindWidgetByLabel(label)
		if err != nil {
			return err
		}
		return selectIn(w, itemLabel)
	}
}

// SelectTab activates the tab labelled itemLabel in the first tab bar.
func SelectTab(itemLabel string) Action {
	return func(d *yui.Dialog) error {
		tabs := d.FindWidgets(func(w yui.Widget) bool { return w.Kind() == yui.KindDumbTab })
		if len(tabs) == 0 {
			return fmt.Errorf("dialog has no tab bar")
		}
		return selectIn(tabs[0], itemLabel)
	}
}

func selectIn(w yui.Widget, itemLabel string) error {
	switch s := w.(type) {
	case *yui.DumbTab:
		it, err := s.FindItem(itemLabel)
		if err != nil {
			return err
		}
		return s.UserSelectTab(yui.ItemOf(it))
	case *yui.SelectionBox:
		return userSelect(&s.SelectionWidget, itemLabel)
	case *yui.ComboBox:
		return userSelect(&s.SelectionWidget, itemLabel)
	case *yui.Tree:
		return userSelect(&s.SelectionWidget, itemLabel)
	case *yui.Table:
		return userSelect(&s.SelectionWidget, itemLabel)
	default:
		return fmt.Errorf("%s has no items", w.Kind())
	}
}

func userSelect(s *yui.SelectionWidget, itemLabel string) error {
	it, err := s.FindItem(itemLabel)
	if err != nil {
		return err
	}
	return s.UserSelect(it, true)
}

// ActivateMenu activates the menu item at path ("File/Open") in the first
// menu bar.
func ActivateMenu(path string) Action {
	return func(d *yui.Dialog) error {
		bars := d.FindWidgets(func(w yui.Widget) bool { return w.Kind() == yui.KindMenuBar })
		if len(bars) == 0 {
			return fmt.Errorf("dialog has no menu bar")
		}
		bar := bars[0].(*yui.MenuBar)
		item, err := bar.FindMenuItem(path)
		if err != nil {
			return err
		}
		bar.Activate(item)
		return nil
	}
}

// SetSlider drags the slider labelled label to v and releases it.
func SetSlider(label string, v int) Action {
	return func(d *yui.Dialog) error {
		w, err := d.FindWidgetByLabel(label)
		if err != nil {
			return err
		}
		s, ok := w.(*yui.Slider)
		if !ok {
			return fmt.Errorf("%q is a %s, not a slider", label, w.Kind())
		}
		s.UserRelease(v)
		return nil
	}
}

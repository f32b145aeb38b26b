package yui

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
)

// Sentinels for errors.Is. Errors returned by this package carry the same
// codes and match these through (*errors.Error).Is.
var (
	ErrNoDialog          = yerrors.Sentinel(yerrors.ErrCodeNoDialog, "no dialog")
	ErrWidgetNotFound    = yerrors.Sentinel(yerrors.ErrCodeWidgetNotFound, "widget not found")
	ErrInvalidWidget     = yerrors.Sentinel(yerrors.ErrCodeInvalidWidget, "invalid widget")
	ErrUnsupportedWidget = yerrors.Sentinel(yerrors.ErrCodeUnsupportedWidget, "unsupported widget")
	ErrNoBackend         = yerrors.Sentinel(yerrors.ErrCodeNoBackend, "no backend")
	ErrInvalidInput      = yerrors.Sentinel(yerrors.ErrCodeInvalidInput, "invalid input")
	ErrPumpReentrant     = yerrors.Sentinel(yerrors.ErrCodePumpReentrant, "event pump reentered")
)

func invalidWidget(w Widget, msg string) error {
	err := yerrors.New(yerrors.ErrCodeInvalidWidget, msg)
	if w != nil {
		err.WithContext("widget", w.Kind().String())
	}
	return err
}

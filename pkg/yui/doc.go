// Package yui is a backend-agnostic widget toolkit.
//
// Applications build a dialog as a tree of widgets through a Factory, open
// it, and then drive it with Dialog.WaitForEvent, which returns one semantic
// event per call. The widgets are rendered by one of several interchangeable
// backends (Qt, GTK 4 or a text-mode terminal backend) chosen when the UI
// singleton is first created.
//
// All widget, dialog and pump operations must be called from the goroutine
// that owns the UI. Work originating elsewhere (for example an HTTP handler)
// is handed to that goroutine with UI.Invoke.
package yui

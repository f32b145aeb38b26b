//go:build gtk

package gtk

import (
	"path/filepath"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/odvcencio/yui/pkg/logging"
)

// desktop implements yui.DesktopServices with native file choosers.
type desktop struct {
	b *Backend
}

func (dk *desktop) parent() *gtk.Window {
	if n := len(dk.b.windows); n > 0 {
		return dk.b.windows[n-1].win
	}
	return nil
}

// choose runs a native file chooser and iterates the main context until
// the user answers.
func (dk *desktop) choose(action gtk.FileChooserAction, start, filter, headline string) string {
	fc := gtk.NewFileChooserNative(headline, dk.parent(), action, "", "")
	fc.SetModal(true)
	if start != "" {
		dir, name := start, ""
		if action != gtk.FileChooserActionSelectFolder && filepath.Ext(start) != "" {
			dir, name = filepath.Split(start)
		}
		if dir != "" {
			if err := fc.SetCurrentFolder(gio.NewFileForPath(dir)); err != nil {
				dk.b.log.Debug(logging.CategoryBackend, "chooser_folder", err.Error(), map[string]any{"dir": dir})
			}
		}
		if name != "" && action == gtk.FileChooserActionSave {
			fc.SetCurrentName(name)
		}
	}
	if filter != "" {
		ff := gtk.NewFileFilter()
		ff.SetName(filter)
		for _, pat := range strings.Fields(filter) {
			ff.AddPattern(pat)
		}
		fc.AddFilter(ff)
	}

	done, result := false, ""
	fc.ConnectResponse(func(response int) {
		if response == int(gtk.ResponseAccept) {
			if f := fc.File(); f != nil {
				result = f.Path()
			}
		}
		done = true
	})
	fc.Show()
	for !done {
		dk.b.ctx.Iteration(true)
	}
	fc.Destroy()
	return result
}

func (dk *desktop) AskForExistingDirectory(startDir, headline string) string {
	return dk.choose(gtk.FileChooserActionSelectFolder, startDir, "", headline)
}

func (dk *desktop) AskForExistingFile(startWith, filter, headline string) string {
	return dk.choose(gtk.FileChooserActionOpen, startWith, filter, headline)
}

func (dk *desktop) AskForSaveFileName(startWith, filter, headline string) string {
	return dk.choose(gtk.FileChooserActionSave, startWith, filter, headline)
}

func (dk *desktop) SetApplicationTitle(title string) {
	glib.SetApplicationName(title)
}

// SetApplicationIcon takes an icon name; GTK 4 windows have no file icons.
func (dk *desktop) SetApplicationIcon(name string) {
	gtk.WindowSetDefaultIconName(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)))
}

func (dk *desktop) ThemeIconExists(name string) bool {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return false
	}
	return gtk.IconThemeGetForDisplay(display).HasIcon(name)
}

func (dk *desktop) SetBusyCursor(busy bool) {
	cursor := ""
	if busy {
		cursor = "wait"
	}
	for _, w := range dk.b.windows {
		w.win.SetCursorFromName(cursor)
	}
}

func (dk *desktop) Beep() {
	if display := gdk.DisplayGetDefault(); display != nil {
		display.Beep()
	}
}

//go:build qt

package qt

import (
	"github.com/mappu/miqt/qt"
)

// desktop implements yui.DesktopServices with Qt's own dialogs.
type desktop struct {
	b    *Backend
	busy bool
}

func (dk *desktop) parent() *qt.QWidget {
	if n := len(dk.b.windows); n > 0 {
		return dk.b.windows[n-1].widget
	}
	return nil
}

// qtFilter turns space separated globs into a Qt name filter.
func qtFilter(filter string) string {
	if filter == "" {
		return ""
	}
	return "Files (" + filter + ")"
}

func (dk *desktop) AskForExistingDirectory(startDir, headline string) string {
	return qt.QFileDialog_GetExistingDirectory3(dk.parent(), headline, startDir)
}

func (dk *desktop) AskForExistingFile(startWith, filter, headline string) string {
	return qt.QFileDialog_GetOpenFileName4(dk.parent(), headline, startWith, qtFilter(filter))
}

func (dk *desktop) AskForSaveFileName(startWith, filter, headline string) string {
	return qt.QFileDialog_GetSaveFileName4(dk.parent(), headline, startWith, qtFilter(filter))
}

func (dk *desktop) SetApplicationTitle(title string) {
	qt.QGuiApplication_SetApplicationDisplayName(title)
}

func (dk *desktop) SetApplicationIcon(path string) {
	qt.QGuiApplication_SetWindowIcon(qt.NewQIcon4(path))
}

func (dk *desktop) ThemeIconExists(name string) bool {
	return qt.QIcon_HasThemeIcon(name)
}

func (dk *desktop) SetBusyCursor(busy bool) {
	if busy == dk.busy {
		return
	}
	dk.busy = busy
	if busy {
		qt.QGuiApplication_SetOverrideCursor(qt.NewQCursor2(qt.WaitCursor))
	} else {
		qt.QGuiApplication_RestoreOverrideCursor()
	}
}

func (dk *desktop) Beep() { qt.QApplication_Beep() }

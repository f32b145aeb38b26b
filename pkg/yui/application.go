package yui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/odvcencio/yui/pkg/config"
	"github.com/odvcencio/yui/pkg/logging"
)

// Application holds process-wide settings and desktop services: window
// title, icon, file pickers, busy cursor and the bell. Calls are forwarded
// to the backend's DesktopServices; backends without them make the calls
// no-ops and the pickers return "".
type Application struct {
	ui           *UI
	title        string
	productName  string
	iconName     string
	iconBasePath string
	resolvedIcon string
	localesDir   string
	busy         bool
}

func newApplication(ui *UI) *Application {
	a := &Application{}
	a.ui = ui
	if ui.cfg != nil {
		a.productName = ui.cfg.Application.ProductName
		a.iconBasePath = config.ExpandPath(ui.cfg.Application.IconBasePath)
		a.localesDir = config.ExpandPath(ui.cfg.Application.LocalesDir)
	}
	return a
}

func (a *Application) desktop() DesktopServices {
	if a.ui == nil || a.ui.backend == nil {
		return nil
	}
	return a.ui.backend.Desktop()
}

// Title returns the application title.
func (a *Application) Title() string { return a.title }

// SetApplicationTitle sets the title used for main windows.
func (a *Application) SetApplicationTitle(title string) {
	a.title = title
	if ds := a.desktop(); ds != nil {
		ds.SetApplicationTitle(title)
	}
}

// ProductName returns the configured product name.
func (a *Application) ProductName() string { return a.productName }

// SetProductName changes the product name.
func (a *Application) SetProductName(name string) { a.productName = name }

// IconBasePath returns the directory searched for relative icon names.
func (a *Application) IconBasePath() string { return a.iconBasePath }

// SetIconBasePath changes the icon search directory.
func (a *Application) SetIconBasePath(path string) { a.iconBasePath = config.ExpandPath(path) }

// LocalesDir returns where message catalogs are looked up, or "".
func (a *Application) LocalesDir() string { return a.localesDir }

// ApplicationIcon returns the icon as requested.
func (a *Application) ApplicationIcon() string { return a.iconName }

// ResolvedIcon returns what the icon request resolved to: a file path, a
// theme icon name, or "" when nothing matched.
func (a *Application) ResolvedIcon() string { return a.resolvedIcon }

// SetApplicationIcon resolves icon with ResolveIcon and hands the result
// to the backend. An unresolvable icon is logged and otherwise ignored.
func (a *Application) SetApplicationIcon(icon string) {
	a.iconName = icon
	a.resolvedIcon = a.ResolveIcon(icon)
	if a.resolvedIcon == "" {
		a.logger().Debug(logging.CategoryApplication, "icon_not_found", "application icon not found", map[string]any{"icon": icon})
		return
	}
	if ds := a.desktop(); ds != nil {
		ds.SetApplicationIcon(a.resolvedIcon)
	}
}

// ResolveIcon looks up an icon in this order: an existing absolute path,
// the icon base path with and without a ".png" suffix, a theme icon name,
// then a path relative to the working directory.
func (a *Application) ResolveIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return ""
	}
	if filepath.IsAbs(icon) {
		if fileExists(icon) {
			return icon
		}
		return ""
	}
	if a.iconBasePath != "" {
		p := filepath.Join(a.iconBasePath, icon)
		if fileExists(p) {
			return p
		}
		if fileExists(p + ".png") {
			return p + ".png"
		}
	}
	if ds := a.desktop(); ds != nil && ds.ThemeIconExists(icon) {
		return icon
	}
	if fileExists(icon) {
		return icon
	}
	if fileExists(icon + ".png") {
		return icon + ".png"
	}
	return ""
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// AskForExistingDirectory shows a directory picker. It returns "" when the
// user cancels or the backend has no picker.
func (a *Application) AskForExistingDirectory(startDir, headline string) string {
	if ds := a.desktop(); ds != nil {
		return ds.AskForExistingDirectory(startDir, headline)
	}
	return ""
}

// AskForExistingFile shows an open-file picker. filter is a space
// separated list of glob patterns such as "*.txt *.md".
func (a *Application) AskForExistingFile(startWith, filter, headline string) string {
	if ds := a.desktop(); ds != nil {
		return ds.AskForExistingFile(startWith, filter, headline)
	}
	return ""
}

// AskForSaveFileName shows a save-file picker.
func (a *Application) AskForSaveFileName(startWith, filter, headline string) string {
	if ds := a.desktop(); ds != nil {
		return ds.AskForSaveFileName(startWith, filter, headline)
	}
	return ""
}

// Beep rings the bell.
func (a *Application) Beep() {
	if ds := a.desktop(); ds != nil {
		ds.Beep()
	}
}

// IsBusy reports whether the busy cursor is shown.
func (a *Application) IsBusy() bool { return a.busy }

// BusyCursor shows the busy cursor.
func (a *Application) BusyCursor() { a.setBusy(true) }

// NormalCursor restores the normal cursor.
func (a *Application) NormalCursor() { a.setBusy(false) }

func (a *Application) setBusy(on bool) {
	a.busy = on
	if ds := a.desktop(); ds != nil {
		ds.SetBusyCursor(on)
	}
}

func (a *Application) logger() *logging.Logger {
	if a.ui != nil && a.ui.logger != nil {
		return a.ui.logger
	}
	return logging.Default()
}

// MatchesFileFilter reports whether name matches one of the space
// separated glob patterns in filter. An empty filter matches everything.
func MatchesFileFilter(name, filter string) bool {
	patterns := strings.Fields(filter)
	if len(patterns) == 0 {
		return true
	}
	base := filepath.Base(name)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}

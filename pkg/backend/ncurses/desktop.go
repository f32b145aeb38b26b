package ncurses

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/odvcencio/yui/pkg/logging"
	"github.com/odvcencio/yui/pkg/yui"
)

// desktop implements yui.DesktopServices in text mode. The file pickers
// are ordinary popup dialogs built from yui widgets.
type desktop struct {
	b     *Backend
	title string
	icon  string
	busy  bool
}

type pickMode int

const (
	pickDirectory pickMode = iota
	pickOpen
	pickSave
)

func (dk *desktop) AskForExistingDirectory(startDir, headline string) string {
	return dk.pick(pickDirectory, startDir, "", headline)
}

func (dk *desktop) AskForExistingFile(startWith, filter, headline string) string {
	return dk.pick(pickOpen, startWith, filter, headline)
}

func (dk *desktop) AskForSaveFileName(startWith, filter, headline string) string {
	return dk.pick(pickSave, startWith, filter, headline)
}

// SetApplicationTitle is shown in the frame of untitled main dialogs.
func (dk *desktop) SetApplicationTitle(title string) {
	dk.title = title
	dk.b.invalidate()
}

func (dk *desktop) SetApplicationIcon(path string) { dk.icon = path }

// ThemeIconExists is false: a terminal has no icon theme.
func (dk *desktop) ThemeIconExists(string) bool { return false }

func (dk *desktop) SetBusyCursor(busy bool) {
	dk.busy = busy
	dk.b.invalidate()
}

func (dk *desktop) Beep() { dk.b.term.Beep() }

// picker is the widget set of one file dialog.
type picker struct {
	mode   pickMode
	filter string
	dir    string
	d      *yui.Dialog
	path   *yui.InputField
	list   *yui.SelectionBox
	ok     *yui.PushButton
	cancel *yui.PushButton
}

// startPoint splits start into the directory to list and a proposed name.
func startPoint(mode pickMode, start string) (dir, name string) {
	if start == "" {
		start, _ = os.Getwd()
	}
	start = filepath.Clean(start)
	if st, err := os.Stat(start); err == nil && st.IsDir() {
		return start, ""
	}
	if mode == pickDirectory {
		return filepath.Dir(start), ""
	}
	return filepath.Dir(start), filepath.Base(start)
}

func (dk *desktop) pick(mode pickMode, start, filter, headline string) string {
	pk, err := dk.build(mode, filter, headline)
	if err != nil {
		dk.b.log.Error(logging.CategoryApplication, "file_dialog", "cannot build file dialog", map[string]any{
			"error": err.Error(),
		})
		return ""
	}
	defer func() { _ = pk.d.Destroy() }()

	dir, name := startPoint(mode, start)
	pk.chdir(dir)
	if name != "" {
		pk.path.SetValue(filepath.Join(dir, name))
	}
	if err := pk.d.Open(); err != nil {
		return ""
	}
	for {
		ev, err := pk.d.WaitForEvent(0)
		if err != nil || ev == nil {
			return ""
		}
		if result, done := pk.handle(ev); done {
			return result
		}
	}
}

func (dk *desktop) build(mode pickMode, filter, headline string) (*picker, error) {
	f := dk.b.ui.Factory()
	pk := &picker{mode: mode, filter: filter}
	var err error
	if pk.d, err = f.CreatePopupDialog(yui.ColorNormal); err != nil {
		return nil, err
	}
	pk.d.SetTitle(headline)
	vbox, err := f.CreateVBox(pk.d)
	if err != nil {
		return nil, err
	}
	if pk.path, err = f.CreateInputField(vbox, "&Path"); err != nil {
		return nil, err
	}
	if pk.list, err = f.CreateSelectionBox(vbox, "&Entries"); err != nil {
		return nil, err
	}
	pk.list.SetNotify(true)
	pk.list.SetStretchable(yui.Horizontal, true)
	pk.list.SetStretchable(yui.Vertical, true)
	buttons, err := f.CreateHBox(vbox)
	if err != nil {
		return nil, err
	}
	if pk.ok, err = f.CreatePushButton(buttons, "&OK"); err != nil {
		return nil, err
	}
	if pk.cancel, err = f.CreatePushButton(buttons, "&Cancel"); err != nil {
		return nil, err
	}
	pk.ok.SetRole(yui.RoleOK)
	pk.cancel.SetRole(yui.RoleCancel)
	if err := pk.d.SetDefaultButton(pk.ok); err != nil {
		return nil, err
	}
	return pk, nil
}

// chdir lists dir: a parent entry, then directories, then matching files.
func (pk *picker) chdir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	pk.dir = dir
	pk.list.DeleteAllItems()
	var items []yui.SelectionItem
	if parent := filepath.Dir(dir); parent != dir {
		it := yui.NewItem("../")
		it.SetData(parent)
		items = append(items, it)
	}
	var dirs, files []os.DirEntry
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		switch {
		case e.IsDir():
			dirs = append(dirs, e)
		case pk.mode != pickDirectory && yui.MatchesFileFilter(e.Name(), pk.filter):
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name() < dirs[j].Name() })
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	for _, e := range append(dirs, files...) {
		label := e.Name()
		if e.IsDir() {
			label += "/"
		}
		it := yui.NewItem(label)
		it.SetData(filepath.Join(dir, e.Name()))
		items = append(items, it)
	}
	_ = pk.list.AddItems(items...)
	if pk.mode == pickDirectory {
		pk.path.SetValue(dir)
	}
}

// handle reacts to one dialog event. done is set once the dialog has an
// answer; an empty result means cancelled.
func (pk *picker) handle(ev *yui.Event) (result string, done bool) {
	switch {
	case ev.Type == yui.CancelEvent || ev.IsActivation(pk.cancel):
		return "", true
	case ev.Widget == pk.list && ev.Item != nil:
		target, _ := yui.ItemOf(ev.Item).Data().(string)
		st, err := os.Stat(target)
		if err != nil {
			return "", false
		}
		if ev.Reason == yui.Activated && st.IsDir() {
			pk.chdir(target)
			return "", false
		}
		if st.IsDir() && pk.mode != pickDirectory {
			return "", false
		}
		pk.path.SetValue(target)
		if ev.Reason == yui.Activated && pk.mode == pickOpen {
			return target, true
		}
	case ev.IsActivation(pk.ok):
		return pk.accept()
	}
	return "", false
}

func (pk *picker) accept() (string, bool) {
	value := strings.TrimSpace(pk.path.Value())
	if value == "" {
		return "", false
	}
	if !filepath.IsAbs(value) {
		value = filepath.Join(pk.dir, value)
	}
	st, err := os.Stat(value)
	switch pk.mode {
	case pickDirectory:
		if err == nil && st.IsDir() {
			return value, true
		}
	case pickOpen:
		if err == nil && st.IsDir() {
			pk.chdir(value)
			return "", false
		}
		if err == nil {
			return value, true
		}
	case pickSave:
		if err == nil && st.IsDir() {
			pk.chdir(value)
			return "", false
		}
		if parent, perr := os.Stat(filepath.Dir(value)); perr == nil && parent.IsDir() {
			return value, true
		}
	}
	pk.d.UI().Application().Beep()
	return "", false
}

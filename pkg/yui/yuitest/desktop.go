package yuitest

// Desktop is a scripted yui.DesktopServices. Pickers return the canned
// answers; everything else is recorded.
type Desktop struct {
	Directory  string
	File       string
	SaveName   string
	ThemeIcons map[string]bool

	Title string
	Icon  string
	Busy  bool
	Beeps int
	Asked []string
}

func (d *Desktop) AskForExistingDirectory(startDir, headline string) string {
	d.Asked = append(d.Asked, "directory:"+headline)
	return d.Directory
}

func (d *Desktop) AskForExistingFile(startWith, filter, headline string) string {
	d.Asked = append(d.Asked, "file:"+headline)
	return d.File
}

func (d *Desktop) AskForSaveFileName(startWith, filter, headline string) string {
	d.Asked = append(d.Asked, "save:"+headline)
	return d.SaveName
}

func (d *Desktop) SetApplicationTitle(title string) { d.Title = title }

func (d *Desktop) SetApplicationIcon(path string) { d.Icon = path }

func (d *Desktop) ThemeIconExists(name string) bool { return d.ThemeIcons[name] }

func (d *Desktop) SetBusyCursor(busy bool) { d.Busy = busy }

func (d *Desktop) Beep() { d.Beeps++ }

package yui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/odvcencio/yui/pkg/yui"
	"github.com/odvcencio/yui/pkg/yui/yuitest"
)

func TestApplicationFilePickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	ds := NewMockDesktopServices(ctrl)
	ui, _ := yuitest.Install(t, yuitest.WithDesktop(ds))
	app := ui.Application()

	ds.EXPECT().AskForExistingDirectory("/tmp", "Pick a directory").Return("/tmp/data")
	ds.EXPECT().AskForExistingFile("/etc", "*.conf *.cfg", "Open").Return("")
	ds.EXPECT().AskForSaveFileName("/home", "*.txt", "Save as").Return("/home/notes.txt")

	assert.Equal(t, "/tmp/data", app.AskForExistingDirectory("/tmp", "Pick a directory"))
	assert.Empty(t, app.AskForExistingFile("/etc", "*.conf *.cfg", "Open"), "cancelled")
	assert.Equal(t, "/home/notes.txt", app.AskForSaveFileName("/home", "*.txt", "Save as"))
}

func TestApplicationTitleAndCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ds := NewMockDesktopServices(ctrl)
	ui, _ := yuitest.Install(t, yuitest.WithDesktop(ds))
	app := ui.Application()

	gomock.InOrder(
		ds.EXPECT().SetApplicationTitle("Service Manager"),
		ds.EXPECT().SetBusyCursor(true),
		ds.EXPECT().SetBusyCursor(false),
		ds.EXPECT().Beep(),
	)

	app.SetApplicationTitle("Service Manager")
	assert.Equal(t, "Service Manager", app.Title())
	app.BusyCursor()
	assert.True(t, app.IsBusy())
	app.NormalCursor()
	assert.False(t, app.IsBusy())
	app.Beep()
}

func TestApplicationIconResolution(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.svg"), []byte("svg"), 0o644))

	ctrl := gomock.NewController(t)
	ds := NewMockDesktopServices(ctrl)
	ui, _ := yuitest.Install(t, yuitest.WithDesktop(ds))
	app := ui.Application()
	app.SetIconBasePath(dir)

	ds.EXPECT().SetApplicationIcon(filepath.Join(dir, "logo.png"))
	app.SetApplicationIcon("logo")
	assert.Equal(t, "logo", app.ApplicationIcon())
	assert.Equal(t, filepath.Join(dir, "logo.png"), app.ResolvedIcon())

	assert.Equal(t, filepath.Join(dir, "plain.svg"), app.ResolveIcon("plain.svg"))

	ds.EXPECT().ThemeIconExists("yast-control-center").Return(true)
	assert.Equal(t, "yast-control-center", app.ResolveIcon("yast-control-center"))

	abs := filepath.Join(dir, "logo.png")
	assert.Equal(t, abs, app.ResolveIcon(abs))

	ds.EXPECT().ThemeIconExists("missing-icon").Return(false)
	app.SetApplicationIcon("missing-icon")
	assert.Empty(t, app.ResolvedIcon(), "missing icons resolve to no icon")
}

func TestHeadlessDesktopRecordsCalls(t *testing.T) {
	ui, be := yuitest.Install(t)
	desk := be.Desktop().(*yuitest.Desktop)
	desk.File = "/srv/app.log"

	app := ui.Application()
	assert.Equal(t, "/srv/app.log", app.AskForExistingFile("/srv", "*.log", "Open log"))
	app.SetApplicationTitle("Demo")
	app.Beep()
	assert.Equal(t, "Demo", desk.Title)
	assert.Equal(t, 1, desk.Beeps)
	assert.Equal(t, []string{"file:Open log"}, desk.Asked)
}

func TestMatchesFileFilter(t *testing.T) {
	assert.True(t, yui.MatchesFileFilter("/a/b.txt", "*.txt *.md"))
	assert.True(t, yui.MatchesFileFilter("README.md", "*.txt *.md"))
	assert.False(t, yui.MatchesFileFilter("image.png", "*.txt *.md"))
	assert.True(t, yui.MatchesFileFilter("anything", ""))
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/odvcencio/yui/pkg/yui"
)

type scenario func(ctx context.Context, ui *yui.UI) error

var scenarios = map[string]scenario{
	"hello":    helloScenario,
	"widgets":  widgetsScenario,
	"tabs":     tabsScenario,
	"progress": progressScenario,
	"tree":     treeScenario,
	"menu":     menuScenario,
}

// mainDialog creates a main dialog holding a vertical box.
func mainDialog(ui *yui.UI, title string) (*yui.Dialog, *yui.Box, error) {
	f := ui.Factory()
	d, err := f.CreateMainDialog()
	if err != nil {
		return nil, nil, err
	}
	d.SetTitle(title)
	vbox, err := f.CreateVBox(d)
	if err != nil {
		_ = d.Destroy()
		return nil, nil, err
	}
	return d, vbox, nil
}

// closeButton appends a right-aligned default button.
func closeButton(ui *yui.UI, d *yui.Dialog, parent yui.Widget, label string) (*yui.PushButton, error) {
	right, err := ui.Factory().CreateRight(parent)
	if err != nil {
		return nil, err
	}
	b, err := ui.Factory().CreatePushButton(right, label)
	if err != nil {
		return nil, err
	}
	return b, d.SetDefaultButton(b)
}

func helloScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Hello")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	if _, err := f.CreateHeading(vbox, "Hello, World!"); err != nil {
		return err
	}
	if dir := ui.Application().LocalesDir(); dir != "" {
		if _, err := f.CreateLabel(vbox, "Locales: "+dir); err != nil {
			return err
		}
	}
	ok, err := closeButton(ui, d, vbox, "&OK")
	if err != nil {
		return err
	}

	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		if ev.Type == yui.CancelEvent || ev.IsActivation(ok) {
			return nil
		}
	}
}

func widgetsScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Widgets")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	name, err := f.CreateInputField(vbox, "&Name")
	if err != nil {
		return err
	}
	age, err := f.CreateIntField(vbox, "&Age", 0, 150, 30)
	if err != nil {
		return err
	}
	frame, err := f.CreateFrame(vbox, "Size")
	if err != nil {
		return err
	}
	sizes, err := f.CreateHBox(frame)
	if err != nil {
		return err
	}
	var radios []*yui.RadioButton
	for i, label := range []string{"&Small", "&Medium", "&Large"} {
		rb, err := f.CreateRadioButton(sizes, label, i == 1)
		if err != nil {
			return err
		}
		radios = append(radios, rb)
	}
	color, err := f.CreateComboBox(vbox, "&Color", false)
	if err != nil {
		return err
	}
	if err := color.AddItems(yui.NewItem("Red"), yui.NewItem("Green"), yui.NewItem("Blue")); err != nil {
		return err
	}
	volume, err := f.CreateSlider(vbox, "&Volume", 0, 10, 5)
	if err != nil {
		return err
	}
	when, err := f.CreateHBox(vbox)
	if err != nil {
		return err
	}
	date, err := f.CreateDateField(when, "&Date")
	if err != nil {
		return err
	}
	clock, err := f.CreateTimeField(when, "&Time")
	if err != nil {
		return err
	}
	subscribe, err := f.CreateCheckBox(vbox, "S&ubscribe", false)
	if err != nil {
		return err
	}
	if _, err := f.CreateRichText(vbox, "Press **Apply** to see the values. [Pick a file](open)", false); err != nil {
		return err
	}
	summary, err := f.CreateOutputField(vbox, "")
	if err != nil {
		return err
	}
	buttons, err := f.CreateHBox(vbox)
	if err != nil {
		return err
	}
	apply, err := f.CreatePushButton(buttons, "&Apply")
	if err != nil {
		return err
	}
	quit, err := f.CreatePushButton(buttons, "&Quit")
	if err != nil {
		return err
	}
	name.SetNotify(true)

	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		switch {
		case ev.Type == yui.CancelEvent, ev.IsActivation(quit):
			return nil
		case ev.IsActivation(apply):
			size := ""
			for _, rb := range radios {
				if rb.Value() {
					size = yui.NormalizeLabel(rb.Label())
				}
			}
			summary.SetValue(fmt.Sprintf("%s, %d, %s, %s, volume %d, %s %s, subscribed=%t",
				name.Value(), age.Value(), size, color.Value(), volume.Value(), date.Value(), clock.Value(), subscribe.Value()))
		case ev.Type == yui.WidgetEvent && ev.Widget == name:
			d.SetTitle("Widgets: " + name.Value())
		case ev.Type == yui.MenuEvent && ev.ID == "open":
			if path := ui.Application().AskForExistingFile("", "*.txt *.md", "Pick a file"); path != "" {
				summary.SetValue(path)
			}
		}
	}
}

func tabsScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Tabs")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	tab, err := f.CreateDumbTab(vbox)
	if err != nil {
		return err
	}
	pages := map[string]string{
		"Overview": "Tabs swap the content below.",
		"Notes":    "Content is rebuilt on every switch.",
		"About":    "yui-demo " + version,
	}
	first := yui.NewItem("Overview")
	if err := tab.AddItems(first, yui.NewItem("Notes"), yui.NewItem("About")); err != nil {
		return err
	}
	if err := tab.SelectItem(first, true); err != nil {
		return err
	}
	rp, err := f.CreateReplacePoint(tab)
	if err != nil {
		return err
	}
	if _, err := f.CreateLabel(rp, pages["Overview"]); err != nil {
		return err
	}
	done, err := closeButton(ui, d, vbox, "&Close")
	if err != nil {
		return err
	}

	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		switch {
		case ev.Type == yui.CancelEvent, ev.IsActivation(done):
			return nil
		case ev.Type == yui.WidgetEvent && ev.Widget == tab && ev.Item != nil:
			rp.DeleteChildren()
			if _, err := f.CreateLabel(rp, pages[yui.ItemOf(ev.Item).Label()]); err != nil {
				return err
			}
			rp.ShowChild()
		}
	}
}

func progressScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Progress")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	bar, err := f.CreateProgressBar(vbox, "Working", 100)
	if err != nil {
		return err
	}
	log, err := f.CreateLogView(vbox, "Log", 5, 100)
	if err != nil {
		return err
	}
	cancel, err := closeButton(ui, d, vbox, "&Cancel")
	if err != nil {
		return err
	}

	app := ui.Application()
	app.BusyCursor()
	defer app.NormalCursor()
	for bar.Value() < 100 {
		ev, err := d.WaitForEventContext(ctx, 100)
		if err != nil {
			return err
		}
		switch {
		case ev.Type == yui.CancelEvent, ev.IsActivation(cancel):
			return nil
		case ev.Type == yui.TimeoutEvent:
			bar.SetValue(bar.Value() + 5)
			log.AppendLines(fmt.Sprintf("step %d done", bar.Value()/5))
		}
	}
	app.NormalCursor()
	bar.SetLabel("Done")
	cancel.SetLabel("&Close")
	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		if ev.Type == yui.CancelEvent || ev.IsActivation(cancel) {
			return nil
		}
	}
}

func treeScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Tree")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	split, err := f.CreatePaned(vbox, yui.Horizontal)
	if err != nil {
		return err
	}
	tree, err := f.CreateTree(split, "&Files", false, false)
	if err != nil {
		return err
	}
	root := yui.NewTreeItem(nil, "/", true)
	etc := yui.NewTreeItem(root, "etc", true)
	yui.NewTreeItem(etc, "hosts", false)
	yui.NewTreeItem(etc, "fstab", false)
	home := yui.NewTreeItem(root, "home", false)
	yui.NewTreeItem(home, "user", false)
	if err := tree.AddItem(root); err != nil {
		return err
	}
	tree.SetNotify(true)

	table, err := f.CreateTable(split, yui.NewTableHeader("Property", "Value"), false)
	if err != nil {
		return err
	}
	path, err := f.CreateOutputField(vbox, "")
	if err != nil {
		return err
	}
	done, err := closeButton(ui, d, vbox, "&Close")
	if err != nil {
		return err
	}

	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		switch {
		case ev.Type == yui.CancelEvent, ev.IsActivation(done):
			return nil
		case ev.Type == yui.WidgetEvent && ev.Widget == tree:
			n := tree.SelectedTreeItem()
			if n == nil {
				continue
			}
			path.SetValue(treePath(n))
			table.DeleteAllItems()
			if err := table.AddItems(
				yui.NewTableItem("name", n.Label()),
				yui.NewTableItem("children", fmt.Sprint(len(n.Children()))),
				yui.NewTableItem("open", fmt.Sprint(n.IsOpen())),
			); err != nil {
				return err
			}
		}
	}
}

func treePath(n *yui.TreeItem) string {
	var parts []string
	for ; n != nil; n = n.Parent() {
		if n.Label() != "/" {
			parts = append([]string{n.Label()}, parts...)
		}
	}
	return "/" + strings.Join(parts, "/")
}

func menuScenario(ctx context.Context, ui *yui.UI) error {
	d, vbox, err := mainDialog(ui, "Menu")
	if err != nil {
		return err
	}
	defer d.Destroy()

	f := ui.Factory()
	bar, err := f.CreateMenuBar(vbox)
	if err != nil {
		return err
	}
	file := bar.AddMenu("File")
	open := file.AddItem("Open")
	file.AddSeparator()
	quit := file.AddItem("Quit")
	view := bar.AddMenu("View")
	wrap := view.AddCheckItem("Wrap lines", true)
	help := bar.AddMenu("Help")
	about := help.AddItem("About")
	bar.RebuildMenus()

	status, err := f.CreateOutputField(vbox, "Pick a menu entry")
	if err != nil {
		return err
	}

	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		if ev.Type == yui.CancelEvent {
			return nil
		}
		if ev.Type != yui.MenuEvent {
			continue
		}
		switch ev.MenuItem {
		case quit:
			return nil
		case open:
			if p := ui.Application().AskForExistingFile("", "", "Open"); p != "" {
				status.SetValue("Opened " + p)
			} else {
				status.SetValue("Open cancelled")
			}
		case wrap:
			status.SetValue(fmt.Sprintf("Wrap lines: %t", wrap.Checked()))
		case about:
			if err := aboutPopup(ctx, ui); err != nil {
				return err
			}
		default:
			status.SetValue(ev.ID)
		}
	}
}

func aboutPopup(ctx context.Context, ui *yui.UI) error {
	f := ui.Factory()
	d, err := f.CreatePopupDialog(yui.ColorNormal)
	if err != nil {
		return err
	}
	defer d.Destroy()
	d.SetTitle("About")
	vbox, err := f.CreateVBox(d)
	if err != nil {
		return err
	}
	if _, err := f.CreateLabel(vbox, fmt.Sprintf("yui-demo %s\ncommit %s", version, commit)); err != nil {
		return err
	}
	ok, err := closeButton(ui, d, vbox, "&OK")
	if err != nil {
		return err
	}
	for {
		ev, err := d.WaitForEventContext(ctx, 0)
		if err != nil {
			return err
		}
		if ev.Type == yui.CancelEvent || ev.IsActivation(ok) {
			return nil
		}
	}
}

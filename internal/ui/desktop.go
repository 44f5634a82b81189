package ui

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Credentials reads and stores the passwords used for remote imports.
type Credentials interface {
	Password(user string) (string, error)
	SetPassword(user, pass string) error
}

// Desktop is the Fyne front end: both lists as sortable tables above a
// command box. Menus and dialogs build command lines and run them through
// Exec, so every action is one the shells accept too.
type Desktop struct {
	App    fyne.App
	Window fyne.Window
	Exec   *command.Executor
	Render *Renderer
	Ctx    context.Context

	// Settings is what the settings window edits; SettingsPath is where it
	// is saved. An empty path keeps changes in memory.
	Settings     config.Settings
	SettingsPath string
	Credentials  Credentials

	// OnSettingsSaved applies saved settings outside the window, such as
	// the reminder of exported events.
	OnSettingsSaved func(config.Settings)

	input    *CommandEntry
	status   *widget.Label
	history  *widget.Label
	contacts *listView
	events   *listView
	collator *collate.Collator

	undoItem *fyne.MenuItem
	redoItem *fyne.MenuItem

	settingsWindow fyne.Window
	busy           bool
}

// NewDesktop builds the main window. Call Run to show it.
func NewDesktop(ctx context.Context, a fyne.App, exec *command.Executor, render *Renderer) *Desktop {
	d := &Desktop{
		App:    a,
		Exec:   exec,
		Render: render,
		Ctx:    ctx,
	}

	d.Window = a.NewWindow(render.T.Msg(config.TKeyWinMain, nil))
	d.Window.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))
	d.Window.SetMaster()

	d.contacts = newListView(config.FieldContacts, d.compareCells)
	d.events = newListView(config.FieldEvents, d.compareCells)

	d.input = NewCommandEntry()
	d.input.OnSubmitted = d.submit
	d.status = widget.NewLabel("")
	d.status.Wrapping = fyne.TextWrapWord
	d.history = widget.NewLabel("")

	// Layout Assembly
	split := container.NewHSplit(d.contacts.content(), d.events.content())
	split.Offset = config.ListSplitOffset
	footer := container.NewVBox(
		d.status,
		container.NewBorder(nil, nil, nil, d.history, d.input),
	)
	d.Window.SetContent(container.NewBorder(nil, footer, nil, nil, split))
	d.Window.Canvas().Focus(d.input)

	d.relabel()
	d.refresh()
	return d
}

// Run shows the window and blocks until it is closed, exit is run or Ctx
// is cancelled.
func (d *Desktop) Run() {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-d.Ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			fyne.Do(d.App.Quit)
		case <-done:
		}
	}()

	slog.Info(config.MsgOpenWindow,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, config.TKeyWinMain)
	d.Window.ShowAndRun()
}

// submit runs the line typed in the command box.
func (d *Desktop) submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" || d.busy {
		return
	}
	d.input.SetText("")
	d.input.Remember(line)
	d.run(line)
}

// run executes one command line on the UI goroutine.
func (d *Desktop) run(line string) {
	if d.busy {
		return
	}
	res, err := d.Exec.Execute(d.Ctx, line)
	d.show(res, err)
}

// runBackground executes line off the UI goroutine, for remote imports.
// Commands are refused until it finishes; the tables only read their own
// row copies, so redrawing them meanwhile is safe.
func (d *Desktop) runBackground(line string) {
	if d.busy {
		return
	}
	d.setBusy(true)
	go func() {
		res, err := d.Exec.Execute(d.Ctx, line)
		fyne.Do(func() {
			d.setBusy(false)
			d.show(res, err)
		})
	}()
}

func (d *Desktop) setBusy(busy bool) {
	d.busy = busy
	if busy {
		d.input.Disable()
	} else {
		d.input.Enable()
	}
}

// show reports the outcome of a command and redraws the lists.
func (d *Desktop) show(res command.Result, err error) {
	if err != nil {
		d.status.Importance = widget.DangerImportance
		d.status.SetText(d.Render.FailureText(err))
		return
	}
	d.status.Importance = widget.MediumImportance
	d.status.SetText(d.Render.T.Localize(res.Message))
	d.refresh()

	if res.Exit {
		d.App.Quit()
	}
}

// refresh redraws everything that depends on the model. It waits for a
// background command to finish.
func (d *Desktop) refresh() {
	if d.busy {
		return
	}
	m := d.Exec.Model()
	d.contacts.update(d.Render.ContactGrid(m))
	d.events.update(d.Render.EventGrid(m))

	st := m.HistoryStatus()
	d.history.SetText(d.Render.T.Msg(config.TKeyLblHistory, map[string]any{"Undo": st.UndoSteps, "Redo": st.RedoSteps}))

	d.undoItem.Disabled = !m.IsUndoable()
	d.redoItem.Disabled = !m.IsRedoable()
	if menu := d.Window.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

// relabel applies the active language to the window chrome.
func (d *Desktop) relabel() {
	t := d.Render.T
	d.collator = collate.New(language.Make(t.Language()), collate.IgnoreCase)
	d.Window.SetTitle(t.Msg(config.TKeyWinMain, nil))
	d.input.SetPlaceHolder(t.Msg(config.TKeyLblPrompt, nil))
	d.Window.SetMainMenu(d.buildMenu())
}

func (d *Desktop) compareCells(a, b string) int {
	return d.collator.CompareString(a, b)
}

// buildMenu constructs the main menu. Every item runs a command line.
func (d *Desktop) buildMenu() *fyne.MainMenu {
	msg := func(id string) string { return d.Render.T.Msg(id, nil) }
	item := func(id, line string) *fyne.MenuItem {
		return fyne.NewMenuItem(msg(id), func() { d.run(line) })
	}

	d.undoItem = item(config.TKeyMenuUndo, config.CmdUndo)
	d.redoItem = item(config.TKeyMenuRedo, config.CmdRedo)

	quit := item(config.TKeyMenuQuit, config.CmdExit)
	quit.IsQuit = true

	file := fyne.NewMenu(msg(config.TKeyMenuFile),
		fyne.NewMenuItem(msg(config.TKeyMenuImport), d.showImportFile),
		fyne.NewMenuItem(msg(config.TKeyMenuImportURL), d.showImportURL),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(msg(config.TKeyMenuExportContacts), func() {
			d.showExport(config.TargetContacts, config.ExportContactsName, config.ExtVCF)
		}),
		fyne.NewMenuItem(msg(config.TKeyMenuExportEvents), func() {
			d.showExport(config.TargetEvents, config.ExportEventsName, config.ExtICS)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(msg(config.TKeyMenuSettings), d.ShowSettingsWindow),
		fyne.NewMenuItemSeparator(),
		quit,
	)
	edit := fyne.NewMenu(msg(config.TKeyMenuEdit),
		d.undoItem,
		d.redoItem,
		fyne.NewMenuItemSeparator(),
		item(config.TKeyMenuClearHistory, config.CmdHistory+" "+config.SubClear),
	)
	view := fyne.NewMenu(msg(config.TKeyMenuView),
		item(config.TKeyMenuListAll, config.CmdList),
		item(config.TKeyMenuSortContacts, config.CmdSort+" "+config.TargetContact),
		item(config.TKeyMenuSortEvents, config.CmdSort+" "+config.TargetEvent),
	)
	help := fyne.NewMenu(msg(config.TKeyMenuHelp),
		item(config.TKeyMenuCommands, config.CmdHelp),
	)
	return fyne.NewMainMenu(file, edit, view, help)
}

// --- Dialogs ---

func (d *Desktop) showImportFile() {
	fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.Window)
			return
		}
		if r == nil {
			return // Cancelled
		}
		path := r.URI().Path()
		_ = r.Close()
		d.run(importLine(path, ""))
	}, d.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	fd.Show()
}

func (d *Desktop) showImportURL() {
	msg := func(id string) string { return d.Render.T.Msg(id, nil) }

	urlEntry := widget.NewEntry()
	urlEntry.PlaceHolder = config.PlaceholderURL
	urlEntry.Validator = func(s string) error {
		if !isRemoteURL(s) {
			return errors.New(msg(config.TKeyErrURL))
		}
		return nil
	}
	userEntry := widget.NewEntry()
	userEntry.SetText(d.Settings.ImportUser)

	dialog.ShowForm(msg(config.TKeyWinImportURL), msg(config.TKeyBtnImport), msg(config.TKeyBtnCancel),
		[]*widget.FormItem{
			widget.NewFormItem(msg(config.TKeyLblURL), urlEntry),
			widget.NewFormItem(msg(config.TKeyLblUser), userEntry),
		},
		func(ok bool) {
			if ok {
				d.runBackground(importLine(strings.TrimSpace(urlEntry.Text), strings.TrimSpace(userEntry.Text)))
			}
		}, d.Window)
}

func (d *Desktop) showExport(target, fileName, ext string) {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.Window)
			return
		}
		if w == nil {
			return // Cancelled
		}
		path := w.URI().Path()
		_ = w.Close()
		d.run(config.CmdExport + " " + target + " " + path)
	}, d.Window)
	fd.SetFileName(fileName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	fd.Show()
}

// importLine builds the import command for source, naming user when set.
func importLine(source, user string) string {
	line := config.CmdImport + " " + source
	if user != "" {
		line += " " + config.PrefixUser + user
	}
	return line
}

func isRemoteURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == config.SchemeHTTP || u.Scheme == config.SchemeHTTPS
}

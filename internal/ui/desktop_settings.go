package ui

import (
	"errors"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect    *widget.Select
	portEntry     *NumericalEntry
	reminderEntry *widget.Entry
	dataEntry     *widget.Entry
	userEntry     *widget.Entry
	passEntry     *widget.Entry
}

// ShowSettingsWindow displays the settings editor.
// If the window is already open, it requests focus.
func (d *Desktop) ShowSettingsWindow() {
	if d.settingsWindow != nil {
		d.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenWindow,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, config.TKeyWinSettings)

	msg := func(id string) string { return d.Render.T.Msg(id, nil) }
	w := d.App.NewWindow(msg(config.TKeyWinSettings))
	d.settingsWindow = w

	sw := d.newSettingsWidgets()

	// --- 1. General Section ---
	itemLang := widget.NewFormItem(msg(config.TKeyLblLanguage), sw.langSelect)

	itemPort := widget.NewFormItem(msg(config.TKeyLblPort), sw.portEntry)
	itemPort.HintText = msg(config.TKeyHelpPort)

	itemReminder := widget.NewFormItem(msg(config.TKeyLblReminder), sw.reminderEntry)
	itemReminder.HintText = msg(config.TKeyHelpReminder)

	generalCard := widget.NewCard(msg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemPort, itemReminder))

	// --- 2. Storage Section ---
	browseBtn := widget.NewButton(msg(config.TKeyBtnBrowse), func() {
		fd := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err == nil && r != nil {
				sw.dataEntry.SetText(r.URI().Path())
				_ = r.Close()
			}
		}, w)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtJSON}))
		fd.Show()
	})
	itemData := widget.NewFormItem(msg(config.TKeyLblDataFile), container.NewBorder(nil, nil, nil, browseBtn, sw.dataEntry))
	itemData.HintText = msg(config.TKeyHelpDataFile)

	storageCard := widget.NewCard(msg(config.TKeyLblStorage), "", widget.NewForm(itemData))

	// --- 3. Remote Import Section ---
	itemUser := widget.NewFormItem(msg(config.TKeyLblUser), sw.userEntry)
	itemPass := widget.NewFormItem(msg(config.TKeyLblPass), sw.passEntry)
	itemPass.HintText = msg(config.TKeyHelpPass)

	remoteCard := widget.NewCard(msg(config.TKeyLblRemote), "", widget.NewForm(itemUser, itemPass))

	// --- Actions ---
	saveAction := func() {
		if err := d.saveSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(msg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(msg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(d.Render.T.Msg(config.TKeyLblFooter, map[string]any{"Version": config.Version}))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	// Assembly
	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		storageCard,
		remoteCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWinWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { d.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the editable fields, filled from d.Settings.
func (d *Desktop) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	lang, err := config.MatchLanguage(d.Settings.Language)
	if err != nil {
		lang = config.DefaultLanguage
	}
	sw.langSelect = widget.NewSelect(config.SupportedLanguages, nil)
	sw.langSelect.SetSelected(lang)

	// Port: digits only, and a strict range. Empty disables the feed.
	sw.portEntry = NewNumericalEntry(config.PortDigitsMax)
	sw.portEntry.SetText(d.Settings.ServerPort)
	sw.portEntry.Validator = d.validatePort

	sw.reminderEntry = widget.NewEntry()
	sw.reminderEntry.PlaceHolder = config.PlaceholderReminder
	sw.reminderEntry.SetText(d.Settings.Reminder)
	sw.reminderEntry.Validator = d.validateReminder

	sw.dataEntry = widget.NewEntry()
	sw.dataEntry.SetText(d.Settings.DataFile)

	sw.userEntry = widget.NewEntry()
	sw.userEntry.SetText(d.Settings.ImportUser)

	sw.passEntry = widget.NewPasswordEntry()
	// Attempt to pre-fill password from secure storage
	if user := d.Settings.ImportUser; user != "" && d.Credentials != nil {
		if pass, err := d.Credentials.Password(user); err == nil {
			sw.passEntry.SetText(pass)
		}
	}
	return sw
}

// saveSettings validates the fields, writes the settings file and applies
// the new settings. Nothing is changed when it returns an error.
func (d *Desktop) saveSettings(sw *settingsWidgets) error {
	if err := sw.portEntry.Validate(); err != nil {
		return err
	}
	if err := sw.reminderEntry.Validate(); err != nil {
		return err
	}

	s := d.Settings
	s.Language = sw.langSelect.Selected
	s.ServerPort = strings.TrimSpace(sw.portEntry.Text)
	s.Reminder = strings.TrimSpace(sw.reminderEntry.Text)
	s.DataFile = strings.TrimSpace(sw.dataEntry.Text)
	s.ImportUser = strings.TrimSpace(sw.userEntry.Text)
	if err := s.Validate(); err != nil {
		return err
	}

	if d.SettingsPath != "" {
		if err := s.Save(d.SettingsPath); err != nil {
			return err
		}
	}

	// Save password to the keyring only if provided
	if s.ImportUser != "" && sw.passEntry.Text != "" && d.Credentials != nil {
		if err := d.Credentials.SetPassword(s.ImportUser, sw.passEntry.Text); err != nil {
			slog.Error(config.MsgCredSaveFail,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
		}
	}

	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyPath, d.SettingsPath,
		config.LogKeyLang, s.Language)

	d.Settings = s
	d.Render.T.SetLanguage(s.Language)
	if d.OnSettingsSaved != nil {
		d.OnSettingsSaved(s)
	}

	// Trigger window-wide updates
	d.relabel()
	d.refresh()
	d.status.Importance = widget.MediumImportance
	d.status.SetText(d.Render.T.Msg(config.TKeySettingsSaved, nil))
	return nil
}

func (d *Desktop) validatePort(s string) error {
	if s == "" {
		return nil
	}
	if err := config.ValidatePort(s); err != nil {
		return errors.New(d.Render.T.Msg(config.TKeyErrPort, nil))
	}
	return nil
}

func (d *Desktop) validateReminder(s string) error {
	if !config.IsValidReminder(strings.TrimSpace(s)) {
		return errors.New(d.Render.T.Msg(config.TKeyErrReminder, nil))
	}
	return nil
}

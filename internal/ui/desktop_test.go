package ui

import (
	"context"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/i18n"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockCredentials simulates the keyring using testify/mock.
type MockCredentials struct {
	mock.Mock
}

func (m *MockCredentials) Password(user string) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockCredentials) SetPassword(user, pass string) error {
	return m.Called(user, pass).Error(0)
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupDesktop builds the window on a headless Fyne app.
func setupDesktop(t *testing.T) *Desktop {
	t.Helper()
	a := test.NewTempApp(t)
	d := NewDesktop(context.Background(), a, newExecutor(t), NewRenderer(i18n.NewTranslator("en")))
	d.Settings = config.Settings{Language: "en"}
	t.Cleanup(d.Window.Close)
	return d
}

func names(l *listView) []string {
	col := 1 // Name always follows the index column.
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r[col]
	}
	return out
}

// -----------------------------------------------------------------------------
// Main Window
// -----------------------------------------------------------------------------

func TestDesktop_SubmitUpdatesTables(t *testing.T) {
	d := setupDesktop(t)

	d.submit("add contact n/Amy Lee p/12345 t/work")
	d.submit("add event n/Party from/2025-06-01 18:00")

	assert.Equal(t, "New event added: Party", d.status.Text)
	assert.Empty(t, d.input.Text, "The command box is cleared after submit")
	assert.Equal(t, []string{"Amy Lee"}, names(d.contacts))
	assert.Equal(t, []string{"Party"}, names(d.events))
	assert.Equal(t, "undo 2 | redo 0", d.history.Text)
	assert.Equal(t, "Contacts", d.contacts.title.Text)
}

func TestDesktop_FailureKeepsTables(t *testing.T) {
	d := setupDesktop(t)
	d.submit("add contact n/Amy p/12345")
	d.submit("add contact n/Amy p/12345")

	assert.Equal(t, "This contact already exists in the address book", d.status.Text)
	assert.Len(t, d.contacts.rows, 1)
}

func TestDesktop_BlankLineIgnored(t *testing.T) {
	d := setupDesktop(t)
	d.submit("   ")
	assert.Empty(t, d.status.Text)
}

func TestDesktop_UndoMenuFollowsHistory(t *testing.T) {
	d := setupDesktop(t)
	assert.True(t, d.undoItem.Disabled, "Nothing to undo on a fresh book")
	assert.True(t, d.redoItem.Disabled)

	d.submit("add contact n/Amy p/12345")
	assert.False(t, d.undoItem.Disabled)

	d.undoItem.Action()
	assert.Empty(t, d.contacts.rows)
	assert.True(t, d.undoItem.Disabled)
	assert.False(t, d.redoItem.Disabled)
}

func TestDesktop_FilterShownInTitle(t *testing.T) {
	d := setupDesktop(t)
	d.submit("add contact n/Amy p/12345")
	d.submit("add contact n/Bob p/67890")
	d.submit("find contact amy")

	assert.Equal(t, []string{"Amy"}, names(d.contacts))
	assert.Equal(t, "Contacts (filter: amy)", d.contacts.title.Text)
}

func TestDesktop_HeaderSortToggles(t *testing.T) {
	d := setupDesktop(t)
	d.submit("add contact n/bob p/12345")
	d.submit("add contact n/Amy p/67890")
	d.submit("add contact n/Chris p/11111")

	l := d.contacts
	assert.Equal(t, "#"+config.SortIconAsc, l.headerText(0), "The index column sorts by default")
	assert.Equal(t, []string{"bob", "Amy", "Chris"}, names(l))

	l.tapHeader(1)
	assert.Equal(t, []string{"Amy", "bob", "Chris"}, names(l), "Names sort ignoring case")
	assert.Equal(t, "Name"+config.SortIconAsc, l.headerText(1))
	assert.Equal(t, "#", l.headerText(0))

	l.tapHeader(1)
	assert.Equal(t, []string{"Chris", "bob", "Amy"}, names(l))
	assert.Equal(t, "Name"+config.SortIconDesc, l.headerText(1))

	// The index stays attached to its row, so commands keep addressing it.
	assert.Equal(t, "3", l.rows[0][0])
	stored := d.Exec.Model().FilteredContacts()
	assert.Equal(t, "bob", stored[0].Name().String(), "Header sorting leaves the book order alone")
}

func TestDesktop_SortResetsWhenColumnHidden(t *testing.T) {
	d := setupDesktop(t)
	d.submit("add contact n/Amy p/222")
	d.submit("add contact n/Bob p/111")

	phone := 3 // index, name, tags, phone
	require.Equal(t, config.FieldPhone, d.contacts.grid.Fields[phone])
	d.contacts.tapHeader(phone)
	assert.Equal(t, []string{"Bob", "Amy"}, names(d.contacts))

	d.submit("hide contact phone")
	assert.Equal(t, config.FieldIndex, d.contacts.sortField)
	assert.Equal(t, []string{"Amy", "Bob"}, names(d.contacts))
	assert.NotContains(t, d.contacts.grid.Fields, config.FieldPhone)
}

func TestDesktop_CommandRecall(t *testing.T) {
	d := setupDesktop(t)
	d.submit("list")
	d.submit("help")

	up := &fyne.KeyEvent{Name: fyne.KeyUp}
	down := &fyne.KeyEvent{Name: fyne.KeyDown}

	d.input.TypedKey(up)
	assert.Equal(t, "help", d.input.Text)
	d.input.TypedKey(up)
	assert.Equal(t, "list", d.input.Text)
	d.input.TypedKey(up)
	assert.Equal(t, "list", d.input.Text, "Recall stops at the oldest line")
	d.input.TypedKey(down)
	d.input.TypedKey(down)
	assert.Empty(t, d.input.Text, "Past the newest line comes a fresh one")

	d.input.TypedKey(up)
	d.input.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Empty(t, d.input.Text)
}

func TestDesktop_BusyRefusesCommands(t *testing.T) {
	d := setupDesktop(t)
	d.setBusy(true)
	d.submit("add contact n/Amy p/12345")
	assert.Empty(t, d.Exec.Model().FilteredContacts())
	assert.True(t, d.input.Disabled())

	d.setBusy(false)
	d.submit("add contact n/Amy p/12345")
	assert.Len(t, d.contacts.rows, 1)
}

func TestImportLine(t *testing.T) {
	assert.Equal(t, "import /home/me/My Cards.vcf", importLine("/home/me/My Cards.vcf", ""))
	assert.Equal(t, "import https://dav.example.com/book u/alice", importLine("https://dav.example.com/book", "alice"))
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, isRemoteURL("https://dav.example.com/book"))
	assert.True(t, isRemoteURL(" http://localhost:5232/ "))
	assert.False(t, isRemoteURL("ftp://example.com/book"))
	assert.False(t, isRemoteURL("/tmp/book.vcf"))
	assert.False(t, isRemoteURL("https://"))
}

// -----------------------------------------------------------------------------
// Settings Window
// -----------------------------------------------------------------------------

func TestSettings_SaveWritesFileAndApplies(t *testing.T) {
	d := setupDesktop(t)
	creds := new(MockCredentials)
	creds.On("Password", "alice").Return("old", nil)
	creds.On("SetPassword", "alice", "s3cret").Return(nil)
	d.Credentials = creds
	d.Settings = config.Settings{Language: "en", ImportUser: "alice", DataFile: "/tmp/book.json"}
	d.SettingsPath = filepath.Join(t.TempDir(), config.SettingsFileName)

	var applied config.Settings
	d.OnSettingsSaved = func(s config.Settings) { applied = s }

	sw := d.newSettingsWidgets()
	assert.Equal(t, "old", sw.passEntry.Text, "The stored password is pre-filled")
	assert.Equal(t, "en", sw.langSelect.Selected)

	sw.langSelect.SetSelected("fr")
	sw.portEntry.SetText("8642")
	sw.reminderEntry.SetText(" -PT15M ")
	sw.passEntry.SetText("s3cret")
	require.NoError(t, d.saveSettings(sw))

	loaded, err := config.LoadSettings(d.SettingsPath)
	require.NoError(t, err)
	assert.Equal(t, "fr", loaded.Language)
	assert.Equal(t, "8642", loaded.ServerPort)
	assert.Equal(t, "-PT15M", loaded.Reminder)
	assert.Equal(t, "alice", loaded.ImportUser)
	assert.Equal(t, "/tmp/book.json", loaded.DataFile)

	assert.Equal(t, "-PT15M", applied.Reminder)
	assert.Equal(t, "fr", d.Render.T.Language())
	assert.Equal(t, "Paramètres enregistrés", d.status.Text)
	assert.Equal(t, "Nom", d.contacts.grid.Headers[1], "Tables switch language")
	creds.AssertExpectations(t)
}

func TestSettings_InvalidFieldsBlockSave(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sw *settingsWidgets)
		wantErr string
	}{
		{"PortRange", func(sw *settingsWidgets) { sw.portEntry.SetText("70000") }, "The port must be a number between 1 and 65535"},
		{"PortPasted", func(sw *settingsWidgets) { sw.portEntry.SetText("80a") }, "The port must be a number between 1 and 65535"},
		{"Reminder", func(sw *settingsWidgets) { sw.reminderEntry.SetText("soon") }, "Use an ISO 8601 duration such as -PT15M or -P1D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupDesktop(t)
			d.SettingsPath = filepath.Join(t.TempDir(), config.SettingsFileName)
			called := false
			d.OnSettingsSaved = func(config.Settings) { called = true }

			sw := d.newSettingsWidgets()
			tt.setup(sw)

			err := d.saveSettings(sw)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.NoFileExists(t, d.SettingsPath)
			assert.False(t, called)
		})
	}
}

func TestSettings_EmptyPortDisablesFeed(t *testing.T) {
	d := setupDesktop(t)
	d.Settings.ServerPort = "8642"

	sw := d.newSettingsWidgets()
	sw.portEntry.SetText("")
	require.NoError(t, d.saveSettings(sw))
	assert.Empty(t, d.Settings.ServerPort)
}

func TestSettings_KeyringFailureDoesNotBlockSave(t *testing.T) {
	d := setupDesktop(t)
	creds := new(MockCredentials)
	creds.On("SetPassword", "bob", "pw").Return(assert.AnError)
	d.Credentials = creds

	sw := d.newSettingsWidgets()
	sw.userEntry.SetText("bob")
	sw.passEntry.SetText("pw")
	require.NoError(t, d.saveSettings(sw))
	assert.Equal(t, "bob", d.Settings.ImportUser)
	creds.AssertExpectations(t)
}

func TestSettingsWindow_Singleton(t *testing.T) {
	d := setupDesktop(t)
	d.ShowSettingsWindow()
	first := d.settingsWindow
	require.NotNil(t, first)

	d.ShowSettingsWindow()
	assert.Same(t, first, d.settingsWindow, "A second call focuses the open window")
	first.Close()
}

package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(ctx context.Context, source, user string) ([]entity.Contact, error) {
	args := m.Called(ctx, source, user)
	if c := args.Get(0); c != nil {
		return c.([]entity.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) ExportContacts(path string, contacts []entity.Contact) error {
	return m.Called(path, contacts).Error(0)
}

func (m *MockExporter) ExportEvents(path string, book model.AddressBook) error {
	return m.Called(path, book).Error(0)
}

// recorder counts change notifications.
type recorder struct {
	books []model.AddressBook
}

func (r *recorder) AddressBookChanged(book model.AddressBook) {
	r.books = append(r.books, book)
}

type fixture struct {
	exec     *command.Executor
	model    *model.Model
	env      *command.Env
	importer *MockImporter
	exporter *MockExporter
	listener *recorder
}

func newFixture(t *testing.T, policy command.Policy) *fixture {
	t.Helper()
	m, err := model.New(model.AddressBook{})
	require.NoError(t, err)

	f := &fixture{model: m, importer: new(MockImporter), exporter: new(MockExporter), listener: &recorder{}}
	f.env = &command.Env{
		Model:             m,
		Importer:          f.importer,
		Exporter:          f.exporter,
		DefaultImportUser: "alice",
	}
	f.exec = command.NewExecutor(f.env, newParser(), policy, f.listener)
	return f
}

func (f *fixture) run(t *testing.T, lines ...string) command.Result {
	t.Helper()
	var res command.Result
	for _, line := range lines {
		var err error
		res, err = f.exec.Execute(context.Background(), line)
		require.NoError(t, err, line)
	}
	return res
}

func (f *fixture) fail(t *testing.T, line string) *command.Failure {
	t.Helper()
	_, err := f.exec.Execute(context.Background(), line)
	require.Error(t, err, line)
	var failure *command.Failure
	require.ErrorAs(t, err, &failure)
	return failure
}

func contactNames(cs []entity.Contact) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Name().String())
	}
	return out
}

// -----------------------------------------------------------------------------
// Undo / Redo
// -----------------------------------------------------------------------------

func TestExecute_AddUndoRedo(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	res := f.run(t, "add contact n/Amy Lee p/12345")
	assert.Equal(t, config.TKeyContactAdded, res.Message.ID)
	assert.Equal(t, "Amy Lee", res.Message.Data["Name"])
	assert.Equal(t, command.ViewContacts, res.View)
	assert.Equal(t, model.HistoryStatus{UndoSteps: 1}, f.model.HistoryStatus())

	res = f.run(t, "undo")
	assert.Equal(t, config.TKeyUndone, res.Message.ID)
	assert.Empty(t, f.model.FilteredContacts())
	assert.Equal(t, model.HistoryStatus{RedoSteps: 1}, f.model.HistoryStatus())

	f.run(t, "redo")
	assert.Equal(t, []string{"Amy Lee"}, contactNames(f.model.FilteredContacts()))
}

func TestExecute_NothingToUndo(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	failure := f.fail(t, "undo")
	assert.Equal(t, config.TKeyErrNoUndo, failure.Message.ID)

	failure = f.fail(t, "redo")
	assert.Equal(t, config.TKeyErrNoRedo, failure.Message.ID)
}

func TestExecute_NewCommandDropsRedo(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	f.run(t, "add contact n/Amy p/12345", "add contact n/Bob p/12345", "undo", "add contact n/Cid p/12345")

	assert.False(t, f.model.IsRedoable())
	assert.Equal(t, []string{"Amy", "Cid"}, contactNames(f.model.FilteredContacts()))
	f.fail(t, "redo")
}

func TestExecute_NonUndoableCommandsDoNotCommit(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	f.run(t, "add contact n/Amy Lee p/12345", "add contact n/Bob p/12345", "find contact bob", "list", "help", "history")
	assert.Equal(t, model.HistoryStatus{UndoSteps: 2}, f.model.HistoryStatus())

	// Undo restores the snapshot taken after the first add, filter included.
	f.run(t, "find contact amy", "undo")
	assert.Equal(t, []string{"Amy Lee"}, contactNames(f.model.FilteredContacts()))
	assert.True(t, f.model.ContactFilter().IsZero())
}

func TestExecute_CustomPolicy(t *testing.T) {
	policy, err := command.PolicyFromNames([]string{"add_event"})
	require.NoError(t, err)
	f := newFixture(t, policy)

	f.run(t, "add contact n/Amy p/12345")
	assert.False(t, f.model.IsUndoable())

	f.run(t, "add event n/Party from/2025-06-01")
	assert.True(t, f.model.IsUndoable())
}

func TestExecute_DisplaySettingsAreUndoable(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	f.run(t, "hide contact phone email")
	assert.False(t, f.model.ContactSetting().Phone)
	assert.False(t, f.model.ContactSetting().Email)

	f.run(t, "undo")
	assert.True(t, f.model.ContactSetting().Phone)
}

func TestExecute_HistoryStatusAndClear(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add contact n/Bob p/12345", "undo")

	res := f.run(t, "history")
	assert.Equal(t, config.TKeyHistoryStatus, res.Message.ID)
	assert.Equal(t, 1, res.Message.Data["Undo"])
	assert.Equal(t, 1, res.Message.Data["Redo"])

	res = f.run(t, "history clear")
	assert.Equal(t, config.TKeyHistoryCleared, res.Message.ID)
	assert.Equal(t, model.HistoryStatus{}, f.model.HistoryStatus())
	f.fail(t, "undo")

	// The cleared state is the new baseline.
	f.run(t, "delete contact 1", "undo")
	assert.Equal(t, []string{"Amy"}, contactNames(f.model.FilteredContacts()))
}

func TestExecute_ClearIsUndoable(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add event n/Party from/2025-06-01", "link ev/1 c/1")

	f.run(t, "clear")
	assert.Empty(t, f.model.AddressBook().Contacts)
	assert.Empty(t, f.model.AddressBook().Events)

	f.run(t, "undo")
	book := f.model.AddressBook()
	require.Len(t, book.Contacts, 1)
	require.Len(t, book.Events, 1)
	assert.True(t, book.Contacts[0].HasEvent(book.Events[0].ID()))
}

// -----------------------------------------------------------------------------
// Failures
// -----------------------------------------------------------------------------

func TestExecute_FailureLeavesModelUnchanged(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy Lee p/12345")
	before := f.model.AddressBook()
	notified := len(f.listener.books)

	tests := []struct {
		line   string
		wantID string
	}{
		{"add contact n/Amy Lee e/amy@example.com", config.TKeyErrDuplicateContact},
		{"edit contact 2 p/999", config.TKeyErrInvalidIndex},
		{"edit contact 1 e/nope", config.TKeyErrInvalidPrefix + config.FieldEmail},
		{"edit contact 1 p/", config.TKeyErrInvalidPrefix + config.FieldContact},
		{"delete event 1", config.TKeyErrInvalidIndex},
		{"unlink ev/1 c/1", config.TKeyErrInvalidIndex},
		{"show contact colour", config.TKeyErrUnknownField},
		{"bogus", config.TKeyErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			failure := f.fail(t, tt.line)
			assert.Equal(t, tt.wantID, failure.Message.ID)
			assert.Equal(t, before, f.model.AddressBook())
		})
	}
	assert.Equal(t, model.HistoryStatus{UndoSteps: 1}, f.model.HistoryStatus())
	assert.Len(t, f.listener.books, notified, "Failures are not broadcast")
}

func TestExecute_ValidationMessageCarriesValue(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	failure := f.fail(t, "add contact n/Amy e/not-an-email")
	assert.Equal(t, "err_invalid_email", failure.Message.ID)
	assert.Equal(t, "not-an-email", failure.Message.Data["Value"])
	assert.ErrorIs(t, failure, entity.ErrInvalid)
}

func TestExecute_UnknownFieldListsColumns(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	failure := f.fail(t, "hide event phone")
	assert.Equal(t, "phone", failure.Message.Data["Field"])
	assert.Contains(t, failure.Message.Data["Fields"], "description")
}

// -----------------------------------------------------------------------------
// Linking
// -----------------------------------------------------------------------------

func TestExecute_LinkUnlink(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add event n/Party from/2025-06-01")

	res := f.run(t, "link ev/1 c/1")
	assert.Equal(t, config.TKeyLinked, res.Message.ID)
	assert.Equal(t, "Party", res.Message.Data["Event"])
	assert.Equal(t, "Amy", res.Message.Data["Contact"])

	failure := f.fail(t, "link ev/1 c/1")
	assert.Equal(t, config.TKeyErrAlreadyLinked, failure.Message.ID)

	f.run(t, "unlink ev/1 c/1")
	failure = f.fail(t, "unlink ev/1 c/1")
	assert.Equal(t, config.TKeyErrNotLinked, failure.Message.ID)
}

func TestExecute_DeleteDropsLinks(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add event n/Party from/2025-06-01", "link ev/1 c/1", "delete contact 1")

	events := f.model.FilteredEvents()
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Contacts())
}

func TestExecute_IndexesFollowFilter(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add contact n/Bob p/12345", "find contact bob", "delete contact 1")

	f.run(t, "list")
	assert.Equal(t, []string{"Amy"}, contactNames(f.model.FilteredContacts()))
}

func TestExecute_EditKeepsLinks(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "add event n/Party from/2025-06-01", "link ev/1 c/1")

	f.run(t, "edit contact 1 n/Amy Lee t/friends")
	c := f.model.FilteredContacts()[0]
	assert.Equal(t, "Amy Lee", c.Name().String())
	assert.Equal(t, []string{"friends"}, entity.TagLabels(c.Tags()))
	assert.Len(t, c.Events(), 1)
}

// -----------------------------------------------------------------------------
// Sorting
// -----------------------------------------------------------------------------

func TestExecute_SortContactsUsesCollator(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.env.Collator = collate.New(language.French)
	f.run(t, "add contact n/Zoe p/12345", "add contact n/Émile p/12345", "add contact n/adam p/12345")

	res := f.run(t, "sort contact")
	assert.Equal(t, config.TKeyContactsSorted, res.Message.ID)
	assert.Equal(t, []string{"adam", "Émile", "Zoe"}, contactNames(f.model.FilteredContacts()))

	f.run(t, "undo")
	assert.Equal(t, []string{"Zoe", "Émile", "adam"}, contactNames(f.model.FilteredContacts()))
}

func TestExecute_SortEventsByStart(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t,
		"add event n/Late from/2025-06-02",
		"add event n/Beta from/2025-06-01 10:00",
		"add event n/Alpha from/2025-06-01 10:00",
		"sort event",
	)

	var names []string
	for _, e := range f.model.FilteredEvents() {
		names = append(names, e.Name().String())
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Late"}, names)
}

func TestExecute_AllDayAndMidnightAreTheSameEvent(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add event n/Holiday from/2025-01-01")

	failure := f.fail(t, "add event n/Holiday from/2025-01-01 00:00")
	assert.Equal(t, config.TKeyErrDuplicateEvent, failure.Message.ID)
	assert.Len(t, f.model.FilteredEvents(), 1)

	f.run(t, "add event n/Holiday from/2025-01-01 09:00")
	assert.Len(t, f.model.FilteredEvents(), 2)
}

// -----------------------------------------------------------------------------
// Import / Export
// -----------------------------------------------------------------------------

func mustContact(t *testing.T, name, phone string) entity.Contact {
	t.Helper()
	n, err := entity.NewName(name)
	require.NoError(t, err)
	p, err := entity.NewPhone(phone)
	require.NoError(t, err)
	c, err := entity.NewContact(entity.ContactFields{Name: n, Phone: p})
	require.NoError(t, err)
	return c
}

func TestExecute_ImportSkipsExisting(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345")

	f.importer.On("Import", mock.Anything, "book.vcf", "alice").
		Return([]entity.Contact{mustContact(t, "Amy", "999"), mustContact(t, "Bob", "555")}, nil)

	res := f.run(t, "import book.vcf")
	assert.Equal(t, config.TKeyImported, res.Message.ID)
	require.NotNil(t, res.Message.Count)
	assert.Equal(t, 1, *res.Message.Count)
	assert.Equal(t, 1, res.Message.Data["Skipped"])
	assert.Equal(t, []string{"Amy", "Bob"}, contactNames(f.model.FilteredContacts()))
	assert.Equal(t, "12345", f.model.FilteredContacts()[0].Phone().String(), "Existing contacts are not overwritten")
	f.importer.AssertExpectations(t)

	f.run(t, "undo")
	assert.Equal(t, []string{"Amy"}, contactNames(f.model.FilteredContacts()))
}

func TestExecute_ImportExplicitUser(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.importer.On("Import", mock.Anything, "https://dav.example.com/book", "bob").Return([]entity.Contact{}, nil)

	f.run(t, "import https://dav.example.com/book u/bob")
	f.importer.AssertExpectations(t)
}

func TestExecute_ImportFailure(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.importer.On("Import", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	failure := f.fail(t, "import https://dav.example.com/book")
	assert.Equal(t, config.TKeyErrImport, failure.Message.ID)
	assert.Equal(t, "connection refused", failure.Message.Data["Error"])
	assert.False(t, f.model.IsUndoable())
}

func TestExecute_Export(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.run(t, "add contact n/Amy p/12345", "find contact nobody")

	f.exporter.On("ExportContacts", "/tmp/out.vcf", mock.MatchedBy(func(cs []entity.Contact) bool {
		return len(cs) == 1
	})).Return(nil)
	f.exporter.On("ExportEvents", "/tmp/out.ics", mock.Anything).Return(errors.New("disk full"))

	res := f.run(t, "export contacts /tmp/out.vcf")
	assert.Equal(t, config.TKeyExported, res.Message.ID)
	assert.Equal(t, "/tmp/out.vcf", res.Message.Data["Path"])

	failure := f.fail(t, "export events /tmp/out.ics")
	assert.Equal(t, config.TKeyErrExport, failure.Message.ID)
	f.exporter.AssertExpectations(t)
}

func TestExecute_MissingExchange(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())
	f.env.Importer = nil
	f.env.Exporter = nil

	assert.Equal(t, config.TKeyErrImport, f.fail(t, "import a.vcf").Message.ID)
	assert.Equal(t, config.TKeyErrExport, f.fail(t, "export events a.ics").Message.ID)
}

// -----------------------------------------------------------------------------
// Listeners / Exit
// -----------------------------------------------------------------------------

func TestExecute_NotifiesListeners(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	f.run(t, "add contact n/Amy p/12345")
	require.Len(t, f.listener.books, 1)
	assert.Len(t, f.listener.books[0].Contacts, 1)

	f.run(t, "find contact amy", "help", "history", "list")
	assert.Len(t, f.listener.books, 1, "Read-only commands do not notify")

	f.run(t, "undo")
	require.Len(t, f.listener.books, 2)
	assert.Empty(t, f.listener.books[1].Contacts)
}

func TestExecute_Exit(t *testing.T) {
	f := newFixture(t, command.DefaultPolicy())

	res := f.run(t, "exit")
	assert.True(t, res.Exit)
	assert.Equal(t, config.TKeyBye, res.Message.ID)
}

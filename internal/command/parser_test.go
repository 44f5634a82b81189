package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
)

func newParser() *command.Parser {
	return command.NewParser(entity.NewTagPalette(nil))
}

func TestParse_AddContact(t *testing.T) {
	cmd, err := newParser().Parse("add contact n/Amy Lee p/+41 22 555 01 01 l/https://example.com/a/b t/work t/friends")
	require.NoError(t, err)

	add, ok := cmd.(command.AddContact)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, command.KindAddContact, add.Kind())
	assert.Equal(t, "Amy Lee", add.Contact.Name().String())
	assert.Equal(t, "+41 22 555 01 01", add.Contact.Phone().String())
	assert.Equal(t, "https://example.com/a/b", add.Contact.Link().String(), "a/ inside a value is not a prefix")
	assert.True(t, add.Contact.Email().IsZero())
	assert.Equal(t, []string{"friends", "work"}, entity.TagLabels(add.Contact.Tags()))
}

func TestParse_AddEvent(t *testing.T) {
	cmd, err := newParser().Parse("add event n/Review from/2025-04-01 14:00 to/2025-04-01 15:00 d/Quarterly")
	require.NoError(t, err)

	add, ok := cmd.(command.AddEvent)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, "Review", add.Event.Name().String())
	assert.Equal(t, "2025-04-01 14:00", add.Event.Start().String())
	assert.Equal(t, "2025-04-01 15:00", add.Event.End().String())
	assert.Equal(t, "Quarterly", add.Event.Description().String())
}

func TestParse_TabsSeparateWords(t *testing.T) {
	cmd, err := newParser().Parse("add\tcontact\tn/Amy p/12345\tt/work")
	require.NoError(t, err)

	add, ok := cmd.(command.AddContact)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, "Amy", add.Contact.Name().String())
	assert.Equal(t, "12345", add.Contact.Phone().String())
	assert.Equal(t, []string{"work"}, entity.TagLabels(add.Contact.Tags()))

	cmd, err = newParser().Parse("delete\tevent\t3")
	require.NoError(t, err)
	assert.Equal(t, command.KindDeleteEvent, cmd.Kind())
}

func TestParse_Edit(t *testing.T) {
	cmd, err := newParser().Parse("edit contact 2 p/ e/amy@example.com t/")
	require.NoError(t, err)

	edit, ok := cmd.(command.EditContact)
	require.True(t, ok, "got %T", cmd)
	assert.Equal(t, 2, edit.Index)
	assert.Nil(t, edit.Edit.Name, "Absent fields are left alone")
	require.NotNil(t, edit.Edit.Phone)
	assert.True(t, edit.Edit.Phone.IsZero(), "An empty value clears the field")
	require.NotNil(t, edit.Edit.Email)
	assert.Equal(t, "amy@example.com", edit.Edit.Email.String())
	require.NotNil(t, edit.Edit.Tags)
	assert.Empty(t, *edit.Edit.Tags, "A bare t/ clears the tags")
}

func TestParse_EditEvent(t *testing.T) {
	cmd, err := newParser().Parse("edit event 1 to/ a/Main hall")
	require.NoError(t, err)

	edit, ok := cmd.(command.EditEvent)
	require.True(t, ok, "got %T", cmd)
	require.NotNil(t, edit.Edit.End)
	assert.True(t, edit.Edit.End.IsZero())
	assert.Equal(t, "Main hall", edit.Edit.Address.String())
	assert.Nil(t, edit.Edit.Start)
}

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"delete contact 3", command.DeleteContact{Index: 3}},
		{"delete event 1", command.DeleteEvent{Index: 1}},
		{"link ev/1 c/2", command.Link{Event: 1, Contact: 2}},
		{"unlink c/2 ev/1", command.Unlink{Event: 1, Contact: 2}},
		{"find contact amy bob t/work", command.FindContacts{Filter: display.NewFilter([]string{"amy", "bob"}, []string{"work"})}},
		{"find event t/team", command.FindEvents{Filter: display.NewFilter(nil, []string{"team"})}},
		{"list", command.List{}},
		{"list events", command.List{Target: command.EventList}},
		{"hide contact phone email", command.ChangeDisplay{Target: command.ContactList, Fields: []string{"phone", "email"}}},
		{"show event Time", command.ChangeDisplay{Target: command.EventList, Fields: []string{"time"}, Visible: true}},
		{"sort contact", command.SortContacts{}},
		{"sort event", command.SortEvents{}},
		{"clear", command.Clear{}},
		{"undo", command.Undo{}},
		{"redo", command.Redo{}},
		{"history", command.History{}},
		{"history clear", command.ClearHistory{}},
		{"import /tmp/book.vcf", command.Import{Source: "/tmp/book.vcf"}},
		{"import https://dav.example.com/book u/alice", command.Import{Source: "https://dav.example.com/book", User: "alice"}},
		{"export events /tmp/out.ics", command.Export{Target: command.EventList, Path: "/tmp/out.ics"}},
		{"  HELP  ", command.Help{}},
		{"exit", command.Exit{}},
	}

	p := newParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
		wantID  string
	}{
		{"", command.ErrUnknownCommand, config.TKeyErrUnknownCommand},
		{"frobnicate now", command.ErrUnknownCommand, config.TKeyErrUnknownCommand},
		{"add person n/Amy", command.ErrUsage, config.TKeyErrUsage},
		{"add contact p/12345", command.ErrUsage, config.TKeyErrUsage},
		{"add contact junk n/Amy p/12345", command.ErrUsage, config.TKeyErrUsage},
		{"add event n/Review", command.ErrUsage, config.TKeyErrUsage},
		{"edit contact 1", command.ErrUsage, config.TKeyErrUsage},
		{"edit contact 0 p/12345", command.ErrInvalidIndex, config.TKeyErrInvalidIndex},
		{"edit contact one p/12345", command.ErrInvalidIndex, config.TKeyErrInvalidIndex},
		{"delete contact", command.ErrUsage, config.TKeyErrUsage},
		{"delete event -1", command.ErrInvalidIndex, config.TKeyErrInvalidIndex},
		{"link ev/1", command.ErrUsage, config.TKeyErrUsage},
		{"link 3 ev/1 c/1", command.ErrUsage, config.TKeyErrUsage},
		{"find contact", command.ErrUsage, config.TKeyErrUsage},
		{"list everything", command.ErrUsage, config.TKeyErrUsage},
		{"show contact", command.ErrUsage, config.TKeyErrUsage},
		{"sort contact name", command.ErrUsage, config.TKeyErrUsage},
		{"undo 2", command.ErrUsage, config.TKeyErrUsage},
		{"history forget", command.ErrUsage, config.TKeyErrUsage},
		{"import u/alice", command.ErrUsage, config.TKeyErrUsage},
		{"export contacts", command.ErrUsage, config.TKeyErrUsage},
	}

	p := newParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := p.Parse(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var f *command.Failure
			require.ErrorAs(t, err, &f)
			assert.Equal(t, tt.wantID, f.Message.ID)
		})
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		line      string
		wantField string
	}{
		{"add contact n/Amy", config.FieldContact},
		{"add contact n/@@@ p/12345", config.FieldName},
		{"add contact n/Amy e/not-an-email", config.FieldEmail},
		{"add contact n/Amy p/12345 t/bad tag!", config.FieldTag},
		{"add event n/Review from/tomorrow", config.FieldDateTime},
		{"add event n/Review from/2025-04-02 to/2025-04-01", config.FieldPeriod},
		{"edit contact 1 n/", config.FieldName},
		{"edit event 1 from/", config.FieldDateTime},
		{"find contact t/no way", config.FieldTag},
	}

	p := newParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := p.Parse(tt.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalid)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

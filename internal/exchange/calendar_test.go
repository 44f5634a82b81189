package exchange_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/exchange"
	"github.com/tartampluch/go-contactbook/internal/model"
)

func mustEvent(t *testing.T, name, start string) entity.Event {
	t.Helper()
	n, err := entity.NewName(name)
	require.NoError(t, err)
	s, err := entity.ParseDateTime(start)
	require.NoError(t, err)
	e, err := entity.NewEvent(entity.EventFields{Name: n, Start: s})
	require.NoError(t, err)
	return e
}

func newGenerator(reminder string) *exchange.CalendarGenerator {
	return &exchange.CalendarGenerator{
		Clock:    MockClock{CurrentTime: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		Reminder: reminder,
	}
}

func TestGenerate_EmptyBookIsStub(t *testing.T) {
	data, err := newGenerator("").Generate(model.AddressBook{})
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestGenerate_EventProperties(t *testing.T) {
	allDay := mustEvent(t, "Offsite", "2025-07-14")

	f := mustEvent(t, "Standup", "2025-07-15 09:30").Fields()
	f.End, _ = entity.ParseDateTime("2025-07-15 09:45")
	f.Address, _ = entity.NewAddress("Room 4")
	f.Description, _ = entity.NewDescription("Daily sync")
	f.Tags, _ = entity.NewTagPalette(nil).Tags([]string{"team", "daily"})
	timed, err := entity.NewEvent(f)
	require.NoError(t, err)

	data, err := newGenerator("").Generate(model.AddressBook{Events: []entity.Event{allDay, timed}})
	require.NoError(t, err)
	ics := string(data)

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "X-WR-CALNAME:"+config.ICalCalName)
	assert.Contains(t, ics, "DTSTAMP:20250601T083000Z", "DTSTAMP comes from the clock")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))

	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250714", "Date-only events are all-day")
	assert.Contains(t, ics, "DTSTART:20250715T093000")
	assert.Contains(t, ics, "DTEND:20250715T094500")
	assert.Contains(t, ics, "LOCATION:Room 4")
	assert.Contains(t, ics, "DESCRIPTION:Daily sync")
	assert.Contains(t, ics, "CATEGORIES:daily,team")
	assert.Contains(t, ics, "UID:"+timed.ID().String()+"@"+config.ICalDomain)
	assert.NotContains(t, ics, "BEGIN:VALARM")
}

func TestGenerate_WithReminders(t *testing.T) {
	data, err := newGenerator("-P1D").Generate(model.AddressBook{Events: []entity.Event{mustEvent(t, "Alarm Test", "2025-01-01")}})
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VALARM", "ICS should contain an alarm component")
	assert.Contains(t, ics, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, ics, "ACTION:DISPLAY", "Alarm action should be DISPLAY")
}

func TestGenerate_LinkedContactsBecomeAttendees(t *testing.T) {
	name, _ := entity.NewName("Amy")
	email, _ := entity.NewEmail("amy@example.com")
	amy, err := entity.NewContact(entity.ContactFields{Name: name, Email: email})
	require.NoError(t, err)

	phoneOnlyName, _ := entity.NewName("Bob")
	phone, _ := entity.NewPhone("12345")
	bob, err := entity.NewContact(entity.ContactFields{Name: phoneOnlyName, Phone: phone})
	require.NoError(t, err)

	ev := mustEvent(t, "Lunch", "2025-02-02 12:00").WithContact(amy.ID()).WithContact(bob.ID())

	data, err := newGenerator("").Generate(model.AddressBook{
		Contacts: []entity.Contact{amy.WithEvent(ev.ID()), bob.WithEvent(ev.ID())},
		Events:   []entity.Event{ev},
	})
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "mailto:amy@example.com")
	assert.Contains(t, ics, "CN=Amy")
	assert.Equal(t, 1, strings.Count(ics, "ATTENDEE"), "Contacts without email are not attendees")
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// EventFields groups the user-editable attributes of an event.
type EventFields struct {
	Name        Name
	Start       DateTime
	End         DateTime
	Address     Address
	Description Description
	Tags        []Tag
}

// Event is an immutable calendar entry.
type Event struct {
	id          uuid.UUID
	name        Name
	start       DateTime
	end         DateTime
	address     Address
	description Description
	tags        []Tag
	contacts    idSet
}

// NewEvent creates an event with a fresh identity token.
func NewEvent(f EventFields) (Event, error) {
	return RestoreEvent(uuid.New(), f, nil)
}

// RestoreEvent rebuilds an event with a known identity token and links.
func RestoreEvent(id uuid.UUID, f EventFields, contacts []uuid.UUID) (Event, error) {
	if f.Name == (Name{}) {
		return Event{}, invalid(config.FieldName, "", config.ReasonName)
	}
	if f.Start.IsZero() {
		return Event{}, invalid(config.FieldDateTime, "", config.ReasonDateTime)
	}
	if !f.End.IsZero() && f.End.Before(f.Start) {
		return Event{}, invalid(config.FieldPeriod, f.End.String(), config.ReasonPeriod)
	}
	return Event{
		id:          id,
		name:        f.Name,
		start:       f.Start,
		end:         f.End,
		address:     f.Address,
		description: f.Description,
		tags:        normalizeTags(f.Tags),
		contacts:    newIDSet(contacts),
	}, nil
}

// ID returns the identity token used by links.
func (e Event) ID() uuid.UUID { return e.id }

// Key is the uniqueness key: the same name at the same start instant is the
// same event. An all-day start is midnight, so "2025-01-01" and
// "2025-01-01 00:00" collide.
func (e Event) Key() string {
	return e.name.String() + config.EventKeySeparator + e.start.Time().UTC().Format(time.RFC3339)
}

// Name returns the event title.
func (e Event) Name() Name { return e.name }

// Start returns when the event begins.
func (e Event) Start() DateTime { return e.start }

// End returns when the event ends; zero when open-ended.
func (e Event) End() DateTime { return e.end }

// Address returns where the event takes place.
func (e Event) Address() Address { return e.address }

// Description returns the free-text notes.
func (e Event) Description() Description { return e.description }

// Tags returns a copy of the tag set, sorted by label.
func (e Event) Tags() []Tag { return append([]Tag(nil), e.tags...) }

// HasTag reports whether the event carries label (case-insensitive).
func (e Event) HasTag(label string) bool { return hasTagLabel(e.tags, label) }

// Contacts returns the identity tokens of linked contacts.
func (e Event) Contacts() []uuid.UUID { return e.contacts.list() }

// HasContact reports whether the event is linked to the contact id.
func (e Event) HasContact(id uuid.UUID) bool { return e.contacts.contains(id) }

// Fields returns the editable attributes.
func (e Event) Fields() EventFields {
	return EventFields{
		Name:        e.name,
		Start:       e.start,
		End:         e.end,
		Address:     e.address,
		Description: e.description,
		Tags:        e.Tags(),
	}
}

// WithFields returns an edited copy that keeps the identity token and links.
func (e Event) WithFields(f EventFields) (Event, error) {
	return RestoreEvent(e.id, f, e.contacts)
}

// WithContact returns a copy linked to the contact id.
func (e Event) WithContact(id uuid.UUID) Event {
	e.contacts = e.contacts.with(id)
	return e
}

// WithoutContact returns a copy no longer linked to the contact id.
func (e Event) WithoutContact(id uuid.UUID) Event {
	e.contacts = e.contacts.without(id)
	return e
}

// MatchesKeyword reports whether any word of the name equals kw, ignoring case.
func (e Event) MatchesKeyword(kw string) bool {
	for _, w := range e.name.Words() {
		if strings.EqualFold(w, kw) {
			return true
		}
	}
	return false
}

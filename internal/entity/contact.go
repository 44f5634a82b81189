package entity

import (
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// ContactFields groups the user-editable attributes of a contact.
type ContactFields struct {
	Name    Name
	Phone   Phone
	Email   Email
	Address Address
	Link    Link
	Tags    []Tag
}

// Contact is an immutable person record.
// Edits and link changes return a new Contact with the same identity token.
type Contact struct {
	id      uuid.UUID
	name    Name
	phone   Phone
	email   Email
	address Address
	link    Link
	tags    []Tag
	events  idSet
}

// NewContact creates a contact with a fresh identity token.
func NewContact(f ContactFields) (Contact, error) {
	return RestoreContact(uuid.New(), f, nil)
}

// RestoreContact rebuilds a contact with a known identity token and links,
// as read back from storage.
func RestoreContact(id uuid.UUID, f ContactFields, events []uuid.UUID) (Contact, error) {
	if f.Name == (Name{}) {
		return Contact{}, invalid(config.FieldName, "", config.ReasonName)
	}
	if f.Phone.IsZero() && f.Email.IsZero() {
		return Contact{}, invalid(config.FieldContact, f.Name.String(), config.ReasonReachable)
	}
	return Contact{
		id:      id,
		name:    f.Name,
		phone:   f.Phone,
		email:   f.Email,
		address: f.Address,
		link:    f.Link,
		tags:    normalizeTags(f.Tags),
		events:  newIDSet(events),
	}, nil
}

// ID returns the identity token used by links.
func (c Contact) ID() uuid.UUID { return c.id }

// Key is the uniqueness key: two contacts with the same name are the same person.
func (c Contact) Key() string { return c.name.String() }

// Name returns the display name, which is also the identity key.
func (c Contact) Name() Name { return c.name }

// Phone returns the phone number; zero when only an email is known.
func (c Contact) Phone() Phone { return c.phone }

// Email returns the email address; zero when only a phone is known.
func (c Contact) Email() Email { return c.email }

// Address returns the postal address, possibly zero.
func (c Contact) Address() Address { return c.address }

// Link returns the web link, possibly zero.
func (c Contact) Link() Link { return c.link }

// Tags returns a copy of the tag set, sorted by label.
func (c Contact) Tags() []Tag { return append([]Tag(nil), c.tags...) }

// HasTag reports whether the contact carries label (case-insensitive).
func (c Contact) HasTag(label string) bool { return hasTagLabel(c.tags, label) }

// Events returns the identity tokens of linked events.
func (c Contact) Events() []uuid.UUID { return c.events.list() }

// HasEvent reports whether the contact is linked to the event id.
func (c Contact) HasEvent(id uuid.UUID) bool { return c.events.contains(id) }

// Fields returns the editable attributes.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		Name:    c.name,
		Phone:   c.phone,
		Email:   c.email,
		Address: c.address,
		Link:    c.link,
		Tags:    c.Tags(),
	}
}

// WithFields returns an edited copy that keeps the identity token and links.
func (c Contact) WithFields(f ContactFields) (Contact, error) {
	return RestoreContact(c.id, f, c.events)
}

// WithEvent returns a copy linked to the event id.
func (c Contact) WithEvent(id uuid.UUID) Contact {
	c.events = c.events.with(id)
	return c
}

// WithoutEvent returns a copy no longer linked to the event id.
func (c Contact) WithoutEvent(id uuid.UUID) Contact {
	c.events = c.events.without(id)
	return c
}

// MatchesKeyword reports whether any word of the name equals kw, ignoring case.
func (c Contact) MatchesKeyword(kw string) bool {
	for _, w := range c.name.Words() {
		if strings.EqualFold(w, kw) {
			return true
		}
	}
	return false
}

package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// bookRecord is the on-disk shape of an address book.
type bookRecord struct {
	Contacts []contactRecord `json:"contacts"`
	Events   []eventRecord   `json:"events"`
}

type contactRecord struct {
	ID      uuid.UUID   `json:"id"`
	Name    string      `json:"name"`
	Phone   string      `json:"phone,omitempty"`
	Email   string      `json:"email,omitempty"`
	Address string      `json:"address,omitempty"`
	Link    string      `json:"link,omitempty"`
	Tags    []string    `json:"tags,omitempty"`
	Events  []uuid.UUID `json:"events,omitempty"`
}

type eventRecord struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Start       string      `json:"start"`
	End         string      `json:"end,omitempty"`
	Address     string      `json:"address,omitempty"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Contacts    []uuid.UUID `json:"contacts,omitempty"`
}

func fromAddressBook(book model.AddressBook) bookRecord {
	rec := bookRecord{
		Contacts: make([]contactRecord, 0, len(book.Contacts)),
		Events:   make([]eventRecord, 0, len(book.Events)),
	}
	for _, c := range book.Contacts {
		rec.Contacts = append(rec.Contacts, contactRecord{
			ID:      c.ID(),
			Name:    c.Name().String(),
			Phone:   c.Phone().String(),
			Email:   c.Email().String(),
			Address: c.Address().String(),
			Link:    c.Link().String(),
			Tags:    entity.TagLabels(c.Tags()),
			Events:  c.Events(),
		})
	}
	for _, e := range book.Events {
		rec.Events = append(rec.Events, eventRecord{
			ID:          e.ID(),
			Name:        e.Name().String(),
			Start:       e.Start().String(),
			End:         e.End().String(),
			Address:     e.Address().String(),
			Description: e.Description().String(),
			Tags:        entity.TagLabels(e.Tags()),
			Contacts:    e.Contacts(),
		})
	}
	return rec
}

// toAddressBook validates every record. Links pointing at entities that
// are not in the file are dropped so both sides stay symmetric.
func (r bookRecord) toAddressBook(palette *entity.TagPalette) (model.AddressBook, error) {
	contactIDs := make(map[uuid.UUID]bool, len(r.Contacts))
	for _, c := range r.Contacts {
		contactIDs[c.ID] = true
	}
	eventLinks := make(map[uuid.UUID]map[uuid.UUID]bool, len(r.Events))
	for _, e := range r.Events {
		links := make(map[uuid.UUID]bool, len(e.Contacts))
		for _, id := range e.Contacts {
			links[id] = true
		}
		eventLinks[e.ID] = links
	}

	var book model.AddressBook
	for i, rec := range r.Contacts {
		var events []uuid.UUID
		for _, id := range rec.Events {
			if eventLinks[id][rec.ID] {
				events = append(events, id)
			}
		}
		c, err := rec.toContact(palette, events)
		if err != nil {
			return model.AddressBook{}, fmt.Errorf("%s: contact %d: %w", config.ErrStorageRecord, i+1, err)
		}
		book.Contacts = append(book.Contacts, c)
	}

	contactLinks := make(map[uuid.UUID]map[uuid.UUID]bool, len(book.Contacts))
	for _, c := range book.Contacts {
		links := make(map[uuid.UUID]bool)
		for _, id := range c.Events() {
			links[id] = true
		}
		contactLinks[c.ID()] = links
	}

	for i, rec := range r.Events {
		var contacts []uuid.UUID
		for _, id := range rec.Contacts {
			if contactIDs[id] && contactLinks[id][rec.ID] {
				contacts = append(contacts, id)
			}
		}
		e, err := rec.toEvent(palette, contacts)
		if err != nil {
			return model.AddressBook{}, fmt.Errorf("%s: event %d: %w", config.ErrStorageRecord, i+1, err)
		}
		book.Events = append(book.Events, e)
	}
	return book, nil
}

func (r contactRecord) toContact(palette *entity.TagPalette, events []uuid.UUID) (entity.Contact, error) {
	var (
		f   entity.ContactFields
		err error
	)
	if f.Name, err = entity.NewName(r.Name); err != nil {
		return entity.Contact{}, err
	}
	if r.Phone != "" {
		if f.Phone, err = entity.NewPhone(r.Phone); err != nil {
			return entity.Contact{}, err
		}
	}
	if r.Email != "" {
		if f.Email, err = entity.NewEmail(r.Email); err != nil {
			return entity.Contact{}, err
		}
	}
	if r.Address != "" {
		if f.Address, err = entity.NewAddress(r.Address); err != nil {
			return entity.Contact{}, err
		}
	}
	if r.Link != "" {
		if f.Link, err = entity.NewLink(r.Link); err != nil {
			return entity.Contact{}, err
		}
	}
	if f.Tags, err = palette.Tags(r.Tags); err != nil {
		return entity.Contact{}, err
	}
	return entity.RestoreContact(r.ID, f, events)
}

func (r eventRecord) toEvent(palette *entity.TagPalette, contacts []uuid.UUID) (entity.Event, error) {
	var (
		f   entity.EventFields
		err error
	)
	if f.Name, err = entity.NewName(r.Name); err != nil {
		return entity.Event{}, err
	}
	if f.Start, err = entity.ParseDateTime(r.Start); err != nil {
		return entity.Event{}, err
	}
	if r.End != "" {
		if f.End, err = entity.ParseDateTime(r.End); err != nil {
			return entity.Event{}, err
		}
	}
	if r.Address != "" {
		if f.Address, err = entity.NewAddress(r.Address); err != nil {
			return entity.Event{}, err
		}
	}
	if r.Description != "" {
		if f.Description, err = entity.NewDescription(r.Description); err != nil {
			return entity.Event{}, err
		}
	}
	if f.Tags, err = palette.Tags(r.Tags); err != nil {
		return entity.Event{}, err
	}
	return entity.RestoreEvent(r.ID, f, contacts)
}

// Package model is the single mutable surface of the application. It
// composes the contact and event lists, the display state and the undo
// history.
package model

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/collection"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/history"
)

var (
	// ErrAlreadyLinked is returned when linking an event and a contact that are already linked.
	ErrAlreadyLinked = errors.New(config.ErrAlreadyLinked)

	// ErrNotLinked is returned when unlinking an event and a contact that are not linked.
	ErrNotLinked = errors.New(config.ErrNotLinked)
)

// AddressBook is an immutable capture of both collections.
// It is what storage persists and what history snapshots.
type AddressBook struct {
	Contacts []entity.Contact
	Events   []entity.Event
}

// HistoryStatus summarizes the undo timeline for display.
type HistoryStatus struct {
	UndoSteps int
	RedoSteps int
}

// Model is the façade used by the command layer.
// It is not safe for concurrent use; all mutation happens on one goroutine.
type Model struct {
	contacts *collection.UniqueList[entity.Contact]
	events   *collection.UniqueList[entity.Event]
	view     display.State
	history  *history.ModelHistory[AddressBook, display.State]
}

// New creates a model holding book, with every column visible and no filter.
// The history starts empty; the caller decides when to commit the baseline.
func New(book AddressBook) (*Model, error) {
	m := &Model{
		contacts: &collection.UniqueList[entity.Contact]{},
		events:   &collection.UniqueList[entity.Event]{},
		view:     display.DefaultState(),
		history:  history.New[AddressBook, display.State](),
	}
	if err := m.SetAddressBook(book); err != nil {
		return nil, err
	}
	return m, nil
}

// -----------------------------------------------------------------------------
// Address Book
// -----------------------------------------------------------------------------

// AddressBook returns a snapshot of both collections.
func (m *Model) AddressBook() AddressBook {
	return AddressBook{Contacts: m.contacts.Items(), Events: m.events.Items()}
}

// SetAddressBook replaces both collections wholesale. Nothing changes if
// book contains duplicates.
func (m *Model) SetAddressBook(book AddressBook) error {
	contacts, err := collection.NewUniqueList(book.Contacts)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLoadContacts, err)
	}
	events, err := collection.NewUniqueList(book.Events)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrLoadEvents, err)
	}
	m.contacts, m.events = contacts, events
	return nil
}

// -----------------------------------------------------------------------------
// Contacts
// -----------------------------------------------------------------------------

// HasContact reports whether a contact with the same identity exists.
func (m *Model) HasContact(c entity.Contact) bool { return m.contacts.Contains(c) }

// Contact looks a contact up by identity token.
func (m *Model) Contact(id uuid.UUID) (entity.Contact, bool) { return m.contacts.Get(id) }

// AddContact appends c. It must not carry event links.
func (m *Model) AddContact(c entity.Contact) error {
	return m.contacts.Add(c)
}

// SetContact replaces target with edited. Links are taken from the stored
// target so an edit can never break link symmetry.
func (m *Model) SetContact(target, edited entity.Contact) error {
	stored, ok := m.contacts.Get(target.ID())
	if !ok {
		return collection.ErrNotFound
	}
	updated, err := stored.WithFields(edited.Fields())
	if err != nil {
		return err
	}
	return m.contacts.Set(stored, updated)
}

// DeleteContact removes c and drops it from every event it was linked to.
func (m *Model) DeleteContact(c entity.Contact) error {
	stored, ok := m.contacts.Get(c.ID())
	if !ok {
		return collection.ErrNotFound
	}
	for _, evID := range stored.Events() {
		if ev, ok := m.events.Get(evID); ok {
			if err := m.events.Set(ev, ev.WithoutContact(stored.ID())); err != nil {
				return err
			}
		}
	}
	return m.contacts.Remove(stored)
}

// FilteredContacts returns the contacts accepted by the active filter, in order.
func (m *Model) FilteredContacts() []entity.Contact {
	return m.contacts.Filter(m.view.ContactFilter.MatchContact)
}

// UpdateFilteredContactList replaces the active contact filter.
func (m *Model) UpdateFilteredContactList(f display.Filter) {
	m.view.ContactFilter = f
}

// ContactFilter returns the active contact filter.
func (m *Model) ContactFilter() display.Filter { return m.view.ContactFilter }

// SortContacts reorders the contact list.
func (m *Model) SortContacts(cmp func(a, b entity.Contact) int) { m.contacts.Sort(cmp) }

// ContactSetting returns the visible contact columns.
func (m *Model) ContactSetting() display.ContactSetting { return m.view.Contact }

// SetContactSetting replaces the visible contact columns.
func (m *Model) SetContactSetting(s display.ContactSetting) { m.view.Contact = s }

// -----------------------------------------------------------------------------
// Events
// -----------------------------------------------------------------------------

// HasEvent reports whether an event with the same identity exists.
func (m *Model) HasEvent(e entity.Event) bool { return m.events.Contains(e) }

// Event looks an event up by identity token.
func (m *Model) Event(id uuid.UUID) (entity.Event, bool) { return m.events.Get(id) }

// AddEvent appends e. It must not carry contact links.
func (m *Model) AddEvent(e entity.Event) error {
	return m.events.Add(e)
}

// SetEvent replaces target with edited, keeping the stored links.
func (m *Model) SetEvent(target, edited entity.Event) error {
	stored, ok := m.events.Get(target.ID())
	if !ok {
		return collection.ErrNotFound
	}
	updated, err := stored.WithFields(edited.Fields())
	if err != nil {
		return err
	}
	return m.events.Set(stored, updated)
}

// DeleteEvent removes e and drops it from every contact it was linked to.
func (m *Model) DeleteEvent(e entity.Event) error {
	stored, ok := m.events.Get(e.ID())
	if !ok {
		return collection.ErrNotFound
	}
	for _, cID := range stored.Contacts() {
		if c, ok := m.contacts.Get(cID); ok {
			if err := m.contacts.Set(c, c.WithoutEvent(stored.ID())); err != nil {
				return err
			}
		}
	}
	return m.events.Remove(stored)
}

// FilteredEvents returns the events accepted by the active filter, in order.
func (m *Model) FilteredEvents() []entity.Event {
	return m.events.Filter(m.view.EventFilter.MatchEvent)
}

// UpdateFilteredEventList replaces the active event filter.
func (m *Model) UpdateFilteredEventList(f display.Filter) {
	m.view.EventFilter = f
}

// EventFilter returns the active event filter.
func (m *Model) EventFilter() display.Filter { return m.view.EventFilter }

// SortEvents reorders the event list.
func (m *Model) SortEvents(cmp func(a, b entity.Event) int) { m.events.Sort(cmp) }

// EventSetting returns the visible event columns.
func (m *Model) EventSetting() display.EventSetting { return m.view.Event }

// SetEventSetting replaces the visible event columns.
func (m *Model) SetEventSetting(s display.EventSetting) { m.view.Event = s }

// -----------------------------------------------------------------------------
// Linking
// -----------------------------------------------------------------------------

// LinkEventAndContact records the link on both sides. Either both entities
// are replaced or neither is.
func (m *Model) LinkEventAndContact(e entity.Event, c entity.Contact) error {
	ev, ct, err := m.lookupPair(e, c)
	if err != nil {
		return err
	}
	if ev.HasContact(ct.ID()) || ct.HasEvent(ev.ID()) {
		return ErrAlreadyLinked
	}
	return m.replacePair(ev, ev.WithContact(ct.ID()), ct, ct.WithEvent(ev.ID()))
}

// UnlinkEventAndContact removes the link from both sides.
func (m *Model) UnlinkEventAndContact(e entity.Event, c entity.Contact) error {
	ev, ct, err := m.lookupPair(e, c)
	if err != nil {
		return err
	}
	if !ev.HasContact(ct.ID()) && !ct.HasEvent(ev.ID()) {
		return ErrNotLinked
	}
	return m.replacePair(ev, ev.WithoutContact(ct.ID()), ct, ct.WithoutEvent(ev.ID()))
}

func (m *Model) lookupPair(e entity.Event, c entity.Contact) (entity.Event, entity.Contact, error) {
	ev, ok := m.events.Get(e.ID())
	if !ok {
		return entity.Event{}, entity.Contact{}, collection.ErrNotFound
	}
	ct, ok := m.contacts.Get(c.ID())
	if !ok {
		return entity.Event{}, entity.Contact{}, collection.ErrNotFound
	}
	return ev, ct, nil
}

// replacePair swaps both entities. Replacing by identity token with a value
// that keeps its key cannot collide, but the event side is rolled back if
// the contact side fails anyway.
func (m *Model) replacePair(oldEv, newEv entity.Event, oldCt, newCt entity.Contact) error {
	if err := m.events.Set(oldEv, newEv); err != nil {
		return err
	}
	if err := m.contacts.Set(oldCt, newCt); err != nil {
		_ = m.events.Set(newEv, oldEv)
		return err
	}
	return nil
}

// -----------------------------------------------------------------------------
// History
// -----------------------------------------------------------------------------

// CommitHistory pushes a snapshot of the current collections and display
// state onto the timeline.
func (m *Model) CommitHistory() {
	m.history.Commit(m.AddressBook(), m.view)
	slog.Debug(config.MsgHistoryCommit,
		config.LogKeyComponent, config.CompModel,
		config.LogKeyCursor, m.history.CurrentSize(),
	)
}

// UndoHistory restores the previous snapshot.
func (m *Model) UndoHistory() error {
	inst, err := m.history.Undo()
	if err != nil {
		return err
	}
	return m.restore(inst)
}

// RedoHistory restores the next snapshot.
func (m *Model) RedoHistory() error {
	inst, err := m.history.Redo()
	if err != nil {
		return err
	}
	return m.restore(inst)
}

// IsUndoable reports whether UndoHistory would succeed.
func (m *Model) IsUndoable() bool { return m.history.IsUndoable() }

// IsRedoable reports whether RedoHistory would succeed.
func (m *Model) IsRedoable() bool { return m.history.IsRedoable() }

// ClearHistory forgets every snapshot.
func (m *Model) ClearHistory() { m.history.ClearHistory() }

// HistoryStatus reports how many undo and redo steps are available.
func (m *Model) HistoryStatus() HistoryStatus {
	cur, ceiling := m.history.CurrentSize(), m.history.MaxSize()
	return HistoryStatus{UndoSteps: max(cur-1, 0), RedoSteps: ceiling - cur}
}

// restore swaps in a snapshot wholesale: collections, settings and filters.
func (m *Model) restore(inst history.Instance[AddressBook, display.State]) error {
	if err := m.SetAddressBook(inst.Collections); err != nil {
		return err
	}
	m.view = inst.Display
	slog.Debug(config.MsgHistoryRestore,
		config.LogKeyComponent, config.CompModel,
		config.LogKeyCursor, m.history.CurrentSize(),
	)
	return nil
}

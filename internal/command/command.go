// Package command parses the text commands typed by the user and executes
// them against the model.
package command

import (
	"context"
	"errors"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/collection"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
	"golang.org/x/text/collate"
)

// Command is a parsed, validated user request.
type Command interface {
	Kind() Kind
	Execute(ctx context.Context, env *Env) (Result, error)
}

// Importer reads contacts from a vCard source.
type Importer interface {
	Import(ctx context.Context, source, user string) ([]entity.Contact, error)
}

// Exporter writes contacts or events to a file.
type Exporter interface {
	ExportContacts(path string, contacts []entity.Contact) error
	ExportEvents(path string, book model.AddressBook) error
}

// Env is what commands execute against.
type Env struct {
	Model    *model.Model
	Importer Importer
	Exporter Exporter

	// Collator orders contact names. Nil falls back to a case-insensitive
	// byte comparison.
	Collator *collate.Collator

	// DefaultImportUser is used when import is given no u/ prefix.
	DefaultImportUser string
}

func (env *Env) compareNames(a, b string) int {
	if env.Collator != nil {
		return env.Collator.CompareString(a, b)
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// -----------------------------------------------------------------------------
// Edits
// -----------------------------------------------------------------------------

// ContactEdit lists the contact fields to replace. Nil leaves a field as
// is; a pointer to the zero value clears it.
type ContactEdit struct {
	Name    *entity.Name
	Phone   *entity.Phone
	Email   *entity.Email
	Address *entity.Address
	Link    *entity.Link
	Tags    *[]entity.Tag
}

func (e ContactEdit) apply(f entity.ContactFields) entity.ContactFields {
	if e.Name != nil {
		f.Name = *e.Name
	}
	if e.Phone != nil {
		f.Phone = *e.Phone
	}
	if e.Email != nil {
		f.Email = *e.Email
	}
	if e.Address != nil {
		f.Address = *e.Address
	}
	if e.Link != nil {
		f.Link = *e.Link
	}
	if e.Tags != nil {
		f.Tags = *e.Tags
	}
	return f
}

// EventEdit lists the event fields to replace.
type EventEdit struct {
	Name        *entity.Name
	Start       *entity.DateTime
	End         *entity.DateTime
	Address     *entity.Address
	Description *entity.Description
	Tags        *[]entity.Tag
}

func (e EventEdit) apply(f entity.EventFields) entity.EventFields {
	if e.Name != nil {
		f.Name = *e.Name
	}
	if e.Start != nil {
		f.Start = *e.Start
	}
	if e.End != nil {
		f.End = *e.End
	}
	if e.Address != nil {
		f.Address = *e.Address
	}
	if e.Description != nil {
		f.Description = *e.Description
	}
	if e.Tags != nil {
		f.Tags = *e.Tags
	}
	return f
}

// -----------------------------------------------------------------------------
// Index resolution
// -----------------------------------------------------------------------------

func at[T any](items []T, index int) (T, error) {
	if index < 1 || index > len(items) {
		var zero T
		return zero, fail(config.TKeyErrInvalidIndex, map[string]any{"Index": index}, ErrInvalidIndex)
	}
	return items[index-1], nil
}

func contactAt(m *model.Model, index int) (entity.Contact, error) {
	return at(m.FilteredContacts(), index)
}

func eventAt(m *model.Model, index int) (entity.Event, error) {
	return at(m.FilteredEvents(), index)
}

func duplicateOr(err error, id string) error {
	if errors.Is(err, collection.ErrDuplicate) {
		return fail(id, nil, err)
	}
	return err
}

// -----------------------------------------------------------------------------
// Add
// -----------------------------------------------------------------------------

// AddContact appends a new contact and clears the contact filter so it is
// visible.
type AddContact struct {
	Contact entity.Contact
}

// Kind implements Command.
func (AddContact) Kind() Kind { return KindAddContact }

// Execute implements Command. It fails with a duplicate error when the name is taken.
func (c AddContact) Execute(_ context.Context, env *Env) (Result, error) {
	if err := env.Model.AddContact(c.Contact); err != nil {
		return Result{}, duplicateOr(err, config.TKeyErrDuplicateContact)
	}
	env.Model.UpdateFilteredContactList(display.Filter{})
	return resultOf(config.TKeyContactAdded, map[string]any{"Name": c.Contact.Name().String()}, ViewContacts), nil
}

// AddEvent appends a new event and clears the event filter.
type AddEvent struct {
	Event entity.Event
}

// Kind implements Command.
func (AddEvent) Kind() Kind { return KindAddEvent }

// Execute implements Command. It fails when an event with the same name starts at the same instant.
func (c AddEvent) Execute(_ context.Context, env *Env) (Result, error) {
	if err := env.Model.AddEvent(c.Event); err != nil {
		return Result{}, duplicateOr(err, config.TKeyErrDuplicateEvent)
	}
	env.Model.UpdateFilteredEventList(display.Filter{})
	return resultOf(config.TKeyEventAdded, map[string]any{"Name": c.Event.Name().String()}, ViewEvents), nil
}

// -----------------------------------------------------------------------------
// Edit
// -----------------------------------------------------------------------------

// EditContact replaces fields of the contact at Index in the displayed list.
type EditContact struct {
	Index int
	Edit  ContactEdit
}

// Kind implements Command.
func (EditContact) Kind() Kind { return KindEditContact }

// Execute implements Command. It keeps the identity token and event links of the contact.
func (c EditContact) Execute(_ context.Context, env *Env) (Result, error) {
	target, err := contactAt(env.Model, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited, err := target.WithFields(c.Edit.apply(target.Fields()))
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.SetContact(target, edited); err != nil {
		return Result{}, duplicateOr(err, config.TKeyErrDuplicateContact)
	}
	env.Model.UpdateFilteredContactList(display.Filter{})
	return resultOf(config.TKeyContactEdited, map[string]any{"Name": edited.Name().String()}, ViewContacts), nil
}

// EditEvent replaces fields of the event at Index in the displayed list.
type EditEvent struct {
	Index int
	Edit  EventEdit
}

// Kind implements Command.
func (EditEvent) Kind() Kind { return KindEditEvent }

// Execute implements Command. It keeps the identity token and contact links of the event.
func (c EditEvent) Execute(_ context.Context, env *Env) (Result, error) {
	target, err := eventAt(env.Model, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited, err := target.WithFields(c.Edit.apply(target.Fields()))
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.SetEvent(target, edited); err != nil {
		return Result{}, duplicateOr(err, config.TKeyErrDuplicateEvent)
	}
	env.Model.UpdateFilteredEventList(display.Filter{})
	return resultOf(config.TKeyEventEdited, map[string]any{"Name": edited.Name().String()}, ViewEvents), nil
}

// -----------------------------------------------------------------------------
// Delete
// -----------------------------------------------------------------------------

// DeleteContact removes the contact at Index and its links.
type DeleteContact struct {
	Index int
}

// Kind implements Command.
func (DeleteContact) Kind() Kind { return KindDeleteContact }

// Execute implements Command. It also unlinks the contact from its events.
func (c DeleteContact) Execute(_ context.Context, env *Env) (Result, error) {
	target, err := contactAt(env.Model, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.DeleteContact(target); err != nil {
		return Result{}, err
	}
	return resultOf(config.TKeyContactDeleted, map[string]any{"Name": target.Name().String()}, ViewAll), nil
}

// DeleteEvent removes the event at Index and its links.
type DeleteEvent struct {
	Index int
}

// Kind implements Command.
func (DeleteEvent) Kind() Kind { return KindDeleteEvent }

// Execute implements Command. It also unlinks the event from its contacts.
func (c DeleteEvent) Execute(_ context.Context, env *Env) (Result, error) {
	target, err := eventAt(env.Model, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.DeleteEvent(target); err != nil {
		return Result{}, err
	}
	return resultOf(config.TKeyEventDeleted, map[string]any{"Name": target.Name().String()}, ViewAll), nil
}

// -----------------------------------------------------------------------------
// Link
// -----------------------------------------------------------------------------

// Link records that the contact at Contact attends the event at Event.
type Link struct {
	Event   int
	Contact int
}

// Kind implements Command.
func (Link) Kind() Kind { return KindLink }

// Execute implements Command. It fails when the pair is already linked.
func (c Link) Execute(_ context.Context, env *Env) (Result, error) {
	ev, ct, err := resolvePair(env.Model, c.Event, c.Contact)
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.LinkEventAndContact(ev, ct); err != nil {
		return Result{}, err
	}
	return resultOf(config.TKeyLinked, pairData(ev, ct), ViewAll), nil
}

// Unlink removes a link created by Link.
type Unlink struct {
	Event   int
	Contact int
}

// Kind implements Command.
func (Unlink) Kind() Kind { return KindUnlink }

// Execute implements Command. It fails when the pair is not linked.
func (c Unlink) Execute(_ context.Context, env *Env) (Result, error) {
	ev, ct, err := resolvePair(env.Model, c.Event, c.Contact)
	if err != nil {
		return Result{}, err
	}
	if err := env.Model.UnlinkEventAndContact(ev, ct); err != nil {
		return Result{}, err
	}
	return resultOf(config.TKeyUnlinked, pairData(ev, ct), ViewAll), nil
}

func resolvePair(m *model.Model, evIndex, cIndex int) (entity.Event, entity.Contact, error) {
	ev, err := eventAt(m, evIndex)
	if err != nil {
		return entity.Event{}, entity.Contact{}, err
	}
	ct, err := contactAt(m, cIndex)
	if err != nil {
		return entity.Event{}, entity.Contact{}, err
	}
	return ev, ct, nil
}

func pairData(ev entity.Event, ct entity.Contact) map[string]any {
	return map[string]any{"Event": ev.Name().String(), "Contact": ct.Name().String()}
}

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/display"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/i18n"
)

// FindContacts narrows the displayed contacts.
type FindContacts struct {
	Filter display.Filter
}

// Kind implements Command.
func (FindContacts) Kind() Kind { return KindFindContact }

// Execute implements Command. It replaces the contact filter.
func (c FindContacts) Execute(_ context.Context, env *Env) (Result, error) {
	env.Model.UpdateFilteredContactList(c.Filter)
	return contactsListed(env), nil
}

// FindEvents narrows the displayed events.
type FindEvents struct {
	Filter display.Filter
}

// Kind implements Command.
func (FindEvents) Kind() Kind { return KindFindEvent }

// Execute implements Command. It replaces the event filter.
func (c FindEvents) Execute(_ context.Context, env *Env) (Result, error) {
	env.Model.UpdateFilteredEventList(c.Filter)
	return eventsListed(env), nil
}

func contactsListed(env *Env) Result {
	n := len(env.Model.FilteredContacts())
	return Result{Message: i18n.NewPlural(config.TKeyContactsListed, n, nil), View: ViewContacts}
}

func eventsListed(env *Env) Result {
	n := len(env.Model.FilteredEvents())
	return Result{Message: i18n.NewPlural(config.TKeyEventsListed, n, nil), View: ViewEvents}
}

// List removes the filter of one list, or of both.
type List struct {
	Target Target
}

// Kind implements Command.
func (List) Kind() Kind { return KindList }

// Execute implements Command. It resets the filters named by Target.
func (c List) Execute(_ context.Context, env *Env) (Result, error) {
	switch c.Target {
	case ContactList:
		env.Model.UpdateFilteredContactList(display.Filter{})
		return contactsListed(env), nil
	case EventList:
		env.Model.UpdateFilteredEventList(display.Filter{})
		return eventsListed(env), nil
	}
	env.Model.UpdateFilteredContactList(display.Filter{})
	env.Model.UpdateFilteredEventList(display.Filter{})
	return resultOf(config.TKeyListedAll, nil, ViewAll), nil
}

// ChangeDisplay shows or hides columns of one list. Either every field is
// applied or none is.
type ChangeDisplay struct {
	Target  Target
	Fields  []string
	Visible bool
}

// Kind implements Command.
func (c ChangeDisplay) Kind() Kind {
	if c.Visible {
		return KindShow
	}
	return KindHide
}

// Execute implements Command. It updates the settings of the target list.
func (c ChangeDisplay) Execute(_ context.Context, env *Env) (Result, error) {
	if c.Target == EventList {
		s := env.Model.EventSetting()
		for _, f := range c.Fields {
			var err error
			if s, err = s.WithField(f, c.Visible); err != nil {
				return Result{}, unknownField(f, display.EventFields(), err)
			}
		}
		env.Model.SetEventSetting(s)
		return resultOf(config.TKeyColumnsUpdated, nil, ViewEvents), nil
	}

	s := env.Model.ContactSetting()
	for _, f := range c.Fields {
		var err error
		if s, err = s.WithField(f, c.Visible); err != nil {
			return Result{}, unknownField(f, display.ContactFields(), err)
		}
	}
	env.Model.SetContactSetting(s)
	return resultOf(config.TKeyColumnsUpdated, nil, ViewContacts), nil
}

func unknownField(field string, known []string, err error) error {
	if !errors.Is(err, display.ErrUnknownField) {
		return err
	}
	return fail(config.TKeyErrUnknownField, map[string]any{
		"Field":  field,
		"Fields": strings.Join(known, ", "),
	}, err)
}

// SortContacts orders contacts by name using the collator of the active
// language.
type SortContacts struct{}

// Kind implements Command.
func (SortContacts) Kind() Kind { return KindSortContact }

// Execute implements Command. It reorders the stored contacts, not only the view.
func (SortContacts) Execute(_ context.Context, env *Env) (Result, error) {
	env.Model.SortContacts(func(a, b entity.Contact) int {
		return env.compareNames(a.Name().String(), b.Name().String())
	})
	return resultOf(config.TKeyContactsSorted, nil, ViewContacts), nil
}

// SortEvents orders events by start time, then by name.
type SortEvents struct{}

// Kind implements Command.
func (SortEvents) Kind() Kind { return KindSortEvent }

// Execute implements Command. It reorders the stored events, not only the view.
func (SortEvents) Execute(_ context.Context, env *Env) (Result, error) {
	env.Model.SortEvents(func(a, b entity.Event) int {
		if c := a.Start().Time().Compare(b.Start().Time()); c != 0 {
			return c
		}
		return env.compareNames(a.Name().String(), b.Name().String())
	})
	return resultOf(config.TKeyEventsSorted, nil, ViewEvents), nil
}

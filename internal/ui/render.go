package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/i18n"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// Renderer turns model state and command outcomes into terminal text in
// the active language. Hidden columns are left out.
type Renderer struct {
	T *i18n.Translator
}

// NewRenderer returns a renderer translating through t.
func NewRenderer(t *i18n.Translator) *Renderer {
	return &Renderer{T: t}
}

// Result renders the message of a successful command.
func (r *Renderer) Result(res command.Result) string {
	return statusStyle.Render(r.T.Localize(res.Message))
}

// Failure renders a command error. Errors that are not failures are shown
// verbatim.
func (r *Renderer) Failure(err error) string {
	return errorStyle.Render(r.FailureText(err))
}

// FailureText is Failure without terminal styling.
func (r *Renderer) FailureText(err error) string {
	var f *command.Failure
	if errors.As(err, &f) {
		return r.T.Localize(f.Message)
	}
	return err.Error()
}

// History renders the undo/redo counters.
func (r *Renderer) History(st model.HistoryStatus) string {
	return labelStyle.Render(r.T.Msg(config.TKeyLblHistory, map[string]any{"Undo": st.UndoSteps, "Redo": st.RedoSteps}))
}

// View renders the lists named by v.
func (r *Renderer) View(m *model.Model, v command.View) string {
	switch v {
	case command.ViewContacts:
		return r.Contacts(m)
	case command.ViewEvents:
		return r.Events(m)
	case command.ViewAll:
		return r.Contacts(m) + "\n\n" + r.Events(m)
	}
	return ""
}

// Contacts renders the filtered contact list.
func (r *Renderer) Contacts(m *model.Model) string {
	var b strings.Builder
	b.WriteString(r.header(config.TKeyLblContacts, m.ContactFilter().String()))

	contacts := m.FilteredContacts()
	if len(contacts) == 0 {
		b.WriteString("\n" + mutedStyle.Render(r.T.Msg(config.TKeyLblEmpty, nil)))
		return b.String()
	}

	s := m.ContactSetting()
	for i, c := range contacts {
		b.WriteString("\n" + r.entry(i+1, c.Name().String(), s.Tags, c.Tags()))
		r.field(&b, s.Phone, config.TKeyLblPhone, c.Phone().String())
		r.field(&b, s.Email, config.TKeyLblEmail, c.Email().String())
		r.field(&b, s.Address, config.TKeyLblAddress, c.Address().String())
		r.field(&b, s.Link, config.TKeyLblLink, c.Link().String())
		r.field(&b, s.Events, config.TKeyLblLinkedEvents, eventNames(m, c.Events()))
	}
	return b.String()
}

// Events renders the filtered event list.
func (r *Renderer) Events(m *model.Model) string {
	var b strings.Builder
	b.WriteString(r.header(config.TKeyLblEvents, m.EventFilter().String()))

	events := m.FilteredEvents()
	if len(events) == 0 {
		b.WriteString("\n" + mutedStyle.Render(r.T.Msg(config.TKeyLblEmpty, nil)))
		return b.String()
	}

	s := m.EventSetting()
	for i, e := range events {
		b.WriteString("\n" + r.entry(i+1, e.Name().String(), s.Tags, e.Tags()))
		r.field(&b, s.Time, config.TKeyLblTime, period(e))
		r.field(&b, s.Address, config.TKeyLblAddress, e.Address().String())
		r.field(&b, s.Description, config.TKeyLblDescription, e.Description().String())
		r.field(&b, s.Contacts, config.TKeyLblLinkedContacts, contactNames(m, e.Contacts()))
	}
	return b.String()
}

func (r *Renderer) header(key, filter string) string {
	h := titleStyle.Render(r.T.Msg(key, nil))
	if filter != "" {
		h += " " + mutedStyle.Render(r.T.Msg(config.TKeyLblFilter, map[string]any{"Filter": filter}))
	}
	return h
}

func (r *Renderer) entry(index int, name string, showTags bool, tags []entity.Tag) string {
	line := indexStyle.Render(fmt.Sprintf("%d.", index)) + " " + nameStyle.Render(name)
	if showTags {
		for _, t := range tags {
			line += " " + tagStyle(t.Color()).Render("#"+t.Label())
		}
	}
	return line
}

func (r *Renderer) field(b *strings.Builder, visible bool, key, value string) {
	if !visible || value == "" {
		return
	}
	b.WriteString("\n   " + labelStyle.Render(r.T.Msg(key, nil)+":") + " " + value)
}

func period(e entity.Event) string {
	if e.End().IsZero() {
		return e.Start().String()
	}
	return e.Start().String() + " - " + e.End().String()
}

func eventNames(m *model.Model, ids []uuid.UUID) string {
	var names []string
	for _, id := range ids {
		if e, ok := m.Event(id); ok {
			names = append(names, e.Name().String())
		}
	}
	return strings.Join(names, ", ")
}

func contactNames(m *model.Model, ids []uuid.UUID) string {
	var names []string
	for _, id := range ids {
		if c, ok := m.Contact(id); ok {
			names = append(names, c.Name().String())
		}
	}
	return strings.Join(names, ", ")
}

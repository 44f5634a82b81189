// Package display holds the small value objects that describe how the
// contact and event lists are shown: visible columns and active filters.
package display

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// ErrUnknownField is returned when a column name is not recognised.
var ErrUnknownField = errors.New(config.ErrUnknownField)

// ContactSetting lists which optional contact columns are visible.
// The name is always shown. Settings are plain comparable values.
type ContactSetting struct {
	Phone   bool
	Email   bool
	Address bool
	Link    bool
	Tags    bool
	Events  bool
}

// DefaultContactSetting shows every column.
func DefaultContactSetting() ContactSetting {
	return ContactSetting{Phone: true, Email: true, Address: true, Link: true, Tags: true, Events: true}
}

// WithField returns a copy with the named column shown or hidden.
func (s ContactSetting) WithField(field string, visible bool) (ContactSetting, error) {
	switch field {
	case config.FieldPhone:
		s.Phone = visible
	case config.FieldEmail:
		s.Email = visible
	case config.FieldAddress:
		s.Address = visible
	case config.FieldLink:
		s.Link = visible
	case config.FieldTags:
		s.Tags = visible
	case config.FieldEvents:
		s.Events = visible
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s, nil
}

// ContactFields lists the column names accepted by ContactSetting.WithField.
func ContactFields() []string {
	return []string{config.FieldPhone, config.FieldEmail, config.FieldAddress, config.FieldLink, config.FieldTags, config.FieldEvents}
}

// EventSetting lists which optional event columns are visible.
type EventSetting struct {
	Time        bool
	Address     bool
	Description bool
	Tags        bool
	Contacts    bool
}

// DefaultEventSetting shows every column.
func DefaultEventSetting() EventSetting {
	return EventSetting{Time: true, Address: true, Description: true, Tags: true, Contacts: true}
}

// WithField returns a copy with the named column shown or hidden.
func (s EventSetting) WithField(field string, visible bool) (EventSetting, error) {
	switch field {
	case config.FieldTime:
		s.Time = visible
	case config.FieldAddress:
		s.Address = visible
	case config.FieldDescription:
		s.Description = visible
	case config.FieldTags:
		s.Tags = visible
	case config.FieldContacts:
		s.Contacts = visible
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s, nil
}

// EventFields lists the column names accepted by EventSetting.WithField.
func EventFields() []string {
	return []string{config.FieldTime, config.FieldAddress, config.FieldDescription, config.FieldTags, config.FieldContacts}
}

// State is everything about the presentation that undo and redo restore.
type State struct {
	Contact       ContactSetting
	Event         EventSetting
	ContactFilter Filter
	EventFilter   Filter
}

// DefaultState shows all columns and all entities.
func DefaultState() State {
	return State{Contact: DefaultContactSetting(), Event: DefaultEventSetting()}
}

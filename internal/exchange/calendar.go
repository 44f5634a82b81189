package exchange

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// CalendarGenerator converts the events of an address book into an
// iCalendar feed.
type CalendarGenerator struct {
	Clock Clock

	// Reminder is an ISO 8601 duration (e.g. "-PT15M") used as the trigger
	// of a DISPLAY alarm on every event. Empty disables alarms.
	Reminder string
}

// Generate renders book.Events. Linked contacts that have an email address
// become attendees. An address book without events yields a valid empty
// calendar.
func (g *CalendarGenerator) Generate(book model.AddressBook) ([]byte, error) {
	if len(book.Events) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.Clock.Now().UTC())

	contacts := make(map[string]entity.Contact, len(book.Contacts))
	for _, c := range book.Contacts {
		contacts[c.ID().String()] = c
	}

	for _, e := range book.Events {
		event := g.createEvent(e, contacts)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyEvents, len(book.Events),
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

func (g *CalendarGenerator) createEvent(e entity.Event, contacts map[string]entity.Contact) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.ID(), config.ICalDomain))
	event.Props.SetText(config.PropSummary, e.Name().String())

	event.Props.Set(dateProp(config.PropDTStart, e.Start()))
	if !e.End().IsZero() {
		event.Props.Set(dateProp(config.PropDTEnd, e.End()))
	}
	if !e.Address().IsZero() {
		event.Props.SetText(config.PropLocation, e.Address().String())
	}
	if !e.Description().IsZero() {
		event.Props.SetText(config.PropDescription, e.Description().String())
	}
	if labels := entity.TagLabels(e.Tags()); len(labels) > 0 {
		categories := ical.NewProp(config.PropCategories)
		categories.Value = strings.Join(labels, ",")
		event.Props.Set(categories)
	}

	for _, id := range e.Contacts() {
		c, ok := contacts[id.String()]
		if !ok || c.Email().IsZero() {
			continue
		}
		attendee := ical.NewProp(config.PropAttendee)
		attendee.Value = config.MailtoPrefix + c.Email().String()
		attendee.Params.Set(config.ParamCN, c.Name().String())
		event.Props.Add(attendee)
	}

	if g.Reminder != "" {
		addAlarm(event, g.Reminder, e.Name().String())
	}
	return event
}

// dateProp uses a DATE value for all-day instants and a floating
// DATE-TIME otherwise. Wall-clock times carry no TZID, matching how they
// were entered.
func dateProp(name string, d entity.DateTime) *ical.Prop {
	prop := ical.NewProp(name)
	if d.DateOnly() {
		prop.SetDate(d.Time())
	} else {
		prop.Value = d.Time().Format(config.ICalFloatingLayout)
	}
	return prop
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

package server

import (
	"log/slog"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// CalendarSource renders an address book as iCalendar.
type CalendarSource interface {
	Generate(book model.AddressBook) ([]byte, error)
}

// Publisher regenerates the feed whenever the address book changes.
// It satisfies command.ChangeListener.
type Publisher struct {
	Server    *FeedServer
	Generator CalendarSource
}

// AddressBookChanged renders book and hands it to the server. A rendering
// failure keeps the previous feed online.
func (p *Publisher) AddressBookChanged(book model.AddressBook) {
	data, err := p.Generator.Generate(book)
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		return
	}
	p.Server.Update(data)
}

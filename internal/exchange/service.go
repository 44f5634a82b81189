// Package exchange moves address book data in and out of the standard
// interchange formats: vCard for contacts and iCalendar for events.
package exchange

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// Service imports contacts from local or remote vCard sources and writes
// export files.
type Service struct {
	Decoder     *ContactDecoder
	Fetcher     Fetcher
	Credentials CredentialStore
	Calendar    *CalendarGenerator
}

// NewService wires the production collaborators.
func NewService(palette *entity.TagPalette, reminder string) *Service {
	return &Service{
		Decoder:     &ContactDecoder{Palette: palette},
		Fetcher:     NewHTTPFetcher(),
		Credentials: NewKeyringStore(),
		Calendar:    &CalendarGenerator{Clock: RealClock{}, Reminder: reminder},
	}
}

// Import reads the contacts of source. A source starting with http:// or
// https:// is downloaded, authenticating as user with the password from
// the credential store; anything else is opened as a local file.
func (s *Service) Import(ctx context.Context, source, user string) ([]entity.Contact, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompExchange,
		config.LogKeySource, source,
	)
	log.InfoContext(ctx, config.MsgImportStarted)

	reader, err := s.acquireStream(ctx, source, user)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contacts, stats, err := s.Decoder.Decode(ctx, reader)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgImportDone,
		config.LogKeyCount, stats.Imported,
		config.LogKeySkipped, stats.Skipped,
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return contacts, nil
}

func (s *Service) acquireStream(ctx context.Context, source, user string) (io.ReadCloser, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New(config.ErrSourceEmpty)
	}
	if !isRemote(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrSourceOpen, err)
		}
		return f, nil
	}
	if s.Fetcher == nil {
		return nil, errors.New(config.ErrFetcherMissing)
	}
	var pass string
	if s.Credentials != nil {
		p, err := s.Credentials.Password(user)
		if err != nil {
			return nil, err
		}
		pass = p
	}
	return s.Fetcher.Fetch(ctx, source, user, pass)
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, config.SchemeHTTP+"://") || strings.HasPrefix(lower, config.SchemeHTTPS+"://")
}

// ExportContacts writes contacts to path as vCard 4.0.
func (s *Service) ExportContacts(path string, contacts []entity.Contact) error {
	var buf bytes.Buffer
	if err := EncodeContacts(&buf, contacts); err != nil {
		return err
	}
	return writeExport(path, buf.Bytes(), len(contacts))
}

// ExportEvents writes the events of book to path as iCalendar.
func (s *Service) ExportEvents(path string, book model.AddressBook) error {
	data, err := s.Calendar.Generate(book)
	if err != nil {
		return err
	}
	return writeExport(path, data, len(book.Events))
}

func writeExport(path string, data []byte, count int) error {
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}
	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyPath, path,
		config.LogKeyCount, count,
		config.LogKeySizeBytes, len(data))
	return nil
}

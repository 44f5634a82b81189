// Package storage persists the address book as a single JSON document.
// The file is read once at start-up and written once on exit.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// Storage loads and saves whole address books.
type Storage interface {
	Load() (model.AddressBook, error)
	Save(book model.AddressBook) error
}

// JSONStorage keeps the address book in a JSON file.
type JSONStorage struct {
	Path    string
	Palette *entity.TagPalette
}

// NewJSONStorage stores at path, colouring tags with palette on load.
func NewJSONStorage(path string, palette *entity.TagPalette) *JSONStorage {
	return &JSONStorage{Path: path, Palette: palette}
}

// Load reads the file. A missing file is an empty address book.
func (s *JSONStorage) Load() (model.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, s.Path,
	)

	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgStorageMissing)
		return model.AddressBook{}, nil
	}
	if err != nil {
		return model.AddressBook{}, fmt.Errorf("%s: %w", config.ErrStorageRead, err)
	}

	var rec bookRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.AddressBook{}, fmt.Errorf("%s: %w", config.ErrStorageDecode, err)
	}

	book, err := rec.toAddressBook(s.Palette)
	if err != nil {
		return model.AddressBook{}, err
	}

	log.Info(config.MsgStorageLoaded,
		config.LogKeyContacts, len(book.Contacts),
		config.LogKeyEvents, len(book.Events))
	return book, nil
}

// Save writes book atomically: a temporary file in the same directory is
// synced and then renamed over the target.
func (s *JSONStorage) Save(book model.AddressBook) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	data, err := json.MarshalIndent(fromAddressBook(book), "", config.StorageIndent)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageEncode, err)
	}

	tmpFile, err := os.CreateTemp(dir, config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}
	tmpPath := tmpFile.Name()

	fail := func(err error) error {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		return fail(err)
	}
	if err := tmpFile.Chmod(config.FilePermUserRW); err != nil {
		return fail(err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fail(err)
	}
	_ = tmpFile.Close()

	if err := os.Rename(tmpPath, s.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%s: %w", config.ErrStorageWrite, err)
	}

	slog.Info(config.MsgStorageSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, s.Path,
		config.LogKeySizeBytes, len(data))
	return nil
}

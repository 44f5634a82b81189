package exchange

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/zalando/go-keyring"
)

// CredentialStore returns the password used to import from a remote source.
type CredentialStore interface {
	Password(user string) (string, error)
}

// KeyringStore keeps import passwords in the operating system keyring.
type KeyringStore struct {
	Service string
}

// NewKeyringStore uses the application keyring service name.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{Service: config.KeyringService}
}

// Password returns the stored password for user. A missing entry yields
// an empty password so anonymous sources keep working.
func (k *KeyringStore) Password(user string) (string, error) {
	if user == "" {
		return "", nil
	}
	pass, err := keyring.Get(k.Service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompExchange,
			config.LogKeyUser, user)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return pass, nil
}

// SetPassword stores pass for user.
func (k *KeyringStore) SetPassword(user, pass string) error {
	if err := keyring.Set(k.Service, user, pass); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return nil
}

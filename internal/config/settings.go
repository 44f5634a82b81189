package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Settings holds the user preferences read from the TOML settings file.
type Settings struct {
	// DataFile is the address book location. A leading ~ is expanded.
	DataFile string `toml:"data_file"`

	// Language is a BCP 47 tag; only SupportedLanguages are accepted.
	Language string `toml:"language"`

	// ServerPort enables the localhost calendar feed when set.
	ServerPort string `toml:"server_port,omitempty"`

	// Reminder is the ISO 8601 alarm trigger added to exported events.
	Reminder string `toml:"reminder,omitempty"`

	// Palette overrides DefaultTagColors.
	Palette []string `toml:"palette,omitempty"`

	// Undoable lists the command kinds that create an undo step.
	// Nil keeps the built-in policy.
	Undoable []string `toml:"undoable,omitempty"`

	// ImportUser is the default account for remote imports.
	ImportUser string `toml:"import_user,omitempty"`
}

// DefaultSettings returns the built-in preferences.
func DefaultSettings() Settings {
	s := Settings{
		Language:   DefaultLanguage,
		ServerPort: DefaultPort,
	}
	if dir, err := AppConfigDir(); err == nil {
		s.DataFile = filepath.Join(dir, DataFileName)
	} else {
		s.DataFile = DataFileName
	}
	return s
}

// AppConfigDir returns the per-user application directory.
func AppConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, AppID), nil
}

// DefaultSettingsPath returns where the settings file lives when -config is not given.
func DefaultSettingsPath() (string, error) {
	dir, err := AppConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// LoadSettings reads path on top of DefaultSettings. A missing file is not
// an error. The result is validated.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info(MsgSettingsMissing,
			LogKeyComponent, CompSettings,
			LogKeyPath, path)
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	if _, err := toml.Decode(string(data), &s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrSettingsDecode, err)
	}
	s.DataFile = expandPath(s.DataFile)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the settings to path, creating the directory if needed.
func (s Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	return nil
}

// Validate checks the port, language and reminder values.
func (s Settings) Validate() error {
	if s.ServerPort != "" {
		if err := ValidatePort(s.ServerPort); err != nil {
			return err
		}
	}
	if _, err := MatchLanguage(s.Language); err != nil {
		return err
	}
	if !IsValidReminder(s.Reminder) {
		return fmt.Errorf("%s: %q", ErrReminder, s.Reminder)
	}
	return nil
}

// ValidatePort accepts decimal ports in [MinPort, MaxPort].
func ValidatePort(s string) error {
	if s == "" {
		return errors.New(ErrPortRequired)
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(ErrPortNumber)
	}
	if port < MinPort || port > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// MatchLanguage parses tag and returns the supported base language it
// names ("fr-CH" gives "fr"). An empty tag selects DefaultLanguage.
func MatchLanguage(tag string) (string, error) {
	if tag == "" {
		return DefaultLanguage, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrLanguage, err)
	}
	base, _ := t.Base()
	if !slices.Contains(SupportedLanguages, base.String()) {
		return "", fmt.Errorf("%s: %q", ErrLanguage, tag)
	}
	return base.String(), nil
}

// IsValidReminder reports whether s looks like an ISO 8601 duration
// ("-P1D", "-PT15M"). Empty means no reminder.
func IsValidReminder(s string) bool {
	if s == "" {
		return true
	}
	rest, ok := strings.CutPrefix(s, ISONegativePrefix)
	if !ok {
		rest, ok = strings.CutPrefix(s, ISOPeriodPrefix)
	}
	if !ok || rest == "" {
		return false
	}
	return strings.Trim(rest, "0123456789WDTHMS") == ""
}

// expandPath expands ~ to the home directory.
func expandPath(path string) string {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return path
}

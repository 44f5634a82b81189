package entity

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// -----------------------------------------------------------------------------
// Validation Patterns
// -----------------------------------------------------------------------------

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} '.\-]*$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]*$`)
	// Local part: alphanumerics separated by single special characters.
	// Domain: dot separated labels, last label at least two characters.
	emailPattern = regexp.MustCompile(
		`^[\p{L}\p{N}]+([+_.\-][\p{L}\p{N}]+)*@` +
			`([\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])?\.)*[\p{L}\p{N}]([\p{L}\p{N}\-]*[\p{L}\p{N}])$`)
)

// -----------------------------------------------------------------------------
// Name
// -----------------------------------------------------------------------------

// Name is the display name of a contact or event. It is the identity key of a contact.
type Name struct{ value string }

// IsValidName reports whether s is an acceptable name.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(s) <= config.MaxNameLength && namePattern.MatchString(s)
}

// NewName trims and validates s.
func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if !IsValidName(s) {
		return Name{}, invalid(config.FieldName, s, config.ReasonName)
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Words splits the name on whitespace, for keyword matching.
func (n Name) Words() []string { return strings.Fields(n.value) }

// -----------------------------------------------------------------------------
// Phone
// -----------------------------------------------------------------------------

// Phone is an optional phone number. The zero value means "not set".
type Phone struct{ value string }

// IsValidPhone reports whether s looks like a dialable number.
func IsValidPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= config.MinPhoneDigits
}

// NewPhone trims and validates s.
func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !IsValidPhone(s) {
		return Phone{}, invalid(config.FieldPhone, s, config.ReasonPhone)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// IsZero reports whether the phone is unset.
func (p Phone) IsZero() bool { return p.value == "" }

// -----------------------------------------------------------------------------
// Email
// -----------------------------------------------------------------------------

// Email is an optional e-mail address.
type Email struct{ value string }

// IsValidEmail reports whether s has the local@domain shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NewEmail trims and validates s.
func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !IsValidEmail(s) {
		return Email{}, invalid(config.FieldEmail, s, config.ReasonEmail)
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether the email is unset.
func (e Email) IsZero() bool { return e.value == "" }

// -----------------------------------------------------------------------------
// Address
// -----------------------------------------------------------------------------

// Address is an optional postal address or venue. Any non-blank text is accepted.
type Address struct{ value string }

// IsValidAddress reports whether s is non-blank.
func IsValidAddress(s string) bool { return strings.TrimSpace(s) != "" }

// NewAddress trims and validates s.
func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if !IsValidAddress(s) {
		return Address{}, invalid(config.FieldAddress, s, config.ReasonBlank)
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool { return a.value == "" }

// -----------------------------------------------------------------------------
// Link
// -----------------------------------------------------------------------------

// Link is an optional web address (social profile, homepage...).
type Link struct{ value string }

// IsValidLink accepts absolute http and https URLs only.
func IsValidLink(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == config.SchemeHTTP || u.Scheme == config.SchemeHTTPS) && u.Host != ""
}

// NewLink trims and validates s.
func NewLink(s string) (Link, error) {
	s = strings.TrimSpace(s)
	if !IsValidLink(s) {
		return Link{}, invalid(config.FieldLink, s, config.ReasonLink)
	}
	return Link{value: s}, nil
}

func (l Link) String() string { return l.value }

// IsZero reports whether the link is unset.
func (l Link) IsZero() bool { return l.value == "" }

// -----------------------------------------------------------------------------
// Description
// -----------------------------------------------------------------------------

// Description is an optional free-text note on an event.
type Description struct{ value string }

// NewDescription trims and validates s.
func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Description{}, invalid(config.FieldDescription, s, config.ReasonBlank)
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }

// IsZero reports whether the description is unset.
func (d Description) IsZero() bool { return d.value == "" }

// -----------------------------------------------------------------------------
// DateTime
// -----------------------------------------------------------------------------

// DateTime is a wall-clock instant without time zone, as typed by the user.
// A date-only value denotes an all-day event starting at midnight.
type DateTime struct {
	t        time.Time
	dateOnly bool
}

// ParseDateTime accepts config.DateTimeLayout and config.DateLayout.
// Values are interpreted in time.Local.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(config.DateTimeLayout, s, time.Local); err == nil {
		return DateTime{t: t}, nil
	}
	if t, err := time.ParseInLocation(config.DateLayout, s, time.Local); err == nil {
		return DateTime{t: t, dateOnly: true}, nil
	}
	return DateTime{}, invalid(config.FieldDateTime, s, config.ReasonDateTime)
}

// Time returns the instant.
func (d DateTime) Time() time.Time { return d.t }

// DateOnly reports whether no time of day was given.
func (d DateTime) DateOnly() bool { return d.dateOnly }

// IsZero reports whether the value is unset.
func (d DateTime) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly earlier than other.
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }

// String formats the value back in the layout it was entered with.
func (d DateTime) String() string {
	if d.t.IsZero() {
		return ""
	}
	if d.dateOnly {
		return d.t.Format(config.DateLayout)
	}
	return d.t.Format(config.DateTimeLayout)
}

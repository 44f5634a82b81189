package entity

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// ErrInvalid is matched (via errors.Is) by every ValidationError.
var ErrInvalid = errors.New(config.ErrInvalidValue)

// ValidationError reports a malformed field value.
// It is raised before any entity is constructed, so a failed validation
// never leaves a partially built Contact or Event behind.
type ValidationError struct {
	// Field is one of the config.FieldX names.
	Field string
	// Value is the rejected input, verbatim.
	Value string
	// Reason is a short technical description for logs.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalid) succeed for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

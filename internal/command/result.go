package command

import (
	"errors"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/i18n"
)

var (
	// ErrUsage is wrapped by failures caused by a malformed command line.
	ErrUsage = errors.New(config.ErrUsage)

	// ErrUnknownCommand is wrapped when the first word names no command.
	ErrUnknownCommand = errors.New(config.ErrUnknownCommand)

	// ErrInvalidIndex is wrapped when an index does not address the displayed list.
	ErrInvalidIndex = errors.New(config.ErrInvalidIndex)
)

// View tells the presentation layer which lists to redraw.
type View int

const (
	ViewNone View = iota
	ViewContacts
	ViewEvents
	ViewAll
)

// Result is the outcome of a successful command.
type Result struct {
	Message i18n.Message
	View    View
	Exit    bool
}

// Failure is a recoverable command error carrying the message shown to the
// user. The model is left as it was before the command.
type Failure struct {
	Message i18n.Message
	Err     error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.Message.ID
}

func (f *Failure) Unwrap() error { return f.Err }

func fail(id string, data map[string]any, err error) *Failure {
	return &Failure{Message: i18n.NewMessage(id, data), Err: err}
}

func usageError(usage string) *Failure {
	return fail(config.TKeyErrUsage, map[string]any{"Usage": usage}, ErrUsage)
}

func resultOf(id string, data map[string]any, view View) Result {
	return Result{Message: i18n.NewMessage(id, data), View: view}
}

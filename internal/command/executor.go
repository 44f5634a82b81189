package command

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/go-contactbook/internal/collection"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// ChangeListener is told about the address book after every command that
// may have modified it.
type ChangeListener interface {
	AddressBookChanged(book model.AddressBook)
}

// Executor runs command lines against the model and maintains the undo
// timeline according to its Policy.
type Executor struct {
	env       *Env
	parser    *Parser
	policy    Policy
	listeners []ChangeListener
}

// NewExecutor commits the current model state as the history baseline,
// so the first undoable command can be undone.
func NewExecutor(env *Env, parser *Parser, policy Policy, listeners ...ChangeListener) *Executor {
	env.Model.CommitHistory()
	return &Executor{env: env, parser: parser, policy: policy, listeners: listeners}
}

// Model returns the model commands run against.
func (x *Executor) Model() *model.Model { return x.env.Model }

// Execute parses and runs line. Errors are always *Failure values whose
// message can be shown to the user; the model is unchanged when one is
// returned.
func (x *Executor) Execute(ctx context.Context, line string) (Result, error) {
	start := time.Now()

	cmd, err := x.parser.Parse(line)
	if err != nil {
		return Result{}, x.failed("", err)
	}

	res, err := cmd.Execute(ctx, x.env)
	if err != nil {
		return Result{}, x.failed(cmd.Kind(), err)
	}

	undoable := x.policy.Undoable(cmd.Kind())
	if undoable {
		x.env.Model.CommitHistory()
	}
	if undoable || changesBook(cmd.Kind()) {
		x.notify()
	}

	slog.Info(config.MsgCommandExecuted,
		config.LogKeyComponent, config.CompCommand,
		config.LogKeyKind, string(cmd.Kind()),
		config.LogKeyUndoable, undoable,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (x *Executor) notify() {
	if len(x.listeners) == 0 {
		return
	}
	book := x.env.Model.AddressBook()
	for _, l := range x.listeners {
		l.AddressBookChanged(book)
	}
}

func (x *Executor) failed(kind Kind, err error) error {
	f := describe(err)
	level := slog.LevelInfo
	if f.Message.ID == config.TKeyErrInternal {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, config.MsgCommandFailed,
		config.LogKeyComponent, config.CompCommand,
		config.LogKeyKind, string(kind),
		config.LogKeyError, err,
	)
	return f
}

// describe turns any command error into a Failure.
func describe(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return fail(config.TKeyErrInvalidPrefix+ve.Field, map[string]any{"Value": ve.Value}, err)
	}
	switch {
	case errors.Is(err, collection.ErrNotFound):
		return fail(config.TKeyErrNotFound, nil, err)
	case errors.Is(err, model.ErrAlreadyLinked):
		return fail(config.TKeyErrAlreadyLinked, nil, err)
	case errors.Is(err, model.ErrNotLinked):
		return fail(config.TKeyErrNotLinked, nil, err)
	}
	return fail(config.TKeyErrInternal, map[string]any{"Error": err.Error()}, err)
}

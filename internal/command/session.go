package command

import (
	"context"
	"errors"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/history"
	"github.com/tartampluch/go-contactbook/internal/i18n"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// Clear empties the address book. Column settings and filters are kept.
type Clear struct{}

// Kind implements Command.
func (Clear) Kind() Kind { return KindClear }

// Execute implements Command. It replaces the book with an empty one.
func (Clear) Execute(_ context.Context, env *Env) (Result, error) {
	if err := env.Model.SetAddressBook(model.AddressBook{}); err != nil {
		return Result{}, err
	}
	return resultOf(config.TKeyCleared, nil, ViewAll), nil
}

// Undo restores the state before the last undoable command.
type Undo struct{}

// Kind implements Command.
func (Undo) Kind() Kind { return KindUndo }

// Execute implements Command. It restores the previous snapshot, display settings included.
func (Undo) Execute(_ context.Context, env *Env) (Result, error) {
	if err := env.Model.UndoHistory(); err != nil {
		if errors.Is(err, history.ErrUnavailable) {
			return Result{}, fail(config.TKeyErrNoUndo, nil, err)
		}
		return Result{}, err
	}
	return resultOf(config.TKeyUndone, nil, ViewAll), nil
}

// Redo reapplies the last undone command.
type Redo struct{}

// Kind implements Command.
func (Redo) Kind() Kind { return KindRedo }

// Execute implements Command. It moves forward again after Undo.
func (Redo) Execute(_ context.Context, env *Env) (Result, error) {
	if err := env.Model.RedoHistory(); err != nil {
		if errors.Is(err, history.ErrUnavailable) {
			return Result{}, fail(config.TKeyErrNoRedo, nil, err)
		}
		return Result{}, err
	}
	return resultOf(config.TKeyRedone, nil, ViewAll), nil
}

// History reports how far undo and redo can go.
type History struct{}

// Kind implements Command.
func (History) Kind() Kind { return KindHistory }

// Execute implements Command. It only reads the model.
func (History) Execute(_ context.Context, env *Env) (Result, error) {
	st := env.Model.HistoryStatus()
	return resultOf(config.TKeyHistoryStatus, map[string]any{"Undo": st.UndoSteps, "Redo": st.RedoSteps}, ViewNone), nil
}

// ClearHistory forgets every undo step. The current state becomes the new
// baseline.
type ClearHistory struct{}

// Kind implements Command.
func (ClearHistory) Kind() Kind { return KindClearHistory }

// Execute implements Command. It drops both stacks and commits the current state.
func (ClearHistory) Execute(_ context.Context, env *Env) (Result, error) {
	env.Model.ClearHistory()
	env.Model.CommitHistory()
	return resultOf(config.TKeyHistoryCleared, nil, ViewNone), nil
}

// Import adds the contacts read from Source. Contacts whose name is already
// in the address book are skipped.
type Import struct {
	Source string
	User   string
}

// Kind implements Command.
func (Import) Kind() Kind { return KindImport }

// Execute implements Command. It downloads or reads Source, then adds the new contacts one by one.
func (c Import) Execute(ctx context.Context, env *Env) (Result, error) {
	if env.Importer == nil {
		return Result{}, fail(config.TKeyErrImport, map[string]any{"Error": config.ErrExchangeMissing}, errors.New(config.ErrExchangeMissing))
	}
	user := c.User
	if user == "" {
		user = env.DefaultImportUser
	}

	contacts, err := env.Importer.Import(ctx, c.Source, user)
	if err != nil {
		return Result{}, fail(config.TKeyErrImport, map[string]any{"Error": err.Error()}, err)
	}

	added, skipped := 0, 0
	for _, ct := range contacts {
		if env.Model.HasContact(ct) {
			skipped++
			continue
		}
		if err := env.Model.AddContact(ct); err != nil {
			return Result{}, err
		}
		added++
	}
	return Result{
		Message: i18n.NewPlural(config.TKeyImported, added, map[string]any{"Skipped": skipped}),
		View:    ViewContacts,
	}, nil
}

// Export writes every contact as vCard, or every event as iCalendar, to Path.
type Export struct {
	Target Target
	Path   string
}

// Kind implements Command.
func (Export) Kind() Kind { return KindExport }

// Execute implements Command. It never changes the model.
func (c Export) Execute(_ context.Context, env *Env) (Result, error) {
	if env.Exporter == nil {
		return Result{}, fail(config.TKeyErrExport, map[string]any{"Error": config.ErrExchangeMissing}, errors.New(config.ErrExchangeMissing))
	}
	book := env.Model.AddressBook()

	var (
		n   int
		err error
	)
	if c.Target == EventList {
		n = len(book.Events)
		err = env.Exporter.ExportEvents(c.Path, book)
	} else {
		n = len(book.Contacts)
		err = env.Exporter.ExportContacts(c.Path, book.Contacts)
	}
	if err != nil {
		return Result{}, fail(config.TKeyErrExport, map[string]any{"Error": err.Error()}, err)
	}
	return Result{
		Message: i18n.NewPlural(config.TKeyExported, n, map[string]any{"Path": c.Path}),
		View:    ViewNone,
	}, nil
}

// Help lists the commands.
type Help struct{}

// Kind implements Command.
func (Help) Kind() Kind { return KindHelp }

// Execute implements Command. It returns the command summary.
func (Help) Execute(context.Context, *Env) (Result, error) {
	return resultOf(config.TKeyHelp, nil, ViewNone), nil
}

// Exit ends the session.
type Exit struct{}

// Kind implements Command.
func (Exit) Kind() Kind { return KindExit }

// Execute implements Command. It sets Result.Exit.
func (Exit) Execute(context.Context, *Env) (Result, error) {
	r := resultOf(config.TKeyBye, nil, ViewNone)
	r.Exit = true
	return r, nil
}

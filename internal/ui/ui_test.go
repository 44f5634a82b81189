package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/i18n"
	"github.com/tartampluch/go-contactbook/internal/model"
)

func newExecutor(t *testing.T) *command.Executor {
	t.Helper()
	m, err := model.New(model.AddressBook{})
	require.NoError(t, err)
	env := &command.Env{Model: m}
	return command.NewExecutor(env, command.NewParser(entity.NewTagPalette(nil)), command.DefaultPolicy())
}

func run(t *testing.T, exec *command.Executor, lines ...string) {
	t.Helper()
	for _, l := range lines {
		_, err := exec.Execute(context.Background(), l)
		require.NoError(t, err, l)
	}
}

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

func TestRenderer_Lists(t *testing.T) {
	exec := newExecutor(t)
	run(t, exec,
		"add contact n/Amy Lee p/12345 t/work",
		"add event n/Party from/2025-06-01 18:00 to/2025-06-01 23:00 a/Rooftop",
		"link ev/1 c/1",
	)
	r := NewRenderer(i18n.NewTranslator("en"))

	contacts := r.Contacts(exec.Model())
	assert.Contains(t, contacts, "Contacts")
	assert.Contains(t, contacts, "1. Amy Lee")
	assert.Contains(t, contacts, "#work")
	assert.Contains(t, contacts, "Phone: 12345")
	assert.Contains(t, contacts, "Events: Party")
	assert.NotContains(t, contacts, "Email:", "Empty fields are skipped")

	events := r.Events(exec.Model())
	assert.Contains(t, events, "1. Party")
	assert.Contains(t, events, "When: 2025-06-01 18:00 - 2025-06-01 23:00")
	assert.Contains(t, events, "Address: Rooftop")
	assert.Contains(t, events, "With: Amy Lee")
}

func TestRenderer_HonoursDisplaySettings(t *testing.T) {
	exec := newExecutor(t)
	run(t, exec, "add contact n/Amy p/12345 t/work", "hide contact phone tags")
	r := NewRenderer(i18n.NewTranslator("en"))

	out := r.Contacts(exec.Model())
	assert.Contains(t, out, "Amy")
	assert.NotContains(t, out, "Phone:")
	assert.NotContains(t, out, "#work")
}

func TestRenderer_EmptyAndFiltered(t *testing.T) {
	exec := newExecutor(t)
	run(t, exec, "add contact n/Amy p/12345", "find contact bob")
	r := NewRenderer(i18n.NewTranslator("en"))

	out := r.Contacts(exec.Model())
	assert.Contains(t, out, "filter: bob")
	assert.Contains(t, out, "(nothing to show)")
}

func TestRenderer_TranslatesFailures(t *testing.T) {
	exec := newExecutor(t)
	_, err := exec.Execute(context.Background(), "undo")
	require.Error(t, err)

	assert.Equal(t, "No command to undo", NewRenderer(i18n.NewTranslator("en")).Failure(err))
	assert.NotEqual(t, "No command to undo", NewRenderer(i18n.NewTranslator("fr")).Failure(err))
}

func TestRenderer_View(t *testing.T) {
	exec := newExecutor(t)
	r := NewRenderer(i18n.NewTranslator("en"))

	assert.Empty(t, r.View(exec.Model(), command.ViewNone))
	all := r.View(exec.Model(), command.ViewAll)
	assert.Contains(t, all, "Contacts")
	assert.Contains(t, all, "Events")
}

// -----------------------------------------------------------------------------
// Shell
// -----------------------------------------------------------------------------

func TestShell_Session(t *testing.T) {
	var out bytes.Buffer
	sh := &Shell{
		Exec:   newExecutor(t),
		Render: NewRenderer(i18n.NewTranslator("en")),
		In:     strings.NewReader("add contact n/Amy p/12345\n\nbogus\nundo\nexit\nlist\n"),
		Out:    &out,
	}

	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "New contact added: Amy")
	assert.Contains(t, text, "Unknown command: bogus")
	assert.Contains(t, text, "Undo successful")
	assert.Contains(t, text, "Goodbye.")
	assert.NotContains(t, text, "Listed all entries", "Nothing runs after exit")
	assert.Empty(t, sh.Exec.Model().FilteredContacts())
}

func TestShell_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	sh := &Shell{
		Exec:   newExecutor(t),
		Render: NewRenderer(i18n.NewTranslator("en")),
		In:     strings.NewReader("add contact n/Amy p/12345"),
		Out:    &out,
	}

	require.NoError(t, sh.Run(context.Background()))
	assert.Len(t, sh.Exec.Model().FilteredContacts(), 1)
}

func TestShell_CancelWhileIdle(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	sh := &Shell{
		Exec:   newExecutor(t),
		Render: NewRenderer(i18n.NewTranslator("en")),
		In:     pr,
		Out:    &out,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Shell did not return after cancellation")
	}
}

func TestShell_ReadError(t *testing.T) {
	sh := &Shell{
		Exec:   newExecutor(t),
		Render: NewRenderer(i18n.NewTranslator("en")),
		In:     iotest.ErrReader(errors.New("terminal gone")),
		Out:    io.Discard,
	}

	err := sh.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrReadInput)
}

// -----------------------------------------------------------------------------
// Bubble Tea model
// -----------------------------------------------------------------------------

func press(a App, key tea.KeyType) (App, tea.Cmd) {
	m, cmd := a.Update(tea.KeyMsg{Type: key})
	return m.(App), cmd
}

func TestApp_SubmitAndRecall(t *testing.T) {
	app := NewApp(context.Background(), newExecutor(t), NewRenderer(i18n.NewTranslator("en")))
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = m.(App)

	app.input.SetValue("add contact n/Amy p/12345")
	app, _ = press(app, tea.KeyEnter)
	assert.Contains(t, app.status, "New contact added: Amy")
	assert.Empty(t, app.input.Value())
	assert.Contains(t, app.View(), "1. Amy")

	app, _ = press(app, tea.KeyUp)
	assert.Equal(t, "add contact n/Amy p/12345", app.input.Value())
	app, _ = press(app, tea.KeyDown)
	assert.Empty(t, app.input.Value())

	app.input.SetValue("delete contact 9")
	app, _ = press(app, tea.KeyEnter)
	assert.Contains(t, app.status, "9")
	assert.Len(t, app.exec.Model().FilteredContacts(), 1)
}

func TestApp_ExitQuits(t *testing.T) {
	app := NewApp(context.Background(), newExecutor(t), NewRenderer(i18n.NewTranslator("en")))

	app.input.SetValue("exit")
	app, cmd := press(app, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, app.View(), "Goodbye.")
}

func TestApp_CtrlCQuits(t *testing.T) {
	app := NewApp(context.Background(), newExecutor(t), NewRenderer(i18n.NewTranslator("en")))

	_, cmd := press(app, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

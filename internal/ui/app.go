// Package ui presents the address book: as a Fyne desktop window, as a
// full screen Bubble Tea program for terminal sessions, or as a plain
// line-oriented shell for scripts.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// App is the Bubble Tea model of the interactive shell.
// Commands run synchronously on the update loop, which is the only
// goroutine touching the model.
type App struct {
	ctx    context.Context
	exec   *command.Executor
	render *Renderer

	input    textinput.Model
	status   string
	width    int
	height   int
	quitting bool

	typed recall
}

// NewApp builds the interactive model.
func NewApp(ctx context.Context, exec *command.Executor, render *Renderer) App {
	ti := textinput.New()
	ti.Placeholder = render.T.Msg(config.TKeyLblPrompt, nil)
	ti.Prompt = config.ShellPrompt
	ti.CharLimit = config.InputCharMax
	ti.PromptStyle = labelStyle
	ti.PlaceholderStyle = mutedStyle
	ti.Focus()

	return App{ctx: ctx, exec: exec, render: render, input: ti}
}

// Init starts the cursor blink.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = max(msg.Width-len(config.ShellPrompt)-1, 0)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case config.KeyQuit:
			a.quitting = true
			return a, tea.Quit
		case config.KeyCancel:
			a.input.Reset()
			a.typed.reset()
			return a, nil
		case config.KeySubmit:
			return a.submit()
		case config.KeyHistoryUp:
			a.recallLine(-1)
			return a, nil
		case config.KeyHistoryDn:
			a.recallLine(1)
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) submit() (tea.Model, tea.Cmd) {
	line := a.input.Value()
	a.input.Reset()
	if line == "" {
		return a, nil
	}
	a.typed.add(line)

	res, err := a.exec.Execute(a.ctx, line)
	if err != nil {
		a.status = a.render.Failure(err)
		return a, nil
	}
	a.status = a.render.Result(res)
	if res.Exit {
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) recallLine(delta int) {
	line, ok := a.typed.step(delta)
	if !ok {
		return
	}
	a.input.SetValue(line)
	a.input.CursorEnd()
}

// View draws both lists side by side above the status and input lines.
func (a App) View() string {
	if a.quitting {
		return a.status + "\n"
	}

	m := a.exec.Model()
	contacts := a.render.Contacts(m)
	events := a.render.Events(m)

	var body string
	if a.width >= 2*config.PaneMinWidth {
		paneWidth := a.width/2 - 2
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			borderStyle.Width(paneWidth).Render(contacts),
			borderStyle.Width(paneWidth).Render(events),
		)
	} else {
		body = borderStyle.Render(contacts) + "\n" + borderStyle.Render(events)
	}

	footer := a.render.History(m.HistoryStatus())
	if a.status != "" {
		footer = a.status + "  " + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, a.input.View())
}

// RunTUI runs the interactive shell until exit, ctrl+c or ctx cancellation.
func RunTUI(ctx context.Context, exec *command.Executor, render *Renderer) error {
	p := tea.NewProgram(NewApp(ctx, exec, render), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("%s: %w", config.ErrUIFailed, err)
	}
	return nil
}

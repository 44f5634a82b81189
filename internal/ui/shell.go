package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/command"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// Shell is the line-oriented interface used with -plain. It reads one
// command per line until exit, end of input or cancellation.
type Shell struct {
	Exec   *command.Executor
	Render *Renderer
	In     io.Reader
	Out    io.Writer
}

// Run blocks until exit, end of input or ctx cancellation.
// Commands run on the calling goroutine; only reading happens in the
// background, so a signal is honoured while the user is idle.
func (s *Shell) Run(ctx context.Context) error {
	lines, readErr := s.readLines(ctx)
	s.prompt()

	for {
		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				}
				return nil
			}
			if s.handle(ctx, line) {
				return nil
			}
			s.prompt()
		}
	}
}

// readLines scans In on its own goroutine. The lines channel is closed at
// end of input, after the scanner error (possibly nil) is sent on the
// second channel.
func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// handle runs one line and reports whether the session is over.
func (s *Shell) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	res, err := s.Exec.Execute(ctx, line)
	if err != nil {
		fmt.Fprintln(s.Out, s.Render.Failure(err))
		return false
	}

	fmt.Fprintln(s.Out, s.Render.Result(res))
	if view := s.Render.View(s.Exec.Model(), res.View); view != "" {
		fmt.Fprintln(s.Out, view)
	}
	return res.Exit
}

func (s *Shell) prompt() {
	fmt.Fprint(s.Out, config.ShellPrompt)
}

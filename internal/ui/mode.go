package ui

// Mode names a front end.
type Mode string

const (
	ModeDesktop  Mode = "desktop"
	ModeTerminal Mode = "terminal"
	ModeShell    Mode = "shell"
)

// ChooseMode picks the front end. Commands piped in, or -plain, get the
// line shell. -tui asks for the full-screen terminal UI, which needs a
// terminal to draw on. Everything else opens the desktop window, which
// also covers launches from a file manager with stdin on /dev/null.
func ChooseMode(plain, tui, piped, terminal bool) Mode {
	switch {
	case plain || piped:
		return ModeShell
	case tui && terminal:
		return ModeTerminal
	case tui:
		return ModeShell
	default:
		return ModeDesktop
	}
}

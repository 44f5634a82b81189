package ui

import (
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits, at most MaxDigits
// of them when MaxDigits is positive.
// It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry
	MaxDigits int
}

// NewNumericalEntry creates a NumericalEntry limited to maxDigits (0 for no limit).
func NewNumericalEntry(maxDigits int) *NumericalEntry {
	entry := &NumericalEntry{MaxDigits: maxDigits}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune drops everything but digits, and digits past MaxDigits.
// Pasted text bypasses this filter; the Validator catches it.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if e.MaxDigits > 0 && utf8.RuneCountInString(e.Text) >= e.MaxDigits {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard asks mobile devices for a numeric keypad.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// CommandEntry is the command box of the desktop window. Up and down walk
// through the lines submitted so far and escape clears the box.
type CommandEntry struct {
	widget.Entry
	typed recall
}

// NewCommandEntry creates an empty single-line CommandEntry.
func NewCommandEntry() *CommandEntry {
	entry := &CommandEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// Remember records a submitted line for recall.
func (e *CommandEntry) Remember(line string) {
	e.typed.add(line)
}

// TypedKey handles recall keys and passes everything else to the Entry,
// which fires OnSubmitted on return.
func (e *CommandEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyUp:
		e.recallLine(-1)
	case fyne.KeyDown:
		e.recallLine(1)
	case fyne.KeyEscape:
		e.typed.reset()
		e.SetText("")
	default:
		e.Entry.TypedKey(key)
	}
}

func (e *CommandEntry) recallLine(delta int) {
	line, ok := e.typed.step(delta)
	if !ok {
		return
	}
	e.SetText(line)
	e.CursorColumn = utf8.RuneCountInString(line)
	e.Refresh()
}

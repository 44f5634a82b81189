package command

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tartampluch/go-contactbook/internal/config"
)

var (
	// ErrUnknownKind is returned for a policy entry that names no command.
	ErrUnknownKind = errors.New(config.ErrUnknownKind)

	// ErrPolicyKind is returned when a history command is declared undoable.
	ErrPolicyKind = errors.New(config.ErrPolicyKind)
)

// Policy tells the executor which successful commands create an undo step.
type Policy map[Kind]bool

// DefaultPolicy makes every command that changes the address book or its
// display undoable. Searching, listing and help do not.
func DefaultPolicy() Policy {
	return Policy{
		KindAddContact:    true,
		KindAddEvent:      true,
		KindEditContact:   true,
		KindEditEvent:     true,
		KindDeleteContact: true,
		KindDeleteEvent:   true,
		KindLink:          true,
		KindUnlink:        true,
		KindShow:          true,
		KindHide:          true,
		KindSortContact:   true,
		KindSortEvent:     true,
		KindClear:         true,
		KindImport:        true,
	}
}

// PolicyFromNames builds a policy from kind names such as "add_contact".
// A nil list yields DefaultPolicy.
func PolicyFromNames(names []string) (Policy, error) {
	if names == nil {
		return DefaultPolicy(), nil
	}
	p := make(Policy, len(names))
	for _, n := range names {
		k := Kind(n)
		if !slices.Contains(AllKinds(), k) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, n)
		}
		if controlsHistory(k) {
			return nil, fmt.Errorf("%w: %q", ErrPolicyKind, n)
		}
		p[k] = true
	}
	return p, nil
}

// Undoable reports whether k creates an undo step.
func (p Policy) Undoable(k Kind) bool { return p[k] }

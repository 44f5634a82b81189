// Package history implements a linear undo/redo timeline of full-state
// snapshots with a movable cursor.
package history

import (
	"errors"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// ErrUnavailable is matched by every UnavailableError.
var ErrUnavailable = errors.New(config.ErrHistoryUnavailable)

// UnavailableError is returned by Undo and Redo when the cursor cannot move.
// Its message is meant to be shown to the user as-is.
type UnavailableError struct {
	msg string
}

func (e *UnavailableError) Error() string { return e.msg }

// Is makes errors.Is(err, ErrUnavailable) succeed.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

var (
	errNoUndo  = &UnavailableError{msg: config.ErrNoUndo}
	errNoRedo  = &UnavailableError{msg: config.ErrNoRedo}
	errNoState = &UnavailableError{msg: config.ErrNoState}
)

// Instance is one point-in-time capture: the entity collections and the
// display state as they were at commit time. Instances are never modified
// after Commit.
type Instance[C, D any] struct {
	Collections C
	Display     D
}

// ModelHistory is an ordered sequence of instances plus two counters:
// currentSize (the cursor, one past "now") and maxSize (one past the
// furthest redo-reachable point). 0 <= currentSize <= maxSize <= len(instances).
//
// Undo never truncates the sequence. Entries past currentSize stay in
// place until the next Commit overwrites them.
type ModelHistory[C, D any] struct {
	instances   []Instance[C, D]
	currentSize int
	maxSize     int
}

// New returns an empty history.
func New[C, D any]() *ModelHistory[C, D] {
	return &ModelHistory[C, D]{}
}

// Commit records a new instance at the cursor, discarding any redo branch.
// The caller hands over ownership of collections and display.
func (h *ModelHistory[C, D]) Commit(collections C, display D) {
	inst := Instance[C, D]{Collections: collections, Display: display}
	if h.currentSize < len(h.instances) {
		h.instances[h.currentSize] = inst
	} else {
		h.instances = append(h.instances, inst)
	}
	h.currentSize++
	h.maxSize = h.currentSize
}

// IsUndoable reports whether there is a committed state before the current one.
// The first commit is the baseline and can never be undone.
func (h *ModelHistory[C, D]) IsUndoable() bool { return h.currentSize > 1 }

// IsRedoable reports whether the cursor is behind the furthest committed point.
func (h *ModelHistory[C, D]) IsRedoable() bool { return h.maxSize > h.currentSize }

// Undo moves the cursor one step back and returns the instance now current.
func (h *ModelHistory[C, D]) Undo() (Instance[C, D], error) {
	if !h.IsUndoable() {
		return Instance[C, D]{}, errNoUndo
	}
	h.currentSize--
	return h.instances[h.currentSize-1], nil
}

// Redo moves the cursor one step forward and returns the instance now current.
func (h *ModelHistory[C, D]) Redo() (Instance[C, D], error) {
	if !h.IsRedoable() {
		return Instance[C, D]{}, errNoRedo
	}
	h.currentSize++
	return h.instances[h.currentSize-1], nil
}

// Current returns the instance at the cursor.
func (h *ModelHistory[C, D]) Current() (Instance[C, D], error) {
	if h.currentSize < 1 {
		return Instance[C, D]{}, errNoState
	}
	return h.instances[h.currentSize-1], nil
}

// ClearHistory empties the addressable range. Storage is kept and reused
// by the following commits.
func (h *ModelHistory[C, D]) ClearHistory() {
	h.currentSize = 0
	h.maxSize = 0
}

// CurrentSize returns the cursor.
func (h *ModelHistory[C, D]) CurrentSize() int { return h.currentSize }

// MaxSize returns the redo ceiling.
func (h *ModelHistory[C, D]) MaxSize() int { return h.maxSize }

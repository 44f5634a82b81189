package entity

import (
	"slices"

	"github.com/google/uuid"
)

// idSet is a sorted, duplicate-free list of identity tokens.
// The empty set is always nil.
type idSet []uuid.UUID

func newIDSet(ids []uuid.UUID) idSet {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.SortFunc(out, compareIDs)
	out = slices.Compact(out)
	return idSet(out)
}

func compareIDs(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}

func (s idSet) contains(id uuid.UUID) bool {
	_, found := slices.BinarySearchFunc(s, id, compareIDs)
	return found
}

func (s idSet) with(id uuid.UUID) idSet {
	if s.contains(id) {
		return s
	}
	return newIDSet(append(slices.Clone(s), id))
}

func (s idSet) without(id uuid.UUID) idSet {
	out := slices.DeleteFunc(slices.Clone(s), func(x uuid.UUID) bool { return x == id })
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s idSet) list() []uuid.UUID {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

package display

import (
	"slices"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/entity"
)

// Filter is the predicate applied to a list before display.
// An entity matches when its name contains at least one of Keywords (whole
// word, any case) and it carries every one of Tags. Empty criteria are
// ignored, so the zero Filter matches everything.
type Filter struct {
	Keywords []string
	Tags     []string
}

// NewFilter copies the criteria. Empty inputs are stored as nil so that
// equal filters compare equal.
func NewFilter(keywords, tags []string) Filter {
	return Filter{Keywords: cloneOrNil(keywords), Tags: cloneOrNil(tags)}
}

// IsZero reports whether the filter shows everything.
func (f Filter) IsZero() bool { return len(f.Keywords) == 0 && len(f.Tags) == 0 }

// MatchContact applies the filter to a contact.
func (f Filter) MatchContact(c entity.Contact) bool {
	return f.match(c.MatchesKeyword, c.HasTag)
}

// MatchEvent applies the filter to an event.
func (f Filter) MatchEvent(e entity.Event) bool {
	return f.match(e.MatchesKeyword, e.HasTag)
}

// String renders the criteria for status lines and logs.
func (f Filter) String() string {
	parts := slices.Clone(f.Keywords)
	for _, t := range f.Tags {
		parts = append(parts, "#"+t)
	}
	return strings.Join(parts, " ")
}

func (f Filter) match(keyword func(string) bool, tag func(string) bool) bool {
	if len(f.Keywords) > 0 && !slices.ContainsFunc(f.Keywords, keyword) {
		return false
	}
	for _, t := range f.Tags {
		if !tag(t) {
			return false
		}
	}
	return true
}

func cloneOrNil(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

package entity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

var tagPattern = regexp.MustCompile(`^[\p{L}\p{N}_\-]+$`)

// Tag is a label with the display colour assigned to it by a TagPalette.
// Two tags with the same label always carry the same colour within one palette.
type Tag struct {
	label string
	color string
}

// IsValidTagLabel reports whether s can be used as a tag label.
func IsValidTagLabel(s string) bool { return tagPattern.MatchString(s) }

// Label returns the tag text.
func (t Tag) Label() string { return t.label }

// Color returns the display colour (a lipgloss colour string).
func (t Tag) Color() string { return t.color }

func (t Tag) String() string { return t.label }

// TagPalette hands out display colours to tag labels.
// Colours are assigned round-robin from a fixed list the first time a label
// is seen and cached afterwards, so a label keeps its colour for the
// lifetime of the palette. Create one per program run (or per test).
type TagPalette struct {
	colors   []string
	assigned map[string]string
	next     int
}

// NewTagPalette creates a palette over colors. An empty list falls back to
// config.DefaultTagColors.
func NewTagPalette(colors []string) *TagPalette {
	if len(colors) == 0 {
		colors = config.DefaultTagColors
	}
	return &TagPalette{
		colors:   append([]string(nil), colors...),
		assigned: make(map[string]string),
	}
}

// Tag validates label and returns it with its colour.
func (p *TagPalette) Tag(label string) (Tag, error) {
	label = strings.TrimSpace(label)
	if !IsValidTagLabel(label) {
		return Tag{}, invalid(config.FieldTag, label, config.ReasonTag)
	}
	return Tag{label: label, color: p.colorFor(label)}, nil
}

// Tags builds a normalized tag set from labels: validated, deduplicated,
// sorted by label. An empty input yields nil.
func (p *TagPalette) Tags(labels []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(labels))
	for _, l := range labels {
		t, err := p.Tag(l)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return normalizeTags(tags), nil
}

// Reset forgets every assignment and restarts at the first colour.
func (p *TagPalette) Reset() {
	p.assigned = make(map[string]string)
	p.next = 0
}

func (p *TagPalette) colorFor(label string) string {
	if c, ok := p.assigned[label]; ok {
		return c
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	p.assigned[label] = c
	return c
}

// normalizeTags sorts by label and drops duplicates. Empty sets become nil
// so that equal tag sets compare equal regardless of how they were built.
func normalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := append([]Tag(nil), tags...)
	sort.Slice(out, func(i, j int) bool { return out[i].label < out[j].label })
	uniq := out[:1]
	for _, t := range out[1:] {
		if t.label != uniq[len(uniq)-1].label {
			uniq = append(uniq, t)
		}
	}
	return uniq
}

// hasTagLabel reports whether tags contains label (case-insensitive).
func hasTagLabel(tags []Tag, label string) bool {
	for _, t := range tags {
		if strings.EqualFold(t.label, label) {
			return true
		}
	}
	return false
}

// TagLabels returns the labels of tags, in order.
func TagLabels(tags []Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.label
	}
	return out
}

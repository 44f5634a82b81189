package command

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// argMap is a command line split on field prefixes such as "n/" or "t/".
// A prefix is recognised only at the start of the arguments or after
// whitespace, so "a/b" inside a link value is left alone.
type argMap struct {
	preamble string
	values   map[string][]string
}

type prefixHit struct {
	pos    int
	prefix string
}

func tokenize(args string, prefixes ...string) argMap {
	var hits []prefixHit
	for _, p := range prefixes {
		for from := 0; ; {
			i := strings.Index(args[from:], p)
			if i < 0 {
				break
			}
			at := from + i
			if atWordStart(args, at) {
				hits = append(hits, prefixHit{pos: at, prefix: p})
			}
			from = at + len(p)
		}
	}
	slices.SortFunc(hits, func(a, b prefixHit) int { return cmp.Compare(a.pos, b.pos) })

	m := argMap{values: make(map[string][]string, len(hits))}
	if len(hits) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}
	m.preamble = strings.TrimSpace(args[:hits[0].pos])
	for i, h := range hits {
		end := len(args)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		start := h.pos + len(h.prefix)
		m.values[h.prefix] = append(m.values[h.prefix], strings.TrimSpace(args[start:end]))
	}
	return m
}

// atWordStart reports whether s[i:] begins a word: i is 0 or follows any
// Unicode space.
func atWordStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

// value returns the last value given for prefix.
func (m argMap) value(prefix string) (string, bool) {
	vs := m.values[prefix]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func (m argMap) has(prefix string) bool { return len(m.values[prefix]) > 0 }

// all returns every non-empty value given for prefix, in order.
func (m argMap) all(prefix string) []string {
	var out []string
	for _, v := range m.values[prefix] {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// hasAny reports whether at least one of prefixes was given.
func (m argMap) hasAny(prefixes ...string) bool {
	return slices.ContainsFunc(prefixes, m.has)
}

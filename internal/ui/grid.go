package ui

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/entity"
	"github.com/tartampluch/go-contactbook/internal/model"
)

// Grid is one list laid out as table cells for the desktop window.
// Fields holds the column ids: config.FieldIndex, config.FieldName, then
// the visible display columns. Headers holds their translated titles.
type Grid struct {
	Title   string
	Fields  []string
	Headers []string
	Rows    [][]string
}

type gridColumn[T any] struct {
	field string
	title string
	cell  func(T) string
}

// ContactGrid lays out the filtered contacts with the visible columns.
func (r *Renderer) ContactGrid(m *model.Model) Grid {
	s := m.ContactSetting()
	cols := []gridColumn[entity.Contact]{
		{config.FieldName, config.TKeyColName, func(c entity.Contact) string { return c.Name().String() }},
	}
	cols = appendColumn(cols, s.Tags, config.FieldTags, config.TKeyLblTags, func(c entity.Contact) string { return tagCell(c.Tags()) })
	cols = appendColumn(cols, s.Phone, config.FieldPhone, config.TKeyLblPhone, func(c entity.Contact) string { return c.Phone().String() })
	cols = appendColumn(cols, s.Email, config.FieldEmail, config.TKeyLblEmail, func(c entity.Contact) string { return c.Email().String() })
	cols = appendColumn(cols, s.Address, config.FieldAddress, config.TKeyLblAddress, func(c entity.Contact) string { return c.Address().String() })
	cols = appendColumn(cols, s.Link, config.FieldLink, config.TKeyLblLink, func(c entity.Contact) string { return c.Link().String() })
	cols = appendColumn(cols, s.Events, config.FieldEvents, config.TKeyLblLinkedEvents, func(c entity.Contact) string { return eventNames(m, c.Events()) })

	return buildGrid(r, r.gridTitle(config.TKeyLblContacts, m.ContactFilter().String()), m.FilteredContacts(), cols)
}

// EventGrid lays out the filtered events with the visible columns.
func (r *Renderer) EventGrid(m *model.Model) Grid {
	s := m.EventSetting()
	cols := []gridColumn[entity.Event]{
		{config.FieldName, config.TKeyColName, func(e entity.Event) string { return e.Name().String() }},
	}
	cols = appendColumn(cols, s.Tags, config.FieldTags, config.TKeyLblTags, func(e entity.Event) string { return tagCell(e.Tags()) })
	cols = appendColumn(cols, s.Time, config.FieldTime, config.TKeyLblTime, period)
	cols = appendColumn(cols, s.Address, config.FieldAddress, config.TKeyLblAddress, func(e entity.Event) string { return e.Address().String() })
	cols = appendColumn(cols, s.Description, config.FieldDescription, config.TKeyLblDescription, func(e entity.Event) string { return e.Description().String() })
	cols = appendColumn(cols, s.Contacts, config.FieldContacts, config.TKeyLblLinkedContacts, func(e entity.Event) string { return contactNames(m, e.Contacts()) })

	return buildGrid(r, r.gridTitle(config.TKeyLblEvents, m.EventFilter().String()), m.FilteredEvents(), cols)
}

func appendColumn[T any](cols []gridColumn[T], visible bool, field, title string, cell func(T) string) []gridColumn[T] {
	if !visible {
		return cols
	}
	return append(cols, gridColumn[T]{field, title, cell})
}

// buildGrid prepends the index column, numbered from 1 like the indexes
// commands take.
func buildGrid[T any](r *Renderer, title string, items []T, cols []gridColumn[T]) Grid {
	g := Grid{
		Title:   title,
		Fields:  []string{config.FieldIndex},
		Headers: []string{r.T.Msg(config.TKeyColIndex, nil)},
		Rows:    make([][]string, 0, len(items)),
	}
	for _, c := range cols {
		g.Fields = append(g.Fields, c.field)
		g.Headers = append(g.Headers, r.T.Msg(c.title, nil))
	}
	for i, item := range items {
		row := make([]string, 0, len(g.Fields))
		row = append(row, strconv.Itoa(i+1))
		for _, c := range cols {
			row = append(row, c.cell(item))
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func (r *Renderer) gridTitle(key, filter string) string {
	title := r.T.Msg(key, nil)
	if filter != "" {
		title += " (" + r.T.Msg(config.TKeyLblFilter, map[string]any{"Filter": filter}) + ")"
	}
	return title
}

func tagCell(tags []entity.Tag) string {
	labels := make([]string, len(tags))
	for i, t := range tags {
		labels[i] = config.TagCellPrefix + t.Label()
	}
	return strings.Join(labels, " ")
}

// sortRows orders rows on column col, the index column (0) as a number
// and the others through compare. Ties keep the index order.
func sortRows(rows [][]string, col int, asc bool, compare func(a, b string) int) {
	slices.SortStableFunc(rows, func(a, b []string) int {
		var c int
		if col == 0 {
			c = cmp.Compare(rowIndex(a), rowIndex(b))
		} else {
			c = compare(a[col], b[col])
		}
		if !asc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(rowIndex(a), rowIndex(b))
		}
		return c
	})
}

func rowIndex(row []string) int {
	n, _ := strconv.Atoi(row[0])
	return n
}

package ui

import (
	"log/slog"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-contactbook/internal/config"
)

// listView is one table of the main window.
// Sorting from the headers only reorders the rows on screen: the index
// column keeps the number commands take, whatever the order.
type listView struct {
	name    string
	title   *widget.Label
	table   *widget.Table
	compare func(a, b string) int

	grid Grid
	rows [][]string

	// Internal Sorting State
	sortField string
	sortAsc   bool
}

func newListView(name string, compare func(a, b string) int) *listView {
	l := &listView{
		name:      name,
		compare:   compare,
		sortField: config.FieldIndex,
		sortAsc:   true,
	}
	l.title = widget.NewLabel("")
	l.title.TextStyle = fyne.TextStyle{Bold: true}

	// --- UI Table Component ---

	l.table = widget.NewTable(
		// Length callback
		func() (int, int) {
			return len(l.rows), len(l.grid.Fields)
		},
		// Create cell callback
		func() fyne.CanvasObject {
			label := widget.NewLabel(config.TablePlaceholder)
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		// Update cell callback
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(l.rows) || id.Col >= len(l.rows[id.Row]) {
				label.SetText("")
				return
			}
			label.SetText(l.rows[id.Row][id.Col])
		},
	)

	// --- Header Configuration (Fyne Native) ---

	l.table.ShowHeaderRow = true

	// CreateHeader returns a button for interactivity.
	l.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewButton(config.TablePlaceholder, func() {})
	}

	// UpdateHeader sets the title and sort indicator, and sorts on tap.
	l.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		btn := o.(*widget.Button)
		btn.SetText(l.headerText(id.Col))
		col := id.Col
		btn.OnTapped = func() {
			l.tapHeader(col)
		}
	}

	return l
}

// content lays out the title above the table.
func (l *listView) content() fyne.CanvasObject {
	return container.NewBorder(l.title, nil, nil, nil, l.table)
}

// update shows a new grid, keeping the current sort when its column is
// still visible.
func (l *listView) update(g Grid) {
	l.grid = g
	l.title.SetText(g.Title)

	if !slices.Contains(g.Fields, l.sortField) {
		l.sortField = config.FieldIndex
		l.sortAsc = true
	}
	for i, f := range g.Fields {
		l.table.SetColumnWidth(i, columnWidth(f))
	}
	l.refresh()
}

func (l *listView) headerText(col int) string {
	if col < 0 || col >= len(l.grid.Headers) {
		return ""
	}
	text := l.grid.Headers[col]
	if l.grid.Fields[col] == l.sortField {
		if l.sortAsc {
			text += config.SortIconAsc
		} else {
			text += config.SortIconDesc
		}
	}
	return text
}

// tapHeader sorts on col, flipping the direction when col is already the
// sort column.
func (l *listView) tapHeader(col int) {
	if col < 0 || col >= len(l.grid.Fields) {
		return
	}
	field := l.grid.Fields[col]
	if field == l.sortField {
		l.sortAsc = !l.sortAsc
	} else {
		l.sortField = field
		l.sortAsc = true
	}
	l.refresh()
}

func (l *listView) refresh() {
	l.rows = slices.Clone(l.grid.Rows)
	sortRows(l.rows, slices.Index(l.grid.Fields, l.sortField), l.sortAsc, l.compare)

	slog.Debug(config.MsgListSorted,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyWindow, l.name,
		config.LogKeySortCol, l.sortField,
		config.LogKeySortAsc, l.sortAsc)

	l.table.Refresh()
}

func columnWidth(field string) float32 {
	switch field {
	case config.FieldIndex:
		return config.ColWidthIndex
	case config.FieldName:
		return config.ColWidthName
	case config.FieldTime:
		return config.ColWidthTime
	default:
		return config.ColWidthDefault
	}
}

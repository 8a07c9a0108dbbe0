package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"ledit/internal/changelog"
)

const (
	colIndex     = 4
	colOperation = 14
	colTime      = 19
	colLine      = 6
	colTotal     = 6
)

// model is the Bubbletea model for the changelog browser.
type model struct {
	filename   string
	entries    []changelog.Entry
	table      table.Model
	height     int // Track terminal height for dynamic resizing
	width      int // Track terminal width for dynamic resizing
	showDetail bool
	quitting   bool
}

// InitialModel creates the browser model for filename's entries.
func InitialModel(filename string, entries []changelog.Entry, height int) model {
	columns := []table.Column{
		{Title: "#", Width: colIndex},
		{Title: "Operation", Width: colOperation},
		{Title: "Time", Width: colTime},
		{Title: "Line", Width: colLine},
		{Title: "Total", Width: colTotal},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(entryRows(entries)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)
	return model{
		filename: filename,
		entries:  entries,
		table:    t,
		height:   height,
		width:    80,
	}
}

func entryRows(entries []changelog.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		line := "-"
		if e.IsLineOperation() {
			line = strconv.FormatUint(e.LineNumber, 10)
		}
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			truncate(e.Operation, colOperation),
			e.Timestamp.Format(changelog.TimeLayout),
			line,
			strconv.FormatUint(e.TotalLines, 10),
		}
	}
	return rows
}

// selected returns the entry under the cursor.
func (m model) selected() (changelog.Entry, int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return changelog.Entry{}, 0, false
	}
	return m.entries[i], i, true
}

// tableHeight leaves room for the header, detail box and help line.
func tableHeight(height int) int {
	return max(height-10, 3)
}

// truncate shortens s to at most width display cells.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ledit/internal/changelog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	tableStyle  = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555"))
	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.DoubleBorder())
)

// ModelView renders the browser model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(fmt.Sprintf("Change Log for '%s' (%d entries)", m.filename, len(m.entries)))
	if len(m.entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			emptyStyle.Render("No changes recorded."),
			helpStyle.Render("q: quit"),
		)
	}

	blocks := []string{header, tableStyle.Render(m.table.View())}
	if m.showDetail {
		if e, i, ok := m.selected(); ok {
			blocks = append(blocks, detailStyle.Render(detailView(i+1, e)))
		}
	}
	blocks = append(blocks, helpStyle.Render("↑/k ↓/j: move • enter: details • esc: close • q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func detailView(n int, e changelog.Entry) string {
	line := "n/a"
	if e.IsLineOperation() {
		line = fmt.Sprintf("%d", e.LineNumber)
	}
	return fmt.Sprintf("%s\n\nOperation:   %s\nTimestamp:   %s (%d)\nLine:        %s\nTotal lines: %d",
		changelog.FormatEntry(n, e),
		e.Operation,
		e.Timestamp.Format(changelog.TimeLayout), e.Timestamp.Unix(),
		line,
		e.TotalLines,
	)
}

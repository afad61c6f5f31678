package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/report"
)

const (
	previewHeight  = 8
	minColumnWidth = 6
	maxColumnWidth = 24
)

// newPreviewTable lays out preview.columns × preview.rows. Absent and
// null values render as empty cells.
func newPreviewTable(preview api.Preview, width int) table.Model {
	columnCount := len(preview.Columns)
	if columnCount == 0 {
		return table.New()
	}

	colWidth := width/columnCount - 2
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	if colWidth > maxColumnWidth {
		colWidth = maxColumnWidth
	}

	columns := make([]table.Column, columnCount)
	for i, name := range preview.Columns {
		columns[i] = table.Column{Title: name, Width: colWidth}
	}

	rows := make([]table.Row, len(preview.Rows))
	for r, row := range preview.Rows {
		cells := make(table.Row, columnCount)
		for i, name := range preview.Columns {
			cells[i] = report.CellText(row[name])
		}
		rows[r] = cells
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(previewHeight),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(TextColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(InfoColor)
	t.SetStyles(styles)

	return t
}

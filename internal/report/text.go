package report

import (
	"fmt"
	"strings"

	"github.com/nkapur/csvdash/internal/api"
)

const missingBarWidth = 30

// RenderText produces the plain-text report for the cli output format.
// It is a pure projection of the analysis result: rendering the same
// result twice yields identical output.
func RenderText(result *api.AnalysisResult, topColumns int) string {
	var sections []string

	sections = append(sections, renderTextSummary(result))

	if chart := MissingChart(result, topColumns); len(chart) > 0 {
		sections = append(sections, renderTextMissing(chart, topColumns))
	}

	sections = append(sections, renderTextStats(result))

	if len(result.Preview.Columns) > 0 {
		sections = append(sections, renderTextPreview(result.Preview))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func renderTextSummary(result *api.AnalysisResult) string {
	lines := []string{
		"Dataset Summary",
		fmt.Sprintf("  File:            %s", result.FileName),
		fmt.Sprintf("  Rows:            %d", result.Shape.Rows),
		fmt.Sprintf("  Columns:         %d", result.Shape.Cols),
		fmt.Sprintf("  Missing values:  %d", result.Missing.Total),
		fmt.Sprintf("  Numeric columns: %d", len(result.NumericColumns)),
	}
	return strings.Join(lines, "\n")
}

func renderTextMissing(chart []MissingCount, topColumns int) string {
	lines := []string{fmt.Sprintf("Missing Values (top %d)", topColumns)}

	labelWidth := 0
	maxCount := 0
	for _, entry := range chart {
		if len(entry.Column) > labelWidth {
			labelWidth = len(entry.Column)
		}
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
	}

	for _, entry := range chart {
		barLen := 0
		if maxCount > 0 {
			barLen = entry.Count * missingBarWidth / maxCount
		}
		if barLen < 1 {
			barLen = 1
		}
		bar := strings.Repeat("█", barLen)
		lines = append(lines, fmt.Sprintf("  %-*s %s %d", labelWidth, entry.Column, bar, entry.Count))
	}

	return strings.Join(lines, "\n")
}

func renderTextStats(result *api.AnalysisResult) string {
	column, ok := FirstNumericColumn(result)
	if !ok {
		return "Statistics\n  No numeric columns detected"
	}

	lines := []string{fmt.Sprintf("Statistics: %s", column)}
	for _, row := range StatRows(result.SummaryStats[column]) {
		lines = append(lines, fmt.Sprintf("  %-7s %s", row.Name, row.Value))
	}
	return strings.Join(lines, "\n")
}

func renderTextPreview(preview api.Preview) string {
	widths := make([]int, len(preview.Columns))
	for i, column := range preview.Columns {
		widths[i] = len(column)
	}

	cells := make([][]string, len(preview.Rows))
	for r, row := range preview.Rows {
		cells[r] = make([]string, len(preview.Columns))
		for i, column := range preview.Columns {
			text := CellText(row[column])
			cells[r][i] = text
			if len(text) > widths[i] {
				widths[i] = len(text)
			}
		}
	}

	var header strings.Builder
	for i, column := range preview.Columns {
		fmt.Fprintf(&header, "%-*s  ", widths[i], column)
	}

	lines := []string{
		fmt.Sprintf("Preview (%d rows)", len(preview.Rows)),
		"  " + strings.TrimRight(header.String(), " "),
	}

	for _, row := range cells {
		var line strings.Builder
		for i, cell := range row {
			fmt.Fprintf(&line, "%-*s  ", widths[i], cell)
		}
		lines = append(lines, "  "+strings.TrimRight(line.String(), " "))
	}

	return strings.Join(lines, "\n")
}

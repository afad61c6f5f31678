package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/report"
)

// RenderDashboard renders the four result regions: summary card, missing
// values chart, statistics table, and row preview. It is a pure function
// of its arguments, so rendering the same result twice produces identical
// output.
func RenderDashboard(result *api.AnalysisResult, missing []report.MissingCount, selectedBar int, previewView string, width int) string {
	leftWidth := width/2 - 2
	rightWidth := width - leftWidth - 4

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderSummaryCard(result, leftWidth),
		"",
		renderStatsCard(result),
	)
	right := renderChartCard(missing, rightWidth, selectedBar)

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		"  ",
		right,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		columns,
		"",
		renderPreviewCard(result, previewView),
	)
}

func renderSummaryCard(result *api.AnalysisResult, width int) string {
	title := TitleStyle.Render("Dataset Summary")

	lines := []string{
		fmt.Sprintf("• File: %s", TruncateString(result.FileName, max(10, width-10))),
		fmt.Sprintf("• Rows: %d", result.Shape.Rows),
		fmt.Sprintf("• Cols: %d", result.Shape.Cols),
		fmt.Sprintf("• Missing: %d", result.Missing.Total),
		fmt.Sprintf("• Numeric cols: %d", len(result.NumericColumns)),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
	)
}

func renderStatsCard(result *api.AnalysisResult) string {
	title := TitleStyle.Render("Statistics")

	column, ok := report.FirstNumericColumn(result)
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			MutedStyle.Render("No numeric columns detected"),
		)
	}

	lines := []string{InfoStyle.Render(column)}
	for _, row := range report.StatRows(result.SummaryStats[column]) {
		lines = append(lines, fmt.Sprintf("%-7s %s", row.Name, row.Value))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		strings.Join(lines, "\n"),
	)
}

func renderPreviewCard(result *api.AnalysisResult, previewView string) string {
	title := TitleStyle.Render(fmt.Sprintf("Preview (%d rows)", len(result.Preview.Rows)))

	if len(result.Preview.Columns) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			MutedStyle.Render("No preview returned"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		previewView,
	)
}

package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/nkapur/csvdash/internal/report"
)

const (
	chartHeight   = 12
	minChartWidth = 20
)

var (
	barStyle         = lipgloss.NewStyle().Foreground(InfoColor)
	selectedBarStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

// renderChartCard draws the missing-values chart. The value axis stays
// visible while category labels are suppressed; the selected bar is
// highlighted and described on the detail line below, standing in for a
// hover tooltip.
func renderChartCard(missing []report.MissingCount, width, selected int) string {
	title := TitleStyle.Render("Missing Values")

	if len(missing) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			MutedStyle.Render("No missing values reported"),
		)
	}

	if width < minChartWidth {
		width = minChartWidth
	}

	chart := barchart.New(width, chartHeight)
	for i, entry := range missing {
		style := barStyle
		if i == selected {
			style = selectedBarStyle
		}
		chart.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: entry.Column, Value: float64(entry.Count), Style: style},
			},
		})
	}
	chart.Draw()

	detail := ""
	if selected >= 0 && selected < len(missing) {
		detail = InfoStyle.Render(fmt.Sprintf("▸ %s: %d missing", missing[selected].Column, missing[selected].Count))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		chart.View(),
		detail,
	)
}

package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/nkapur/csvdash/internal/api"
)

// MissingCount is one entry of the ranked missing-values chart.
type MissingCount struct {
	Column string
	Count  int
}

// MissingChart ranks missing-value counts per column, highest first, and
// truncates to the top limit entries. Ties are broken by column name
// ascending so the ranking never depends on map iteration order.
func MissingChart(result *api.AnalysisResult, limit int) []MissingCount {
	if result == nil || len(result.Missing.ByColumn) == 0 {
		return nil
	}

	counts := make([]MissingCount, 0, len(result.Missing.ByColumn))
	for column, count := range result.Missing.ByColumn {
		counts = append(counts, MissingCount{Column: column, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Column < counts[j].Column
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// FirstNumericColumn returns the column whose statistics the dashboard
// shows, which is the first entry of numericColumns.
func FirstNumericColumn(result *api.AnalysisResult) (string, bool) {
	if result == nil || len(result.NumericColumns) == 0 {
		return "", false
	}
	return result.NumericColumns[0], true
}

// StatRow is one labeled line of the statistics table.
type StatRow struct {
	Name  string
	Value string
}

// StatRows lays out the 8-field statistics record in display order.
func StatRows(stats api.ColumnStats) []StatRow {
	return []StatRow{
		{"count", FormatStat(float64(stats.Count))},
		{"mean", FormatStat(stats.Mean)},
		{"std", FormatStat(stats.Std)},
		{"min", FormatStat(stats.Min)},
		{"p25", FormatStat(stats.P25)},
		{"median", FormatStat(stats.Median)},
		{"p75", FormatStat(stats.P75)},
		{"max", FormatStat(stats.Max)},
	}
}

// FormatStat renders a statistic to 4 decimal places; non-finite values
// keep their literal textual form.
func FormatStat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

// CellText coerces an arbitrary preview scalar to display text. Absent and
// null values render as the empty string.
func CellText(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

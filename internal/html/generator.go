package html

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nkapur/csvdash/internal/api"
	"github.com/nkapur/csvdash/internal/report"
)

// Embed the report template at compile time
//
//go:embed templates/report.html
var reportTemplate string

// ReportData contains everything the HTML report template renders.
type ReportData struct {
	FileName       string
	Rows           int
	Cols           int
	MissingTotal   int
	NumericColumns int
	GeneratedAt    time.Time

	MissingChart []MissingBar
	StatsColumn  string
	StatRows     []report.StatRow
	Preview      PreviewData
}

// MissingBar is one bar of the missing-values chart, with a width the
// template can use directly as a CSS percentage.
type MissingBar struct {
	Column  string
	Count   int
	Percent float64
}

// PreviewData is the row sample laid out for the template.
type PreviewData struct {
	Columns []string
	Rows    [][]string
}

// GenerateReport writes a standalone HTML report to outputPath (derived
// from the CSV name when empty) and returns the absolute path written.
func GenerateReport(result *api.AnalysisResult, topColumns int, outputPath string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no analysis result to report")
	}

	data := buildReportData(result, topColumns)

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	absPath, err := resolveOutputPath(result.FileName, outputPath)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	return absPath, nil
}

func buildReportData(result *api.AnalysisResult, topColumns int) *ReportData {
	data := &ReportData{
		FileName:       result.FileName,
		Rows:           result.Shape.Rows,
		Cols:           result.Shape.Cols,
		MissingTotal:   result.Missing.Total,
		NumericColumns: len(result.NumericColumns),
		GeneratedAt:    time.Now(),
	}

	chart := report.MissingChart(result, topColumns)
	maxCount := 0
	for _, entry := range chart {
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
	}
	for _, entry := range chart {
		percent := 0.0
		if maxCount > 0 {
			percent = float64(entry.Count) / float64(maxCount) * 100
		}
		data.MissingChart = append(data.MissingChart, MissingBar{
			Column:  entry.Column,
			Count:   entry.Count,
			Percent: percent,
		})
	}

	if column, ok := report.FirstNumericColumn(result); ok {
		data.StatsColumn = column
		data.StatRows = report.StatRows(result.SummaryStats[column])
	}

	data.Preview.Columns = result.Preview.Columns
	for _, row := range result.Preview.Rows {
		cells := make([]string, len(result.Preview.Columns))
		for i, column := range result.Preview.Columns {
			cells[i] = report.CellText(row[column])
		}
		data.Preview.Rows = append(data.Preview.Rows, cells)
	}

	return data
}

func resolveOutputPath(fileName, outputPath string) (string, error) {
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
		if base == "" || base == "." {
			base = "csvdash"
		}
		outputPath = base + "-report.html"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	return absPath, nil
}

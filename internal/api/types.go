package api

// AnalysisResult is the JSON body returned by the analysis service for a
// successfully analyzed CSV file.
type AnalysisResult struct {
	FileName       string                 `json:"fileName"`
	Shape          Shape                  `json:"shape"`
	Dtypes         map[string]string      `json:"dtypes"`
	Missing        Missing                `json:"missing"`
	NumericColumns []string               `json:"numericColumns"`
	SummaryStats   map[string]ColumnStats `json:"summaryStats"`
	Correlation    *Correlation           `json:"correlation,omitempty"`
	Preview        Preview                `json:"preview"`
}

// Shape holds the dataset dimensions.
type Shape struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Missing holds missing-value counts, total and per column.
type Missing struct {
	Total    int            `json:"total"`
	ByColumn map[string]int `json:"byColumn"`
}

// ColumnStats is the descriptive-statistics record computed per numeric column.
type ColumnStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Correlation is the pairwise correlation matrix over numeric columns.
// The service may omit it entirely for datasets with fewer than two
// numeric columns.
type Correlation struct {
	Columns []string    `json:"columns"`
	Matrix  [][]float64 `json:"matrix"`
}

// Preview is a bounded sample of rows returned for display purposes only.
// Row values are arbitrary scalars: string, number, bool, or null.
type Preview struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// ErrorResponse is the body the service returns when it rejects a file
// (empty file, unreadable encoding, and so on).
type ErrorResponse struct {
	Error string `json:"error"`
}

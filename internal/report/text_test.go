package report

import (
	"strings"
	"testing"
)

func TestRenderTextContents(t *testing.T) {
	out := RenderText(salesResult(), 12)

	for _, want := range []string{
		"sales.csv",
		"Rows:            100",
		"Columns:         5",
		"Missing values:  3",
		"Numeric columns: 1",
		"Statistics: age",
		"41.2000",
		"Preview (1 rows)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTextIdempotent(t *testing.T) {
	result := salesResult()

	first := RenderText(result, 12)
	second := RenderText(result, 12)

	if first != second {
		t.Error("rendering the same result twice produced different output")
	}
}

func TestRenderTextNoNumericColumns(t *testing.T) {
	result := salesResult()
	result.NumericColumns = nil

	out := RenderText(result, 12)
	if !strings.Contains(out, "No numeric columns detected") {
		t.Errorf("expected numeric-column fallback, got:\n%s", out)
	}
}

func TestRenderTextNullCells(t *testing.T) {
	result := salesResult()
	result.Preview.Columns = []string{"age", "name"}
	result.Preview.Rows = []map[string]any{{"age": float64(41), "name": nil}}

	out := RenderText(result, 12)
	if !strings.Contains(out, "Preview (1 rows)") {
		t.Errorf("expected preview section, got:\n%s", out)
	}
	// Null cells render empty, so the row line is just the age value.
	if strings.Contains(out, "<nil>") {
		t.Errorf("null cell leaked through: \n%s", out)
	}
}

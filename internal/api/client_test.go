package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const salesResponse = `{
	"fileName": "sales.csv",
	"shape": {"rows": 100, "cols": 5},
	"dtypes": {"age": "int64", "name": "object"},
	"missing": {"total": 3, "byColumn": {"age": 3}},
	"numericColumns": ["age"],
	"summaryStats": {
		"age": {"count": 97, "mean": 41.2, "std": 5.1, "min": 18, "p25": 35, "median": 41, "p75": 47, "max": 70}
	},
	"preview": {"columns": ["age"], "rows": [{"age": 41}]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client, server
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotMethod, gotPath, gotFilename, gotContent string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected multipart field 'file': %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer file.Close()

		gotFilename = header.Filename
		content, _ := io.ReadAll(file)
		gotContent = string(content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(salesResponse))
	})

	result, err := client.Analyze(context.Background(), "sales.csv", strings.NewReader("age\n41\n"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/analyze/csv" {
		t.Errorf("expected path /analyze/csv, got %s", gotPath)
	}
	if gotFilename != "sales.csv" {
		t.Errorf("expected filename sales.csv, got %s", gotFilename)
	}
	if gotContent != "age\n41\n" {
		t.Errorf("uploaded content mismatch: %q", gotContent)
	}

	if result.FileName != "sales.csv" {
		t.Errorf("expected fileName sales.csv, got %s", result.FileName)
	}
	if result.Shape.Rows != 100 || result.Shape.Cols != 5 {
		t.Errorf("unexpected shape: %+v", result.Shape)
	}
	if result.Missing.Total != 3 || result.Missing.ByColumn["age"] != 3 {
		t.Errorf("unexpected missing counts: %+v", result.Missing)
	}
	if len(result.NumericColumns) != 1 || result.NumericColumns[0] != "age" {
		t.Errorf("unexpected numeric columns: %v", result.NumericColumns)
	}

	stats, ok := result.SummaryStats["age"]
	if !ok {
		t.Fatal("expected summary stats for age")
	}
	if stats.Count != 97 || stats.Mean != 41.2 || stats.Max != 70 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	if len(result.Preview.Rows) != 1 {
		t.Fatalf("expected 1 preview row, got %d", len(result.Preview.Rows))
	}
	if v, ok := result.Preview.Rows[0]["age"].(float64); !ok || v != 41 {
		t.Errorf("unexpected preview value: %v", result.Preview.Rows[0]["age"])
	}
}

func TestAnalyzeApplicationError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Unsupported file encoding"}`))
	})

	_, err := client.Analyze(context.Background(), "bad.csv", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for error-field response")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Type != ErrTypeApplication {
		t.Errorf("expected application error, got %s", svcErr.Type)
	}
	if DisplayMessage(err) != "Unsupported file encoding" {
		t.Errorf("expected server error text, got %q", DisplayMessage(err))
	}
}

func TestAnalyzeErrorPrecedence(t *testing.T) {
	// A non-2xx status with a populated error field surfaces the field text,
	// not the status fallback.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "empty CSV file"}`))
	})

	_, err := client.Analyze(context.Background(), "empty.csv", strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for 400 response")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Type != ErrTypeProtocol {
		t.Errorf("expected protocol error, got %s", svcErr.Type)
	}
	if DisplayMessage(err) != "empty CSV file" {
		t.Errorf("expected server error text, got %q", DisplayMessage(err))
	}
}

func TestAnalyzeStatusFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), "data.csv", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if DisplayMessage(err) != "analysis failed with status 500" {
		t.Errorf("unexpected message: %q", DisplayMessage(err))
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	})

	_, err := client.Analyze(context.Background(), "data.csv", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for malformed response")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Type != ErrTypeTransport {
		t.Errorf("expected transport error, got %s", svcErr.Type)
	}
}

func TestAnalyzeTransportError(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Analyze(context.Background(), "data.csv", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error for closed server")
	}

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %T", err)
	}
	if svcErr.Type != ErrTypeTransport {
		t.Errorf("expected transport error, got %s", svcErr.Type)
	}
	if DisplayMessage(err) == GenericFailureMessage {
		t.Error("transport failures with a cause should surface the cause text")
	}
}

func TestDisplayMessageFallback(t *testing.T) {
	// A failure carrying no message at all falls back to the generic string.
	err := &ServiceError{Type: ErrTypeTransport}
	if got := DisplayMessage(err); got != GenericFailureMessage {
		t.Errorf("expected %q, got %q", GenericFailureMessage, got)
	}

	if got := DisplayMessage(nil); got != "" {
		t.Errorf("expected empty message for nil error, got %q", got)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient("ftp://example.com", time.Second); err == nil {
		t.Error("expected error for non-http scheme")
	}
	if _, err := NewClient("://broken", time.Second); err == nil {
		t.Error("expected error for unparseable URL")
	}
}

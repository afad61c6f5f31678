package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// analyzePath is the single endpoint this client talks to.
const analyzePath = "/analyze/csv"

// formFieldName is the multipart field the service reads the file from.
const formFieldName = "file"

// Client talks to the analysis service. It issues exactly one request per
// call, with no retries; timeout handling is left to the underlying
// http.Client.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
}

// NewClient creates a client for the analysis service at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    parsed,
	}, nil
}

// AnalyzeFile uploads the file at path and returns the parsed analysis.
func (c *Client) AnalyzeFile(ctx context.Context, path string) (*AnalysisResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}
	defer f.Close()

	return c.Analyze(ctx, filepath.Base(path), f)
}

// Analyze uploads one CSV under the given filename and returns the parsed
// analysis. Any failure collapses to a *ServiceError whose DisplayMessage
// follows the precedence: server error text, transport error text, generic.
func (c *Client) Analyze(ctx context.Context, filename string, r io.Reader) (*AnalysisResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(formFieldName, filename)
	if err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}
	if err := writer.Close(); err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}

	endpoint := c.baseURL.JoinPath(analyzePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &buf)
	if err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}

	// A populated error field wins over everything else, whatever the status.
	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		errType := ErrTypeApplication
		if !isSuccess(resp.StatusCode) {
			errType = ErrTypeProtocol
		}
		return nil, newServiceError(errType, errResp.Error)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, newServiceError(ErrTypeProtocol,
			fmt.Sprintf("analysis failed with status %d", resp.StatusCode))
	}

	var result AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newServiceErrorWithCause(ErrTypeTransport, "", err)
	}

	return &result, nil
}

// BaseURL returns the configured service URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

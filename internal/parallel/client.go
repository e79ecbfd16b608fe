package parallel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://api.parallel.ai"

	// DefaultBetaVersion is sent in the parallel-beta header.
	DefaultBetaVersion = "search-extract-2025-10-10"

	// APIKeyEnv names the environment variable holding the API key.
	APIKeyEnv = "PARALLEL_API_KEY"
)

// Client talks to the search and extract endpoints via direct HTTP.
type Client struct {
	BaseURL     string
	APIKey      string
	BetaVersion string
	HTTPClient  *http.Client
	// Timeout bounds a single call. Zero leaves the call unbounded.
	Timeout time.Duration
	// CorrelationID tags trace entries for this client.
	CorrelationID string
}

// NewClient returns a client with defaults applied.
func NewClient(baseURL, apiKey string) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = DefaultBaseURL
	}

	return &Client{
		BaseURL:     url,
		APIKey:      strings.TrimSpace(apiKey),
		BetaVersion: DefaultBetaVersion,
	}
}

// Extract posts an extract request.
func (c *Client) Extract(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("extract request is required")
	}
	var parsed ExtractResponse
	if err := c.post(ctx, req, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Search posts either search request variant.
func (c *Client) Search(ctx context.Context, req Request) (*SearchResponse, error) {
	switch req.(type) {
	case *SearchObjectiveRequest, *SearchQueryRequest:
	default:
		return nil, fmt.Errorf("unsupported search request %T", req)
	}
	var parsed SearchResponse
	if err := c.post(ctx, req, &parsed); err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (c *Client) post(ctx context.Context, req Request, out any) error {
	if c == nil {
		return fmt.Errorf("parallel client not configured")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api key is required")
	}

	ctx, cancel := withTimeout(ctx, c.Timeout)
	if cancel != nil {
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + req.Endpoint()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	beta := c.BetaVersion
	if beta == "" {
		beta = DefaultBetaVersion
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("parallel-beta", beta)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	entry := TraceEntry{
		Endpoint:      req.Endpoint(),
		Method:        http.MethodPost,
		CorrelationID: c.CorrelationID,
		RequestBody:   body,
	}
	start := time.Now()
	defer func() {
		entry.DurationMs = time.Since(start).Milliseconds()
		Trace(entry)
	}()

	resp, err := client.Do(httpReq)
	if err != nil {
		entry.Error = err.Error()
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	entry.StatusCode = resp.StatusCode
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		entry.Error = err.Error()
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		entry.Error = apiErr.Error()
		return apiErr
	}

	if json.Valid(respBody) {
		entry.Response = respBody
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		entry.Error = err.Error()
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, nil
	}
	return context.WithTimeout(ctx, timeout)
}

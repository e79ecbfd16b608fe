package parallel

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, path string, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Post(path, handler)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestClientRequiresAPIKey(t *testing.T) {
	client := NewClient("", "")
	_, err := client.Extract(context.Background(), NewExtractRequest([]string{"u"}, nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("  ", " key ")
	require.Equal(t, DefaultBaseURL, client.BaseURL)
	require.Equal(t, "key", client.APIKey)
	require.Equal(t, DefaultBetaVersion, client.BetaVersion)
}

func TestClientSendsExtractRequest(t *testing.T) {
	server := newTestServer(t, ExtractPath, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.Equal(t, DefaultBetaVersion, r.Header.Get("parallel-beta"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Equal(t, true, payload["full_content"])
		_, hasObjective := payload["objective"]
		require.False(t, hasObjective)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"extract_id":"ex_1","results":[{"url":"https://a.example","title":"A","full_content":"body"}],"errors":[{"url":"https://b.example","error_type":"fetch_failed","http_status_code":404,"content":"gone"}]}`))
	})

	client := NewClient(server.URL, "test-key")
	client.HTTPClient = server.Client()

	resp, err := client.Extract(context.Background(), NewExtractRequest([]string{"https://a.example"}, nil))
	require.NoError(t, err)
	require.Equal(t, "ex_1", resp.ExtractID)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "body", resp.Results[0].FullContent)
	require.Len(t, resp.Errors, 1)
	require.Equal(t, 404, resp.Errors[0].HTTPStatusCode)
}

func TestClientSendsSearchRequest(t *testing.T) {
	server := newTestServer(t, SearchPath, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"objective":"hello world","mode":"agentic","max_results":10}`, string(body))
		_, _ = w.Write([]byte(`{"search_id":"s_1","results":[{"url":"https://a.example","excerpts":["one"],"publish_date":"2025-01-02"}]}`))
	})

	client := NewClient(server.URL+"/", "test-key")
	client.HTTPClient = server.Client()

	resp, err := client.Search(context.Background(), NewQuerySearch("hello world", nil, ModeAgentic, 10))
	require.NoError(t, err)
	require.Equal(t, "s_1", resp.SearchID)
	require.Equal(t, []string{"one"}, resp.Results[0].Excerpts)
	require.Equal(t, "2025-01-02", resp.Results[0].PublishDate)
}

func TestClientRejectsExtractOnSearch(t *testing.T) {
	client := NewClient("", "test-key")
	_, err := client.Search(context.Background(), NewExtractRequest([]string{"u"}, nil))
	require.Error(t, err)
}

func TestClientErrorsOnNon2xx(t *testing.T) {
	server := newTestServer(t, SearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	})

	client := NewClient(server.URL, "test-key")
	client.HTTPClient = server.Client()

	_, err := client.Search(context.Background(), NewObjectiveSearch("x"))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "rate limited", apiErr.Body)
	require.Equal(t, "API error (429): rate limited", err.Error())
}

func TestClientKeepsRawErrorBody(t *testing.T) {
	server := newTestServer(t, SearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("  {\"error\": \"bad\"}\n"))
	})

	client := NewClient(server.URL, "test-key")
	client.HTTPClient = server.Client()

	_, err := client.Search(context.Background(), NewObjectiveSearch("x"))
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "  {\"error\": \"bad\"}\n", apiErr.Body)
}

func TestClientErrorsOnInvalidJSON(t *testing.T) {
	server := newTestServer(t, SearchPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	client := NewClient(server.URL, "test-key")
	client.HTTPClient = server.Client()

	_, err := client.Search(context.Background(), NewObjectiveSearch("x"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "decode response:"))
}

func TestClientErrorsOnConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, "test-key")
	_, err := client.Search(context.Background(), NewObjectiveSearch("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")
}

func TestClientWritesTrace(t *testing.T) {
	server := newTestServer(t, SearchPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"search_id":"s_2","results":[]}`))
	})

	path := filepath.Join(t.TempDir(), "trace.ndjson")
	_, err := EnableTracing(path)
	require.NoError(t, err)
	t.Cleanup(DisableTracing)
	require.True(t, IsTracingEnabled())

	client := NewClient(server.URL, "secret-key")
	client.HTTPClient = server.Client()
	client.CorrelationID = "corr-1"

	_, err = client.Search(context.Background(), NewObjectiveSearch("x"))
	require.NoError(t, err)
	DisableTracing()
	require.False(t, IsTracingEnabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	require.NotContains(t, lines[0], "secret-key")

	var entry TraceEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, SearchPath, entry.Endpoint)
	require.Equal(t, "corr-1", entry.CorrelationID)
	require.Equal(t, http.StatusOK, entry.StatusCode)
	require.JSONEq(t, `{"search_id":"s_2","results":[]}`, string(entry.Response))
}

package parallel

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// TraceEntry is one API call as written to the trace file. Request headers
// are never recorded, so the API key stays out of traces.
type TraceEntry struct {
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Endpoint      string          `json:"endpoint"`
	Method        string          `json:"method"`
	RequestBody   json.RawMessage `json:"request_body,omitempty"`
	StatusCode    int             `json:"status_code,omitempty"`
	Response      json.RawMessage `json:"response,omitempty"`
	Error         string          `json:"error,omitempty"`
	DurationMs    int64           `json:"duration_ms"`
}

var (
	traceMu   sync.Mutex
	traceFile *os.File
)

// EnableTracing appends one NDJSON line per API call to path until the
// returned cleanup (or DisableTracing) runs. A previously open trace file is
// closed first.
func EnableTracing(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}

	traceMu.Lock()
	previous := traceFile
	traceFile = f
	traceMu.Unlock()

	if previous != nil {
		_ = previous.Close()
	}
	return DisableTracing, nil
}

// DisableTracing stops tracing and closes the trace file.
func DisableTracing() {
	traceMu.Lock()
	defer traceMu.Unlock()
	if traceFile != nil {
		_ = traceFile.Close()
		traceFile = nil
	}
}

// IsTracingEnabled returns true if tracing is active.
func IsTracingEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceFile != nil
}

// Trace records entry when tracing is enabled. Write failures are dropped:
// a broken trace file must not fail the API call.
func Trace(entry TraceEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return
	}

	traceMu.Lock()
	defer traceMu.Unlock()
	if traceFile == nil {
		return
	}
	_, _ = traceFile.Write(append(line, '\n'))
}

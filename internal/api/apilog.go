package api

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// APILogEntry is a single record written to the API log file.
type APILogEntry struct {
	Timestamp  string `json:"ts"`
	Event      string `json:"event"`           // "request" or "request_failed"
	Label      string `json:"label,omitempty"` // short endpoint name
	Method     string `json:"method,omitempty"`
	URL        string `json:"url,omitempty"`
	StatusCode int    `json:"status_code,omitempty"` // 0 = network error
	DurationMS int64  `json:"duration_ms"`
	Bytes      int64  `json:"bytes,omitempty"` // Content-Length when announced
	Error      string `json:"error,omitempty"`
}

// apiLogger appends JSON-line entries to a file.
type apiLogger struct {
	mu  sync.Mutex
	enc *json.Encoder
	f   *os.File
}

// Logger is the package-level API logger. All log functions are no-ops while it is nil.
var Logger *apiLogger

// InitAPILogger opens (or creates) the API log file at logPath in append mode.
// The parent directory must already exist.
func InitAPILogger(logPath string) error {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("api logger: open %s: %w", logPath, err)
	}
	Logger = &apiLogger{f: f, enc: json.NewEncoder(f)}
	return nil
}

// CloseAPILogger flushes and closes the API log and disables logging.
func CloseAPILogger() error {
	if Logger == nil {
		return nil
	}
	l := Logger
	Logger = nil
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// write failures are ignored; a logging error must never abort a download.
func (l *apiLogger) write(e APILogEntry) {
	e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(e)
}

// LogRequest records a completed HTTP round trip.
func LogRequest(label, method, url string, statusCode int, size int64, duration time.Duration, reqErr error) {
	if Logger == nil {
		return
	}
	e := APILogEntry{
		Event:      "request",
		Label:      label,
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		DurationMS: duration.Milliseconds(),
	}
	if size > 0 {
		e.Bytes = size
	}
	if reqErr != nil {
		e.Event = "request_failed"
		e.Error = reqErr.Error()
	}
	Logger.write(e)
}

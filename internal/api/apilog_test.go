package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func readAPILog(t *testing.T, path string) []APILogEntry {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open api log: %v", err)
	}
	defer f.Close()
	var entries []APILogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e APILogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("api log line %q is not JSON: %v", scanner.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLogRequestIsNoOpWithoutLogger(t *testing.T) {
	_ = CloseAPILogger()
	LogRequest("media", http.MethodGet, "https://cdn.example/a.mp4", 200, 10, time.Second, nil)
}

func TestAPILogRecordsRequests(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "api.jsonl")
	if err := InitAPILogger(logPath); err != nil {
		t.Fatalf("init api logger: %v", err)
	}
	t.Cleanup(func() { _ = CloseAPILogger() })

	LogRequest("media", http.MethodGet, "https://cdn.example/a.mp4", 200, 2048, 1500*time.Millisecond, nil)
	LogRequest("media", http.MethodGet, "https://cdn.example/b.mp4", 0, -1, 3*time.Millisecond, errors.New("connection refused"))
	if err := CloseAPILogger(); err != nil {
		t.Fatalf("close api logger: %v", err)
	}

	entries := readAPILog(t, logPath)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	first := entries[0]
	if first.Event != "request" || first.StatusCode != 200 || first.Bytes != 2048 || first.DurationMS != 1500 {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if first.Timestamp == "" {
		t.Fatal("timestamp missing")
	}
	second := entries[1]
	if second.Event != "request_failed" || second.Error != "connection refused" || second.Bytes != 0 {
		t.Fatalf("unexpected second entry: %+v", second)
	}
}

func TestDoWritesAPILogEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	logPath := filepath.Join(t.TempDir(), "api.jsonl")
	if err := InitAPILogger(logPath); err != nil {
		t.Fatalf("init api logger: %v", err)
	}
	t.Cleanup(func() { _ = CloseAPILogger() })

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/a.mp4", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := Do(req, "media")
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()
	_ = CloseAPILogger()

	entries := readAPILog(t, logPath)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Label != "media" || entries[0].URL != srv.URL+"/a.mp4" || entries[0].Bytes != 5 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestInitAPILoggerMissingDir(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "missing", "api.jsonl")
	if err := InitAPILogger(logPath); err == nil {
		_ = CloseAPILogger()
		t.Fatal("expected error for missing directory")
	}
	if Logger != nil {
		t.Fatal("logger must stay nil after failed init")
	}
}

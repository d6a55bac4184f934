package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmagar/jupiter-dl/internal/model"
)

const (
	UserAgent        = "Mozilla/5.0 (Windows NT 6.1; Win64; x64)"
	ExpectedHostname = "jupiter.err.ee"
)

var (
	// APIBaseURL is the ERR services API root. Tests point it at an httptest server.
	APIBaseURL = "https://services.err.ee/api/v2/"

	// Client has no timeout: a stalled transfer blocks until the process is stopped.
	// Compression is disabled so media bodies are copied as sent and
	// Content-Length stays meaningful.
	Client = &http.Client{
		Transport: &http.Transport{
			Proxy:              http.ProxyFromEnvironment,
			DisableCompression: true,
		},
	}
)

// Do executes req with Client and records the outcome in the API log.
// label is a short endpoint name used in log entries (e.g. "media").
// Caller is responsible for closing the returned response body.
func Do(req *http.Request, label string) (*http.Response, error) {
	start := time.Now()
	resp, err := Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		LogRequest(label, req.Method, req.URL.String(), 0, -1, duration, err)
		return nil, err
	}
	LogRequest(label, req.Method, req.URL.String(), resp.StatusCode, resp.ContentLength, duration, nil)
	return resp, nil
}

// CheckStatus returns an error for any non-2xx response.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s failed: %s", resp.Request.URL.Redacted(), resp.Status)
	}
	return nil
}

// ContentPageURL builds the getContentPageData endpoint for a content ID.
func ContentPageURL(contentID string) string {
	return APIBaseURL + "vodContent/getContentPageData?contentId=" + contentID
}

// GetContentPageData fetches the page metadata for a content ID and returns
// its "data" object.
func GetContentPageData(ctx context.Context, contentID string) (*model.PageData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ContentPageURL(contentID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("User-Agent", UserAgent)
	req.Header.Add("Referer", "https://"+ExpectedHostname+"/"+contentID)

	do, err := Do(req, "vodContent.getContentPageData")
	if err != nil {
		return nil, err
	}
	defer do.Body.Close()
	if err := CheckStatus(do); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(do.Body)
	if err != nil {
		return nil, fmt.Errorf("read page data for content ID '%s': %w", contentID, err)
	}
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode page data for content ID '%s': %w", contentID, err)
	}
	obj, isObject := parsed.(map[string]any)
	if _, ok := obj["data"]; !isObject || !ok {
		return nil, fmt.Errorf("%w: page data for content ID '%s' could not be retrieved, server responded with: %s",
			model.ErrPageDataNotFound, contentID, body)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode page data for content ID '%s': %w", contentID, err)
	}
	return &model.PageData{Raw: envelope.Data}, nil
}

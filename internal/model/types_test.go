package model

import "testing"

func TestMainContentTitle(t *testing.T) {
	tests := []struct {
		name    string
		content MainContent
		want    string
	}{
		{name: "heading only", content: MainContent{Heading: "Pealtnägija"}, want: "Pealtnägija"},
		{name: "with sub-heading", content: MainContent{Heading: "Ringvaade", SubHeading: "12.03.2024"}, want: "Ringvaade -- 12.03.2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.Title(); got != tt.want {
				t.Fatalf("unexpected title: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestPageDataMainContent(t *testing.T) {
	page := &PageData{Raw: []byte(`{"mainContent": {"id": "1608226", "type": "episode", "heading": "Film",` +
		` "medias": [{"id": "x", "src": {"file": "//cdn.example/a.mp4"}, "subtitles": [{"src": "//cdn.example/a.vtt", "srclang": 1}]}]}}`)}
	content, err := page.MainContent()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content == nil || content.Type != "episode" || len(content.Medias) != 1 {
		t.Fatalf("unexpected mainContent: %+v", content)
	}
	if got := content.Medias[0].Subtitles[0].Src; got != "//cdn.example/a.vtt" {
		t.Fatalf("subtitle src = %q", got)
	}

	for _, raw := range []string{`null`, `{"seoData": {}}`} {
		content, err := (&PageData{Raw: []byte(raw)}).MainContent()
		if err != nil || content != nil {
			t.Fatalf("MainContent(%s) = %+v, %v; want nil, nil", raw, content, err)
		}
	}

	if _, err := (&PageData{Raw: []byte(`{"mainContent": {"heading": 5}}`)}).MainContent(); err == nil {
		t.Fatal("expected decode error for mismatched heading")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   LogLevel
		wantOK bool
	}{
		{in: "", want: LogLevelInfo, wantOK: true},
		{in: "INFO", want: LogLevelInfo, wantOK: true},
		{in: "debug", want: LogLevelDebug, wantOK: true},
		{in: "verbose", want: LogLevelDebug, wantOK: true},
		{in: " warning ", want: LogLevelWarn, wantOK: true},
		{in: "quiet", want: LogLevelWarn, wantOK: true},
		{in: "trace", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("ParseLogLevel(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

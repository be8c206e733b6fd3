package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("wrote screenshot", "path", "screenshot-1.png")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if record["msg"] != "wrote screenshot" || record["path"] != "screenshot-1.png" {
		t.Fatalf("unexpected record %v", record)
	}
	if ts, _ := record["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC RFC3339 time, got %v", record["time"])
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record leaked at warn level: %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatalf("expected a logger")
	}
}

func TestNewOnlyKnownFormats(t *testing.T) {
	for _, format := range []string{"", "text", "JSON"} {
		if _, err := New(Options{Format: format, Output: &bytes.Buffer{}}); err != nil {
			t.Fatalf("format %q: %v", format, err)
		}
	}
	if _, err := New(Options{Format: "console"}); err == nil {
		t.Fatalf("expected console format to be rejected")
	}
}

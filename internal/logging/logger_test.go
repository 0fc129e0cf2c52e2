package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, expected := range cases {
		if got := ParseLevel(input); got != expected {
			t.Fatalf("ParseLevel(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "info", Format: "json"})
	logger.Debug("hidden")
	logger.Info("booked", slog.String("attachment", "a-1"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a single json line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "booked" || entry["attachment"] != "a-1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

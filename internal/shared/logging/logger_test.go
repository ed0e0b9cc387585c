package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"err":     slog.LevelError,
		"trace":   slog.LevelDebug - 2,
		"verbose": slog.LevelInfo,
	}
	for raw, expected := range cases {
		if actual := ParseLevel(raw); actual != expected {
			t.Fatalf("ParseLevel(%q) expected %v got %v", raw, expected, actual)
		}
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Config{Level: "warn", Format: "json"})
	logger.Info("dropped")
	logger.Warn("kept", slog.String("listingId", "l1"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected a single json record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "kept" || record["listingId"] != "l1" {
		t.Fatalf("unexpected record: %v", record)
	}
}

func TestWithTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(New(&buf, Config{Format: "json", Service: "negocios-horarios"}))
	defer slog.SetDefault(previous)

	With("badge-refresher").Info("tick")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record["component"] != "badge-refresher" || record["service"] != "negocios-horarios" {
		t.Fatalf("expected component attribute, got %v", record)
	}
}

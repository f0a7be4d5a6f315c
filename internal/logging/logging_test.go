package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewJSONWritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "json", Writer: &buf})

	log.With(String("strategy", "manual")).Debug(context.Background(), "converted",
		Float64("w", 0.5),
		Error(errors.New("boom")),
	)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if rec["msg"] != "converted" {
		t.Fatalf("msg = %v, want converted", rec["msg"])
	}
	if rec["strategy"] != "manual" {
		t.Fatalf("strategy = %v, want manual", rec["strategy"])
	}
	if rec["w"] != 0.5 {
		t.Fatalf("w = %v, want 0.5", rec["w"])
	}
	if rec["error"] != "boom" {
		t.Fatalf("error = %v, want boom", rec["error"])
	}
}

func TestLevelFiltersLowerRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Writer: &buf})

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewFromEnvDefaultsToWarn(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	log := NewFromEnv(&buf)
	log.Info(context.Background(), "quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at default level, got %q", buf.String())
	}
}

func TestNoopDropsEverything(t *testing.T) {
	log := Noop().With(String("k", "v"))
	log.Error(context.Background(), "ignored")
}

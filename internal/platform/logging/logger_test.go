package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("component", "test")

	logger.Info("projection built", "match_id", "A5WasEE6", "error", errors.New("boom"))

	var record map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("unmarshal log record: %v (raw=%s)", err, buf.String())
	}
	if record["msg"] != "projection built" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["component"] != "test" || record["match_id"] != "A5WasEE6" {
		t.Fatalf("missing fields: %+v", record)
	}
	if record["error"] != "boom" {
		t.Fatalf("expected error field, got %v", record["error"])
	}
	if caller, _ := record["caller"].(string); !strings.Contains(caller, "logger_test.go:") {
		t.Fatalf("expected caller to point at the test file, got %v", record["caller"])
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info record to be filtered, got %s", buf.String())
	}
}

func TestLogger_MirrorReceivesInheritedFields(t *testing.T) {
	var (
		gotMsg  string
		gotArgs []any
	)
	SetMirror(func(_ context.Context, _ Level, msg string, args ...any) {
		gotMsg = msg
		gotArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	NewJSONWriter(&buf, LevelInfo).With("route", "match").InfoContext(context.Background(), "http request", "status", 200)

	if gotMsg != "http request" {
		t.Fatalf("mirror not called, msg=%q", gotMsg)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "route" || gotArgs[2] != "status" {
		t.Fatalf("unexpected mirrored args: %+v", gotArgs)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}

func TestLogger_BadKeysAndTrailingKey(t *testing.T) {
	var buf bytes.Buffer
	NewJSONWriter(&buf, LevelInfo).Info("odd args", 42, "dangling")

	var record map[string]any
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("unmarshal log record: %v (raw=%s)", err, buf.String())
	}
	if record[badKey] != float64(42) {
		t.Fatalf("expected non-string key under %s, got %+v", badKey, record)
	}
	if v, ok := record["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key logged as null, got %+v", record)
	}
}

func TestLogger_SyncOnce(t *testing.T) {
	logger := NewJSONWriter(&bytes.Buffer{}, LevelInfo)
	child := logger.With("k", "v")
	if err := logger.Sync(); err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if err := child.Sync(); err != nil {
		t.Fatalf("shared sync must be a no-op after the first: %v", err)
	}
}

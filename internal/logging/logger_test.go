package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConsoleHandlerPromotesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelDebug))
	child := NewComponentLogger(logger, "sweep")
	child.Info("pass complete", Int("files_moved", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO sweep: pass complete") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "files_moved=3") {
		t.Fatalf("missing attribute: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted, not rendered as key: %q", line)
	}
}

func TestConsoleHandlerQuotesAndErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelDebug))
	logger.Error("move failed", Error(errors.New("device busy")), String("path", "/tmp/a b"))

	line := buf.String()
	if !strings.Contains(line, `error="device busy"`) {
		t.Fatalf("error not quoted: %q", line)
	}
	if !strings.Contains(line, `path="/tmp/a b"`) {
		t.Fatalf("path not quoted: %q", line)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelDebug))
	logger.WithGroup("stats").Info("done", Int64("space_cleared", 42))

	if !strings.Contains(buf.String(), "stats.space_cleared=42") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, slog.LevelWarn))
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "sweeper.log")
	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", String("k", "v"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file content: %q", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestContextRoundTrip(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext must never return nil")
	}
	logger := NewNop()
	ctx := WithContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Fatal("expected stored logger back")
	}
}

package notify_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sweeper/internal/config"
	"sweeper/internal/notify"
	"sweeper/internal/sweep"
)

func newConfig(topic string) *config.Config {
	cfg := config.Default()
	cfg.Notifications.NtfyTopic = topic
	cfg.Notifications.RequestTimeout = 5
	cfg.Notifications.Sweeps = true
	cfg.Notifications.Repairs = true
	cfg.Notifications.Errors = true
	return &cfg
}

func TestNewServiceReturnsNoopWhenTopicMissing(t *testing.T) {
	svc := notify.NewService(newConfig(""))
	snap := sweep.Snapshot{FilesMoved: 1}
	if err := svc.SweepCompleted(context.Background(), snap, time.Second); err != nil {
		t.Fatalf("expected noop notifier to return nil, got %v", err)
	}
}

type captured struct {
	title    string
	tags     string
	priority string
	body     string
}

func capture(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.title = r.Header.Get("Title")
		got.tags = r.Header.Get("Tags")
		got.priority = r.Header.Get("Priority")
		got.body = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return server, got
}

func TestSweepCompletedFormatsSummary(t *testing.T) {
	server, got := capture(t)
	svc := notify.NewService(newConfig(server.URL))

	snap := sweep.Snapshot{FilesMoved: 4, SpaceCleared: 2048}
	if err := svc.SweepCompleted(context.Background(), snap, 90*time.Second); err != nil {
		t.Fatalf("SweepCompleted: %v", err)
	}
	if got.title != "Sweeper - Sweep Complete" {
		t.Fatalf("title = %q", got.title)
	}
	if got.body != "Archived 4 files (2.0 KiB) in 1m30s" {
		t.Fatalf("body = %q", got.body)
	}
	if got.tags != "sweeper,sweep,completed" {
		t.Fatalf("tags = %q", got.tags)
	}
	if got.priority != "" {
		t.Fatalf("priority = %q, want default", got.priority)
	}
}

func TestSweepWithErrorsEscalatesPriority(t *testing.T) {
	server, got := capture(t)
	svc := notify.NewService(newConfig(server.URL))

	snap := sweep.Snapshot{FilesMoved: 1, Errors: 2}
	if err := svc.SweepCompleted(context.Background(), snap, time.Second); err != nil {
		t.Fatal(err)
	}
	if got.title != "Sweeper - Sweep Complete (with errors)" {
		t.Fatalf("title = %q", got.title)
	}
	if got.priority != "high" {
		t.Fatalf("priority = %q", got.priority)
	}
}

func TestErrorNotification(t *testing.T) {
	server, got := capture(t)
	svc := notify.NewService(newConfig(server.URL))

	if err := svc.Error(context.Background(), errors.New("disk full"), "forward sweep"); err != nil {
		t.Fatal(err)
	}
	if got.body != "Error during forward sweep: disk full" {
		t.Fatalf("body = %q", got.body)
	}
}

func TestDisabledKindsAreSilent(t *testing.T) {
	server, got := capture(t)
	cfg := newConfig(server.URL)
	cfg.Notifications.Sweeps = false
	svc := notify.NewService(cfg)

	if err := svc.SweepCompleted(context.Background(), sweep.Snapshot{FilesMoved: 1}, time.Second); err != nil {
		t.Fatal(err)
	}
	if got.body != "" {
		t.Fatalf("unexpected request: %q", got.body)
	}
}

func TestServerErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "topic unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	svc := notify.NewService(newConfig(server.URL))
	if err := svc.Test(context.Background()); err == nil {
		t.Fatal("expected error from 503 response")
	}
}

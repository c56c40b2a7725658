package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"sweeper/internal/config"
	"sweeper/internal/sweep"
)

const userAgent = "Sweeper-Go/0.1.0"

// Service defines the notification surface exposed to the daemon and CLI.
type Service interface {
	SweepCompleted(ctx context.Context, snap sweep.Snapshot, duration time.Duration) error
	RepairCompleted(ctx context.Context, snap sweep.Snapshot, duration time.Duration) error
	Error(ctx context.Context, err error, contextLabel string) error
	Test(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
		sweeps:   cfg.Notifications.Sweeps,
		repairs:  cfg.Notifications.Repairs,
		errors:   cfg.Notifications.Errors,
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
	sweeps   bool
	repairs  bool
	errors   bool
}

func (n *ntfyService) SweepCompleted(ctx context.Context, snap sweep.Snapshot, duration time.Duration) error {
	if !n.sweeps {
		return nil
	}
	data := payload{
		title:   "Sweeper - Sweep Complete",
		message: passSummary("Archived", snap, duration),
		tags:    []string{"sweeper", "sweep", "completed"},
	}
	if snap.Errors > 0 {
		data.title = "Sweeper - Sweep Complete (with errors)"
		data.priority = "high"
	}
	return n.send(ctx, data)
}

func (n *ntfyService) RepairCompleted(ctx context.Context, snap sweep.Snapshot, duration time.Duration) error {
	if !n.repairs {
		return nil
	}
	data := payload{
		title:   "Sweeper - Repair Complete",
		message: passSummary("Re-filed", snap, duration),
		tags:    []string{"sweeper", "repair", "completed"},
	}
	if snap.Errors > 0 {
		data.title = "Sweeper - Repair Complete (with errors)"
		data.priority = "high"
	}
	return n.send(ctx, data)
}

func (n *ntfyService) Error(ctx context.Context, err error, contextLabel string) error {
	if !n.errors {
		return nil
	}
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" during ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "Sweeper - Error",
		message:  builder.String(),
		tags:     []string{"sweeper", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) Test(ctx context.Context) error {
	data := payload{
		title:    "Sweeper - Test",
		message:  "Notification system test",
		tags:     []string{"sweeper", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func passSummary(verb string, snap sweep.Snapshot, duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}
	summary := fmt.Sprintf("%s %d files (%s) in %s",
		verb, snap.FilesMoved, humanize.IBytes(uint64(snap.SpaceCleared)), duration)
	if snap.Errors > 0 {
		summary = fmt.Sprintf("%s, %d errors", summary, snap.Errors)
	}
	return summary
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) SweepCompleted(context.Context, sweep.Snapshot, time.Duration) error  { return nil }
func (noopService) RepairCompleted(context.Context, sweep.Snapshot, time.Duration) error { return nil }
func (noopService) Error(context.Context, error, string) error                           { return nil }
func (noopService) Test(context.Context) error                                           { return nil }

package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sweeper/internal/history"
	"sweeper/internal/logging"
	"sweeper/internal/testsupport"
)

func TestStartRunsInitialSweepAndJournals(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	source := cfg.Folders.Sources[0]
	testsupport.WriteFile(t, filepath.Join(source, "loose.txt"), "x")

	d, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer d.Close()

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// The initial forward pass runs asynchronously right after Start.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(filepath.Join(source, "loose.txt")); os.IsNotExist(err) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial sweep never ran")
		}
		time.Sleep(10 * time.Millisecond)
	}
	d.Stop()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) == 0 {
		t.Fatal("no runs journaled")
	}
	if runs[0].Kind != history.KindForward || runs[0].FilesMoved != 1 {
		t.Fatalf("unexpected run: %+v", runs[0])
	}
}

func TestSecondInstanceRefused(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	if err := first.Start(context.Background()); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	defer first.Stop()

	second, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if err := second.Start(context.Background()); err != ErrAlreadyRunning {
		t.Fatalf("second Start = %v, want ErrAlreadyRunning", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, err := New(cfg, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()

	if err := d.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !d.Status().Running {
		t.Fatal("expected running status")
	}
	d.Stop()
	d.Stop()
	if d.Status().Running {
		t.Fatal("expected stopped status")
	}
}

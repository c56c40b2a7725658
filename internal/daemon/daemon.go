package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sweeper/internal/config"
	"sweeper/internal/history"
	"sweeper/internal/logging"
	"sweeper/internal/notify"
	"sweeper/internal/sweep"
)

// ErrAlreadyRunning indicates another daemon instance holds the lock.
var ErrAlreadyRunning = errors.New("daemon already running")

// lockFileName is the single-instance guard inside the state directory.
const lockFileName = "sweeperd.lock"

// Daemon schedules forward and repair passes, journals each run, and pushes
// notifications. One instance per state directory, enforced with a file
// lock.
type Daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	sweeper  *sweep.Sweeper
	store    *history.Store
	notifier notify.Service

	lock   *flock.Flock
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	running   bool
	startedAt time.Time
	lastSweep time.Time
}

// New wires the daemon from configuration. The history store stays open for
// the daemon's lifetime.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	sweeper, err := sweep.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		sweeper:  sweeper,
		store:    store,
		notifier: notify.NewService(cfg),
		lock:     flock.New(filepath.Join(cfg.LockDir(), lockFileName)),
	}, nil
}

// Start acquires the instance lock, runs an immediate forward pass, and
// begins the sweep and repair tickers. It returns once the schedule is
// running.
func (d *Daemon) Start(ctx context.Context) error {
	acquired, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire daemon lock: %w", err)
	}
	if !acquired {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.mu.Lock()
	d.running = true
	d.startedAt = time.Now()
	d.mu.Unlock()

	d.logger.Info("daemon started",
		logging.Int("sources", len(d.cfg.Folders.Sources)),
		logging.Int("mirrors", len(d.cfg.Folders.Mirrors)),
		logging.Int("sweep_interval_min", d.cfg.Workflow.SweepInterval),
		logging.Int("repair_interval_min", d.cfg.Workflow.RepairInterval))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.runForward(runCtx)
		d.sweepLoop(runCtx)
	}()

	if d.cfg.Workflow.RepairInterval > 0 {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			d.repairLoop(runCtx)
		}()
	}
	return nil
}

func (d *Daemon) sweepLoop(ctx context.Context) {
	interval := time.Duration(d.cfg.Workflow.SweepInterval) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.runForward(ctx)
		}
	}
}

func (d *Daemon) repairLoop(ctx context.Context) {
	interval := time.Duration(d.cfg.Workflow.RepairInterval) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.runRepair(ctx)
		}
	}
}

func (d *Daemon) runForward(ctx context.Context) {
	started := time.Now()
	snap, err := d.sweeper.SweepAll(ctx)
	d.finishRun(ctx, history.KindForward, started, snap, err)

	d.mu.Lock()
	d.lastSweep = started
	d.mu.Unlock()
}

func (d *Daemon) runRepair(ctx context.Context) {
	started := time.Now()
	snap, err := d.sweeper.RepairAll(ctx)
	d.finishRun(ctx, history.KindRepair, started, snap, err)
}

func (d *Daemon) finishRun(ctx context.Context, kind history.Kind, started time.Time, snap sweep.Snapshot, runErr error) {
	finished := time.Now()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		d.logger.Error("pass finished with errors",
			logging.String(logging.FieldPass, string(kind)),
			logging.Error(runErr))
		if err := d.notifier.Error(ctx, runErr, string(kind)+" pass"); err != nil {
			d.logger.Warn("error notification failed", logging.Error(err))
		}
	}

	run := history.Run{
		ID:           uuid.New().String(),
		Kind:         kind,
		StartedAt:    started,
		FinishedAt:   finished,
		FilesMoved:   snap.FilesMoved,
		SpaceCleared: snap.SpaceCleared,
		Errors:       snap.Errors,
	}
	if err := d.store.Record(ctx, run); err != nil && !errors.Is(err, context.Canceled) {
		d.logger.Error("history record failed", logging.Error(err))
	}

	if snap.FilesMoved > 0 || snap.Errors > 0 {
		var err error
		switch kind {
		case history.KindForward:
			err = d.notifier.SweepCompleted(ctx, snap, finished.Sub(started))
		case history.KindRepair:
			err = d.notifier.RepairCompleted(ctx, snap, finished.Sub(started))
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Warn("notification failed", logging.Error(err))
		}
	}
}

// Stop halts the schedule and waits for in-flight passes.
func (d *Daemon) Stop() {
	d.mu.Lock()
	running := d.running
	d.running = false
	d.mu.Unlock()
	if !running {
		return
	}

	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()

	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("lock release failed", logging.Error(err))
	}
	d.logger.Info("daemon stopped")
}

// Close stops the daemon and releases the history store.
func (d *Daemon) Close() error {
	d.Stop()
	return d.store.Close()
}

// Status is a point-in-time view for diagnostics.
type Status struct {
	Running   bool
	StartedAt time.Time
	LastSweep time.Time
}

// Status reports whether the schedule is active.
func (d *Daemon) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{Running: d.running, StartedAt: d.startedAt, LastSweep: d.lastSweep}
}

package sweep

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sweeper/internal/category"
	"sweeper/internal/config"
	"sweeper/internal/decorate"
	"sweeper/internal/logging"
)

// Sweeper coordinates forward and repair passes over the configured folders.
// One Sweeper serves the whole process; passes over distinct roots run
// concurrently, while a per-root lock keeps two passes off the same root.
type Sweeper struct {
	catalog   *category.Catalog
	decorator *decorate.Manager
	filter    *Filter
	logger    *slog.Logger
	sources   []string
	mirrors   []string
	lockDir   string
	clock     func() time.Time
}

// Option customizes Sweeper construction.
type Option func(*Sweeper)

// WithClock overrides the pass timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(s *Sweeper) {
		s.clock = clock
	}
}

// New builds a Sweeper from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Sweeper, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, Wrap(ErrConfiguration, "setup", "build catalog", "invalid category configuration", err)
	}

	s := &Sweeper{
		catalog:   catalog,
		decorator: decorate.NewManager(logger),
		filter:    NewFilter(logger),
		logger:    logging.NewComponentLogger(logger, "sweep"),
		sources:   cfg.Folders.Sources,
		mirrors:   cfg.Folders.Mirrors,
		lockDir:   cfg.LockDir(),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Sweeper) mover(stats *Stats) *Mover {
	return NewMover(s.logger, stats)
}

// SweepAll runs one forward pass over every source folder. Roots are swept
// concurrently; every root in the same call shares one pass timestamp. The
// snapshot is returned even when some roots failed.
func (s *Sweeper) SweepAll(ctx context.Context) (Snapshot, error) {
	logger := logging.WithSweepID(s.logger, uuid.New().String())
	at := s.clock()
	stats := &Stats{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs []error
	for _, root := range s.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rootLogger := logger.With(logging.String(logging.FieldRoot, root), logging.String(logging.FieldPass, "forward"))
			if err := s.withRootLock(root, rootLogger, func() error {
				return s.sweepRoot(ctx, rootLogger, root, at, stats)
			}); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	snap := stats.Snapshot()
	logger.Info("sweep finished",
		logging.Int64("files_moved", snap.FilesMoved),
		logging.Int64("space_cleared", snap.SpaceCleared),
		logging.Int64("errors", snap.Errors))
	return snap, errors.Join(errs...)
}

// RepairAll runs one repair pass over every source folder and every mirror.
func (s *Sweeper) RepairAll(ctx context.Context) (Snapshot, error) {
	logger := logging.WithSweepID(s.logger, uuid.New().String())
	stats := &Stats{}

	roots := make([]string, 0, len(s.sources)+len(s.mirrors))
	roots = append(roots, s.sources...)
	roots = append(roots, s.mirrors...)

	var errs []error
	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if len(FindArchiveRoots([]string{root})) == 0 {
			continue
		}
		rootLogger := logger.With(logging.String(logging.FieldRoot, root), logging.String(logging.FieldPass, "repair"))
		if err := s.withRootLock(root, rootLogger, func() error {
			return s.repairRoot(ctx, rootLogger, root, stats)
		}); err != nil {
			errs = append(errs, err)
		}
	}

	snap := stats.Snapshot()
	logger.Info("repair finished",
		logging.Int64("files_moved", snap.FilesMoved),
		logging.Int64("errors", snap.Errors))
	return snap, errors.Join(errs...)
}

// withRootLock runs fn while holding the root's sweep lock. A root already
// being swept by another pass is skipped, not treated as a failure; the next
// scheduled pass will pick it up.
func (s *Sweeper) withRootLock(root string, logger *slog.Logger, fn func() error) error {
	lock := flock.New(s.rootLockPath(root))
	acquired, err := lock.TryLock()
	if err != nil {
		return Wrap(ErrStructural, "lock", "acquire", root, err)
	}
	if !acquired {
		logger.Warn("root busy, skipping this pass")
		return nil
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("lock release failed", logging.Error(err))
		}
	}()
	return fn()
}

// rootLockPath maps a root to a stable lock file inside the state directory.
// Locks live outside the swept tree so that taking one never creates an
// archive root as a side effect.
func (s *Sweeper) rootLockPath(root string) string {
	h := fnv.New64a()
	h.Write([]byte(root))
	return filepath.Join(s.lockDir, fmt.Sprintf("root-%016x.lock", h.Sum64()))
}

package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"sweeper/internal/logging"
)

// MoveResult reports what happened to a single entry.
type MoveResult int

const (
	// MoveCompleted means the entry now lives at the destination.
	MoveCompleted MoveResult = iota
	// MoveSkipped means the destination already existed and the source was
	// left untouched. A later pass will retry.
	MoveSkipped
	// MoveFailed means all attempts were exhausted.
	MoveFailed
)

const (
	moveAttempts  = 3
	moveRetryWait = time.Second
)

// Mover relocates entries into the archive with bounded retries. Entries
// held open by another process are retried; a destination that already
// exists is never overwritten.
type Mover struct {
	logger *slog.Logger
	stats  *Stats
}

// NewMover returns a mover recording into stats.
func NewMover(logger *slog.Logger, stats *Stats) *Mover {
	return &Mover{
		logger: logging.NewComponentLogger(logger, "mover"),
		stats:  stats,
	}
}

// Move relocates src to dst. The moved size is measured before the move and
// counted for regular files only; directories count as a single move of size
// zero.
func (m *Mover) Move(ctx context.Context, src, dst string) (MoveResult, error) {
	info, err := os.Lstat(src)
	if err != nil {
		m.stats.recordError()
		return MoveFailed, Wrap(ErrStructural, "mover", "stat", src, err)
	}

	if _, err := os.Lstat(dst); err == nil {
		m.logger.Debug("destination exists, leaving source in place",
			logging.String("src", src),
			logging.String("dst", dst))
		return MoveSkipped, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		m.stats.recordError()
		return MoveFailed, Wrap(ErrStructural, "mover", "stat", dst, err)
	}

	var size int64
	if info.Mode().IsRegular() {
		size = info.Size()
	}

	var lastErr error
	for attempt := 1; attempt <= moveAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return MoveFailed, err
		}

		lastErr = m.relocate(src, dst, info.IsDir())
		if lastErr == nil {
			m.stats.recordMove(size)
			return MoveCompleted, nil
		}
		if !isTransientLock(lastErr) {
			break
		}

		m.logger.Debug("entry locked, retrying",
			logging.String("src", src),
			logging.Int("attempt", attempt),
			logging.Error(lastErr))
		if attempt < moveAttempts {
			select {
			case <-ctx.Done():
				return MoveFailed, ctx.Err()
			case <-time.After(moveRetryWait):
			}
		}
	}

	m.stats.recordError()
	marker := ErrStructural
	if isTransientLock(lastErr) {
		marker = ErrTransientLock
	}
	return MoveFailed, Wrap(marker, "mover", "move", src, lastErr)
}

func (m *Mover) relocate(src, dst string, isDir bool) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	// Mirror folders can live on another filesystem. Copy then delete.
	if isDir {
		if err := os.CopyFS(dst, os.DirFS(src)); err != nil {
			os.RemoveAll(dst)
			return fmt.Errorf("copy directory across devices: %w", err)
		}
		return os.RemoveAll(src)
	}
	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return fmt.Errorf("copy across devices: %w", err)
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, syscall.EXDEV)
	}
	return errors.Is(err, syscall.EXDEV)
}

// isTransientLock reports whether the failure looks like another process
// holding the entry, which a later attempt may clear.
func isTransientLock(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETXTBSY)
}

// destinationFor joins the dated subtree, category name, and entry name.
func destinationFor(subtree, categoryName, entryName string) string {
	return filepath.Join(subtree, categoryName, entryName)
}

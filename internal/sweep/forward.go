package sweep

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sweeper/internal/logging"
)

// sweepRoot runs one forward pass over a single folder. The archive root and
// dated subtree are created only when the first eligible entry is found, so
// a pass over an already-clean folder writes nothing.
func (s *Sweeper) sweepRoot(ctx context.Context, logger *slog.Logger, root string, at time.Time, stats *Stats) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Wrap(ErrConfiguration, "forward", "read folder", root, err)
		}
		return Wrap(ErrStructural, "forward", "read folder", root, err)
	}

	var subtree string
	moved := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.filter.EligibleForArchival(root, entry) {
			continue
		}

		if subtree == "" {
			subtree, err = EnsureDatedSubtree(root, at)
			if err != nil {
				stats.recordError()
				return Wrap(ErrStructural, "forward", "prepare archive", root, err)
			}
		}

		cat := s.catalog.Classify(filepath.Ext(entry.Name()))
		if _, err := s.decorator.EnsureCategoryFolder(subtree, cat); err != nil {
			stats.recordError()
			logger.Error("category folder creation failed",
				logging.String(logging.FieldCategory, cat.Name),
				logging.Error(err))
			continue
		}

		src := filepath.Join(root, entry.Name())
		dst := destinationFor(subtree, cat.Name, entry.Name())
		result, err := s.mover(stats).Move(ctx, src, dst)
		switch {
		case err != nil:
			logger.Error("move failed",
				logging.String("src", src),
				logging.String(logging.FieldCategory, cat.Name),
				logging.Error(err))
		case result == MoveCompleted:
			moved++
			logger.Debug("archived entry",
				logging.String("src", src),
				logging.String(logging.FieldCategory, cat.Name))
		}
	}

	if subtree == "" {
		logger.Debug("nothing to archive", logging.String(logging.FieldRoot, root))
		return nil
	}
	logger.Info("forward pass complete",
		logging.String(logging.FieldRoot, root),
		logging.Int("moved", moved))
	return nil
}

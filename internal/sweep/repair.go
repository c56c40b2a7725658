package sweep

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sweeper/internal/logging"
)

// repairRoot walks every dated subtree under a folder's archive root,
// recreates any category folders a partial sync dropped, re-applies their
// decoration, and files away entries left loose at the subtree level. Cloud
// mirrors replicate file contents but not local attribute bits, which is how
// subtrees end up in this state.
func (s *Sweeper) repairRoot(ctx context.Context, logger *slog.Logger, root string, stats *Stats) error {
	for subtree := range DatedSubtrees(root) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.repairSubtree(ctx, logger, subtree, stats)
	}
	return nil
}

func (s *Sweeper) repairSubtree(ctx context.Context, logger *slog.Logger, subtree string, stats *Stats) {
	for _, cat := range s.catalog.Categories() {
		if _, err := s.decorator.EnsureCategoryFolder(subtree, cat); err != nil {
			stats.recordError()
			logger.Error("category folder repair failed",
				logging.String("subtree", subtree),
				logging.String(logging.FieldCategory, cat.Name),
				logging.Error(err))
		}
	}

	entries, err := os.ReadDir(subtree)
	if err != nil {
		stats.recordError()
		logger.Error("subtree unreadable",
			logging.String("subtree", subtree),
			logging.Error(err))
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		// Directories at this level are category folders. Only loose
		// files need re-filing.
		if entry.IsDir() {
			continue
		}
		if _, system := systemEntries[strings.ToLower(entry.Name())]; system {
			continue
		}

		cat := s.catalog.Classify(filepath.Ext(entry.Name()))
		src := filepath.Join(subtree, entry.Name())
		dst := destinationFor(subtree, cat.Name, entry.Name())
		if _, err := s.mover(stats).Move(ctx, src, dst); err != nil {
			logger.Error("loose entry repair failed",
				logging.String("src", src),
				logging.Error(err))
		}
	}
}

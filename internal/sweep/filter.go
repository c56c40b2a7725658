package sweep

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"sweeper/internal/logging"
)

// ArchiveRootName is the folder created inside each swept root to hold the
// dated archive trees.
const ArchiveRootName = "Archive"

// systemEntries are never archived, regardless of where they appear. Names
// are matched case-insensitively.
var systemEntries = map[string]struct{}{
	"desktop.ini":  {},
	"thumbs.db":    {},
	".ds_store":    {},
	"recycle bin":  {},
	"$recycle.bin": {},
	"trash":        {},
}

// Filter decides which directory entries a forward sweep may move.
type Filter struct {
	logger *slog.Logger
}

// NewFilter returns a filter that logs skipped-but-unreadable entries.
func NewFilter(logger *slog.Logger) *Filter {
	return &Filter{logger: logging.NewComponentLogger(logger, "filter")}
}

// EligibleForArchival reports whether the entry in dir may be moved into the
// archive. The archive root, system entries, and anything whose name hints
// at an archive folder are excluded. The substring match is deliberately
// loose so renamed or hand-made archive folders stay in place. Unreadable
// entries are skipped with a warning rather than failing the sweep.
func (f *Filter) EligibleForArchival(dir string, entry fs.DirEntry) bool {
	name := entry.Name()
	if name == ArchiveRootName {
		return false
	}
	lower := strings.ToLower(name)
	if _, system := systemEntries[lower]; system {
		return false
	}
	if strings.Contains(lower, "archive") {
		return false
	}
	if entry.IsDir() && (strings.Contains(lower, "recycle bin") || strings.Contains(lower, "$recycle.bin")) {
		return false
	}

	if _, err := entry.Info(); err != nil {
		f.logger.Warn("skipping unreadable entry",
			logging.String("path", filepath.Join(dir, name)),
			logging.Error(err))
		return false
	}
	return true
}

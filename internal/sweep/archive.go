package sweep

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// datedLayout renders timestamps like Aug-23-2026_07-30PM. One sweep pass
// writes into exactly one dated subtree.
const datedLayout = "Jan-02-2006_03-04PM"

// ArchiveRootPath returns the archive root for a swept folder without
// creating it.
func ArchiveRootPath(root string) string {
	return filepath.Join(root, ArchiveRootName)
}

// EnsureArchiveRoot creates the archive root under a source folder if
// absent and returns its path. It does not create a dated subtree.
func EnsureArchiveRoot(root string) (string, error) {
	path := ArchiveRootPath(root)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create archive root %s: %w", path, err)
	}
	return path, nil
}

// FindArchiveRoots returns the archive roots that already exist under the
// given source folders. It never creates anything.
func FindArchiveRoots(sourceFolders []string) []string {
	var roots []string
	for _, folder := range sourceFolders {
		path := ArchiveRootPath(folder)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			roots = append(roots, path)
		}
	}
	return roots
}

// DatedSubtreePath returns the dated subtree for the given pass time without
// creating it.
func DatedSubtreePath(root string, at time.Time) string {
	return filepath.Join(ArchiveRootPath(root), at.Format(datedLayout))
}

// EnsureDatedSubtree creates the archive root and the dated subtree for the
// given pass time, returning the subtree path. Called lazily, on the first
// eligible entry only, so an empty sweep leaves no trace.
func EnsureDatedSubtree(root string, at time.Time) (string, error) {
	if _, err := EnsureArchiveRoot(root); err != nil {
		return "", err
	}
	path := DatedSubtreePath(root, at)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create dated subtree %s: %w", path, err)
	}
	return path, nil
}

// DatedSubtrees yields the dated subtree paths under a folder's archive
// root, in directory order. Child directories without an underscore in the
// name are not sweep products and are skipped. A missing archive root yields
// nothing.
func DatedSubtrees(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		archiveRoot := ArchiveRootPath(root)
		entries, err := os.ReadDir(archiveRoot)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if !strings.Contains(entry.Name(), "_") {
				continue
			}
			if !yield(filepath.Join(archiveRoot, entry.Name())) {
				return
			}
		}
	}
}

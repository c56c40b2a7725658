package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"sweeper/internal/testsupport"
)

func TestEnsureArchiveRootIdempotent(t *testing.T) {
	root := t.TempDir()

	first, err := EnsureArchiveRoot(root)
	if err != nil {
		t.Fatalf("EnsureArchiveRoot: %v", err)
	}
	second, err := EnsureArchiveRoot(root)
	if err != nil {
		t.Fatalf("second EnsureArchiveRoot: %v", err)
	}
	if first != second || first != filepath.Join(root, ArchiveRootName) {
		t.Fatalf("paths = %q, %q", first, second)
	}
	info, err := os.Stat(first)
	if err != nil || !info.IsDir() {
		t.Fatalf("archive root not a directory: %v", err)
	}
}

func TestFindArchiveRootsNeverCreates(t *testing.T) {
	withArchive := t.TempDir()
	without := t.TempDir()
	testsupport.MkdirAll(t, filepath.Join(withArchive, ArchiveRootName))

	roots := FindArchiveRoots([]string{withArchive, without})
	if len(roots) != 1 || roots[0] != filepath.Join(withArchive, ArchiveRootName) {
		t.Fatalf("roots = %v", roots)
	}
	if _, err := os.Stat(filepath.Join(without, ArchiveRootName)); !os.IsNotExist(err) {
		t.Fatal("FindArchiveRoots must not create archive roots")
	}
}

func TestEnsureDatedSubtreeCreateIfMissing(t *testing.T) {
	root := t.TempDir()

	first, err := EnsureDatedSubtree(root, passTime)
	if err != nil {
		t.Fatalf("EnsureDatedSubtree: %v", err)
	}
	second, err := EnsureDatedSubtree(root, passTime)
	if err != nil {
		t.Fatalf("same-minute EnsureDatedSubtree: %v", err)
	}
	if first != second {
		t.Fatalf("same-minute sweeps must share one subtree: %q vs %q", first, second)
	}
}

package testsupport

import (
	"path/filepath"
	"testing"

	"sweeper/internal/config"
)

// NewConfig returns a validated configuration rooted in temp directories,
// with one source folder and one mirror already created.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	base := t.TempDir()
	source := filepath.Join(base, "desktop")
	mirror := filepath.Join(base, "mirror")
	MkdirAll(t, source)
	MkdirAll(t, mirror)

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Folders.Sources = []string{source}
	cfg.Folders.Mirrors = []string{mirror}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize test config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

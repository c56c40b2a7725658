package decorate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"sweeper/internal/category"
	"sweeper/internal/logging"
)

// SidecarName is the per-folder metadata file Windows Explorer reads for
// icon and appearance hints. On other platforms it is an inert hidden-ish
// text file that still marks a folder as decorated.
const SidecarName = "Desktop.ini"

// Attributes applies platform file attributes to decorated folders and their
// sidecars. The zero implementation on non-Windows platforms does nothing.
type Attributes interface {
	HideSidecar(path string) error
	MarkFolder(path string) error
}

// Manager creates category folders and writes their decoration sidecars.
// Decoration failures never fail the surrounding sweep; they are logged and
// swallowed.
type Manager struct {
	logger *slog.Logger
	attrs  Attributes
}

// NewManager returns a Manager using the platform attribute implementation.
func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		logger: logging.NewComponentLogger(logger, "decorate"),
		attrs:  platformAttributes(),
	}
}

// EnsureCategoryFolder creates <parent>/<category name> if needed and
// decorates it. The returned path is valid even when decoration failed.
func (m *Manager) EnsureCategoryFolder(parent string, cat category.Category) (string, error) {
	path := filepath.Join(parent, cat.Name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create category folder %s: %w", path, err)
	}
	m.decorate(path, cat)
	return path, nil
}

// decorate writes the sidecar once. An existing sidecar means the folder was
// decorated by an earlier pass and is left untouched.
func (m *Manager) decorate(path string, cat category.Category) {
	sidecar := filepath.Join(path, SidecarName)
	if _, err := os.Lstat(sidecar); err == nil {
		return
	}

	content := renderSidecar(cat.Decoration)
	if err := os.WriteFile(sidecar, []byte(content), 0o644); err != nil {
		m.logger.Warn("sidecar write failed",
			logging.String(logging.FieldCategory, cat.Name),
			logging.String("path", sidecar),
			logging.Error(err))
		return
	}

	if err := m.attrs.HideSidecar(sidecar); err != nil {
		m.logger.Warn("sidecar attributes failed",
			logging.String("path", sidecar),
			logging.Error(err))
	}
	if err := m.attrs.MarkFolder(path); err != nil {
		m.logger.Warn("folder attributes failed",
			logging.String("path", path),
			logging.Error(err))
	}
}

func renderSidecar(d category.Decoration) string {
	content := "[.ShellClassInfo]\r\n"
	if d.IconResource != "" {
		content += fmt.Sprintf("IconResource=%s,%d\r\n", d.IconResource, d.IconIndex)
	}
	content += fmt.Sprintf("BackgroundColor=%d %d %d\r\n", d.Color[0], d.Color[1], d.Color[2])
	return content
}

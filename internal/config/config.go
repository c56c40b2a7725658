package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sweeper/internal/category"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Folders lists the source folders the sweeper organizes. Sources are the
// primary user-facing folders (Desktop, Downloads, ...); Mirrors are
// cloud-synced copies of the same, reached through already-resolved local
// paths and treated as ordinary directories.
type Folders struct {
	Sources []string `toml:"sources"`
	Mirrors []string `toml:"mirrors"`
}

// Workflow contains daemon timing configuration. Intervals are minutes.
type Workflow struct {
	SweepInterval  int `toml:"sweep_interval"`
	RepairInterval int `toml:"repair_interval"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Notifications contains configuration for ntfy push notifications.
type Notifications struct {
	NtfyTopic      string `toml:"ntfy_topic"`
	RequestTimeout int    `toml:"request_timeout"`
	Sweeps         bool   `toml:"sweeps"`
	Repairs        bool   `toml:"repairs"`
	Errors         bool   `toml:"errors"`
}

// Category configures one classification target. Declaration order in the
// config file is the classification priority order.
type Category struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
	Icon       string   `toml:"icon"`
	IconIndex  int      `toml:"icon_index"`
	Color      []uint8  `toml:"color"`
}

// Config encapsulates all configuration values for the sweeper.
//
// Sections by subsystem:
//   - Paths: log/state directory
//   - Folders: organized source folders and their cloud mirrors
//   - Workflow: daemon sweep and repair intervals
//   - Logging: log format and level
//   - Notifications: ntfy push notification settings
//   - Categories: classification targets, extensions, and folder decoration
type Config struct {
	Paths         Paths         `toml:"paths"`
	Folders       Folders       `toml:"folders"`
	Workflow      Workflow      `toml:"workflow"`
	Logging       Logging       `toml:"logging"`
	Notifications Notifications `toml:"notifications"`
	Categories    []Category    `toml:"categories"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/sweeper/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("sweeper.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Finalize normalizes and validates a programmatically constructed
// configuration, applying the same rules Load applies to decoded files.
func (c *Config) Finalize() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

// EnsureDirectories creates required directories for operation.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// HistoryDBPath returns the location of the run-history database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.LogDir, "history.db")
}

// LockDir returns the directory holding the daemon and per-root sweep locks.
func (c *Config) LockDir() string {
	return c.Paths.LogDir
}

// AllFolders returns the configured sources followed by mirrors.
func (c *Config) AllFolders() []string {
	out := make([]string, 0, len(c.Folders.Sources)+len(c.Folders.Mirrors))
	out = append(out, c.Folders.Sources...)
	out = append(out, c.Folders.Mirrors...)
	return out
}

// Catalog builds the immutable category catalog from configuration.
func (c *Config) Catalog() (*category.Catalog, error) {
	defs := make([]category.Definition, 0, len(c.Categories))
	for _, entry := range c.Categories {
		var color [3]uint8
		if len(entry.Color) == 3 {
			copy(color[:], entry.Color)
		}
		defs = append(defs, category.Definition{
			Name:       entry.Name,
			Extensions: entry.Extensions,
			Decoration: category.Decoration{
				IconResource: entry.Icon,
				IconIndex:    entry.IconIndex,
				Color:        color,
			},
		})
	}
	return category.NewCatalog(defs)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

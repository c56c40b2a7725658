package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeFolders(); err != nil {
		return err
	}
	c.normalizeCategories()
	c.normalizeLogging()
	c.normalizeNotifications()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeFolders() error {
	if len(c.Folders.Sources) == 0 {
		c.Folders.Sources = defaultSourceFolders()
	}
	var err error
	if c.Folders.Sources, err = expandFolderList("folders.sources", c.Folders.Sources); err != nil {
		return err
	}
	if c.Folders.Mirrors, err = expandFolderList("folders.mirrors", c.Folders.Mirrors); err != nil {
		return err
	}
	return nil
}

func expandFolderList(field string, folders []string) ([]string, error) {
	out := make([]string, 0, len(folders))
	seen := make(map[string]struct{}, len(folders))
	for _, folder := range folders {
		trimmed := strings.TrimSpace(folder)
		if trimmed == "" {
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		if _, dup := seen[expanded]; dup {
			continue
		}
		seen[expanded] = struct{}{}
		out = append(out, expanded)
	}
	return out, nil
}

func (c *Config) normalizeCategories() {
	if len(c.Categories) == 0 {
		c.Categories = defaultCategories()
	}
	for i := range c.Categories {
		c.Categories[i].Name = strings.TrimSpace(c.Categories[i].Name)
		exts := make([]string, 0, len(c.Categories[i].Extensions))
		for _, ext := range c.Categories[i].Extensions {
			trimmed := strings.ToLower(strings.TrimSpace(ext))
			if trimmed == "" {
				continue
			}
			if !strings.HasPrefix(trimmed, ".") {
				trimmed = "." + trimmed
			}
			exts = append(exts, trimmed)
		}
		c.Categories[i].Extensions = exts
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNtfyTimeout
	}
}

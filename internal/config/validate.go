package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFolders(); err != nil {
		return err
	}
	if err := c.validateWorkflow(); err != nil {
		return err
	}
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateFolders() error {
	if len(c.Folders.Sources) == 0 {
		return errors.New("folders.sources must list at least one folder")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.SweepInterval <= 0 {
		return errors.New("workflow.sweep_interval must be positive (minutes)")
	}
	if c.Workflow.RepairInterval < 0 {
		return errors.New("workflow.repair_interval must be >= 0 (minutes, 0 disables)")
	}
	return nil
}

func (c *Config) validateCategories() error {
	for _, entry := range c.Categories {
		if entry.Name == "" {
			return errors.New("categories entries must have a name")
		}
		if len(entry.Color) != 0 && len(entry.Color) != 3 {
			return fmt.Errorf("categories.%s.color must be an [r, g, b] triple", entry.Name)
		}
	}
	// Catalog construction enforces the structural rules: reserved
	// categories present, extensions unique.
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive (seconds)")
	}
	return nil
}

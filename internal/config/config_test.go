package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if len(cfg.Folders.Sources) != 2 {
		t.Fatalf("expected default sources, got %v", cfg.Folders.Sources)
	}
	if cfg.Workflow.SweepInterval != defaultSweepInterval {
		t.Fatalf("sweep interval = %d, want %d", cfg.Workflow.SweepInterval, defaultSweepInterval)
	}
	if len(cfg.Categories) == 0 {
		t.Fatal("expected default categories")
	}
}

func TestLoadParsesAndExpandsFolders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
log_dir = "` + filepath.ToSlash(filepath.Join(dir, "logs")) + `"

[folders]
sources = ["` + filepath.ToSlash(filepath.Join(dir, "desktop")) + `"]
mirrors = ["` + filepath.ToSlash(filepath.Join(dir, "mirror")) + `"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if got := cfg.Folders.Sources; len(got) != 1 || got[0] != filepath.Join(dir, "desktop") {
		t.Fatalf("sources = %v", got)
	}
	all := cfg.AllFolders()
	if len(all) != 2 {
		t.Fatalf("AllFolders = %v", all)
	}
}

func TestLoadRejectsBadIntervals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[workflow]\nsweep_interval = 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "sweep_interval") {
		t.Fatalf("expected sweep_interval error, got %v", err)
	}
}

func TestCatalogFromDefaults(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if got := catalog.Classify(".pdf").Name; got != "Documents" {
		t.Fatalf("Classify(.pdf) = %q", got)
	}
	if got := catalog.Classify(".lnk").Name; got != "Shortcuts" {
		t.Fatalf("Classify(.lnk) = %q", got)
	}
	if got := catalog.Classify(".weird").Name; got != "Others" {
		t.Fatalf("Classify(.weird) = %q", got)
	}
	if got := catalog.Classify(".zip").Name; got != "ZIP_Files" {
		t.Fatalf("Classify(.zip) = %q", got)
	}
}

func TestCatalogRejectsDuplicateExtensionAcrossCategories(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg.Categories = append([]Category{{
		Name:       "Scans",
		Extensions: []string{".pdf"},
	}}, cfg.Categories...)
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected duplicate-extension validation error")
	}
}

func TestCustomCategoriesReplaceDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[[categories]]
name = "Documents"
extensions = [".pdf"]

[[categories]]
name = "Shortcuts"
extensions = [".lnk", ".url", ".desktop"]

[[categories]]
name = "Others"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cfg.Categories))
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if got := catalog.Classify(".mp3").Name; got != "Others" {
		t.Fatalf("Classify(.mp3) = %q, want Others under custom catalog", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[folders]") {
		t.Fatal("sample config missing folders section")
	}
}

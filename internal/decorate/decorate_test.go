package decorate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sweeper/internal/category"
	"sweeper/internal/logging"
)

func testCategory() category.Category {
	return category.Category{
		Name: "Documents",
		Decoration: category.Decoration{
			IconResource: `%SystemRoot%\system32\SHELL32.dll`,
			IconIndex:    21,
			Color:        [3]uint8{255, 232, 186},
		},
	}
}

func TestEnsureCategoryFolderWritesSidecar(t *testing.T) {
	parent := t.TempDir()
	m := NewManager(logging.NewNop())

	path, err := m.EnsureCategoryFolder(parent, testCategory())
	if err != nil {
		t.Fatalf("EnsureCategoryFolder: %v", err)
	}
	if path != filepath.Join(parent, "Documents") {
		t.Fatalf("path = %q", path)
	}

	data, err := os.ReadFile(filepath.Join(path, SidecarName))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "[.ShellClassInfo]") {
		t.Fatalf("sidecar content: %q", content)
	}
	if !strings.Contains(content, `IconResource=%SystemRoot%\system32\SHELL32.dll,21`) {
		t.Fatalf("icon line missing: %q", content)
	}
	if !strings.Contains(content, "BackgroundColor=255 232 186") {
		t.Fatalf("color line missing: %q", content)
	}
}

func TestEnsureCategoryFolderIdempotent(t *testing.T) {
	parent := t.TempDir()
	m := NewManager(logging.NewNop())
	cat := testCategory()

	path, err := m.EnsureCategoryFolder(parent, cat)
	if err != nil {
		t.Fatal(err)
	}

	// A second pass must not rewrite an existing sidecar.
	sidecar := filepath.Join(path, SidecarName)
	if err := os.WriteFile(sidecar, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := m.EnsureCategoryFolder(parent, cat); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(sidecar)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom" {
		t.Fatalf("sidecar rewritten: %q", data)
	}
}

func TestSidecarOmitsIconWhenUnset(t *testing.T) {
	content := renderSidecar(category.Decoration{Color: [3]uint8{1, 2, 3}})
	if strings.Contains(content, "IconResource") {
		t.Fatalf("unexpected icon line: %q", content)
	}
	if !strings.Contains(content, "BackgroundColor=1 2 3") {
		t.Fatalf("color line missing: %q", content)
	}
}

package category

import "testing"

func testDefinitions() []Definition {
	return []Definition{
		{Name: "Audio", Extensions: []string{".mp3", ".flac"}},
		{Name: "Documents", Extensions: []string{".pdf", ".txt"}},
		{Name: "Images", Extensions: []string{".jpg", ".png"}},
		{Name: "Shortcuts", Extensions: []string{".lnk", ".url", ".desktop"}},
		{Name: "Others"},
	}
}

func TestClassify(t *testing.T) {
	catalog, err := NewCatalog(testDefinitions())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	cases := []struct {
		ext  string
		want string
	}{
		{".mp3", "Audio"},
		{".MP3", "Audio"},
		{"pdf", "Documents"},
		{".jpg", "Images"},
		{".lnk", "Shortcuts"},
		{".desktop", "Shortcuts"},
		{".xyz", "Others"},
		{"", "Others"},
		{".", "Others"},
	}
	for _, tc := range cases {
		if got := catalog.Classify(tc.ext).Name; got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.ext, got, tc.want)
		}
	}
}

func TestClassifyShortcutOverridesOtherMembership(t *testing.T) {
	defs := testDefinitions()
	// A category that also claims .url must not win over Shortcuts.
	defs[1].Extensions = append(defs[1].Extensions, ".url")
	catalog, err := NewCatalog(defs)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got := catalog.Classify(".url").Name; got != "Shortcuts" {
		t.Fatalf("Classify(.url) = %q, want Shortcuts", got)
	}
}

func TestNewCatalogRejectsDuplicateExtensions(t *testing.T) {
	defs := testDefinitions()
	defs[2].Extensions = append(defs[2].Extensions, ".pdf")
	if _, err := NewCatalog(defs); err == nil {
		t.Fatal("expected error for duplicate extension")
	}
}

func TestNewCatalogRequiresReservedCategories(t *testing.T) {
	if _, err := NewCatalog([]Definition{{Name: "Others"}}); err == nil {
		t.Fatal("expected error when Shortcuts is missing")
	}
	if _, err := NewCatalog([]Definition{{Name: "Shortcuts"}}); err == nil {
		t.Fatal("expected error when Others is missing")
	}
}

func TestCategoriesPreserveDeclarationOrder(t *testing.T) {
	catalog, err := NewCatalog(testDefinitions())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	want := []string{"Audio", "Documents", "Images", "Shortcuts", "Others"}
	got := catalog.Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i, cat := range got {
		if cat.Name != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, cat.Name, want[i])
		}
	}
}

func TestNormalizeExtension(t *testing.T) {
	cases := map[string]string{
		"PDF":   ".pdf",
		".PDF":  ".pdf",
		"":      "",
		".":     "",
		" .Mp3": ".mp3",
	}
	for in, want := range cases {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

package category

import (
	"fmt"
	"strings"
)

// shortcutExtensions are reserved: they always classify as Shortcuts no
// matter what other category lists them.
var shortcutExtensions = map[string]struct{}{
	".lnk":     {},
	".url":     {},
	".desktop": {},
}

// ShortcutsName is the category that receives link and shortcut files.
const ShortcutsName = "Shortcuts"

// FallbackName is the category that receives everything nothing else claims.
const FallbackName = "Others"

// Decoration describes the cosmetic folder tagging for a category. It is
// written into the Desktop.ini sidecar and never affects classification.
type Decoration struct {
	IconResource string
	IconIndex    int
	Color        [3]uint8
}

// Category is an immutable classification target.
type Category struct {
	Name       string
	Decoration Decoration
}

// Definition is the input used to build a Catalog, typically produced from
// configuration.
type Definition struct {
	Name       string
	Extensions []string
	Decoration Decoration
}

// Catalog maps file extensions to categories. It is built once at startup and
// never mutated afterwards.
type Catalog struct {
	ordered   []Category
	byExt     map[string]Category
	shortcuts Category
	fallback  Category
}

// NewCatalog builds a Catalog from definitions in declaration order. The
// Shortcuts and Others categories must be present. Extensions must be unique
// across categories; the reserved shortcut extensions are exempt because they
// are claimed by Shortcuts regardless of where else they appear.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{byExt: make(map[string]Category)}
	owners := make(map[string]string)
	for _, def := range defs {
		name := strings.TrimSpace(def.Name)
		if name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if _, dup := owners[strings.ToLower(name)]; dup {
			return nil, fmt.Errorf("category %q declared twice", name)
		}
		owners[strings.ToLower(name)] = name

		cat := Category{Name: name, Decoration: def.Decoration}
		c.ordered = append(c.ordered, cat)
		switch name {
		case ShortcutsName:
			c.shortcuts = cat
		case FallbackName:
			c.fallback = cat
		}

		for _, ext := range def.Extensions {
			normalized := NormalizeExtension(ext)
			if normalized == "" {
				continue
			}
			if _, reserved := shortcutExtensions[normalized]; reserved {
				continue
			}
			if prior, taken := c.byExt[normalized]; taken {
				return nil, fmt.Errorf("extension %q claimed by both %q and %q", normalized, prior.Name, name)
			}
			c.byExt[normalized] = cat
		}
	}
	if c.shortcuts.Name == "" {
		return nil, fmt.Errorf("catalog is missing the %s category", ShortcutsName)
	}
	if c.fallback.Name == "" {
		return nil, fmt.Errorf("catalog is missing the %s category", FallbackName)
	}
	return c, nil
}

// Classify maps a file extension to a category. It is total: every input,
// including the empty extension, yields a category. Shortcut extensions win
// unconditionally; otherwise the first declared category claiming the
// extension wins; otherwise Others.
func (c *Catalog) Classify(ext string) Category {
	normalized := NormalizeExtension(ext)
	if _, ok := shortcutExtensions[normalized]; ok {
		return c.shortcuts
	}
	if cat, ok := c.byExt[normalized]; ok {
		return cat
	}
	return c.fallback
}

// Categories returns every category in declaration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Lookup returns the category with the given name, if declared.
func (c *Catalog) Lookup(name string) (Category, bool) {
	for _, cat := range c.ordered {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// NormalizeExtension lower-cases an extension and guarantees a leading dot.
// The empty extension normalizes to the empty string.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Package category implements extension-based file classification.
//
// A Catalog is immutable after construction and safe for concurrent use. The
// classification rules are fixed: the reserved shortcut extensions always map
// to Shortcuts, every other extension belongs to at most one category, and
// anything unclaimed falls back to Others.
package category

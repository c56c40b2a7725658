// Package decorate creates category folders and tags them with Desktop.ini
// sidecars carrying the category's icon and background color. Decoration is
// cosmetic and best-effort.
package decorate

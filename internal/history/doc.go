// Package history journals completed sweep and repair passes to SQLite so
// the CLI can show what past runs moved.
package history

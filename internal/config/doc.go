// Package config loads, normalizes, and validates sweeper configuration.
//
// Configuration is a single TOML file. Load applies defaults, decodes the
// file when present, expands every path field, and validates the result, so
// downstream packages can treat the Config value as immutable and fully
// resolved. The category catalog is derived from configuration exactly once
// per process and never mutated during a run.
package config

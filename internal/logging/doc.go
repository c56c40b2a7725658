// Package logging wraps log/slog with the handlers and field conventions
// used throughout sweeper. The console handler promotes the component
// attribute into the message prefix; the JSON handler emits machine-readable
// lines for the daemon's log file.
package logging

// Package notify pushes pass summaries and error alerts to an ntfy topic.
package notify

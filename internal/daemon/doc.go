// Package daemon runs sweep and repair passes on a schedule.
package daemon

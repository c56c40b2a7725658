// Command sweeper is the CLI for one-shot sweeps, archive repair, run
// history, and configuration management.
package main

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sweeper/internal/history"
	"sweeper/internal/sweep"
)

func newSweepCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one forward pass over the configured source folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(ctx, cmd, history.KindForward)
		},
	}
}

func newRepairCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Repair archive trees under the sources and their cloud mirrors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPass(ctx, cmd, history.KindRepair)
		},
	}
}

// runPass executes a single pass, journals it, and prints the summary. The
// pass outcome is reported even when some entries failed; a non-zero error
// count is not a command failure.
func runPass(ctx *commandContext, cmd *cobra.Command, kind history.Kind) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	sweeper, err := sweep.New(cfg, logger)
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	started := time.Now()
	var snap sweep.Snapshot
	var passErr error
	switch kind {
	case history.KindForward:
		snap, passErr = sweeper.SweepAll(cmd.Context())
	case history.KindRepair:
		snap, passErr = sweeper.RepairAll(cmd.Context())
	}
	finished := time.Now()

	run := history.Run{
		ID:           uuid.New().String(),
		Kind:         kind,
		StartedAt:    started,
		FinishedAt:   finished,
		FilesMoved:   snap.FilesMoved,
		SpaceCleared: snap.SpaceCleared,
		Errors:       snap.Errors,
	}
	if err := store.Record(cmd.Context(), run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s pass: %d files moved, %s cleared, %d errors in %s\n",
		kind, snap.FilesMoved, humanize.IBytes(uint64(snap.SpaceCleared)),
		snap.Errors, finished.Sub(started).Round(time.Millisecond))
	return passErr
}

// Command sweeperd runs scheduled sweep and repair passes until signaled.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sweeper/internal/config"
	"sweeper/internal/daemon"
	"sweeper/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Configuration file path")
	flag.Parse()

	cfg, path, exists, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	if !exists {
		logger.Warn("no configuration file found, using defaults",
			logging.String("path", path))
	}

	d, err := daemon.New(cfg, logger)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := d.Start(ctx); err != nil {
		if errors.Is(err, daemon.ErrAlreadyRunning) {
			return fmt.Errorf("another sweeperd instance is already running for %s", cfg.LockDir())
		}
		return err
	}

	<-ctx.Done()
	d.Stop()
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/astinowak-wq/LinkZero-sub000/internal/chooser"
	"github.com/astinowak-wq/LinkZero-sub000/internal/config"
	"github.com/astinowak-wq/LinkZero-sub000/internal/input"
	"github.com/astinowak-wq/LinkZero-sub000/internal/logging"
	"github.com/astinowak-wq/LinkZero-sub000/internal/pipeline"
)

// ErrNeedRoot is the setup-level fatal for unprivileged real-mode runs.
var ErrNeedRoot = errors.New("real mode requires root privileges (use --dry-run to preview)")

// ErrCancelled mirrors the chooser sentinel for callers that only import
// the cli package.
var ErrCancelled = chooser.ErrCancelled

// test seam
var geteuid = os.Geteuid

// Run executes the hardening run described by cfg: detect tools, build the
// action list, then drive every action through the confirmation pipeline
// in registration order and print the audit summary.
func Run(cfg config.Config, version string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cfg.DryRun && geteuid() != 0 {
		return ErrNeedRoot
	}

	logger, closeLog, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	printBanner(version, cfg.DryRun)

	actions, err := buildActions(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source := input.Resolve()
	defer source.Close()

	if source.Available() {
		logger.Info("reading input from " + source.Name())
	} else {
		logger.Info("no interactive input available; every prompt resolves to No")
	}

	pipe := pipeline.New(chooser.New(source), logger, pipeline.WithDryRun(cfg.DryRun))

	// The summary is part of guaranteed cleanup: it is printed even when
	// the run is cancelled partway through.
	defer func() {
		fmt.Println()
		pipe.Log().Summary(os.Stdout)
	}()

	for _, action := range actions {
		if _, err := pipe.Perform(ctx, action); err != nil {
			return err
		}
	}

	if cfg.DryRun {
		logger.Info(fmt.Sprintf("dry run complete: %d action(s) recorded, nothing executed", pipe.Log().Len()))
	} else {
		logging.Success(logger, fmt.Sprintf("run complete: %d action(s) recorded", pipe.Log().Len()))
	}
	return nil
}

// buildLogger assembles the console sink, plus the persistent file sink in
// real mode. Dry-run suppresses the file entirely.
func buildLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if cfg.DryRun {
		return logging.New(level, os.Stderr), func() {}, nil
	}

	f, err := logging.OpenLogFile(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(level, io.MultiWriter(os.Stderr, f))
	return logger, func() { f.Close() }, nil
}

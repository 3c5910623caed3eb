package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hikari-seiki/production-export-trigger/internal/config"
	"github.com/hikari-seiki/production-export-trigger/internal/daterange"
	"github.com/hikari-seiki/production-export-trigger/internal/export"
	"github.com/hikari-seiki/production-export-trigger/internal/logging"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, it means the export completed.
// If the run function returns an error, it means the export failed, and an
// *export.ExitStatusError carries the exporter's own exit status.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(ctx context.Context, args []string, getenv func(key string) string, _ *os.File) error {
	// Parse command-line flags
	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	dryRun := flags.Bool("dry-run", false, "Log the exporter command without executing it")
	noPause := flags.Bool("no-pause", false, "Skip the final wait for operator acknowledgment")
	dateStr := flags.String("date", "", "Export the one-day range ending on this date (YYYY-MM-DD, default: today)")
	if err := flags.Parse(args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	// Derive a context that is canceled on OS interrupt/termination so the
	// exporter child process is stopped when the operator aborts the run.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// An optional .env in the working directory carries the exporter
	// location and credentials. A missing file is not an error.
	_ = godotenv.Load()

	logger := slog.New(logging.NewTerminalHandler())

	logger.Info("production export trigger starting")
	if *dryRun {
		logger.Warn("DRY-RUN MODE ENABLED: the exporter will not be invoked")
	}

	// Load configuration: defaults, then environment overrides, then flags
	cfg := config.DefaultConfig()
	cfg.ApplyEnv(getenv)
	cfg.DryRun = *dryRun
	cfg.NoPause = *noPause

	logger.Info("trigger configuration loaded",
		"python_bin", cfg.PythonBin,
		"script_path", cfg.ScriptPath,
		"output_file", cfg.OutputFile,
		"service_account_key_set", cfg.ServiceAccountKey != "",
		"dry_run", cfg.DryRun)

	// The export range ends "now" unless a past date was requested
	now := time.Now
	if *dateStr != "" {
		day, err := time.ParseInLocation(daterange.DateFormat, *dateStr, time.Local)
		if err != nil {
			return fmt.Errorf("failed to parse -date %q: %w", *dateStr, err)
		}
		logger.Info("using requested end date instead of today", "end_date", *dateStr)
		now = func() time.Time { return day }
	}

	trigger := export.NewTrigger(logger, cfg, now)

	if err := trigger.Run(ctx); err != nil {
		return err
	}

	logger.Info("export trigger finished")
	return nil
}

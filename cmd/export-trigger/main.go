package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hikari-seiki/production-export-trigger/internal/export"
)

func main() {
	// Entry point: create a root context and run the application.
	// context.Background() is the top-level context for the process; the run
	// function derives a signal-aware child from it.
	ctx := context.Background()

	// Pass in the command line arguments, environment variables, and the
	// standard output stream so the run function can be tested in isolation.
	if err := run(ctx, os.Args, os.Getenv, os.Stdout); err != nil {
		// A failed exporter run terminates the trigger with the exporter's
		// own exit status.
		var exitErr *export.ExitStatusError
		if errors.As(err, &exitErr) && exitErr.Code > 0 {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

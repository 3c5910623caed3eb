// Package export runs the external production record exporter and reports
// its outcome to the operator.
package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/hikari-seiki/production-export-trigger/internal/config"
	"github.com/hikari-seiki/production-export-trigger/internal/daterange"
)

// Operator-facing notices. The exporter prints its own messages in
// Japanese, so the trigger's notices match.
const (
	noticeFailure       = "エクスポートに失敗しました。上記の出力を確認してください。"
	noticeSuccessFormat = "エクスポートが完了しました。%s を確認してください。"
	noticePause         = "続行するには Enter キーを押してください..."
)

// ExitStatusError reports a non-zero exit status of the exporter process.
// It carries the child's status so the trigger can exit with the same one.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exporter exited with status %d", e.Code)
}

// Trigger invokes the exporter over the one-day range ending on the current
// date and reports the outcome before an interactive pause.
type Trigger struct {
	logger *slog.Logger
	config *config.Config

	// now supplies the invocation time; injected so tests and the -date
	// override can pin the range deterministically
	now func() time.Time

	// stdout/stderr are the operator's console, shared with the child so
	// the exporter's own messages appear inline
	stdout io.Writer
	stderr io.Writer

	// stdin and interactive drive the final acknowledgment pause
	stdin       io.Reader
	interactive bool
}

// NewTrigger creates a trigger bound to the process console. now supplies
// the invocation time used to compute the export range.
func NewTrigger(logger *slog.Logger, cfg *config.Config, now func() time.Time) *Trigger {
	return &Trigger{
		logger:      logger,
		config:      cfg,
		now:         now,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		stdin:       os.Stdin,
		interactive: isatty.IsTerminal(os.Stdin.Fd()),
	}
}

// Run executes a single export: compute the range, run the exporter to
// completion, report the outcome, pause for acknowledgment. It returns
// *ExitStatusError when the exporter exits non-zero.
func (t *Trigger) Run(ctx context.Context) error {
	r := daterange.DayEndingAt(t.now())

	script, err := filepath.Abs(t.config.ScriptPath)
	if err != nil {
		return fmt.Errorf("failed to resolve script path: %w", err)
	}
	args := t.arguments(script, r)

	t.logger.Info("export range computed",
		"start_date", r.StartString(),
		"end_date", r.EndString())

	if t.config.DryRun {
		t.logger.Warn("DRY-RUN MODE ENABLED: exporter command will not be executed")
		t.logger.Info("would run exporter",
			"bin", t.config.PythonBin,
			"args", args)
		return nil
	}

	cmd := exec.CommandContext(ctx, t.config.PythonBin, args...)
	// Run in the script's directory: the exporter writes the spreadsheet
	// and its log next to itself.
	cmd.Dir = filepath.Dir(script)
	cmd.Stdout = t.stdout
	cmd.Stderr = t.stderr

	t.logger.Info("exporter starting",
		"bin", t.config.PythonBin,
		"script", script,
		"start_date", r.StartString(),
		"end_date", r.EndString())

	startTime := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(startTime)

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// The process never started (missing interpreter or script)
			return fmt.Errorf("failed to start exporter: %w", runErr)
		}

		code := exitErr.ExitCode()
		t.logger.Error("exporter failed",
			"exit_status", code,
			"duration", elapsed)

		fmt.Fprintln(t.stdout, noticeFailure)
		t.pause()
		return &ExitStatusError{Code: code}
	}

	t.logger.Info("exporter completed", "duration", elapsed)

	fmt.Fprintf(t.stdout, noticeSuccessFormat+"\n", t.config.OutputFile)
	t.pause()
	return nil
}

// arguments builds the exporter argument vector: script path, start date,
// end date, and the service account key path when configured.
func (t *Trigger) arguments(script string, r daterange.Range) []string {
	args := []string{script, r.StartString(), r.EndString()}
	if t.config.ServiceAccountKey != "" {
		args = append(args, t.config.ServiceAccountKey)
	}
	return args
}

// pause blocks until the operator presses Enter. Non-interactive runs
// (task scheduler, cron) skip it so they do not hang.
func (t *Trigger) pause() {
	if !t.interactive || t.config.NoPause {
		return
	}

	fmt.Fprintln(t.stdout)
	fmt.Fprint(t.stdout, noticePause)

	reader := bufio.NewReader(t.stdin)
	_, _ = reader.ReadString('\n')
}

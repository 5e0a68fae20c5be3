// Command memberdir runs one full directory scrape: it pages through the
// member list, fetches and merges each profile, writes the spreadsheet
// deliverables through the configured artifact store, and archives the run.
// All configuration comes from MEMBERDIR_* environment variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"memberdir/internal/artifact"
	"memberdir/internal/client"
	"memberdir/internal/core"
	"memberdir/internal/export"
	"memberdir/internal/runlog"
	"memberdir/pkg/directory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "memberdir:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger()

	metrics, err := newMetricsRecorder()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	store, err := artifact.Open(ctx)
	if err != nil {
		return fmt.Errorf("open artifact store: %w", err)
	}
	log.Info("artifact store ready", "driver", string(store.Driver()))

	var archive core.RunArchiver
	runs, err := runlog.Open()
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	if runs != nil {
		defer func() { _ = runs.Close() }()
		archive = runlog.Archiver{Store: runs}
	}

	api := client.New(client.ConfigFromEnv())
	runner := &core.Runner{
		Lister:  &core.Lister{Client: api, Log: log, Metrics: metrics},
		Fetcher: &core.ProfileFetcher{Client: api, Throttle: core.ThrottleFromEnv(), Log: log, Metrics: metrics},
		Writer:  &export.Writer{Store: store, Log: log, Metrics: metrics, HTMLIndex: htmlIndexEnabled()},
		Archive: archive,
		Log:     log,
	}

	report, err := runner.Run(ctx)
	printSummary(report)
	if err != nil {
		var listErr core.ListingError
		if errors.As(err, &listErr) {
			return fmt.Errorf("listing aborted: %w", err)
		}
		return err
	}
	if len(report.FailedFiles()) > 0 {
		return fmt.Errorf("%d output file(s) failed", len(report.FailedFiles()))
	}
	return nil
}

// printSummary writes the completion summary to stdout; logs carry the same
// numbers but stdout is the operator-facing contract.
func printSummary(report directory.RunReport) {
	fmt.Printf("pages fetched:    %d\n", report.PagesFetched)
	fmt.Printf("members listed:   %d\n", report.Summaries)
	fmt.Printf("records merged:   %d\n", report.Merged)
	fmt.Printf("profiles skipped: %d\n", report.ProfilesSkipped)
	fmt.Printf("categories:       %d\n", report.Categories)
	for _, f := range report.Files {
		switch {
		case f.Status == directory.FileFailed:
			fmt.Printf("FAILED  %s: %s\n", f.Unit, f.Error)
		case f.Fallback:
			fmt.Printf("written %s (csv fallback)\n", f.Key)
		default:
			fmt.Printf("written %s\n", f.Key)
		}
	}
}

func newLogger() core.Logger {
	level := slog.LevelInfo
	if v := os.Getenv("MEMBERDIR_LOG_LEVEL"); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			level = l
		}
	}
	return slogAdapter{slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// slogAdapter narrows *slog.Logger to the pipeline's logging seam.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }

// newMetricsRecorder selects the metrics backend.
//
//	MEMBERDIR_METRICS: expvar|prometheus|none (default expvar)
func newMetricsRecorder() (core.MetricsRecorder, error) {
	switch os.Getenv("MEMBERDIR_METRICS") {
	case "", "expvar":
		return core.NewExpvarMetricsRecorder("memberdir_metrics"), nil
	case "prometheus":
		return core.NewPrometheusMetricsRecorder(prometheus.DefaultRegisterer)
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown metrics backend %s", os.Getenv("MEMBERDIR_METRICS"))
	}
}

func htmlIndexEnabled() bool {
	return os.Getenv("MEMBERDIR_HTML_INDEX") != "false"
}

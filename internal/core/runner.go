package core

import (
	"context"
	"time"

	"memberdir/pkg/directory"
)

// ReportWriter persists the merged dataset as output files and reports the
// outcome per file.
type ReportWriter interface {
	Write(ctx context.Context, records []directory.MergedRecord) []directory.FileReport
}

// RunArchiver stores the completed run for later inspection.
type RunArchiver interface {
	SaveRun(ctx context.Context, report directory.RunReport, records []directory.MergedRecord) error
}

// Runner executes the full pipeline: list, merge, write, archive.
type Runner struct {
	Lister  *Lister
	Fetcher *ProfileFetcher
	Writer  ReportWriter
	Archive RunArchiver // optional
	Log     Logger
}

// Run performs one complete directory run and returns its report. Listing
// failures abort the run; profile and write failures degrade it and are
// reflected in the report.
func (r *Runner) Run(ctx context.Context) (directory.RunReport, error) {
	log := r.Log
	if log == nil {
		log = NopLogger()
	}
	report := directory.RunReport{StartedAt: time.Now().UTC()}

	summaries, pages, err := r.Lister.Collect(ctx)
	report.PagesFetched = pages
	if err != nil {
		report.CompletedAt = time.Now().UTC()
		return report, err
	}
	report.Summaries = len(summaries)

	records, skipped, err := r.Fetcher.Merge(ctx, summaries)
	report.Merged = len(records)
	report.ProfilesSkipped = skipped
	if err != nil {
		report.CompletedAt = time.Now().UTC()
		return report, err
	}

	report.Categories = len(directory.PartitionByCategory(records).Categories)
	report.Files = r.Writer.Write(ctx, records)
	report.CompletedAt = time.Now().UTC()

	if r.Archive != nil {
		if err := r.Archive.SaveRun(ctx, report, records); err != nil {
			// Archival is best-effort; the deliverables are the files.
			log.Warn("run archival failed", "error", err.Error())
		}
	}

	log.Info("run complete",
		"pages", report.PagesFetched,
		"summaries", report.Summaries,
		"merged", report.Merged,
		"skipped", report.ProfilesSkipped,
		"categories", report.Categories,
		"fallback_files", len(report.FallbackFiles()),
		"failed_files", len(report.FailedFiles()),
	)
	return report, nil
}

// Package core defines the core abstractions for run-log backends. The
// backend implementations under internal/infra/runlog depend on this package
// only; driver selection lives in internal/runlog.
package core

import (
	"context"

	"memberdir/pkg/directory"
)

// Record is one archived run.
type Record struct {
	ID      string                   `json:"id"`
	Report  directory.RunReport      `json:"report"`
	Records []directory.MergedRecord `json:"records"`
}

// Store persists run records. Archival never feeds back into a later run;
// the pipeline stays restart-from-page-one.
type Store interface {
	SaveRun(ctx context.Context, rec Record) error
	ListRuns(ctx context.Context) ([]Record, error)
	Close() error
}

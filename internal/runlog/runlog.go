// Package runlog re-exports the run-archival abstractions and selects
// concrete backends. A run record holds the completion report plus the merged
// snapshot; the backend implementations live under internal/infra/runlog and
// import only internal/runlog/core.
package runlog

import (
	"context"
	"crypto/rand"
	"fmt"

	"memberdir/internal/runlog/core"
	"memberdir/pkg/directory"
)

type (
	// Record is one archived run.
	Record = core.Record
	// Store is the interface for run-log backends.
	Store = core.Store
)

// Archiver adapts a Store to the pipeline's archival seam, stamping each run
// with a fresh identifier.
type Archiver struct {
	Store Store
}

// SaveRun archives one completed run.
func (a Archiver) SaveRun(ctx context.Context, report directory.RunReport, records []directory.MergedRecord) error {
	return a.Store.SaveRun(ctx, Record{ID: NewID(), Report: report, Records: records})
}

// NewID returns a random 128-bit hex identifier.
func NewID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", b[:])
}

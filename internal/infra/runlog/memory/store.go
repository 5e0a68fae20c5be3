// Package memory provides an in-process run-log store for tests and
// ephemeral runs.
package memory

import (
	"context"
	"sync"

	"memberdir/internal/runlog/core"
)

var _ core.Store = (*Store)(nil)

// Store keeps archived runs in memory, in insertion order.
type Store struct {
	mu   sync.Mutex
	runs []core.Record

	// FailSave, when set, makes SaveRun return this error. Used to exercise
	// the best-effort archival path.
	FailSave error
}

// New returns an empty in-memory run log.
func New() *Store {
	return &Store{}
}

// SaveRun appends one run record.
func (s *Store) SaveRun(_ context.Context, rec core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.runs = append(s.runs, rec)
	return nil
}

// ListRuns returns all archived runs in insertion order.
func (s *Store) ListRuns(context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.runs))
	copy(out, s.runs)
	return out, nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

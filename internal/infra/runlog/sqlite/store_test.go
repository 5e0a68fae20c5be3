package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"memberdir/internal/runlog/core"
	"memberdir/pkg/directory"
)

func TestSaveAndListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	rec := core.Record{
		ID: "run-1",
		Report: directory.RunReport{
			StartedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			PagesFetched: 4,
			Summaries:    30,
			Merged:       28,
		},
		Records: []directory.MergedRecord{
			{Summary: directory.MemberSummary{MembershipNo: "G-1", CompanyName: "Acme"}},
		},
	}
	if err := s.SaveRun(ctx, rec); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs: %d", len(runs))
	}
	got := runs[0]
	if got.ID != "run-1" || got.Report.Summaries != 30 || got.Report.Merged != 28 {
		t.Fatalf("round trip: %+v", got)
	}
	if len(got.Records) != 1 || got.Records[0].MembershipNo() != "G-1" {
		t.Fatalf("records: %+v", got.Records)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = s.Close() }()

	ctx := context.Background()
	if err := s.SaveRun(ctx, core.Record{ID: "dup"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveRun(ctx, core.Record{ID: "dup"}); err == nil {
		t.Fatalf("duplicate id accepted")
	}
}

func TestReopenSeesPersistedRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SaveRun(context.Background(), core.Record{ID: "persisted"}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()
	runs, err := reopened.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "persisted" {
		t.Fatalf("runs after reopen: %+v", runs)
	}
}

func TestNewCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	s, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = s.Close() }()
	if s.Path() != path {
		t.Fatalf("path: %s", s.Path())
	}
}

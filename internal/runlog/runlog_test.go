package runlog_test

import (
	"context"
	"testing"

	"memberdir/internal/infra/runlog/memory"
	"memberdir/internal/runlog"
	"memberdir/pkg/directory"
)

func TestArchiverStampsIDs(t *testing.T) {
	store := memory.New()
	archiver := runlog.Archiver{Store: store}
	ctx := context.Background()

	report := directory.RunReport{Summaries: 2}
	records := []directory.MergedRecord{{Summary: directory.MemberSummary{MembershipNo: "G-1"}}}
	if err := archiver.SaveRun(ctx, report, records); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := archiver.SaveRun(ctx, report, nil); err != nil {
		t.Fatalf("second SaveRun: %v", err)
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs: %d", len(runs))
	}
	if runs[0].ID == "" || runs[0].ID == runs[1].ID {
		t.Fatalf("ids not unique: %q %q", runs[0].ID, runs[1].ID)
	}
	if runs[0].Report.Summaries != 2 || len(runs[0].Records) != 1 {
		t.Fatalf("payload: %+v", runs[0])
	}
}

func TestNewIDShape(t *testing.T) {
	id := runlog.NewID()
	if len(id) != 32 {
		t.Fatalf("id length: %d (%s)", len(id), id)
	}
	if id == runlog.NewID() {
		t.Fatalf("ids collide")
	}
}

func TestOpenSelectsMemory(t *testing.T) {
	t.Setenv("MEMBERDIR_RUNLOG_DRIVER", "memory")
	store, err := runlog.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := store.(*memory.Store); !ok {
		t.Fatalf("unexpected store type %T", store)
	}
}

func TestOpenNoneDisables(t *testing.T) {
	t.Setenv("MEMBERDIR_RUNLOG_DRIVER", "none")
	store, err := runlog.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store != nil {
		t.Fatalf("expected nil store, got %T", store)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Setenv("MEMBERDIR_RUNLOG_DRIVER", "etcd")
	if _, err := runlog.Open(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

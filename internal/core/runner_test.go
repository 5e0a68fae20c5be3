package core

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/xuri/excelize/v2"

	"memberdir/internal/artifact"
	"memberdir/internal/client"
	"memberdir/internal/export"
	"memberdir/pkg/directory"
)

type fakeWriter struct {
	got     []directory.MergedRecord
	reports []directory.FileReport
}

func (w *fakeWriter) Write(_ context.Context, records []directory.MergedRecord) []directory.FileReport {
	w.got = records
	return w.reports
}

type fakeArchive struct {
	saved  []directory.RunReport
	failed error
}

func (a *fakeArchive) SaveRun(_ context.Context, report directory.RunReport, _ []directory.MergedRecord) error {
	if a.failed != nil {
		return a.failed
	}
	a.saved = append(a.saved, report)
	return nil
}

func pipelineClient() *fakeClient {
	return &fakeClient{
		pages: map[int]client.Page{
			1: {Members: []directory.MemberSummary{summary("1"), summary("2")}},
			2: {},
		},
		profiles: map[string]directory.MemberProfile{
			"1": {OfficeAddress: "addr 1"},
			"2": {OfficeAddress: "addr 2"},
		},
	}
}

func TestRunnerEndToEnd(t *testing.T) {
	fc := pipelineClient()
	writer := &fakeWriter{reports: []directory.FileReport{
		{Unit: "all_members", Key: "all_members.xlsx", Status: directory.FileDone},
	}}
	archive := &fakeArchive{}
	runner := &Runner{
		Lister:  &Lister{Client: fc},
		Fetcher: &ProfileFetcher{Client: fc},
		Writer:  writer,
		Archive: archive,
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.PagesFetched != 2 || report.Summaries != 2 || report.Merged != 2 || report.ProfilesSkipped != 0 {
		t.Fatalf("report counts: %+v", report)
	}
	if report.Categories != 1 {
		t.Fatalf("categories: %d", report.Categories)
	}
	if len(writer.got) != 2 {
		t.Fatalf("writer received %d records", len(writer.got))
	}
	if len(report.Files) != 1 || report.Files[0].Key != "all_members.xlsx" {
		t.Fatalf("file reports: %+v", report.Files)
	}
	if len(archive.saved) != 1 {
		t.Fatalf("archived runs: %d", len(archive.saved))
	}
	if report.CompletedAt.Before(report.StartedAt) {
		t.Fatalf("timestamps reversed: %+v", report)
	}
}

func TestRunnerListingFailureIsFatal(t *testing.T) {
	fc := pipelineClient()
	fc.pageErr = map[int]error{1: errors.New("503")}
	writer := &fakeWriter{}
	runner := &Runner{Lister: &Lister{Client: fc}, Fetcher: &ProfileFetcher{Client: fc}, Writer: writer}

	_, err := runner.Run(context.Background())
	var listErr ListingError
	if !errors.As(err, &listErr) {
		t.Fatalf("expected ListingError, got %v", err)
	}
	if writer.got != nil {
		t.Fatalf("writer ran despite aborted listing")
	}
}

func TestRunnerArchivalFailureIsNonFatal(t *testing.T) {
	fc := pipelineClient()
	archive := &fakeArchive{failed: errors.New("db down")}
	runner := &Runner{
		Lister:  &Lister{Client: fc},
		Fetcher: &ProfileFetcher{Client: fc},
		Writer:  &fakeWriter{},
		Archive: archive,
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("archival failure leaked: %v", err)
	}
}

func TestRunnerSkippedProfilesInReport(t *testing.T) {
	fc := pipelineClient()
	fc.profileErr = map[string]error{"2": errors.New("404")}
	runner := &Runner{Lister: &Lister{Client: fc}, Fetcher: &ProfileFetcher{Client: fc}, Writer: &fakeWriter{}}

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Merged != 1 || report.ProfilesSkipped != 1 {
		t.Fatalf("merged=%d skipped=%d", report.Merged, report.ProfilesSkipped)
	}
}

func TestRunnerScenarioOneSkipOneCategory(t *testing.T) {
	a := directory.MemberSummary{MembershipNo: "A", CompanyName: "Alpha Pay", MemberCategory: "Fintech"}
	b := directory.MemberSummary{MembershipNo: "B", CompanyName: "Beta Corp", MemberCategory: "Fintech"}
	fc := &fakeClient{
		pages: map[int]client.Page{
			1: {Members: []directory.MemberSummary{a, b}},
			2: {},
		},
		profiles:   map[string]directory.MemberProfile{"A": {OfficeAddress: "addr A"}},
		profileErr: map[string]error{"B": errors.New("500")},
	}
	store := artifact.NewMemory()
	runner := &Runner{
		Lister:  &Lister{Client: fc},
		Fetcher: &ProfileFetcher{Client: fc},
		Writer:  &export.Writer{Store: store},
	}

	report, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Summaries != 2 || report.Merged != 1 || report.ProfilesSkipped != 1 {
		t.Fatalf("report: %+v", report)
	}

	assertWorkbookCompanies(t, store, "all_members.xlsx", []string{"Alpha Pay"})
	assertWorkbookCompanies(t, store, "categories/Fintech.xlsx", []string{"Alpha Pay"})
}

func assertWorkbookCompanies(t *testing.T, store artifact.Store, key string, want []string) {
	t.Helper()
	_, rc, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	defer func() { _ = rc.Close() }()
	payload, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read %s: %v", key, err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("open %s: %v", key, err)
	}
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Members")
	if err != nil {
		t.Fatalf("rows %s: %v", key, err)
	}
	if len(rows) != len(want)+1 {
		t.Fatalf("%s: %d data rows, want %d", key, len(rows)-1, len(want))
	}
	for i, company := range want {
		if rows[i+1][0] != company {
			t.Fatalf("%s row %d: got %q want %q", key, i+1, rows[i+1][0], company)
		}
	}
}

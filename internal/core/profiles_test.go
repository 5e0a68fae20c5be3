package core

import (
	"context"
	"errors"
	"testing"

	"memberdir/pkg/directory"
)

type countingThrottle struct {
	waits int
}

func (c *countingThrottle) Wait(context.Context) error {
	c.waits++
	return nil
}

func TestMergeJoinsSummariesAndProfiles(t *testing.T) {
	fc := &fakeClient{profiles: map[string]directory.MemberProfile{
		"1": {OfficeAddress: "addr 1"},
		"2": {OfficeAddress: "addr 2"},
	}}
	summaries := []directory.MemberSummary{summary("1"), summary("2")}

	merged, skipped, err := (&ProfileFetcher{Client: fc}).Merge(context.Background(), summaries)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if skipped != 0 || len(merged) != 2 {
		t.Fatalf("merged=%d skipped=%d", len(merged), skipped)
	}
	if merged[0].Profile.OfficeAddress != "addr 1" || merged[1].Profile.OfficeAddress != "addr 2" {
		t.Fatalf("profiles misaligned: %+v", merged)
	}
}

func TestMergeSkipsFailedLookups(t *testing.T) {
	fc := &fakeClient{
		profiles:   map[string]directory.MemberProfile{"1": {}, "3": {}},
		profileErr: map[string]error{"2": errors.New("404")},
	}
	summaries := []directory.MemberSummary{summary("1"), summary("2"), summary("3")}

	merged, skipped, err := (&ProfileFetcher{Client: fc}).Merge(context.Background(), summaries)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("skipped: %d", skipped)
	}
	if len(merged) != 2 || merged[0].MembershipNo() != "1" || merged[1].MembershipNo() != "3" {
		t.Fatalf("surviving records: %+v", merged)
	}
}

func TestMergeThrottlesBetweenRequests(t *testing.T) {
	fc := &fakeClient{profiles: map[string]directory.MemberProfile{"1": {}, "2": {}, "3": {}}}
	throttle := &countingThrottle{}
	summaries := []directory.MemberSummary{summary("1"), summary("2"), summary("3")}

	if _, _, err := (&ProfileFetcher{Client: fc, Throttle: throttle}).Merge(context.Background(), summaries); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	// No wait before the first request.
	if throttle.waits != 2 {
		t.Fatalf("waits: %d, want 2", throttle.waits)
	}
}

func TestMergeStopsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fc := &fakeClient{profileErr: map[string]error{"2": context.Canceled}}
	fc.profiles = map[string]directory.MemberProfile{"1": {}}

	summaries := []directory.MemberSummary{summary("1"), summary("2")}
	fetcher := &ProfileFetcher{Client: fc, Throttle: throttleFunc(func(context.Context) error {
		cancel()
		return nil
	})}
	_, _, err := fetcher.Merge(ctx, summaries)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type throttleFunc func(context.Context) error

func (f throttleFunc) Wait(ctx context.Context) error { return f(ctx) }

func TestProfileLookupErrorWraps(t *testing.T) {
	cause := errors.New("timeout")
	err := ProfileLookupError{MembershipNo: "G-9", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not unwrapped")
	}
	if err.Error() == "" {
		t.Fatalf("empty message")
	}
}

package core

import (
	"context"
	"time"

	"memberdir/pkg/directory"
)

// ProfileFetcher looks up the detail record for each summary and merges the
// two into MergedRecords. A failed lookup is logged and the record skipped;
// serving most of the dataset beats losing the run to one unreachable profile.
type ProfileFetcher struct {
	Client   DirectoryClient
	Throttle Throttle
	Log      Logger
	Metrics  MetricsRecorder
}

// Merge fetches one profile per summary, pacing requests through the
// configured throttle. It returns the merged records in listing order plus
// the number of records skipped due to lookup failures.
func (f *ProfileFetcher) Merge(ctx context.Context, summaries []directory.MemberSummary) ([]directory.MergedRecord, int, error) {
	log := f.Log
	if log == nil {
		log = NopLogger()
	}
	throttle := f.Throttle
	if throttle == nil {
		throttle = NoDelay()
	}

	merged := make([]directory.MergedRecord, 0, len(summaries))
	skipped := 0
	for i, s := range summaries {
		if i > 0 {
			if err := throttle.Wait(ctx); err != nil {
				return merged, skipped, err
			}
		}
		start := time.Now()
		profile, err := f.Client.MemberProfile(ctx, s.MembershipNo)
		f.observe(ctx, "fetch_profile", err == nil, time.Since(start))
		if err != nil {
			if ctx.Err() != nil {
				return merged, skipped, ctx.Err()
			}
			skipped++
			lookupErr := ProfileLookupError{MembershipNo: s.MembershipNo, Err: err}
			log.Warn("profile skipped", "membership_no", s.MembershipNo, "error", lookupErr.Error())
			continue
		}
		merged = append(merged, directory.MergedRecord{Summary: s, Profile: profile})
	}
	log.Info("profiles merged", "merged", len(merged), "skipped", skipped)
	return merged, skipped, nil
}

func (f *ProfileFetcher) observe(ctx context.Context, op string, ok bool, d time.Duration) {
	if f.Metrics != nil {
		f.Metrics.Observe(ctx, op, ok, d)
	}
}

// Package core orchestrates the member-directory run: listing, profile
// merging, export, and run archival.
package core

import (
	"context"
	"time"

	"memberdir/internal/client"
	"memberdir/pkg/directory"
)

// DirectoryClient is the slice of the API client the pipeline consumes.
type DirectoryClient interface {
	MemberPage(ctx context.Context, page int) (client.Page, error)
	MemberProfile(ctx context.Context, membershipNo string) (directory.MemberProfile, error)
}

// DefaultMaxPages bounds pagination when the endpoint never returns an empty
// page (a broken or adversarial backend).
const DefaultMaxPages = 500

// Lister accumulates the full member list page by page, preserving server
// order within and across pages.
type Lister struct {
	Client   DirectoryClient
	MaxPages int
	Log      Logger
	Metrics  MetricsRecorder
}

// Collect requests successive pages until one comes back empty or MaxPages is
// reached. Any page failure aborts the listing with a ListingError: downstream
// partitioning assumes a complete member list.
func (l *Lister) Collect(ctx context.Context) ([]directory.MemberSummary, int, error) {
	log := l.Log
	if log == nil {
		log = NopLogger()
	}
	maxPages := l.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var all []directory.MemberSummary
	pages := 0
	for page := 1; page <= maxPages; page++ {
		start := time.Now()
		p, err := l.Client.MemberPage(ctx, page)
		l.observe(ctx, "list_page", err == nil, time.Since(start))
		if err != nil {
			return nil, pages, ListingError{Page: page, Err: err}
		}
		pages++
		if len(p.Members) == 0 {
			break
		}
		if page == 1 && p.Meta.LastPage > 0 {
			log.Info("listing started", "last_page_hint", p.Meta.LastPage)
		}
		log.Debug("page fetched", "page", page, "members", len(p.Members))
		all = append(all, p.Members...)
	}
	log.Info("listing complete", "pages", pages, "members", len(all))
	return all, pages, nil
}

func (l *Lister) observe(ctx context.Context, op string, ok bool, d time.Duration) {
	if l.Metrics != nil {
		l.Metrics.Observe(ctx, op, ok, d)
	}
}

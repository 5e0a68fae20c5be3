package core

import "fmt"

// ListingError reports a failed member-list page request. It aborts the whole
// run: a partial listing is unsafe to partition downstream.
type ListingError struct {
	Page int
	Err  error
}

func (e ListingError) Error() string {
	return fmt.Sprintf("listing page %d: %v", e.Page, e.Err)
}

func (e ListingError) Unwrap() error { return e.Err }

// ProfileLookupError reports a failed profile request for one member. It is
// contained per record: the record is skipped and the run continues.
type ProfileLookupError struct {
	MembershipNo string
	Err          error
}

func (e ProfileLookupError) Error() string {
	return fmt.Sprintf("profile lookup %s: %v", e.MembershipNo, e.Err)
}

func (e ProfileLookupError) Unwrap() error { return e.Err }

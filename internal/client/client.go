// Package client implements the HTTP client for the member-directory API:
// the paginated member-list endpoint and the per-member profile endpoint.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"memberdir/pkg/directory"
)

// PageMeta carries the pagination metadata attached to a list response. The
// last-page hint is informational only; pagination terminates on the first
// empty page.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

// Page is one page of the member list.
type Page struct {
	Members []directory.MemberSummary `json:"data"`
	Meta    PageMeta                  `json:"meta"`
}

type profileEnvelope struct {
	Member directory.MemberProfile `json:"member"`
}

// RequestError reports a failed endpoint request: a transport failure or a
// non-2xx status.
type RequestError struct {
	URL    string
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request %s: unexpected status %d", e.URL, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client talks to one member directory. The zero value is not usable; use New.
type Client struct {
	cfg  Config
	http *http.Client
}

// New constructs a directory client from the supplied configuration.
func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: &http.Client{Timeout: cfg.Timeout}}
}

// MemberPage fetches one page of the member list. An empty Members slice
// signals end of pagination.
func (c *Client) MemberPage(ctx context.Context, page int) (Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("member_category", c.cfg.MemberCategory)
	q.Set("team", c.cfg.Team)
	u := c.cfg.BaseURL + listPath + "?" + q.Encode()

	var out Page
	if err := c.getJSON(ctx, u, &out); err != nil {
		return Page{}, err
	}
	for i := range out.Members {
		out.Members[i].LogoURL = c.absoluteLogoURL(out.Members[i].LogoURL)
	}
	return out, nil
}

// MemberProfile fetches the detail record for one membership number.
func (c *Client) MemberProfile(ctx context.Context, membershipNo string) (directory.MemberProfile, error) {
	if strings.TrimSpace(membershipNo) == "" {
		return directory.MemberProfile{}, fmt.Errorf("membership number required")
	}
	u := c.cfg.BaseURL + profilePath + "/" + url.PathEscape(membershipNo)
	var out profileEnvelope
	if err := c.getJSON(ctx, u, &out); err != nil {
		return directory.MemberProfile{}, err
	}
	return out.Member, nil
}

const (
	listPath    = "/get-member-list"
	profilePath = "/get-company-profile"
)

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &RequestError{URL: u, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{URL: u, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &RequestError{URL: u, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &RequestError{URL: u, Err: fmt.Errorf("decode body: %w", err)}
	}
	return nil
}

// absoluteLogoURL resolves the relative logo path the API returns against the
// directory base URL. Empty paths stay empty.
func (c *Client) absoluteLogoURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cfg.BaseURL + path
}

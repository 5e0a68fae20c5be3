package client

import (
	"os"
	"strings"
	"time"
)

// Config holds the directory endpoint parameters. An explicit structure rather
// than package globals so tests can point the client at a local server.
type Config struct {
	BaseURL        string        // scheme://host, no trailing slash
	MemberCategory string        // member_category query filter
	Team           string        // team query filter, usually empty
	UserAgent      string
	Timeout        time.Duration
}

const (
	defaultBaseURL   = "https://e-cab.net"
	defaultCategory  = "General"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

// ConfigFromEnv builds a Config from environment variables, falling back to
// the production directory defaults.
//
//	MEMBERDIR_BASE_URL: directory base URL (default https://e-cab.net)
//	MEMBERDIR_MEMBER_CATEGORY: list filter (default General)
//	MEMBERDIR_TEAM: team filter (default empty)
//	MEMBERDIR_USER_AGENT: request User-Agent header
func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL:        strings.TrimSuffix(os.Getenv("MEMBERDIR_BASE_URL"), "/"),
		MemberCategory: os.Getenv("MEMBERDIR_MEMBER_CATEGORY"),
		Team:           os.Getenv("MEMBERDIR_TEAM"),
		UserAgent:      os.Getenv("MEMBERDIR_USER_AGENT"),
		Timeout:        defaultTimeout,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MemberCategory == "" {
		cfg.MemberCategory = defaultCategory
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return cfg
}

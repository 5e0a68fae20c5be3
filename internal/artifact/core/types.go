// Package core defines the core abstractions for artifact storage backends.
// The backend implementations under internal/infra/artifact depend on this
// package only; driver selection lives in internal/artifact.
package core

import (
	"context"
	"io"
	"time"
)

// Driver identifies a concrete artifact storage backend implementation.
type Driver string

const (
	// DriverFilesystem is the local filesystem backend (default, dev).
	DriverFilesystem Driver = "fs"
	// DriverS3 is the S3 / MinIO compatible backend.
	DriverS3 Driver = "s3"
	// DriverMemory is the in-memory backend used in tests.
	DriverMemory Driver = "memory"
)

// PutOptions specifies optional parameters for Put.
type PutOptions struct {
	ContentType string // MIME type, optional
}

// Info describes a stored output file.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
	Location     string    `json:"location,omitempty"` // backend-specific path or URL
}

// Store holds the run's output files. Unlike a content-addressed blob store,
// Put replaces an existing key: reruns regenerate the same deliverables.
type Store interface {
	// Put stores or replaces the file at key.
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	// Get retrieves file contents and metadata. Missing keys yield an
	// os.ErrNotExist style error.
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// Delete removes a file. Returns (false, nil) if not found.
	Delete(ctx context.Context, key string) (bool, error)
	// List returns files whose key has the provided prefix, key ascending.
	List(ctx context.Context, prefix string) ([]Info, error)
	// Driver returns the configured backend driver.
	Driver() Driver
}

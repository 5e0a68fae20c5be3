package artifact

import (
	"context"

	infraFS "memberdir/internal/infra/artifact/fs"
	infraMemory "memberdir/internal/infra/artifact/memory"
	infraS3 "memberdir/internal/infra/artifact/s3"
)

// S3Config re-exports the infra S3 configuration type so call sites outside
// the infra tree can construct S3 stores explicitly (mostly tests).
type S3Config = infraS3.Config

// NewFilesystem constructs a filesystem-backed Store rooted at the provided
// path. Returns Store to keep call sites on the interface.
func NewFilesystem(root string) (Store, error) {
	return infraFS.New(root)
}

// NewS3 constructs an S3-backed Store from the provided configuration.
func NewS3(ctx context.Context, cfg S3Config) (Store, error) {
	return infraS3.New(ctx, cfg)
}

// OpenS3FromEnv constructs an S3 store using environment variables.
func OpenS3FromEnv(ctx context.Context) (Store, error) {
	return infraS3.OpenFromEnv(ctx)
}

// NewMemory constructs the in-memory store used in tests.
func NewMemory() Store { return infraMemory.New() }

// NewMockS3ForTests exposes the in-memory S3 mock for cross-package tests.
func NewMockS3ForTests() Store { return infraS3.NewMockForTests() }

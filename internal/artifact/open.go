package artifact

import (
	"context"
	"fmt"
	"os"
)

// Open selects a Store implementation using environment variables.
//
//	MEMBERDIR_OUTPUT_DRIVER: fs|s3|memory (default fs)
//	MEMBERDIR_OUTPUT_FS_ROOT: directory root when driver=fs (default ./memberdir-data)
//	(S3 specific variables documented in the s3 infra package)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("MEMBERDIR_OUTPUT_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("MEMBERDIR_OUTPUT_FS_ROOT"))
	case DriverS3:
		return OpenS3FromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown output driver %s", driver)
	}
}

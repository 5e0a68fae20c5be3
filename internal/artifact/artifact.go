// Package artifact re-exports the output-store abstractions and selects
// concrete backends. Consumers depend on the Store interface here; the
// backend implementations live under internal/infra/artifact and import only
// internal/artifact/core.
package artifact

import (
	"memberdir/internal/artifact/core"
)

type (
	// Driver identifies an artifact backend driver.
	Driver = core.Driver
	// PutOptions configures an output-file write.
	PutOptions = core.PutOptions
	// Info describes stored output-file metadata.
	Info = core.Info
	// Store is the interface for artifact storage backends.
	Store = core.Store
)

const (
	// DriverFilesystem is the local filesystem driver.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 is the S3-compatible driver.
	DriverS3 = core.DriverS3
	// DriverMemory is the in-memory test driver.
	DriverMemory = core.DriverMemory
)

package runlog

import (
	"fmt"
	"os"

	infraMemory "memberdir/internal/infra/runlog/memory"
	infraPostgres "memberdir/internal/infra/runlog/postgres"
	infraSQLite "memberdir/internal/infra/runlog/sqlite"
)

// Driver identifies a concrete run-log backend implementation.
type Driver string

const (
	// DriverMemory keeps runs in process memory (tests / ephemeral).
	DriverMemory Driver = "memory"
	// DriverSQLite stores runs in an embedded sqlite file (default).
	DriverSQLite Driver = "sqlite"
	// DriverPostgres stores runs in a PostgreSQL server.
	DriverPostgres Driver = "postgres"
	// DriverNone disables run archival.
	DriverNone Driver = "none"
)

// Open selects a run-log backend using environment variables. Defaults to
// sqlite when unset; DriverNone yields a nil Store.
//
//	MEMBERDIR_RUNLOG_DRIVER: memory|sqlite|postgres|none (default sqlite)
//	MEMBERDIR_RUNLOG_SQLITE_PATH: sqlite file path (default ./memberdir-runs.db)
//	MEMBERDIR_RUNLOG_POSTGRES_DSN: postgres DSN when driver=postgres
func Open() (Store, error) {
	driver := os.Getenv("MEMBERDIR_RUNLOG_DRIVER")
	if driver == "" {
		driver = string(DriverSQLite)
	}
	switch Driver(driver) {
	case DriverNone:
		return nil, nil
	case DriverMemory:
		return infraMemory.New(), nil
	case DriverSQLite:
		return infraSQLite.New(os.Getenv("MEMBERDIR_RUNLOG_SQLITE_PATH"))
	case DriverPostgres:
		return infraPostgres.New(os.Getenv("MEMBERDIR_RUNLOG_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown runlog driver %s", driver)
	}
}

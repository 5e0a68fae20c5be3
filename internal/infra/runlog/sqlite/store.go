// Package sqlite provides a run-log store backed by an embedded SQLite file.
// Each run is one row holding the record as a JSON blob.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"memberdir/internal/runlog/core"
)

var _ core.Store = (*Store)(nil)

// Store persists run records to a single SQLite table.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the run log at path. An empty path defaults
// to memberdir-runs.db in the working directory.
func New(path string) (*Store, error) {
	if path == "" {
		path = "memberdir-runs.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// SaveRun inserts one run record as a JSON payload.
func (s *Store) SaveRun(ctx context.Context, rec core.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(id, created_at, payload) VALUES(?, ?, ?)`,
		rec.ID, time.Now().UTC().Format(time.RFC3339Nano), payload); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns all archived runs, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]core.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM runs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []core.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		var rec core.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode run: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Path returns the backing database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

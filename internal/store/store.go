// Package store handles SQLite persistence of fetched payloads.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Payload is a cached response body.
type Payload struct {
	Key       string
	Body      []byte
	FetchedAt time.Time
}

// Store wraps SQLite access for cached payloads.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS payloads (
			key TEXT PRIMARY KEY,
			body BLOB NOT NULL,
			fetched_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Put stores or replaces the payload for key.
func (s *Store) Put(ctx context.Context, key string, body []byte, fetchedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payloads (key, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		key, body, fetchedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// Get returns the payload for key. The flag is false when nothing is cached.
func (s *Store) Get(ctx context.Context, key string) (Payload, bool, error) {
	var p Payload
	var fetchedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT key, body, fetched_at FROM payloads WHERE key = ?`, key).
		Scan(&p.Key, &p.Body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Payload{}, false, nil
	}
	if err != nil {
		return Payload{}, false, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return Payload{}, false, err
	}
	p.FetchedAt = parsed
	return p, true, nil
}

// Purge removes all cached payloads and returns how many were deleted.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM payloads`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

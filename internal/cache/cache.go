// Package cache provides an optional SQLite-backed result cache for batch
// runs. Records are keyed by the input file's path, size and modification
// time, so unchanged inputs are re-emitted without decoding.
package cache

import (
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the results table. Applied by Open.
const Schema = `
CREATE TABLE IF NOT EXISTS results (
	path TEXT NOT NULL,
	size INTEGER NOT NULL,
	mtime INTEGER NOT NULL,
	record BLOB NOT NULL,
	created INTEGER NOT NULL,
	PRIMARY KEY (path, size, mtime)
);
`

// Key identifies one version of one input file.
type Key struct {
	Path  string
	Size  int64
	MTime int64 // unix nanoseconds
}

// KeyFor builds a cache key from a file's stat info.
func KeyFor(path string, info fs.FileInfo) Key {
	return Key{
		Path:  path,
		Size:  info.Size(),
		MTime: info.ModTime().UnixNano(),
	}
}

// Store persists emitted output records in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a cache database at the given path and
// applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached record for a key, if present.
func (s *Store) Get(k Key) ([]byte, bool, error) {
	var record []byte
	err := s.db.QueryRow(
		`SELECT record FROM results WHERE path = ? AND size = ? AND mtime = ?`,
		k.Path, k.Size, k.MTime,
	).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return record, true, nil
}

// Put stores the emitted record for a key, replacing any stale version of
// the same path.
func (s *Store) Put(k Key, record []byte) error {
	_, err := s.db.Exec(`DELETE FROM results WHERE path = ?`, k.Path)
	if err != nil {
		return fmt.Errorf("cache evict: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO results (path, size, mtime, record, created) VALUES (?, ?, ?, ?, ?)`,
		k.Path, k.Size, k.MTime, record, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

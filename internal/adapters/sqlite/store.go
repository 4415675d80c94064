// Package sqlite persists editing state between runs: best-effort
// working-copy mirrors per domain, and the admin session flag.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"folio/internal/domain"
	"folio/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.WorkingCache and ports.SessionStore on a single
// SQLite database. The cache is never authoritative: a fresh load from
// the content source always provides the seed, the cache only restores
// edits that were in flight.
type Store struct {
	db   *sql.DB
	path string
}

var (
	_ ports.WorkingCache = (*Store)(nil)
	_ ports.SessionStore = (*Store)(nil)
)

// Open opens (creating if needed) the state database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS working_copies (
			domain TEXT PRIMARY KEY,
			content TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', '` + schemaVersion + `');
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up state database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save mirrors a domain's working copy.
func (s *Store) Save(name domain.Name, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing working copy for %s: %w", name, err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO working_copies (domain, content, updated_at) VALUES (?, ?, ?)`,
		string(name), string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("saving working copy for %s: %w", name, err)
	}
	return nil
}

// Load returns the cached working copy for a domain, if one exists.
// A corrupt row is dropped and reported as absent rather than failing
// the session open.
func (s *Store) Load(name domain.Name) (domain.Document, bool, error) {
	var content string
	err := s.db.QueryRow(
		`SELECT content FROM working_copies WHERE domain = ?`, string(name),
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading working copy for %s: %w", name, err)
	}

	var doc domain.Document
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		_ = s.Clear(name)
		return nil, false, nil
	}
	return doc, true, nil
}

// Clear drops a domain's cached working copy.
func (s *Store) Clear(name domain.Name) error {
	_, err := s.db.Exec(`DELETE FROM working_copies WHERE domain = ?`, string(name))
	if err != nil {
		return fmt.Errorf("clearing working copy for %s: %w", name, err)
	}
	return nil
}

// IsAuthenticated reads the persisted admin session flag.
func (s *Store) IsAuthenticated() (bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = 'authenticated'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading session flag: %w", err)
	}
	return value == "true", nil
}

// SetAuthenticated persists or clears the admin session flag.
func (s *Store) SetAuthenticated(v bool) error {
	var err error
	if v {
		_, err = s.db.Exec(`INSERT OR REPLACE INTO session (key, value) VALUES ('authenticated', 'true')`)
	} else {
		_, err = s.db.Exec(`DELETE FROM session WHERE key = 'authenticated'`)
	}
	if err != nil {
		return fmt.Errorf("writing session flag: %w", err)
	}
	return nil
}

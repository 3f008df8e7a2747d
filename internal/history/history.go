// Package history keeps a small on-disk record of recently opened
// graph documents. Only the raw input JSON is stored; layout state is
// never persisted.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// maxEntries bounds the table; the oldest rows beyond it are pruned
// on every Add.
const maxEntries = 50

const schema = `
CREATE TABLE IF NOT EXISTS graphs (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	title    TEXT NOT NULL,
	json     TEXT NOT NULL,
	added_at TEXT NOT NULL
);
`

// Store wraps a SQLite history database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded graph document.
type Entry struct {
	ID      int64
	Title   string
	JSON    string
	AddedAt time.Time
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a graph document and prunes entries beyond the cap.
func (s *Store) Add(title, doc string) error {
	_, err := s.db.Exec(
		"INSERT INTO graphs (title, json, added_at) VALUES (?, ?, ?)",
		title, doc, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording graph: %w", err)
	}
	_, err = s.db.Exec(
		`DELETE FROM graphs WHERE id NOT IN
		 (SELECT id FROM graphs ORDER BY id DESC LIMIT ?)`, maxEntries)
	if err != nil {
		return fmt.Errorf("pruning history: %w", err)
	}
	return nil
}

// List returns all entries, newest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, title, json, added_at FROM graphs ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts string
		if err := rows.Scan(&e.ID, &e.Title, &e.JSON, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.AddedAt, _ = time.Parse(time.RFC3339, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM graphs"); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

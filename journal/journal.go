// Package journal persists a processing log of extraction runs to SQLite.
// The journal is advisory: callers log a record per processed document and
// can list recent runs, but a journal failure never fails an extraction.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/docsift/docsift/dbopen"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    title       TEXT NOT NULL,
    doc_type    TEXT NOT NULL,
    entries     INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    output_path TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

// Record is one extraction run: which document was processed, what the
// pipeline concluded, and how long it took.
type Record struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	DocType    string `json:"doc_type"`
	Entries    int    `json:"entries"`
	DurationMS int64  `json:"duration_ms"`
	OutputPath string `json:"output_path,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// Store wraps an SQLite database holding the run journal.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the journal database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(schema))
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a run record. CreatedAt is stamped server-side.
func (s *Store) Record(ctx context.Context, r *Record) error {
	_, err := dbopen.Exec(ctx, s.db,
		`INSERT INTO runs (name, title, doc_type, entries, duration_ms, output_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Name, r.Title, r.DocType, r.Entries, r.DurationMS, r.OutputPath,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("journal: insert run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first. limit <= 0 means 50.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, title, doc_type, entries, duration_ms, output_path, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: list runs: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r := &Record{}
		if err := rows.Scan(&r.ID, &r.Name, &r.Title, &r.DocType, &r.Entries,
			&r.DurationMS, &r.OutputPath, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

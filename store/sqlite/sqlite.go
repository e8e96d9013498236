/*
Package sqlite provides a SQLite-backed Backend implementation.

PURPOSE:
  Stores every entity collection in a single documents table. Opened
  with ":memory:" (the default) the engine keeps its process-lifetime
  semantics while exercising the same code paths a file-backed dev
  database would.

SCHEMA:
  documents(position INTEGER PRIMARY KEY AUTOINCREMENT,
            kind TEXT, name TEXT, payload TEXT)
  with a unique index on (kind, name). Insertion order is the
  position order; Replace updates payload without touching position.

CONCURRENCY:
  A mutex serializes writes on top of SQLite's own locking, matching
  the single-writer behavior of the in-memory backend.

WAL MODE:
  Opened with WAL journaling so a file-backed database keeps readers
  unblocked during writes.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil { log.Fatal(err) }
  defer store.Close()

SEE ALSO:
  - sales/store.go: the Backend contract
  - store/memory: the default in-memory implementation
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/sales-engine/catalog"
	"github.com/warp/sales-engine/sales"
)

// Store implements sales.Backend on SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New opens (or creates) the database at path and migrates the
// schema. Use ":memory:" for a process-lifetime database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		kind     TEXT NOT NULL,
		name     TEXT NOT NULL,
		payload  TEXT NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_kind_name
		ON documents(kind, name);
	`
	_, err := s.db.Exec(schema)
	return err
}

// List returns all documents of the kind in insertion order.
func (s *Store) List(ctx context.Context, kind catalog.Kind) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM documents WHERE kind = ? ORDER BY position`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s: %w", kind, err)
		}
		out = append(out, payload)
	}
	return out, rows.Err()
}

// Get returns the document, or nil when absent.
func (s *Store) Get(ctx context.Context, kind catalog.Kind, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM documents WHERE kind = ? AND name = ?`,
		string(kind), name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %q: %w", kind, name, err)
	}
	return payload, nil
}

// Insert appends a new document.
func (s *Store) Insert(ctx context.Context, kind catalog.Kind, name string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM documents WHERE kind = ? AND name = ?)`,
		string(kind), name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("insert %s %q: %w", kind, name, err)
	}
	if exists {
		return sales.ErrDuplicateName
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (kind, name, payload) VALUES (?, ?, ?)`,
		string(kind), name, doc)
	if err != nil {
		return fmt.Errorf("insert %s %q: %w", kind, name, err)
	}
	return nil
}

// Replace overwrites an existing document, keeping its position.
func (s *Store) Replace(ctx context.Context, kind catalog.Kind, name string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE documents SET payload = ? WHERE kind = ? AND name = ?`,
		doc, string(kind), name)
	if err != nil {
		return fmt.Errorf("replace %s %q: %w", kind, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace %s %q: %w", kind, name, err)
	}
	if n == 0 {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	return nil
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, kind catalog.Kind, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE kind = ? AND name = ?`,
		string(kind), name)
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", kind, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", kind, name, err)
	}
	if n == 0 {
		return &sales.NotFoundError{Kind: kind, Name: name}
	}
	return nil
}

// Reset drops every collection.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM documents`)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

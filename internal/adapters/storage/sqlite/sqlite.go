// Package sqlite is the local document store. It keeps a copy of every
// document written by the service and an outbox of writes the remote store
// has not confirmed yet.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/campus-superapp/internal/domain"
	"github.com/jsamuelsen11/campus-superapp/internal/ports"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    body       BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(collection, updated_at);

CREATE TABLE IF NOT EXISTS pending_sync (
    collection TEXT NOT NULL,
    id         TEXT NOT NULL,
    op         TEXT NOT NULL CHECK(op IN ('put', 'delete')),
    queued_at  TIMESTAMP NOT NULL,
    PRIMARY KEY (collection, id)
);
`

// Op is the kind of write waiting in the outbox.
type Op string

const (
	OpPut    Op = "put"
	OpDelete Op = "delete"
)

// PendingWrite is an outbox entry. Only the latest write per document is
// kept; its body is read from the documents table at sync time.
type PendingWrite struct {
	Collection string    `db:"collection"`
	ID         string    `db:"id"`
	Op         Op        `db:"op"`
	QueuedAt   time.Time `db:"queued_at"`
}

type documentRow struct {
	Collection string    `db:"collection"`
	ID         string    `db:"id"`
	Body       []byte    `db:"body"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r documentRow) document() ports.Document {
	return ports.Document{Collection: r.Collection, ID: r.ID, Body: r.Body, UpdatedAt: r.UpdatedAt.UTC()}
}

var (
	_ ports.DocumentBackend = (*Store)(nil)
	_ ports.HealthChecker   = (*Store)(nil)
)

// Store implements ports.DocumentBackend on a SQLite file.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Parent directories are created for file paths.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// An in-memory database lives on a single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configuring sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Name implements ports.DocumentBackend and ports.HealthChecker.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns one document.
func (s *Store) Get(ctx context.Context, collection, id string) (*ports.Document, error) {
	var row documentRow
	err := s.db.GetContext(ctx, &row,
		`SELECT collection, id, body, updated_at FROM documents WHERE collection = ? AND id = ?`,
		collection, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", collection, id, err)
	}
	doc := row.document()
	return &doc, nil
}

// List returns a collection, newest first.
func (s *Store) List(ctx context.Context, collection string) ([]ports.Document, error) {
	var rows []documentRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT collection, id, body, updated_at FROM documents
		 WHERE collection = ? ORDER BY updated_at DESC, id`,
		collection)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	docs := make([]ports.Document, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.document())
	}
	return docs, nil
}

// Put upserts doc.
func (s *Store) Put(ctx context.Context, doc ports.Document) error {
	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO documents (collection, id, body, updated_at)
		VALUES (:collection, :id, :body, :updated_at)
		ON CONFLICT (collection, id) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at`,
		documentRow{Collection: doc.Collection, ID: doc.ID, Body: doc.Body, UpdatedAt: doc.UpdatedAt.UTC()})
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", doc.Collection, doc.ID, err)
	}
	return nil
}

// Delete removes a document if present.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}
	return nil
}

// MarkPending records that the remote copy of a document is stale. A newer
// write replaces an older entry for the same document.
func (s *Store) MarkPending(ctx context.Context, collection, id string, op Op) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pending_sync (collection, id, op, queued_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET op = excluded.op, queued_at = excluded.queued_at`,
		collection, id, op, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("queueing %s/%s for sync: %w", collection, id, err)
	}
	return nil
}

// ClearPending removes the outbox entry of a document.
func (s *Store) ClearPending(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM pending_sync WHERE collection = ? AND id = ?`, collection, id); err != nil {
		return fmt.Errorf("clearing sync entry %s/%s: %w", collection, id, err)
	}
	return nil
}

// Pending returns the outbox, oldest first.
func (s *Store) Pending(ctx context.Context) ([]PendingWrite, error) {
	var out []PendingWrite
	if err := s.db.SelectContext(ctx, &out,
		`SELECT collection, id, op, queued_at FROM pending_sync ORDER BY queued_at, collection, id`); err != nil {
		return nil, fmt.Errorf("reading sync queue: %w", err)
	}
	return out, nil
}

package embedstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vertexlab/spectral/embed"
)

// Sentinel errors for store operations.
var (
	// ErrStoreClosed indicates an operation on a closed store.
	ErrStoreClosed = errors.New("embedstore: store is closed")

	// ErrNotFound indicates no embedding is stored under the given name.
	ErrNotFound = errors.New("embedstore: embedding not found")

	// ErrCorruptStore indicates stored rows that cannot be decoded back
	// into a container.
	ErrCorruptStore = errors.New("embedstore: corrupt store contents")

	// ErrEmptyName indicates an empty embedding name.
	ErrEmptyName = errors.New("embedstore: name must not be empty")
)

const schema = `
CREATE TABLE IF NOT EXISTS embeddings (
	name   TEXT    NOT NULL,
	pos    INTEGER NOT NULL,
	label  TEXT    NOT NULL,
	vector BLOB    NOT NULL,
	PRIMARY KEY (name, pos)
);
`

// Store persists embedding containers in a SQLite database file.
// Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema exists. Close the returned store when done.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("embedstore: database path must not be empty")
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("embedstore: open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("embedstore: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores the container under name, replacing any embedding already
// stored there. Label order and coordinate bits survive a Load exactly.
func (s *Store) Save(ctx context.Context, name string, c *embed.Container) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return fmt.Errorf("embedstore: save %q: container is nil", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("embedstore: save %q: begin: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM embeddings WHERE name = ?`, name); err != nil {
		return fmt.Errorf("embedstore: save %q: clear previous: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO embeddings (name, pos, label, vector) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("embedstore: save %q: prepare: %w", name, err)
	}
	defer func() { _ = stmt.Close() }()

	labels := c.Labels()
	for i, label := range labels {
		if _, err := stmt.ExecContext(ctx, name, i, label, encodeVector(c.Vector(i))); err != nil {
			return fmt.Errorf("embedstore: save %q: row %d: %w", name, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("embedstore: save %q: commit: %w", name, err)
	}

	return nil
}

// Load retrieves the container stored under name. Returns ErrNotFound
// when nothing is stored there.
func (s *Store) Load(ctx context.Context, name string) (*embed.Container, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT label, vector FROM embeddings WHERE name = ? ORDER BY pos`, name)
	if err != nil {
		return nil, fmt.Errorf("embedstore: load %q: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	var (
		labels  []string
		vectors [][]float64
		width   = -1
	)
	for rows.Next() {
		var label string
		var blob []byte
		if err := rows.Scan(&label, &blob); err != nil {
			return nil, fmt.Errorf("embedstore: load %q: %w", name, err)
		}
		vector, err := decodeVector(blob)
		if err != nil {
			return nil, fmt.Errorf("load %q: %w", name, err)
		}
		if width == -1 {
			width = len(vector)
		} else if len(vector) != width {
			return nil, fmt.Errorf("%w: load %q: row widths %d and %d disagree",
				ErrCorruptStore, name, width, len(vector))
		}
		labels = append(labels, label)
		vectors = append(vectors, vector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("embedstore: load %q: %w", name, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}

	embedding := mat.NewDense(len(labels), width, nil)
	for i, vector := range vectors {
		embedding.SetRow(i, vector)
	}

	return embed.NewContainer(embedding, labels)
}

// Names returns the names of all stored embeddings in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT name FROM embeddings ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("embedstore: names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("embedstore: names: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("embedstore: names: %w", err)
	}

	return names, nil
}

// Delete removes the embedding stored under name. Returns ErrNotFound
// when nothing is stored there.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM embeddings WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("embedstore: delete %q: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("embedstore: delete %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}

	return nil
}

// Close releases the database connection. Subsequent operations return
// ErrStoreClosed; closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

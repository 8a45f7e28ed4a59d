// SPDX-License-Identifier: MIT

package topology

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists encoded graphs keyed by Spec.Key.
type Store interface {
	// Save stores g under g.Spec.Key(), replacing any previous graph.
	Save(ctx context.Context, g *Graph) error
	// Load decodes the graph stored for spec, or returns ErrNotFound.
	Load(ctx context.Context, spec Spec, opts ...Option) (*Graph, error)
}

// MemoryStore keeps encoded graphs in a map. It is mostly useful in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, g *Graph) error {
	payload, err := Marshal(g)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[g.Spec.Key()] = payload
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(_ context.Context, spec Spec, opts ...Option) (*Graph, error) {
	s.mu.RLock()
	payload, ok := s.data[spec.Key()]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, spec.Key())
	}
	return Unmarshal(payload, opts...)
}

// FileStore keeps one "<key>.fstg" file per graph under Dir.
type FileStore struct {
	Dir string
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("topology: file store %s: %w", dir, err)
	}
	return &FileStore{Dir: dir}, nil
}

// Path returns the file that holds spec.
func (s *FileStore) Path(spec Spec) string {
	return filepath.Join(s.Dir, spec.Key()+".fstg")
}

// Save writes to a temporary file and renames it into place.
func (s *FileStore) Save(ctx context.Context, g *Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := Marshal(g)
	if err != nil {
		return err
	}

	path := s.Path(g.Spec)
	tmp, err := os.CreateTemp(s.Dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("topology: save %s: %w", path, err)
	}
	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("topology: save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("topology: save %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}

func (s *FileStore) Load(ctx context.Context, spec Spec, opts ...Option) (*Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(spec)
	payload, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("topology: load %s: %w", path, err)
	}

	return Decode(bytes.NewReader(payload), opts...)
}

// SQLiteStore keeps encoded graphs in the "graphs" table of a SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

type graphRow struct {
	Key     string `db:"graph_key"`
	Version int    `db:"codec_version"`
	Payload []byte `db:"payload"`
}

// OpenSQLiteStore opens or creates the database at path and migrates it.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("topology: open %s: %w", path, err)
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS graphs (
			graph_key TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			n_rows INTEGER NOT NULL,
			n_cols INTEGER NOT NULL,
			torus INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("topology: migrate %s: %w", path, err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Save(ctx context.Context, g *Graph) error {
	payload, err := Marshal(g)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO graphs (graph_key, kind, n_rows, n_cols, torus, codec_version, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(graph_key) DO UPDATE SET
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, g.Spec.Key(), g.Spec.Kind, g.Spec.Rows, g.Spec.Cols, g.Spec.Torus, CodecVersion, payload)
	if err != nil {
		return fmt.Errorf("topology: save %s: %w", g.Spec.Key(), err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, spec Spec, opts ...Option) (*Graph, error) {
	var row graphRow
	err := s.db.GetContext(ctx, &row,
		`SELECT graph_key, codec_version, payload FROM graphs WHERE graph_key = ?`, spec.Key())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, spec.Key())
	}
	if err != nil {
		return nil, fmt.Errorf("topology: load %s: %w", spec.Key(), err)
	}
	if row.Version != int(CodecVersion) {
		return nil, fmt.Errorf("%w: %s has version %d", ErrVersion, row.Key, row.Version)
	}

	return Unmarshal(row.Payload, opts...)
}

// Cached returns the graph for spec from store, or calls build and saves
// the result when the store has none. A stored graph describing another spec
// is ErrCorrupt. A nil store always builds.
func Cached(ctx context.Context, store Store, spec Spec, build func() (*Graph, error), opts ...Option) (*Graph, error) {
	if store == nil {
		return build()
	}
	g, err := store.Load(ctx, spec, opts...)
	if err == nil {
		if g.Spec.Key() != spec.Key() {
			return nil, fmt.Errorf("%w: stored %s under %s", ErrCorrupt, g.Spec, spec)
		}
		return g, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if g, err = build(); err != nil {
		return nil, err
	}
	if err = store.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

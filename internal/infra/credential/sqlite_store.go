// Package credential persists the session token between runs.
package credential

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"snapdish/internal/domain/service"
	"snapdish/internal/errors"

	_ "modernc.org/sqlite"
)

// sessionSlot is the key of the single stored session.
const sessionSlot = "session"

// SQLiteStore keeps the token in a single-row SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

var _ service.CredentialStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "create credentials directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open credentials database")
	}
	// one writer; the pure-Go driver serializes on the connection anyway
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()

		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS credentials (
		slot       TEXT PRIMARY KEY,
		token      TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "create credentials schema")
	}

	return nil
}

// Get returns the stored token or service.ErrNoCredential.
func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM credentials WHERE slot = ?`, sessionSlot).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", service.ErrNoCredential
	}
	if err != nil {
		return "", errors.Wrap(err, "read credential")
	}

	return token, nil
}

// Set replaces the stored token.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	const upsert = `
	INSERT INTO credentials (slot, token, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(slot) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, upsert, sessionSlot, token, time.Now().UTC()); err != nil {
		return errors.Wrap(err, "store credential")
	}

	return nil
}

// Clear removes the stored token.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials WHERE slot = ?`, sessionSlot); err != nil {
		return errors.Wrap(err, "clear credential")
	}

	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

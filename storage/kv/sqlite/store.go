// Package sqlitekv persists entity collections in a single SQLite table,
// one row per collection key, each holding the JSON-encoded value. Writes are
// whole-value replacements; there is no cross-key transaction.
package sqlitekv

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ruviru/teachmate/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type Store struct {
	db *sqlx.DB
}

var _ core.Store = (*Store)(nil)

// Open opens (creating if needed) the state database at path.
// WAL mode keeps readers from blocking on the single writer.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening state database")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating state schema")
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.Get(&value, "SELECT value FROM app_state WHERE key = ?", key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading %q", key)
	}
	return []byte(value), true, nil
}

func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	return errors.Wrapf(err, "writing %q", key)
}

func (s *Store) Close() error {
	return s.db.Close()
}

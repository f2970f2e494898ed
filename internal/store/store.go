// Package store is the persistence layer: an ent client over a single
// SQLite file holding the player row, the append-only event ledger, and
// the feed. Repositories hand out typed access; nothing above this
// package touches SQL directly.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/techniq-app/techniq/ent"

	// CGO-free SQLite driver.
	_ "modernc.org/sqlite"
)

// Store wraps the database handle, the ent client built on it, and the
// shared event sequence counter.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn, tunes it for a local
// single-user app, and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps the TUI responsive while the CLI writes, and the busy
	// timeout covers the rare overlap between the two.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// Client exposes the ent client for code generated queries.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw handle for the few queries ent cannot express.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) PlayerRepo() PlayerRepo {
	return &playerRepo{client: s.client}
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

func (s *Store) FeedRepo() FeedRepo {
	return &feedRepo{client: s.client}
}

// DefaultDBPath picks the database location: TECHNIQ_DB if set,
// otherwise techniq/techniq.db under the XDG data directory.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TECHNIQ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	p := filepath.Join(dataHome, "techniq", "techniq.db")
	return p, EnsureDir(p)
}

// EnsureDir creates path's parent directory when missing.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

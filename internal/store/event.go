package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the ledger-wide sequence number. Session,
// coin, drill and LLM events each live in their own ent table, so their
// auto-increment IDs say nothing about order across tables; every append
// instead takes one number from this counter, which makes questions like
// "did the coin payout land after its session?" answerable and keeps the
// ledger replayable in a single order.
//
// ent has no notion of a database-level counter, so this is raw SQL. The
// UPDATE ... RETURNING makes the increment atomic in SQLite; the mutex
// keeps concurrent appends within this process from interleaving.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS global_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence counter: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves and returns the next ledger sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/shm/internal/shm/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error {
	return mapError("commit", t.tx.Commit())
}

func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back, the outer DB stays open

// Ping is a no-op, the transaction already holds a live connection.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Stakeholders() store.Stakeholders { return &stakeholdersRepo{db: t.tx} }
func (t *txStore) Meetings() store.Meetings         { return &meetingsRepo{db: t.tx} }
func (t *txStore) Attendance() store.Attendance     { return &attendanceRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx is opened

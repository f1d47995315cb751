package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

// Store implements every store.Store method except ApplyMigrations, which
// the wrapping driver provides.
type Store struct {
	db      *sql.DB
	dialect Dialect
	q       *Queries
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		q:       NewQueries(db, dialect),
	}
}

// DB exposes the pool so drivers can run their migrations against it.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin tx: %w", s.dialect.Name(), err)
	}
	return newTx(tx, s.dialect), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback after a successful commit is a no-op.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users         { return &usersRepo{q: s.q} }
func (s *Store) Enzymes() store.Enzymes     { return &enzymesRepo{q: s.q} }
func (s *Store) Organisms() store.Organisms { return &organismsRepo{q: s.q} }
func (s *Store) Batches() store.Batches     { return &batchesRepo{q: s.q} }

type txStore struct {
	tx *sql.Tx
	q  *Queries
}

func newTx(tx *sql.Tx, dialect Dialect) *txStore {
	return &txStore{
		tx: tx,
		q:  NewQueries(tx, dialect),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users         { return &usersRepo{q: t.q} }
func (t *txStore) Enzymes() store.Enzymes     { return &enzymesRepo{q: t.q} }
func (t *txStore) Organisms() store.Organisms { return &organismsRepo{q: t.q} }
func (t *txStore) Batches() store.Batches     { return &batchesRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

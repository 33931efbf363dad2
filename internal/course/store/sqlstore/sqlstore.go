// Package sqlstore implements the store repositories on top of the shared
// queries. Drivers supply the connection, the placeholder dialect and the
// mapping of their constraint errors.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
)

// ErrorMapper turns a driver error into store.ErrAlreadyExists where it is a
// unique violation and returns it unchanged otherwise.
type ErrorMapper func(error) error

// Store implements everything in store.Store except ApplyMigrations, which
// each driver owns.
type Store struct {
	db      *sql.DB
	q       *queries.Queries
	mapErr  ErrorMapper
	migrate func() error
}

// New wraps db. migrate is what ApplyMigrations runs.
func New(db *sql.DB, dialect queries.Dialect, mapErr ErrorMapper, migrate func() error) *Store {
	return &Store{
		db:      db,
		q:       queries.New(db, dialect),
		mapErr:  mapErr,
		migrate: migrate,
	}
}

// DB exposes the pool to the driver that opened it.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) ApplyMigrations() error { return s.migrate() }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, q: s.q.WithTx(tx), mapErr: s.mapErr}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users                 { return &usersRepo{q: s.q, mapErr: s.mapErr} }
func (s *Store) Courses() store.Courses             { return &coursesRepo{q: s.q, mapErr: s.mapErr} }
func (s *Store) Steps() store.Steps                 { return &stepsRepo{q: s.q, mapErr: s.mapErr} }
func (s *Store) Progress() store.Progress           { return &progressRepo{q: s.q, mapErr: s.mapErr} }
func (s *Store) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{q: s.q, mapErr: s.mapErr} }

type txStore struct {
	tx     *sql.Tx
	q      *queries.Queries
	mapErr ErrorMapper
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the pool stays open

// Ping is a no-op for transactions, the connection is already established.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx

func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.q, mapErr: t.mapErr} }
func (t *txStore) Courses() store.Courses             { return &coursesRepo{q: t.q, mapErr: t.mapErr} }
func (t *txStore) Steps() store.Steps                 { return &stepsRepo{q: t.q, mapErr: t.mapErr} }
func (t *txStore) Progress() store.Progress           { return &progressRepo{q: t.q, mapErr: t.mapErr} }
func (t *txStore) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{q: t.q, mapErr: t.mapErr} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mustAffect turns "no rows touched" into ErrNotFound.
func mustAffect(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

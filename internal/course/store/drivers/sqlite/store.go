package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gtrskylin3/CourseWebsite/internal/course/store"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/queries"
	"github.com/gtrskylin3/CourseWebsite/internal/course/store/sqlstore"
	_ "modernc.org/sqlite"
)

// MemoryDSN is a private in-memory database. Tests only.
const MemoryDSN = ":memory:"

// filePragmas apply to every connection of a file-backed database.
const filePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// NewStore opens dsn, either MemoryDSN or a file path.
func NewStore(dsn string) (*sqlstore.Store, error) {
	memory := dsn == MemoryDSN

	open := dsn
	if !memory && !strings.Contains(dsn, "?") {
		open = dsn + "?" + filePragmas
	}

	db, err := sql.Open("sqlite", open)
	if err != nil {
		return nil, err
	}

	if memory {
		// Every new connection would be a new empty database.
		db.SetMaxOpenConns(1)

		// Enforce FKs
		if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return sqlstore.New(db, queries.Question, mapError, func() error {
		return applyMigrations(db)
	}), nil
}

// mapError recognises constraint violations. modernc reports them with the
// classic sqlite message text.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %w", store.ErrAlreadyExists, err)
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

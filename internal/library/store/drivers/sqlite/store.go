package sqlite

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/stacks/internal/library/store/drivers/sqlstore"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Store is the sqlite-backed library store.
type Store struct {
	*sqlstore.Store
}

// NewStore opens dsn with the pure-Go sqlite driver. Use ":memory:" for an
// ephemeral database.
//
// The pool is pinned to one connection: sqlite allows a single writer, and
// an in-memory database only exists on the connection that created it.
func NewStore(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
		`PRAGMA journal_mode = WAL;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{
		Store: sqlstore.New(db, sqlstore.Dialect{
			Name:              "sqlite3",
			IsUniqueViolation: isUniqueViolation,
		}),
	}, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Extended result codes may be off for this connection.
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}
	return false
}

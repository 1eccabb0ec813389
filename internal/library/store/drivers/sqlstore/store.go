// Package sqlstore implements the library store on top of database/sql.
// Queries are built with goqu for the configured dialect and executed with
// sqlx. The sqlite and postgres drivers wrap it with their own connection
// setup and migrations.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
)

// Dialect describes the bits of a database the repositories cannot infer.
type Dialect struct {
	// Name is a goqu dialect name such as "sqlite3" or "postgres". The
	// dialect package must be imported by the caller.
	Name string

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation func(err error) bool
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
	conn    conn
}

func New(db *sqlx.DB, dialect Dialect) *Store {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}
	return &Store{
		db:      db,
		dialect: dialect,
		conn:    newConn(db, dialect),
	}
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, conn: newConn(tx, s.dialect)}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users { return &usersRepo{c: s.conn} }
func (s *Store) Books() store.Books { return &booksRepo{c: s.conn} }
func (s *Store) Loans() store.Loans { return &loansRepo{c: s.conn} }

type txStore struct {
	tx   *sqlx.Tx
	conn conn
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the outer store owns the connection.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(context.Context, func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations run before any transaction.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users { return &usersRepo{c: t.conn} }
func (t *txStore) Books() store.Books { return &booksRepo{c: t.conn} }
func (t *txStore) Loans() store.Loans { return &loansRepo{c: t.conn} }

// builder is any goqu dataset.
type builder interface {
	ToSQL() (string, []any, error)
}

// conn pairs a query target (db or tx) with the dialect used to build SQL.
type conn struct {
	q       sqlx.ExtContext
	d       goqu.DialectWrapper
	dialect Dialect
}

func newConn(q sqlx.ExtContext, dialect Dialect) conn {
	return conn{q: q, d: goqu.Dialect(dialect.Name), dialect: dialect}
}

func (c conn) from(table string) *goqu.SelectDataset {
	return c.d.From(table).Prepared(true)
}

func (c conn) insert(table string) *goqu.InsertDataset {
	return c.d.Insert(table).Prepared(true)
}

func (c conn) update(table string) *goqu.UpdateDataset {
	return c.d.Update(table).Prepared(true)
}

func (c conn) delete(table string) *goqu.DeleteDataset {
	return c.d.Delete(table).Prepared(true)
}

func (c conn) get(ctx context.Context, dest any, b builder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return err
	}
	if err := sqlx.GetContext(ctx, c.q, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNotFound
		}
		return err
	}
	return nil
}

func (c conn) selectAll(ctx context.Context, dest any, b builder) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, c.q, dest, query, args...)
}

// exec runs a write and returns the number of affected rows. Unique
// violations become store.ErrAlreadyExists.
func (c conn) exec(ctx context.Context, b builder) (int64, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return 0, err
	}
	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		if c.dialect.IsUniqueViolation(err) {
			return 0, store.ErrAlreadyExists
		}
		return 0, err
	}
	return res.RowsAffected()
}

// execOne is exec for writes that must touch exactly one row.
func (c conn) execOne(ctx context.Context, b builder) error {
	n, err := c.exec(ctx, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (c conn) count(ctx context.Context, table string) (int, error) {
	var n int
	err := c.get(ctx, &n, c.from(table).Select(goqu.COUNT(goqu.Star())))
	return n, err
}

// page loads one sorted page of ds into dest. columns maps the
// client-facing sort keys to column names.
func (c conn) page(
	ctx context.Context,
	dest any,
	ds *goqu.SelectDataset,
	columns map[string]string,
	q store.PageQuery,
) error {
	col, ok := columns[q.SortBy]
	if !ok {
		return store.ErrInvalidSortKey
	}
	if q.Size <= 0 || q.Page < 0 {
		return store.ErrInvalidPage
	}

	order := []exp.OrderedExpression{goqu.I(col).Asc()}
	if col != "id" {
		order = append(order, goqu.I("id").Asc())
	}

	return c.selectAll(ctx, dest, ds.
		Order(order...).
		Limit(uint(q.Size)).
		Offset(uint(q.Offset())))
}

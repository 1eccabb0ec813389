package store

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrAlreadyExists  = errors.New("store: already exists")
	ErrInvalidSortKey = errors.New("store: invalid sort key")
	ErrInvalidPage    = errors.New("store: invalid page")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it. Repositories hang off the store so that a Tx can
// hand out the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Books() Books
	Loans() Loans

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Nested transactions are not supported.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// PageQuery selects one zero-based page of a listing ordered by SortBy,
// with ties broken by id.
type PageQuery struct {
	Page   int
	Size   int
	SortBy string
}

// Offset saturates at math.MaxInt, which selects nothing.
func (q PageQuery) Offset() int {
	if q.Page > 0 && q.Size > math.MaxInt/q.Page {
		return math.MaxInt
	}
	return q.Page * q.Size
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is an exact, case-sensitive match.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser overwrites every mutable column and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	DeleteUser(ctx context.Context, id string) error

	// ListUsers returns all users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)

	IsEmpty(ctx context.Context) (bool, error)
}

type Books interface {
	GetBookByID(ctx context.Context, id string) (domain.Book, error)
	CreateBook(ctx context.Context, b domain.Book) error
	UpdateBook(ctx context.Context, b domain.Book) error

	// ListBooks returns the requested page and the total number of books.
	ListBooks(ctx context.Context, q PageQuery) ([]domain.Book, int, error)
}

type Loans interface {
	GetLoanByID(ctx context.Context, id string) (domain.LoanRecord, error)

	// GetOpenLoan finds the unreturned loan of bookID to username.
	GetOpenLoan(ctx context.Context, bookID, username string) (domain.LoanRecord, error)

	// CreateLoan returns ErrAlreadyExists when an open loan for the same
	// book and borrower already exists.
	CreateLoan(ctx context.Context, l domain.LoanRecord) error

	// CloseLoan marks an open loan returned. It returns ErrNotFound when the
	// loan does not exist or was already returned.
	CloseLoan(ctx context.Context, id string, at time.Time) error

	ListLoans(ctx context.Context, q PageQuery) ([]domain.LoanRecord, int, error)
}

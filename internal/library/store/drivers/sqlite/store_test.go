package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedBook(t *testing.T, s store.Store, title string) domain.Book {
	t.Helper()

	b := domain.Book{ID: idx.New().String(), Title: title, Author: "Frank Herbert", Category: domain.CategoryFiction}
	require.NoError(t, s.Books().CreateBook(context.Background(), b))
	return b
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := domain.User{
		ID:           idx.New().String(),
		Username:     "mem1",
		PasswordHash: "hash",
		FirstName:    "Mem",
		Gender:       domain.GenderOther,
		Role:         domain.RoleMember,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	t.Run("lookup by username is case-sensitive", func(t *testing.T) {
		got, err := s.Users().GetUserByUsername(ctx, "mem1")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, domain.RoleMember, got.Role)
		require.Equal(t, domain.GenderOther, got.Gender)
		require.False(t, got.CreatedAt.IsZero())

		_, err = s.Users().GetUserByUsername(ctx, "MEM1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username", func(t *testing.T) {
		dup := u
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		u.LastName = "Ber"
		require.NoError(t, s.Users().UpdateUser(ctx, u))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Ber", got.LastName)

		missing := u
		missing.ID = idx.New().String()
		require.ErrorIs(t, s.Users().UpdateUser(ctx, missing), store.ErrNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		other := domain.User{ID: idx.New().String(), Username: "alpha", PasswordHash: "h", Role: domain.RoleAdmin}
		require.NoError(t, s.Users().CreateUser(ctx, other))

		users, err := s.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "alpha", users[0].Username)

		require.NoError(t, s.Users().DeleteUser(ctx, other.ID))
		require.ErrorIs(t, s.Users().DeleteUser(ctx, other.ID), store.ErrNotFound)
	})
}

func TestBooks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dune := seedBook(t, s, "Dune")

	got, err := s.Books().GetBookByID(ctx, dune.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune", got.Title)
	require.Equal(t, domain.CategoryFiction, got.Category)

	dune.Title = "Dune Messiah"
	dune.Category = domain.CategoryNone
	require.NoError(t, s.Books().UpdateBook(ctx, dune))

	got, err = s.Books().GetBookByID(ctx, dune.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", got.Title)
	require.Equal(t, domain.CategoryNone, got.Category)

	_, err = s.Books().GetBookByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, title := range []string{"Emma", "Beloved", "Dune", "Anathem", "Carrie"} {
		seedBook(t, s, title)
	}

	books, total, err := s.Books().ListBooks(ctx, store.PageQuery{Page: 0, Size: 2, SortBy: "title"})
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Len(t, books, 2)
	require.Equal(t, "Anathem", books[0].Title)
	require.Equal(t, "Beloved", books[1].Title)

	books, _, err = s.Books().ListBooks(ctx, store.PageQuery{Page: 2, Size: 2, SortBy: "title"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, "Emma", books[0].Title)

	books, _, err = s.Books().ListBooks(ctx, store.PageQuery{Page: 9, Size: 2, SortBy: "title"})
	require.NoError(t, err)
	require.Empty(t, books)

	_, _, err = s.Books().ListBooks(ctx, store.PageQuery{Page: 0, Size: 2, SortBy: "publisher"})
	require.ErrorIs(t, err, store.ErrInvalidSortKey)

	_, _, err = s.Books().ListBooks(ctx, store.PageQuery{Page: 0, Size: 0, SortBy: "title"})
	require.ErrorIs(t, err, store.ErrInvalidPage)
}

func TestLoans(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	dune := seedBook(t, s, "Dune")

	loan := domain.LoanRecord{
		ID:                idx.New().String(),
		BorrowerUsername:  "mem1",
		LibrarianUsername: "desk",
		BookID:            dune.ID,
		BookTitle:         dune.Title,
		BookAuthor:        dune.Author,
	}
	require.NoError(t, s.Loans().CreateLoan(ctx, loan))

	t.Run("open loan lookup", func(t *testing.T) {
		got, err := s.Loans().GetOpenLoan(ctx, dune.ID, "mem1")
		require.NoError(t, err)
		require.Equal(t, loan.ID, got.ID)
		require.False(t, got.Returned)
		require.Nil(t, got.ReturnedAt)

		_, err = s.Loans().GetOpenLoan(ctx, dune.ID, "someone-else")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("second open loan for same pair is rejected", func(t *testing.T) {
		dup := loan
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Loans().CreateLoan(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("close is compare-and-swap", func(t *testing.T) {
		require.NoError(t, s.Loans().CloseLoan(ctx, loan.ID, time.Now()))
		require.ErrorIs(t, s.Loans().CloseLoan(ctx, loan.ID, time.Now()), store.ErrNotFound)

		got, err := s.Loans().GetLoanByID(ctx, loan.ID)
		require.NoError(t, err)
		require.True(t, got.Returned)
		require.NotNil(t, got.ReturnedAt)

		_, err = s.Loans().GetOpenLoan(ctx, dune.ID, "mem1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("new loan after return", func(t *testing.T) {
		again := loan
		again.ID = idx.New().String()
		require.NoError(t, s.Loans().CreateLoan(ctx, again))

		loans, total, err := s.Loans().ListLoans(ctx, store.PageQuery{Page: 0, Size: 10, SortBy: "returned"})
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.False(t, loans[0].Returned)
		require.True(t, loans[1].Returned)
	})

	t.Run("loan must reference a book", func(t *testing.T) {
		orphan := loan
		orphan.ID = idx.New().String()
		orphan.BookID = idx.New().String()
		require.Error(t, s.Loans().CreateLoan(ctx, orphan))
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("rollback on error", func(t *testing.T) {
		var id string
		err := s.WithTx(ctx, func(tx store.Tx) error {
			b := seedBook(t, tx, "Ghost")
			id = b.ID
			return store.ErrNotFound
		})
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Books().GetBookByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nested transactions are refused", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			return err
		})
		require.Error(t, err)
	})

	t.Run("concurrent transactions serialise", func(t *testing.T) {
		dune := seedBook(t, s, "Dune")

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = s.WithTx(ctx, func(tx store.Tx) error {
					return tx.Loans().CreateLoan(ctx, domain.LoanRecord{
						ID:               idx.New().String(),
						BorrowerUsername: "mem1",
						BookID:           dune.ID,
						BookTitle:        dune.Title,
					})
				})
			}()
		}
		wg.Wait()

		ok := 0
		for _, err := range errs {
			if err == nil {
				ok++
				continue
			}
			require.ErrorIs(t, err, store.ErrAlreadyExists)
		}
		require.Equal(t, 1, ok)
	})
}

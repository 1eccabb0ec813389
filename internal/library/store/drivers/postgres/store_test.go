package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a throwaway postgres container and returns a migrated
// store connected to it.
func setupPostgres(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres driver tests need docker")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "stacks",
			"POSTGRES_PASSWORD": "stacks",
			"POSTGRES_DB":       "stacks",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://stacks:stacks@%s:%s/stacks?sslmode=disable", host, port.Port())
	s, err := NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	s := setupPostgres(t)

	u := domain.User{ID: idx.New().String(), Username: "mem1", PasswordHash: "h", Role: domain.RoleMember}
	require.NoError(t, s.Users().CreateUser(ctx, u))
	u.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, u), store.ErrAlreadyExists)

	titles := []string{"Emma", "Beloved", "Dune"}
	var dune domain.Book
	for _, title := range titles {
		b := domain.Book{ID: idx.New().String(), Title: title}
		require.NoError(t, s.Books().CreateBook(ctx, b))
		if title == "Dune" {
			dune = b
		}
	}

	books, total, err := s.Books().ListBooks(ctx, store.PageQuery{Page: 0, Size: 2, SortBy: "title"})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Equal(t, "Beloved", books[0].Title)
	require.Equal(t, "Dune", books[1].Title)

	t.Run("one open loan under concurrency", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = s.WithTx(ctx, func(tx store.Tx) error {
					return tx.Loans().CreateLoan(ctx, domain.LoanRecord{
						ID:                idx.New().String(),
						BorrowerUsername:  "mem1",
						LibrarianUsername: "desk",
						BookID:            dune.ID,
						BookTitle:         dune.Title,
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

	t.Run("close once", func(t *testing.T) {
		open, err := s.Loans().GetOpenLoan(ctx, dune.ID, "mem1")
		require.NoError(t, err)

		require.NoError(t, s.Loans().CloseLoan(ctx, open.ID, time.Now()))
		require.ErrorIs(t, s.Loans().CloseLoan(ctx, open.ID, time.Now()), store.ErrNotFound)
	})
}

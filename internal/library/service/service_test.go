package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/internal/library/store/drivers/sqlite"
	"github.com/aussiebroadwan/stacks/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "stacks-service-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// fixture is a migrated in-memory library with one user per role.
type fixture struct {
	store   store.Store
	users   *UserService
	catalog *CatalogService
	lending *LendingService
	listing *ListingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	f := &fixture{
		store:   s,
		users:   &UserService{Store: s},
		catalog: &CatalogService{Store: s},
		lending: &LendingService{Store: s},
		listing: &ListingService{Store: s},
	}

	f.signUp(t, "lib1", domain.RoleAdmin)
	f.signUp(t, "desk", domain.RoleLibrarian)
	f.signUp(t, "mem1", domain.RoleMember)
	return f
}

func (f *fixture) signUp(t *testing.T, username string, role domain.Role) domain.User {
	t.Helper()

	u, err := f.users.SignUp(context.Background(), SignUpRequest{
		Username: username,
		Password: "correct horse battery",
		Role:     string(role),
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) addBook(t *testing.T, title string) domain.Book {
	t.Helper()

	b, err := f.catalog.AddBook(context.Background(), BookRequest{Title: title, Author: "Frank Herbert"}, "lib1")
	require.NoError(t, err)
	return b
}

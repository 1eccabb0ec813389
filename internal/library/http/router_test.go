package http

import (
	"context"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/internal/library/store/drivers/sqlite"
	"github.com/aussiebroadwan/stacks/pkg/cryptox"
	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/aussiebroadwan/stacks/pkg/librarysdk"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse battery"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "stacks-http-*")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testServer struct {
	URL    string
	client *librarysdk.Client
	store  store.Store
}

// newTestServer serves a migrated in-memory library with lib1 (ADMIN),
// desk (LIBRARIAN) and mem1 (MEMBER). Limits are relaxed unless tweak
// changes them.
func newTestServer(t *testing.T, tweak ...func(*Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter("test", st, logger)
	router.Limits = Limits{
		Auth:  httpx.LenientLimit,
		Write: httpx.LenientLimit,
		Read:  httpx.LenientLimit,
	}
	for _, fn := range tweak {
		fn(router)
	}
	router.ApplyRoutes()

	for username, role := range map[string]string{"lib1": "ADMIN", "desk": "LIBRARIAN", "mem1": "MEMBER"} {
		_, err := router.UserService.SignUp(context.Background(), service.SignUpRequest{
			Username: username,
			Password: testPassword,
			Role:     role,
		})
		require.NoError(t, err)
	}

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, client: librarysdk.NewClient(srv.URL), store: st}
}

func (s *testServer) addBook(t *testing.T, title string) *librarysdk.BookInfo {
	t.Helper()

	book, err := s.client.AddBook(context.Background(), "lib1", librarysdk.BookRequest{
		Title:  title,
		Author: "Frank Herbert",
	})
	require.NoError(t, err)
	return book
}

func (s *testServer) get(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := http.Get(s.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestLendingScenario(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	book := s.addBook(t, "Dune")
	require.NotEmpty(t, book.ID)
	require.True(t, idx.Valid(book.ID))

	_, err := s.client.AddBook(ctx, "mem1", librarysdk.BookRequest{Title: "Emma"})
	require.True(t, librarysdk.IsForbidden(err), "got %v", err)

	loan, err := s.client.BorrowBook(ctx, "mem1", book.ID, "desk")
	require.NoError(t, err)
	require.False(t, loan.Returned)
	require.Equal(t, "Dune", loan.BookTitle)
	require.Equal(t, "desk", loan.LibrarianUsername)

	_, err = s.client.BorrowBook(ctx, "mem1", book.ID, "desk")
	require.True(t, librarysdk.IsForbidden(err), "open loan must block a second borrow, got %v", err)

	loans, err := s.client.ListLoans(ctx, 0, 10, "createdAt")
	require.NoError(t, err)
	require.Equal(t, 1, loans.TotalElements)

	returned, err := s.client.ReturnBook(ctx, "mem1", book.ID)
	require.NoError(t, err)
	require.Equal(t, loan.ID, returned.ID)
	require.True(t, returned.Returned)
	require.NotNil(t, returned.ReturnedAt)

	_, err = s.client.ReturnBook(ctx, "mem1", book.ID)
	require.True(t, librarysdk.IsNotFound(err), "second return must find no open loan, got %v", err)
}

func TestBorrowErrorStatuses(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	book := s.addBook(t, "Dune")

	tests := []struct {
		name      string
		borrower  string
		bookID    string
		librarian string
		status    int
	}{
		{"unknown borrower", "ghost", book.ID, "desk", http.StatusForbidden},
		{"catalog editor", "lib1", book.ID, "desk", http.StatusForbidden},
		{"unknown librarian", "mem1", book.ID, "nobody", http.StatusBadRequest},
		{"member cannot countersign", "desk", book.ID, "mem1", http.StatusBadRequest},
		{"self countersign", "desk", book.ID, "desk", http.StatusBadRequest},
		{"missing book", "mem1", idx.New().String(), "desk", http.StatusNotFound},
		{"malformed book id", "mem1", "42", "desk", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.client.BorrowBook(ctx, tt.borrower, tt.bookID, tt.librarian)
			var apiErr *librarysdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tt.status, apiErr.StatusCode)
			require.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	book := s.addBook(t, "Dune")

	updated, err := s.client.UpdateBook(ctx, "lib1", book.ID, librarysdk.BookRequest{
		Title:    "Dune Messiah",
		Category: "fiction",
	})
	require.NoError(t, err)
	require.Equal(t, book.ID, updated.ID)
	require.Equal(t, "Dune Messiah", updated.Title)
	require.Empty(t, updated.Author, "update replaces every field")
	require.Equal(t, "FICTION", updated.Category)

	got, err := s.client.GetBook(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", got.Title)

	_, err = s.client.UpdateBook(ctx, "mem1", book.ID, librarysdk.BookRequest{Title: "x"})
	require.True(t, librarysdk.IsForbidden(err))

	_, err = s.client.UpdateBook(ctx, "lib1", idx.New().String(), librarysdk.BookRequest{Title: "x"})
	require.True(t, librarysdk.IsNotFound(err))

	_, err = s.client.UpdateBook(ctx, "lib1", book.ID, librarysdk.BookRequest{Title: "x", Category: "ROMANCE"})
	require.True(t, librarysdk.IsBadRequest(err))
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)
	for _, title := range []string{"Dune", "Anathem", "Hyperion"} {
		s.addBook(t, title)
	}

	page, err := s.client.ListBooks(ctx, 0, 2, "title")
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, "Anathem", page.Content[0].Title)
	require.Equal(t, "Dune", page.Content[1].Title)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, 3, page.TotalElements)

	page, err = s.client.ListBooks(ctx, 1, 2, "title")
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, 1, page.CurrentPage)

	_, err = s.client.ListBooks(ctx, 0, 2, "password")
	require.True(t, librarysdk.IsBadRequest(err))

	_, err = s.client.ListBooks(ctx, 0, 0, "title")
	require.True(t, librarysdk.IsBadRequest(err))

	t.Run("defaults", func(t *testing.T) {
		code, body := s.get(t, "/v1/books")
		require.Equal(t, http.StatusOK, code)
		require.Contains(t, body, `"pageSize":10`)
	})

	t.Run("huge size", func(t *testing.T) {
		page, err := s.client.ListBooks(ctx, 0, math.MaxInt, "title")
		require.NoError(t, err)
		require.Len(t, page.Content, 3)
		require.Equal(t, 1, page.TotalPages)
		require.Equal(t, math.MaxInt, page.PageSize)

		page, err = s.client.ListBooks(ctx, 2, math.MaxInt, "title")
		require.NoError(t, err)
		require.Empty(t, page.Content)
		require.Equal(t, 1, page.TotalPages)
	})

	t.Run("malformed size", func(t *testing.T) {
		code, body := s.get(t, "/v1/books?size=ten")
		require.Equal(t, http.StatusBadRequest, code)
		require.Contains(t, body, `"code":400`)
		require.Contains(t, body, `"data":null`)
	})
}

func TestRejectsMalformedBodies(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{`{"title":`, `{"title":"Dune","pages":412}`} {
		resp, err := http.Post(s.URL+"/v1/books?username=lib1", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	created, err := s.client.SignUp(ctx, librarysdk.SignUpRequest{
		Username:  "johndoe",
		Password:  "securepassword123",
		FirstName: "John",
		Role:      "MEMBER",
	})
	require.NoError(t, err)
	require.Equal(t, "MEMBER", created.Role)

	_, err = s.client.SignUp(ctx, librarysdk.SignUpRequest{Username: "johndoe", Password: "securepassword123", Role: "MEMBER"})
	require.True(t, librarysdk.IsBadRequest(err))

	signedIn, err := s.client.SignIn(ctx, "johndoe", "securepassword123")
	require.NoError(t, err)
	require.Equal(t, created.ID, signedIn.ID)

	_, err = s.client.SignIn(ctx, "johndoe", "wrong password")
	require.True(t, librarysdk.IsBadRequest(err))

	last := "Doe"
	updated, err := s.client.UpdateProfile(ctx, librarysdk.UpdateProfileRequest{Username: "johndoe", LastName: &last})
	require.NoError(t, err)
	require.Equal(t, "John", updated.FirstName)
	require.Equal(t, "Doe", updated.LastName)

	got, err := s.client.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "johndoe", got.Username)

	users, err := s.client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	_, body := s.get(t, "/v1/users")
	require.NotContains(t, body, "argon2")

	require.NoError(t, s.client.DeleteUser(ctx, created.ID))
	_, err = s.client.GetUser(ctx, created.ID)
	require.True(t, librarysdk.IsBadRequest(err))
	require.True(t, librarysdk.IsBadRequest(s.client.DeleteUser(ctx, created.ID)))
}

func TestSignInRateLimited(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, func(r *Router) {
		r.Limits.Auth = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	})

	_, err := s.client.SignIn(ctx, "mem1", testPassword)
	require.NoError(t, err)

	_, err = s.client.SignIn(ctx, "mem1", testPassword)
	var apiErr *librarysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)

	// Other route classes keep their own buckets.
	_, err = s.client.ListBooks(ctx, 0, 10, "id")
	require.NoError(t, err)
}

func TestHealth(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	live, err := s.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)
	require.Nil(t, live.Checks)

	ready, err := s.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, s.store.Close())

	ready, err = s.client.GetReadiness(ctx)
	var apiErr *librarysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	require.Equal(t, "degraded", ready.Status)
	require.True(t, strings.HasPrefix(ready.Checks.Database, "error: "))
}

func TestSwaggerDocs(t *testing.T) {
	s := newTestServer(t)

	code, body := s.get(t, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "Stacks Library Service API")
	require.Contains(t, body, "/v1/loans/borrow")
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, s.URL+"/livez", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "req-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, "req-123", resp.Header.Get("X-Request-ID"))
}

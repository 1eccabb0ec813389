package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/slogx"
)

// ListingService pages through books and loans. It holds no rules beyond
// validating the page request.
type ListingService struct {
	Store store.Store
}

func validatePage(page, size int, sortKey string, allowed []string) (store.PageQuery, error) {
	if size <= 0 {
		return store.PageQuery{}, badRequest("size must be greater than zero")
	}
	if page < 0 {
		return store.PageQuery{}, badRequest("page must not be negative")
	}
	if !slices.Contains(allowed, sortKey) {
		return store.PageQuery{}, badRequest("cannot sort by %q, expected one of: %s",
			sortKey, strings.Join(allowed, ", "))
	}
	return store.PageQuery{Page: page, Size: size, SortBy: sortKey}, nil
}

func listError(ctx context.Context, what string, err error) error {
	if errors.Is(err, store.ErrInvalidSortKey) || errors.Is(err, store.ErrInvalidPage) {
		return badRequest("invalid page request")
	}
	slogx.FromContext(ctx).Error("failed to list "+what, slog.Any("error", err))
	return internal("error occurred while fetching paginated "+what, err)
}

// ListBooks returns one zero-based page of books ordered by sortKey.
func (s *ListingService) ListBooks(ctx context.Context, page, size int, sortKey string) (domain.Page[domain.Book], error) {
	q, err := validatePage(page, size, sortKey, domain.BookSortKeys)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}
	books, total, err := s.Store.Books().ListBooks(ctx, q)
	if err != nil {
		return domain.Page[domain.Book]{}, listError(ctx, "books", err)
	}
	return domain.NewPage(books, page, size, total), nil
}

// ListLoans returns one zero-based page of loan records ordered by sortKey.
func (s *ListingService) ListLoans(ctx context.Context, page, size int, sortKey string) (domain.Page[domain.LoanRecord], error) {
	q, err := validatePage(page, size, sortKey, domain.LoanSortKeys)
	if err != nil {
		return domain.Page[domain.LoanRecord]{}, err
	}
	loans, total, err := s.Store.Loans().ListLoans(ctx, q)
	if err != nil {
		return domain.Page[domain.LoanRecord]{}, listError(ctx, "borrowed books", err)
	}
	return domain.NewPage(loans, page, size, total), nil
}

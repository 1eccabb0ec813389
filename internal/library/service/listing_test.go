package service

import (
	"context"
	"math"
	"testing"

	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/stretchr/testify/require"
)

func pageAll() store.PageQuery {
	return store.PageQuery{Page: 0, Size: 100, SortBy: "id"}
}

func TestListBooks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, title := range []string{"Emma", "Beloved", "Dune", "Anathem", "Carrie"} {
		f.addBook(t, title)
	}

	page, err := f.listing.ListBooks(ctx, 0, 2, "title")
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, 5, page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 0, page.CurrentPage)
	require.Equal(t, 2, page.PageSize)
	require.Equal(t, "Anathem", page.Content[0].Title)

	last, err := f.listing.ListBooks(ctx, 2, 2, "title")
	require.NoError(t, err)
	require.Len(t, last.Content, 1)
	require.Equal(t, "Emma", last.Content[0].Title)

	beyond, err := f.listing.ListBooks(ctx, 7, 2, "title")
	require.NoError(t, err)
	require.Empty(t, beyond.Content)
	require.NotNil(t, beyond.Content)
}

func TestListBooksEmpty(t *testing.T) {
	f := newFixture(t)

	page, err := f.listing.ListBooks(context.Background(), 0, 2, "id")
	require.NoError(t, err)
	require.Zero(t, page.TotalElements)
	require.Zero(t, page.TotalPages)
	require.Empty(t, page.Content)
}

func TestListBooksHugePageSize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.addBook(t, "Dune")
	f.addBook(t, "Emma")

	page, err := f.listing.ListBooks(ctx, 0, math.MaxInt, "title")
	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	require.Equal(t, 1, page.TotalPages)

	page, err = f.listing.ListBooks(ctx, 3, math.MaxInt, "title")
	require.NoError(t, err)
	require.Empty(t, page.Content)
	require.Equal(t, 1, page.TotalPages)
}

func TestListRejectsBadRequests(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name       string
		page, size int
		sortKey    string
	}{
		{name: "zero size", page: 0, size: 0, sortKey: "title"},
		{name: "negative page", page: -1, size: 2, sortKey: "title"},
		{name: "unknown key", page: 0, size: 2, sortKey: "publisher"},
		{name: "column name instead of key", page: 0, size: 2, sortKey: "created_at"},
		{name: "empty key", page: 0, size: 2, sortKey: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.listing.ListBooks(ctx, tt.page, tt.size, tt.sortKey)
			require.ErrorIs(t, err, ErrBadRequest)
		})
	}

	_, err := f.listing.ListLoans(ctx, 0, 2, "title")
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestListLoans(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	dune := f.addBook(t, "Dune")
	emma := f.addBook(t, "Emma")

	_, err := f.lending.BorrowBook(ctx, "mem1", dune.ID, "desk")
	require.NoError(t, err)
	_, err = f.lending.BorrowBook(ctx, "mem1", emma.ID, "desk")
	require.NoError(t, err)
	_, err = f.lending.ReturnBook(ctx, "mem1", dune.ID)
	require.NoError(t, err)

	page, err := f.listing.ListLoans(ctx, 0, 10, "bookTitle")
	require.NoError(t, err)
	require.Equal(t, 2, page.TotalElements)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, "Dune", page.Content[0].BookTitle)
	require.True(t, page.Content[0].Returned)
	require.Equal(t, "Emma", page.Content[1].BookTitle)
	require.False(t, page.Content[1].Returned)
}

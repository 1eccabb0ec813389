package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/idx"
)

// The find helpers turn store.ErrNotFound into a nil snapshot so that the
// eligibility rules can see absence directly.

func findUserByUsername(ctx context.Context, s store.Store, username string) (*domain.User, error) {
	if username == "" {
		return nil, nil
	}
	u, err := s.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// findBook treats an id that is not a ULID as absent without asking the store.
func findBook(ctx context.Context, s store.Store, id string) (*domain.Book, error) {
	if !idx.Valid(id) {
		return nil, nil
	}
	b, err := s.Books().GetBookByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func findOpenLoan(ctx context.Context, s store.Store, bookID, username string) (*domain.LoanRecord, error) {
	l, err := s.Loans().GetOpenLoan(ctx, bookID, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

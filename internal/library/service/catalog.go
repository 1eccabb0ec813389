package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/eligibility"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/aussiebroadwan/stacks/pkg/slogx"
)

// BookRequest carries every mutable book field. Category may be empty.
type BookRequest struct {
	Title       string
	Author      string
	ISBN        string
	Description string
	Category    string
}

func (r BookRequest) validate() (domain.Category, error) {
	if strings.TrimSpace(r.Title) == "" {
		return "", badRequest("title is required")
	}
	c, ok := domain.ParseCategory(r.Category)
	if !ok {
		return "", badRequest("unknown category %q", r.Category)
	}
	return c, nil
}

type CatalogService struct {
	Store store.Store
}

// AddBook stores a new book on behalf of actingUsername, who must hold the
// catalog editor role.
func (s *CatalogService) AddBook(ctx context.Context, req BookRequest, actingUsername string) (domain.Book, error) {
	log := slogx.FromContext(ctx)

	// 1. Only catalog editors may add books.
	actor, err := findUserByUsername(ctx, s.Store, actingUsername)
	if err != nil {
		log.Error("failed to load acting user", slog.Any("error", err))
		return domain.Book{}, internal("failed to add book", err)
	}
	if !eligibility.CanEditCatalog(actor) {
		log.Warn("catalog edit denied", slog.String("username", actingUsername))
		return domain.Book{}, forbidden("user not authorized to add books")
	}

	// 2. Validate the request.
	category, err := req.validate()
	if err != nil {
		return domain.Book{}, err
	}

	// 3. Persist with a fresh id.
	now := time.Now().UTC()
	book := domain.Book{
		ID:          idx.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Author:      strings.TrimSpace(req.Author),
		ISBN:        strings.TrimSpace(req.ISBN),
		Description: req.Description,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Books().CreateBook(ctx, book); err != nil {
		log.Error("failed to create book", slog.String("book_id", book.ID), slog.Any("error", err))
		return domain.Book{}, internal("failed to add book", err)
	}

	log.Info("book added",
		slog.String("book_id", book.ID),
		slog.String("title", book.Title),
		slog.String("by", actingUsername),
	)
	return book, nil
}

// UpdateBook replaces every mutable field of bookID with req. Fields left
// empty in req are cleared; the id and creation time are kept.
func (s *CatalogService) UpdateBook(
	ctx context.Context,
	req BookRequest,
	actingUsername string,
	bookID string,
) (domain.Book, error) {
	log := slogx.FromContext(ctx)

	var updated domain.Book
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := findUserByUsername(ctx, tx, actingUsername)
		if err != nil {
			return err
		}
		if !eligibility.CanEditCatalog(actor) {
			log.Warn("catalog edit denied", slog.String("username", actingUsername))
			return forbidden("user not authorized to update books")
		}

		existing, err := findBook(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if existing == nil {
			return notFound("book not found")
		}

		category, err := req.validate()
		if err != nil {
			return err
		}

		updated = domain.Book{
			ID:          existing.ID,
			Title:       strings.TrimSpace(req.Title),
			Author:      strings.TrimSpace(req.Author),
			ISBN:        strings.TrimSpace(req.ISBN),
			Description: req.Description,
			Category:    category,
			CreatedAt:   existing.CreatedAt,
			UpdatedAt:   time.Now().UTC(),
		}
		if err := tx.Books().UpdateBook(ctx, updated); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound("book not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		err = asServiceError("failed to update book", err)
		if errors.Is(err, ErrInternal) {
			log.Error("failed to update book", slog.String("book_id", bookID), slog.Any("error", err))
		}
		return domain.Book{}, err
	}

	log.Info("book updated", slog.String("book_id", bookID), slog.String("by", actingUsername))
	return updated, nil
}

// GetBook returns a single book.
func (s *CatalogService) GetBook(ctx context.Context, bookID string) (domain.Book, error) {
	b, err := findBook(ctx, s.Store, bookID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load book", slog.String("book_id", bookID), slog.Any("error", err))
		return domain.Book{}, internal("failed to load book", err)
	}
	if b == nil {
		return domain.Book{}, notFound("book not found")
	}
	return *b, nil
}

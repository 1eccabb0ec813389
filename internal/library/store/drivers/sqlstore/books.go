package sqlstore

import (
	"context"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/doug-martin/goqu/v9"
)

const booksTable = "books"

type bookRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	ISBN        string    `db:"isbn"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var bookColumns = []any{
	"id", "title", "author", "isbn", "description", "category", "created_at", "updated_at",
}

var bookSortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"author":    "author",
	"isbn":      "isbn",
	"category":  "category",
	"createdAt": "created_at",
}

func (r bookRow) domain() domain.Book {
	return domain.Book{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Description: r.Description,
		Category:    domain.Category(r.Category),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type booksRepo struct {
	c conn
}

func (r *booksRepo) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	var row bookRow
	err := r.c.get(ctx, &row, r.c.from(booksTable).Select(bookColumns...).Where(goqu.Ex{"id": id}))
	if err != nil {
		return domain.Book{}, err
	}
	return row.domain(), nil
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) error {
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	_, err := r.c.exec(ctx, r.c.insert(booksTable).Rows(goqu.Record{
		"id":          b.ID,
		"title":       b.Title,
		"author":      b.Author,
		"isbn":        b.ISBN,
		"description": b.Description,
		"category":    string(b.Category),
		"created_at":  b.CreatedAt,
		"updated_at":  now,
	}))
	return err
}

// UpdateBook overwrites every mutable column. The id never changes.
func (r *booksRepo) UpdateBook(ctx context.Context, b domain.Book) error {
	return r.c.execOne(ctx, r.c.update(booksTable).Set(goqu.Record{
		"title":       b.Title,
		"author":      b.Author,
		"isbn":        b.ISBN,
		"description": b.Description,
		"category":    string(b.Category),
		"updated_at":  time.Now().UTC(),
	}).Where(goqu.Ex{"id": b.ID}))
}

func (r *booksRepo) ListBooks(ctx context.Context, q store.PageQuery) ([]domain.Book, int, error) {
	var rows []bookRow
	if err := r.c.page(ctx, &rows, r.c.from(booksTable).Select(bookColumns...), bookSortColumns, q); err != nil {
		return nil, 0, err
	}
	total, err := r.c.count(ctx, booksTable)
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, total, nil
}

package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const loansTable = "loans"

type loanRow struct {
	ID                string       `db:"id"`
	BorrowerUsername  string       `db:"borrower_username"`
	LibrarianUsername string       `db:"librarian_username"`
	BookID            string       `db:"book_id"`
	BookTitle         string       `db:"book_title"`
	BookAuthor        string       `db:"book_author"`
	Returned          bool         `db:"returned"`
	CreatedAt         time.Time    `db:"created_at"`
	ReturnedAt        sql.NullTime `db:"returned_at"`
}

var loanColumns = []any{
	"id", "borrower_username", "librarian_username", "book_id", "book_title",
	"book_author", "returned", "created_at", "returned_at",
}

var loanSortColumns = map[string]string{
	"id":                "id",
	"borrowerUsername":  "borrower_username",
	"librarianUsername": "librarian_username",
	"bookId":            "book_id",
	"bookTitle":         "book_title",
	"bookAuthor":        "book_author",
	"returned":          "returned",
	"createdAt":         "created_at",
}

func (r loanRow) domain() domain.LoanRecord {
	var returnedAt *time.Time
	if r.ReturnedAt.Valid {
		t := r.ReturnedAt.Time
		returnedAt = &t
	}
	return domain.LoanRecord{
		ID:                r.ID,
		BorrowerUsername:  r.BorrowerUsername,
		LibrarianUsername: r.LibrarianUsername,
		BookID:            r.BookID,
		BookTitle:         r.BookTitle,
		BookAuthor:        r.BookAuthor,
		Returned:          r.Returned,
		CreatedAt:         r.CreatedAt,
		ReturnedAt:        returnedAt,
	}
}

type loansRepo struct {
	c conn
}

// stillOpen matches unreturned loans on both sqlite and postgres.
var stillOpen = goqu.L("NOT returned")

func (r *loansRepo) getBy(ctx context.Context, where ...exp.Expression) (domain.LoanRecord, error) {
	var row loanRow
	if err := r.c.get(ctx, &row, r.c.from(loansTable).Select(loanColumns...).Where(where...)); err != nil {
		return domain.LoanRecord{}, err
	}
	return row.domain(), nil
}

func (r *loansRepo) GetLoanByID(ctx context.Context, id string) (domain.LoanRecord, error) {
	return r.getBy(ctx, goqu.Ex{"id": id})
}

func (r *loansRepo) GetOpenLoan(ctx context.Context, bookID, username string) (domain.LoanRecord, error) {
	return r.getBy(ctx, goqu.Ex{
		"book_id":           bookID,
		"borrower_username": username,
	}, stillOpen)
}

func (r *loansRepo) CreateLoan(ctx context.Context, l domain.LoanRecord) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	_, err := r.c.exec(ctx, r.c.insert(loansTable).Rows(goqu.Record{
		"id":                 l.ID,
		"borrower_username":  l.BorrowerUsername,
		"librarian_username": l.LibrarianUsername,
		"book_id":            l.BookID,
		"book_title":         l.BookTitle,
		"book_author":        l.BookAuthor,
		"returned":           false,
		"created_at":         l.CreatedAt,
	}))
	return err
}

// CloseLoan only flips loans that are still open, so a second close of the
// same loan touches no rows.
func (r *loansRepo) CloseLoan(ctx context.Context, id string, at time.Time) error {
	return r.c.execOne(ctx, r.c.update(loansTable).Set(goqu.Record{
		"returned":    true,
		"returned_at": at.UTC(),
	}).Where(goqu.Ex{"id": id}, stillOpen))
}

func (r *loansRepo) ListLoans(ctx context.Context, q store.PageQuery) ([]domain.LoanRecord, int, error) {
	var rows []loanRow
	if err := r.c.page(ctx, &rows, r.c.from(loansTable).Select(loanColumns...), loanSortColumns, q); err != nil {
		return nil, 0, err
	}
	total, err := r.c.count(ctx, loansTable)
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.LoanRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.domain())
	}
	return out, total, nil
}

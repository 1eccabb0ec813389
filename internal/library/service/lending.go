package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/eligibility"
	"github.com/aussiebroadwan/stacks/internal/library/store"
	"github.com/aussiebroadwan/stacks/pkg/idx"
	"github.com/aussiebroadwan/stacks/pkg/slogx"
)

// LendingService moves a (book, borrower) pair through
// no loan -> open -> closed. Each transition is one transaction.
type LendingService struct {
	Store store.Store
}

// BorrowBook opens a loan of bookID to borrowerUsername, countersigned by
// librarianUsername.
func (s *LendingService) BorrowBook(
	ctx context.Context,
	borrowerUsername string,
	bookID string,
	librarianUsername string,
) (domain.LoanRecord, error) {
	ctx = slogx.With(ctx,
		slog.String("borrower", borrowerUsername),
		slog.String("book_id", bookID),
		slog.String("librarian", librarianUsername),
	)
	log := slogx.FromContext(ctx)

	var loan domain.LoanRecord
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		borrower, err := findUserByUsername(ctx, tx, borrowerUsername)
		if err != nil {
			return err
		}
		book, err := findBook(ctx, tx, bookID)
		if err != nil {
			return err
		}
		var open *domain.LoanRecord
		if borrower != nil && book != nil {
			if open, err = findOpenLoan(ctx, tx, bookID, borrowerUsername); err != nil {
				return err
			}
		}

		// 1. The borrower must be allowed to borrow.
		verdict := eligibility.DecideBorrow(borrower, book, open)
		switch verdict.Reason {
		case eligibility.ReasonUserUnknown, eligibility.ReasonCatalogEditor, eligibility.ReasonLoanAlreadyOpen:
			log.Warn("borrow denied", slog.String("reason", string(verdict.Reason)))
			return forbidden("user not eligible to borrow books: %s", verdict.Reason)
		}

		// 2. The countersigning librarian must exist and hold the role.
		librarian, err := findUserByUsername(ctx, tx, librarianUsername)
		if err != nil {
			return err
		}
		if !eligibility.IsAuthorizedLibrarian(librarian) {
			log.Warn("borrow rejected: librarian not authorized")
			return badRequest("librarian not found or not authorized")
		}
		if !eligibility.CanCountersign(librarian, borrower) {
			log.Warn("borrow rejected: self-countersigned")
			return badRequest("librarian cannot countersign their own loan")
		}

		// 3. The book must exist.
		if verdict.Reason == eligibility.ReasonBookMissing {
			return notFound("book not found with id: %s", bookID)
		}

		// 4. Open the loan. The open-loan index rejects a concurrent twin.
		loan = domain.LoanRecord{
			ID:                idx.New().String(),
			BorrowerUsername:  borrower.Username,
			LibrarianUsername: librarian.Username,
			BookID:            book.ID,
			BookTitle:         book.Title,
			BookAuthor:        book.Author,
			CreatedAt:         time.Now().UTC(),
		}
		if err := tx.Loans().CreateLoan(ctx, loan); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				log.Warn("borrow denied", slog.String("reason", string(eligibility.ReasonLoanAlreadyOpen)))
				return forbidden("user not eligible to borrow books: %s", eligibility.ReasonLoanAlreadyOpen)
			}
			return err
		}
		return nil
	})
	if err != nil {
		err = asServiceError("error while borrowing book", err)
		if errors.Is(err, ErrInternal) {
			log.Error("failed to borrow book", slog.Any("error", err))
		}
		return domain.LoanRecord{}, err
	}

	log.Info("book borrowed", slog.String("loan_id", loan.ID))
	return loan, nil
}

// ReturnBook closes the open loan of bookID to borrowerUsername. Returning a
// book that is not out fails with ErrNotFound and changes nothing.
func (s *LendingService) ReturnBook(ctx context.Context, borrowerUsername, bookID string) (domain.LoanRecord, error) {
	ctx = slogx.With(ctx,
		slog.String("borrower", borrowerUsername),
		slog.String("book_id", bookID),
	)
	log := slogx.FromContext(ctx)

	var loan domain.LoanRecord
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		borrower, err := findUserByUsername(ctx, tx, borrowerUsername)
		if err != nil {
			return err
		}
		book, err := findBook(ctx, tx, bookID)
		if err != nil {
			return err
		}
		var open *domain.LoanRecord
		if borrower != nil && book != nil {
			if open, err = findOpenLoan(ctx, tx, bookID, borrowerUsername); err != nil {
				return err
			}
		}

		verdict := eligibility.DecideReturn(borrower, book, open)
		switch verdict.Reason {
		case eligibility.ReasonNone:
		case eligibility.ReasonNoOpenLoan:
			return notFound("borrowed book record not found")
		default:
			log.Warn("return denied", slog.String("reason", string(verdict.Reason)))
			return forbidden("user not eligible to return books: %s", verdict.Reason)
		}

		now := time.Now().UTC()
		if err := tx.Loans().CloseLoan(ctx, open.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound("borrowed book record not found")
			}
			return err
		}

		loan = *open
		loan.Returned = true
		loan.ReturnedAt = &now
		return nil
	})
	if err != nil {
		err = asServiceError("error occurred while returning the book", err)
		if errors.Is(err, ErrInternal) {
			log.Error("failed to return book", slog.Any("error", err))
		}
		return domain.LoanRecord{}, err
	}

	log.Info("book returned", slog.String("loan_id", loan.ID))
	return loan, nil
}

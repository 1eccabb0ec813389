package http

import (
	"net/http"

	"github.com/aussiebroadwan/stacks/internal/library/service"
)

// LoansHandler serves borrow, return and the loan listing.
type LoansHandler struct {
	LendingService *service.LendingService
	ListingService *service.ListingService
}

// HandleBorrow handles POST /v1/loans/borrow
//
//	@Summary		Borrow Book
//	@Description	Opens a loan countersigned by a LIBRARIAN. A borrower may hold at most one open loan per book.
//	@Tags			Loans
//	@Produce		json
//	@Param			username			query		string	true	"Borrower username"
//	@Param			bookId				query		string	true	"Book ID (ULID)"
//	@Param			librarianUsername	query		string	true	"Countersigning librarian"
//	@Success		200					{object}	librarysdk.Response[librarysdk.LoanInfo]
//	@Failure		400					{object}	librarysdk.Response[any]	"unknown or unauthorized librarian"
//	@Failure		403					{object}	librarysdk.Response[any]	"borrower not eligible"
//	@Failure		404					{object}	librarysdk.Response[any]	"book not found"
//	@Router			/v1/loans/borrow [post].
func (h *LoansHandler) HandleBorrow(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	loan, err := h.LendingService.BorrowBook(r.Context(),
		q.Get("username"), q.Get("bookId"), q.Get("librarianUsername"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Book borrowed successfully", toLoanInfo(loan))
}

// HandleReturn handles POST /v1/loans/return
//
//	@Summary		Return Book
//	@Description	Closes the borrower's open loan of a book.
//	@Tags			Loans
//	@Produce		json
//	@Param			username	query		string	true	"Borrower username"
//	@Param			bookId		query		string	true	"Book ID (ULID)"
//	@Success		200			{object}	librarysdk.Response[librarysdk.LoanInfo]
//	@Failure		403			{object}	librarysdk.Response[any]	"borrower not eligible"
//	@Failure		404			{object}	librarysdk.Response[any]	"no open loan"
//	@Router			/v1/loans/return [post].
func (h *LoansHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	loan, err := h.LendingService.ReturnBook(r.Context(), q.Get("username"), q.Get("bookId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Book returned successfully", toLoanInfo(loan))
}

// HandleList handles GET /v1/loans
//
//	@Summary	List Loans
//	@Tags		Loans
//	@Produce	json
//	@Param		page	query		int		false	"Page index"	default(0)
//	@Param		size	query		int		false	"Page size"		default(10)
//	@Param		sortBy	query		string	false	"Sort key"		default(id)
//	@Success	200		{object}	librarysdk.Response[librarysdk.Page[librarysdk.LoanInfo]]
//	@Failure	400		{object}	librarysdk.Response[any]
//	@Router		/v1/loans [get].
func (h *LoansHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, size, sortBy, ok := pageParams(r)
	if !ok {
		writeBadRequest(w, "page and size must be integers")
		return
	}

	loans, err := h.ListingService.ListLoans(r.Context(), page, size, sortBy)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Paginated list of borrowed books fetched successfully", toPage(loans, toLoanInfo))
}

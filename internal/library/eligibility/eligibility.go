// Package eligibility holds the lending rules. Every function here is pure:
// it reads snapshots handed to it and never touches a store. A nil pointer
// means the entity does not exist, and a missing user always denies.
package eligibility

import "github.com/aussiebroadwan/stacks/internal/library/domain"

// Reason names the first precondition a request failed.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUserUnknown     Reason = "user does not exist"
	ReasonCatalogEditor   Reason = "catalog editors cannot borrow or return books"
	ReasonBookMissing     Reason = "book does not exist"
	ReasonLoanAlreadyOpen Reason = "book is already on loan to this user"
	ReasonNoOpenLoan      Reason = "no open loan for this book and user"
)

// Verdict is the outcome of a lending decision.
type Verdict struct {
	Reason Reason
}

// Allowed reports whether no precondition failed.
func (v Verdict) Allowed() bool { return v.Reason == ReasonNone }

func deny(r Reason) Verdict { return Verdict{Reason: r} }

// EditorRole is the role permitted to add and update books.
const EditorRole = domain.RoleAdmin

// CountersignRole is the role permitted to authorise a loan.
const CountersignRole = domain.RoleLibrarian

// CanEditCatalog reports whether user may add and update books.
func CanEditCatalog(user *domain.User) bool {
	return user != nil && user.Role == EditorRole
}

// IsAuthorizedLibrarian reports whether candidate holds the countersigning role.
func IsAuthorizedLibrarian(candidate *domain.User) bool {
	return candidate != nil && candidate.Role == CountersignRole
}

// CanCountersign reports whether candidate may authorise a loan to borrower.
// A loan needs two identities, so nobody countersigns their own.
func CanCountersign(candidate, borrower *domain.User) bool {
	return IsAuthorizedLibrarian(candidate) &&
		borrower != nil && candidate.Username != borrower.Username
}

// DecideBorrow checks the borrower before the book so that a caller who may
// not borrow at all learns nothing about the catalog.
func DecideBorrow(user *domain.User, book *domain.Book, openLoan *domain.LoanRecord) Verdict {
	switch {
	case user == nil:
		return deny(ReasonUserUnknown)
	case user.Role == EditorRole:
		return deny(ReasonCatalogEditor)
	case openLoan != nil && openLoan.Open():
		return deny(ReasonLoanAlreadyOpen)
	case book == nil:
		return deny(ReasonBookMissing)
	}
	return Verdict{}
}

// CanBorrow is DecideBorrow reduced to a yes or no.
func CanBorrow(user *domain.User, book *domain.Book, openLoan *domain.LoanRecord) bool {
	return DecideBorrow(user, book, openLoan).Allowed()
}

// DecideReturn allows a return only against an open loan belonging to the
// same book and borrower.
func DecideReturn(user *domain.User, book *domain.Book, loan *domain.LoanRecord) Verdict {
	switch {
	case user == nil:
		return deny(ReasonUserUnknown)
	case user.Role == EditorRole:
		return deny(ReasonCatalogEditor)
	case book == nil:
		return deny(ReasonBookMissing)
	case loan == nil || !loan.Open() ||
		loan.BookID != book.ID || loan.BorrowerUsername != user.Username:
		return deny(ReasonNoOpenLoan)
	}
	return Verdict{}
}

// CanReturn is DecideReturn reduced to a yes or no.
func CanReturn(user *domain.User, book *domain.Book, loan *domain.LoanRecord) bool {
	return DecideReturn(user, book, loan).Allowed()
}

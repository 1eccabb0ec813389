package domain

import "time"

// LoanRecord is one borrow of a book. At most one record per
// (BookID, BorrowerUsername) may be open at a time.
type LoanRecord struct {
	ID                string
	BorrowerUsername  string
	LibrarianUsername string // who countersigned the loan
	BookID            string
	BookTitle         string // snapshot at borrow time
	BookAuthor        string // snapshot at borrow time
	Returned          bool
	CreatedAt         time.Time
	ReturnedAt        *time.Time
}

// Open reports whether the book is still out.
func (l LoanRecord) Open() bool { return !l.Returned }

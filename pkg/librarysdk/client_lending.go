package librarysdk

import (
	"context"
	"net/http"
	"net/url"
)

// BorrowBook opens a loan countersigned by librarianUsername.
func (c *Client) BorrowBook(ctx context.Context, username, bookID, librarianUsername string) (*LoanInfo, error) {
	q := url.Values{
		"username":          {username},
		"bookId":            {bookID},
		"librarianUsername": {librarianUsername},
	}
	l, err := do[LoanInfo](ctx, c, http.MethodPost, "/v1/loans/borrow", q, nil)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ReturnBook closes the caller's open loan of bookID.
func (c *Client) ReturnBook(ctx context.Context, username, bookID string) (*LoanInfo, error) {
	q := url.Values{
		"username": {username},
		"bookId":   {bookID},
	}
	l, err := do[LoanInfo](ctx, c, http.MethodPost, "/v1/loans/return", q, nil)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *Client) ListLoans(ctx context.Context, page, size int, sortBy string) (*Page[LoanInfo], error) {
	p, err := do[Page[LoanInfo]](ctx, c, http.MethodGet, "/v1/loans", pageQuery(page, size, sortBy), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

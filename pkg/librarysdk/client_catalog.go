package librarysdk

import (
	"context"
	"net/http"
	"net/url"
)

// AddBook adds a book as actingUsername, who must be a catalog editor.
func (c *Client) AddBook(ctx context.Context, actingUsername string, req BookRequest) (*BookInfo, error) {
	q := url.Values{"username": {actingUsername}}
	b, err := do[BookInfo](ctx, c, http.MethodPost, "/v1/books", q, req)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBook replaces every field of bookID with req.
func (c *Client) UpdateBook(ctx context.Context, actingUsername, bookID string, req BookRequest) (*BookInfo, error) {
	q := url.Values{"username": {actingUsername}}
	b, err := do[BookInfo](ctx, c, http.MethodPut, "/v1/books/"+url.PathEscape(bookID), q, req)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) GetBook(ctx context.Context, bookID string) (*BookInfo, error) {
	b, err := do[BookInfo](ctx, c, http.MethodGet, "/v1/books/"+url.PathEscape(bookID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) ListBooks(ctx context.Context, page, size int, sortBy string) (*Page[BookInfo], error) {
	p, err := do[Page[BookInfo]](ctx, c, http.MethodGet, "/v1/books", pageQuery(page, size, sortBy), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

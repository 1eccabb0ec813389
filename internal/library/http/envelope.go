package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/stacks/internal/library/domain"
	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/librarysdk"
	"github.com/aussiebroadwan/stacks/pkg/slogx"
)

const (
	defaultPageSize = 10
	defaultSortKey  = "id"
)

func writeResult(w http.ResponseWriter, res service.Result) {
	httpx.WriteJSON(w, res.Code, librarysdk.Response[any]{
		Message: res.Message,
		Code:    res.Code,
		Data:    res.Data,
	})
}

func writeOK(w http.ResponseWriter, message string, payload any) {
	writeResult(w, service.Envelope(message, payload, nil))
}

// writeError logs internal failures; the client only sees the envelope
// message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := service.Envelope("", nil, err)
	if res.Code == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
	}
	writeResult(w, res)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeResult(w, service.Result{Message: message, Code: http.StatusBadRequest})
}

// pageParams reads page, size and sortBy. Missing values take defaults;
// range and sort key checks are left to the listing service.
func pageParams(r *http.Request) (page, size int, sortBy string, ok bool) {
	if page, ok = httpx.QueryInt(r, "page", 0); !ok {
		return 0, 0, "", false
	}
	if size, ok = httpx.QueryInt(r, "size", defaultPageSize); !ok {
		return 0, 0, "", false
	}
	sortBy = r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortKey
	}
	return page, size, sortBy, true
}

func toBookInfo(b domain.Book) librarysdk.BookInfo {
	return librarysdk.BookInfo{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Description: b.Description,
		Category:    string(b.Category),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toLoanInfo(l domain.LoanRecord) librarysdk.LoanInfo {
	return librarysdk.LoanInfo{
		ID:                l.ID,
		BorrowerUsername:  l.BorrowerUsername,
		LibrarianUsername: l.LibrarianUsername,
		BookID:            l.BookID,
		BookTitle:         l.BookTitle,
		BookAuthor:        l.BookAuthor,
		Returned:          l.Returned,
		CreatedAt:         l.CreatedAt,
		ReturnedAt:        l.ReturnedAt,
	}
}

func toUserInfo(u domain.User) librarysdk.UserInfo {
	return librarysdk.UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Gender:    string(u.Gender),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toPage[T, U any](p domain.Page[T], conv func(T) U) librarysdk.Page[U] {
	content := make([]U, len(p.Content))
	for i, item := range p.Content {
		content[i] = conv(item)
	}
	return librarysdk.Page[U]{
		Content:       content,
		CurrentPage:   p.CurrentPage,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
	}
}

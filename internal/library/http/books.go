package http

import (
	"net/http"

	"github.com/aussiebroadwan/stacks/internal/library/service"
	"github.com/aussiebroadwan/stacks/pkg/httpx"
	"github.com/aussiebroadwan/stacks/pkg/librarysdk"
)

// BooksHandler serves the catalog endpoints.
type BooksHandler struct {
	CatalogService *service.CatalogService
	ListingService *service.ListingService
}

func bookRequest(req librarysdk.BookRequest) service.BookRequest {
	return service.BookRequest{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		Category:    req.Category,
	}
}

// HandleAdd handles POST /v1/books
//
//	@Summary		Add Book
//	@Description	Adds a book to the catalog. The acting user must hold the ADMIN role.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			username	query		string					true	"Acting username"
//	@Param			request		body		librarysdk.BookRequest	true	"Book fields"
//	@Success		200			{object}	librarysdk.Response[librarysdk.BookInfo]
//	@Failure		400			{object}	librarysdk.Response[any]
//	@Failure		403			{object}	librarysdk.Response[any]
//	@Router			/v1/books [post].
func (h *BooksHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req librarysdk.BookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	book, err := h.CatalogService.AddBook(r.Context(), bookRequest(req), r.URL.Query().Get("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Book added successfully", toBookInfo(book))
}

// HandleUpdate handles PUT /v1/books/{id}
//
//	@Summary		Update Book
//	@Description	Replaces every field of a book. The acting user must hold the ADMIN role.
//	@Tags			Books
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string					true	"Book ID (ULID)"
//	@Param			username	query		string					true	"Acting username"
//	@Param			request		body		librarysdk.BookRequest	true	"Book fields"
//	@Success		200			{object}	librarysdk.Response[librarysdk.BookInfo]
//	@Failure		400			{object}	librarysdk.Response[any]
//	@Failure		403			{object}	librarysdk.Response[any]
//	@Failure		404			{object}	librarysdk.Response[any]
//	@Router			/v1/books/{id} [put].
func (h *BooksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req librarysdk.BookRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid JSON in request body")
		return
	}

	book, err := h.CatalogService.UpdateBook(r.Context(), bookRequest(req),
		r.URL.Query().Get("username"), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Book updated successfully", toBookInfo(book))
}

// HandleGet handles GET /v1/books/{id}
//
//	@Summary	Get Book
//	@Tags		Books
//	@Produce	json
//	@Param		id	path		string	true	"Book ID (ULID)"
//	@Success	200	{object}	librarysdk.Response[librarysdk.BookInfo]
//	@Failure	404	{object}	librarysdk.Response[any]
//	@Router		/v1/books/{id} [get].
func (h *BooksHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	book, err := h.CatalogService.GetBook(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Book retrieved successfully", toBookInfo(book))
}

// HandleList handles GET /v1/books
//
//	@Summary		List Books
//	@Description	Returns one zero-based page of books.
//	@Tags			Books
//	@Produce		json
//	@Param			page	query		int		false	"Page index"	default(0)
//	@Param			size	query		int		false	"Page size"		default(10)
//	@Param			sortBy	query		string	false	"Sort key"		default(id)	Enums(id, title, author, isbn, category, createdAt)
//	@Success		200		{object}	librarysdk.Response[librarysdk.Page[librarysdk.BookInfo]]
//	@Failure		400		{object}	librarysdk.Response[any]
//	@Router			/v1/books [get].
func (h *BooksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, size, sortBy, ok := pageParams(r)
	if !ok {
		writeBadRequest(w, "page and size must be integers")
		return
	}

	books, err := h.ListingService.ListBooks(r.Context(), page, size, sortBy)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "Paginated list of books fetched successfully", toPage(books, toBookInfo))
}

package domain

// Page is one slice of a sorted listing. CurrentPage is zero-based.
type Page[T any] struct {
	Content       []T
	CurrentPage   int
	PageSize      int
	TotalPages    int
	TotalElements int
}

// NewPage fills in TotalPages as ceil(total/size).
func NewPage[T any](content []T, page, size, total int) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if size > 0 {
		pages = total / size
		if total%size != 0 {
			pages++
		}
	}
	return Page[T]{
		Content:       content,
		CurrentPage:   page,
		PageSize:      size,
		TotalPages:    pages,
		TotalElements: total,
	}
}

// Sortable listing keys, as accepted from clients.
var (
	BookSortKeys = []string{"id", "title", "author", "isbn", "category", "createdAt"}
	LoanSortKeys = []string{
		"id", "borrowerUsername", "librarianUsername", "bookId",
		"bookTitle", "bookAuthor", "returned", "createdAt",
	}
)

package librarysdk

import "time"

// Response is the envelope wrapping every reply. Data is null on failure.
type Response[T any] struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    T      `json:"data"`
}

// Page is one zero-based page of a sorted listing.
type Page[T any] struct {
	Content       []T `json:"content"`
	CurrentPage   int `json:"currentPage"`
	PageSize      int `json:"pageSize"`
	TotalPages    int `json:"totalPages"`
	TotalElements int `json:"totalElements"`
}

type BookInfo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LoanInfo struct {
	ID                string     `json:"id"`
	BorrowerUsername  string     `json:"borrowerUsername"`
	LibrarianUsername string     `json:"librarianUsername"`
	BookID            string     `json:"bookId"`
	BookTitle         string     `json:"bookTitle"`
	BookAuthor        string     `json:"bookAuthor"`
	Returned          bool       `json:"returned"`
	CreatedAt         time.Time  `json:"createdAt"`
	ReturnedAt        *time.Time `json:"returnedAt,omitempty"`
}

// UserInfo never carries the password hash.
type UserInfo struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Gender    string    `json:"gender"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookRequest is the body of add and update. Update replaces every field.
type BookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type SignUpRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Role      string `json:"role"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	Username  string  `json:"username"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports readiness of dependencies (only for /readyz).
type HealthChecks struct {
	Database string `json:"database"`
}

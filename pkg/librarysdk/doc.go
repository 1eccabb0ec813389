/*
Package librarysdk is a Go client for the Stacks library service.

Every endpoint answers with the same envelope:

	{"message": "...", "code": 200, "data": {...}}

where code mirrors the HTTP status. The client unwraps data on success and
returns an *APIError carrying the message otherwise.

	client := librarysdk.NewClient("http://localhost:8080")

	book, err := client.AddBook(ctx, "lib1", librarysdk.BookRequest{Title: "Dune"})
	loan, err := client.BorrowBook(ctx, "mem1", book.ID, "desk")
	loan, err = client.ReturnBook(ctx, "mem1", book.ID)

Identity is passed as a plain username; the service performs no
authentication.
*/
package librarysdk

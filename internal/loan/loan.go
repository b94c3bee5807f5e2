package loan

import (
	"time"

	"libraryapi/internal/apierror"
	"libraryapi/internal/book"
)

// DateLayout is the calendar-date format loans are stored and rendered with.
const DateLayout = "2006-01-02"

// ErrBookNotFound is returned by Create when no book has the requested ISBN.
var ErrBookNotFound = apierror.NotFound("book not found for passed isbn")

// Loan records a book lent to a customer. Returned is nil until the return
// state is known.
type Loan struct {
	ID       int64     `json:"id"`
	Customer string    `json:"customer"`
	Book     book.Book `json:"book"`
	LoanDate time.Time `json:"loan_date"`
	Returned *bool     `json:"returned"`
}

// Date truncates t to midnight UTC of its calendar day. Loans are dated by
// the UTC day, not the server's local date, so a loan made shortly after local
// midnight east of UTC carries the previous day.
func Date(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package book

import (
	"fmt"

	"libraryapi/internal/apierror"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	// ErrNotFound is returned by a Repository when no book matches.
	ErrNotFound = fmt.Errorf("book %w", apierror.ErrNotFound)
	// ErrUnsaved is returned when a book without identity is updated or deleted.
	ErrUnsaved = fmt.Errorf("book id is not set: %w", apierror.ErrInvalidArgument)
	// ErrISBNAlreadyRegistered is returned when another book already has the ISBN.
	ErrISBNAlreadyRegistered = apierror.BusinessError{Message: "Isbn already register"}
	// ErrHasLoans is returned when a book is deleted while loans still refer to it.
	ErrHasLoans = apierror.BusinessError{Message: "Book has registered loans"}
)

// Book is a persisted book record. A zero ID means the book was never saved.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

// Persisted reports whether the book carries a store-assigned identity.
func (b Book) Persisted() bool {
	return b.ID > 0
}

// Draft is a book that has not been stored yet.
type Draft struct {
	Title  string
	Author string
	ISBN   string
}

// Filter selects books in Find. Nil fields match everything; Title and Author
// match by case-insensitive containment, ISBN matches exactly.
type Filter struct {
	Title  *string
	Author *string
	ISBN   *string
}

// PageRequest is a zero-based page index plus a page size.
type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps the request into a usable range.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of a Find result.
type Page struct {
	Content       []Book `json:"content"`
	TotalElements int    `json:"total_elements"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
}

func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalElements + p.Size - 1) / p.Size
}

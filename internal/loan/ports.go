//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=loan

package loan

import (
	"context"

	"libraryapi/internal/book"
)

// Repository stores loans.
type Repository interface {
	Insert(ctx context.Context, l Loan) (Loan, error)
}

// BookFinder looks books up by ISBN. *book.Service satisfies it.
type BookFinder interface {
	GetByISBN(ctx context.Context, isbn string) (book.Book, bool, error)
}

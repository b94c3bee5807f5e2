//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

package book

import (
	"context"
)

// Repository defines the contract for book data storage.
// Lookups return ErrNotFound when no row matches.
type Repository interface {
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Find(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error)
	Insert(ctx context.Context, d Draft) (Book, error)
	Update(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
}

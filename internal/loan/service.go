package loan

import (
	"context"
	"fmt"
	"time"
)

// Service provides loan-related business logic.
type Service struct {
	repo  Repository
	books BookFinder
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces the clock used to date new loans.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, books BookFinder, opts ...Option) *Service {
	s := &Service{repo: repo, books: books, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create lends the book with the given ISBN to customer and returns the new
// loan's id. Whether the book is already out on another loan is not checked.
func (s *Service) Create(ctx context.Context, customer, isbn string) (int64, error) {
	b, found, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		return 0, fmt.Errorf("find book %q: %w", isbn, err)
	}
	if !found {
		return 0, ErrBookNotFound
	}

	saved, err := s.repo.Insert(ctx, Loan{
		Customer: customer,
		Book:     b,
		LoanDate: Date(s.now()),
	})
	if err != nil {
		return 0, err
	}
	return saved.ID, nil
}

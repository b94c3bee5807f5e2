package book

import (
	"context"
	"errors"
	"fmt"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save stores a new book. The ISBN must not be registered yet.
func (s *Service) Save(ctx context.Context, d Draft) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, d.ISBN)
	if err != nil {
		return Book{}, fmt.Errorf("check isbn %q: %w", d.ISBN, err)
	}
	if exists {
		return Book{}, ErrISBNAlreadyRegistered
	}
	return s.repo.Insert(ctx, d)
}

// GetByID returns the book with the given id. The bool is false when no such
// book exists.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, bool, error) {
	return found(s.repo.GetByID(ctx, id))
}

// GetByISBN returns the book with the given ISBN. The bool is false when no
// such book exists.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, bool, error) {
	return found(s.repo.GetByISBN(ctx, isbn))
}

// Find returns the page of books matching f.
func (s *Service) Find(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	p = p.Normalize()
	books, total, err := s.repo.Find(ctx, f, p)
	if err != nil {
		return Page{}, err
	}
	if books == nil {
		books = []Book{}
	}
	return Page{
		Content:       books,
		TotalElements: total,
		Page:          p.Page,
		Size:          p.Size,
	}, nil
}

// Update overwrites title, author and ISBN of a stored book.
// The new ISBN is not checked against other books here; the store's unique
// constraint is the only guard.
func (s *Service) Update(ctx context.Context, b Book) (Book, error) {
	if !b.Persisted() {
		return Book{}, ErrUnsaved
	}
	return s.repo.Update(ctx, b)
}

// Delete removes a stored book.
func (s *Service) Delete(ctx context.Context, b Book) error {
	if !b.Persisted() {
		return ErrUnsaved
	}
	return s.repo.Delete(ctx, b.ID)
}

func found(b Book, err error) (Book, bool, error) {
	if errors.Is(err, ErrNotFound) {
		return Book{}, false, nil
	}
	if err != nil {
		return Book{}, false, err
	}
	return b, true, nil
}

// Package ingest imports books from Open Library into the catalog.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/platform/openlibrary"
)

type Config struct {
	Subjects []string
	BooksMax int
	DryRun   bool
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

// BookSaver is satisfied by *book.Service.
type BookSaver interface {
	Save(ctx context.Context, d book.Draft) (book.Book, error)
}

type Service struct {
	olClient OpenLibraryClient
	books    BookSaver
	cfg      Config
	out      io.Writer
}

// NewService builds an ingester. In dry-run mode books may be nil and
// candidates are written to out instead of being saved.
func NewService(olClient OpenLibraryClient, books BookSaver, cfg Config, out io.Writer) *Service {
	return &Service{
		olClient: olClient,
		books:    books,
		cfg:      cfg,
		out:      out,
	}
}

// Run searches every configured subject until BooksMax works have been
// fetched. Books whose ISBN is already registered are counted as duplicates.
func (s *Service) Run(ctx context.Context) (run *Run, err error) {
	run = &Run{
		Status:    StatusRunning,
		Subjects:  strings.Join(s.cfg.Subjects, ","),
		StartedAt: time.Now(),
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil {
			run.Status = StatusFailed
			run.Error = err.Error()
		} else {
			run.Status = StatusCompleted
		}
	}()

	processed := make(map[string]bool)
	for _, subject := range s.cfg.Subjects {
		remaining := s.cfg.BooksMax - run.BooksFetched
		if remaining <= 0 {
			break
		}

		res, err := s.olClient.SearchBooks(ctx, subject, remaining)
		if err != nil {
			return run, fmt.Errorf("search failed for %s: %w", subject, err)
		}
		run.BooksFetched += len(res.Docs)

		for _, doc := range res.Docs {
			d, ok := draftFrom(doc)
			if !ok || processed[d.ISBN] {
				run.Skipped++
				continue
			}
			processed[d.ISBN] = true

			if err := s.store(ctx, run, d); err != nil {
				return run, err
			}
		}
	}
	return run, nil
}

func (s *Service) store(ctx context.Context, run *Run, d book.Draft) error {
	if s.cfg.DryRun {
		fmt.Fprintf(s.out, "%s\t%s\t%s\n", d.ISBN, d.Title, d.Author)
		return nil
	}

	_, err := s.books.Save(ctx, d)
	switch {
	case errors.Is(err, book.ErrISBNAlreadyRegistered):
		slog.Debug("isbn already registered", "isbn", d.ISBN)
		run.Duplicates++
	case err != nil:
		return fmt.Errorf("save %s: %w", d.ISBN, err)
	default:
		run.BooksSaved++
	}
	return nil
}

// draftFrom turns a search hit into a book, keeping the first author.
// Open Library can return 10 or 13 digit ISBNs. We prefer 13.
func draftFrom(doc openlibrary.Doc) (book.Draft, bool) {
	title := strings.TrimSpace(doc.Title)
	if title == "" || len(doc.AuthorNames) == 0 || len(doc.ISBN) == 0 {
		return book.Draft{}, false
	}

	isbn := doc.ISBN[0]
	for _, i := range doc.ISBN {
		if len(i) == 13 {
			isbn = i
			break
		}
	}
	return book.Draft{
		Title:  title,
		Author: doc.AuthorNames[0],
		ISBN:   isbn,
	}, true
}

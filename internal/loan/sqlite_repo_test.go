package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/platform/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRepo_Insert(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	books := book.NewService(book.NewSQLiteRepo(db, time.Second))
	loans := NewService(NewSQLiteRepo(db, time.Second), books,
		WithClock(func() time.Time { return time.Date(2024, time.March, 9, 10, 0, 0, 0, time.UTC) }))

	saved, err := books.Save(ctx, book.Draft{Title: "test", Author: "artur", ISBN: "001"})
	require.NoError(t, err)

	_, err = books.Save(ctx, book.Draft{Title: "other", Author: "someone", ISBN: "001"})
	assert.True(t, errors.Is(err, book.ErrISBNAlreadyRegistered))

	id, err := loans.Create(ctx, "Fulano", "001")
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var row struct {
		Customer string `db:"customer"`
		BookID   int64  `db:"book_id"`
		LoanDate string `db:"loan_date"`
		Returned *bool  `db:"returned"`
	}
	require.NoError(t, db.GetContext(ctx, &row, `SELECT customer, book_id, loan_date, returned FROM loans WHERE id = ?`, id))
	assert.Equal(t, "Fulano", row.Customer)
	assert.Equal(t, saved.ID, row.BookID)
	assert.Equal(t, "2024-03-09", row.LoanDate)
	assert.Nil(t, row.Returned)

	_, err = loans.Create(ctx, "Fulano", "999")
	assert.True(t, errors.Is(err, ErrBookNotFound))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM loans`))
	assert.Equal(t, 1, count)
}

func TestSQLiteRepo_BookWithLoansIsNotDeleted(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	books := book.NewService(book.NewSQLiteRepo(db, time.Second))
	loans := NewService(NewSQLiteRepo(db, time.Second), books)

	saved, err := books.Save(ctx, book.Draft{Title: "test", Author: "artur", ISBN: "001"})
	require.NoError(t, err)
	_, err = loans.Create(ctx, "Fulano", "001")
	require.NoError(t, err)

	err = books.Delete(ctx, saved)
	assert.True(t, errors.Is(err, book.ErrHasLoans))

	_, found, err := books.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, found)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM loans WHERE book_id = ?`, saved.ID))
	assert.Equal(t, 1, count)
}

package storage

import (
	"context"
	"testing"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/loan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, config.DBConfig{Driver: "sqlite", DSN: ":memory:", Timeout: time.Second})
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Ping(ctx))

	saved, err := st.Books.Insert(ctx, book.Draft{Title: "test", Author: "artur", ISBN: "001"})
	require.NoError(t, err)

	l, err := st.Loans.Insert(ctx, loan.Loan{Customer: "Fulano", Book: saved, LoanDate: loan.Date(time.Now())})
	require.NoError(t, err)
	assert.Greater(t, l.ID, int64(0))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{Driver: "mysql"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

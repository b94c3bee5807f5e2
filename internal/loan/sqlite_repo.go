package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLiteRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSQLiteRepo(db *sqlx.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout}
}

func (r *SQLiteRepo) Insert(ctx context.Context, l Loan) (Loan, error) {
	const query = `INSERT INTO loans (customer, book_id, loan_date, returned) VALUES (?, ?, ?, ?)`

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, query, l.Customer, l.Book.ID, l.LoanDate.Format(DateLayout), l.Returned)
	if err != nil {
		return Loan{}, fmt.Errorf("insert loan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Loan{}, fmt.Errorf("insert loan: %w", err)
	}
	l.ID = id
	return l, nil
}

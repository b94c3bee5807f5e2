package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) Insert(ctx context.Context, l Loan) (Loan, error) {
	const sql = `
		INSERT INTO loans (customer, book_id, loan_date, returned, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.db.QueryRow(timeoutCtx, sql, l.Customer, l.Book.ID, l.LoanDate, l.Returned).Scan(&l.ID); err != nil {
		return Loan{}, fmt.Errorf("insert loan: %w", err)
	}
	return l, nil
}

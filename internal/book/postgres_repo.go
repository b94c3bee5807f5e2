package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libraryapi/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
	q       queryBuilder
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout, q: newQueryBuilder(dialectPostgres)}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query, err := r.q.existsByISBN(isbn)
	if err != nil {
		return false, err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err = r.db.QueryRow(timeoutCtx, query.sql, query.args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query, err := r.q.selectBy(colID, id)
	if err != nil {
		return Book{}, err
	}
	return r.getOne(ctx, query)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query, err := r.q.selectBy(colISBN, isbn)
	if err != nil {
		return Book{}, err
	}
	return r.getOne(ctx, query)
}

func (r *PostgresRepo) getOne(ctx context.Context, query sqlQuery) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(timeoutCtx, query.sql, query.args...).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Find(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	countQuery, dataQuery, err := r.q.find(f, p)
	if err != nil {
		return nil, 0, err
	}

	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countQuery.sql, countQuery.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataQuery.sql, dataQuery.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) Insert(ctx context.Context, d Draft) (Book, error) {
	const sql = `
		INSERT INTO books (title, author, isbn, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b := Book{Title: d.Title, Author: d.Author, ISBN: d.ISBN}
	if err := r.db.QueryRow(timeoutCtx, sql, d.Title, d.Author, d.ISBN).Scan(&b.ID); err != nil {
		if postgres.IsUniqueViolation(err) {
			return Book{}, ErrISBNAlreadyRegistered
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) (Book, error) {
	query, err := r.q.update(b)
	if err != nil {
		return Book{}, err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query.sql, query.args...)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return Book{}, ErrISBNAlreadyRegistered
		}
		return Book{}, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	query, err := r.q.delete(id)
	if err != nil {
		return err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, query.sql, query.args...)
	if postgres.IsForeignKeyViolation(err) {
		return ErrHasLoans
	}
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

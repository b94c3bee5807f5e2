package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"libraryapi/internal/platform/sqlite"

	"github.com/jmoiron/sqlx"
)

// SQLiteRepo stores books in the embedded SQLite database.
type SQLiteRepo struct {
	db      *sqlx.DB
	timeout time.Duration
	q       queryBuilder
}

type bookRow struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Author string `db:"author"`
	ISBN   string `db:"isbn"`
}

func (r bookRow) book() Book {
	return Book{ID: r.ID, Title: r.Title, Author: r.Author, ISBN: r.ISBN}
}

func NewSQLiteRepo(db *sqlx.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout, q: newQueryBuilder(dialectSQLite)}
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLiteRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query, err := r.q.existsByISBN(isbn)
	if err != nil {
		return false, err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err = r.db.GetContext(timeoutCtx, &id, query.sql, query.args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query, err := r.q.selectBy(colID, id)
	if err != nil {
		return Book{}, err
	}
	return r.getOne(ctx, query)
}

func (r *SQLiteRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query, err := r.q.selectBy(colISBN, isbn)
	if err != nil {
		return Book{}, err
	}
	return r.getOne(ctx, query)
}

func (r *SQLiteRepo) getOne(ctx context.Context, query sqlQuery) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row bookRow
	if err := r.db.GetContext(timeoutCtx, &row, query.sql, query.args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return row.book(), nil
}

func (r *SQLiteRepo) Find(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	countQuery, dataQuery, err := r.q.find(f, p)
	if err != nil {
		return nil, 0, err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.GetContext(timeoutCtx, &total, countQuery.sql, countQuery.args...); err != nil {
		return nil, 0, err
	}

	var rows []bookRow
	if err := r.db.SelectContext(timeoutCtx, &rows, dataQuery.sql, dataQuery.args...); err != nil {
		return nil, 0, err
	}
	out := make([]Book, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.book())
	}
	return out, total, nil
}

func (r *SQLiteRepo) Insert(ctx context.Context, d Draft) (Book, error) {
	const insertSQL = `INSERT INTO books (title, author, isbn) VALUES (?, ?, ?)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, insertSQL, d.Title, d.Author, d.ISBN)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return Book{}, ErrISBNAlreadyRegistered
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return Book{ID: id, Title: d.Title, Author: d.Author, ISBN: d.ISBN}, nil
}

func (r *SQLiteRepo) Update(ctx context.Context, b Book) (Book, error) {
	query, err := r.q.update(b)
	if err != nil {
		return Book{}, err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, query.sql, query.args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			return Book{}, ErrISBNAlreadyRegistered
		}
		return Book{}, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	if err := expectOneRow(res); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) error {
	query, err := r.q.delete(id)
	if err != nil {
		return err
	}
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, query.sql, query.args...)
	if sqlite.IsForeignKeyViolation(err) {
		return ErrHasLoans
	}
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

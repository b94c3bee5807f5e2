// Package storage opens the repositories of the configured database driver.
package storage

import (
	"context"
	"fmt"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/loan"
	"libraryapi/internal/platform/postgres"
	"libraryapi/internal/platform/sqlite"
)

// Stores bundles the repositories backed by one database handle.
type Stores struct {
	Books book.Repository
	Loans loan.Repository
	Ping  func(ctx context.Context) error
	Close func()
}

// Open connects to the database named by cfg. Callers must call Close.
func Open(ctx context.Context, cfg config.DBConfig) (*Stores, error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := postgres.Open(ctx, cfg.DSN, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Books: book.NewPostgresRepo(pool, cfg.Timeout),
			Loans: loan.NewPostgresRepo(pool, cfg.Timeout),
			Ping:  pool.Ping,
			Close: pool.Close,
		}, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Books: book.NewSQLiteRepo(db, cfg.Timeout),
			Loans: loan.NewSQLiteRepo(db, cfg.Timeout),
			Ping:  db.PingContext,
			Close: func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

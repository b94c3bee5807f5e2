package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"libraryapi/internal/config"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/postgres"

	"github.com/alecthomas/kong"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// CLI is the migrate command line.
type CLI struct {
	Dir string `help:"Migrations directory (defaults to MIGRATIONS_DIR or db/migrations)"`

	Up     UpCmd     `cmd:"" default:"1" help:"Apply all pending migrations"`
	Down   DownCmd   `cmd:"" help:"Roll back the latest migration"`
	Status StatusCmd `cmd:"" help:"Print migration status"`
	Create CreateCmd `cmd:"" help:"Create a new SQL migration"`
}

type UpCmd struct{}

type DownCmd struct{}

type StatusCmd struct{}

type CreateCmd struct {
	Name string `arg:"" help:"Migration name"`
}

// env carries what every subcommand needs.
type env struct {
	cfg *config.Config
	dir string
}

func (c *UpCmd) Run(e *env) error {
	return withDB(e, func(db *sql.DB) error {
		if err := goose.Up(db, e.dir); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("migrations applied", "dir", e.dir)
		return nil
	})
}

func (c *DownCmd) Run(e *env) error {
	return withDB(e, func(db *sql.DB) error {
		if err := goose.Down(db, e.dir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		slog.Info("migration rolled back", "dir", e.dir)
		return nil
	})
}

func (c *StatusCmd) Run(e *env) error {
	return withDB(e, func(db *sql.DB) error {
		return goose.Status(db, e.dir)
	})
}

func (c *CreateCmd) Run(e *env) error {
	if err := goose.Create(nil, e.dir, c.Name, "sql"); err != nil {
		return fmt.Errorf("create migration: %w", err)
	}
	slog.Info("migration created", "name", c.Name, "dir", e.dir)
	return nil
}

func withDB(e *env, fn func(db *sql.DB) error) error {
	if e.cfg.DB.Driver != "postgres" {
		return fmt.Errorf("migrations target postgres, configured driver is %q", e.cfg.DB.Driver)
	}

	pool, err := postgres.Open(context.Background(), e.cfg.DB.DSN, e.cfg.DB.Timeout)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return fn(db)
}

func migrationsDir(cli CLI, cfg *config.Config) string {
	if cli.Dir != "" {
		return cli.Dir
	}
	return cfg.Migrations.Dir
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Apply and manage database migrations."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(&env{cfg: cfg, dir: migrationsDir(cli, cfg)}); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

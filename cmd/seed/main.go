package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/ingest"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/openlibrary"
	"libraryapi/internal/storage"

	"github.com/alecthomas/kong"
)

// CLI is the seed command line.
type CLI struct {
	Subjects  []string `help:"Open Library subjects to import" default:"fiction"`
	Max       int      `help:"Maximum number of works to fetch" default:"50"`
	RPS       int      `help:"Requests per second sent to Open Library" default:"1"`
	Retries   int      `help:"Retries for throttled or failed requests" default:"3"`
	UserAgent string   `help:"User-Agent sent to Open Library" default:"libraryapi-seed/1.0"`
	DryRun    bool     `help:"Print the books without saving them"`
}

func (c *CLI) Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var books ingest.BookSaver
	if !c.DryRun {
		st, err := storage.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer st.Close()
		books = book.NewService(st.Books)
	}

	svc := ingest.NewService(
		openlibrary.NewClient(c.UserAgent, c.RPS, c.Retries),
		books,
		ingest.Config{Subjects: c.Subjects, BooksMax: c.Max, DryRun: c.DryRun},
		os.Stdout,
	)

	run, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	slog.Info("seed finished",
		"subjects", run.Subjects,
		"fetched", run.BooksFetched,
		"saved", run.BooksSaved,
		"duplicates", run.Duplicates,
		"skipped", run.Skipped,
		"duration", run.FinishedAt.Sub(run.StartedAt),
	)
	return nil
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
		kong.Name("seed"),
		kong.Description("Import books from Open Library into the catalog."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cfg); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

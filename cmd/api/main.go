package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/loan"
	"libraryapi/internal/platform/logger"
	"libraryapi/internal/platform/postgres"
	"libraryapi/internal/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()
	log.Info("database connection OK", "driver", cfg.DB.Driver, "dsn", postgres.RedactDSN(cfg.DB.DSN))

	bookService := book.NewService(st.Books)
	loanService := loan.NewService(st.Loans, bookService)

	router := newRouter(ctx, cfg.HTTP, log, st.Ping,
		book.NewHTTPHandler(bookService),
		loan.NewHTTPHandler(loanService),
	)

	httpServer := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", cfg.App.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
